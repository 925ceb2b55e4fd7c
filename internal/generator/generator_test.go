package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixtape-labs/mixtape/config"
	"github.com/mixtape-labs/mixtape/internal/domain"
)

func testGenConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		MaxPlaylistSize: 30,
		MinSeededYield:  15,
		MinGenreYield:   10,
		TopTracksLimit:  15,
		RequestLimit:    30,
	}
}

// recommendationCall records the arguments of one GetRecommendations call.
type recommendationCall struct {
	seedArtists []string
	seedGenres  []string
	seedTracks  []string
}

// recordingCatalog is a MockCatalog that records calls; safe for the
// generator's concurrent seeded stage.
type recordingCatalog struct {
	mu              sync.Mutex
	recommendCalls  []recommendationCall
	topTracksCalls  int
	recommendations func(call recommendationCall) ([]domain.Track, error)
	topTracks       []domain.Track
}

func (c *recordingCatalog) GetRecommendations(ctx context.Context, seedArtists, seedGenres, seedTracks []string, targetParams map[string]string, limit int) ([]domain.Track, error) {
	call := recommendationCall{seedArtists: seedArtists, seedGenres: seedGenres, seedTracks: seedTracks}

	c.mu.Lock()
	c.recommendCalls = append(c.recommendCalls, call)
	c.mu.Unlock()

	if c.recommendations != nil {
		return c.recommendations(call)
	}
	return nil, nil
}

func (c *recordingCatalog) GetUserTopTracks(ctx context.Context, limit int) ([]domain.Track, error) {
	c.mu.Lock()
	c.topTracksCalls++
	c.mu.Unlock()
	return c.topTracks, nil
}

func manyTracks(prefix string, n int) []domain.Track {
	result := make([]domain.Track, n)
	for i := range result {
		result[i] = domain.Track{ID: fmt.Sprintf("%s%d", prefix, i)}
	}
	return result
}

func seededPrefs() domain.PreferenceSet {
	return domain.PreferenceSet{
		Artists: artists("a1", "a2", "a3", "a4"),
		Genres:  []string{"g1", "g2", "g3", "g4", "g5"},
		Tracks:  tracks("t1"),
	}
}

func TestGenerateDedupInvariant(t *testing.T) {
	// Every query returns the same overlapping batch
	catalog := &recordingCatalog{
		recommendations: func(recommendationCall) ([]domain.Track, error) {
			return manyTracks("shared", 20), nil
		},
	}

	gen := New(testGenConfig())
	result := gen.Generate(context.Background(), catalog, seededPrefs())

	seen := make(map[string]bool)
	for _, track := range result {
		assert.False(t, seen[track.ID], "duplicate track id %s", track.ID)
		seen[track.ID] = true
	}
	assert.Len(t, result, 20)
}

func TestGenerateBoundInvariant(t *testing.T) {
	catalog := &recordingCatalog{
		recommendations: func(call recommendationCall) ([]domain.Track, error) {
			// Distinct ids per seed combination so the merge overflows the cap
			return manyTracks(fmt.Sprintf("q%d-", len(call.seedArtists)), 30), nil
		},
	}

	gen := New(testGenConfig())
	result := gen.Generate(context.Background(), catalog, seededPrefs())

	assert.LessOrEqual(t, len(result), 30)
}

func TestGenerateNoSeedsTriggersGenreFallback(t *testing.T) {
	catalog := &recordingCatalog{
		recommendations: func(recommendationCall) ([]domain.Track, error) {
			return manyTracks("fallback", 20), nil
		},
	}

	gen := New(testGenConfig())
	result := gen.Generate(context.Background(), catalog, domain.PreferenceSet{})

	require.Len(t, catalog.recommendCalls, 1)
	call := catalog.recommendCalls[0]

	assert.Empty(t, call.seedArtists)
	assert.Empty(t, call.seedTracks)
	assert.Len(t, call.seedGenres, 3)
	for _, genre := range call.seedGenres {
		assert.Contains(t, FallbackGenres, genre)
	}

	assert.NotEmpty(t, result)
}

func TestGenerateTopTracksFloor(t *testing.T) {
	// Recommendation endpoint is dry; only top tracks produce anything
	topTracks := manyTracks("top", 15)
	catalog := &recordingCatalog{
		recommendations: func(recommendationCall) ([]domain.Track, error) {
			return nil, nil
		},
		topTracks: topTracks,
	}

	gen := New(testGenConfig())
	result := gen.Generate(context.Background(), catalog, seededPrefs())

	assert.Equal(t, 1, catalog.topTracksCalls)

	// Output is a ≤10 subset of the mocked top tracks
	assert.NotEmpty(t, result)
	assert.LessOrEqual(t, len(result), 10)
	topIDs := make(map[string]bool)
	for _, track := range topTracks {
		topIDs[track.ID] = true
	}
	for _, track := range result {
		assert.True(t, topIDs[track.ID], "track %s is not from the top tracks", track.ID)
	}
}

func TestGeneratePartialFailureResilience(t *testing.T) {
	// Two of the three seeded queries fail; the one with a single track
	// seed succeeds with 5 unique tracks.
	catalog := &recordingCatalog{
		recommendations: func(call recommendationCall) ([]domain.Track, error) {
			if len(call.seedTracks) == 1 {
				return manyTracks("seeded", 5), nil
			}
			if len(call.seedGenres) == 3 {
				// Genre fallback succeeds too
				return manyTracks("genre", 12), nil
			}
			return nil, errors.New("upstream exploded")
		},
	}

	gen := New(testGenConfig())
	result := gen.Generate(context.Background(), catalog, seededPrefs())

	// 3 seeded calls + 1 genre fallback (5 < 15 unique after stage 1)
	assert.Len(t, catalog.recommendCalls, 4)
	assert.NotEmpty(t, result)
	assert.GreaterOrEqual(t, len(result), 5)
}

func TestGenerateTotalOutageReturnsEmpty(t *testing.T) {
	catalog := &recordingCatalog{
		recommendations: func(recommendationCall) ([]domain.Track, error) {
			return nil, errors.New("service unavailable")
		},
	}
	// Top tracks fail too
	failing := &MockCatalog{
		GetRecommendationsFunc: catalog.GetRecommendations,
		GetUserTopTracksFunc: func(ctx context.Context, limit int) ([]domain.Track, error) {
			return nil, errors.New("service unavailable")
		},
	}

	gen := New(testGenConfig())
	result := gen.Generate(context.Background(), failing, seededPrefs())

	assert.Empty(t, result)
}

func TestGenerateSkipsFallbacksWhenSeededYieldSufficient(t *testing.T) {
	catalog := &recordingCatalog{
		recommendations: func(call recommendationCall) ([]domain.Track, error) {
			return manyTracks("seeded", 20), nil
		},
	}

	gen := New(testGenConfig())
	gen.Generate(context.Background(), catalog, seededPrefs())

	// 3 seeded queries, no fallback call, no top tracks
	assert.Len(t, catalog.recommendCalls, 3)
	assert.Equal(t, 0, catalog.topTracksCalls)
}

func TestGenerateReportsProgress(t *testing.T) {
	catalog := &recordingCatalog{
		recommendations: func(recommendationCall) ([]domain.Track, error) {
			return manyTracks("x", 20), nil
		},
	}

	var messages []string
	progress := func(percent int, message string) {
		messages = append(messages, message)
	}

	gen := New(testGenConfig())
	gen.GenerateWithProgress(context.Background(), catalog, seededPrefs(), progress)

	assert.NotEmpty(t, messages)
	assert.Equal(t, "Playlist ready", messages[len(messages)-1])
}

func TestGenerateTracksOnlyNeverIssuesZeroSeedQueries(t *testing.T) {
	catalog := &recordingCatalog{
		recommendations: func(call recommendationCall) ([]domain.Track, error) {
			return manyTracks("rec", 20), nil
		},
	}
	gen := New(testGenConfig())

	result := gen.Generate(context.Background(), catalog, domain.PreferenceSet{
		Tracks: tracks("t1", "t2", "t3", "t4", "t5", "t6"),
	})

	require.NotEmpty(t, result)
	for _, call := range catalog.recommendCalls {
		total := len(call.seedArtists) + len(call.seedGenres) + len(call.seedTracks)
		assert.Greater(t, total, 0)
	}
}
