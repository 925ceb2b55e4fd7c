package generator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mixtape-labs/mixtape/config"
	"github.com/mixtape-labs/mixtape/internal/domain"
)

// Generator composes playlists from a preference set by orchestrating
// recommendation calls against the catalog, with successively broader
// fallback stages when the personalized stages yield too little.
type Generator struct {
	cfg config.GeneratorConfig
	rng Randomizer
	now func() time.Time
}

// New creates a generator with the default random source and clock.
func New(cfg config.GeneratorConfig) *Generator {
	return &Generator{
		cfg: cfg,
		rng: NewRandomizer(),
		now: time.Now,
	}
}

// NewWithRandomizer creates a generator with an injected random source and
// clock, used by tests to make the output deterministic.
func NewWithRandomizer(cfg config.GeneratorConfig, rng Randomizer, now func() time.Time) *Generator {
	return &Generator{cfg: cfg, rng: rng, now: now}
}

// Generate builds a playlist for the given preferences. It is best-effort
// and never returns an error: failed upstream calls contribute zero tracks
// and a total outage produces an empty slice, which callers must treat as
// "no results" rather than a failure.
//
// The catalog client is passed per call because it is bound to the caller's
// bearer token.
func (g *Generator) Generate(ctx context.Context, catalog Catalog, prefs domain.PreferenceSet) []domain.Track {
	return g.GenerateWithProgress(ctx, catalog, prefs, nil)
}

// GenerateWithProgress is Generate with progress reporting.
func (g *Generator) GenerateWithProgress(ctx context.Context, catalog Catalog, prefs domain.PreferenceSet, progress ProgressFunc) []domain.Track {
	prefs = domain.NewPreferenceSet(prefs)
	targetParams := BuildTargetParams(prefs, g.now())
	queries := SelectSeeds(prefs)

	accumulator := newDedupAccumulator()

	// Stage 1: seeded queries, issued concurrently. Each query's result
	// lands in its own slot; the merge into the accumulator happens only
	// after the join so no shared state is touched across goroutines.
	if len(queries) > 0 {
		report(progress, 10, "Requesting seeded recommendations...")

		results := make([][]domain.Track, len(queries))
		var wg sync.WaitGroup
		for i, query := range queries {
			wg.Add(1)
			go func(i int, query SeedQuery) {
				defer wg.Done()
				tracks, err := catalog.GetRecommendations(ctx, query.Artists, query.Genres, query.Tracks, targetParams, g.cfg.RequestLimit)
				if err != nil {
					slog.Warn("Seeded recommendation query failed", "seeds", query.SeedCount(), "error", err)
					return
				}
				results[i] = tracks
			}(i, query)
		}
		wg.Wait()

		for _, tracks := range results {
			accumulator.add(tracks)
		}
		slog.Debug("Seeded stage complete", "queries", len(queries), "uniqueTracks", accumulator.len())
	}

	// Stage 2: genre fallback, when there were no seeds at all or the
	// seeded stage yielded too few unique tracks.
	if len(queries) == 0 || accumulator.len() < g.cfg.MinSeededYield {
		report(progress, 50, "Broadening search with fallback genres...")

		genres := pickFallbackGenres(g.rng, fallbackGenreCount)
		tracks, err := catalog.GetRecommendations(ctx, nil, genres, nil, targetParams, g.cfg.RequestLimit)
		if err != nil {
			slog.Warn("Genre fallback query failed", "genres", genres, "error", err)
		} else {
			accumulator.add(tracks)
		}
		slog.Debug("Genre fallback complete", "genres", genres, "uniqueTracks", accumulator.len())
	}

	// Stage 3: top-tracks floor. Guarantees non-empty output for a user
	// with no usable preferences even during a recommendation outage, at
	// the cost of relevance.
	if accumulator.len() < g.cfg.MinGenreYield {
		report(progress, 75, "Filling from your top tracks...")

		topTracks, err := catalog.GetUserTopTracks(ctx, g.cfg.TopTracksLimit)
		if err != nil {
			slog.Warn("Top tracks fallback failed", "error", err)
		} else {
			shuffled := ShuffleTracks(topTracks, g.rng)
			if len(shuffled) > 10 {
				shuffled = shuffled[:10]
			}
			accumulator.add(shuffled)
		}
	}

	report(progress, 100, "Playlist ready")
	return Finalize(accumulator.all(), g.cfg.MaxPlaylistSize, g.rng)
}

func report(progress ProgressFunc, percent int, message string) {
	if progress != nil {
		progress(percent, message)
	}
}

// dedupAccumulator is the working set of unique tracks collected across the
// stages of one generation call. First occurrence of an id wins; all copies
// of an id carry identical catalog data, so which one is kept is immaterial.
type dedupAccumulator struct {
	seen   map[string]struct{}
	tracks []domain.Track
}

func newDedupAccumulator() *dedupAccumulator {
	return &dedupAccumulator{seen: make(map[string]struct{})}
}

func (a *dedupAccumulator) add(tracks []domain.Track) {
	for _, track := range tracks {
		if _, ok := a.seen[track.ID]; ok {
			continue
		}
		a.seen[track.ID] = struct{}{}
		a.tracks = append(a.tracks, track)
	}
}

func (a *dedupAccumulator) len() int { return len(a.tracks) }

func (a *dedupAccumulator) all() []domain.Track { return a.tracks }
