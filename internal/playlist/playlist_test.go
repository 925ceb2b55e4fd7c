package playlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixtape-labs/mixtape/internal/domain"
)

func tracks(ids ...string) []domain.Track {
	result := make([]domain.Track, len(ids))
	for i, id := range ids {
		result[i] = domain.Track{ID: id, Name: "Track " + id}
	}
	return result
}

func TestAddMoreFiltersDuplicates(t *testing.T) {
	playlist := &Playlist{Tracks: tracks("A", "B")}

	added := playlist.AddMore(tracks("B", "C"))

	assert.Equal(t, 1, added)
	assert.Equal(t, tracks("A", "B", "C"), playlist.Tracks)
}

func TestAddMoreAllDuplicates(t *testing.T) {
	playlist := &Playlist{Tracks: tracks("A", "B")}

	added := playlist.AddMore(tracks("A", "B"))

	assert.Equal(t, 0, added)
	assert.Len(t, playlist.Tracks, 2)
}

func TestAddMoreDuplicatesWithinBatch(t *testing.T) {
	playlist := &Playlist{Tracks: tracks("A")}

	added := playlist.AddMore(tracks("B", "B", "C"))

	assert.Equal(t, 2, added)
	assert.Equal(t, tracks("A", "B", "C"), playlist.Tracks)
}

func TestRemove(t *testing.T) {
	playlist := &Playlist{Tracks: tracks("A", "B", "C")}

	removed := playlist.Remove("B")

	assert.True(t, removed)
	assert.Equal(t, tracks("A", "C"), playlist.Tracks)
}

func TestRemoveMissingTrack(t *testing.T) {
	playlist := &Playlist{Tracks: tracks("A")}

	removed := playlist.Remove("Z")

	assert.False(t, removed)
	assert.Len(t, playlist.Tracks, 1)
}

func TestReorderReplacesSequence(t *testing.T) {
	playlist := &Playlist{Tracks: tracks("A", "B", "C")}

	playlist.Reorder(tracks("C", "A", "B"))

	assert.Equal(t, tracks("C", "A", "B"), playlist.Tracks)
}

func TestManagerCreateAndGet(t *testing.T) {
	manager := NewManager()

	created := manager.Create("Road Trip", domain.PreferenceSet{}, tracks("A"))

	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Road Trip", created.Name)

	got, err := manager.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestManagerCreateDefaultsName(t *testing.T) {
	manager := NewManager()

	created := manager.Create("", domain.PreferenceSet{}, nil)

	assert.NotEmpty(t, created.Name)
}

func TestManagerGetNotFound(t *testing.T) {
	manager := NewManager()

	_, err := manager.Get("missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerDelete(t *testing.T) {
	manager := NewManager()
	created := manager.Create("x", domain.PreferenceSet{}, nil)

	err := manager.Delete(created.ID)
	require.NoError(t, err)

	_, err = manager.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerAddMore(t *testing.T) {
	manager := NewManager()
	created := manager.Create("x", domain.PreferenceSet{}, tracks("A", "B"))

	playlist, added, err := manager.AddMore(created.ID, tracks("B", "C"))

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, tracks("A", "B", "C"), playlist.Tracks)
}

func TestManagerRemoveTrack(t *testing.T) {
	manager := NewManager()
	created := manager.Create("x", domain.PreferenceSet{}, tracks("A", "B"))

	playlist, removed, err := manager.RemoveTrack(created.ID, "A")

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, tracks("B"), playlist.Tracks)
}

func TestManagerReplace(t *testing.T) {
	manager := NewManager()
	created := manager.Create("x", domain.PreferenceSet{}, tracks("A"))

	playlist, err := manager.Replace(created.ID, tracks("X", "Y"))

	require.NoError(t, err)
	assert.Equal(t, tracks("X", "Y"), playlist.Tracks)
}

func TestManagerListPagination(t *testing.T) {
	manager := NewManager()
	for i := 0; i < 25; i++ {
		manager.Create("x", domain.PreferenceSet{}, nil)
	}

	response := manager.List(1, 10)

	assert.Len(t, response.Playlists, 10)
	assert.Equal(t, 25, response.TotalPlaylists)
	assert.Equal(t, 3, response.TotalPages)

	lastPage := manager.List(3, 10)
	assert.Len(t, lastPage.Playlists, 5)

	beyond := manager.List(4, 10)
	assert.Empty(t, beyond.Playlists)
}

func TestListOrderingIsStable(t *testing.T) {
	manager := NewManager()
	for i := 0; i < 25; i++ {
		manager.Create(fmt.Sprintf("Session %d", i), domain.PreferenceSet{}, nil)
	}

	collect := func() []string {
		var ids []string
		for page := 1; page <= 3; page++ {
			response := manager.List(page, 10)
			for _, playlist := range response.Playlists {
				ids = append(ids, playlist.ID)
			}
		}
		return ids
	}

	first := collect()
	require.Len(t, first, 25)

	// No session may appear on two pages or fall between them
	seen := make(map[string]bool)
	for _, id := range first {
		assert.False(t, seen[id], "session %s listed twice", id)
		seen[id] = true
	}

	// Repeated listings walk the same order
	assert.Equal(t, first, collect())
}
