package playlist

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mixtape-labs/mixtape/internal/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Manager holds the generated playlist sessions
type Manager struct {
	mu        sync.RWMutex
	playlists map[string]*Playlist
}

// NewManager creates a new playlist manager
func NewManager() *Manager {
	return &Manager{
		playlists: make(map[string]*Playlist),
	}
}

// Create stores a freshly generated playlist and returns it
func (m *Manager) Create(name string, prefs domain.PreferenceSet, tracks []domain.Track) *Playlist {
	if name == "" {
		name = fmt.Sprintf("Mixtape %s", time.Now().Format("Jan 2 15:04"))
	}

	playlist := &Playlist{
		ID:          uuid.NewString(),
		Name:        name,
		CreatedAt:   time.Now(),
		Preferences: prefs,
		Tracks:      tracks,
	}

	m.mu.Lock()
	m.playlists[playlist.ID] = playlist
	m.mu.Unlock()

	return playlist
}

// Get retrieves a playlist by ID
func (m *Manager) Get(id string) (*Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	playlist, exists := m.playlists[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return playlist, nil
}

// Delete removes a playlist session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.playlists[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.playlists, id)
	return nil
}

// AddMore appends the non-duplicate tracks from batch to a playlist
func (m *Manager) AddMore(id string, batch []domain.Track) (*Playlist, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, exists := m.playlists[id]
	if !exists {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	added := playlist.AddMore(batch)
	return playlist, added, nil
}

// RemoveTrack removes a track from a playlist by track ID
func (m *Manager) RemoveTrack(id, trackID string) (*Playlist, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, exists := m.playlists[id]
	if !exists {
		return nil, false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	removed := playlist.Remove(trackID)
	return playlist, removed, nil
}

// Reorder replaces a playlist's track order wholesale
func (m *Manager) Reorder(id string, tracks []domain.Track) (*Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, exists := m.playlists[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	playlist.Reorder(tracks)
	return playlist, nil
}

// Replace swaps in a freshly generated track list for a playlist
func (m *Manager) Replace(id string, tracks []domain.Track) (*Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, exists := m.playlists[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	playlist.Replace(tracks)
	return playlist, nil
}

// Response is a paginated playlist listing
type Response struct {
	Playlists      []*Playlist `json:"playlists"`
	Page           int         `json:"page"`
	PageSize       int         `json:"pageSize"`
	TotalPlaylists int         `json:"totalPlaylists"`
	TotalPages     int         `json:"totalPages"`
}

// List lists all playlist sessions with pagination
func (m *Manager) List(page, pageSize int) *Response {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	m.mu.RLock()
	playlists := make([]*Playlist, 0, len(m.playlists))
	for _, playlist := range m.playlists {
		playlists = append(playlists, playlist)
	}
	m.mu.RUnlock()

	// Map iteration order is randomized; page boundaries need a stable
	// ordering across calls.
	sort.Slice(playlists, func(i, j int) bool {
		if playlists[i].CreatedAt.Equal(playlists[j].CreatedAt) {
			return playlists[i].ID < playlists[j].ID
		}
		return playlists[i].CreatedAt.Before(playlists[j].CreatedAt)
	})

	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(playlists) {
		return &Response{
			Playlists:      []*Playlist{},
			Page:           page,
			PageSize:       pageSize,
			TotalPlaylists: len(playlists),
			TotalPages:     (len(playlists) + pageSize - 1) / pageSize,
		}
	}

	if end > len(playlists) {
		end = len(playlists)
	}

	return &Response{
		Playlists:      playlists[start:end],
		Page:           page,
		PageSize:       pageSize,
		TotalPlaylists: len(playlists),
		TotalPages:     (len(playlists) + pageSize - 1) / pageSize,
	}
}
