package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mixtape-labs/mixtape/config"
	"github.com/mixtape-labs/mixtape/internal/archive"
	"github.com/mixtape-labs/mixtape/internal/domain"
	"github.com/mixtape-labs/mixtape/internal/favorites"
	"github.com/mixtape-labs/mixtape/internal/generator"
	"github.com/mixtape-labs/mixtape/internal/playlist"
)

// mockCatalogClient implements CatalogClient with function fields, in the
// same style as generator.MockCatalog.
type mockCatalogClient struct {
	generator.MockCatalog

	GetUserProfileFunc   func(ctx context.Context) (*domain.Profile, error)
	SearchArtistsFunc    func(ctx context.Context, q string) ([]domain.Artist, error)
	SearchTracksFunc     func(ctx context.Context, q string) ([]domain.Track, error)
	GetUserPlaylistsFunc func(ctx context.Context) ([]domain.SavedPlaylist, error)
	CreatePlaylistFunc   func(ctx context.Context, userID, name, description string) (*domain.SavedPlaylist, error)
	AddTracksFunc        func(ctx context.Context, playlistID string, uris []string) error
	RemoveTrackFunc      func(ctx context.Context, playlistID, uri string) error
	DeletePlaylistFunc   func(ctx context.Context, playlistID string) error
	SaveTrackFunc        func(ctx context.Context, trackID string) error
	UnsaveTrackFunc      func(ctx context.Context, trackID string) error
}

func (m *mockCatalogClient) GetUserProfile(ctx context.Context) (*domain.Profile, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx)
	}
	return &domain.Profile{ID: "user1", DisplayName: "Test User"}, nil
}

func (m *mockCatalogClient) SearchArtists(ctx context.Context, q string) ([]domain.Artist, error) {
	if m.SearchArtistsFunc != nil {
		return m.SearchArtistsFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockCatalogClient) SearchTracks(ctx context.Context, q string) ([]domain.Track, error) {
	if m.SearchTracksFunc != nil {
		return m.SearchTracksFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockCatalogClient) GetUserPlaylists(ctx context.Context) ([]domain.SavedPlaylist, error) {
	if m.GetUserPlaylistsFunc != nil {
		return m.GetUserPlaylistsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogClient) CreatePlaylist(ctx context.Context, userID, name, description string) (*domain.SavedPlaylist, error) {
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, userID, name, description)
	}
	return &domain.SavedPlaylist{ID: "catalog-pl", Name: name}, nil
}

func (m *mockCatalogClient) AddTracksToPlaylist(ctx context.Context, playlistID string, uris []string) error {
	if m.AddTracksFunc != nil {
		return m.AddTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *mockCatalogClient) RemoveTrackFromPlaylist(ctx context.Context, playlistID, uri string) error {
	if m.RemoveTrackFunc != nil {
		return m.RemoveTrackFunc(ctx, playlistID, uri)
	}
	return nil
}

func (m *mockCatalogClient) DeletePlaylist(ctx context.Context, playlistID string) error {
	if m.DeletePlaylistFunc != nil {
		return m.DeletePlaylistFunc(ctx, playlistID)
	}
	return nil
}

func (m *mockCatalogClient) SaveTrack(ctx context.Context, trackID string) error {
	if m.SaveTrackFunc != nil {
		return m.SaveTrackFunc(ctx, trackID)
	}
	return nil
}

func (m *mockCatalogClient) UnsaveTrack(ctx context.Context, trackID string) error {
	if m.UnsaveTrackFunc != nil {
		return m.UnsaveTrackFunc(ctx, trackID)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Generator: config.GeneratorConfig{
			MaxPlaylistSize: 30,
			MinSeededYield:  15,
			MinGenreYield:   10,
			TopTracksLimit:  15,
			RequestLimit:    30,
		},
	}
}

// newTestServer wires a server around a mock catalog client
func newTestServer(t *testing.T, catalog CatalogClient) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := favorites.NewSQLiteStore(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	archiveStorage, err := archive.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	cfg := testConfig()
	server := &Server{
		cfg:        cfg,
		router:     gin.New(),
		generator:  generator.New(cfg.Generator),
		playlists:  playlist.NewManager(),
		favorites:  favorites.NewRepository(store),
		archive:    archiveStorage,
		newCatalog: func(string) CatalogClient { return catalog },
	}
	server.setupRoutes()
	return server
}

func performRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}
