package server

import (
	"context"

	"github.com/mixtape-labs/mixtape/internal/domain"
	"github.com/mixtape-labs/mixtape/internal/generator"
)

// CatalogClient is the full catalog API surface the handlers consume. The
// spotify client satisfies it; tests substitute a mock.
type CatalogClient interface {
	generator.Catalog

	GetUserProfile(ctx context.Context) (*domain.Profile, error)
	SearchArtists(ctx context.Context, q string) ([]domain.Artist, error)
	SearchTracks(ctx context.Context, q string) ([]domain.Track, error)
	GetUserPlaylists(ctx context.Context) ([]domain.SavedPlaylist, error)
	CreatePlaylist(ctx context.Context, userID, name, description string) (*domain.SavedPlaylist, error)
	AddTracksToPlaylist(ctx context.Context, playlistID string, uris []string) error
	RemoveTrackFromPlaylist(ctx context.Context, playlistID, uri string) error
	DeletePlaylist(ctx context.Context, playlistID string) error
	SaveTrack(ctx context.Context, trackID string) error
	UnsaveTrack(ctx context.Context, trackID string) error
}

// GeneratePlaylistRequest represents the request body for generating a playlist
type GeneratePlaylistRequest struct {
	Name        string               `json:"name"`
	Preferences domain.PreferenceSet `json:"preferences"`
}

// ReorderRequest carries the caller-supplied track order
type ReorderRequest struct {
	Tracks []domain.Track `json:"tracks" binding:"required"`
}

// SavePlaylistRequest represents a request to save a playlist to the catalog
type SavePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddCatalogTracksRequest carries track URIs for a catalog playlist
type AddCatalogTracksRequest struct {
	URIs []string `json:"uris" binding:"required"`
}

// FavoriteRequest carries the track metadata stored with a favorite
type FavoriteRequest struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

// MessageResponse represents a generic message payload used for success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents a generic error payload used for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
