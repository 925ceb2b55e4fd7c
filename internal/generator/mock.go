package generator

import (
	"context"

	"github.com/mixtape-labs/mixtape/internal/domain"
)

// MockCatalog is a mock implementation of Catalog for testing
type MockCatalog struct {
	GetRecommendationsFunc func(ctx context.Context, seedArtists, seedGenres, seedTracks []string, targetParams map[string]string, limit int) ([]domain.Track, error)
	GetUserTopTracksFunc   func(ctx context.Context, limit int) ([]domain.Track, error)
}

// GetRecommendations implements the Catalog interface
func (m *MockCatalog) GetRecommendations(ctx context.Context, seedArtists, seedGenres, seedTracks []string, targetParams map[string]string, limit int) ([]domain.Track, error) {
	if m.GetRecommendationsFunc != nil {
		return m.GetRecommendationsFunc(ctx, seedArtists, seedGenres, seedTracks, targetParams, limit)
	}
	return nil, nil
}

// GetUserTopTracks implements the Catalog interface
func (m *MockCatalog) GetUserTopTracks(ctx context.Context, limit int) ([]domain.Track, error) {
	if m.GetUserTopTracksFunc != nil {
		return m.GetUserTopTracksFunc(ctx, limit)
	}
	return nil, nil
}
