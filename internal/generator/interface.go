package generator

import (
	"context"

	"github.com/mixtape-labs/mixtape/internal/domain"
)

// Catalog is the subset of the catalog API the generator consumes. The
// spotify client satisfies it.
type Catalog interface {
	GetRecommendations(ctx context.Context, seedArtists, seedGenres, seedTracks []string, targetParams map[string]string, limit int) ([]domain.Track, error)
	GetUserTopTracks(ctx context.Context, limit int) ([]domain.Track, error)
}

// ProgressFunc receives progress updates during a generation call.
type ProgressFunc func(percent int, message string)
