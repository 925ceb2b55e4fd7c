package favorites

import (
	"context"
	"time"
)

// Favorite is a locally saved track.
type Favorite struct {
	TrackID string    `json:"trackId"`
	Name    string    `json:"name"`
	Artist  string    `json:"artist"`
	AddedAt time.Time `json:"addedAt"`
}

// Store persists favorites locally.
type Store interface {
	List(ctx context.Context) ([]Favorite, error)
	Add(ctx context.Context, favorite Favorite) error
	Remove(ctx context.Context, trackID string) error
	Close() error
}

// Syncer mirrors favorite mutations to the user's catalog library. The
// spotify client satisfies it.
type Syncer interface {
	SaveTrack(ctx context.Context, trackID string) error
	UnsaveTrack(ctx context.Context, trackID string) error
}
