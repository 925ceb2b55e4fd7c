package favorites

import (
	"context"
	"log/slog"
	"time"
)

// syncTimeout bounds each background catalog sync call.
const syncTimeout = 10 * time.Second

// Repository coordinates the local favorites store with best-effort remote
// sync to the catalog. The local mutation always commits first; sync runs in
// the background and its failures are logged, never surfaced, so a catalog
// outage cannot block favoriting.
type Repository struct {
	store Store
}

// NewRepository creates a favorites repository over a local store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// List returns the locally stored favorites.
func (r *Repository) List(ctx context.Context) ([]Favorite, error) {
	return r.store.List(ctx)
}

// Add stores a favorite locally and mirrors it to the catalog in the
// background. The syncer is per-call because it is bound to the caller's
// token; a nil syncer skips the remote write.
func (r *Repository) Add(ctx context.Context, favorite Favorite, syncer Syncer) error {
	if err := r.store.Add(ctx, favorite); err != nil {
		return err
	}

	if syncer != nil {
		go func(trackID string) {
			syncCtx, cancel := context.WithTimeout(context.Background(), syncTimeout)
			defer cancel()

			if err := syncer.SaveTrack(syncCtx, trackID); err != nil {
				slog.Warn("Failed to sync favorite to catalog", "trackId", trackID, "error", err)
			}
		}(favorite.TrackID)
	}
	return nil
}

// Remove deletes a favorite locally and removes it from the catalog in the
// background.
func (r *Repository) Remove(ctx context.Context, trackID string, syncer Syncer) error {
	if err := r.store.Remove(ctx, trackID); err != nil {
		return err
	}

	if syncer != nil {
		go func() {
			syncCtx, cancel := context.WithTimeout(context.Background(), syncTimeout)
			defer cancel()

			if err := syncer.UnsaveTrack(syncCtx, trackID); err != nil {
				slog.Warn("Failed to remove favorite from catalog", "trackId", trackID, "error", err)
			}
		}()
	}
	return nil
}
