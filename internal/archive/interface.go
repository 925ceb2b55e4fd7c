package archive

import (
	"context"
	"fmt"
	"io"

	"github.com/mixtape-labs/mixtape/config"
)

// Storage persists JSON snapshots of generated playlists, either on the
// local filesystem or in a GCS bucket.
type Storage interface {
	SaveSnapshot(ctx context.Context, name string, data []byte) (string, error)

	ListSnapshots(ctx context.Context) ([]string, error)

	GetReader(ctx context.Context, name string) (io.ReadCloser, error)
}

// New creates the storage backend selected in the config.
func New(ctx context.Context, cfg config.ArchiveConfig) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg.OutputDir)
	case "gcs":
		return NewGCSStorage(ctx, cfg.Bucket, cfg.ObjectPrefix, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown archive storage type: %s", cfg.Type)
	}
}
