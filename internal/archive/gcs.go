package archive

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSStorage implements the Storage interface for Google Cloud Storage.
type GCSStorage struct {
	client       *storage.Client
	bucket       string
	objectPrefix string
}

// NewGCSStorage creates a GCS-backed snapshot store.
func NewGCSStorage(ctx context.Context, bucketName, objectPrefix, credentialsFile string) (*GCSStorage, error) {
	var client *storage.Client
	var err error

	if credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		// Use application default credentials
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:       client,
		bucket:       bucketName,
		objectPrefix: objectPrefix,
	}, nil
}

// SaveSnapshot uploads a snapshot object and returns its object path.
func (s *GCSStorage) SaveSnapshot(ctx context.Context, name string, data []byte) (string, error) {
	objectName := s.objectPath(name)

	writer := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write snapshot to GCS: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize snapshot upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, objectName), nil
}

// ListSnapshots returns the names of all snapshot objects under the prefix.
func (s *GCSStorage) ListSnapshots(ctx context.Context) ([]string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.objectPrefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", err)
		}
		names = append(names, path.Base(attrs.Name))
	}
	return names, nil
}

// GetReader opens a snapshot object for reading.
func (s *GCSStorage) GetReader(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := s.client.Bucket(s.bucket).Object(s.objectPath(name)).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	return reader, nil
}

func (s *GCSStorage) objectPath(name string) string {
	return path.Join(s.objectPrefix, snapshotFilename(name))
}
