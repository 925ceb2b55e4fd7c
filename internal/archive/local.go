package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements the Storage interface on the local filesystem.
type LocalStorage struct {
	outputDir string
}

// NewLocalStorage creates a local snapshot store rooted at outputDir.
func NewLocalStorage(outputDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	return &LocalStorage{outputDir: outputDir}, nil
}

// SaveSnapshot writes a snapshot file and returns its path.
func (s *LocalStorage) SaveSnapshot(_ context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.outputDir, snapshotFilename(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

// ListSnapshots returns the names of all stored snapshots.
func (s *LocalStorage) ListSnapshots(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// GetReader opens a stored snapshot for reading.
func (s *LocalStorage) GetReader(_ context.Context, name string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.outputDir, snapshotFilename(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	return file, nil
}

// snapshotFilename sanitizes a snapshot name into a flat .json filename.
func snapshotFilename(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	name = replacer.Replace(name)
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
