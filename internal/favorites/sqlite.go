package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
	track_id TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	artist   TEXT NOT NULL,
	added_at TIMESTAMP NOT NULL
);`

// SQLiteStore implements the Store interface on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the favorites database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize favorites schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// List returns all favorites, most recently added first.
func (s *SQLiteStore) List(ctx context.Context) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT track_id, name, artist, added_at FROM favorites ORDER BY added_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var favorite Favorite
		if err := rows.Scan(&favorite.TrackID, &favorite.Name, &favorite.Artist, &favorite.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, favorite)
	}
	return favorites, rows.Err()
}

// Add inserts a favorite; adding a track twice is a no-op.
func (s *SQLiteStore) Add(ctx context.Context, favorite Favorite) error {
	if favorite.AddedAt.IsZero() {
		favorite.AddedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO favorites (track_id, name, artist, added_at) VALUES (?, ?, ?, ?)",
		favorite.TrackID, favorite.Name, favorite.Artist, favorite.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes a favorite by track id.
func (s *SQLiteStore) Remove(ctx context.Context, trackID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM favorites WHERE track_id = ?", trackID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
