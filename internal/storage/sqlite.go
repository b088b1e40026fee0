// Package storage keeps the profile image in a local SQLite file.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoImage is returned when the profile image slot is empty.
var ErrNoImage = errors.New("storage: no profile image")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ProfileImage is the content of the single image slot.
type ProfileImage struct {
	Data      []byte // Encoded JPEG
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile_image (
			slot INTEGER PRIMARY KEY CHECK (slot = 1),
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProfileImage overwrites the image slot.
func (s *Store) SaveProfileImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("storage: refusing to save empty image")
	}

	_, err := s.db.Exec(
		`INSERT INTO profile_image (slot, data, updated_at)
		 VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile image: %w", err)
	}
	return nil
}

// LoadProfileImage reads the image slot. Returns ErrNoImage when empty.
func (s *Store) LoadProfileImage() (ProfileImage, error) {
	var img ProfileImage
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT data, updated_at FROM profile_image WHERE slot = 1",
	).Scan(&img.Data, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ProfileImage{}, ErrNoImage
	}
	if err != nil {
		return ProfileImage{}, fmt.Errorf("storage: cannot load profile image: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		img.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			img.UpdatedAt = parsed
		}
	}

	return img, nil
}

// ClearProfileImage empties the image slot.
func (s *Store) ClearProfileImage() error {
	if _, err := s.db.Exec("DELETE FROM profile_image"); err != nil {
		return fmt.Errorf("storage: cannot clear profile image: %w", err)
	}
	return nil
}
