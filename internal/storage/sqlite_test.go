package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created along with its parents
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestLoadEmptySlot(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadProfileImage()
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("Expected ErrNoImage, got %v", err)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveProfileImage([]byte("first")); err != nil {
		t.Fatalf("SaveProfileImage() failed: %v", err)
	}
	if err := store.SaveProfileImage([]byte("second")); err != nil {
		t.Fatalf("SaveProfileImage() failed: %v", err)
	}

	img, err := store.LoadProfileImage()
	if err != nil {
		t.Fatalf("LoadProfileImage() failed: %v", err)
	}
	if !bytes.Equal(img.Data, []byte("second")) {
		t.Errorf("Expected latest image, got %q", img.Data)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM profile_image").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected a single slot row, got %d", rows)
	}
}

func TestSaveRejectsEmpty(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveProfileImage(nil); err == nil {
		t.Error("Expected error for empty image")
	}
}

func TestClearProfileImage(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveProfileImage([]byte("img")); err != nil {
		t.Fatalf("SaveProfileImage() failed: %v", err)
	}
	if err := store.ClearProfileImage(); err != nil {
		t.Fatalf("ClearProfileImage() failed: %v", err)
	}
	if _, err := store.LoadProfileImage(); !errors.Is(err, ErrNoImage) {
		t.Errorf("Expected ErrNoImage after clear, got %v", err)
	}

	// Clearing an empty slot is fine
	if err := store.ClearProfileImage(); err != nil {
		t.Errorf("ClearProfileImage() on empty slot failed: %v", err)
	}
}

func TestSlotPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveProfileImage([]byte("kept")); err != nil {
		t.Fatalf("SaveProfileImage() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	img, err := store.LoadProfileImage()
	if err != nil {
		t.Fatalf("LoadProfileImage() failed: %v", err)
	}
	if string(img.Data) != "kept" {
		t.Errorf("Expected kept image, got %q", img.Data)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.carsamedia/x.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("Expected %q to start with %q", got, home)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("Absolute path changed: %q", got)
	}
}
