package profile

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carsamedia/internal/storage"
)

// memSlot is an in-memory Slot that can be told to fail.
type memSlot struct {
	data    []byte
	saveErr error
	loadErr error
	saves   int
}

func (s *memSlot) SaveProfileImage(data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *memSlot) LoadProfileImage() (storage.ProfileImage, error) {
	if s.loadErr != nil {
		return storage.ProfileImage{}, s.loadErr
	}
	if s.data == nil {
		return storage.ProfileImage{}, storage.ErrNoImage
	}
	return storage.ProfileImage{Data: s.data, UpdatedAt: time.Now()}, nil
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSessionSignIn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{"plain", "alice", "alice", nil},
		{"trimmed", "  bob \t", "bob", nil},
		{"empty", "", "", ErrEmptyUsername},
		{"whitespace", "   ", "", ErrEmptyUsername},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s Session
			err := s.SignIn(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("SignIn(%q) error = %v, expected %v", tc.input, err, tc.err)
			}
			if s.Username() != tc.expected {
				t.Errorf("Username() = %q, expected %q", s.Username(), tc.expected)
			}
			if s.SignedIn() != (tc.err == nil) {
				t.Errorf("SignedIn() = %v", s.SignedIn())
			}
		})
	}
}

func TestSessionSignOut(t *testing.T) {
	var s Session
	if err := s.SignIn("carol"); err != nil {
		t.Fatal(err)
	}
	s.SignOut()
	if s.SignedIn() || s.Username() != "" {
		t.Error("SignOut() should clear the session")
	}
}

func TestImageStoreRoundTrip(t *testing.T) {
	slot := &memSlot{}
	store := NewImageStore(slot, nil)

	if store.Load() != nil {
		t.Fatal("Expected nil image from empty slot")
	}

	store.Save(solidImage(16, 16, color.RGBA{200, 30, 30, 255}))
	if slot.saves != 1 {
		t.Fatalf("Expected one save, got %d", slot.saves)
	}

	img := store.Load()
	if img == nil {
		t.Fatal("Expected saved image")
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
	r, _, _, _ := img.At(8, 8).RGBA()
	if r>>8 < 150 {
		t.Errorf("Expected a red pixel after JPEG round trip, got r=%d", r>>8)
	}
}

func TestImageStoreFailuresAreSilent(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	slot := &memSlot{data: []byte("old"), saveErr: errors.New("disk full")}
	store := NewImageStore(slot, logger)

	store.Save(solidImage(4, 4, color.White))
	if string(slot.data) != "old" {
		t.Error("Failed save should leave the previous photo")
	}
	if !bytes.Contains(logs.Bytes(), []byte("disk full")) {
		t.Errorf("Expected failure to be logged, got %q", logs.String())
	}

	// Stored bytes are not a JPEG
	slot.saveErr = nil
	if store.Load() != nil {
		t.Error("Corrupt photo should load as nil")
	}

	slot.loadErr = errors.New("locked")
	if store.Load() != nil {
		t.Error("Load error should look like an empty slot")
	}
}

func TestImageStoreWithoutSlot(t *testing.T) {
	store := NewImageStore(nil, nil)
	store.Save(solidImage(2, 2, color.Black))
	if store.Load() != nil {
		t.Error("Store without a slot never holds a photo")
	}
}

func TestImageStoreOverSQLite(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "p.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer db.Close()

	store := NewImageStore(db, nil)
	store.Save(solidImage(8, 6, color.RGBA{0, 0, 255, 255}))
	store.Save(solidImage(10, 4, color.RGBA{0, 255, 0, 255}))

	img := store.Load()
	if img == nil || img.Bounds().Dx() != 10 {
		t.Fatalf("Expected latest 10px-wide photo, got %v", img)
	}
}

func TestThumbnailSize(t *testing.T) {
	img := solidImage(40, 20, color.RGBA{10, 20, 30, 255})
	rows := Thumbnail(img, 12, 6)

	if len(rows) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w != 12 {
			t.Errorf("Row %d width = %d, expected 12", i, w)
		}
	}

	if Thumbnail(img, 0, 5) != nil {
		t.Error("Zero width should give no rows")
	}
}

func TestThumbnailPlaceholder(t *testing.T) {
	rows := Thumbnail(nil, 14, 7)
	if len(rows) != 7 {
		t.Fatalf("Expected 7 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w != 14 {
			t.Errorf("Row %d width = %d, expected 14", i, w)
		}
	}
	drawn := false
	for _, row := range rows {
		if bytes.ContainsRune([]byte(row), '█') {
			drawn = true
		}
	}
	if !drawn {
		t.Error("Placeholder should draw a silhouette")
	}
}

func TestCropToAspect(t *testing.T) {
	tests := []struct {
		name     string
		r        image.Rectangle
		w, h     int
		expected image.Rectangle
	}{
		{"wide to square", image.Rect(0, 0, 200, 100), 1, 1, image.Rect(50, 0, 150, 100)},
		{"tall to square", image.Rect(0, 0, 100, 300), 1, 1, image.Rect(0, 100, 100, 200)},
		{"already matching", image.Rect(0, 0, 80, 40), 2, 1, image.Rect(0, 0, 80, 40)},
	}

	for _, tc := range tests {
		if got := cropToAspect(tc.r, tc.w, tc.h); got != tc.expected {
			t.Errorf("%s: got %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestLoadImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "me.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(5, 3, color.White)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := LoadImageFile(path)
	if err != nil {
		t.Fatalf("LoadImageFile() failed: %v", err)
	}
	if img.Bounds().Dx() != 5 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}

	if _, err := LoadImageFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.jpg")
	os.WriteFile(bad, []byte("not an image"), 0o644)
	if _, err := LoadImageFile(bad); err == nil {
		t.Error("Expected error for undecodable file")
	}
}
