package profile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Picker accepts png files
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carsamedia/internal/storage"
)

// JPEGQuality is the encoding quality used for the saved photo.
const JPEGQuality = 80

// Slot is the single overwriteable record the photo lives in.
// *storage.Store satisfies it.
type Slot interface {
	SaveProfileImage(data []byte) error
	LoadProfileImage() (storage.ProfileImage, error)
}

// ImageStore saves and loads the profile photo. Failures are logged and
// never returned; a failed save leaves the previous photo in place and a
// failed load looks like an empty slot.
type ImageStore struct {
	slot   Slot
	logger *log.Logger
}

// NewImageStore creates a store over slot. A nil slot gives a store that
// never holds a photo.
func NewImageStore(slot Slot, logger *log.Logger) *ImageStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ImageStore{slot: slot, logger: logger}
}

// Save encodes img as JPEG and overwrites the slot.
func (s *ImageStore) Save(img image.Image) {
	if img == nil {
		return
	}
	if s.slot == nil {
		s.logger.Warn("no image slot, photo not saved")
		return
	}

	data, err := EncodeJPEG(img)
	if err != nil {
		s.logger.Error("could not encode profile photo", "error", err)
		return
	}

	if err := s.slot.SaveProfileImage(data); err != nil {
		s.logger.Error("could not save profile photo", "error", err)
		return
	}
	s.logger.Debug("profile photo saved", "bytes", len(data))
}

// Load returns the saved photo, or nil when there is none.
func (s *ImageStore) Load() image.Image {
	if s.slot == nil {
		return nil
	}

	stored, err := s.slot.LoadProfileImage()
	if errors.Is(err, storage.ErrNoImage) {
		return nil
	}
	if err != nil {
		s.logger.Error("could not load profile photo", "error", err)
		return nil
	}

	img, err := DecodeJPEG(stored.Data)
	if err != nil {
		s.logger.Error("could not decode profile photo", "error", err)
		return nil
	}
	return img
}

// EncodeJPEG encodes img the way the slot stores it.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("profile: cannot encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeJPEG decodes slot data.
func DecodeJPEG(data []byte) (image.Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("profile: cannot decode jpeg: %w", err)
	}
	return img, nil
}

// LoadImageFile decodes a jpeg or png file from disk.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot decode %s: %w", path, err)
	}
	return img, nil
}
