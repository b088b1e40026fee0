// Package audio plays the engine sound behind the Game tab's sound toggle.
package audio

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/go-mp3"
	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = ChannelCount * 2 // 16-bit samples
)

// Player is the playback handle the service drives. oto.Player satisfies it.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(v float64)
	Close() error
}

// Output creates players for PCM streams in the service's format.
type Output interface {
	NewPlayer(r io.Reader) Player
}

// Source opens a fresh PCM stream for one playback.
type Source func() (io.Reader, error)

// Service toggles a single sound on and off. A Service without an output is
// disabled: Toggle logs and stays silent.
type Service struct {
	mu     sync.Mutex
	out    Output
	source Source
	volume float64
	player Player
	logger *log.Logger
}

// Options configures NewService.
type Options struct {
	File   string  // Optional mp3 file, empty uses the built-in engine loop
	Volume float64 // 0..1
	Logger *log.Logger
}

// NewService opens the audio device. If it cannot be opened the returned
// service is disabled.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatSignedInt16LE)
	if err != nil {
		logger.Warn("audio device unavailable, sound disabled", "error", err)
		return NewDisabled(logger)
	}

	source := EngineLoop
	if opts.File != "" {
		source = mp3Source(opts.File, logger)
	}

	return NewServiceWithOutput(&otoOutput{ctx: ctx, ready: ready}, source, opts.Volume, logger)
}

// NewServiceWithOutput creates a service over an explicit output.
func NewServiceWithOutput(out Output, source Source, volume float64, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		out:    out,
		source: source,
		volume: clamp(volume, 0, 1),
		logger: logger,
	}
}

// NewDisabled returns a service that never plays.
func NewDisabled(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{logger: logger}
}

// Enabled reports whether the service has an audio output.
func (s *Service) Enabled() bool {
	return s != nil && s.out != nil
}

// Toggle starts playback when stopped and stops it when playing. It returns
// the new playing state.
func (s *Service) Toggle() bool {
	if !s.Enabled() {
		if s != nil {
			s.logger.Debug("sound toggle ignored, audio disabled")
		}
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil && s.player.IsPlaying() {
		s.stopLocked()
		return false
	}

	// Finished players are discarded before starting over
	s.stopLocked()

	r, err := s.source()
	if err != nil {
		s.logger.Error("could not open sound", "error", err)
		return false
	}

	s.player = s.out.NewPlayer(r)
	s.player.SetVolume(s.volume)
	s.player.Play()
	return true
}

// IsPlaying reports whether a sound is currently audible.
func (s *Service) IsPlaying() bool {
	if !s.Enabled() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil && s.player.IsPlaying()
}

// Stop silences and discards the current player.
func (s *Service) Stop() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Service) stopLocked() {
	if s.player == nil {
		return
	}
	s.player.Pause()
	if err := s.player.Close(); err != nil {
		s.logger.Debug("closing player", "error", err)
	}
	s.player = nil
}

// otoOutput adapts an oto context to Output.
type otoOutput struct {
	ctx   *oto.Context
	ready chan struct{}
}

func (o *otoOutput) NewPlayer(r io.Reader) Player {
	<-o.ready
	return o.ctx.NewPlayer(r)
}

// mp3Source decodes path on every playback. Files at another sample rate
// fall back to the engine loop.
func mp3Source(path string, logger *log.Logger) Source {
	return func() (io.Reader, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
		}

		d, err := mp3.NewDecoder(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
		}

		if d.SampleRate() != SampleRate {
			f.Close()
			logger.Warn("unsupported mp3 sample rate, using engine loop",
				"file", path, "rate", d.SampleRate())
			return EngineLoop()
		}

		return &closingReader{r: d, c: f}, nil
	}
}

// closingReader closes c once r is drained.
type closingReader struct {
	r io.Reader
	c io.Closer
}

func (cr *closingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if err == io.EOF && cr.c != nil {
		cr.c.Close()
		cr.c = nil
	}
	return n, err
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
