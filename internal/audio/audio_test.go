package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type fakePlayer struct {
	src     io.Reader
	playing bool
	closed  bool
	volume  float64
}

func (p *fakePlayer) Play()               { p.playing = true }
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }
func (p *fakePlayer) Close() error        { p.closed = true; return nil }

type fakeOutput struct {
	players []*fakePlayer
}

func (o *fakeOutput) NewPlayer(r io.Reader) Player {
	p := &fakePlayer{src: r}
	o.players = append(o.players, p)
	return p
}

func silence() (io.Reader, error) {
	return bytes.NewReader(make([]byte, 64)), nil
}

func TestToggleStartsAndStops(t *testing.T) {
	out := &fakeOutput{}
	s := NewServiceWithOutput(out, silence, 0.6, nil)

	if s.IsPlaying() {
		t.Fatal("New service should be silent")
	}

	if !s.Toggle() || !s.IsPlaying() {
		t.Fatal("First toggle should start playback")
	}
	if len(out.players) != 1 || out.players[0].volume != 0.6 {
		t.Fatalf("Expected one player at volume 0.6, got %+v", out.players)
	}

	if s.Toggle() || s.IsPlaying() {
		t.Fatal("Second toggle should stop playback")
	}
	if !out.players[0].closed {
		t.Error("Stopped player should be discarded")
	}

	s.Toggle()
	if len(out.players) != 2 {
		t.Errorf("Third toggle should create a fresh player, got %d", len(out.players))
	}
}

func TestToggleAfterPlaybackFinished(t *testing.T) {
	out := &fakeOutput{}
	s := NewServiceWithOutput(out, silence, 1, nil)

	s.Toggle()
	out.players[0].playing = false // Clip ran out

	if s.IsPlaying() {
		t.Fatal("Finished clip should not report playing")
	}
	if !s.Toggle() {
		t.Error("Toggle after a finished clip should start again")
	}
	if !out.players[0].closed {
		t.Error("Finished player should be closed before starting over")
	}
}

func TestToggleSourceError(t *testing.T) {
	var logs bytes.Buffer
	out := &fakeOutput{}
	s := NewServiceWithOutput(out, func() (io.Reader, error) {
		return nil, errors.New("no such file")
	}, 1, log.New(&logs))

	if s.Toggle() {
		t.Error("Toggle should report stopped when the source fails")
	}
	if len(out.players) != 0 {
		t.Error("No player should be created")
	}
	if !bytes.Contains(logs.Bytes(), []byte("no such file")) {
		t.Errorf("Expected error to be logged, got %q", logs.String())
	}
}

func TestDisabledService(t *testing.T) {
	s := NewDisabled(nil)
	if s.Enabled() {
		t.Error("Disabled service reports enabled")
	}
	if s.Toggle() || s.IsPlaying() {
		t.Error("Disabled service must stay silent")
	}
	s.Stop()

	var nilService *Service
	if nilService.Toggle() || nilService.IsPlaying() {
		t.Error("Nil service must stay silent")
	}
}

func TestVolumeClamped(t *testing.T) {
	out := &fakeOutput{}
	NewServiceWithOutput(out, silence, 3, nil).Toggle()
	if out.players[0].volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", out.players[0].volume)
	}
}

func TestEngineLoop(t *testing.T) {
	r, err := EngineLoop()
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != EngineLoopSeconds*SampleRate*BytesPerFrame {
		t.Fatalf("Unexpected clip length %d", len(data))
	}

	// Faded edges, audible middle
	if data[0] != 0 || data[1] != 0 {
		t.Error("Clip should start silent")
	}
	mid := len(data) / 2
	loud := false
	for i := mid; i < mid+4000; i += 2 {
		v := int16(uint16(data[i]) | uint16(data[i+1])<<8)
		if v > 1000 || v < -1000 {
			loud = true
			break
		}
	}
	if !loud {
		t.Error("Clip middle should be audible")
	}
}

func TestMP3SourceMissingFile(t *testing.T) {
	src := mp3Source("/nonexistent/engine.mp3", log.New(io.Discard))
	if _, err := src(); err == nil {
		t.Error("Expected error for missing file")
	}
}
