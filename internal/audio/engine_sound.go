package audio

import (
	"bytes"
	"io"
	"math"
)

// EngineLoopSeconds is the length of the generated engine clip.
const EngineLoopSeconds = 8

// EngineLoop returns a procedurally generated engine rumble: a low sawtooth
// whose pitch revs up and settles, with a little noise for texture.
func EngineLoop() (io.Reader, error) {
	return bytes.NewReader(genEngine(EngineLoopSeconds * SampleRate)), nil
}

func genEngine(frames int) []byte {
	buf := make([]byte, frames*BytesPerFrame)
	var seed uint64 = 0x5eed
	phase := 0.0

	for i := 0; i < frames; i++ {
		t := float64(i) / SampleRate
		progress := float64(i) / float64(frames)

		// Rev up over the first third, then idle with a slow wobble
		rpm := 38.0 + 30.0*math.Min(progress*3, 1) + 4*math.Sin(2*math.Pi*0.7*t)
		phase += rpm / SampleRate
		phase -= math.Floor(phase)

		saw := 2*phase - 1
		sub := math.Sin(2 * math.Pi * phase * 0.5)
		sample := 0.45*saw + 0.35*sub + 0.08*noise(&seed)

		// Fade in and out to avoid clicks
		env := math.Min(1, math.Min(progress*20, (1-progress)*20))
		putStereoS16(buf, i, softSat(sample*env))
	}
	return buf
}

// putStereoS16 writes a [-1,1] sample as signed 16-bit LE to both channels.
func putStereoS16(buf []byte, i int, sample float64) {
	v := int16(clamp(sample, -1, 1) * math.MaxInt16)
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// noise advances an LCG seed and returns a sample in [-1,1].
func noise(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
