package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Durations of the synthesized cues.
const (
	dropDuration    = 1200 * time.Millisecond
	destroyDuration = 400 * time.Millisecond
	crashDuration   = 1500 * time.Millisecond
)

// whistle is a falling tone, the classic bomb drop.
type whistle struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func newWhistle(sr beep.SampleRate, from, to float64, d time.Duration) *whistle {
	return &whistle{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (w *whistle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if w.pos >= w.total {
			return i, i > 0
		}
		progress := float64(w.pos) / float64(w.total)
		freq := w.from + (w.to-w.from)*progress

		// Fade out over the last fifth
		amp := 0.3
		if progress > 0.8 {
			amp *= (1 - progress) / 0.2
		}

		v := amp * math.Sin(2*math.Pi*w.phase)
		samples[i][0] = v
		samples[i][1] = v

		w.phase += freq / float64(w.sr)
		w.phase -= math.Floor(w.phase)
		w.pos++
	}
	return len(samples), true
}

func (w *whistle) Err() error { return nil }

// blast is decaying noise over a low rumble.
type blast struct {
	sr     beep.SampleRate
	rumble float64 // Hz
	decay  float64 // Envelope rate, higher is shorter
	seed   int64
	pos    int
	total  int
}

func newBlast(sr beep.SampleRate, rumble, decay float64, d time.Duration) *blast {
	return &blast{sr: sr, rumble: rumble, decay: decay, seed: 1, total: sr.N(d)}
}

func (b *blast) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.sr)
		env := math.Exp(-t * b.decay)

		b.seed = (b.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(b.seed)/float64(0x7fffffff)*2 - 1

		v := env * (0.35*noise + 0.3*math.Sin(2*math.Pi*b.rumble*t))
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *blast) Err() error { return nil }

// synthesize returns the built-in sound for a cue.
func synthesize(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueDrop:
		return newWhistle(sr, 1400, 500, dropDuration)
	case CueDestroy:
		return newBlast(sr, 90, 9, destroyDuration)
	case CueCrash:
		return newBlast(sr, 55, 3, crashDuration)
	default:
		return beep.Silence(0)
	}
}
