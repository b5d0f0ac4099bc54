package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
)

// resampleQuality is passed to beep.Resample for WAV files recorded at
// another rate.
const resampleQuality = 4

// Player holds the decoded cues and mixes them onto the speaker.
// It is safe to call from the host goroutine while the speaker runs.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	sounds  [cueCount]*beep.Buffer
	active  [cueCount]*beep.Ctrl
	started bool
	logger  *log.Logger
}

// NewPlayer creates a player for the given audio settings. Nothing is
// loaded or opened until Load and Start.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

func (p *Player) format() beep.Format {
	return beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2}
}

// Load decodes every cue. With an empty dir the cues are synthesized,
// otherwise each cue's WAV file must exist in dir.
func (p *Player) Load(dir string) error {
	for c := Cue(0); c < cueCount; c++ {
		buf := beep.NewBuffer(p.format())

		if dir == "" {
			buf.Append(synthesize(c, p.rate))
		} else if err := p.loadFile(buf, filepath.Join(dir, c.FileName())); err != nil {
			return fmt.Errorf("audio: cue %s: %w", c, err)
		}

		p.mu.Lock()
		p.sounds[c] = buf
		p.mu.Unlock()
		p.logger.Debug("cue loaded", "cue", c, "samples", buf.Len())
	}
	return nil
}

func (p *Player) loadFile(buf *beep.Buffer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != p.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, p.rate, streamer)
	}
	buf.Append(s)
	return streamer.Err()
}

// Start opens the speaker and begins playing the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// lockSpeaker guards the mixer against the speaker goroutine.
// Callers hold p.mu.
func (p *Player) lockSpeaker() func() {
	if !p.started {
		return func() {}
	}
	speaker.Lock()
	return speaker.Unlock
}

// Play starts a cue from the beginning, cutting off the same cue if it
// is still sounding.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c < 0 || c >= cueCount || p.sounds[c] == nil {
		return
	}

	unlock := p.lockSpeaker()
	defer unlock()

	if prev := p.active[c]; prev != nil {
		prev.Streamer = nil
	}
	buf := p.sounds[c]
	ctrl := &beep.Ctrl{Streamer: withVolume(buf.Streamer(0, buf.Len()), p.volume)}
	p.active[c] = ctrl
	p.mixer.Add(ctrl)
}

// Stop silences a cue. The mixer drops it on its next pass.
func (p *Player) Stop(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c < 0 || c >= cueCount || p.active[c] == nil {
		return
	}

	unlock := p.lockSpeaker()
	defer unlock()

	p.active[c].Streamer = nil
	p.active[c] = nil
}

// Handle plays the cues for one tick's events, in order.
func (p *Player) Handle(events []core.Event) {
	for _, ev := range events {
		for _, a := range actionsFor(ev.Kind) {
			if a.stop {
				p.Stop(a.cue)
			} else {
				p.Play(a.cue)
			}
		}
	}
}

// Playing reports whether a cue was started and has not been stopped since.
func (p *Player) Playing(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return c >= 0 && c < cueCount && p.active[c] != nil && p.active[c].Streamer != nil
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	unlock := p.lockSpeaker()
	for i := range p.active {
		if p.active[i] != nil {
			p.active[i].Streamer = nil
			p.active[i] = nil
		}
	}
	p.mixer.Clear()
	unlock()

	if p.started {
		speaker.Close()
		p.started = false
	}
}

// withVolume scales a stream linearly; zero mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
