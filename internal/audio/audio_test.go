package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
)

func testAudioConfig() config.AudioConfig {
	return config.DefaultBomberConfig().Audio
}

func TestCueNames(t *testing.T) {
	tests := []struct {
		cue  Cue
		name string
		file string
	}{
		{CueDrop, "drop", "bomb_dropping.wav"},
		{CueDestroy, "destroy", "bomb-explode.wav"},
		{CueCrash, "crash", "bomb_explosion.wav"},
		{Cue(42), "unknown", ""},
	}

	for _, tt := range tests {
		if got := tt.cue.String(); got != tt.name {
			t.Errorf("Cue(%d).String() = %q, expected %q", tt.cue, got, tt.name)
		}
		if got := tt.cue.FileName(); got != tt.file {
			t.Errorf("Cue(%d).FileName() = %q, expected %q", tt.cue, got, tt.file)
		}
	}
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		kind     core.EventKind
		expected []cueAction
	}{
		{core.EventBombDropped, []cueAction{{cue: CueDrop}}},
		{core.EventLevelDestroyed, []cueAction{{cue: CueDrop, stop: true}, {cue: CueDestroy}}},
		{core.EventBombSpent, []cueAction{{cue: CueDrop, stop: true}}},
		{core.EventBombMissed, []cueAction{{cue: CueDrop, stop: true}}},
		{core.EventPlaneCrashed, []cueAction{{cue: CueCrash}}},
		{core.EventPlaneLanded, nil},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := actionsFor(tt.kind)
			if len(got) != len(tt.expected) {
				t.Fatalf("actionsFor(%v) = %+v, expected %+v", tt.kind, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("action %d = %+v, expected %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSynthesizedCues(t *testing.T) {
	rate := beep.SampleRate(44100)
	lengths := map[Cue]int{
		CueDrop:    rate.N(dropDuration),
		CueDestroy: rate.N(destroyDuration),
		CueCrash:   rate.N(crashDuration),
	}

	for cue, expected := range lengths {
		buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
		buf.Append(synthesize(cue, rate))

		if buf.Len() != expected {
			t.Errorf("%s: %d samples, expected %d", cue, buf.Len(), expected)
		}

		samples := make([][2]float64, 1024)
		s := buf.Streamer(0, buf.Len())
		n, _ := s.Stream(samples)
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("%s: sample %d out of range: %f", cue, i, samples[i][0])
			}
		}
	}
}

func TestBlastDeterministic(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := make([][2]float64, 256)
	b := make([][2]float64, 256)

	newBlast(rate, 90, 9, destroyDuration).Stream(a)
	newBlast(rate, 90, 9, destroyDuration).Stream(b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPlayerHandleEvents(t *testing.T) {
	p := NewPlayer(testAudioConfig(), nil)
	if err := p.Load(""); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	p.Handle([]core.Event{{Kind: core.EventBombDropped, Bomb: 0, Building: 3}})
	if !p.Playing(CueDrop) {
		t.Fatal("drop cue should play after a bomb is dropped")
	}

	p.Handle([]core.Event{{Kind: core.EventLevelDestroyed, Bomb: 0, Building: 3}})
	if p.Playing(CueDrop) {
		t.Error("drop cue should stop when a level is destroyed")
	}
	if !p.Playing(CueDestroy) {
		t.Error("destroy cue should play when a level is destroyed")
	}

	p.Handle([]core.Event{{Kind: core.EventPlaneCrashed, Bomb: -1, Building: 5}})
	if !p.Playing(CueCrash) {
		t.Error("crash cue should play when the plane crashes")
	}

	if p.mixer.Len() != 3 {
		t.Errorf("mixer holds %d streamers, expected 3", p.mixer.Len())
	}

	p.Close()
	for c := Cue(0); c < cueCount; c++ {
		if p.Playing(c) {
			t.Errorf("%s still playing after Close()", c)
		}
	}
	if p.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers after Close()", p.mixer.Len())
	}
}

func TestPlayerPlayRestarts(t *testing.T) {
	p := NewPlayer(testAudioConfig(), nil)
	if err := p.Load(""); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	p.Play(CueDrop)
	first := p.active[CueDrop]
	p.Play(CueDrop)

	if first.Streamer != nil {
		t.Error("replaced cue should be cut off")
	}
	if p.active[CueDrop] == first {
		t.Error("second Play() should start a new stream")
	}
}

func TestPlayerIgnoresUnloadedCues(t *testing.T) {
	p := NewPlayer(testAudioConfig(), nil)

	p.Play(CueCrash)
	p.Stop(CueCrash)
	p.Play(Cue(-1))

	if p.Playing(CueCrash) || p.mixer.Len() != 0 {
		t.Error("unloaded cues must not play")
	}
}

func TestLoadMissingFiles(t *testing.T) {
	p := NewPlayer(testAudioConfig(), nil)
	if err := p.Load(t.TempDir()); err == nil {
		t.Fatal("Load() accepted a directory without sound files")
	}
}

func TestLoadWAVResamples(t *testing.T) {
	dir := t.TempDir()
	srcRate := beep.SampleRate(22050)
	srcLen := srcRate.N(dropDuration)

	for c := Cue(0); c < cueCount; c++ {
		f, err := os.Create(filepath.Join(dir, c.FileName()))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		format := beep.Format{SampleRate: srcRate, NumChannels: 1, Precision: 2}
		if err := wav.Encode(f, newWhistle(srcRate, 800, 400, dropDuration), format); err != nil {
			t.Fatalf("encode: %v", err)
		}
		f.Close()
	}

	p := NewPlayer(testAudioConfig(), nil)
	if err := p.Load(dir); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for c := Cue(0); c < cueCount; c++ {
		if got := p.sounds[c].Len(); got <= srcLen {
			t.Errorf("%s: %d samples after resampling %d at twice the rate", c, got, srcLen)
		}
	}
}
