// Package audio plays the game's sound cues through gopxl/beep.
package audio

import "github.com/vovakirdan/citybomber/internal/core"

// Cue identifies one sound effect.
type Cue int

const (
	CueDrop    Cue = iota // Bomb whistling down
	CueDestroy            // A level collapses
	CueCrash              // The plane hits a building
	cueCount
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueDrop:
		return "drop"
	case CueDestroy:
		return "destroy"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// FileName returns the WAV file loaded for the cue from a sounds directory.
func (c Cue) FileName() string {
	switch c {
	case CueDrop:
		return "bomb_dropping.wav"
	case CueDestroy:
		return "bomb-explode.wav"
	case CueCrash:
		return "bomb_explosion.wav"
	default:
		return ""
	}
}

// cueAction starts or stops a cue.
type cueAction struct {
	cue  Cue
	stop bool
}

// actionsFor maps a gameplay event to the cue changes it triggers.
func actionsFor(kind core.EventKind) []cueAction {
	switch kind {
	case core.EventBombDropped:
		return []cueAction{{cue: CueDrop}}
	case core.EventLevelDestroyed:
		return []cueAction{{cue: CueDrop, stop: true}, {cue: CueDestroy}}
	case core.EventBombSpent, core.EventBombMissed:
		return []cueAction{{cue: CueDrop, stop: true}}
	case core.EventPlaneCrashed:
		return []cueAction{{cue: CueCrash}}
	default:
		return nil
	}
}
