package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/citybomber/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// force is true for keys that leave the program without waiting for the
// end-of-run banner.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, force bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "esc", "q":
		return core.ActionQuit, false
	case " ":
		return core.ActionDrop, false
	case "p":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key forces an immediate exit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, force := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return force
}
