package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/citybomber/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		force  bool
	}{
		{"space drops", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"q quits", runeKey('q'), core.ActionQuit, false},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, false},
		{"ctrl+c forces quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"other keys ignored", runeKey('x'), core.ActionNone, false},
		{"arrows ignored", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, force := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if force != tt.force {
				t.Errorf("MapKey(%q) force = %v, expected %v", tt.msg.String(), force, tt.force)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('p'), &frame) {
		t.Error("p should not force an exit")
	}
	km.MapKeyToFrame(runeKey('x'), &frame)

	if !frame.Has(core.ActionPause) {
		t.Error("frame should hold the pause action")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unmapped keys must not be recorded")
	}
}

func TestMapKeyToFrameCountsDrops(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey(' '), &frame)
	km.MapKeyToFrame(runeKey(' '), &frame)

	if got := frame.Count(core.ActionDrop); got != 2 {
		t.Errorf("Count(Drop) = %d after two space keys, expected 2", got)
	}
}
