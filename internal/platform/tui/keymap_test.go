package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gifteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"a", runeKey('a'), core.ActionRotateLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"d", runeKey('d'), core.ActionRotateRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"w", runeKey('w'), core.ActionThrust, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey('k'), MenuActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"q", runeKey('q'), MenuActionQuit},
		{"unbound", runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys(60)
	if h.holdFor != 7 {
		t.Fatalf("holdFor = %d, expected 7 ticks at 60 fps", h.holdFor)
	}

	h.press(core.ActionThrust)
	for i := range h.holdFor {
		frame := core.NewInputFrame()
		h.fill(&frame)
		if !frame.Has(core.ActionThrust) {
			t.Fatalf("tick %d: thrust released early", i)
		}
	}

	frame := core.NewInputFrame()
	h.fill(&frame)
	if frame.Has(core.ActionThrust) {
		t.Error("thrust should be released after the hold window")
	}
}

func TestHeldKeysOppositeRotation(t *testing.T) {
	h := newHeldKeys(60)
	h.press(core.ActionRotateLeft)
	h.press(core.ActionRotateRight)

	frame := core.NewInputFrame()
	h.fill(&frame)
	if frame.Has(core.ActionRotateLeft) || !frame.Has(core.ActionRotateRight) {
		t.Errorf("frame = %v, expected only the latest rotation", frame.Actions)
	}

	h.release()
	frame.Clear()
	h.fill(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("frame = %v after release, expected nothing held", frame.Actions)
	}
}

func TestHoldable(t *testing.T) {
	for _, a := range []core.Action{core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust} {
		if !holdable(a) {
			t.Errorf("holdable(%v) = false, expected true", a)
		}
	}
	for _, a := range []core.Action{core.ActionFire, core.ActionPause, core.ActionRestart} {
		if holdable(a) {
			t.Errorf("holdable(%v) = true, expected false", a)
		}
	}
}
