package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
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
		quit   bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"h", runeKey('h'), core.ActionHitboxes, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%s) action = %v, expected %v", tt.name, action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%s) quit = %v, expected %v", tt.name, quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('p'), &frame) {
		t.Error("MapKeyToFrame(p) should not quit")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("MapKeyToFrame(p) should set Pause")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("MapKeyToFrame(q) should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHoldable(t *testing.T) {
	held := []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump}
	for _, a := range held {
		if !Holdable(a) {
			t.Errorf("Holdable(%v) = false, expected true", a)
		}
	}
	tapped := []core.Action{core.ActionPause, core.ActionHitboxes, core.ActionRestart}
	for _, a := range tapped {
		if Holdable(a) {
			t.Errorf("Holdable(%v) = true, expected false", a)
		}
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	start := time.Unix(1000, 0)

	h.Press(core.ActionRight, start)
	h.Press(core.ActionPause, start)

	frame := core.NewInputFrame()
	h.Apply(&frame, start.Add(50*time.Millisecond))
	if !frame.IsDown(core.ActionRight) {
		t.Error("Right should be held inside the window")
	}
	if frame.IsDown(core.ActionPause) {
		t.Error("Pause should never be held")
	}

	frame.Clear()
	h.Apply(&frame, start.Add(100*time.Millisecond))
	if frame.IsDown(core.ActionRight) {
		t.Error("Right should be released once the window passes")
	}

	// Auto-repeat presses extend the hold.
	h.Press(core.ActionLeft, start)
	h.Press(core.ActionLeft, start.Add(90*time.Millisecond))
	frame.Clear()
	h.Apply(&frame, start.Add(150*time.Millisecond))
	if !frame.IsDown(core.ActionLeft) {
		t.Error("repeated press should extend the hold")
	}

	h.Release()
	frame.Clear()
	h.Apply(&frame, start.Add(150*time.Millisecond))
	if frame.IsDown(core.ActionLeft) {
		t.Error("Release() should drop every hold")
	}
}

func TestHoldTrackerDefaultWindow(t *testing.T) {
	h := NewHoldTracker(0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected %v", h.window, DefaultHoldWindow)
	}
}
