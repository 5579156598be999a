package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press or auto-repeat. It stays below the pause cooldown so a held
// P key cannot flicker pause on and off.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates an in-game key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "p":
		return core.ActionPause, false
	case "h":
		return core.ActionHitboxes, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// Holdable reports whether an action models a key that is held down
// rather than tapped.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// HoldTracker approximates key-down state from press events.
// Terminals report presses and auto-repeats but never releases, so an
// action stays held until its window passes without a new press.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker; window <= 0 uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window, last: make(map[core.Action]time.Time)}
}

// Press records a press of a holdable action. Other actions are ignored.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	if Holdable(a) {
		h.last[a] = at
	}
}

// Apply marks every action still inside its window as held on the frame
// and forgets the expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) < h.window {
			frame.Hold(a)
			continue
		}
		delete(h.last, a)
	}
}

// Release forgets every held action.
func (h *HoldTracker) Release() {
	clear(h.last)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
