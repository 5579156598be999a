package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - menu navigation
	ActionDown            // S, Down arrow - menu navigation
	ActionLeft            // A, Left arrow - move left
	ActionRight           // D, Right arrow - move right
	ActionJump            // Space - jump
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
	ActionHitboxes        // H - toggle hitbox overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionHitboxes:
		return "Hitboxes"
	default:
		return "Unknown"
	}
}

// Click is a pointer press in world coordinates.
type Click struct {
	X, Y float64
}

// InputFrame is the input snapshot for one simulation tick.
// The platform builds it and the game consumes it once; games never mutate it.
type InputFrame struct {
	// Actions holds one-shot presses that happened during this frame.
	Actions map[Action]bool

	// Held holds actions whose key is currently considered down.
	Held map[Action]bool

	// Clicks lists pointer presses in the order they arrived.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action's key as down for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// AddClick records a pointer press at world coordinates (x, y).
func (f *InputFrame) AddClick(x, y float64) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsDown reports whether the action's key is down, either held from
// earlier frames or pressed during this one.
func (f InputFrame) IsDown(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Clicks = append([]Click(nil), f.Clicks...)
	return clone
}
