// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameDelta caps the time a single tick may simulate, so a stalled
// terminal does not teleport bodies through each other.
const MaxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the simulated time between two ticks.
// The first tick (zero prev) and clock steps backwards simulate nothing.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	return min(dt, MaxFrameDelta)
}
