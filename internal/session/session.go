// Package session holds the score and lifecycle state shared by every game:
// running, paused and game over, plus the best score seen so far.
package session

import (
	"math"
	"time"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
)

// DefaultPauseCooldown is the minimum time between two accepted pause toggles.
const DefaultPauseCooldown = 200 * time.Millisecond

// Phase is the lifecycle position of a session.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session tracks score and lifecycle for one game instance.
// The zero value is not usable; call New.
type Session struct {
	cooldown  time.Duration // Pause debounce length
	remaining time.Duration // Time left before the next toggle is accepted

	score   float64
	best    int // Best score including finished runs
	start   int // Best score when the current run began
	paused  bool
	over    bool
	scoring bool
}

// New creates a running session. A non-positive cooldown selects
// DefaultPauseCooldown.
func New(highScore int, cooldown time.Duration) *Session {
	if cooldown <= 0 {
		cooldown = DefaultPauseCooldown
	}
	s := &Session{cooldown: cooldown, best: highScore}
	s.Reset()
	return s
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	switch {
	case s.over:
		return PhaseGameOver
	case s.paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Running reports whether the session is neither paused nor over.
func (s *Session) Running() bool {
	return s.Phase() == PhaseRunning
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}

// TogglePause must be called once per step so the debounce timer advances.
// When requested and the cooldown has elapsed the paused flag flips and
// the cooldown restarts. Requests after game over are ignored.
// Returns whether the flag flipped.
func (s *Session) TogglePause(requested bool, dt time.Duration) bool {
	if dt > 0 {
		s.remaining = max(s.remaining-dt, 0)
	}

	if !requested || s.over || s.remaining > 0 {
		return false
	}

	s.paused = !s.paused
	s.remaining = s.cooldown
	return true
}

// SetScoring enables or disables Accrue and Award without pausing.
func (s *Session) SetScoring(on bool) {
	s.scoring = on
}

// Scoring reports whether score changes are currently accepted.
func (s *Session) Scoring() bool {
	return s.scoring
}

// Accrue adds elapsed seconds to the score while running.
func (s *Session) Accrue(seconds float64) {
	if s.Running() && s.scoring && seconds > 0 {
		s.score += seconds
	}
}

// Award adds points to the score while running.
func (s *Session) Award(points int) {
	if s.Running() && s.scoring {
		s.score += float64(points)
	}
}

// End moves the session to game over. The score freezes and the best score
// is updated. Returns false if the session had already ended.
func (s *Session) End() bool {
	if s.over {
		return false
	}
	s.over = true
	s.paused = false
	s.best = max(s.best, s.Score())
	return true
}

// Reset starts a fresh run. The best score survives.
func (s *Session) Reset() {
	s.score = 0
	s.paused = false
	s.over = false
	s.scoring = true
	s.remaining = 0
	s.start = s.best
}

// Score returns the score truncated to whole points.
func (s *Session) Score() int {
	return int(math.Floor(s.score))
}

// RawScore returns the exact score accumulator.
func (s *Session) RawScore() float64 {
	return s.score
}

// HighScore returns the best score including the current run.
func (s *Session) HighScore() int {
	return max(s.best, s.Score())
}

// SetHighScore replaces the best known score, e.g. once loaded from storage.
func (s *Session) SetHighScore(score int) {
	s.best = score
	s.start = score
}

// Beaten reports whether the current run has passed the best score it
// started against.
func (s *Session) Beaten() bool {
	return s.Score() > s.start
}

// State returns the platform view of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.Score(),
		RawScore:  s.score,
		HighScore: s.HighScore(),
		GameOver:  s.over,
		Paused:    s.paused,
	}
}
