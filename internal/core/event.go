package core

import "github.com/google/uuid"

// EventKind identifies a discrete simulation event.
type EventKind uint8

const (
	EventCollision     EventKind = iota + 1 // Two bodies exchanged an impulse
	EventBlocked                            // Player pushed back by a blocking obstacle
	EventHazardTouched                      // Player overlapped a lethal obstacle
	EventExploded                           // Body destroyed with an explosion effect
	EventPopped                             // Body popped by a click, scoring points
	EventOutOfBounds                        // Body left the playable region
	EventSpawned                            // New body entered the world
	EventRetired                            // Body scrolled off and was pruned
	EventPauseToggled                       // Pause state flipped
	EventGameOver                           // Session reached its terminal state
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventBlocked:
		return "blocked"
	case EventHazardTouched:
		return "hazard_touched"
	case EventExploded:
		return "exploded"
	case EventPopped:
		return "popped"
	case EventOutOfBounds:
		return "out_of_bounds"
	case EventSpawned:
		return "spawned"
	case EventRetired:
		return "retired"
	case EventPauseToggled:
		return "pause_toggled"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for the presentation layer.
// Body is uuid.Nil for events not tied to a single body.
type Event struct {
	Kind   EventKind
	Body   uuid.UUID
	Other  uuid.UUID // Second body for pairwise events
	X, Y   float64   // World position where the event happened
	Points int       // Score change caused by the event
}

// Events accumulates the events of a single step.
type Events []Event

// Add appends an event.
func (e *Events) Add(ev Event) {
	*e = append(*e, ev)
}

// Count returns how many events of the given kind were recorded.
func (e Events) Count(kind EventKind) int {
	n := 0
	for _, ev := range e {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
