// Package hazards manages the side-scrolling obstacle field: timed spawning
// with weighted, anti-repeat selection, horizontal advance, pruning, and
// classification of player contacts as blocking or lethal.
package hazards

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/physics"
)

// Kind decides what contact with an obstacle does to the player.
type Kind uint8

const (
	KindBlocking Kind = iota // Pushes the player aside
	KindLethal               // Ends the session
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlocking:
		return "blocking"
	case KindLethal:
		return "lethal"
	default:
		return "unknown"
	}
}

// ParseKind converts a config name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "blocking":
		return KindBlocking, nil
	case "lethal":
		return KindLethal, nil
	default:
		return 0, fmt.Errorf("hazards: unknown kind %q", s)
	}
}

// SubKind is the visual variety of an obstacle.
type SubKind uint8

const (
	SubKindWall SubKind = iota
	SubKindLava
	SubKindSpike
)

// String returns the config name of the sub-kind.
func (s SubKind) String() string {
	switch s {
	case SubKindWall:
		return "wall"
	case SubKindLava:
		return "lava"
	case SubKindSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// ParseSubKind converts a config name into a SubKind.
func ParseSubKind(s string) (SubKind, error) {
	switch s {
	case "wall":
		return SubKindWall, nil
	case "lava":
		return SubKindLava, nil
	case "spike":
		return SubKindSpike, nil
	default:
		return 0, fmt.Errorf("hazards: unknown sub-kind %q", s)
	}
}

// SpriteKind maps the sub-kind to its render tag.
func (s SubKind) SpriteKind() core.SpriteKind {
	switch s {
	case SubKindWall:
		return core.SpriteWall
	case SubKindLava:
		return core.SpriteLava
	default:
		return core.SpriteSpike
	}
}

// Obstacle is a box body that scrolls left at a fixed speed, unaffected by
// gravity. Its kind is fixed at spawn.
type Obstacle struct {
	*physics.Body
	Sub   SubKind
	Speed float64
	kind  Kind
}

// NewObstacle creates an obstacle whose top-left corner is at (x, y).
func NewObstacle(spec Spec, x, y, speed float64) (*Obstacle, error) {
	center := r2.Vec{X: x + spec.W/2, Y: y + spec.H/2}
	body, err := physics.NewBody(center, physics.Box(spec.W, spec.H), physics.Material{Mass: 1, Friction: 1})
	if err != nil {
		return nil, fmt.Errorf("hazards: cannot create %s: %w", spec.Sub, err)
	}
	body.Vel = r2.Vec{X: -speed}

	return &Obstacle{Body: body, Sub: spec.Sub, Speed: speed, kind: spec.Kind}, nil
}

// Kind returns the obstacle's immutable kind.
func (o *Obstacle) Kind() Kind {
	return o.kind
}

// Advance moves the obstacle left by speed*frames.
func (o *Obstacle) Advance(frames float64) {
	o.Integrate(frames, 0)
}

// OffScreen reports whether the obstacle has fully left through the left edge.
func (o *Obstacle) OffScreen() bool {
	return o.Bounds().Right() <= 0
}

// Sprite returns the render view of the obstacle.
func (o *Obstacle) Sprite() core.Sprite {
	return o.Body.Sprite(o.Sub.SpriteKind())
}
