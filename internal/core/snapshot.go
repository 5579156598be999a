package core

import "github.com/google/uuid"

// SpriteKind tells the presentation layer what a sprite depicts.
type SpriteKind uint8

const (
	SpritePlayer SpriteKind = iota + 1
	SpriteChicken
	SpriteWrongChicken
	SpriteWall
	SpriteLava
	SpriteSpike
)

// Sprite is the render view of one live body.
// X, Y is the body center; circles use Radius, boxes use W and H.
type Sprite struct {
	ID       uuid.UUID
	Kind     SpriteKind
	Circle   bool
	X, Y     float64
	W, H     float64
	Radius   float64
	Rotation float64
}

// Bounds returns the sprite's axis-aligned extent.
func (s Sprite) Bounds() Box {
	if s.Circle {
		return BoxAround(s.X, s.Y, 2*s.Radius, 2*s.Radius)
	}
	return BoxAround(s.X, s.Y, s.W, s.H)
}

// Snapshot is the read-only per-frame view a game exposes for rendering.
type Snapshot struct {
	Sprites []Sprite
	Ground  float64 // World y of the ground line
	WorldW  float64
	WorldH  float64
}
