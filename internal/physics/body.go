// Package physics implements the kinematics shared by the arcade games:
// body integration, boundary clamping and circle-circle impulse resolution.
//
// Velocities are in world units per nominal frame and every timestep is a
// (possibly fractional) number of frames, see core.Frames.
package physics

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
)

var (
	// ErrNonPositiveMass is returned when a body is built with mass <= 0.
	ErrNonPositiveMass = errors.New("physics: mass must be positive")

	// ErrInvalidShape is returned for non-positive radius or box dimensions.
	ErrInvalidShape = errors.New("physics: shape dimensions must be positive")
)

// ShapeKind tags the geometry of a body.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape describes a body's collision geometry, centered on its position.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle only
	W, H   float64 // ShapeBox only
}

// Circle returns a circular shape.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns an axis-aligned rectangular shape.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, W: w, H: h}
}

// HalfExtents returns the half width and half height of the shape's bounds.
func (s Shape) HalfExtents() (float64, float64) {
	if s.Kind == ShapeCircle {
		return s.Radius, s.Radius
	}
	return s.W / 2, s.H / 2
}

func (s Shape) valid() bool {
	if s.Kind == ShapeCircle {
		return s.Radius > 0
	}
	return s.W > 0 && s.H > 0
}

// Material holds the physical parameters of a body.
type Material struct {
	Mass        float64
	Restitution float64 // 1 = perfectly elastic, 0 = perfectly inelastic
	Friction    float64 // Fraction of velocity kept per frame; 1 disables damping
}

// DefaultMaterial is a unit-mass, half-elastic, undamped material.
func DefaultMaterial() Material {
	return Material{Mass: 1, Restitution: 0.5, Friction: 1}
}

// Body is a simulated moving entity.
type Body struct {
	ID       uuid.UUID
	Pos      r2.Vec
	Vel      r2.Vec
	Shape    Shape
	Rotation float64 // Radians, cosmetic only

	Mass        float64
	Restitution float64
	Friction    float64
}

// NewBody creates a body at pos. Restitution and friction are clamped into
// [0, 1]; mass must be positive.
func NewBody(pos r2.Vec, shape Shape, m Material) (*Body, error) {
	if !(m.Mass > 0) {
		return nil, ErrNonPositiveMass
	}
	if !shape.valid() {
		return nil, ErrInvalidShape
	}

	return &Body{
		ID:          uuid.New(),
		Pos:         pos,
		Shape:       shape,
		Mass:        m.Mass,
		Restitution: core.ClampF(m.Restitution, 0, 1),
		Friction:    core.ClampF(m.Friction, 0, 1),
	}, nil
}

// Integrate advances the body by dt frames under vertical gravity.
// Velocity picks up gravity*dt, position moves by velocity*dt, then
// friction damps both velocity components.
func (b *Body) Integrate(dt, gravity float64) {
	if dt <= 0 {
		return
	}

	b.Vel.Y += gravity * dt
	b.Pos = r2.Add(b.Pos, r2.Scale(dt, b.Vel))

	if b.Friction < 1 {
		b.Vel = r2.Scale(math.Pow(b.Friction, dt), b.Vel)
	}
}

// Spin adds delta radians to the rotation, wrapped into [0, 2π).
func (b *Body) Spin(delta float64) {
	b.Rotation = math.Mod(b.Rotation+delta, 2*math.Pi)
	if b.Rotation < 0 {
		b.Rotation += 2 * math.Pi
	}
}

// InvMass returns 1/mass.
func (b *Body) InvMass() float64 {
	return 1 / b.Mass
}

// Bounds returns the axis-aligned extent of the body.
func (b *Body) Bounds() core.Box {
	hw, hh := b.Shape.HalfExtents()
	return core.BoxAround(b.Pos.X, b.Pos.Y, 2*hw, 2*hh)
}

// Contains reports whether the world point (x, y) lies inside the body.
func (b *Body) Contains(x, y float64) bool {
	if b.Shape.Kind == ShapeCircle {
		return r2.Norm(r2.Sub(r2.Vec{X: x, Y: y}, b.Pos)) <= b.Shape.Radius
	}
	return b.Bounds().Contains(x, y)
}

// KineticEnergy returns ½·m·|v|².
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * r2.Norm2(b.Vel)
}

// Sprite returns the render view of the body.
func (b *Body) Sprite(kind core.SpriteKind) core.Sprite {
	return core.Sprite{
		ID:       b.ID,
		Kind:     kind,
		Circle:   b.Shape.Kind == ShapeCircle,
		X:        b.Pos.X,
		Y:        b.Pos.Y,
		W:        b.Shape.W,
		H:        b.Shape.H,
		Radius:   b.Shape.Radius,
		Rotation: b.Rotation,
	}
}
