package physics

// Side selects which world walls take part in boundary resolution.
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideRight

	SideNone Side = 0
	SideBoth      = SideLeft | SideRight
)

// Contact reports which boundaries a body touched during resolution.
type Contact uint8

const (
	ContactGround Contact = 1 << iota
	ContactLeft
	ContactRight

	ContactNone Contact = 0
)

// Has reports whether c includes every flag in flag.
func (c Contact) Has(flag Contact) bool {
	return c&flag == flag && flag != 0
}

// Bounds describes the static edges of the world. Y grows downward, so the
// ground is the largest y a body may reach.
type Bounds struct {
	Ground float64
	Left   float64
	Right  float64
	Sides  Side
}

// ResolveBounds clamps b onto any boundary its extent crosses and reflects
// the normal velocity component scaled by the body's restitution. Ground and
// wall checks are independent and may both fire in one call.
func ResolveBounds(b *Body, bounds Bounds) Contact {
	hw, hh := b.Shape.HalfExtents()
	contact := ContactNone

	if b.Pos.Y+hh > bounds.Ground {
		b.Pos.Y = bounds.Ground - hh
		b.Vel.Y = -b.Vel.Y * b.Restitution
		contact |= ContactGround
	}

	if bounds.Sides&SideLeft != 0 && b.Pos.X-hw < bounds.Left {
		b.Pos.X = bounds.Left + hw
		b.Vel.X = -b.Vel.X * b.Restitution
		contact |= ContactLeft
	}

	if bounds.Sides&SideRight != 0 && b.Pos.X+hw > bounds.Right {
		b.Pos.X = bounds.Right - hw
		b.Vel.X = -b.Vel.X * b.Restitution
		contact |= ContactRight
	}

	return contact
}
