package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// fallbackNormal separates bodies whose centers coincide exactly.
var fallbackNormal = r2.Vec{X: 1, Y: 0}

// Collision describes a resolved circle-circle contact.
type Collision struct {
	A, B    *Body
	Normal  r2.Vec  // Unit vector from A towards B
	Depth   float64 // Overlap before positional correction
	Impulse float64 // Normal impulse magnitude applied
}

// ResolveCircles detects overlap between two circular bodies and applies an
// impulse along the contact normal followed by positional de-penetration.
//
// It is a no-op when the circles do not overlap or are already separating.
// Coincident centers use the fixed normal (+1, 0).
func ResolveCircles(a, b *Body) (Collision, bool) {
	if a.Shape.Kind != ShapeCircle || b.Shape.Kind != ShapeCircle {
		return Collision{}, false
	}

	delta := r2.Sub(b.Pos, a.Pos)
	dist := r2.Norm(delta)
	radii := a.Shape.Radius + b.Shape.Radius
	if dist >= radii {
		return Collision{}, false
	}

	normal := fallbackNormal
	if dist > 0 {
		normal = r2.Scale(1/dist, delta)
	}

	velAlongNormal := r2.Dot(r2.Sub(b.Vel, a.Vel), normal)
	if velAlongNormal > 0 {
		return Collision{}, false
	}

	invSum := a.InvMass() + b.InvMass()
	e := math.Min(a.Restitution, b.Restitution)
	j := -(1 + e) * velAlongNormal / invSum

	impulse := r2.Scale(j, normal)
	a.Vel = r2.Sub(a.Vel, r2.Scale(a.InvMass(), impulse))
	b.Vel = r2.Add(b.Vel, r2.Scale(b.InvMass(), impulse))

	depth := radii - dist
	a.Pos = r2.Sub(a.Pos, r2.Scale(depth*a.InvMass()/invSum, normal))
	b.Pos = r2.Add(b.Pos, r2.Scale(depth*b.InvMass()/invSum, normal))

	return Collision{A: a, B: b, Normal: normal, Depth: depth, Impulse: j}, true
}

// ResolvePairs runs ResolveCircles once for every unordered pair in a single
// pass. Clusters of three or more bodies may need several frames to settle.
func ResolvePairs(bodies []*Body) []Collision {
	var hits []Collision
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if c, ok := ResolveCircles(bodies[i], bodies[j]); ok {
				hits = append(hits, c)
			}
		}
	}
	return hits
}
