package hazards

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultRepeatCap is how many times in a row one sub-kind may spawn.
const DefaultRepeatCap = 3

// ErrEmptyCatalog is returned when a selector has nothing to spawn.
var ErrEmptyCatalog = errors.New("hazards: catalog has no spawnable kinds")

// Spec describes one spawnable obstacle variety.
type Spec struct {
	Sub    SubKind
	Kind   Kind
	Weight float64 // Relative spawn probability
	W, H   float64 // Size in world units
}

// SpawnCounter tracks consecutive spawns per sub-kind.
type SpawnCounter map[SubKind]int

// Record counts a spawn of sub and zeroes every other sub-kind's streak.
func (c SpawnCounter) Record(sub SubKind) {
	for k := range c {
		if k != sub {
			c[k] = 0
		}
	}
	c[sub]++
}

// Reset clears every count.
func (c SpawnCounter) Reset() {
	clear(c)
}

// Capped reports whether sub has reached the repeat cap.
func (c SpawnCounter) Capped(sub SubKind, limit int) bool {
	return c[sub] >= limit
}

// Selector picks the next obstacle variety by weight, excluding any
// sub-kind that has spawned limit times in a row.
type Selector struct {
	catalog []Spec
	limit   int
	counter SpawnCounter
}

// NewSelector validates the catalog and returns a selector.
// A non-positive limit selects DefaultRepeatCap.
func NewSelector(catalog []Spec, limit int) (*Selector, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[SubKind]bool, len(catalog))
	for _, spec := range catalog {
		if seen[spec.Sub] {
			return nil, fmt.Errorf("hazards: duplicate sub-kind %s in catalog", spec.Sub)
		}
		seen[spec.Sub] = true

		if spec.Weight < 0 {
			return nil, fmt.Errorf("hazards: negative weight for %s", spec.Sub)
		}
		if spec.W <= 0 || spec.H <= 0 {
			return nil, fmt.Errorf("hazards: %s must have a positive size", spec.Sub)
		}
	}

	if limit <= 0 {
		limit = DefaultRepeatCap
	}

	return &Selector{
		catalog: append([]Spec(nil), catalog...),
		limit:   limit,
		counter: make(SpawnCounter, len(catalog)),
	}, nil
}

// Pick chooses the next spec and records it in the spawn counter.
//
// Weights are renormalized over the sub-kinds that are not capped. The draw
// walks candidates in catalog order and takes the first whose cumulative
// weight exceeds it, falling back to the first candidate. When every
// sub-kind is capped all counters are reset before drawing.
func (s *Selector) Pick(rng *rand.Rand) Spec {
	candidates := s.available()
	if len(candidates) == 0 {
		s.counter.Reset()
		candidates = s.available()
	}

	var chosen Spec
	if len(candidates) == 0 {
		chosen = s.catalog[rng.Intn(len(s.catalog))]
	} else {
		chosen = weightedPick(candidates, rng.Float64())
	}

	s.counter.Record(chosen.Sub)
	return chosen
}

// Reset clears the spawn counter.
func (s *Selector) Reset() {
	s.counter.Reset()
}

// Streak returns how many times sub has spawned consecutively.
func (s *Selector) Streak(sub SubKind) int {
	return s.counter[sub]
}

func (s *Selector) available() []Spec {
	out := make([]Spec, 0, len(s.catalog))
	for _, spec := range s.catalog {
		if !s.counter.Capped(spec.Sub, s.limit) {
			out = append(out, spec)
		}
	}
	return out
}

// weightedPick maps u in [0, 1) onto the cumulative weights of candidates.
func weightedPick(candidates []Spec, u float64) Spec {
	total := 0.0
	for _, c := range candidates {
		total += c.Weight
	}

	r := u * total
	acc := 0.0
	for _, c := range candidates {
		acc += c.Weight
		if r < acc {
			return c
		}
	}
	return candidates[0]
}
