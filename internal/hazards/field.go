package hazards

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/physics"
)

// FieldConfig configures an obstacle field.
type FieldConfig struct {
	Catalog   []Spec
	RepeatCap int           // Max consecutive spawns of one sub-kind
	Interval  time.Duration // Time between spawns
	SpawnX    float64       // Left edge x of newly spawned obstacles
	Ground    float64       // Obstacles rest on this y
}

// Outcome classifies a player/obstacle contact.
type Outcome uint8

const (
	OutcomeBlocked Outcome = iota // Player was pushed out of a blocking obstacle
	OutcomeLethal                 // Player touched a lethal obstacle
)

// Hit is one player/obstacle contact found by Field.Resolve.
type Hit struct {
	Obstacle *Obstacle
	Outcome  Outcome
}

// Field owns the live obstacles of a side-scrolling run.
type Field struct {
	cfg      FieldConfig
	rng      *rand.Rand
	selector *Selector
	timer    time.Duration
	active   []*Obstacle
}

// NewField validates cfg and returns an empty field.
func NewField(cfg FieldConfig, seed int64) (*Field, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("hazards: spawn interval must be positive")
	}

	selector, err := NewSelector(cfg.Catalog, cfg.RepeatCap)
	if err != nil {
		return nil, err
	}

	return &Field{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		selector: selector,
	}, nil
}

// Reset clears the field and reseeds its random source.
func (f *Field) Reset(seed int64) {
	f.Clear()
	f.rng = rand.New(rand.NewSource(seed))
}

// Clear removes every obstacle and resets the spawn timer and streaks.
func (f *Field) Clear() {
	f.active = f.active[:0]
	f.timer = 0
	f.selector.Reset()
}

// SetInterval changes the spawn interval. Non-positive values are ignored.
func (f *Field) SetInterval(d time.Duration) {
	if d > 0 {
		f.cfg.Interval = d
	}
}

// Interval returns the current spawn interval.
func (f *Field) Interval() time.Duration {
	return f.cfg.Interval
}

// Resize moves the spawn edge and ground line, e.g. after a terminal resize.
func (f *Field) Resize(spawnX, ground float64) {
	f.cfg.SpawnX = spawnX
	f.cfg.Ground = ground
}

// Obstacles returns the live obstacles in spawn order.
func (f *Field) Obstacles() []*Obstacle {
	return f.active
}

// Streak returns the current consecutive-spawn count of sub.
func (f *Field) Streak(sub SubKind) int {
	return f.selector.Streak(sub)
}

// Update advances the field by dt. Once the spawn timer exceeds the
// interval a new obstacle moving at speed is added at the spawn edge.
// Every obstacle then moves left and those fully past x = 0 are dropped.
func (f *Field) Update(dt time.Duration, speed float64, events *core.Events) error {
	if dt <= 0 {
		return nil
	}

	f.timer += dt
	if f.timer > f.cfg.Interval {
		f.timer = 0
		if err := f.spawn(speed, events); err != nil {
			return err
		}
	}

	frames := core.Frames(dt)
	kept := f.active[:0]
	for _, o := range f.active {
		o.Advance(frames)
		if o.OffScreen() {
			events.Add(core.Event{Kind: core.EventRetired, Body: o.ID, X: o.Pos.X, Y: o.Pos.Y})
			continue
		}
		kept = append(kept, o)
	}
	clear(f.active[len(kept):])
	f.active = kept

	return nil
}

// Add inserts a prepared obstacle, e.g. for scripted scenarios.
func (f *Field) Add(o *Obstacle) {
	f.active = append(f.active, o)
}

// Spawn adds one obstacle immediately, bypassing the timer.
func (f *Field) Spawn(speed float64, events *core.Events) error {
	return f.spawn(speed, events)
}

func (f *Field) spawn(speed float64, events *core.Events) error {
	spec := f.selector.Pick(f.rng)
	o, err := NewObstacle(spec, f.cfg.SpawnX, f.cfg.Ground-spec.H, speed)
	if err != nil {
		return fmt.Errorf("spawn obstacle: %w", err)
	}

	f.active = append(f.active, o)
	events.Add(core.Event{Kind: core.EventSpawned, Body: o.ID, X: o.Pos.X, Y: o.Pos.Y})
	return nil
}

// Resolve tests the player against every live obstacle.
//
// Overlapping a blocking obstacle pushes the player horizontally to the
// obstacle's near side: its left edge when the player center is left of
// the obstacle center, otherwise its right edge. Later obstacles are tested
// against the pushed position. Lethal overlaps are reported only.
func (f *Field) Resolve(player *physics.Body) []Hit {
	var hits []Hit
	for _, o := range f.active {
		ob := o.Bounds()
		if !player.Bounds().Intersects(ob) {
			continue
		}

		if o.Kind() == KindLethal {
			hits = append(hits, Hit{Obstacle: o, Outcome: OutcomeLethal})
			continue
		}

		hw, _ := player.Shape.HalfExtents()
		cx, _ := ob.Center()
		if player.Pos.X < cx {
			player.Pos.X = ob.X - hw
		} else {
			player.Pos.X = ob.Right() + hw
		}
		hits = append(hits, Hit{Obstacle: o, Outcome: OutcomeBlocked})
	}
	return hits
}

// FirstLethal returns the first lethal hit, if any.
func FirstLethal(hits []Hit) (Hit, bool) {
	for _, h := range hits {
		if h.Outcome == OutcomeLethal {
			return h, true
		}
	}
	return Hit{}, false
}

// DefaultCatalog returns the stock runner obstacle set.
func DefaultCatalog() []Spec {
	return []Spec{
		{Sub: SubKindWall, Kind: KindBlocking, Weight: 0.05, W: 40, H: 80},
		{Sub: SubKindLava, Kind: KindLethal, Weight: 0.15, W: 20, H: 20},
		{Sub: SubKindSpike, Kind: KindLethal, Weight: 0.80, W: 30, H: 10},
	}
}
