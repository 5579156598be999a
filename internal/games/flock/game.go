// Package flock implements Chicken Flock, a physics sandbox. Discs drop in
// at a steady rate, bounce off the ground, the side walls and each other,
// and can be kicked with the mouse.
package flock

import (
	"math/rand"
	"slices"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/kinetic-arcade/internal/config"
	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/physics"
	"github.com/vovakirdan/kinetic-arcade/internal/registry"
	"github.com/vovakirdan/kinetic-arcade/internal/session"
)

// Game implements the Chicken Flock sandbox.
type Game struct {
	cfg      config.FlockConfig
	runtime  core.RuntimeConfig
	viewport core.Viewport
	rng      *rand.Rand

	worldW, worldH float64
	ground         float64

	discs      []*physics.Body
	spawnTimer time.Duration

	session  *session.Session
	hitboxes bool
}

// New creates a new Chicken Flock instance with built-in defaults.
func New() *Game {
	return &Game{cfg: config.DefaultFlockConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flock"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chicken Flock"
}

// Viewport returns the cell/world mapping of the current world.
func (g *Game) Viewport() core.Viewport {
	return g.viewport
}

// Configure loads the flock config. The sandbox has no difficulty curve,
// so the preset is ignored.
func (g *Game) Configure(path string, _ config.DifficultyPreset) (config.Source, error) {
	cfg, src, err := config.LoadFlock(path)
	g.cfg = cfg
	return src, err
}

// Reset initializes or restarts the sandbox.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.viewport = g.cfg.World.Viewport()
	g.worldW, g.worldH = g.viewport.WorldSize(runtime.ScreenW, runtime.ScreenH)
	g.ground = g.cfg.World.Ground(g.worldH)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.discs = g.discs[:0]
	g.spawnTimer = 0
	g.hitboxes = false

	if g.session == nil {
		g.session = session.New(runtime.HighScore, g.cfg.Session.PauseCooldown())
	} else {
		g.session.Reset()
		if runtime.HighScore > g.session.HighScore() {
			g.session.SetHighScore(runtime.HighScore)
		}
	}
}

// Step advances the sandbox by dt: spawn, integrate, clamp to the world,
// resolve disc pairs, then apply clicks.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	var events core.Events

	if in.Has(core.ActionHitboxes) {
		g.hitboxes = !g.hitboxes
	}
	if g.session.TogglePause(in.IsDown(core.ActionPause), dt) {
		events.Add(core.Event{Kind: core.EventPauseToggled})
	}
	if g.session.Paused() {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.spawn(dt, &events)

	frames := core.Frames(dt)
	bounds := g.bounds()
	for _, d := range g.discs {
		d.Integrate(frames, g.cfg.World.Gravity)
		physics.ResolveBounds(d, bounds)
	}

	for _, c := range physics.ResolvePairs(g.discs) {
		events.Add(core.Event{
			Kind:  core.EventCollision,
			Body:  c.A.ID,
			Other: c.B.ID,
			X:     (c.A.Pos.X + c.B.Pos.X) / 2,
			Y:     (c.A.Pos.Y + c.B.Pos.Y) / 2,
		})
	}

	for _, click := range in.Clicks {
		g.kick(click, &events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) bounds() physics.Bounds {
	return physics.Bounds{Ground: g.ground, Left: 0, Right: g.worldW, Sides: physics.SideBoth}
}

// spawn drops one disc per elapsed interval, oldest discs making room
// once the cap is reached.
func (g *Game) spawn(dt time.Duration, events *core.Events) {
	interval := g.cfg.Spawn.Interval()
	if dt <= 0 || interval <= 0 {
		return
	}

	g.spawnTimer += dt
	for g.spawnTimer >= interval {
		g.spawnTimer -= interval

		if limit := g.cfg.Spawn.MaxBodies; limit > 0 && len(g.discs) >= limit {
			old := g.discs[0]
			g.discs = slices.Delete(g.discs, 0, 1)
			events.Add(core.Event{Kind: core.EventRetired, Body: old.ID, X: old.Pos.X, Y: old.Pos.Y})
		}

		d, err := g.newDisc()
		if err != nil {
			return
		}
		g.discs = append(g.discs, d)
		events.Add(core.Event{Kind: core.EventSpawned, Body: d.ID, X: d.Pos.X, Y: d.Pos.Y})
	}
}

// newDisc creates a disc above the top edge at a random column with a
// random horizontal velocity.
func (g *Game) newDisc() (*physics.Body, error) {
	dc := g.cfg.Disc
	pos := r2.Vec{X: g.rng.Float64() * g.worldW, Y: -2 * dc.Radius}

	d, err := physics.NewBody(pos, physics.Circle(dc.Radius), physics.Material{
		Mass:        dc.Mass,
		Restitution: dc.Restitution,
		Friction:    dc.Friction,
	})
	if err != nil {
		return nil, err
	}
	d.Vel.X = (g.rng.Float64() - 0.5) * 2 * dc.MaxSpawnSpeed
	return d, nil
}

// kick throws the topmost disc under the pointer upward with a random
// sideways component. Some kicks blow the disc up instead.
func (g *Game) kick(click core.Click, events *core.Events) {
	for i := len(g.discs) - 1; i >= 0; i-- {
		d := g.discs[i]
		if !d.Contains(click.X, click.Y) {
			continue
		}

		cc := g.cfg.Click
		d.Vel.X += (g.rng.Float64() - 0.5) * cc.Horizontal
		d.Vel.Y -= cc.MinLift + g.rng.Float64()*(cc.MaxLift-cc.MinLift)

		if g.rng.Float64() < cc.ExplodeChance {
			g.discs = slices.Delete(g.discs, i, i+1)
			g.session.Award(1)
			events.Add(core.Event{Kind: core.EventExploded, Body: d.ID, X: d.Pos.X, Y: d.Pos.Y, Points: 1})
		}
		return
	}
}

// State returns the current sandbox state. The score counts exploded discs.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Discs returns the live discs in spawn order.
func (g *Game) Discs() []*physics.Body {
	return g.discs
}

// Snapshot returns the live bodies for rendering.
func (g *Game) Snapshot() core.Snapshot {
	sprites := make([]core.Sprite, 0, len(g.discs))
	for _, d := range g.discs {
		sprites = append(sprites, d.Sprite(core.SpriteChicken))
	}
	return core.Snapshot{Sprites: sprites, Ground: g.ground, WorldW: g.worldW, WorldH: g.worldH}
}

// Register the game with the registry
func init() {
	registry.Register("flock", func() registry.Game {
		return New()
	})
}
