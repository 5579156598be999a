// Package clicker implements Chicken Clicker. Chickens fall in batches and
// must be clicked before they land, except for the one wrong chicken, which
// must be left alone until it hits the ground.
package clicker

import (
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/kinetic-arcade/internal/config"
	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/physics"
	"github.com/vovakirdan/kinetic-arcade/internal/registry"
	"github.com/vovakirdan/kinetic-arcade/internal/session"
)

// Chicken is a falling disc. At most one live chicken is wrong at a time.
type Chicken struct {
	*physics.Body
	Wrong bool
}

// Sprite returns the render view of the chicken.
func (c *Chicken) Sprite() core.Sprite {
	if c.Wrong {
		return c.Body.Sprite(core.SpriteWrongChicken)
	}
	return c.Body.Sprite(core.SpriteChicken)
}

// Game implements the Chicken Clicker game logic.
type Game struct {
	cfg        config.ClickerConfig
	runtime    core.RuntimeConfig
	viewport   core.Viewport
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	worldW, worldH float64
	ground         float64

	chickens   []*Chicken
	wrongID    uuid.UUID // uuid.Nil when no chicken holds the wrong role
	spawnTimer time.Duration
	nextSpawn  time.Duration

	session   *session.Session
	hitboxes  bool
	tickCount int
}

// New creates a new Chicken Clicker game instance with built-in defaults.
func New() *Game {
	return &Game{cfg: config.DefaultClickerConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "clicker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chicken Clicker"
}

// Viewport returns the cell/world mapping of the current world.
func (g *Game) Viewport() core.Viewport {
	return g.viewport
}

// Configure loads the clicker config and applies a difficulty preset.
// On error the built-in config stays in effect.
func (g *Game) Configure(path string, preset config.DifficultyPreset) (config.Source, error) {
	cfg, src, err := config.LoadClicker(path)
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	return src, err
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.viewport = g.cfg.World.Viewport()
	g.worldW, g.worldH = g.viewport.WorldSize(runtime.ScreenW, runtime.ScreenH)
	g.ground = g.cfg.World.Ground(g.worldH)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.chickens = g.chickens[:0]
	g.wrongID = uuid.Nil
	g.spawnTimer = 0
	g.nextSpawn = 0 // First batch drops on the first step
	g.hitboxes = false
	g.tickCount = 0

	if g.session == nil {
		g.session = session.New(runtime.HighScore, g.cfg.Session.PauseCooldown())
	} else {
		g.session.Reset()
		if runtime.HighScore > g.session.HighScore() {
			g.session.SetHighScore(runtime.HighScore)
		}
	}
}

// Step advances the game by dt.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	var events core.Events

	// Hitbox view doubles as a practice mode: clicks still work but score nothing.
	if in.Has(core.ActionHitboxes) {
		g.hitboxes = !g.hitboxes
		g.session.SetScoring(!g.hitboxes)
	}
	if g.session.TogglePause(in.IsDown(core.ActionPause), dt) {
		events.Add(core.Event{Kind: core.EventPauseToggled})
	}
	if g.session.Paused() {
		return core.StepResult{State: g.State(), Events: events}
	}

	for _, click := range in.Clicks {
		g.handleClick(click, &events)
		if g.session.Over() {
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	if dt > 0 {
		g.spawnTimer += dt
		if g.spawnTimer >= g.nextSpawn {
			g.spawnBatch(&events)
			g.spawnTimer = 0
			g.nextSpawn = g.spawnDelay()
		}
	}

	g.fall(core.Frames(dt), &events)
	g.ensureWrong()
	g.tickCount++

	return core.StepResult{State: g.State(), Events: events}
}

// handleClick pops the topmost chicken under the pointer. Clicking the
// wrong chicken ends the run.
func (g *Game) handleClick(click core.Click, events *core.Events) {
	for i := len(g.chickens) - 1; i >= 0; i-- {
		c := g.chickens[i]
		if !c.Contains(click.X, click.Y) {
			continue
		}

		if c.Wrong {
			events.Add(core.Event{Kind: core.EventHazardTouched, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y})
			g.end(events)
			return
		}
		if !g.session.Scoring() {
			return
		}

		points := g.cfg.Scoring.Pop
		g.session.Award(points)
		events.Add(core.Event{Kind: core.EventPopped, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y, Points: points})
		events.Add(core.Event{Kind: core.EventExploded, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y})
		g.remove(i)
		return
	}
}

// fall moves every chicken down. A landing wrong chicken scores and
// disappears; any other landing ends the run.
func (g *Game) fall(frames float64, events *core.Events) {
	for i := 0; i < len(g.chickens); i++ {
		c := g.chickens[i]
		c.Integrate(frames, 0)

		if c.Bounds().Bottom() < g.ground {
			continue
		}

		if c.Wrong {
			points := g.cfg.Scoring.WrongLanded
			if !g.session.Scoring() {
				points = 0
			}
			g.session.Award(points)
			events.Add(core.Event{Kind: core.EventPopped, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y, Points: points})
			events.Add(core.Event{Kind: core.EventExploded, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y})
			g.wrongID = uuid.Nil
			g.remove(i)
			i--
			continue
		}

		events.Add(core.Event{Kind: core.EventOutOfBounds, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y})
		g.end(events)
		return
	}
}

// ensureWrong hands the wrong role to a random live chicken if its holder
// vanished without landing.
func (g *Game) ensureWrong() {
	if g.wrongID == uuid.Nil {
		return
	}
	if slices.ContainsFunc(g.chickens, func(c *Chicken) bool { return c.ID == g.wrongID }) {
		return
	}

	g.wrongID = uuid.Nil
	if len(g.chickens) == 0 {
		return
	}
	c := g.chickens[g.rng.Intn(len(g.chickens))]
	c.Wrong = true
	g.wrongID = c.ID
}

func (g *Game) spawnBatch(events *core.Events) {
	spawn := g.cfg.Spawn
	n := spawn.MinBatch + g.rng.Intn(spawn.MaxBatch-spawn.MinBatch+1)

	for i := 0; i < n; i++ {
		wrong := g.wrongID == uuid.Nil && g.rng.Float64() < g.cfg.Chicken.WrongChance
		c, err := g.newChicken(wrong)
		if err != nil {
			return
		}
		if wrong {
			g.wrongID = c.ID
		}
		g.chickens = append(g.chickens, c)
		events.Add(core.Event{Kind: core.EventSpawned, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y})
	}
}

// newChicken drops a chicken just above the top edge at a random column.
func (g *Game) newChicken(wrong bool) (*Chicken, error) {
	r := g.cfg.Chicken.Radius
	x := r + g.rng.Float64()*max(g.worldW-2*r, 0)

	body, err := physics.NewBody(r2.Vec{X: x, Y: -r}, physics.Circle(r), physics.Material{Mass: 1, Friction: 1})
	if err != nil {
		return nil, err
	}

	lo, hi := g.cfg.Chicken.MinFallSpeed, g.cfg.Chicken.MaxFallSpeed
	speed := lo + g.rng.Float64()*(hi-lo)
	body.Vel.Y = g.difficulty.Speed(speed, g.session.Score(), g.tickCount)

	return &Chicken{Body: body, Wrong: wrong}, nil
}

// spawnDelay draws the wait before the next batch.
func (g *Game) spawnDelay() time.Duration {
	spawn := g.cfg.Spawn
	ms := spawn.MinDelayMS + g.rng.Intn(spawn.MaxDelayMS-spawn.MinDelayMS+1)
	return g.difficulty.Interval(core.Millis(ms), g.session.Score(), g.tickCount)
}

func (g *Game) remove(i int) {
	g.chickens = slices.Delete(g.chickens, i, i+1)
}

// end finishes the run and blows up every remaining chicken.
func (g *Game) end(events *core.Events) {
	if !g.session.End() {
		return
	}
	for _, c := range g.chickens {
		events.Add(core.Event{Kind: core.EventExploded, Body: c.ID, X: c.Pos.X, Y: c.Pos.Y})
	}
	g.chickens = g.chickens[:0]
	g.wrongID = uuid.Nil
	events.Add(core.Event{Kind: core.EventGameOver, Points: g.session.Score()})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Chickens returns the live chickens in spawn order.
func (g *Game) Chickens() []*Chicken {
	return g.chickens
}

// Snapshot returns the live bodies for rendering.
func (g *Game) Snapshot() core.Snapshot {
	sprites := make([]core.Sprite, 0, len(g.chickens))
	for _, c := range g.chickens {
		sprites = append(sprites, c.Sprite())
	}
	return core.Snapshot{Sprites: sprites, Ground: g.ground, WorldW: g.worldW, WorldH: g.worldH}
}

// Register the game with the registry
func init() {
	registry.Register("clicker", func() registry.Game {
		return New()
	})
}
