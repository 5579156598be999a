// Package runner implements Cube Runner, a side-scrolling survival game.
// The player moves a rotating cube with A/D and Space while walls, lava
// pools and spikes scroll in from the right.
package runner

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/kinetic-arcade/internal/config"
	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/hazards"
	"github.com/vovakirdan/kinetic-arcade/internal/physics"
	"github.com/vovakirdan/kinetic-arcade/internal/registry"
	"github.com/vovakirdan/kinetic-arcade/internal/session"
)

// Game implements the Cube Runner game logic.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	viewport   core.Viewport
	difficulty *config.DifficultyManager

	worldW, worldH float64
	ground         float64

	player   *physics.Body
	grounded bool
	field    *hazards.Field
	session  *session.Session

	hitboxes  bool
	tickCount int
}

// New creates a new Cube Runner game instance with built-in defaults.
func New() *Game {
	return &Game{cfg: config.DefaultRunnerConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cube Runner"
}

// Viewport returns the cell/world mapping of the current world.
func (g *Game) Viewport() core.Viewport {
	return g.viewport
}

// Configure loads the runner config and applies a difficulty preset.
// On error the built-in config stays in effect.
func (g *Game) Configure(path string, preset config.DifficultyPreset) (config.Source, error) {
	cfg, src, err := config.LoadRunner(path)
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	g.field = nil
	return src, err
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.viewport = g.cfg.World.Viewport()
	g.worldW, g.worldH = g.viewport.WorldSize(runtime.ScreenW, runtime.ScreenH)
	g.ground = g.cfg.World.Ground(g.worldH)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tickCount = 0

	if g.session == nil {
		g.session = session.New(runtime.HighScore, g.cfg.Session.PauseCooldown())
	} else {
		g.session.Reset()
		if runtime.HighScore > g.session.HighScore() {
			g.session.SetHighScore(runtime.HighScore)
		}
	}

	if g.field == nil {
		g.field = g.newField()
	} else {
		g.field.Resize(g.worldW, g.ground)
		g.field.SetInterval(g.cfg.Hazards.Interval())
		g.field.Reset(runtime.Seed)
	}

	g.resetPlayer()
}

// newField builds the obstacle field, falling back to the stock catalog
// when the configured one is unusable.
func (g *Game) newField() *hazards.Field {
	fc := hazards.FieldConfig{
		RepeatCap: g.cfg.Hazards.RepeatCap,
		Interval:  g.cfg.Hazards.Interval(),
		SpawnX:    g.worldW,
		Ground:    g.ground,
	}
	if fc.Interval <= 0 {
		fc.Interval = config.DefaultRunnerConfig().Hazards.Interval()
	}

	catalog, err := g.cfg.Hazards.Catalog()
	if err == nil {
		fc.Catalog = catalog
		if field, err := hazards.NewField(fc, g.runtime.Seed); err == nil {
			return field
		}
	}

	fc.Catalog = hazards.DefaultCatalog()
	field, _ := hazards.NewField(fc, g.runtime.Seed)
	return field
}

// resetPlayer puts the cube back at its spawn point above the middle of
// the screen.
func (g *Game) resetPlayer() {
	size := g.cfg.Player.Size
	start := r2.Vec{X: g.worldW / 2, Y: g.worldH/2 - 50}

	player, err := physics.NewBody(start, physics.Box(size, size), physics.Material{Mass: 1, Friction: 1})
	if err != nil {
		player, _ = physics.NewBody(start, physics.Box(20, 20), physics.Material{Mass: 1, Friction: 1})
	}
	g.player = player
	g.grounded = false
}

// Step advances the game by dt.
//
// While paused the player still moves and collisions are still checked,
// but obstacles neither spawn nor move and the score does not accrue.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	var events core.Events

	if in.Has(core.ActionHitboxes) {
		g.hitboxes = !g.hitboxes
	}
	if g.session.TogglePause(in.IsDown(core.ActionPause), dt) {
		events.Add(core.Event{Kind: core.EventPauseToggled})
	}

	frames := core.Frames(dt)
	g.movePlayer(in, frames)

	if !g.session.Paused() {
		score := g.session.Score()
		speed := g.difficulty.Speed(g.cfg.Player.Speed+g.cfg.Hazards.SpeedBonus, score, g.tickCount)
		g.field.SetInterval(g.difficulty.Interval(g.cfg.Hazards.Interval(), score, g.tickCount))
		// Spawning can only fail on an invalid catalog, which newField rules out.
		_ = g.field.Update(dt, speed, &events)
	}

	g.checkCollisions(&events)
	g.checkOutOfBounds(&events)

	if !g.session.Over() && !g.session.Paused() {
		g.session.Accrue(dt.Seconds())
		g.tickCount++
	}

	return core.StepResult{State: g.State(), Events: events}
}

// movePlayer applies held A/D movement, the jump and gravity, then lands
// the cube on the ground.
func (g *Game) movePlayer(in core.InputFrame, frames float64) {
	if frames <= 0 {
		return
	}

	dx := 0.0
	if in.IsDown(core.ActionLeft) {
		dx -= g.cfg.Player.Speed
	}
	if in.IsDown(core.ActionRight) {
		dx += g.cfg.Player.Speed
	}
	g.player.Pos.X += dx * frames
	g.player.Spin(dx * frames * g.cfg.Player.RotationSpeed)

	if in.IsDown(core.ActionJump) && g.grounded {
		g.player.Vel.Y = g.cfg.Player.JumpVelocity
		g.grounded = false
	}

	g.player.Integrate(frames, g.cfg.World.Gravity)

	contact := physics.ResolveBounds(g.player, physics.Bounds{Ground: g.ground, Sides: physics.SideNone})
	if contact.Has(physics.ContactGround) {
		g.player.Vel.Y = 0
		g.grounded = true
	}
}

func (g *Game) checkCollisions(events *core.Events) {
	for _, hit := range g.field.Resolve(g.player) {
		ev := core.Event{Body: g.player.ID, Other: hit.Obstacle.ID, X: g.player.Pos.X, Y: g.player.Pos.Y}
		switch hit.Outcome {
		case hazards.OutcomeBlocked:
			ev.Kind = core.EventBlocked
			events.Add(ev)
		case hazards.OutcomeLethal:
			ev.Kind = core.EventHazardTouched
			events.Add(ev)
			g.end(events)
		}
	}
}

// checkOutOfBounds ends the run when the cube is pushed past the left edge.
func (g *Game) checkOutOfBounds(events *core.Events) {
	if g.session.Over() || g.player.Bounds().X >= 0 {
		return
	}
	events.Add(core.Event{Kind: core.EventOutOfBounds, Body: g.player.ID, X: g.player.Pos.X, Y: g.player.Pos.Y})
	g.end(events)
}

func (g *Game) end(events *core.Events) {
	if g.session.End() {
		events.Add(core.Event{Kind: core.EventGameOver, Points: g.session.Score()})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Player returns the cube body.
func (g *Game) Player() *physics.Body {
	return g.player
}

// Field returns the obstacle field.
func (g *Game) Field() *hazards.Field {
	return g.field
}

// Grounded reports whether the cube rests on the ground.
func (g *Game) Grounded() bool {
	return g.grounded
}

// Snapshot returns the live bodies for rendering.
func (g *Game) Snapshot() core.Snapshot {
	obstacles := g.field.Obstacles()
	sprites := make([]core.Sprite, 0, len(obstacles)+1)
	for _, o := range obstacles {
		sprites = append(sprites, o.Sprite())
	}
	sprites = append(sprites, g.player.Sprite(core.SpritePlayer))

	return core.Snapshot{
		Sprites: sprites,
		Ground:  g.ground,
		WorldW:  g.worldW,
		WorldH:  g.worldH,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
