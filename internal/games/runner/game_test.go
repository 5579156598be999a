package runner

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/hazards"
	"github.com/vovakirdan/kinetic-arcade/internal/registry"
)

const frame = core.FrameDuration

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

// newQuietGame returns a game whose field never spawns on its own.
func newQuietGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.cfg.Hazards.IntervalMS = int(time.Hour / time.Millisecond)
	g.Reset(testRuntime())
	return g
}

// settle steps without input until the cube lands.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 200 && !g.Grounded(); i++ {
		g.Step(frame, core.NewInputFrame())
	}
	if !g.Grounded() {
		t.Fatal("cube never landed")
	}
}

func addObstacle(t *testing.T, g *Game, spec hazards.Spec, x, speed float64) *hazards.Obstacle {
	t.Helper()
	o, err := hazards.NewObstacle(spec, x, g.ground-spec.H, speed)
	if err != nil {
		t.Fatalf("NewObstacle() error = %v", err)
	}
	g.Field().Add(o)
	return o
}

var (
	spike = hazards.Spec{Sub: hazards.SubKindSpike, Kind: hazards.KindLethal, Weight: 1, W: 30, H: 10}
	wall  = hazards.Spec{Sub: hazards.SubKindWall, Kind: hazards.KindBlocking, Weight: 1, W: 40, H: 80}
)

func TestRegistered(t *testing.T) {
	if !registry.Exists("runner") {
		t.Error("runner is not registered")
	}
}

func TestPlayerLandsOnGround(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)

	p := g.Player()
	if p.Bounds().Bottom() != g.ground {
		t.Errorf("player bottom = %v, expected ground %v", p.Bounds().Bottom(), g.ground)
	}
	if p.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, expected 0 on the ground", p.Vel.Y)
	}
}

func TestLethalObstacleEndsRunOnFirstOverlap(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)

	// Player spans x 310..330; the spike's left edge is 500-5n after n frames.
	addObstacle(t, g, spike, 500, 5)

	for n := 1; n <= 100; n++ {
		res := g.Step(frame, core.NewInputFrame())
		if !res.State.GameOver {
			continue
		}

		if n != 35 {
			t.Errorf("game over on frame %d, expected 35", n)
		}
		evs := core.Events(res.Events)
		if evs.Count(core.EventHazardTouched) != 1 {
			t.Errorf("hazard events = %d, expected 1", evs.Count(core.EventHazardTouched))
		}
		if evs.Count(core.EventGameOver) != 1 {
			t.Errorf("game over events = %d, expected 1", evs.Count(core.EventGameOver))
		}

		frozen := g.State().RawScore
		for i := 0; i < 30; i++ {
			g.Step(frame, core.NewInputFrame())
		}
		if g.State().RawScore != frozen {
			t.Errorf("score moved after game over: %v -> %v", frozen, g.State().RawScore)
		}
		return
	}
	t.Fatal("spike never ended the run")
}

func TestBlockingWallPushesPlayer(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)

	addObstacle(t, g, wall, 400, 5)

	// The wall's left edge reaches 325 on frame 15 and overlaps the cube.
	var res core.StepResult
	for n := 1; n <= 15; n++ {
		res = g.Step(frame, core.NewInputFrame())
	}

	if core.Events(res.Events).Count(core.EventBlocked) != 1 {
		t.Fatalf("blocked events = %d, expected 1", core.Events(res.Events).Count(core.EventBlocked))
	}
	if got := g.Player().Pos.X; got != 315 {
		t.Errorf("player x = %v, expected 315", got)
	}
	if res.State.GameOver {
		t.Error("blocking contact ended the run")
	}
}

func TestPushedOffLeftEdgeEndsRun(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)
	addObstacle(t, g, wall, 400, 5)

	for n := 0; n < 200; n++ {
		res := g.Step(frame, core.NewInputFrame())
		if !res.State.GameOver {
			continue
		}
		evs := core.Events(res.Events)
		if evs.Count(core.EventOutOfBounds) != 1 {
			t.Errorf("out of bounds events = %d, expected 1", evs.Count(core.EventOutOfBounds))
		}
		if evs.Count(core.EventHazardTouched) != 0 {
			t.Error("wall reported as a hazard")
		}
		return
	}
	t.Fatal("wall never pushed the cube off screen")
}

func TestPauseFreezesFieldNotPlayer(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)
	o := addObstacle(t, g, spike, 600, 5)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(frame, in)
	if !res.State.Paused {
		t.Fatal("Pause action did not pause")
	}
	if core.Events(res.Events).Count(core.EventPauseToggled) != 1 {
		t.Error("missing pause event")
	}

	obstacleX := o.Pos.X
	playerX := g.Player().Pos.X
	score := g.State().RawScore

	right := core.NewInputFrame()
	right.Hold(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(frame, right)
	}

	if o.Pos.X != obstacleX {
		t.Errorf("obstacle moved while paused: %v -> %v", obstacleX, o.Pos.X)
	}
	if got := g.Player().Pos.X; got != playerX+30 {
		t.Errorf("player x = %v, expected %v", got, playerX+30)
	}
	if g.Player().Rotation == 0 {
		t.Error("cube did not rotate while moving")
	}
	if g.State().RawScore != score {
		t.Errorf("score accrued while paused: %v -> %v", score, g.State().RawScore)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)

	jump := core.NewInputFrame()
	jump.Hold(core.ActionJump)

	g.Step(frame, jump)
	if g.Grounded() {
		t.Fatal("still grounded after jump")
	}
	if got := g.Player().Vel.Y; math.Abs(got-(-5.8)) > 1e-9 {
		t.Errorf("Vel.Y after jump = %v, expected -5.8", got)
	}

	g.Step(frame, jump)
	if got := g.Player().Vel.Y; math.Abs(got-(-5.6)) > 1e-9 {
		t.Errorf("Vel.Y in the air = %v, expected -5.6 (no double jump)", got)
	}
}

func TestScoreAccruesSeconds(t *testing.T) {
	g := newQuietGame(t)
	for i := 0; i < 120; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	if got := g.State().RawScore; math.Abs(got-2) > 1e-6 {
		t.Errorf("RawScore() = %v, expected ~2", got)
	}
}

func TestZeroDeltaChangesNothing(t *testing.T) {
	g := newQuietGame(t)
	before := g.Player().Pos
	g.Step(0, core.NewInputFrame())
	if g.Player().Pos != before {
		t.Errorf("player moved on dt=0: %v -> %v", before, g.Player().Pos)
	}
	if g.State().RawScore != 0 {
		t.Errorf("RawScore() = %v, expected 0", g.State().RawScore)
	}
}

func TestFieldSpawnsObstacles(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	spawned := 0
	for i := 0; i < 100; i++ {
		res := g.Step(frame, core.NewInputFrame())
		spawned += core.Events(res.Events).Count(core.EventSpawned)
	}
	// 1500ms interval, 100 frames is ~1.67s.
	if spawned != 1 {
		t.Errorf("spawned = %d, expected 1", spawned)
	}
}

func TestResetClearsRun(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)
	addObstacle(t, g, spike, 315, 0)
	g.Step(frame, core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Reset(testRuntime())
	first := g.State()
	g.Reset(testRuntime())
	second := g.State()

	if first != second {
		t.Errorf("Reset() twice = %+v, once = %+v", second, first)
	}
	if second.GameOver || second.Score != 0 {
		t.Errorf("State() after Reset() = %+v", second)
	}
	if len(g.Field().Obstacles()) != 0 {
		t.Errorf("obstacles after Reset() = %d, expected 0", len(g.Field().Obstacles()))
	}
	if g.Player().Pos.X != 320 {
		t.Errorf("player x after Reset() = %v, expected 320", g.Player().Pos.X)
	}
}

func TestHighScoreFromRuntime(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.HighScore = 42
	g.Reset(rt)
	if g.State().HighScore != 42 {
		t.Errorf("HighScore = %d, expected 42", g.State().HighScore)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() core.Snapshot {
		g := New()
		g.cfg.Hazards.IntervalMS = 200
		g.Reset(testRuntime())
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Hold(core.ActionJump)
			}
			g.Step(frame, in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if len(a.Sprites) != len(b.Sprites) {
		t.Fatalf("sprite counts differ: %d vs %d", len(a.Sprites), len(b.Sprites))
	}
	for i := range a.Sprites {
		if a.Sprites[i].Kind != b.Sprites[i].Kind || a.Sprites[i].X != b.Sprites[i].X {
			t.Errorf("sprite %d differs: %+v vs %+v", i, a.Sprites[i], b.Sprites[i])
		}
	}
}

func TestHitboxToggle(t *testing.T) {
	g := newQuietGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionHitboxes)
	g.Step(frame, in)
	if !g.hitboxes {
		t.Error("hitboxes not enabled")
	}
	g.Step(frame, in)
	if g.hitboxes {
		t.Error("hitboxes not disabled")
	}
}

func TestRender(t *testing.T) {
	g := newQuietGame(t)
	settle(t, g)
	addObstacle(t, g, wall, 500, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, CubeFlat) {
		t.Error("cube not drawn")
	}
	if !strings.ContainsRune(out, WallChar) {
		t.Error("wall not drawn")
	}
	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
}

func TestSnapshot(t *testing.T) {
	g := newQuietGame(t)
	addObstacle(t, g, spike, 500, 0)

	snap := g.Snapshot()
	if len(snap.Sprites) != 2 {
		t.Fatalf("len(Sprites) = %d, expected 2", len(snap.Sprites))
	}
	if snap.Sprites[0].Kind != core.SpriteSpike || snap.Sprites[1].Kind != core.SpritePlayer {
		t.Errorf("sprite kinds = %v, %v", snap.Sprites[0].Kind, snap.Sprites[1].Kind)
	}
	if snap.Ground != g.ground || snap.WorldW != 640 {
		t.Errorf("snapshot world = %+v", snap)
	}
}

func TestViewportFollowsConfig(t *testing.T) {
	g := New()
	g.cfg.World.CellWidth = 10
	g.Reset(testRuntime())

	var _ registry.Pointable = g
	if vp := g.Viewport(); vp.CellW != 10 || vp.CellH != 16 {
		t.Errorf("Viewport() = %+v, expected {10 16}", vp)
	}
	if g.worldW != 800 {
		t.Errorf("worldW = %v, expected 800", g.worldW)
	}
}
