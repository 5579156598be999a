package flock

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/physics"
	"github.com/vovakirdan/kinetic-arcade/internal/registry"
)

const frame = core.FrameDuration

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// newStillGame returns a sandbox without gravity, damping or spawning.
func newStillGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.cfg.World.Gravity = 0
	g.cfg.Disc.Friction = 1
	g.cfg.Spawn.IntervalMS = int(time.Hour / time.Millisecond)
	g.Reset(testRuntime())
	return g
}

func addDisc(t *testing.T, g *Game, x, y, vx float64) *physics.Body {
	t.Helper()
	d, err := physics.NewBody(r2.Vec{X: x, Y: y}, physics.Circle(20), physics.Material{Mass: 1, Restitution: 0.5, Friction: 1})
	if err != nil {
		t.Fatalf("NewBody() error = %v", err)
	}
	d.Vel.X = vx
	g.discs = append(g.discs, d)
	return d
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("flock") {
		t.Error("flock is not registered")
	}
}

func TestSpawnsPerInterval(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	res := g.Step(time.Second, core.NewInputFrame())
	if n := core.Events(res.Events).Count(core.EventSpawned); n != 2 {
		t.Errorf("spawned = %d, expected 2", n)
	}
	for _, d := range g.Discs() {
		if d.Vel.X < -5 || d.Vel.X > 5 {
			t.Errorf("spawn vx = %v outside [-5, 5]", d.Vel.X)
		}
	}
}

func TestSpawnCapRetiresOldest(t *testing.T) {
	g := New()
	g.cfg.Spawn.MaxBodies = 3
	g.Reset(testRuntime())

	res := g.Step(2500*time.Millisecond, core.NewInputFrame())
	evs := core.Events(res.Events)
	if evs.Count(core.EventSpawned) != 5 {
		t.Errorf("spawned = %d, expected 5", evs.Count(core.EventSpawned))
	}
	if evs.Count(core.EventRetired) != 2 {
		t.Errorf("retired = %d, expected 2", evs.Count(core.EventRetired))
	}
	if len(g.Discs()) != 3 {
		t.Errorf("len(Discs()) = %d, expected 3", len(g.Discs()))
	}
}

func TestDiscsStayInWorld(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	for i := 0; i < 600; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	if len(g.Discs()) == 0 {
		t.Fatal("no discs spawned")
	}

	// Pair resolution runs after clamping, so allow a sliver of push-out.
	const slack = 20
	for _, d := range g.Discs() {
		b := d.Bounds()
		if b.Bottom() > g.ground+slack {
			t.Errorf("disc bottom %v below ground %v", b.Bottom(), g.ground)
		}
		if b.X < -slack || b.Right() > g.worldW+slack {
			t.Errorf("disc x range %v..%v outside the walls", b.X, b.Right())
		}
	}
}

func TestHeadOnCollision(t *testing.T) {
	g := newStillGame(t)
	a := addDisc(t, g, 100, 200, 4)
	b := addDisc(t, g, 135, 200, -4)

	res := g.Step(frame, core.NewInputFrame())
	if core.Events(res.Events).Count(core.EventCollision) != 1 {
		t.Fatalf("collision events = %d, expected 1", core.Events(res.Events).Count(core.EventCollision))
	}
	if a.Vel.X != -2 || b.Vel.X != 2 {
		t.Errorf("velocities = %v, %v, expected -2, 2", a.Vel.X, b.Vel.X)
	}
	if d := r2.Norm(r2.Sub(b.Pos, a.Pos)); d < 40-1e-9 {
		t.Errorf("discs still overlap: distance %v", d)
	}
}

func TestKickLiftsDisc(t *testing.T) {
	g := newStillGame(t)
	g.cfg.Click.ExplodeChance = 0
	d := addDisc(t, g, 300, 200, 0)

	in := core.NewInputFrame()
	in.AddClick(300, 200)
	g.Step(frame, in)

	if d.Vel.Y > -10 {
		t.Errorf("Vel.Y = %v, expected at most -10", d.Vel.Y)
	}
	if d.Vel.X < -10 || d.Vel.X > 10 {
		t.Errorf("Vel.X = %v, expected within [-10, 10]", d.Vel.X)
	}
	if len(g.Discs()) != 1 {
		t.Error("disc exploded with zero explode chance")
	}
}

func TestKickExplodes(t *testing.T) {
	g := newStillGame(t)
	g.cfg.Click.ExplodeChance = 1
	addDisc(t, g, 300, 200, 0)

	in := core.NewInputFrame()
	in.AddClick(300, 200)
	res := g.Step(frame, in)

	if len(g.Discs()) != 0 {
		t.Errorf("len(Discs()) = %d, expected 0", len(g.Discs()))
	}
	if core.Events(res.Events).Count(core.EventExploded) != 1 {
		t.Error("missing explosion event")
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
}

func TestPauseFreezesSandbox(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(time.Second, core.NewInputFrame())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(frame, in)

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	after := g.Snapshot()

	if len(before.Sprites) != len(after.Sprites) {
		t.Fatalf("disc count changed while paused: %d -> %d", len(before.Sprites), len(after.Sprites))
	}
	for i := range before.Sprites {
		if before.Sprites[i].X != after.Sprites[i].X || before.Sprites[i].Y != after.Sprites[i].Y {
			t.Errorf("disc %d moved while paused", i)
		}
	}
}

func TestReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(time.Second, core.NewInputFrame())

	g.Reset(testRuntime())
	g.Reset(testRuntime())
	if len(g.Discs()) != 0 {
		t.Errorf("len(Discs()) after Reset() = %d, expected 0", len(g.Discs()))
	}
	if st := g.State(); st.Score != 0 || st.Paused {
		t.Errorf("State() after Reset() = %+v", st)
	}
}

func TestRender(t *testing.T) {
	g := newStillGame(t)
	addDisc(t, g, 300, 200, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cx, cy := g.viewport.ToCell(300, 200)
	if screen.Get(cx, cy) != DiscChar {
		t.Errorf("cell at disc center = %q, expected %q", screen.Get(cx, cy), DiscChar)
	}
}
