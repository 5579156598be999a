package runner

import (
	"math"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/games/gfx"
	"github.com/vovakirdan/kinetic-arcade/internal/hazards"
)

// Visual characters for rendering
const (
	CubeFlat   = '■'
	CubeTilted = '◆'
	WallChar   = '█'
	LavaChar   = '≈'
	SpikeChar  = '▲'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	gfx.Ground(dst, g.viewport, g.ground)

	for _, o := range g.field.Obstacles() {
		g.drawObstacle(dst, o)
	}

	gfx.Fill(dst, g.viewport, g.player.Sprite(core.SpritePlayer), cubeGlyph(g.player.Rotation), core.ColorWhite)

	if g.hitboxes {
		g.drawHitboxes(dst)
	}

	gfx.HUD(dst, g.State(), g.session.Beaten())
}

func (g *Game) drawObstacle(dst *core.Screen, o *hazards.Obstacle) {
	sprite := o.Sprite()
	switch o.Sub {
	case hazards.SubKindWall:
		gfx.Fill(dst, g.viewport, sprite, WallChar, core.ColorDarkGreen)
	case hazards.SubKindLava:
		gfx.Fill(dst, g.viewport, sprite, LavaChar, core.ColorDarkGreen)
	default:
		gfx.Fill(dst, g.viewport, sprite, SpikeChar, core.ColorDarkRed)
	}
}

// drawHitboxes outlines blocking surfaces in blue and lethal ones in red.
func (g *Game) drawHitboxes(dst *core.Screen) {
	gfx.GroundHitbox(dst, g.viewport, g.ground)
	for _, o := range g.field.Obstacles() {
		color := core.ColorRed
		if o.Kind() == hazards.KindBlocking {
			color = core.ColorBlue
		}
		gfx.Hitbox(dst, g.viewport, o.Bounds(), color)
	}
	gfx.Hitbox(dst, g.viewport, g.player.Bounds(), core.ColorRed)
}

// cubeGlyph picks a square or diamond depending on the nearest eighth turn.
func cubeGlyph(rotation float64) rune {
	if int(math.Round(rotation/(math.Pi/4)))%2 == 1 {
		return CubeTilted
	}
	return CubeFlat
}
