package clicker

import (
	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/games/gfx"
)

// ChickenChar is the body glyph of every chicken.
const ChickenChar = '●'

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	gfx.Ground(dst, g.viewport, g.ground)

	for _, c := range g.chickens {
		color := core.ColorYellow
		if c.Wrong {
			color = core.ColorOrange
		}
		gfx.Disc(dst, g.viewport, c.Sprite(), ChickenChar, color)
	}

	if g.hitboxes {
		gfx.GroundHitbox(dst, g.viewport, g.ground)
		for _, c := range g.chickens {
			color := core.ColorGreen
			if c.Wrong {
				color = core.ColorRed
			}
			gfx.Hitbox(dst, g.viewport, c.Bounds(), color)
		}
		dst.DrawTextColored(2, 1, " Hitboxes: scoring paused ", core.ColorCyan)
	}

	gfx.HUD(dst, g.State(), g.session.Beaten())
}
