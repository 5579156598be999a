package flock

import (
	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/games/gfx"
)

// DiscChar is the glyph of a sandbox disc.
const DiscChar = '●'

// Render draws the current sandbox state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	gfx.Ground(dst, g.viewport, g.ground)

	for _, d := range g.discs {
		gfx.Disc(dst, g.viewport, d.Sprite(core.SpriteChicken), DiscChar, core.ColorYellow)
	}

	if g.hitboxes {
		gfx.GroundHitbox(dst, g.viewport, g.ground)
		for _, d := range g.discs {
			gfx.Hitbox(dst, g.viewport, d.Bounds(), core.ColorRed)
		}
	}

	gfx.HUD(dst, g.State(), g.session.Beaten())
}
