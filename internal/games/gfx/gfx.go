// Package gfx holds the drawing helpers the games share: world-space sprites
// and hitboxes projected onto the cell screen, the ground strip and the HUD.
package gfx

import (
	"fmt"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
)

// Ground glyphs.
const (
	GroundTop  = '▀'
	GroundFill = '░'
)

// Ground draws the ground line at world y and fills the rows below it.
func Ground(dst *core.Screen, vp core.Viewport, ground float64) {
	_, gy := vp.ToCell(0, ground)
	dst.DrawHLine(0, gy, dst.Width(), GroundTop, core.ColorGray)
	if rows := dst.Height() - gy - 1; rows > 0 {
		dst.DrawRect(core.NewRect(0, gy+1, dst.Width(), rows), GroundFill, core.ColorGray)
	}
}

// GroundHitbox overlays the ground line in the hitbox color.
func GroundHitbox(dst *core.Screen, vp core.Viewport, ground float64) {
	_, gy := vp.ToCell(0, ground)
	dst.DrawHLine(0, gy, dst.Width(), '─', core.ColorBlue)
}

// Fill paints every cell a sprite covers.
func Fill(dst *core.Screen, vp core.Viewport, s core.Sprite, r rune, c core.Color) {
	dst.DrawRect(vp.ToRect(s.Bounds()), r, c)
}

// Disc paints a circular sprite as its cell box with rounded corners left
// blank when the box is large enough.
func Disc(dst *core.Screen, vp core.Viewport, s core.Sprite, r rune, c core.Color) {
	rect := vp.ToRect(s.Bounds())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			corner := (x == rect.X || x == rect.Right()-1) && (y == rect.Y || y == rect.Bottom()-1)
			if corner && rect.W > 2 && rect.H > 2 {
				continue
			}
			dst.SetColored(x, y, r, c)
		}
	}
}

// Hitbox outlines a world box.
func Hitbox(dst *core.Screen, vp core.Viewport, b core.Box, c core.Color) {
	dst.DrawBox(vp.ToRect(b), c)
}

// HUD draws score, high score, the pause tag and the game over box.
// The score turns gold once the previous best is beaten.
func HUD(dst *core.Screen, st core.GameState, beaten bool) {
	scoreColor := core.ColorWhite
	if beaten {
		scoreColor = core.ColorGold
	}
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", st.Score), scoreColor)

	high := fmt.Sprintf(" High: %d ", st.HighScore)
	dst.DrawTextColored(dst.Width()-len(high)-2, 0, high, core.ColorYellow)

	if st.Paused {
		dst.DrawTextColored(dst.Width()-len(" Paused ")-2, 1, " Paused ", core.ColorWhite)
	}

	if st.GameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  R restart  B menu", st.Score))
	}
}
