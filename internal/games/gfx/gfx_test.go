package gfx

import (
	"strings"
	"testing"

	"github.com/vovakirdan/kinetic-arcade/internal/core"
)

var vp = core.Viewport{CellW: 8, CellH: 16}

func TestGround(t *testing.T) {
	s := core.NewScreen(10, 6)
	Ground(s, vp, 64) // row 4

	if s.Get(0, 4) != GroundTop {
		t.Errorf("ground row = %q, expected %q", s.Get(0, 4), GroundTop)
	}
	if s.Get(9, 5) != GroundFill {
		t.Errorf("fill = %q, expected %q", s.Get(9, 5), GroundFill)
	}
	if s.Get(0, 3) != ' ' {
		t.Errorf("above ground = %q, expected blank", s.Get(0, 3))
	}
}

func TestFillCoversSprite(t *testing.T) {
	s := core.NewScreen(10, 6)
	sp := core.Sprite{X: 24, Y: 24, W: 16, H: 16} // cells x 2..3, y 1
	Fill(s, vp, sp, '#', core.ColorRed)

	if s.Get(2, 1) != '#' || s.Get(3, 1) != '#' {
		t.Errorf("row 1 = %q, expected cells 2-3 filled", s.Row(1))
	}
	if s.GetCell(2, 1).Color != core.ColorRed {
		t.Errorf("color = %v, expected red", s.GetCell(2, 1).Color)
	}
	if s.Get(1, 1) != ' ' || s.Get(4, 1) != ' ' {
		t.Errorf("row 1 = %q, expected cells 1 and 4 blank", s.Row(1))
	}
	if s.Get(2, 2) != ' ' {
		t.Errorf("cell (2,2) = %q, expected blank", s.Get(2, 2))
	}
}

func TestHUD(t *testing.T) {
	s := core.NewScreen(40, 10)
	HUD(s, core.GameState{Score: 7, HighScore: 9, Paused: true}, false)

	if !strings.Contains(s.Row(0), "Score: 7") {
		t.Errorf("row 0 = %q, expected score", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "High: 9") {
		t.Errorf("row 0 = %q, expected high score", s.Row(0))
	}
	if !strings.Contains(s.Row(1), "Paused") {
		t.Errorf("row 1 = %q, expected pause tag", s.Row(1))
	}
}

func TestHUDGoldWhenBeaten(t *testing.T) {
	s := core.NewScreen(40, 10)
	HUD(s, core.GameState{Score: 12, HighScore: 12}, true)

	if c := s.GetCell(3, 0).Color; c != core.ColorGold {
		t.Errorf("score color = %v, expected gold", c)
	}
}

func TestHUDGameOver(t *testing.T) {
	s := core.NewScreen(50, 12)
	HUD(s, core.GameState{Score: 3, GameOver: true}, false)

	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}
}
