package core

import (
	"testing"
	"time"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "x overlaps but y does not",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 20, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edge",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        Box{X: 0, Y: 0, W: 20, H: 20},
			b:        Box{X: 5, Y: 5, W: 2.5, H: 2.5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 9.99, Y: 9.99, W: 1, H: 1},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(50, 40, 20, 10)

	if b.X != 40 || b.Y != 35 || b.Right() != 60 || b.Bottom() != 45 {
		t.Errorf("BoxAround() = %+v, expected 40..60 x 35..45", b)
	}
	cx, cy := b.Center()
	if cx != 50 || cy != 40 {
		t.Errorf("Center() = (%v, %v), expected (50, 40)", cx, cy)
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{CellW: 8, CellH: 16}

	w, h := v.WorldSize(80, 24)
	if w != 640 || h != 384 {
		t.Errorf("WorldSize() = (%v, %v), expected (640, 384)", w, h)
	}

	x, y := v.ToWorld(2, 3)
	if x != 20 || y != 56 {
		t.Errorf("ToWorld(2, 3) = (%v, %v), expected (20, 56)", x, y)
	}

	cx, cy := v.ToCell(x, y)
	if cx != 2 || cy != 3 {
		t.Errorf("ToCell() = (%d, %d), expected (2, 3)", cx, cy)
	}

	r := v.ToRect(Box{X: 8, Y: 10, W: 30, H: 4})
	if r.X != 1 || r.Y != 0 || r.W != 4 || r.H != 1 {
		t.Errorf("ToRect() = %+v, expected {1 0 4 1}", r)
	}
}

func TestFrames(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected float64
	}{
		{FrameDuration, 1},
		{2 * FrameDuration, 2},
		{0, 0},
		{-time.Second, 0},
	}

	for _, tc := range tests {
		if got := Frames(tc.elapsed); got != tc.expected {
			t.Errorf("Frames(%v) = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.2, 0, 1, 0},
		{1.5, 0, 1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)
	f.Set(ActionPause)
	f.AddClick(10, 20)

	if !f.IsDown(ActionLeft) {
		t.Error("held action should be down")
	}
	if !f.IsDown(ActionPause) {
		t.Error("pressed action should count as down")
	}
	if f.Has(ActionLeft) {
		t.Error("held action should not count as a one-shot press")
	}

	clone := f.Clone()
	f.Clear()

	if f.IsDown(ActionLeft) || len(f.Clicks) != 0 {
		t.Error("Clear should drop held keys and clicks")
	}
	if !clone.IsDown(ActionLeft) || len(clone.Clicks) != 1 {
		t.Error("Clone should be independent of the original")
	}
}
