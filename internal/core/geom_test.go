package core

import "testing"

func TestRectIntersects(t *testing.T) {
	unit := NewRect(68, 60, 56, 56)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"projectile inside unit", NewRect(90, 80, 8, 20), true},
		{"projectile grazing bottom row", NewRect(90, 115, 8, 20), true},
		{"projectile touching bottom edge", NewRect(90, 116, 8, 20), false},
		{"projectile touching left edge", NewRect(60, 80, 8, 20), false},
		{"projectile overlapping left edge by one", NewRect(61, 80, 8, 20), true},
		{"neighbour unit one gap away", NewRect(124, 60, 56, 56), false},
		{"unit covering another", NewRect(0, 0, 400, 400), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := unit.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(unit); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	button := NewRect(500, 375, 200, 50)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"center", 600, 400, true},
		{"top-left corner", 500, 375, true},
		{"last pixel", 699, 424, true},
		{"right edge exclusive", 700, 400, false},
		{"bottom edge exclusive", 600, 425, false},
		{"left of button", 499, 400, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := button.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	ship := NewRect(570, 720, 60, 80)

	if ship.Right() != 630 || ship.Bottom() != 800 {
		t.Errorf("Right(), Bottom() = %d, %d; expected 630, 800", ship.Right(), ship.Bottom())
	}
	if ship.CenterX() != 600 {
		t.Errorf("CenterX() = %d, expected 600", ship.CenterX())
	}
	if cx, cy := ship.Center(); cx != 600 || cy != 760 {
		t.Errorf("Center() = (%d, %d), expected (600, 760)", cx, cy)
	}
}

func TestRectAtTruncates(t *testing.T) {
	r := RectAt(10.9, 20.2, 4, 6)
	if r.X != 10 || r.Y != 20 {
		t.Errorf("RectAt position = (%d, %d), expected (10, 20)", r.X, r.Y)
	}
	if r.W != 4 || r.H != 6 {
		t.Errorf("RectAt size = %dx%d, expected 4x6", r.W, r.H)
	}
	if r.CenterX() != 12 {
		t.Errorf("CenterX() = %d, expected 12", r.CenterX())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{300.5, 300.5},
		{-3.2, 0},
		{1150, 1140},
		{1140, 1140},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 1140); got != tc.expected {
			t.Errorf("ClampF(%v, 0, 1140) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}

type box struct{ r Rect }

func (b box) Bounds() Rect { return b.r }

func TestFirstOverlap(t *testing.T) {
	subject := box{NewRect(10, 10, 5, 5)}
	others := []box{
		{NewRect(0, 0, 5, 5)},
		{NewRect(12, 12, 5, 5)},
		{NewRect(11, 11, 2, 2)},
	}

	if got := FirstOverlap(subject, others); got != 1 {
		t.Errorf("FirstOverlap() = %d, expected 1", got)
	}
	if got := FirstOverlap(subject, others[:1]); got != -1 {
		t.Errorf("FirstOverlap() with no overlap = %d, expected -1", got)
	}
	if got := FirstOverlap[box](subject, nil); got != -1 {
		t.Errorf("FirstOverlap() on empty slice = %d, expected -1", got)
	}
	if !Overlaps(subject, others[2]) {
		t.Error("Overlaps() should report contained box")
	}
}
