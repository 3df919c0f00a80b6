package core

import (
	"strings"
	"testing"
)

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("new screen is not blank: %q", s.String())
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 1},
		{"right", 4, 1},
		{"above", 1, -1},
		{"below", 1, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetColor(tc.x, tc.y, '#', ColorRed) // must not panic
			if c := s.GetCell(tc.x, tc.y); c != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tc.x, tc.y, c)
			}
		})
	}

	// A rect hanging off the edge draws only its visible part.
	s.DrawRectColor(NewRect(2, 1, 5, 5), 'W', ColorGreen)
	if got := s.Row(2); got != "  WW" {
		t.Errorf("Row(2) = %q, expected %q", got, "  WW")
	}
	if got := s.Row(0); got != "    " {
		t.Errorf("Row(0) = %q, expected blank", got)
	}
	if got := s.Row(9); got != "    " {
		t.Errorf("out of range Row = %q, expected blank", got)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(11, 2)

	s.DrawText(0, 0, "SCORE 1,000")
	if got := s.Row(0); got != "SCORE 1,000" {
		t.Errorf("Row(0) = %q", got)
	}

	s.DrawTextCentered(1, "▲▲▲")
	if got := s.Row(1); got != "    ▲▲▲    " {
		t.Errorf("centered multi-byte text = %q", got)
	}
	if s.Get(4, 1) != '▲' {
		t.Errorf("Get(4, 1) = %q, expected '▲'", s.Get(4, 1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawBox(NewRect(0, 0, 6, 3))

	expected := []string{
		"┌────┐",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'x')

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("size after Resize = %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Get(7, 1) != ' ' {
		t.Error("grown area should be blank")
	}

	// Resizing to the same size is a no-op for contents.
	s.Set(0, 0, 'y')
	s.Resize(8, 2)
	if s.Get(0, 0) != 'y' {
		t.Error("same-size Resize should keep contents")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawRectColor(NewRect(1, 1, 2, 2), '#', ColorGreen)
	s.DrawTextColor(0, 3, "ok", ColorRed)

	if c := s.GetCell(1, 1); c.Rune != '#' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected green '#'", c)
	}
	if c := s.GetCell(1, 3); c.Rune != 'k' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 3) = %+v, expected red 'k'", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("Clear should reset cells, got %+v", c)
	}
}
