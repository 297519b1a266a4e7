package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if got := rowOf(s, 0); got != "" {
		t.Errorf("rowOf(0) = %q, expected empty", got)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '◼', ColorAlive)
	cell := s.GetCell(5, 5)
	if cell.Rune != '◼' || cell.Color != ColorAlive {
		t.Errorf("GetCell(5, 5) = %+v, expected alive glyph", cell)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorAlive)
	s.SetCell(100, 0, 'A', ColorAlive)
	s.SetCell(0, -1, 'A', ColorAlive)
	s.SetCell(0, 100, 'A', ColorAlive)

	if s.GetCell(-1, 0) != blank {
		t.Error("Out of bounds GetCell should return blank")
	}
	if s.GetCell(100, 0) != blank {
		t.Error("Out of bounds GetCell should return blank")
	}
	if s.GetCell(0, 0) != blank {
		t.Error("Out of bounds SetCell should not touch the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorCursor)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "gen ◼ 3", ColorStatus)

	for i, ch := range []rune("gen ◼ 3") {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != ch || cell.Color != ColorStatus {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, cell)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorAlive)
	s.DrawText(0, 5, "World", ColorAlive)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := rowOf(s, 0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}
	if s.GetCell(0, 0).Color != ColorAlive {
		t.Error("Color should be preserved on resize")
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = rowOf(s, 0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if rowOf(s, 5) != strings.Repeat(" ", 15) {
		t.Errorf("Dropped rows should come back blank, row 5 = %q", rowOf(s, 5))
	}
}

// rowOf returns row y as plain text.
func rowOf(s *Screen, y int) string {
	var sb strings.Builder
	for x := range s.Width() {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}
