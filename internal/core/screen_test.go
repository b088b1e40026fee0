package core

import (
	"strings"
	"testing"
)

// rows returns the plain text of every screen row.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 4, 0},
		{"above", 0, -1},
		{"below", 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetCell(tc.x, tc.y, '#', ColorRed)
			if got := s.GetCell(tc.x, tc.y); got != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tc.x, tc.y, got)
			}
		})
	}

	if strings.ContainsRune(s.String(), '#') {
		t.Error("out of bounds writes leaked into the buffer")
	}
}

func TestScreenCellsAndClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'A')
	s.SetCell(1, 1, '#', ColorBrightRed)

	if s.Get(0, 0) != 'A' || s.GetCell(0, 0).Color != ColorDefault {
		t.Errorf("Set should write an uncolored rune, got %+v", s.GetCell(0, 0))
	}
	if cell := s.GetCell(1, 1); cell.Rune != '#' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(1, 1) = %+v, expected bright red '#'", cell)
	}

	s.Clear()
	if s.GetCell(0, 0) != blank || s.GetCell(1, 1) != blank {
		t.Error("Clear should reset runes and colors")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "Score")

	if got := s.Row(0); got != "     Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextColorMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColor(0, 0, "█▓x", ColorCyan)

	if s.Get(0, 0) != '█' || s.Get(1, 0) != '▓' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text should occupy one cell per rune, row = %q", s.Row(0))
	}
	if s.GetCell(2, 0).Color != ColorCyan {
		t.Error("DrawTextColor should color every cell")
	}
}

func TestScreenCarBlock(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRectColor(NewRect(2, 1, 2, 2), '█', ColorBrightCyan)

	want := []string{
		"      ",
		"  ██  ",
		"  ██  ",
		"      ",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, expected %q", y, row, want[y])
		}
	}
	if s.GetCell(3, 2).Color != ColorBrightCyan {
		t.Error("DrawRectColor should color the block")
	}
}

func TestScreenMessageBox(t *testing.T) {
	s := NewScreen(7, 4)
	box := NewRect(1, 0, 5, 4)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawText(2, 1, "END")

	want := []string{
		" ┌───┐ ",
		" │END│ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, expected %q", y, row, want[y])
		}
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawVLine(3, 2, 4, '|', ColorGray)

	for y := 2; y < 6; y++ {
		cell := s.GetCell(3, y)
		if cell.Rune != '|' || cell.Color != ColorGray {
			t.Errorf("DrawVLine: expected gray '|' at (3, %d), got %+v", y, cell)
		}
	}
	if s.Get(3, 6) != ' ' {
		t.Error("DrawVLine drew past its length")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Score: 3")
	s.DrawText(0, 5, "footer")

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Score" {
		t.Errorf("Row(0) = %q after shrinking", got)
	}

	s.Resize(12, 6)
	if got := s.Row(0); got != "Score       " {
		t.Errorf("Row(0) = %q after growing", got)
	}
	if got := s.Row(5); strings.TrimSpace(got) != "" {
		t.Errorf("rows cut by the shrink should come back blank, got %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 2)

	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, expected blanks", got)
	}
	if got := s.Row(2); got != "   " {
		t.Errorf("Row(2) = %q, expected blanks", got)
	}
}
