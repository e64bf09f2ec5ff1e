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
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '█', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red block", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('.', ColorGrass)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '.' || c.Color != ColorGrass {
				t.Errorf("After Fill, expected grass at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	s.Clear()
	if s.Get(2, 2) != ' ' {
		t.Errorf("After Clear, expected space, got %q", s.Get(2, 2))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Tick 42", ColorWhite)

	if !strings.HasPrefix(s.Row(1)[2:], "Tick 42") {
		t.Errorf("Row(1) = %q, expected text at column 2", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawRectClips(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(-2, -2, 4, 4), '#', ColorRed)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(2, 2) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDashedLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawDashedHLine(0, 0, 10, 2, '-', ColorYellow)

	expected := "--  --  --"
	if got := s.Row(0); got != expected {
		t.Errorf("DrawDashedHLine row = %q, expected %q", got, expected)
	}

	s.DrawDashedVLine(0, 2, 4, 1, '|', ColorYellow)
	if s.Get(0, 2) != '|' || s.Get(0, 3) != ' ' || s.Get(0, 4) != '|' {
		t.Error("DrawDashedVLine should alternate every cell with dash=1")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("Resize should clear the buffer, row 0 = %q", s.Row(0))
	}
	if outOfBounds := s.Row(-1); outOfBounds != "        " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenBlit(t *testing.T) {
	dst := NewScreen(6, 3)
	src := NewScreen(3, 2)
	src.Fill('#', ColorRed)

	dst.Blit(src, 4, 2)
	if got := dst.Row(2); got != "    ##" {
		t.Errorf("Row(2) = %q, expected %q", got, "    ##")
	}
	if c := dst.GetCell(4, 2); c.Color != ColorRed {
		t.Errorf("GetCell(4, 2).Color = %v, expected ColorRed", c.Color)
	}
	if got := dst.Row(1); got != "      " {
		t.Errorf("Row(1) = %q, expected blank", got)
	}
}
