package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Set(-1, 0, 'x', tcell.StyleDefault)
	c.Set(4, 0, 'x', tcell.StyleDefault)
	c.Set(0, 3, 'x', tcell.StyleDefault)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c.Get(x, y).Char != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want blank", x, y, c.Get(x, y).Char)
			}
		}
	}
	if c.Get(10, 10).Char != ' ' {
		t.Error("Get outside the canvas should return a blank cell")
	}

	empty := NewCanvas(-5, -5)
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("negative size canvas = %dx%d, want 0x0", empty.Width(), empty.Height())
	}
}

func TestCanvasDrawTextRunes(t *testing.T) {
	c := NewCanvas(6, 1)
	c.DrawText(0, 0, "São", StyleLabel)

	want := []rune{'S', 'ã', 'o', ' '}
	for i, r := range want {
		if got := c.Get(i, 0).Char; got != r {
			t.Errorf("cell %d = %q, want %q", i, got, r)
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(1, 1, 8, 5, '*', tcell.StyleDefault)

	if c.Get(1, 1).Char != '*' || c.Get(8, 5).Char != '*' {
		t.Fatal("line endpoints should be drawn")
	}

	count := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.Get(x, y).Char == '*' {
				count++
			}
		}
	}
	if count != 8 {
		t.Errorf("line covered %d cells, want 8", count)
	}
}

func TestCanvasOverlayKeepsBackground(t *testing.T) {
	c := NewCanvas(3, 1)
	bg := tcell.StyleDefault.Background(tcell.ColorNavy)
	c.Set(1, 0, ' ', bg)
	c.Overlay(1, 0, '@', tcell.StyleDefault.Foreground(tcell.ColorRed))

	cell := c.Get(1, 0)
	fg, gotBg, _ := cell.Style.Decompose()
	if cell.Char != '@' || fg != tcell.ColorRed || gotBg != tcell.ColorNavy {
		t.Errorf("overlay cell = %q fg=%v bg=%v", cell.Char, fg, gotBg)
	}

	c.Overlay(7, 7, '@', tcell.StyleDefault)
}

func TestCanvasDrawRing(t *testing.T) {
	c := NewCanvas(21, 21)
	c.DrawRing(10, 10, 5, 1, 'o', tcell.StyleDefault)

	for _, p := range [][2]int{{15, 10}, {5, 10}, {10, 15}, {10, 5}} {
		if c.Get(p[0], p[1]).Char != 'o' {
			t.Errorf("ring missing cell %v", p)
		}
	}
	if c.Get(10, 10).Char != ' ' {
		t.Error("ring should not fill its center")
	}

	squashed := NewCanvas(21, 21)
	squashed.DrawRing(10, 10, 6, 2, 'o', tcell.StyleDefault)
	if squashed.Get(10, 13).Char != 'o' || squashed.Get(10, 16).Char == 'o' {
		t.Error("aspect ratio should halve the ring's vertical extent")
	}

	c.DrawRing(0, 0, 0, 1, 'x', tcell.StyleDefault)
	c.DrawRing(0, 0, 3, 1, 'x', tcell.StyleDefault)
}

func TestCanvasBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	c := NewCanvas(3, 2)
	c.DrawText(0, 1, "abc", StyleLabel)
	c.Blit(screen, 2, 1)

	if r, _, _, _ := screen.GetContent(3, 2); r != 'b' {
		t.Errorf("blitted cell = %q, want 'b'", r)
	}
}
