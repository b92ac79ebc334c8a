package ui

import (
	"netglobe/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// panel is a bordered, opaque rectangle drawn over the map
type panel struct {
	x, y          int
	width, height int
}

// contains reports whether a screen cell falls on the panel
func (p panel) contains(x, y int) bool {
	return x >= p.x && x < p.x+p.width && y >= p.y && y < p.y+p.height
}

// drawFrame clears the panel interior and draws its border and title
func (p panel) drawFrame(screen tcell.Screen, title string) {
	if p.width < 2 || p.height < 2 {
		return
	}

	// Clear the entire panel area first (make it opaque)
	for row := p.y + 1; row < p.y+p.height-1; row++ {
		for col := p.x + 1; col < p.x+p.width-1; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}

	style := render.StyleLabel
	screen.SetContent(p.x, p.y, '┌', nil, style)
	screen.SetContent(p.x+p.width-1, p.y, '┐', nil, style)
	screen.SetContent(p.x, p.y+p.height-1, '└', nil, style)
	screen.SetContent(p.x+p.width-1, p.y+p.height-1, '┘', nil, style)

	for i := 1; i < p.width-1; i++ {
		screen.SetContent(p.x+i, p.y, '─', nil, style)
		screen.SetContent(p.x+i, p.y+p.height-1, '─', nil, style)
	}
	for i := 1; i < p.height-1; i++ {
		screen.SetContent(p.x, p.y+i, '│', nil, style)
		screen.SetContent(p.x+p.width-1, p.y+i, '│', nil, style)
	}

	if title != "" {
		title = " " + title + " "
		titleX := p.x + (p.width-runewidth.StringWidth(title))/2
		drawText(screen, titleX, p.y, p.width-2, title, style)
	}
}

// drawText writes text from (x, y) and stops after maxWidth columns. It
// returns the number of columns used.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxWidth {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
	return col
}

// fillRow pads a row with spaces from column x to x+width
func fillRow(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}
