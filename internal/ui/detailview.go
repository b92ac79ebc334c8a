package ui

import (
	"fmt"

	"netglobe/internal/geo"
	"netglobe/internal/render"

	"github.com/gdamore/tcell/v2"
)

// DetailView displays the selected location and its statistics. It sits
// in the top-right corner and grows to fit its lines.
type DetailView struct {
	panel
	location *geo.Location
}

// NewDetailView creates a new detail view for a screen of the given width
func NewDetailView(screenWidth, width int) *DetailView {
	d := &DetailView{panel: panel{width: width}}
	d.UpdateDimensions(screenWidth)
	return d
}

// SetLocation sets the location to display; nil hides the card
func (d *DetailView) SetLocation(loc *geo.Location) {
	d.location = loc
	d.height = 0
	if loc != nil {
		d.height = len(d.lines()) + 2
	}
}

// Location returns the displayed location
func (d *DetailView) Location() *geo.Location {
	return d.location
}

// Visible reports whether a card is shown
func (d *DetailView) Visible() bool {
	return d.location != nil
}

// Contains reports whether a screen cell falls on the card
func (d *DetailView) Contains(x, y int) bool {
	return d.Visible() && d.contains(x, y)
}

func (d *DetailView) lines() []string {
	loc := d.location
	lines := []string{
		fmt.Sprintf("Place:     %s", loc.Place()),
		fmt.Sprintf("Category:  %s", loc.Category),
		fmt.Sprintf("Position:  %s", loc.PositionString()),
	}

	keys := loc.StatKeys()
	if len(keys) > 0 {
		lines = append(lines, "")
	}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%-10s %s", k+":", loc.Stats[k]))
	}
	return lines
}

// Draw renders the detail card to the screen
func (d *DetailView) Draw(screen tcell.Screen) {
	if d.location == nil {
		return
	}

	d.drawFrame(screen, d.location.Name)

	for i, line := range d.lines() {
		y := d.y + 1 + i
		if y >= d.y+d.height-1 {
			break
		}
		drawText(screen, d.x+2, y, d.width-4, line, render.StyleLabel)
	}
}

// UpdateDimensions keeps the card anchored to the right edge
func (d *DetailView) UpdateDimensions(screenWidth int) {
	d.x = max(screenWidth-d.width, 0)
	d.y = 0
}
