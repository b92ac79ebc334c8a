package render

import (
	"sort"

	"netglobe/internal/geo"

	"github.com/mattn/go-runewidth"
)

// Marker is a location already projected onto the surface
type Marker struct {
	Location *geo.Location
	Pos      geo.ScreenPoint
	Selected bool
}

// DrawMarkers draws every marker's pulse ring first, then the glyphs on
// top so rings never hide another marker. Higher-priority categories are
// drawn last, and the selected marker gets its name alongside.
func DrawMarkers(c *Canvas, markers []Marker, pulse Pulse, radius, aspect float64) {
	if len(markers) == 0 {
		return
	}

	ordered := make([]Marker, len(markers))
	copy(ordered, markers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Location.Category.Priority() < ordered[j].Location.Category.Priority()
	})

	phase := pulse.Phase(radius)
	for _, m := range ordered {
		c.DrawRing(m.Pos.X, m.Pos.Y, radius, aspect, '∘', PulseStyle(m.Location.Category, phase))
	}

	var selected *Marker
	for i := range ordered {
		m := &ordered[i]
		cell := m.Pos.Cell()
		c.Overlay(cell.X, cell.Y, GlyphForCategory(m.Location.Category), MarkerStyle(m.Location.Category, m.Selected))
		if m.Selected {
			selected = m
		}
	}

	if selected != nil {
		cell := selected.Pos.Cell()
		label := " " + selected.Location.Name + " "
		width := runewidth.StringWidth(label)
		x := cell.X + 2
		if x+width > c.Width() {
			x = cell.X - 1 - width
		}
		c.DrawText(x, cell.Y, label, StyleListSelected)
	}
}
