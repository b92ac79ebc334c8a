package render

import (
	"netglobe/internal/geo"

	"github.com/gdamore/tcell/v2"
)

const gridSpacing = 8

// RegionView is everything needed to draw the regional base map
type RegionView struct {
	Size     geo.Size
	Bounds   geo.Bounds
	Pan      geo.Offset
	Outlines []*geo.Feature
}

// DrawRegion paints the fixed background grid, then the region's filled
// frame and outline polylines shifted by the pan offset.
func DrawRegion(c *Canvas, r RegionView) {
	if c.Width() == 0 || c.Height() == 0 {
		return
	}

	// The grid does not move with the map
	for y := 0; y < c.Height(); y += gridSpacing / 2 {
		for x := 0; x < c.Width(); x += gridSpacing {
			c.Set(x, y, '+', StyleGrid)
		}
	}

	lo, hi := geo.RegionalFrame(r.Size)
	topLeft := geo.ScreenPoint{X: lo.X + r.Pan.X, Y: lo.Y + r.Pan.Y}.Cell()
	bottomRight := geo.ScreenPoint{X: hi.X + r.Pan.X, Y: hi.Y + r.Pan.Y}.Cell()
	width := bottomRight.X - topLeft.X + 1
	height := bottomRight.Y - topLeft.Y + 1

	c.FillRect(topLeft.X, topLeft.Y, width, height, ' ', RegionFillStyle())
	c.DrawBox(topLeft.X, topLeft.Y, width, height, StyleFrame.Background(toTcell(colorOceanDeep)))

	for _, feature := range geo.FilterByBounds(r.Outlines, r.Bounds) {
		style := GetStyleForFeature(feature.Type)
		char := GetCharForFeature(feature.Type)
		feature.Segments(func(a, b geo.LatLon) {
			p1 := geo.ProjectRegional(a.Lat, a.Lon, r.Bounds, r.Size, r.Pan).Cell()
			p2 := geo.ProjectRegional(b.Lat, b.Lon, r.Bounds, r.Size, r.Pan).Cell()
			drawClippedLine(c, p1, p2, char, style)
		})
	}
}

// drawClippedLine skips segments lying wholly off one side of the canvas so
// a far pan does not walk thousands of invisible cells
func drawClippedLine(c *Canvas, p1, p2 geo.Point, char rune, style tcell.Style) {
	w, h := c.Width(), c.Height()
	if (p1.X < 0 && p2.X < 0) || (p1.Y < 0 && p2.Y < 0) ||
		(p1.X >= w && p2.X >= w) || (p1.Y >= h && p2.Y >= h) {
		return
	}
	c.OverlayLine(p1.X, p1.Y, p2.X, p2.Y, char, style)
}
