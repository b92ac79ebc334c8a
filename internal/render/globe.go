package render

import (
	"math"

	"netglobe/internal/geo"
)

const graticuleStep = 30.0

// DrawGlobe paints the shaded disc, its limb and a graticule turned by
// rotation radians. Only the front hemisphere of the graticule is drawn.
func DrawGlobe(c *Canvas, g geo.GlobeSurface, rotation float64) {
	if c.Width() == 0 || c.Height() == 0 {
		return
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			dx := float64(x) - g.Center.X
			dy := (float64(y) - g.Center.Y) * g.Aspect
			distance := math.Sqrt(dx*dx + dy*dy)

			if distance <= g.Radius {
				ratio := distance / g.Radius
				c.Set(x, y, ' ', ShadeStyle(math.Sqrt(1-ratio*ratio)))
			}
			if distance > g.Radius-0.5 && distance < g.Radius+0.5 {
				c.Overlay(x, y, '·', LimbStyle())
			}
		}
	}

	step := 180 / (math.Pi * math.Max(g.Radius, 1))

	// Parallels
	for lat := -90 + graticuleStep; lat < 90; lat += graticuleStep {
		for lng := -180.0; lng < 180; lng += step {
			plotGraticule(c, g, lat, lng, rotation)
		}
	}

	// Meridians
	for lng := -180.0; lng < 180; lng += graticuleStep {
		for lat := -90 + step; lat < 90; lat += step {
			plotGraticule(c, g, lat, lng, rotation)
		}
	}
}

func plotGraticule(c *Canvas, g geo.GlobeSurface, lat, lng, rotation float64) {
	p, gp := g.Project(lat, lng, rotation)
	if !gp.Visible() {
		return
	}
	cell := p.Cell()
	c.Overlay(cell.X, cell.Y, '·', StyleGraticule)
}
