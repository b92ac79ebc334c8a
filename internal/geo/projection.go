package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// RegionalMargin is the fraction of the surface left blank on each side of
// the regional map.
const RegionalMargin = 0.10

// Point represents a screen cell
type Point struct {
	X int
	Y int
}

// ScreenPoint is a position on the drawing surface in cell units
type ScreenPoint struct {
	X float64
	Y float64
}

// Cell rounds the position to the nearest cell
func (p ScreenPoint) Cell() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// DistanceTo returns the Euclidean distance between two surface positions
func (p ScreenPoint) DistanceTo(q ScreenPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Offset is a pan translation in surface units
type Offset struct {
	X float64
	Y float64
}

// Add returns o translated by (dx, dy)
func (o Offset) Add(dx, dy float64) Offset {
	return Offset{X: o.X + dx, Y: o.Y + dy}
}

// Size is the drawing surface extent in cells
type Size struct {
	W float64
	H float64
}

// GlobePoint is an orthographic projection result relative to the globe
// center. Depth is the dropped axis; the point faces the viewer iff Depth > 0.
type GlobePoint struct {
	Dx    float64
	Dy    float64
	Depth float64
}

// Visible reports whether the point is on the front hemisphere
func (g GlobePoint) Visible() bool {
	return g.Depth > 0
}

// NormalizeLng folds a longitude in degrees into (-180, 180]
func NormalizeLng(lng float64) float64 {
	return (s1.Angle(lng) * s1.Degree).Normalized().Degrees()
}

// ProjectGlobal maps a coordinate onto a sphere of the given radius turned by
// rotation radians about the polar axis, then drops the view axis. With zero
// rotation the front hemisphere is centered on longitude -90. North is up, so
// Dy is negative in the northern hemisphere. Rotation may be any magnitude.
func ProjectGlobal(lat, lng, rotation, radius float64) GlobePoint {
	lat = math.Max(-90, math.Min(90, lat))
	if lat == 90 || lat == -90 {
		// cos(lat) is not exactly zero in floating point; pin the pole so it
		// sits on the limb regardless of rotation.
		return GlobePoint{Dx: 0, Dy: -math.Copysign(radius, lat), Depth: 0}
	}

	lambda := (s1.Angle(lng)*s1.Degree + s1.Angle(rotation)).Normalized()
	p := s2.PointFromLatLng(s2.LatLng{
		Lat: s1.Angle(lat) * s1.Degree,
		Lng: lambda,
	})

	return GlobePoint{
		Dx:    p.X * radius,
		Dy:    -p.Z * radius,
		Depth: -p.Y * radius,
	}
}

// RegionalFrame returns the inner rectangle the regional map draws into
func RegionalFrame(size Size) (lo, hi ScreenPoint) {
	lo = ScreenPoint{X: size.W * RegionalMargin, Y: size.H * RegionalMargin}
	hi = ScreenPoint{X: size.W * (1 - RegionalMargin), Y: size.H * (1 - RegionalMargin)}
	return lo, hi
}

// ProjectRegional maps a coordinate linearly from bounds onto the inner
// rectangle of the surface, north up, then applies the pan offset. An axis of
// bounds with no extent maps to the middle of the rectangle.
func ProjectRegional(lat, lng float64, bounds Bounds, size Size, pan Offset) ScreenPoint {
	lng = NormalizeLng(lng)
	lo, hi := RegionalFrame(size)
	latSpan, lonSpan := bounds.Span()

	fx := 0.5
	if lonSpan != 0 {
		fx = (lng - bounds.MinLon) / lonSpan
	}
	fy := 0.5
	if latSpan != 0 {
		fy = (bounds.MaxLat - lat) / latSpan
	}

	return ScreenPoint{
		X: lo.X + fx*(hi.X-lo.X) + pan.X,
		Y: lo.Y + fy*(hi.Y-lo.Y) + pan.Y,
	}
}

// GlobeSurface places the orthographic globe on a cell surface. Cells are
// taller than they are wide, so vertical offsets are divided by Aspect.
type GlobeSurface struct {
	Center ScreenPoint
	Radius float64
	Aspect float64
}

// FitGlobe sizes a globe to fill most of the surface
func FitGlobe(size Size, aspect float64) GlobeSurface {
	if aspect <= 0 {
		aspect = 1
	}
	radius := math.Min(size.W/2.5, size.H*aspect/2.5)
	if radius < 1 {
		radius = 1
	}
	return GlobeSurface{
		Center: ScreenPoint{X: size.W / 2, Y: size.H / 2},
		Radius: radius,
		Aspect: aspect,
	}
}

// Project returns the surface position of a coordinate along with its raw
// orthographic result, whose Depth decides visibility.
func (g GlobeSurface) Project(lat, lng, rotation float64) (ScreenPoint, GlobePoint) {
	gp := ProjectGlobal(lat, lng, rotation, g.Radius)
	return g.Place(gp), gp
}

// Place converts an orthographic offset into a surface position
func (g GlobeSurface) Place(gp GlobePoint) ScreenPoint {
	return ScreenPoint{
		X: g.Center.X + gp.Dx,
		Y: g.Center.Y + gp.Dy/g.Aspect,
	}
}

// Inside reports whether a surface position lies on the globe's disc
func (g GlobeSurface) Inside(p ScreenPoint) bool {
	dx := p.X - g.Center.X
	dy := (p.Y - g.Center.Y) * g.Aspect
	return dx*dx+dy*dy <= g.Radius*g.Radius
}
