package geo

import "math"

// Bounds represents a geographic bounding box
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundsOf returns the smallest box enclosing every location. An empty slice
// yields the whole world.
func BoundsOf(locations []Location) Bounds {
	if len(locations) == 0 {
		return Bounds{MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180}
	}

	b := Bounds{
		MinLat: math.Inf(1),
		MaxLat: math.Inf(-1),
		MinLon: math.Inf(1),
		MaxLon: math.Inf(-1),
	}
	for _, loc := range locations {
		lng := NormalizeLng(loc.Lng)
		b.MinLat = math.Min(b.MinLat, loc.Lat)
		b.MaxLat = math.Max(b.MaxLat, loc.Lat)
		b.MinLon = math.Min(b.MinLon, lng)
		b.MaxLon = math.Max(b.MaxLon, lng)
	}
	return b
}

// Contains checks if a point is within the bounds
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Span returns the latitude and longitude extents in degrees
func (b Bounds) Span() (lat, lon float64) {
	return b.MaxLat - b.MinLat, b.MaxLon - b.MinLon
}

// Pad grows the box by frac of its span on every side. A box with no extent
// along an axis grows by one degree on that axis.
func (b Bounds) Pad(frac float64) Bounds {
	latSpan, lonSpan := b.Span()

	latPad := latSpan * frac
	if latSpan == 0 {
		latPad = 1
	}
	lonPad := lonSpan * frac
	if lonSpan == 0 {
		lonPad = 1
	}

	return Bounds{
		MinLat: math.Max(-90, b.MinLat-latPad),
		MaxLat: math.Min(90, b.MaxLat+latPad),
		MinLon: math.Max(-180, b.MinLon-lonPad),
		MaxLon: math.Min(180, b.MaxLon+lonPad),
	}
}
