package geo

// FeatureType represents the kind of outline a polyline belongs to
type FeatureType int

const (
	FeatureBorder FeatureType = iota
	FeatureCoastline
	FeatureOutline
)

// String returns a string representation of the feature type
func (f FeatureType) String() string {
	switch f {
	case FeatureBorder:
		return "Border"
	case FeatureCoastline:
		return "Coastline"
	case FeatureOutline:
		return "Outline"
	default:
		return "Unknown"
	}
}

// LatLon represents a geographic coordinate
type LatLon struct {
	Lat float64
	Lon float64
}

// Feature is a polyline drawn under the markers
type Feature struct {
	Type   FeatureType
	Points []LatLon
}

// NewLineFeature creates a new polyline feature
func NewLineFeature(ftype FeatureType, points []LatLon) *Feature {
	return &Feature{
		Type:   ftype,
		Points: points,
	}
}

// Segments calls fn for every consecutive pair of points
func (f *Feature) Segments(fn func(a, b LatLon)) {
	for i := 0; i+1 < len(f.Points); i++ {
		fn(f.Points[i], f.Points[i+1])
	}
}
