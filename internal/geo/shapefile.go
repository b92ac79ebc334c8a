package geo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonas-p/go-shp"
)

// Natural Earth layers the loader knows how to find in a data directory
var naturalEarthLayers = []struct {
	base  string
	ftype FeatureType
}{
	{base: "ne_50m_coastline", ftype: FeatureCoastline},
	{base: "ne_50m_admin_0_boundary_lines_land", ftype: FeatureBorder},
}

// ShapefileLoader loads outline polylines from ESRI shapefiles
type ShapefileLoader struct {
	dataDir string
}

// NewShapefileLoader creates a new shapefile loader
func NewShapefileLoader(dataDir string) *ShapefileLoader {
	return &ShapefileLoader{
		dataDir: dataDir,
	}
}

// LoadAll loads every known Natural Earth layer present in the data
// directory. Missing layers are skipped; the map works without them.
func (s *ShapefileLoader) LoadAll() ([]*Feature, error) {
	var features []*Feature

	for _, layer := range naturalEarthLayers {
		path := filepath.Join(s.dataDir, layer.base+".shp")
		if _, err := os.Stat(path); err != nil {
			continue
		}

		loaded, err := LoadShapefile(path, layer.ftype)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", layer.base, err)
		}
		features = append(features, loaded...)
	}

	return features, nil
}

// LoadShapefile reads every polyline and polygon ring in a shapefile. Each
// part of a multi-part shape becomes its own feature so separate rings are
// never joined by a stray segment.
func LoadShapefile(path string, ftype FeatureType) ([]*Feature, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	features := make([]*Feature, 0)

	for shape.Next() {
		_, p := shape.Shape()

		switch geom := p.(type) {
		case *shp.PolyLine:
			features = appendParts(features, ftype, geom.Parts, geom.Points)
		case *shp.Polygon:
			features = appendParts(features, ftype, geom.Parts, geom.Points)
		}
	}

	return features, nil
}

func appendParts(features []*Feature, ftype FeatureType, parts []int32, points []shp.Point) []*Feature {
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || end > int32(len(points)) || end-start < 2 {
			continue
		}

		line := make([]LatLon, 0, end-start)
		for _, pt := range points[start:end] {
			line = append(line, LatLon{Lat: pt.Y, Lon: pt.X})
		}
		features = append(features, NewLineFeature(ftype, line))
	}
	return features
}

// FilterByBounds keeps features with at least one point inside the bounds
func FilterByBounds(features []*Feature, bounds Bounds) []*Feature {
	filtered := make([]*Feature, 0)

	for _, feature := range features {
		for _, point := range feature.Points {
			if bounds.Contains(point.Lat, point.Lon) {
				filtered = append(filtered, feature)
				break
			}
		}
	}

	return filtered
}
