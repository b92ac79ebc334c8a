package viz

import (
	"math"

	"netglobe/internal/geo"
)

// Locator projects a location with the current view. ok is false when the
// location is not drawn (the back of the globe).
type Locator func(loc *geo.Location) (pos geo.ScreenPoint, ok bool)

// HitTest returns the drawn location nearest to at, if it lies within
// threshold. Ties go to the earlier location in the dataset.
func HitTest(ds *geo.Dataset, locate Locator, at geo.ScreenPoint, threshold float64) (*geo.Location, bool) {
	if ds == nil {
		return nil, false
	}

	var best *geo.Location
	bestDist := math.Inf(1)

	for i := range ds.Locations {
		loc := &ds.Locations[i]
		pos, ok := locate(loc)
		if !ok {
			continue
		}
		if d := pos.DistanceTo(at); d < bestDist {
			best = loc
			bestDist = d
		}
	}

	if best == nil || bestDist > threshold {
		return nil, false
	}
	return best, true
}
