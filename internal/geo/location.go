package geo

import (
	"fmt"
	"sort"
	"strings"
)

// Category tags a location's role in the network
type Category string

const (
	CategoryHeadquarters Category = "headquarters"
	CategoryDistributor  Category = "distributor"
	CategoryRetail       Category = "retail"
)

// ParseCategory normalizes a category tag. Unknown tags are kept as-is so
// datasets can carry their own categories.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "headquarters", "hq":
		return CategoryHeadquarters
	case "distributor", "distribution":
		return CategoryDistributor
	case "retail", "store":
		return CategoryRetail
	default:
		return Category(strings.ToLower(strings.TrimSpace(s)))
	}
}

// Priority orders categories for drawing; higher values are drawn on top
func (c Category) Priority() int {
	switch c {
	case CategoryHeadquarters:
		return 3
	case CategoryDistributor:
		return 2
	case CategoryRetail:
		return 1
	default:
		return 0
	}
}

// String returns the category tag
func (c Category) String() string {
	if c == "" {
		return "unknown"
	}
	return string(c)
}

// Location is a named point of the network. It is never modified after load.
type Location struct {
	Name     string
	Country  string
	Region   string
	Lat      float64
	Lng      float64
	Category Category
	Stats    map[string]string // passed through to the detail card untouched
}

// PositionString returns a formatted lat/lng string
func (l *Location) PositionString() string {
	lat, lng := l.Lat, l.Lng

	latDir := "N"
	if lat < 0 {
		latDir = "S"
		lat = -lat
	}

	lngDir := "E"
	if lng < 0 {
		lngDir = "W"
		lng = -lng
	}

	return fmt.Sprintf("%.4f*%s, %.4f*%s", lat, latDir, lng, lngDir)
}

// Place returns "Region, Country" or just the country when no region is set
func (l *Location) Place() string {
	if l.Region == "" {
		return l.Country
	}
	return l.Region + ", " + l.Country
}

// StatKeys returns the stats keys in sorted order
func (l *Location) StatKeys() []string {
	keys := make([]string, 0, len(l.Stats))
	for k := range l.Stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dataset is an ordered set of locations plus the fixed geographic box the
// regional projection maps onto. Order matters: hit-test ties go to the
// earlier location.
type Dataset struct {
	Name      string
	Locations []Location
	Bounds    Bounds
}

// NewDataset builds a dataset whose bounds enclose all locations with a
// small padding.
func NewDataset(name string, locations []Location) *Dataset {
	return &Dataset{
		Name:      name,
		Locations: locations,
		Bounds:    BoundsOf(locations).Pad(0.05),
	}
}

// Len returns the number of locations
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Locations)
}

// Contains reports whether loc points into this dataset
func (d *Dataset) Contains(loc *Location) bool {
	if d == nil || loc == nil {
		return false
	}
	for i := range d.Locations {
		if &d.Locations[i] == loc {
			return true
		}
	}
	return false
}

// Index returns the position of loc in the dataset, or -1
func (d *Dataset) Index(loc *Location) int {
	if d == nil || loc == nil {
		return -1
	}
	for i := range d.Locations {
		if &d.Locations[i] == loc {
			return i
		}
	}
	return -1
}

// Find returns the location with the given name
func (d *Dataset) Find(name string) (*Location, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Locations {
		if d.Locations[i].Name == name {
			return &d.Locations[i], true
		}
	}
	return nil, false
}
