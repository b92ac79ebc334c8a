package geo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// RowError reports a rejected CSV row
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

var (
	ErrDuplicateName = errors.New("duplicate location name")
	ErrOutOfRange    = errors.New("coordinate out of range")
)

var requiredColumns = []string{"name", "country", "lat", "lng", "category"}

// LocationLoader loads a dataset from a CSV file.
//
// The header must contain name, country, lat, lng and category. An optional
// region column is recognized; every other column is copied into Stats.
type LocationLoader struct {
	csvPath string
}

// NewLocationLoader creates a new location loader
func NewLocationLoader(csvPath string) *LocationLoader {
	return &LocationLoader{
		csvPath: csvPath,
	}
}

// Load opens the CSV file and parses it into a dataset named after the file
func (l *LocationLoader) Load() (*Dataset, error) {
	file, err := os.Open(l.csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open locations CSV: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(l.csvPath), filepath.Ext(l.csvPath))
	return ReadLocations(name, file)
}

// ReadLocations parses CSV location rows. Unlike the loose parsing used for
// optional map data, a bad row fails the whole load: a dataset silently
// missing a site is worse than no dataset.
func ReadLocations(name string, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndices := make(map[string]int)
	for i, col := range header {
		colIndices[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range requiredColumns {
		if _, ok := colIndices[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	regionIdx, hasRegion := colIndices["region"]

	var locations []Location
	seen := make(map[string]bool)
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[colIndices["lat"]]), 64)
		if err != nil {
			return nil, &RowError{Line: line, Err: fmt.Errorf("lat: %w", err)}
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(record[colIndices["lng"]]), 64)
		if err != nil {
			return nil, &RowError{Line: line, Err: fmt.Errorf("lng: %w", err)}
		}
		if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return nil, &RowError{Line: line, Err: fmt.Errorf("%w: %v, %v", ErrOutOfRange, lat, lng)}
		}

		locName := strings.TrimSpace(record[colIndices["name"]])
		if locName == "" {
			return nil, &RowError{Line: line, Err: errors.New("empty name")}
		}
		if seen[locName] {
			return nil, &RowError{Line: line, Err: fmt.Errorf("%w: %s", ErrDuplicateName, locName)}
		}
		seen[locName] = true

		loc := Location{
			Name:     locName,
			Country:  strings.TrimSpace(record[colIndices["country"]]),
			Lat:      lat,
			Lng:      lng,
			Category: ParseCategory(record[colIndices["category"]]),
			Stats:    make(map[string]string),
		}
		if hasRegion {
			loc.Region = strings.TrimSpace(record[regionIdx])
		}

		for i, col := range header {
			key := strings.ToLower(strings.TrimSpace(col))
			if key == "region" || isRequired(key) {
				continue
			}
			if v := strings.TrimSpace(record[i]); v != "" {
				loc.Stats[strings.TrimSpace(col)] = v
			}
		}

		locations = append(locations, loc)
	}

	return NewDataset(name, locations), nil
}

func isRequired(col string) bool {
	for _, c := range requiredColumns {
		if c == col {
			return true
		}
	}
	return false
}
