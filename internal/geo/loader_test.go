package geo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `name,country,region,lat,lng,category,revenue,growth
Phoenix HQ,United States,Arizona,33.4484,-112.0740,headquarters,$48.2M,+12%
Toronto,Canada,Ontario,43.6532,-79.3832,distributor,$6.1M,
Berlin,Germany,,52.52,13.405,store,$1.2M,+3%
`

func TestReadLocations(t *testing.T) {
	ds, err := ReadLocations("sample", strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadLocations: %v", err)
	}

	if ds.Name != "sample" {
		t.Errorf("Name = %q, want sample", ds.Name)
	}
	if ds.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ds.Len())
	}

	hq := ds.Locations[0]
	if hq.Name != "Phoenix HQ" || hq.Region != "Arizona" || hq.Category != CategoryHeadquarters {
		t.Errorf("unexpected first row: %+v", hq)
	}
	if hq.Lat != 33.4484 || hq.Lng != -112.0740 {
		t.Errorf("coordinates = %v, %v", hq.Lat, hq.Lng)
	}
	if hq.Stats["revenue"] != "$48.2M" || hq.Stats["growth"] != "+12%" {
		t.Errorf("stats = %v", hq.Stats)
	}

	toronto := ds.Locations[1]
	if _, ok := toronto.Stats["growth"]; ok {
		t.Errorf("empty stat columns should be dropped, got %v", toronto.Stats)
	}

	if ds.Locations[2].Category != CategoryRetail {
		t.Errorf("store should parse as retail, got %q", ds.Locations[2].Category)
	}

	if !ds.Bounds.Contains(hq.Lat, hq.Lng) {
		t.Errorf("bounds %+v should contain the first location", ds.Bounds)
	}
}

func TestReadLocationsMissingColumn(t *testing.T) {
	_, err := ReadLocations("bad", strings.NewReader("name,country,lat,category\nA,B,1,retail\n"))
	if err == nil || !strings.Contains(err.Error(), "lng") {
		t.Fatalf("err = %v, want missing lng column", err)
	}
}

func TestReadLocationsRowErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		line    int
		wantErr error
	}{
		{
			name: "bad latitude",
			body: "name,country,lat,lng,category\nA,X,north,1,retail\n",
			line: 2,
		},
		{
			name:    "out of range",
			body:    "name,country,lat,lng,category\nA,X,1,1,retail\nB,X,91,1,retail\n",
			line:    3,
			wantErr: ErrOutOfRange,
		},
		{
			name:    "nan",
			body:    "name,country,lat,lng,category\nA,X,NaN,1,retail\n",
			line:    2,
			wantErr: ErrOutOfRange,
		},
		{
			name:    "duplicate",
			body:    "name,country,lat,lng,category\nA,X,1,1,retail\nA,Y,2,2,retail\n",
			line:    3,
			wantErr: ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLocations("x", strings.NewReader(tt.body))
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("err = %v, want *RowError", err)
			}
			if rowErr.Line != tt.line {
				t.Errorf("Line = %d, want %d", rowErr.Line, tt.line)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLocationLoaderLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partners.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ds, err := NewLocationLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Name != "partners" {
		t.Errorf("Name = %q, want partners", ds.Name)
	}

	if _, err := NewLocationLoader(filepath.Join(t.TempDir(), "missing.csv")).Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
