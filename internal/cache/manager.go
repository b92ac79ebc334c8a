package cache

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"netglobe/internal/debug"
)

// DefaultMirror is where the Natural Earth archives are downloaded from
const DefaultMirror = "https://naciscdn.org/naturalearth"

// Manager handles downloading and caching the Natural Earth outline layers
// drawn behind the regional map
type Manager struct {
	cacheDir string
	mirror   string
	client   *http.Client
	out      io.Writer
}

// DataFile represents a Natural Earth dataset to download
type DataFile struct {
	Name     string // Friendly name
	Path     string // Path below the mirror
	Base     string // Base filename (without extension)
	Optional bool   // If true, failure to download won't stop the app
}

// NaturalEarthFiles are the 1:50m layers the shapefile loader looks for
var NaturalEarthFiles = []DataFile{
	{
		Name:     "Coastlines",
		Path:     "50m/physical/ne_50m_coastline.zip",
		Base:     "ne_50m_coastline",
		Optional: false,
	},
	{
		Name:     "Country borders",
		Path:     "50m/cultural/ne_50m_admin_0_boundary_lines_land.zip",
		Base:     "ne_50m_admin_0_boundary_lines_land",
		Optional: true,
	},
}

// NewManager creates a new cache manager
// If cacheDir is empty, uses ~/.netglobe/data
func NewManager(cacheDir string) (*Manager, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".netglobe", "data")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Manager{
		cacheDir: cacheDir,
		mirror:   DefaultMirror,
		client:   &http.Client{Timeout: 2 * time.Minute},
		out:      os.Stdout,
	}, nil
}

// SetMirror changes the download base URL
func (m *Manager) SetMirror(url string) {
	m.mirror = strings.TrimSuffix(url, "/")
}

// SetOutput sets where progress messages are printed
func (m *Manager) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	m.out = w
}

// EnsureData downloads any missing layer. Optional layers that fail are
// skipped with a warning.
func (m *Manager) EnsureData(ctx context.Context) error {
	for _, file := range NaturalEarthFiles {
		if err := m.ensureFile(ctx, file); err != nil {
			if file.Optional {
				fmt.Fprintf(m.out, "Warning: Skipping %s (optional): %v\n", file.Name, err)
				continue
			}
			return fmt.Errorf("failed to ensure %s: %w", file.Name, err)
		}
	}
	return nil
}

// ensureFile checks if a data file exists, downloads if needed
func (m *Manager) ensureFile(ctx context.Context, file DataFile) error {
	if _, err := os.Stat(m.GetDataPath(file.Base)); err == nil {
		return nil
	}

	url := m.mirror + "/" + file.Path
	fmt.Fprintf(m.out, "Downloading %s...\n", file.Name)
	debug.Event("downloading layer", "name", file.Name, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; netglobe/1.0)")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %s (URL: %s)", resp.Status, url)
	}

	tmpFile, err := os.CreateTemp("", "ne_*.zip")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("failed to save download: %w", err)
	}
	tmpFile.Close()

	if err := m.extractZip(tmpFile.Name(), m.cacheDir); err != nil {
		return fmt.Errorf("failed to extract: %w", err)
	}

	fmt.Fprintf(m.out, "Downloaded and extracted %s\n", file.Name)
	return nil
}

// extractZip flattens the archive into destDir, skipping hidden entries
func (m *Manager) extractZip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || strings.HasPrefix(filepath.Base(f.Name), ".") {
			continue
		}
		if err := extractFile(f, filepath.Join(destDir, filepath.Base(f.Name))); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(f *zip.File, destPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(outFile, rc); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}

// GetDataPath returns the cached shapefile path for a layer
func (m *Manager) GetDataPath(base string) string {
	return filepath.Join(m.cacheDir, base+".shp")
}

// GetCacheDir returns the cache directory
func (m *Manager) GetCacheDir() string {
	return m.cacheDir
}
