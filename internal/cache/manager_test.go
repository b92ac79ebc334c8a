package cache

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip Create: %v", err)
		}
		if _, err := io.WriteString(w, body); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip Close: %v", err)
	}
	return buf.Bytes()
}

func newTestManager(t *testing.T, mirror string) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	m.SetMirror(mirror)
	m.SetOutput(io.Discard)
	return m
}

func TestEnsureDataDownloadsAndCaches(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		base := strings.TrimSuffix(filepath.Base(r.URL.Path), ".zip")
		w.Write(zipArchive(t, map[string]string{
			"nested/" + base + ".shp": "shp",
			base + ".dbf":             "dbf",
			".hidden":                 "skip",
		}))
	}))
	defer srv.Close()

	m := newTestManager(t, srv.URL+"/")
	if err := m.EnsureData(context.Background()); err != nil {
		t.Fatalf("EnsureData: %v", err)
	}

	for _, file := range NaturalEarthFiles {
		data, err := os.ReadFile(m.GetDataPath(file.Base))
		if err != nil {
			t.Fatalf("%s not extracted: %v", file.Name, err)
		}
		if string(data) != "shp" {
			t.Errorf("%s content = %q", file.Name, data)
		}
	}
	if _, err := os.Stat(filepath.Join(m.GetCacheDir(), ".hidden")); err == nil {
		t.Error("hidden archive entries should be skipped")
	}

	n := requests.Load()
	if err := m.EnsureData(context.Background()); err != nil {
		t.Fatalf("second EnsureData: %v", err)
	}
	if requests.Load() != n {
		t.Error("cached layers should not be downloaded again")
	}
}

func TestEnsureDataOptionalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "boundary") {
			http.NotFound(w, r)
			return
		}
		w.Write(zipArchive(t, map[string]string{"ne_50m_coastline.shp": "shp"}))
	}))
	defer srv.Close()

	m := newTestManager(t, srv.URL)
	var out bytes.Buffer
	m.SetOutput(&out)

	if err := m.EnsureData(context.Background()); err != nil {
		t.Fatalf("optional layer failure should not be fatal: %v", err)
	}
	if !strings.Contains(out.String(), "Skipping Country borders") {
		t.Errorf("expected a warning, got %q", out.String())
	}
}

func TestEnsureDataRequiredFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	m := newTestManager(t, srv.URL)
	err := m.EnsureData(context.Background())
	if err == nil || !strings.Contains(err.Error(), "Coastlines") {
		t.Fatalf("err = %v, want coastline failure", err)
	}
}

func TestEnsureDataCancelled(t *testing.T) {
	m := newTestManager(t, "http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.EnsureData(ctx); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
