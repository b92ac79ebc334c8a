package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netglobe/internal/cache"
	"netglobe/internal/debug"
	"netglobe/internal/geo"
	"netglobe/internal/metrics"
	"netglobe/internal/ui"
	"netglobe/internal/viz"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	defaults := viz.DefaultOptions()

	// Parse command line flags
	help := flag.Bool("h", false, "Show help message")
	globalCSV := flag.String("global", "", "CSV file with the worldwide locations (default: built-in network)")
	regionalCSV := flag.String("regional", "", "CSV file with the regional locations (default: built-in network)")
	outlinePath := flag.String("outline", "", "Shapefile with outlines to draw on the regional map")
	fetch := flag.Bool("fetch", false, "Download Natural Earth coastlines and borders for the regional map")
	cacheDir := flag.String("cache", "", "Cache directory for map data (default: ~/.netglobe/data)")
	debugLog := flag.String("d", "", "Debug log file (e.g., debug.log)")
	aspectRatio := flag.Float64("a", defaults.Aspect, "Character aspect ratio - adjust for font width (1.0-4.0)")
	fps := flag.Int("fps", int(time.Second/defaults.FrameInterval), "Frames per second (1-60)")
	sensitivity := flag.Float64("sensitivity", defaults.Sensitivity, "Globe rotation in radians per cell dragged")
	spin := flag.Float64("spin", defaults.AutoRotateStep, "Auto-rotate step in radians every 50ms (0 disables)")
	threshold := flag.Float64("threshold", defaults.HitThreshold, "Click distance in cells that still selects a marker")
	clearOnMiss := flag.Bool("clear-on-miss", false, "Clear the selection when a click hits nothing")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g., :9090)")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("netglobe - Terminal network map with a rotating globe and a regional view")
		fmt.Println("\nUsage: netglobe [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		fmt.Println("\nKeys: drag to rotate/pan, click to select, tab switches view, n/p cycle, l list, esc clears, q quits")
		os.Exit(0)
	}

	// Validate aspect ratio
	if *aspectRatio < 1.0 || *aspectRatio > 4.0 {
		fmt.Fprintf(os.Stderr, "Error: Aspect ratio must be between 1.0 and 4.0\n")
		os.Exit(1)
	}

	if *fps < 1 || *fps > 60 {
		fmt.Fprintf(os.Stderr, "Error: Frame rate must be between 1 and 60\n")
		os.Exit(1)
	}

	if *threshold <= 0 || *sensitivity <= 0 || *spin < 0 {
		fmt.Fprintf(os.Stderr, "Error: -threshold and -sensitivity must be positive, -spin must not be negative\n")
		os.Exit(1)
	}

	// Set up debug logging if requested
	if *debugLog != "" {
		logFile, err := os.Create(*debugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create debug log: %v\n", err)
		} else {
			defer logFile.Close()
			debug.SetOutput(logFile)
			debug.Log("netglobe debug log started")
			fmt.Printf("Debug logging enabled: %s\n", *debugLog)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	global, err := loadDataset(*globalCSV, geo.DefaultGlobal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load global locations: %v\n", err)
		os.Exit(1)
	}
	regional, err := loadDataset(*regionalCSV, geo.DefaultRegional)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load regional locations: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d global and %d regional locations\n", global.Len(), regional.Len())

	opts := defaults
	opts.Aspect = *aspectRatio
	opts.FrameInterval = time.Second / time.Duration(*fps)
	opts.Sensitivity = *sensitivity
	opts.AutoRotateStep = *spin
	opts.HitThreshold = *threshold
	opts.ClearOnMiss = *clearOnMiss
	opts.Outlines = loadOutlines(ctx, *outlinePath, *cacheDir, *fetch)

	// Metrics endpoint
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to register metrics: %v\n", err)
			os.Exit(1)
		}
		opts.Recorder = collector

		srv := serveMetrics(*metricsAddr, collector)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		fmt.Printf("Serving metrics on %s/metrics\n", *metricsAddr)
	}

	// Create and run application
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting netglobe (aspect: %.1f, %d fps)...\n", *aspectRatio, *fps)
	app, err := ui.NewApp(screen, viz.New(global, regional, opts))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create application: %v\n", err)
		os.Exit(1)
	}

	// Run with panic recovery to ensure terminal is always restored
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\nPanic: %v\n", r)
			}
		}()

		if err := app.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("\nGoodbye!")
}

// loadDataset reads a CSV dataset, or returns the built-in one when no path
// is given
func loadDataset(path string, fallback func() *geo.Dataset) (*geo.Dataset, error) {
	if path == "" {
		return fallback(), nil
	}
	return geo.NewLocationLoader(path).Load()
}

// loadOutlines gathers the regional map polylines. Every source is
// optional; failures are reported and skipped.
func loadOutlines(ctx context.Context, outlinePath, cacheDir string, fetch bool) []*geo.Feature {
	var outlines []*geo.Feature

	if outlinePath != "" {
		features, err := geo.LoadShapefile(outlinePath, geo.FeatureOutline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load outline %s: %v\n", outlinePath, err)
		} else {
			outlines = append(outlines, features...)
		}
	}

	if !fetch && cacheDir == "" {
		return outlines
	}

	fmt.Println("Initializing map data cache...")
	cacheManager, err := cache.NewManager(cacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize cache: %v\n", err)
		return outlines
	}

	if fetch {
		fmt.Println("Checking Natural Earth data...")
		if err := cacheManager.EnsureData(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to download map data: %v\n", err)
		}
	}

	features, err := geo.NewShapefileLoader(cacheManager.GetCacheDir()).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load shapefiles: %v\n", err)
		return outlines
	}
	fmt.Printf("Loaded %d outline features\n", len(outlines)+len(features))
	return append(outlines, features...)
}

// serveMetrics starts the Prometheus endpoint in the background
func serveMetrics(addr string, collector *metrics.Collector) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			debug.Event("metrics server stopped", "addr", addr, "err", err)
		}
	}()
	return srv
}
