package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"netglobe/internal/geo"
	"netglobe/internal/viz"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorRecordsVisualizerEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	opts := viz.DefaultOptions()
	opts.Recorder = collector
	v := viz.New(geo.DefaultGlobal(), geo.DefaultRegional(), opts)
	v.Resize(100, 40)

	hq, _ := v.Dataset().Find("Phoenix HQ")
	p, _ := v.Locate(hq)

	v.Frame(time.Now())
	v.PointerDown(p)
	v.PointerUp(p)
	v.Click(geo.ScreenPoint{X: 0, Y: 0})
	v.ToggleMode()
	v.Frame(time.Now())

	if got := testutil.ToFloat64(collector.Frames.WithLabelValues("global")); got != 1 {
		t.Errorf("global frames = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.Frames.WithLabelValues("regional")); got != 1 {
		t.Errorf("regional frames = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.VisibleMarkers); got != float64(v.Dataset().Len()) {
		t.Errorf("visible markers = %v, want %d", got, v.Dataset().Len())
	}
	if got := testutil.ToFloat64(collector.PointerEvents.WithLabelValues(viz.PointerClickEvent)); got != 2 {
		t.Errorf("clicks = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.Selections.WithLabelValues("hit")); got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.Selections.WithLabelValues("miss")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.ActiveMode.WithLabelValues("regional")); got != 1 {
		t.Errorf("active regional = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.ActiveMode.WithLabelValues("global")); got != 0 {
		t.Errorf("active global = %v, want 0", got)
	}
	if got := testutil.CollectAndCount(collector.FrameDurations); got != 1 {
		t.Errorf("frame duration series = %d, want 1", got)
	}
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	second, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second NewCollector: %v", err)
	}
	if first.Frames != second.Frames {
		t.Fatal("second collector should share the registered frame counter")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	collector.PointerEvent(viz.PointerDownEvent)
	collector.ModeSwitched(viz.ModeRegional)

	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`netglobe_pointer_events_total{kind="down"} 1`,
		`netglobe_mode_switches_total{mode="regional"} 1`,
		`netglobe_active_mode{mode="regional"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.FrameRendered(viz.FrameStats{})
	c.PointerEvent("down")
	c.Selection(true)
	c.ModeSwitched(viz.ModeGlobal)
}
