package metrics

import (
	"fmt"
	"net/http"

	"netglobe/internal/viz"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the visualizer's Prometheus metrics. It implements
// viz.Recorder so the visualizer can drive it directly.
type Collector struct {
	gatherer prometheus.Gatherer

	Frames         *prometheus.CounterVec
	FrameDurations prometheus.Histogram
	VisibleMarkers prometheus.Gauge
	CulledMarkers  prometheus.Gauge
	PointerEvents  *prometheus.CounterVec
	Selections     *prometheus.CounterVec
	ModeSwitches   *prometheus.CounterVec
	ActiveMode     *prometheus.GaugeVec
}

var _ viz.Recorder = (*Collector)(nil)

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frames, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netglobe_frames_total",
		Help: "Rendered frames, labeled by projection mode.",
	}, []string{"mode"}), "netglobe_frames_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "netglobe_frame_duration_seconds",
		Help:    "Time spent drawing one frame.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	}), "netglobe_frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	visible, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netglobe_visible_markers",
		Help: "Markers drawn in the last frame.",
	}), "netglobe_visible_markers")
	if err != nil {
		return nil, err
	}

	culled, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netglobe_culled_markers",
		Help: "Markers skipped on the back of the globe in the last frame.",
	}), "netglobe_culled_markers")
	if err != nil {
		return nil, err
	}

	pointers, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netglobe_pointer_events_total",
		Help: "Pointer events handled, labeled by kind.",
	}, []string{"kind"}), "netglobe_pointer_events_total")
	if err != nil {
		return nil, err
	}

	selections, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netglobe_selections_total",
		Help: "Hit tests run for clicks, labeled by result.",
	}, []string{"result"}), "netglobe_selections_total")
	if err != nil {
		return nil, err
	}

	switches, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netglobe_mode_switches_total",
		Help: "Mode switches, labeled by the mode switched to.",
	}, []string{"mode"}), "netglobe_mode_switches_total")
	if err != nil {
		return nil, err
	}

	active, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "netglobe_active_mode",
		Help: "1 for the active projection mode, 0 otherwise.",
	}, []string{"mode"}), "netglobe_active_mode")
	if err != nil {
		return nil, err
	}

	c := &Collector{
		gatherer:       gatherer,
		Frames:         frames,
		FrameDurations: durations,
		VisibleMarkers: visible,
		CulledMarkers:  culled,
		PointerEvents:  pointers,
		Selections:     selections,
		ModeSwitches:   switches,
		ActiveMode:     active,
	}
	c.setActive(viz.ModeGlobal)
	return c, nil
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// FrameRendered records one frame
func (c *Collector) FrameRendered(stats viz.FrameStats) {
	if c == nil {
		return
	}
	c.Frames.WithLabelValues(stats.Mode.String()).Inc()
	c.FrameDurations.Observe(stats.Duration.Seconds())
	c.VisibleMarkers.Set(float64(stats.Markers))
	c.CulledMarkers.Set(float64(stats.Culled))
}

// PointerEvent counts a pointer event
func (c *Collector) PointerEvent(kind string) {
	if c == nil {
		return
	}
	c.PointerEvents.WithLabelValues(kind).Inc()
}

// Selection counts a hit test result
func (c *Collector) Selection(hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.Selections.WithLabelValues(result).Inc()
}

// ModeSwitched counts a mode switch and updates the active mode gauge
func (c *Collector) ModeSwitched(to viz.ModeKind) {
	if c == nil {
		return
	}
	c.ModeSwitches.WithLabelValues(to.String()).Inc()
	c.setActive(to)
}

func (c *Collector) setActive(mode viz.ModeKind) {
	for _, m := range []viz.ModeKind{viz.ModeGlobal, viz.ModeRegional} {
		v := 0.0
		if m == mode {
			v = 1
		}
		c.ActiveMode.WithLabelValues(m.String()).Set(v)
	}
}

// register adds collector to reg. A collector already registered under the
// same descriptor is reused when its type matches.
func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
