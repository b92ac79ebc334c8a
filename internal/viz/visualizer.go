package viz

import (
	"time"

	"netglobe/internal/debug"
	"netglobe/internal/geo"
	"netglobe/internal/render"
)

// Options tunes the visualizer
type Options struct {
	Sensitivity        float64       // radians of rotation per cell dragged
	AutoRotateStep     float64       // radians added per auto-rotate tick
	AutoRotateInterval time.Duration // auto-rotate cadence
	FrameInterval      time.Duration // frame cadence
	HitThreshold       float64       // max distance in cells for a click to select
	ClickSlop          float64       // max travel in cells for a release to count as a click
	ClearOnMiss        bool          // a click that hits nothing clears the selection
	Aspect             float64       // character cell height / width
	Pulse              render.Pulse
	Outlines           []*geo.Feature // regional map polylines
	Recorder           Recorder
}

// DefaultOptions returns the settings used when no flags are given
func DefaultOptions() Options {
	return Options{
		Sensitivity:        0.02,
		AutoRotateStep:     0.01,
		AutoRotateInterval: 50 * time.Millisecond,
		FrameInterval:      100 * time.Millisecond,
		HitThreshold:       2,
		ClickSlop:          1,
		Aspect:             2.0,
		Pulse:              render.DefaultPulse(),
	}
}

// Visualizer draws one of two location datasets and reacts to pointer
// input. It is not safe for concurrent use; a single loop should own it and
// select on Frames and AutoRotateC.
type Visualizer struct {
	opts     Options
	datasets [2]*geo.Dataset
	state    ViewState
	size     geo.Size
	canvas   *render.Canvas
	frames   *Scheduler
	spin     *Scheduler
	started  bool
}

// New creates a stopped visualizer in global mode. A nil dataset is treated
// as empty.
func New(global, regional *geo.Dataset, opts Options) *Visualizer {
	if global == nil {
		global = geo.NewDataset("global", nil)
	}
	if regional == nil {
		regional = geo.NewDataset("regional", nil)
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Aspect <= 0 {
		opts.Aspect = 1
	}

	return &Visualizer{
		opts:     opts,
		datasets: [2]*geo.Dataset{ModeGlobal: global, ModeRegional: regional},
		state:    newViewState(ModeGlobal),
		canvas:   render.NewCanvas(0, 0),
		frames:   NewScheduler("frames", opts.FrameInterval),
		spin:     NewScheduler("auto-rotate", opts.AutoRotateInterval),
	}
}

// Start begins frame ticks and, in global mode, auto-rotation
func (v *Visualizer) Start() {
	v.started = true
	v.frames.Start()
	v.syncAutoRotate()
}

// Close stops both schedulers. The visualizer may be started again.
func (v *Visualizer) Close() {
	v.started = false
	v.frames.Stop()
	v.spin.Stop()
}

// Frames returns the frame tick channel, nil when stopped
func (v *Visualizer) Frames() <-chan time.Time {
	return v.frames.C()
}

// AutoRotateC returns the auto-rotate tick channel, nil when auto-rotation
// is suspended
func (v *Visualizer) AutoRotateC() <-chan time.Time {
	return v.spin.C()
}

// Running reports whether the frame and auto-rotate schedulers are ticking
func (v *Visualizer) Running() (frames, autoRotate bool) {
	return v.frames.Running(), v.spin.Running()
}

// syncAutoRotate runs the auto-rotate scheduler only in global mode while
// no drag is in progress
func (v *Visualizer) syncAutoRotate() {
	_, global := v.state.Mode.(*Global)
	if v.started && global && v.state.Gesture.Phase == Idle {
		v.spin.Start()
	} else {
		v.spin.Stop()
	}
}

// Resize sets the surface size in cells and reallocates the canvas
func (v *Visualizer) Resize(width, height int) {
	v.canvas = render.NewCanvas(width, height)
	v.size = geo.Size{W: float64(v.canvas.Width()), H: float64(v.canvas.Height())}
}

// Canvas returns the surface the last frame was drawn on
func (v *Visualizer) Canvas() *render.Canvas {
	return v.canvas
}

// Size returns the surface size in cells
func (v *Visualizer) Size() geo.Size {
	return v.size
}

// Mode returns the active projection mode
func (v *Visualizer) Mode() ModeKind {
	return v.state.Mode.Kind()
}

// Rotation returns the globe rotation in radians, zero in regional mode
func (v *Visualizer) Rotation() float64 {
	if g, ok := v.state.Mode.(*Global); ok {
		return g.Rotation
	}
	return 0
}

// Pan returns the regional pan offset, zero in global mode
func (v *Visualizer) Pan() geo.Offset {
	if r, ok := v.state.Mode.(*Regional); ok {
		return r.Pan
	}
	return geo.Offset{}
}

// Gesture returns the pointer state
func (v *Visualizer) Gesture() Gesture {
	return v.state.Gesture
}

// Dataset returns the dataset of the active mode
func (v *Visualizer) Dataset() *geo.Dataset {
	return v.datasets[v.state.Mode.Kind()]
}

// Globe returns the globe placement for the current surface
func (v *Visualizer) Globe() geo.GlobeSurface {
	return geo.FitGlobe(v.size, v.opts.Aspect)
}

// Locate projects a location with the current view state. ok is false when
// the location is on the back of the globe. Frames and hit tests both go
// through here.
func (v *Visualizer) Locate(loc *geo.Location) (geo.ScreenPoint, bool) {
	switch m := v.state.Mode.(type) {
	case *Global:
		p, gp := v.Globe().Project(loc.Lat, loc.Lng, m.Rotation)
		return p, gp.Visible()
	case *Regional:
		return geo.ProjectRegional(loc.Lat, loc.Lng, v.Dataset().Bounds, v.size, m.Pan), true
	}
	return geo.ScreenPoint{}, false
}

// Markers returns every drawable marker of the active dataset in dataset
// order
func (v *Visualizer) Markers() []render.Marker {
	ds := v.Dataset()
	markers := make([]render.Marker, 0, ds.Len())
	for i := range ds.Locations {
		loc := &ds.Locations[i]
		pos, ok := v.Locate(loc)
		if !ok {
			continue
		}
		markers = append(markers, render.Marker{
			Location: loc,
			Pos:      pos,
			Selected: loc == v.state.Selected,
		})
	}
	return markers
}

// Frame clears the canvas and draws the base shape and every visible marker
// with its pulse ring at the given instant
func (v *Visualizer) Frame(now time.Time) FrameStats {
	start := time.Now()
	stats := FrameStats{Mode: v.Mode()}

	v.canvas.Clear()
	if v.canvas.Width() == 0 || v.canvas.Height() == 0 {
		return stats
	}

	switch m := v.state.Mode.(type) {
	case *Global:
		render.DrawGlobe(v.canvas, v.Globe(), m.Rotation)
	case *Regional:
		render.DrawRegion(v.canvas, render.RegionView{
			Size:     v.size,
			Bounds:   v.Dataset().Bounds,
			Pan:      m.Pan,
			Outlines: v.opts.Outlines,
		})
	}

	markers := v.Markers()
	stats.PulseRadius = v.opts.Pulse.Radius(now)
	render.DrawMarkers(v.canvas, markers, v.opts.Pulse, stats.PulseRadius, v.opts.Aspect)

	stats.Markers = len(markers)
	stats.Culled = v.Dataset().Len() - len(markers)
	stats.Duration = time.Since(start)
	v.opts.Recorder.FrameRendered(stats)
	return stats
}

// AutoRotate advances the globe by one auto-rotate step. It does nothing in
// regional mode or while dragging.
func (v *Visualizer) AutoRotate() bool {
	g, ok := v.state.Mode.(*Global)
	if !ok || v.state.Gesture.Phase != Idle {
		return false
	}
	g.Rotation += v.opts.AutoRotateStep
	return true
}

// Rotate turns the globe by delta radians; ignored in regional mode
func (v *Visualizer) Rotate(delta float64) bool {
	g, ok := v.state.Mode.(*Global)
	if !ok {
		return false
	}
	g.Rotation += delta
	return true
}

// PanBy shifts the regional map; ignored in global mode
func (v *Visualizer) PanBy(dx, dy float64) bool {
	r, ok := v.state.Mode.(*Regional)
	if !ok {
		return false
	}
	r.Pan = r.Pan.Add(dx, dy)
	return true
}

// SwitchMode activates the given mode with fresh view state: no rotation,
// no pan, no selection and no drag in progress. Both schedulers are stopped
// first so no tick from the old mode is delivered afterwards. Switching to
// the active mode is a no-op.
func (v *Visualizer) SwitchMode(kind ModeKind) bool {
	if kind == v.Mode() || (kind != ModeGlobal && kind != ModeRegional) {
		return false
	}

	running := v.frames.Running()
	v.frames.Stop()
	v.spin.Stop()

	v.state = newViewState(kind)

	if running {
		v.frames.Start()
	}
	v.syncAutoRotate()

	debug.Event("mode switched", "mode", kind.String(), "locations", v.Dataset().Len())
	v.opts.Recorder.ModeSwitched(kind)
	return true
}

// ToggleMode switches between global and regional mode
func (v *Visualizer) ToggleMode() ModeKind {
	if v.Mode() == ModeGlobal {
		v.SwitchMode(ModeRegional)
	} else {
		v.SwitchMode(ModeGlobal)
	}
	return v.Mode()
}

// PointerDown starts a drag at p and suspends auto-rotation
func (v *Visualizer) PointerDown(p geo.ScreenPoint) {
	v.state.Gesture.Press(p)
	v.syncAutoRotate()
	v.opts.Recorder.PointerEvent(PointerDownEvent)
}

// PointerMove turns the globe or pans the map by the movement since the
// last pointer position. Moves without a drag in progress are ignored.
func (v *Visualizer) PointerMove(p geo.ScreenPoint) {
	delta, ok := v.state.Gesture.Drag(p)
	if !ok {
		return
	}

	switch m := v.state.Mode.(type) {
	case *Global:
		m.Rotation += delta.X * v.opts.Sensitivity
	case *Regional:
		m.Pan = m.Pan.Add(delta.X, delta.Y)
	}
	v.opts.Recorder.PointerEvent(PointerMoveEvent)
}

// PointerUp ends a drag. A release that barely moved is a click and runs a
// hit test at p; the selected location is returned on a hit.
func (v *Visualizer) PointerUp(p geo.ScreenPoint) (*geo.Location, bool) {
	if v.state.Gesture.Phase != Dragging {
		return nil, false
	}

	click := v.state.Gesture.Release(v.opts.ClickSlop)
	v.syncAutoRotate()
	v.opts.Recorder.PointerEvent(PointerUpEvent)

	if !click {
		return nil, false
	}
	return v.Click(p)
}

// PointerLeave abandons any drag in progress without selecting
func (v *Visualizer) PointerLeave() {
	if v.state.Gesture.Phase != Dragging {
		return
	}
	v.state.Gesture.Cancel()
	v.syncAutoRotate()
	v.opts.Recorder.PointerEvent(PointerLeaveEvent)
}

// Click selects the visible location nearest to p within the hit threshold.
// On a miss the selection is kept unless ClearOnMiss is set.
func (v *Visualizer) Click(p geo.ScreenPoint) (*geo.Location, bool) {
	v.opts.Recorder.PointerEvent(PointerClickEvent)

	loc, hit := HitTest(v.Dataset(), v.Locate, p, v.opts.HitThreshold)
	v.opts.Recorder.Selection(hit)

	if !hit {
		if v.opts.ClearOnMiss {
			v.state.Selected = nil
		}
		debug.Event("click missed", "x", p.X, "y", p.Y, "cleared", v.opts.ClearOnMiss)
		return nil, false
	}

	v.state.Selected = loc
	debug.Event("location selected", "name", loc.Name, "x", p.X, "y", p.Y)
	return loc, true
}

// Selected returns the selected location, or nil
func (v *Visualizer) Selected() *geo.Location {
	return v.state.Selected
}

// Select makes loc the selection. Locations outside the active dataset are
// refused.
func (v *Visualizer) Select(loc *geo.Location) bool {
	if !v.Dataset().Contains(loc) {
		return false
	}
	v.state.Selected = loc
	return true
}

// ClearSelection drops the selection
func (v *Visualizer) ClearSelection() {
	v.state.Selected = nil
}

// SelectNext moves the selection forward in dataset order, wrapping around
func (v *Visualizer) SelectNext() *geo.Location {
	return v.step(1)
}

// SelectPrev moves the selection backward in dataset order, wrapping around
func (v *Visualizer) SelectPrev() *geo.Location {
	return v.step(-1)
}

func (v *Visualizer) step(dir int) *geo.Location {
	ds := v.Dataset()
	n := ds.Len()
	if n == 0 {
		return nil
	}

	i := ds.Index(v.state.Selected)
	switch {
	case i < 0 && dir > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = ((i+dir)%n + n) % n
	}

	v.state.Selected = &ds.Locations[i]
	return v.state.Selected
}
