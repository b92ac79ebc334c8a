package viz

import "time"

// FrameStats describes one rendered frame
type FrameStats struct {
	Mode        ModeKind
	Markers     int // markers drawn
	Culled      int // markers skipped on the back of the globe
	PulseRadius float64
	Duration    time.Duration
}

// Pointer event kinds passed to Recorder.PointerEvent
const (
	PointerDownEvent  = "down"
	PointerMoveEvent  = "move"
	PointerUpEvent    = "up"
	PointerLeaveEvent = "leave"
	PointerClickEvent = "click"
)

// Recorder observes the visualizer. Calls are made from the goroutine that
// drives the visualizer and must not block.
type Recorder interface {
	FrameRendered(stats FrameStats)
	PointerEvent(kind string)
	Selection(hit bool)
	ModeSwitched(to ModeKind)
}

type nopRecorder struct{}

func (nopRecorder) FrameRendered(FrameStats) {}
func (nopRecorder) PointerEvent(string) {}
func (nopRecorder) Selection(bool) {}
func (nopRecorder) ModeSwitched(ModeKind) {}
