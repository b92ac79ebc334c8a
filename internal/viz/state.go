package viz

import "netglobe/internal/geo"

// ModeKind names a projection mode
type ModeKind int

const (
	ModeGlobal ModeKind = iota
	ModeRegional
)

// String returns the mode name
func (k ModeKind) String() string {
	switch k {
	case ModeGlobal:
		return "global"
	case ModeRegional:
		return "regional"
	default:
		return "unknown"
	}
}

// Mode is the active projection together with the only view parameter it
// understands. *Global and *Regional are the sole implementations, so a pan
// offset cannot exist while the globe is active and vice versa.
type Mode interface {
	Kind() ModeKind
	isMode()
}

// Global is the orthographic globe. Rotation is in radians, unbounded.
type Global struct {
	Rotation float64
}

// Regional is the planar map. Pan is in surface cells.
type Regional struct {
	Pan geo.Offset
}

func (*Global) Kind() ModeKind { return ModeGlobal }
func (*Regional) Kind() ModeKind { return ModeRegional }
func (*Global) isMode() {}
func (*Regional) isMode() {}

// newMode returns a mode of the given kind with zeroed view parameters
func newMode(kind ModeKind) Mode {
	if kind == ModeRegional {
		return &Regional{}
	}
	return &Global{}
}

// ViewState is every mutable parameter that shapes a frame and a hit test
type ViewState struct {
	Mode     Mode
	Gesture  Gesture
	Selected *geo.Location
}

// newViewState returns a fresh state for kind: no rotation, no pan, idle,
// nothing selected
func newViewState(kind ModeKind) ViewState {
	return ViewState{Mode: newMode(kind)}
}
