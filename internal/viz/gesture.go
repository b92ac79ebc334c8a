package viz

import (
	"math"

	"netglobe/internal/geo"
)

// GesturePhase is the pointer state
type GesturePhase int

const (
	Idle GesturePhase = iota
	Dragging
)

// String returns the phase name
func (p GesturePhase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Gesture tracks one press-move-release sequence. A release counts as a
// click only when the pointer travelled no further than the click slop
// since the press.
type Gesture struct {
	Phase  GesturePhase
	Start  geo.ScreenPoint
	Last   geo.ScreenPoint
	Travel float64
}

// Press starts a drag at p
func (g *Gesture) Press(p geo.ScreenPoint) {
	*g = Gesture{Phase: Dragging, Start: p, Last: p}
}

// Drag moves the pointer to p and returns the delta since the last
// position. ok is false when no drag is in progress.
func (g *Gesture) Drag(p geo.ScreenPoint) (delta geo.Offset, ok bool) {
	if g.Phase != Dragging {
		return geo.Offset{}, false
	}

	delta = geo.Offset{X: p.X - g.Last.X, Y: p.Y - g.Last.Y}
	g.Travel += math.Hypot(delta.X, delta.Y)
	g.Last = p
	return delta, true
}

// Release ends the drag and reports whether it was a click
func (g *Gesture) Release(slop float64) (click bool) {
	if g.Phase != Dragging {
		return false
	}
	click = g.Travel <= slop
	*g = Gesture{}
	return click
}

// Cancel ends any drag without producing a click
func (g *Gesture) Cancel() {
	*g = Gesture{}
}
