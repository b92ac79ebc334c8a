package render

import (
	"math"
	"time"
)

// Pulse describes the ring animated around every marker. The radius is a
// function of wall-clock time only, so its speed does not depend on how
// often frames are drawn.
type Pulse struct {
	Base      float64       // ring radius in cells at zero phase
	Amplitude float64       // swing around Base in cells
	Period    time.Duration // divisor of the wall-clock milliseconds fed to sin
}

// DefaultPulse returns the pulse used by the visualizer
func DefaultPulse() Pulse {
	return Pulse{
		Base:      1.5,
		Amplitude: 0.75,
		Period:    200 * time.Millisecond,
	}
}

// Radius returns base + amplitude * sin(ms / period) at the given instant
func (p Pulse) Radius(now time.Time) float64 {
	period := float64(p.Period.Milliseconds())
	if period <= 0 {
		return p.Base
	}
	ms := float64(now.UnixMilli())
	return p.Base + p.Amplitude*math.Sin(ms/period)
}

// Phase maps a radius onto [0, 1], 0 being the smallest ring
func (p Pulse) Phase(radius float64) float64 {
	if p.Amplitude == 0 {
		return 0
	}
	return clamp01((radius - (p.Base - p.Amplitude)) / (2 * p.Amplitude))
}
