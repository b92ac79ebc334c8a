package ui

import (
	"time"

	"netglobe/internal/debug"
	"netglobe/internal/viz"

	"github.com/gdamore/tcell/v2"
)

// MapView shows the visualizer's surface in the top-left corner of the
// screen. Screen cells and surface cells share coordinates.
type MapView struct {
	viz    *viz.Visualizer
	width  int
	height int
}

// NewMapView creates a new map view
func NewMapView(v *viz.Visualizer, width, height int) *MapView {
	m := &MapView{viz: v}
	m.UpdateDimensions(width, height)
	return m
}

// Draw renders one frame of the visualizer to the screen
func (m *MapView) Draw(screen tcell.Screen, now time.Time) viz.FrameStats {
	stats := m.viz.Frame(now)
	m.viz.Canvas().Blit(screen, 0, 0)
	return stats
}

// UpdateDimensions resizes the drawing surface
func (m *MapView) UpdateDimensions(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viz.Resize(m.width, m.height)
	debug.Log("Map surface resized to %dx%d", m.width, m.height)
}

// Contains reports whether a screen cell is on the map surface
func (m *MapView) Contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
