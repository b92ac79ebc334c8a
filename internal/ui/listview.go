package ui

import (
	"fmt"

	"netglobe/internal/geo"
	"netglobe/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ListView displays a scrollable list of the active dataset's locations
type ListView struct {
	panel
	dataset       *geo.Dataset
	selectedIndex int
	scrollOffset  int
	maxVisible    int
}

// NewListView creates a new location list view
func NewListView(x, y, width, height int) *ListView {
	l := &ListView{selectedIndex: -1}
	l.UpdateDimensions(x, y, width, height)
	return l
}

// Update refreshes the list from a dataset and the current selection
func (l *ListView) Update(ds *geo.Dataset, selected *geo.Location) {
	if ds != l.dataset {
		l.dataset = ds
		l.scrollOffset = 0
	}
	l.selectedIndex = ds.Index(selected)
	l.adjustScroll()
}

// adjustScroll adjusts scroll offset to keep selected item visible
func (l *ListView) adjustScroll() {
	if l.selectedIndex < 0 {
		return
	}

	if l.selectedIndex >= l.scrollOffset+l.maxVisible {
		l.scrollOffset = l.selectedIndex - l.maxVisible + 1
	}

	if l.selectedIndex < l.scrollOffset {
		l.scrollOffset = l.selectedIndex
	}

	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// ItemAt returns the location listed on a screen cell, if any
func (l *ListView) ItemAt(x, y int) (*geo.Location, bool) {
	if !l.contains(x, y) || x == l.x || x == l.x+l.width-1 {
		return nil, false
	}

	row := y - l.y - 1
	if row < 0 || row >= l.maxVisible {
		return nil, false
	}

	i := l.scrollOffset + row
	if i >= l.dataset.Len() {
		return nil, false
	}
	return &l.dataset.Locations[i], true
}

// Contains reports whether a screen cell falls on the list
func (l *ListView) Contains(x, y int) bool {
	return l.contains(x, y)
}

// Draw renders the list view to the screen
func (l *ListView) Draw(screen tcell.Screen) {
	title := "Locations"
	if l.dataset != nil && l.dataset.Name != "" {
		title = fmt.Sprintf("%s (%d)", l.dataset.Name, l.dataset.Len())
	}
	l.drawFrame(screen, title)

	n := l.dataset.Len()
	visibleCount := min(l.maxVisible, n-l.scrollOffset)
	for i := 0; i < visibleCount; i++ {
		index := l.scrollOffset + i
		loc := &l.dataset.Locations[index]

		style := render.StyleListItem
		if index == l.selectedIndex {
			style = render.StyleListSelected
		}

		x := l.x + 1
		y := l.y + i + 1
		fillRow(screen, x, y, l.width-2, style)
		screen.SetContent(x, y, render.GlyphForCategory(loc.Category), nil, render.MarkerStyle(loc.Category, false))
		drawText(screen, x+2, y, l.width-4, loc.Name, style)
	}

	if n > l.maxVisible {
		screen.SetContent(l.x+l.width-2, l.y, '↕', nil, render.StyleLabel)
	}
}

// UpdateDimensions updates the view dimensions
func (l *ListView) UpdateDimensions(x, y, width, height int) {
	l.panel = panel{x: x, y: y, width: width, height: height}
	l.maxVisible = max(height-2, 1)
	l.adjustScroll()
}
