package ui

import (
	"context"
	"fmt"
	"time"

	"netglobe/internal/debug"
	"netglobe/internal/geo"
	"netglobe/internal/render"
	"netglobe/internal/viz"

	"github.com/gdamore/tcell/v2"
)

const (
	listWidth   = 30
	listHeight  = 12
	detailWidth = 44

	keyRotateStep = 0.1 // radians per arrow key press
	keyPanStep    = 2.0 // cells per arrow key press
)

// App is the main application controller. It owns the screen and the
// visualizer; every visualizer call happens on the Run goroutine.
type App struct {
	screen     tcell.Screen
	viz        *viz.Visualizer
	mapView    *MapView
	listView   *ListView
	detailView *DetailView
	showList   bool
	pressed    bool
	stalePress bool
	lastFrame  viz.FrameStats
	quit       chan struct{}
}

// NewApp initializes the screen and lays out the views. The screen is
// finalized when Run returns.
func NewApp(screen tcell.Screen, v *viz.Visualizer) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.Clear()

	width, height := screen.Size()

	app := &App{
		screen:     screen,
		viz:        v,
		mapView:    NewMapView(v, width, height-1),
		listView:   NewListView(0, height-1-listHeight, listWidth, listHeight),
		detailView: NewDetailView(width, detailWidth),
		quit:       make(chan struct{}),
	}
	app.sync()

	return app, nil
}

// Run starts the application main loop and blocks until the user quits or
// ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	defer a.cleanup()

	events := make(chan tcell.Event, 16)
	go a.screen.ChannelEvents(events, a.quit)

	a.viz.Start()
	a.render(time.Now())

	for {
		// Both channels change when the visualizer restarts its
		// schedulers, so they are fetched on every pass.
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil // Quit requested
			}

		case now := <-a.viz.Frames():
			a.render(now)

		case <-a.viz.AutoRotateC():
			a.viz.AutoRotate()
		}
	}
}

// sync copies the visualizer's dataset and selection into the panels
func (a *App) sync() {
	a.listView.Update(a.viz.Dataset(), a.viz.Selected())
	if a.detailView.Location() != a.viz.Selected() {
		a.detailView.SetLocation(a.viz.Selected())
	}
}

// render draws the map, the panels and the status line
func (a *App) render(now time.Time) {
	a.screen.Clear()

	a.lastFrame = a.mapView.Draw(a.screen, now)

	if a.showList {
		a.listView.Draw(a.screen)
	}
	a.detailView.Draw(a.screen)
	a.drawStatus()

	a.screen.Show()
}

// drawStatus fills the bottom row with the mode and key help
func (a *App) drawStatus() {
	width, height := a.screen.Size()
	y := height - 1
	fillRow(a.screen, 0, y, width, render.StyleStatus)

	var view string
	switch a.viz.Mode() {
	case viz.ModeGlobal:
		view = fmt.Sprintf("rotation %.2f", a.viz.Rotation())
	case viz.ModeRegional:
		pan := a.viz.Pan()
		view = fmt.Sprintf("pan %+.0f,%+.0f", pan.X, pan.Y)
	}

	text := fmt.Sprintf(" %s | %s | %d/%d shown | drag:move click:select tab:mode n/p:cycle l:list esc:clear q:quit",
		a.viz.Dataset().Name, view, a.lastFrame.Markers, a.viz.Dataset().Len())
	drawText(a.screen, 0, y, width, text, render.StyleStatus)
}

// handleEvent processes keyboard, mouse and screen events. It returns false
// when the application should exit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventFocus:
		if !ev.Focused {
			a.abandonPress()
			a.viz.PointerLeave()
		}

	case *tcell.EventResize:
		a.handleResize()
	}

	a.sync()
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		close(a.quit)
		return false

	case tcell.KeyEscape:
		a.viz.ClearSelection()

	case tcell.KeyTab, tcell.KeyBacktab:
		mode := a.viz.ToggleMode()
		a.abandonPress()
		debug.Log("Switched to %s mode (%s)", mode, a.viz.Dataset().Name)

	case tcell.KeyLeft:
		a.nudge(-1, 0)

	case tcell.KeyRight:
		a.nudge(1, 0)

	case tcell.KeyUp:
		a.nudge(0, -1)

	case tcell.KeyDown:
		a.nudge(0, 1)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			close(a.quit)
			return false

		case 'n', 'N':
			a.viz.SelectNext()

		case 'p', 'P':
			a.viz.SelectPrev()

		case 'l', 'L':
			a.showList = !a.showList
		}
	}

	a.sync()
	return true
}

// nudge turns the globe horizontally or pans the regional map. The map
// follows the arrow, so panning right shows what lies to the west.
func (a *App) nudge(dx, dy float64) {
	switch a.viz.Mode() {
	case viz.ModeGlobal:
		a.viz.Rotate(dx * keyRotateStep)
	case viz.ModeRegional:
		a.viz.PanBy(dx*keyPanStep, dy*keyPanStep/2)
	}
}

// scroll maps the mouse wheel onto rotation or vertical pan
func (a *App) scroll(dir float64) {
	switch a.viz.Mode() {
	case viz.ModeGlobal:
		a.viz.Rotate(dir * keyRotateStep)
	case viz.ModeRegional:
		a.viz.PanBy(0, dir*keyPanStep/2)
	}
}

// handleMouse turns terminal mouse reports into pointer events. Button 1
// held is a drag, its release ends the drag, and any report outside the
// map surface or over a panel is a leave.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := geo.ScreenPoint{X: float64(x), Y: float64(y)}
	onMap := a.onMap(x, y)

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.scroll(-1)
		return

	case buttons&tcell.WheelDown != 0:
		a.scroll(1)
		return

	case buttons&tcell.Button1 != 0:
		if a.stalePress {
			return
		}
		if !a.pressed {
			a.pressed = true
			if loc, ok := a.listItemAt(x, y); ok {
				a.viz.Select(loc)
				return
			}
			if onMap {
				a.viz.PointerDown(p)
			}
			return
		}
		if onMap {
			a.viz.PointerMove(p)
		} else {
			a.viz.PointerLeave()
		}

	case buttons == tcell.ButtonNone:
		if a.stalePress {
			a.pressed = false
			a.stalePress = false
			return
		}
		if a.pressed {
			a.pressed = false
			if onMap {
				if loc, hit := a.viz.PointerUp(p); hit {
					debug.Log("Selected %s at %d,%d", loc.Name, x, y)
				}
				return
			}
		}
		if !onMap {
			a.viz.PointerLeave()
		}
	}
}

// abandonPress marks a held button as belonging to a drag the visualizer
// no longer tracks. Its reports are ignored until the button is released.
func (a *App) abandonPress() {
	if a.pressed {
		a.stalePress = true
	}
}

// onMap reports whether a cell is on the map and not covered by a panel
func (a *App) onMap(x, y int) bool {
	if !a.mapView.Contains(x, y) || a.detailView.Contains(x, y) {
		return false
	}
	return !(a.showList && a.listView.Contains(x, y))
}

func (a *App) listItemAt(x, y int) (*geo.Location, bool) {
	if !a.showList {
		return nil, false
	}
	return a.listView.ItemAt(x, y)
}

// handleResize handles terminal resize events
func (a *App) handleResize() {
	a.screen.Sync()
	width, height := a.screen.Size()

	a.mapView.UpdateDimensions(width, height-1)
	a.listView.UpdateDimensions(0, height-1-listHeight, listWidth, listHeight)
	a.detailView.UpdateDimensions(width)
}

// cleanup performs cleanup before exit
func (a *App) cleanup() {
	a.viz.Close()

	select {
	case <-a.quit:
	default:
		close(a.quit)
	}

	if a.screen != nil {
		a.screen.Fini()
	}
}
