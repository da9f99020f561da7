// Package tui runs audiogui surfaces inside a bubbletea program.
//
// Adapter turns tea.MouseMsg and focus messages into audiogui events and
// Canvas rasterizes DrawLists into half-block terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/audiogui"
)

// PixelsPerCell is the vertical resolution of one terminal cell.
// Each cell shows two pixels stacked with the upper half block glyph.
const PixelsPerCell = 2

// Adapter converts bubbletea messages into audiogui events.
// Positions are reported in canvas pixels: one column wide and
// PixelsPerCell rows per terminal line.
//
// Run the program with tea.WithMouseAllMotion and tea.WithReportFocus so
// drags and focus loss are reported.
type Adapter struct {
	mods    audiogui.Modifiers
	buttons [audiogui.MouseButtonCount]bool
	cursor  audiogui.Vec2
	now     func() time.Time
}

// NewAdapter creates an adapter with no buttons held.
func NewAdapter() *Adapter {
	return &Adapter{now: time.Now}
}

// Cursor returns the last pointer position in canvas pixels.
func (a *Adapter) Cursor() audiogui.Vec2 {
	return a.cursor
}

// Translate returns the events carried by msg. Messages that are not input
// produce nil.
func (a *Adapter) Translate(msg tea.Msg) []audiogui.Event {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return a.mouse(tea.MouseEvent(msg))
	case tea.BlurMsg:
		return a.releaseAll()
	}
	return nil
}

// CellToPixel maps a terminal cell to the pixel at its center.
func CellToPixel(x, y int) audiogui.Vec2 {
	return audiogui.Vec2{X: float32(x) + 0.5, Y: float32(y*PixelsPerCell) + PixelsPerCell/2}
}

func (a *Adapter) mouse(m tea.MouseEvent) []audiogui.Event {
	t := a.now()
	a.cursor = CellToPixel(m.X, m.Y)

	var events []audiogui.Event
	if mods := modifiersOf(m); mods != a.mods {
		a.mods = mods
		events = append(events, audiogui.ModifiersChanged(mods, t))
	}

	switch m.Action {
	case tea.MouseActionMotion:
		events = append(events, audiogui.PointerMoved(a.cursor, t))
	case tea.MouseActionPress:
		btn, ok := teaButton(m.Button)
		if !ok {
			break
		}
		a.buttons[btn] = true
		events = append(events, audiogui.ButtonPressed(btn, a.cursor, t))
	case tea.MouseActionRelease:
		btn, ok := teaButton(m.Button)
		if !ok {
			// X10 style terminals do not say which button went up.
			for i, held := range a.buttons {
				if held {
					a.buttons[i] = false
					events = append(events, audiogui.ButtonReleased(audiogui.MouseButton(i), a.cursor, t))
				}
			}
			break
		}
		a.buttons[btn] = false
		events = append(events, audiogui.ButtonReleased(btn, a.cursor, t))
	}
	return events
}

// releaseAll synthesizes releases for held buttons when the terminal loses
// focus.
func (a *Adapter) releaseAll() []audiogui.Event {
	t := a.now()
	var events []audiogui.Event
	for i, held := range a.buttons {
		if held {
			a.buttons[i] = false
			events = append(events, audiogui.ButtonReleased(audiogui.MouseButton(i), a.cursor, t))
		}
	}
	if a.mods != audiogui.ModNone {
		a.mods = audiogui.ModNone
		events = append(events, audiogui.ModifiersChanged(audiogui.ModNone, t))
	}
	return events
}

func modifiersOf(m tea.MouseEvent) audiogui.Modifiers {
	var mods audiogui.Modifiers
	if m.Ctrl {
		mods |= audiogui.ModCtrl
	}
	if m.Shift {
		mods |= audiogui.ModShift
	}
	if m.Alt {
		mods |= audiogui.ModAlt
	}
	return mods
}

func teaButton(b tea.MouseButton) (audiogui.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return audiogui.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return audiogui.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return audiogui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
