package opengl

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/audiogui"
)

// GLFWInputAdapter queues GLFW callbacks as audiogui events.
//
// When the window loses focus while buttons are held, the adapter queues a
// release for each of them so no widget is left dragging.
type GLFWInputAdapter struct {
	window  *glfw.Window
	events  []audiogui.Event
	cursor  audiogui.Vec2
	mods    audiogui.Modifiers
	buttons [audiogui.MouseButtonCount]bool
	now     func() time.Time
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		now:    time.Now,
	}

	x, y := window.GetCursorPos()
	adapter.cursor = audiogui.Vec2{X: float32(x), Y: float32(y)}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFocusCallback(adapter.focusCallback)

	return adapter
}

// Poll returns the events queued since the last call.
// Call this after glfw.PollEvents.
func (a *GLFWInputAdapter) Poll() []audiogui.Event {
	events := a.events
	a.events = nil
	return events
}

// Cursor returns the last known pointer position in window coordinates.
func (a *GLFWInputAdapter) Cursor() audiogui.Vec2 {
	return a.cursor
}

func (a *GLFWInputAdapter) push(ev audiogui.Event) {
	a.events = append(a.events, ev)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if !isModifierKey(key) {
		return
	}
	next := a.heldModifiers()
	if next != a.mods {
		a.mods = next
		a.push(audiogui.ModifiersChanged(next, a.now()))
	}
}

// heldModifiers reads both the left and right variant of each modifier.
func (a *GLFWInputAdapter) heldModifiers() audiogui.Modifiers {
	down := func(l, r glfw.Key) bool {
		return a.window.GetKey(l) == glfw.Press || a.window.GetKey(r) == glfw.Press
	}
	var m audiogui.Modifiers
	if down(glfw.KeyLeftControl, glfw.KeyRightControl) {
		m |= audiogui.ModCtrl
	}
	if down(glfw.KeyLeftShift, glfw.KeyRightShift) {
		m |= audiogui.ModShift
	}
	if down(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		m |= audiogui.ModAlt
	}
	if down(glfw.KeyLeftSuper, glfw.KeyRightSuper) {
		m |= audiogui.ModSuper
	}
	return m
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn, ok := glfwMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.buttons[btn] = true
		a.push(audiogui.ButtonPressed(btn, a.cursor, a.now()))
	case glfw.Release:
		a.buttons[btn] = false
		a.push(audiogui.ButtonReleased(btn, a.cursor, a.now()))
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.cursor = audiogui.Vec2{X: float32(xpos), Y: float32(ypos)}
	a.push(audiogui.PointerMoved(a.cursor, a.now()))
}

func (a *GLFWInputAdapter) focusCallback(w *glfw.Window, focused bool) {
	if focused {
		return
	}
	t := a.now()
	for i, held := range a.buttons {
		if held {
			a.buttons[i] = false
			a.push(audiogui.ButtonReleased(audiogui.MouseButton(i), a.cursor, t))
		}
	}
	if a.mods != audiogui.ModNone {
		a.mods = audiogui.ModNone
		a.push(audiogui.ModifiersChanged(audiogui.ModNone, t))
	}
}

func isModifierKey(key glfw.Key) bool {
	switch key {
	case glfw.KeyLeftControl, glfw.KeyRightControl,
		glfw.KeyLeftShift, glfw.KeyRightShift,
		glfw.KeyLeftAlt, glfw.KeyRightAlt,
		glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return true
	default:
		return false
	}
}

// glfwMouseButton maps GLFW mouse buttons to audiogui mouse buttons.
func glfwMouseButton(button glfw.MouseButton) (audiogui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return audiogui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return audiogui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return audiogui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
