package audiogui

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// at returns a timestamp ms milliseconds after t0.
func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

func newTestController(normal float32, axis Axis, opts ...Option) *Controller[string] {
	p := NewParam("gain", NewNormal(normal), NormalCenter)
	return NewController(p, axis, opts...)
}

func TestController_DragMovesByScalar(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal)
	bounds := Rect{X: 0, Y: 0, W: 200, H: 20}

	if _, ok := c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 100, Y: 10}, at(0)), bounds); ok {
		t.Error("Expected no change notification on drag start")
	}
	if !c.IsDragging() {
		t.Fatal("Expected controller to be dragging after single click")
	}

	ch, ok := c.Update(PointerMoved(Vec2{X: 120, Y: 10}, at(10)), bounds)
	if !ok {
		t.Fatal("Expected change notification on move")
	}
	if ch.ID != "gain" {
		t.Errorf("Expected id gain, got %q", ch.ID)
	}
	want := float32(0.5 + 0.1*0.98)
	if !near(ch.Normal.Value(), want) {
		t.Errorf("Expected normal %v, got %v", want, ch.Normal.Value())
	}
	if c.Normal() != ch.Normal {
		t.Errorf("Expected param normal to match notification, got %v", c.Normal())
	}
}

func TestController_ModifierScalar(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal)
	bounds := Rect{W: 200, H: 20}

	c.Update(ModifiersChanged(ModCtrl, at(0)), bounds)
	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 100, Y: 10}, at(0)), bounds)
	ch, _ := c.Update(PointerMoved(Vec2{X: 120, Y: 10}, at(10)), bounds)

	want := float32(0.5 + 0.1*0.02)
	if !near(ch.Normal.Value(), want) {
		t.Errorf("Expected fine normal %v, got %v", want, ch.Normal.Value())
	}

	// Releasing the modifier mid-drag switches back to the base scalar.
	c.Update(ModifiersChanged(ModNone, at(20)), bounds)
	ch, _ = c.Update(PointerMoved(Vec2{X: 140, Y: 10}, at(30)), bounds)
	want += 0.1 * 0.98
	if !near(ch.Normal.Value(), want) {
		t.Errorf("Expected normal %v after releasing ctrl, got %v", want, ch.Normal.Value())
	}
}

func TestController_ModifierSetMatching(t *testing.T) {
	tests := []struct {
		name    string
		keys    Modifiers
		pressed Modifiers
		fine    bool
	}{
		{"exact", ModCtrl, ModCtrl, true},
		{"superset", ModCtrl, ModCtrl | ModShift, true},
		{"other key", ModCtrl, ModShift, false},
		{"combo partial", ModCtrl | ModShift, ModCtrl, false},
		{"combo full", ModCtrl | ModShift, ModCtrl | ModShift, true},
		{"empty set", ModNone, ModCtrl, false},
		{"empty set nothing held", ModNone, ModNone, false},
	}
	for _, tt := range tests {
		c := newTestController(0.5, AxisHorizontal, WithModifierKeys(tt.keys))
		bounds := Rect{W: 100, H: 10}
		c.Update(ModifiersChanged(tt.pressed, at(0)), bounds)
		c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 50, Y: 5}, at(0)), bounds)
		ch, _ := c.Update(PointerMoved(Vec2{X: 60, Y: 5}, at(5)), bounds)

		scalar := float32(DefaultScalar)
		if tt.fine {
			scalar = DefaultModifierScalar
		}
		want := 0.5 + 0.1*scalar
		if !near(ch.Normal.Value(), want) {
			t.Errorf("%s: expected normal %v, got %v", tt.name, want, ch.Normal.Value())
		}
	}
}

func TestController_DoubleClickResets(t *testing.T) {
	p := NewParam("gain", NewNormal(0.8), NewNormal(0.25))
	c := NewController(p, AxisHorizontal)
	bounds := Rect{W: 100, H: 10}
	pos := Vec2{X: 30, Y: 5}

	c.Update(ButtonPressed(MouseButtonLeft, pos, at(0)), bounds)
	c.Update(ButtonReleased(MouseButtonLeft, pos, at(50)), bounds)

	ch, ok := c.Update(ButtonPressed(MouseButtonLeft, pos, at(100)), bounds)
	if !ok {
		t.Fatal("Expected a change notification on double click")
	}
	if ch.ID != "gain" || ch.Normal.Value() != 0.25 {
		t.Errorf("Expected reset to 0.25 for gain, got %v for %q", ch.Normal, ch.ID)
	}
	if c.IsDragging() {
		t.Error("Expected double click not to start a drag")
	}
	if _, ok := c.Update(PointerMoved(Vec2{X: 80, Y: 5}, at(120)), bounds); ok {
		t.Error("Expected no notification from a move after double click")
	}
}

func TestController_TripleClickResets(t *testing.T) {
	p := NewParam("gain", NewNormal(0.8), NewNormal(0.25))
	c := NewController(p, AxisHorizontal)
	bounds := Rect{W: 100, H: 10}
	pos := Vec2{X: 30, Y: 5}

	c.Update(ButtonPressed(MouseButtonLeft, pos, at(0)), bounds)
	c.Update(ButtonPressed(MouseButtonLeft, pos, at(100)), bounds)
	c.SetNormal(NewNormal(0.9))

	ch, ok := c.Update(ButtonPressed(MouseButtonLeft, pos, at(200)), bounds)
	if !ok || ch.Normal.Value() != 0.25 {
		t.Errorf("Expected triple click to reset to 0.25, got %v (ok=%v)", ch.Normal, ok)
	}
}

func TestController_SlowSecondClickStartsDrag(t *testing.T) {
	c := newTestController(0.8, AxisHorizontal)
	bounds := Rect{W: 100, H: 10}
	pos := Vec2{X: 30, Y: 5}

	c.Update(ButtonPressed(MouseButtonLeft, pos, at(0)), bounds)
	c.Update(ButtonReleased(MouseButtonLeft, pos, at(50)), bounds)
	if _, ok := c.Update(ButtonPressed(MouseButtonLeft, pos, at(1000)), bounds); ok {
		t.Error("Expected a slow second click not to reset")
	}
	if !c.IsDragging() {
		t.Error("Expected a slow second click to start a drag")
	}
}

func TestController_OvershootResyncsOnRelease(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal, WithScalar(1))
	bounds := Rect{W: 100, H: 10}

	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 10, Y: 5}, at(0)), bounds)
	ch, _ := c.Update(PointerMoved(Vec2{X: 90, Y: 5}, at(10)), bounds)
	if ch.Normal != NormalMax {
		t.Fatalf("Expected clamped normal 1, got %v", ch.Normal)
	}

	// Reversing mid-drag stays pinned until the pointer is back in range.
	ch, _ = c.Update(PointerMoved(Vec2{X: 80, Y: 5}, at(20)), bounds)
	if ch.Normal != NormalMax {
		t.Errorf("Expected normal to stay at 1 while accumulator overshoots, got %v", ch.Normal)
	}

	c.Update(ButtonReleased(MouseButtonLeft, Vec2{X: 80, Y: 5}, at(30)), bounds)
	if c.IsDragging() {
		t.Fatal("Expected release to end the drag")
	}

	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 50, Y: 5}, at(1000)), bounds)
	ch, ok := c.Update(PointerMoved(Vec2{X: 45, Y: 5}, at(1010)), bounds)
	if !ok {
		t.Fatal("Expected change notification")
	}
	if !near(ch.Normal.Value(), 0.95) {
		t.Errorf("Expected immediate decrease to 0.95 after resync, got %v", ch.Normal.Value())
	}
}

func TestController_ReleaseOutsideBoundsEndsDrag(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal)
	bounds := Rect{X: 10, Y: 10, W: 100, H: 10}

	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 50, Y: 15}, at(0)), bounds)
	c.Update(ButtonReleased(MouseButtonLeft, Vec2{X: 500, Y: 500}, at(10)), bounds)
	if c.IsDragging() {
		t.Error("Expected release anywhere to end the drag")
	}
}

func TestController_IgnoresOtherButtons(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal)
	bounds := Rect{W: 100, H: 10}

	c.Update(ButtonPressed(MouseButtonRight, Vec2{X: 50, Y: 5}, at(0)), bounds)
	if c.IsDragging() {
		t.Error("Expected right button not to start a drag")
	}

	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 50, Y: 5}, at(10)), bounds)
	c.Update(ButtonReleased(MouseButtonRight, Vec2{X: 50, Y: 5}, at(20)), bounds)
	if !c.IsDragging() {
		t.Error("Expected right button release not to end a left drag")
	}
}

func TestController_PressOutsideBounds(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal)
	bounds := Rect{X: 10, Y: 10, W: 100, H: 10}

	if _, ok := c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 5, Y: 15}, at(0)), bounds); ok {
		t.Error("Expected no notification for a press outside bounds")
	}
	if c.IsDragging() {
		t.Error("Expected press outside bounds not to start a drag")
	}
	if _, ok := c.Update(PointerMoved(Vec2{X: 50, Y: 15}, at(10)), bounds); ok {
		t.Error("Expected idle move to be ignored")
	}
}

func TestController_ZeroExtentMoveIsNoop(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal)
	bounds := Rect{W: 100, H: 10}

	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 50, Y: 5}, at(0)), bounds)
	if _, ok := c.Update(PointerMoved(Vec2{X: 70, Y: 5}, at(10)), Rect{W: 0, H: 10}); ok {
		t.Error("Expected no notification when the widget has no width")
	}
	if c.Normal().Value() != 0.5 {
		t.Errorf("Expected normal unchanged, got %v", c.Normal())
	}
	if !c.IsDragging() {
		t.Error("Expected drag to survive a zero-width layout")
	}
}

func TestController_VerticalAxis(t *testing.T) {
	c := newTestController(0.5, AxisVertical)
	bounds := Rect{W: 20, H: 100}

	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 10, Y: 50}, at(0)), bounds)
	ch, _ := c.Update(PointerMoved(Vec2{X: 10, Y: 40}, at(10)), bounds)
	want := float32(0.5 + 0.1*0.98)
	if !near(ch.Normal.Value(), want) {
		t.Errorf("Expected moving up to increase to %v, got %v", want, ch.Normal.Value())
	}

	// Horizontal motion is ignored on the vertical axis.
	ch, _ = c.Update(PointerMoved(Vec2{X: 90, Y: 40}, at(20)), bounds)
	if !near(ch.Normal.Value(), want) {
		t.Errorf("Expected horizontal motion to be ignored, got %v", ch.Normal.Value())
	}
}

func TestController_WithSnap(t *testing.T) {
	steps := MustIntRange(0, 4)
	c := newTestController(0.5, AxisHorizontal, WithScalar(1), WithSnap(steps))
	bounds := Rect{W: 100, H: 10}

	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 50, Y: 5}, at(0)), bounds)
	ch, _ := c.Update(PointerMoved(Vec2{X: 60, Y: 5}, at(10)), bounds)
	if ch.Normal.Value() != 0.5 {
		t.Errorf("Expected 0.6 to snap back to 0.5, got %v", ch.Normal)
	}
	ch, _ = c.Update(PointerMoved(Vec2{X: 70, Y: 5}, at(20)), bounds)
	if ch.Normal.Value() != 0.75 {
		t.Errorf("Expected accumulated 0.7 to snap to 0.75, got %v", ch.Normal)
	}
	if got := steps.ToValue(ch.Normal); got != 3 {
		t.Errorf("Expected step 3, got %d", got)
	}
}

func TestController_SetNormalResyncs(t *testing.T) {
	c := newTestController(0.5, AxisHorizontal)
	bounds := Rect{W: 100, H: 10}

	c.SetNormal(NewNormal(0.2))
	c.Update(ButtonPressed(MouseButtonLeft, Vec2{X: 50, Y: 5}, at(0)), bounds)
	ch, _ := c.Update(PointerMoved(Vec2{X: 60, Y: 5}, at(10)), bounds)
	want := float32(0.2 + 0.1*0.98)
	if !near(ch.Normal.Value(), want) {
		t.Errorf("Expected drag to continue from 0.2 to %v, got %v", want, ch.Normal.Value())
	}
}

func TestController_SnapNormal(t *testing.T) {
	c := newTestController(0.55, AxisHorizontal)
	c.SnapNormal(MustIntRange(0, 10))
	if !near(c.Normal().Value(), 0.6) {
		t.Errorf("Expected 0.55 to snap to 0.6, got %v", c.Normal())
	}
}

func TestAxis_String(t *testing.T) {
	if AxisHorizontal.String() != "horizontal" || AxisVertical.String() != "vertical" {
		t.Errorf("Unexpected axis names %q %q", AxisHorizontal, AxisVertical)
	}
}
