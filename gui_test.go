package audiogui_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-theft-auto/audiogui"
)

// mockRenderer records what the surface hands it.
type mockRenderer struct {
	renderCalls int
	vertices    int
	commands    int
	emptyCmds   int
	width       int
	height      int
	err         error
}

func (m *mockRenderer) Render(dl *audiogui.DrawList) error {
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	m.commands = len(dl.CmdBuffer)
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			m.emptyCmds++
		}
	}
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSurfaceRender(t *testing.T) {
	renderer := &mockRenderer{}
	s := audiogui.NewSurface[string](renderer)

	gain := audiogui.CreateDefaultParam(audiogui.DefaultLogDBRange(), "gain")
	s.Place(audiogui.NewHSlider(gain), audiogui.Rect{X: 10, Y: 10, W: 200, H: 24})
	s.Place(audiogui.NewKnob(gain), audiogui.Rect{X: 10, Y: 40, W: 64, H: 64})

	if err := s.Render(); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.vertices == 0 || renderer.commands == 0 {
		t.Errorf("expected draw data, got %d vertices in %d commands", renderer.vertices, renderer.commands)
	}
	if renderer.emptyCmds != 0 {
		t.Errorf("expected finalized draw list, got %d empty commands", renderer.emptyCmds)
	}
}

func TestSurfaceRenderError(t *testing.T) {
	boom := errors.New("device lost")
	s := audiogui.NewSurface[string](&mockRenderer{err: boom})

	err := s.Render()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func TestSurfaceDispatchOrder(t *testing.T) {
	s := audiogui.NewSurface[string](&mockRenderer{})

	mix := audiogui.CreateDefaultParam(audiogui.DefaultFloatRange(), "mix")
	pan := audiogui.CreateDefaultParam(audiogui.DefaultBipolarFloatRange(), "pan")
	width := audiogui.CreateDefaultParam(audiogui.DefaultFloatRange(), "width")

	// Overlapping widgets all take the same gesture.
	s.Place(audiogui.NewHSlider(mix), audiogui.Rect{W: 100, H: 100})
	s.Place(audiogui.NewXYPad(pan, width), audiogui.Rect{W: 100, H: 100})

	if got := s.Dispatch(audiogui.ButtonPressed(audiogui.MouseButtonLeft, audiogui.Vec2{X: 50, Y: 50}, start)); len(got) != 0 {
		t.Fatalf("expected no changes on press, got %v", got)
	}
	got := s.Dispatch(audiogui.PointerMoved(audiogui.Vec2{X: 60, Y: 40}, start.Add(10*time.Millisecond)))

	want := []string{"mix", "pan", "width"}
	if len(got) != len(want) {
		t.Fatalf("expected %d changes, got %v", len(want), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("change %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
	if s.Cursor() != (audiogui.Vec2{X: 60, Y: 40}) {
		t.Errorf("expected cursor to follow the pointer, got %v", s.Cursor())
	}
}

func TestSurfaceModifiersKeepCursor(t *testing.T) {
	s := audiogui.NewSurface[string](&mockRenderer{})
	s.Dispatch(audiogui.PointerMoved(audiogui.Vec2{X: 5, Y: 6}, start))
	s.Dispatch(audiogui.ModifiersChanged(audiogui.ModCtrl, start))
	if s.Cursor() != (audiogui.Vec2{X: 5, Y: 6}) {
		t.Errorf("expected modifier event to leave the cursor, got %v", s.Cursor())
	}
}

func TestSurfaceSetBounds(t *testing.T) {
	s := audiogui.NewSurface[string](&mockRenderer{})
	mix := audiogui.NewVSlider(audiogui.CreateDefaultParam(audiogui.DefaultFloatRange(), "mix"))
	i := s.Place(mix, audiogui.Rect{})

	if err := s.SetBounds(i, audiogui.Rect{W: 20, H: 100}); err != nil {
		t.Fatalf("SetBounds() returned error: %v", err)
	}
	if err := s.SetBounds(5, audiogui.Rect{}); err == nil {
		t.Error("expected error for an unknown index")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 widget, got %d", s.Len())
	}

	// The new bounds are used for hit testing.
	s.Dispatch(audiogui.ButtonPressed(audiogui.MouseButtonLeft, audiogui.Vec2{X: 10, Y: 50}, start))
	if !mix.IsDragging() {
		t.Error("expected press inside the new bounds to start a drag")
	}
}

func TestSurfaceResize(t *testing.T) {
	renderer := &mockRenderer{}
	s := audiogui.NewSurface[string](renderer)
	s.Resize(640, 480)
	if renderer.width != 640 || renderer.height != 480 {
		t.Errorf("expected resize to reach the renderer, got %dx%d", renderer.width, renderer.height)
	}
}

type flatSheet struct{ audiogui.DefaultStyleSheet }

func (flatSheet) Dragging() audiogui.Style {
	return audiogui.Style{}
}

func TestSurfaceStyleSheet(t *testing.T) {
	s := audiogui.NewSurface[string](&mockRenderer{}, audiogui.WithStyleSheet(flatSheet{}))
	if _, ok := s.StyleSheet().(flatSheet); !ok {
		t.Errorf("expected flatSheet, got %T", s.StyleSheet())
	}
	s.SetStyleSheet(audiogui.DefaultStyleSheet{})
	if _, ok := s.StyleSheet().(audiogui.DefaultStyleSheet); !ok {
		t.Errorf("expected DefaultStyleSheet, got %T", s.StyleSheet())
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := audiogui.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(audiogui.Rect{W: 100, H: 100}, audiogui.ColorWhite)
	audiogui.ReleaseDrawList(dl1)

	dl2 := audiogui.AcquireDrawList()
	if len(dl2.VtxBuffer) != 0 || len(dl2.CmdBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	audiogui.ReleaseDrawList(dl2)
}

func TestColorFunctions(t *testing.T) {
	c := audiogui.RGBA(255, 128, 64, 200)
	r, g, b, a := audiogui.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}
}

func BenchmarkSurfaceRender(b *testing.B) {
	s := audiogui.NewSurface[int](&mockRenderer{})
	for i := 0; i < 16; i++ {
		p := audiogui.CreateDefaultParam(audiogui.DefaultFreqRange(), i)
		s.Place(audiogui.NewKnob(p), audiogui.Rect{X: float32(i * 70), W: 64, H: 64})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Render()
	}
}

func BenchmarkSurfaceDispatch(b *testing.B) {
	s := audiogui.NewSurface[int](&mockRenderer{})
	for i := 0; i < 16; i++ {
		p := audiogui.CreateDefaultParam(audiogui.DefaultFloatRange(), i)
		s.Place(audiogui.NewHSlider(p), audiogui.Rect{Y: float32(i * 30), W: 200, H: 24})
	}
	s.Dispatch(audiogui.ButtonPressed(audiogui.MouseButtonLeft, audiogui.Vec2{X: 100, Y: 10}, start))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Dispatch(audiogui.PointerMoved(audiogui.Vec2{X: float32(i % 200), Y: 10}, start))
	}
}
