package tui

import (
	"strings"
	"testing"

	"github.com/go-theft-auto/audiogui"
)

var (
	black = audiogui.RGBA(0, 0, 0, 255)
	red   = audiogui.RGBA(255, 0, 0, 255)
)

func TestCanvas_Size(t *testing.T) {
	c := NewCanvas(4, 2, black)
	if w, h := c.Size(); w != 4 || h != 4 {
		t.Errorf("expected 4x4 pixels, got %dx%d", w, h)
	}
	c.Resize(5, 3)
	if w, h := c.Size(); w != 5 || h != 4 {
		t.Errorf("expected height rounded up to 4, got %dx%d", w, h)
	}
	if c.At(-1, 0) != 0 || c.At(5, 0) != 0 {
		t.Error("expected 0 outside the canvas")
	}
}

func TestCanvas_RenderRect(t *testing.T) {
	c := NewCanvas(4, 2, black)
	dl := audiogui.AcquireDrawList()
	defer audiogui.ReleaseDrawList(dl)

	dl.AddRect(audiogui.Rect{X: 0, Y: 0, W: 2, H: 2}, red)
	dl.Finalize()
	if err := c.Render(dl); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := c.At(p[0], p[1]); got != red {
			t.Errorf("pixel %v: expected red, got %08x", p, got)
		}
	}
	for _, p := range [][2]int{{2, 0}, {0, 2}, {3, 3}} {
		if got := c.At(p[0], p[1]); got != black {
			t.Errorf("pixel %v: expected background, got %08x", p, got)
		}
	}

	// Rendering again starts from a clean canvas.
	dl.Clear()
	dl.Finalize()
	if err := c.Render(dl); err != nil {
		t.Fatal(err)
	}
	if c.At(0, 0) != black {
		t.Error("expected canvas to be cleared between renders")
	}
}

func TestCanvas_RenderClips(t *testing.T) {
	c := NewCanvas(4, 2, black)
	dl := audiogui.AcquireDrawList()
	defer audiogui.ReleaseDrawList(dl)

	dl.PushClipRect(audiogui.Rect{X: 0, Y: 0, W: 1, H: 4})
	dl.AddRect(audiogui.Rect{W: 4, H: 4}, red)
	dl.PopClipRect()
	dl.Finalize()
	if err := c.Render(dl); err != nil {
		t.Fatal(err)
	}

	if c.At(0, 3) != red {
		t.Error("expected clipped column to be drawn")
	}
	if c.At(1, 0) != black {
		t.Error("expected pixels outside the clip to stay background")
	}
}

func TestCanvas_Blend(t *testing.T) {
	c := NewCanvas(1, 1, black)
	dl := audiogui.AcquireDrawList()
	defer audiogui.ReleaseDrawList(dl)

	dl.AddRect(audiogui.Rect{W: 1, H: 2}, audiogui.RGBA(255, 255, 255, 128))
	dl.Finalize()
	if err := c.Render(dl); err != nil {
		t.Fatal(err)
	}
	if r, g, b, a := audiogui.UnpackRGBA(c.At(0, 0)); r != 128 || g != 128 || b != 128 || a != 255 {
		t.Errorf("expected half gray, got %d,%d,%d,%d", r, g, b, a)
	}
}

func TestCanvas_RenderBadIndices(t *testing.T) {
	c := NewCanvas(2, 1, black)
	dl := &audiogui.DrawList{
		CmdBuffer: []audiogui.DrawCmd{{ElemCount: 6}},
		IdxBuffer: []uint16{0, 1, 2},
	}
	if err := c.Render(dl); err == nil {
		t.Error("expected error for a command past the index buffer")
	}

	dl = &audiogui.DrawList{
		CmdBuffer: []audiogui.DrawCmd{{ElemCount: 3}},
		IdxBuffer: []uint16{0, 1, 9},
		VtxBuffer: make([]audiogui.Vertex, 3),
	}
	if err := c.Render(dl); err == nil {
		t.Error("expected error for a vertex index past the buffer")
	}
}

func TestCanvas_String(t *testing.T) {
	c := NewCanvas(3, 2, black)
	out := c.String()
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if strings.Count(out, upperHalfBlock) != 6 {
		t.Errorf("expected 6 half blocks, got %q", out)
	}
}

func TestCanvas_RendersSurface(t *testing.T) {
	c := NewCanvas(40, 6, black)
	s := audiogui.NewSurface[string](c)
	s.Place(audiogui.NewHSlider(audiogui.CreateDefaultParam(audiogui.DefaultFloatRange(), "mix")), audiogui.Rect{X: 2, Y: 2, W: 36, H: 8})

	if err := s.Render(); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	fill := audiogui.DefaultStyleSheet{}.Active().HandleColor
	found := false
	for x := 0; x < 40; x++ {
		if c.At(x, 5) == fill {
			found = true
		}
	}
	if !found {
		t.Error("expected the slider handle on row 5")
	}
}
