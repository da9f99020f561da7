// Command gen renders every widget with sample parameters, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/audiogui"
	"github.com/go-theft-auto/audiogui/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                            // filename without extension
	width  int                               // viewport width
	height int                               // viewport height
	place  func(s *audiogui.Surface[string]) // places the widgets
	events func(s *audiogui.Surface[string]) // optional input before capture
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. The hidden window stays at 800x600,
	// larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh surface per screenshot so drag state does not leak between captures.
	surface := audiogui.NewSurface[string](renderer)
	s.place(surface)
	if s.events != nil {
		s.events(surface)
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.07, 0.07, 0.08, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := surface.Render(); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	db := audiogui.DefaultLogDBRange()
	freq := audiogui.DefaultFreqRange()
	lin := audiogui.DefaultFloatRange()
	bipolar := audiogui.DefaultBipolarFloatRange()

	octaves := audiogui.TickMarks{}
	for _, hz := range []float32{20, 40, 80, 160, 320, 640, 1280, 2560, 5120, 10240, 20480} {
		tier := audiogui.TickTierTwo
		if hz == 20 || hz == 640 || hz == 20480 {
			tier = audiogui.TickTierOne
		}
		octaves = append(octaves, audiogui.TickMark{Position: freq.ToNormal(hz), Tier: tier})
	}
	quarters := audiogui.TickMarks{
		{Position: audiogui.NormalMin, Tier: audiogui.TickTierOne},
		{Position: audiogui.NewNormal(0.25), Tier: audiogui.TickTierThree},
		{Position: audiogui.NormalCenter, Tier: audiogui.TickTierTwo},
		{Position: audiogui.NewNormal(0.75), Tier: audiogui.TickTierThree},
		{Position: audiogui.NormalMax, Tier: audiogui.TickTierOne},
	}

	return []screenshot{
		{
			name: "hslider", width: 400, height: 60,
			place: func(s *audiogui.Surface[string]) {
				hs := audiogui.NewHSlider(audiogui.CreateParam(freq, "cutoff", float32(1000), float32(1000)))
				hs.TickMarks = octaves
				s.Place(hs, audiogui.Rect{X: 20, Y: 18, W: 360, H: 24})
			},
		},
		{
			name: "hslider_modulation", width: 400, height: 60,
			place: func(s *audiogui.Surface[string]) {
				hs := audiogui.NewHSlider(audiogui.CreateParam(lin, "mix", float32(0.4), float32(0.5)))
				hs.Modulation = audiogui.NewModulationRange(audiogui.NewNormal(0.2), audiogui.NewNormal(0.6))
				s.Place(hs, audiogui.Rect{X: 20, Y: 18, W: 360, H: 24})
			},
		},
		{
			name: "vslider", width: 80, height: 240,
			place: func(s *audiogui.Surface[string]) {
				vs := audiogui.NewVSlider(audiogui.CreateParam(db, "gain", float32(-3), float32(0)))
				vs.TickMarks = quarters
				s.Place(vs, audiogui.Rect{X: 28, Y: 20, W: 24, H: 200})
			},
		},
		{
			name: "knob", width: 120, height: 120,
			place: func(s *audiogui.Surface[string]) {
				k := audiogui.NewKnob(audiogui.CreateParam(db, "gain", float32(3), float32(0)))
				k.TickMarks = quarters
				s.Place(k, audiogui.Rect{X: 10, Y: 10, W: 100, H: 100})
			},
		},
		{
			name: "knob_modulation", width: 120, height: 120,
			place: func(s *audiogui.Surface[string]) {
				k := audiogui.NewKnob(audiogui.CreateParam(freq, "cutoff", float32(440), float32(1000)))
				k.Modulation = audiogui.NewModulationRange(freq.ToNormal(200), freq.ToNormal(2000))
				s.Place(k, audiogui.Rect{X: 10, Y: 10, W: 100, H: 100})
			},
		},
		{
			name: "xypad", width: 220, height: 220,
			place: func(s *audiogui.Surface[string]) {
				p := audiogui.NewXYPad(
					audiogui.CreateParam(bipolar, "pan", float32(-0.3), float32(0)),
					audiogui.CreateParam(lin, "width", float32(0.7), float32(0.5)),
				)
				p.TickMarksX = quarters
				p.TickMarksY = quarters
				p.ModulationY = audiogui.NewModulationRange(audiogui.NewNormal(0.55), audiogui.NewNormal(0.85))
				s.Place(p, audiogui.Rect{X: 10, Y: 10, W: 200, H: 200})
			},
		},
		{
			name: "knob_dragging", width: 120, height: 120,
			place: func(s *audiogui.Surface[string]) {
				k := audiogui.NewKnob(audiogui.CreateDefaultParam(db, "gain"))
				s.Place(k, audiogui.Rect{X: 10, Y: 10, W: 100, H: 100})
			},
			events: func(s *audiogui.Surface[string]) {
				// Press and pull up a quarter of the knob height.
				s.Dispatch(audiogui.ButtonPressed(audiogui.MouseButtonLeft, audiogui.Vec2{X: 60, Y: 60}, frameTime(0)))
				s.Dispatch(audiogui.PointerMoved(audiogui.Vec2{X: 60, Y: 35}, frameTime(16)))
			},
		},
	}
}

// frameTime returns a fixed timestamp ms milliseconds into the capture.
func frameTime(ms int) time.Time {
	return time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
}
