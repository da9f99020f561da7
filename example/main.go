// Example opens a window with the knobs, sliders and XY pad described by a
// config file (or the built-in layout) and prints every parameter change.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config params.json -v
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-theft-auto/audiogui"
	"github.com/go-theft-auto/audiogui/backend/opengl"
	"github.com/go-theft-auto/audiogui/internal/config"
	"github.com/go-theft-auto/audiogui/internal/rig"
)

const layoutGap = 24

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a JSON parameter layout")
	verbose := flag.Bool("v", false, "log drag gestures")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(*configPath, *verbose); err != nil {
		log.Error().Err(err).Msg("example failed")
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(configPath string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if verbose || cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		audiogui.SetVerbose(true)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)

	r, err := rig.Build(cfg, renderer)
	if err != nil {
		return fmt.Errorf("build widgets: %w", err)
	}

	// Window coordinates drive both layout and input; the framebuffer may be
	// larger on high-DPI displays.
	lastW, lastH := 0, 0

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetSize()
		if w != lastW || h != lastH {
			lastW, lastH = w, h
			r.Surface.Resize(w, h)
			if err := r.Layout(float32(w), float32(h), layoutGap); err != nil {
				log.Warn().Err(err).Msg("layout")
			}
		}

		for _, ev := range input.Poll() {
			for _, ch := range r.Surface.Dispatch(ev) {
				log.Info().Str("param", ch.ID).Str("value", r.Describe(ch.ID, ch.Normal)).Msg("changed")
			}
		}

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := r.Surface.Render(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
