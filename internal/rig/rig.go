// Package rig assembles widgets, ranges and MIDI bindings from a demo config.
package rig

import (
	"fmt"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/go-theft-auto/audiogui"
	"github.com/go-theft-auto/audiogui/internal/config"
	"github.com/go-theft-auto/audiogui/midi"
)

// logger is resolved per call so it follows the output the binary configures.
func logger() *zerolog.Logger {
	l := zlog.With().Str("module", "rig").Logger()
	return &l
}

// Control is one placed widget.
type Control struct {
	Config config.ParamConfig
	Widget audiogui.Widget[string]
	Bounds audiogui.Rect
	index  int
}

// Rig owns the surface, the ranges and the MIDI router of a demo.
type Rig struct {
	Surface  *audiogui.Surface[string]
	Router   *midi.Router[string]
	Controls []*Control

	ranges  map[string]audiogui.Range
	labels  map[string]string
	setters map[string]func(audiogui.Normal)
	getters map[string]func() audiogui.Normal
	order   []string
}

// Build creates every widget in cfg and places it on a new surface.
// Call Layout before the first Render.
func Build(cfg *config.Config, renderer audiogui.Renderer, opts ...audiogui.SurfaceOption) (*Rig, error) {
	dragOpts, err := cfg.Drag.Options()
	if err != nil {
		return nil, err
	}

	r := &Rig{
		Surface: audiogui.NewSurface[string](renderer, opts...),
		Router:  midi.NewRouter[string](),
		ranges:  make(map[string]audiogui.Range),
		labels:  make(map[string]string),
		setters: make(map[string]func(audiogui.Normal)),
		getters: make(map[string]func() audiogui.Normal),
	}

	for _, pc := range cfg.Params {
		param, rng, err := pc.Build()
		if err != nil {
			return nil, err
		}
		wopts := dragOpts
		if pc.Snap {
			wopts = append(append([]audiogui.Option{}, dragOpts...), audiogui.WithSnap(rng))
		}

		var w audiogui.Widget[string]
		switch pc.Widget {
		case config.WidgetHSlider:
			s := audiogui.NewHSlider(param, wopts...)
			r.register(pc, rng, s.SetNormal, s.Normal)
			w = s
		case config.WidgetVSlider:
			s := audiogui.NewVSlider(param, wopts...)
			r.register(pc, rng, s.SetNormal, s.Normal)
			w = s
		case config.WidgetKnob:
			k := audiogui.NewKnob(param, wopts...)
			r.register(pc, rng, k.SetNormal, k.Normal)
			w = k
		case config.WidgetXYPad:
			yparam, yrng, err := pc.Y.Build()
			if err != nil {
				return nil, err
			}
			p := audiogui.NewXYPad(param, yparam, dragOpts...)
			r.register(pc, rng, func(n audiogui.Normal) { p.SetNormals(n, p.YNormal()) }, p.XNormal)
			r.register(*pc.Y, yrng, func(n audiogui.Normal) { p.SetNormals(p.XNormal(), n) }, p.YNormal)
			w = p
		default:
			return nil, fmt.Errorf("param %q: unknown widget %q", pc.ID, pc.Widget)
		}

		c := &Control{Config: pc, Widget: w}
		c.index = r.Surface.Place(w, audiogui.Rect{})
		r.Controls = append(r.Controls, c)

		if err := r.bind(pc); err != nil {
			return nil, err
		}
		if pc.Y != nil {
			if err := r.bind(*pc.Y); err != nil {
				return nil, err
			}
		}
	}

	logger().Info().Int("controls", len(r.Controls)).Msg("rig built")
	return r, nil
}

func (r *Rig) register(pc config.ParamConfig, rng audiogui.Range, set func(audiogui.Normal), get func() audiogui.Normal) {
	r.ranges[pc.ID] = rng
	r.labels[pc.ID] = pc.Label
	r.setters[pc.ID] = set
	r.getters[pc.ID] = get
	r.order = append(r.order, pc.ID)
}

func (r *Rig) bind(pc config.ParamConfig) error {
	if pc.MIDI == nil {
		return nil
	}
	if pc.MIDI.PitchBend {
		return r.Router.BindPitchBend(pc.MIDI.Channel, pc.ID)
	}
	return r.Router.Bind(pc.MIDI.Channel, pc.MIDI.Controller, pc.ID)
}

// IDs returns every parameter ID in config order.
func (r *Rig) IDs() []string {
	return r.order
}

// Normal returns the current position of id.
func (r *Rig) Normal(id string) (audiogui.Normal, bool) {
	get, ok := r.getters[id]
	if !ok {
		return audiogui.Normal{}, false
	}
	return get(), true
}

// Apply moves a parameter from a MIDI target. Snapping ranges are snapped.
// It must run on the UI thread.
func (r *Rig) Apply(t midi.Target[string]) bool {
	set, ok := r.setters[t.ID]
	if !ok {
		logger().Warn().Str("id", t.ID).Msg("midi target has no parameter")
		return false
	}
	n := t.Normal
	r.ranges[t.ID].SnapNormal(&n)
	set(n)
	logger().Debug().Str("id", t.ID).Str("value", r.Describe(t.ID, n)).Msg("midi set")
	return true
}

// Describe formats the value at n for id, e.g. "Gain: -3.00 dB".
func (r *Rig) Describe(id string, n audiogui.Normal) string {
	rng, ok := r.ranges[id]
	if !ok {
		return id
	}
	label := r.labels[id]
	if label == "" {
		label = id
	}
	return label + ": " + audiogui.FormatValue(rng, n)
}

// Layout places the controls in one row inside width x height, separated by
// gap. Sliders and pads stretch; knobs stay square.
func (r *Rig) Layout(width, height, gap float32) error {
	n := float32(len(r.Controls))
	if n == 0 {
		return nil
	}
	cellW := (width - gap*(n+1)) / n
	cellH := height - 2*gap
	if cellW <= 0 || cellH <= 0 {
		return fmt.Errorf("layout: %gx%g too small for %d controls", width, height, len(r.Controls))
	}

	for i, c := range r.Controls {
		x := gap + float32(i)*(cellW+gap)
		b := audiogui.Rect{X: x, Y: gap, W: cellW, H: cellH}
		switch c.Config.Widget {
		case config.WidgetKnob, config.WidgetXYPad:
			side := min(cellW, cellH)
			b = audiogui.Rect{X: x + (cellW-side)/2, Y: gap + (cellH-side)/2, W: side, H: side}
		case config.WidgetHSlider:
			h := min(cellH, max(cellH/6, 4))
			b = audiogui.Rect{X: x, Y: gap + (cellH-h)/2, W: cellW, H: h}
		}
		c.Bounds = b
		if err := r.Surface.SetBounds(c.index, b); err != nil {
			return err
		}
	}
	return nil
}
