// Package config loads the demo applications' parameter layout from JSON.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/go-theft-auto/audiogui"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Widget kinds.
const (
	WidgetHSlider = "hslider"
	WidgetVSlider = "vslider"
	WidgetKnob    = "knob"
	WidgetXYPad   = "xypad"
)

// Range kinds.
const (
	RangeFloat = "float"
	RangeInt   = "int"
	RangeDB    = "db"
	RangeFreq  = "freq"
)

// Config is the root of a demo configuration file.
type Config struct {
	Window  WindowConfig  `json:"window"`
	Drag    DragConfig    `json:"drag"`
	Params  []ParamConfig `json:"params"`
	MIDI    MIDIConfig    `json:"midi"`
	Verbose bool          `json:"verbose"`
}

// WindowConfig sizes the OpenGL demo window.
type WindowConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DragConfig holds controller tuning shared by every widget.
type DragConfig struct {
	Scalar         float32 `json:"scalar"`
	ModifierScalar float32 `json:"modifier_scalar"`
	ModifierKeys   string  `json:"modifier_keys"`
	DoubleClickMS  int     `json:"double_click_ms"`
	ClickTolerance float32 `json:"click_tolerance"`
}

// RangeConfig selects a scaling law. ZeroPosition is only read for "db",
// where 0 means the center.
type RangeConfig struct {
	Kind         string  `json:"kind"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	ZeroPosition float64 `json:"zero_position"`
}

// BindingConfig attaches a parameter to a MIDI control.
type BindingConfig struct {
	Channel    uint8 `json:"channel"`
	Controller uint8 `json:"controller"`
	PitchBend  bool  `json:"pitch_bend"`
}

// ParamConfig describes one widget. An "xypad" widget drives this parameter
// horizontally and Y vertically.
type ParamConfig struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Widget  string         `json:"widget"`
	Range   RangeConfig    `json:"range"`
	Value   *float64       `json:"value,omitempty"`
	Default *float64       `json:"default,omitempty"`
	Snap    bool           `json:"snap"`
	MIDI    *BindingConfig `json:"midi,omitempty"`
	Y       *ParamConfig   `json:"y,omitempty"`
}

// MIDIConfig names the input port the demos listen on. An empty port
// disables MIDI.
type MIDIConfig struct {
	InPort  string `json:"in_port"`
	OutPort string `json:"out_port"`
}

// Default returns the built-in demo layout.
func Default() *Config {
	f := func(v float64) *float64 { return &v }
	return &Config{
		Window: WindowConfig{Title: "audiogui", Width: 720, Height: 360},
		Drag: DragConfig{
			Scalar:         audiogui.DefaultScalar,
			ModifierScalar: audiogui.DefaultModifierScalar,
			ModifierKeys:   "ctrl",
			DoubleClickMS:  int(audiogui.DefaultClickInterval / time.Millisecond),
			ClickTolerance: audiogui.DefaultClickTolerance,
		},
		Params: []ParamConfig{
			{
				ID: "gain", Label: "Gain", Widget: WidgetKnob,
				Range: RangeConfig{Kind: RangeDB, Min: -12, Max: 12, ZeroPosition: 0.5},
				MIDI:  &BindingConfig{Channel: 0, Controller: 7},
			},
			{
				ID: "cutoff", Label: "Cutoff", Widget: WidgetHSlider,
				Range: RangeConfig{Kind: RangeFreq, Min: float64(audiogui.DefaultFreqMin), Max: float64(audiogui.DefaultFreqMax)},
				Value: f(440), Default: f(1000),
				MIDI: &BindingConfig{Channel: 0, Controller: 74},
			},
			{
				ID: "mix", Label: "Mix", Widget: WidgetVSlider,
				Range: RangeConfig{Kind: RangeFloat, Min: 0, Max: 1},
				Value: f(0.5), Default: f(0.5),
				MIDI: &BindingConfig{Channel: 0, Controller: 1},
			},
			{
				ID: "voices", Label: "Voices", Widget: WidgetHSlider,
				Range: RangeConfig{Kind: RangeInt, Min: 1, Max: 8},
				Value: f(4), Default: f(4), Snap: true,
			},
			{
				ID: "pan", Label: "Pan / Width", Widget: WidgetXYPad,
				Range: RangeConfig{Kind: RangeFloat, Min: -1, Max: 1},
				MIDI:  &BindingConfig{Channel: 0, PitchBend: true},
				Y: &ParamConfig{
					ID: "width", Label: "Width",
					Range: RangeConfig{Kind: RangeFloat, Min: 0, Max: 2},
					Value: f(1), Default: f(1),
				},
			},
		},
	}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates JSON. Fields left out keep their Default
// values, except Params which replaces the default list when present.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Params = nil
	if err := sonic.ConfigStd.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = Default().Params
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every parameter and the drag settings.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := c.Drag.Options(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for i := range c.Params {
		p := &c.Params[i]
		ids := []string{p.ID}
		if p.Widget == WidgetXYPad {
			if p.Y == nil {
				return fmt.Errorf("%w: xypad %q has no y parameter", ErrInvalidConfig, p.ID)
			}
			ids = append(ids, p.Y.ID)
			if _, _, err := p.Y.Build(); err != nil {
				return err
			}
		}
		for _, id := range ids {
			if id == "" {
				return fmt.Errorf("%w: param %d has no id", ErrInvalidConfig, i)
			}
			if seen[id] {
				return fmt.Errorf("%w: duplicate param id %q", ErrInvalidConfig, id)
			}
			seen[id] = true
		}
		switch p.Widget {
		case WidgetHSlider, WidgetVSlider, WidgetKnob, WidgetXYPad:
		default:
			return fmt.Errorf("%w: param %q has unknown widget %q", ErrInvalidConfig, p.ID, p.Widget)
		}
		if _, _, err := p.Build(); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the drag settings into controller options.
func (d DragConfig) Options() ([]audiogui.Option, error) {
	if d.Scalar <= 0 || d.ModifierScalar <= 0 {
		return nil, fmt.Errorf("%w: drag scalars must be positive", ErrInvalidConfig)
	}
	if d.DoubleClickMS < 0 || d.ClickTolerance < 0 {
		return nil, fmt.Errorf("%w: negative click timing", ErrInvalidConfig)
	}
	keys, err := audiogui.ParseModifiers(d.ModifierKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return []audiogui.Option{
		audiogui.WithScalar(d.Scalar),
		audiogui.WithModifierScalar(d.ModifierScalar),
		audiogui.WithModifierKeys(keys),
		audiogui.WithClickConfig(audiogui.ClickConfig{
			Interval:  time.Duration(d.DoubleClickMS) * time.Millisecond,
			Tolerance: d.ClickTolerance,
		}),
	}, nil
}

// BuildRange constructs the scaling law.
func (r RangeConfig) BuildRange() (audiogui.Range, error) {
	var (
		out audiogui.Range
		err error
	)
	switch r.Kind {
	case RangeFloat:
		out, err = audiogui.NewFloatRange(float32(r.Min), float32(r.Max))
	case RangeInt:
		out, err = audiogui.NewIntRange(int(r.Min), int(r.Max))
	case RangeDB:
		zp := r.ZeroPosition
		if zp == 0 {
			zp = 0.5
		}
		out, err = audiogui.NewLogDBRange(float32(r.Min), float32(r.Max), audiogui.NewNormal(float32(zp)))
	case RangeFreq:
		out, err = audiogui.NewFreqRange(float32(r.Min), float32(r.Max))
	default:
		return nil, fmt.Errorf("%w: unknown range kind %q", ErrInvalidConfig, r.Kind)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Build constructs the parameter and its range. Value and Default fall back
// to the range default when omitted.
func (p ParamConfig) Build() (audiogui.Param[string], audiogui.Range, error) {
	r, err := p.Range.BuildRange()
	if err != nil {
		return audiogui.Param[string]{}, nil, fmt.Errorf("param %q: %w", p.ID, err)
	}
	def := r.DefaultNormal()
	if p.Default != nil {
		def = toNormal(r, *p.Default)
	}
	cur := def
	if p.Value != nil {
		cur = toNormal(r, *p.Value)
	}
	if p.Snap {
		r.SnapNormal(&cur)
		r.SnapNormal(&def)
	}
	return audiogui.NewParam(p.ID, cur, def), r, nil
}

// toNormal maps a real value through any of the concrete ranges.
func toNormal(r audiogui.Range, v float64) audiogui.Normal {
	switch r := r.(type) {
	case audiogui.FloatRange:
		return r.ToNormal(float32(v))
	case audiogui.IntRange:
		return r.ToNormal(int(math.Round(v)))
	case audiogui.LogDBRange:
		return r.ToNormal(float32(v))
	case audiogui.FreqRange:
		return r.ToNormal(float32(v))
	default:
		return r.DefaultNormal()
	}
}
