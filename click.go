package audiogui

import "time"

// Double click defaults, matching common desktop conventions.
const (
	DefaultClickInterval          = 300 * time.Millisecond
	DefaultClickTolerance float32 = 4
)

// ClickKind classifies a button press relative to the previous one.
type ClickKind int

const (
	ClickSingle ClickKind = iota
	ClickDouble
	ClickTriple
)

func (k ClickKind) String() string {
	switch k {
	case ClickSingle:
		return "single"
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// Click is a classified button press.
type Click struct {
	Pos    Vec2
	Button MouseButton
	Time   time.Time
	Kind   ClickKind
}

// ClickConfig decides when two presses belong to the same multi-click.
type ClickConfig struct {
	Interval  time.Duration // Maximum time between presses
	Tolerance float32       // Maximum pointer travel between presses, per axis
}

// DefaultClickConfig returns the default double click timing and tolerance.
func DefaultClickConfig() ClickConfig {
	return ClickConfig{Interval: DefaultClickInterval, Tolerance: DefaultClickTolerance}
}

// Classify returns the click produced by a press at pos and t, given the
// previous click (nil if none). Consecutive presses cycle
// single, double, triple, double, triple...
func (c ClickConfig) Classify(button MouseButton, pos Vec2, t time.Time, prev *Click) Click {
	click := Click{Pos: pos, Button: button, Time: t, Kind: ClickSingle}
	if prev == nil || !c.consecutive(prev, button, pos, t) {
		return click
	}
	switch prev.Kind {
	case ClickSingle:
		click.Kind = ClickDouble
	case ClickDouble:
		click.Kind = ClickTriple
	case ClickTriple:
		click.Kind = ClickDouble
	}
	return click
}

func (c ClickConfig) consecutive(prev *Click, button MouseButton, pos Vec2, t time.Time) bool {
	if prev.Button != button {
		return false
	}
	elapsed := t.Sub(prev.Time)
	if elapsed < 0 || elapsed > c.Interval {
		return false
	}
	d := pos.Sub(prev.Pos)
	return absf32(d.X) <= c.Tolerance && absf32(d.Y) <= c.Tolerance
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
