package audiogui

import (
	"math"
	"strconv"
)

// Normal is a position in the closed unit interval [0, 1].
// It is the representation every widget stores and draws from; the zero
// value is a valid Normal at 0.
type Normal struct {
	v float32
}

var (
	NormalMin    = Normal{v: 0}
	NormalCenter = Normal{v: 0.5}
	NormalMax    = Normal{v: 1}
)

// NewNormal clamps v into [0, 1]. NaN becomes 0.
func NewNormal(v float32) Normal {
	if v != v {
		return NormalMin
	}
	return Normal{v: clampf(v, 0, 1)}
}

// normalFrom64 clamps a float64 computation result into a Normal.
func normalFrom64(v float64) Normal {
	if math.IsNaN(v) {
		return NormalMin
	}
	return NewNormal(float32(v))
}

// Value returns the underlying float.
func (n Normal) Value() float32 {
	return n.v
}

// Scale maps the normal onto a span, e.g. a widget length in pixels.
func (n Normal) Scale(span float32) float32 {
	return n.v * span
}

// ScaleInv maps the normal onto a span measured from the far end.
// Used where a widget fills from bottom to top.
func (n Normal) ScaleInv(span float32) float32 {
	return span - n.Scale(span)
}

// Add returns n+delta clamped into [0, 1].
func (n Normal) Add(delta float32) Normal {
	return NewNormal(n.v + delta)
}

// String implements fmt.Stringer.
func (n Normal) String() string {
	return strconv.FormatFloat(float64(n.v), 'f', 4, 32)
}
