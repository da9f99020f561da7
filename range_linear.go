package audiogui

import (
	"fmt"
	"math"
)

// FloatRange maps a bounded float linearly onto a Normal.
type FloatRange struct {
	min, max  float32
	spanRecip float64
}

// NewFloatRange creates a linear range over [min, max].
func NewFloatRange(min, max float32) (FloatRange, error) {
	if !(max > min) || notFinite32(min) || notFinite32(max) {
		return FloatRange{}, fmt.Errorf("%w: float range needs min < max, got [%g, %g]", ErrInvalidRange, min, max)
	}
	return FloatRange{
		min:       min,
		max:       max,
		spanRecip: 1 / (float64(max) - float64(min)),
	}, nil
}

// MustFloatRange is like NewFloatRange but panics on invalid bounds.
func MustFloatRange(min, max float32) FloatRange {
	r, err := NewFloatRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultFloatRange returns the range [0, 1].
func DefaultFloatRange() FloatRange {
	return MustFloatRange(0, 1)
}

// DefaultBipolarFloatRange returns the range [-1, 1], defaulting to 0.
func DefaultBipolarFloatRange() FloatRange {
	return MustFloatRange(-1, 1)
}

// Min returns the lower bound.
func (r FloatRange) Min() float32 { return r.min }

// Max returns the upper bound.
func (r FloatRange) Max() float32 { return r.max }

// ToValue maps n onto [min, max].
func (r FloatRange) ToValue(n Normal) float32 {
	return float32(float64(r.min) + float64(n.Value())*(float64(r.max)-float64(r.min)))
}

// ToNormal maps v into a Normal, clamping values outside the range.
func (r FloatRange) ToNormal(v float32) Normal {
	if v <= r.min {
		return NormalMin
	}
	if v >= r.max {
		return NormalMax
	}
	return normalFrom64((float64(v) - float64(r.min)) * r.spanRecip)
}

// DefaultValue is 0 when the range contains it, otherwise min.
func (r FloatRange) DefaultValue() float32 {
	if r.min <= 0 && r.max >= 0 {
		return 0
	}
	return r.min
}

func (r FloatRange) DefaultNormal() Normal { return r.ToNormal(r.DefaultValue()) }

func (r FloatRange) SnapNormal(*Normal) {}

func (FloatRange) isRange() {}

// IntRange maps a bounded integer onto evenly spaced Normal steps.
type IntRange struct {
	min, max int
	steps    float64
}

// NewIntRange creates a stepped range over [min, max] with max-min+1 positions.
func NewIntRange(min, max int) (IntRange, error) {
	if max <= min {
		return IntRange{}, fmt.Errorf("%w: int range needs min < max, got [%d, %d]", ErrInvalidRange, min, max)
	}
	return IntRange{min: min, max: max, steps: float64(max - min)}, nil
}

// MustIntRange is like NewIntRange but panics on invalid bounds.
func MustIntRange(min, max int) IntRange {
	r, err := NewIntRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound.
func (r IntRange) Min() int { return r.min }

// Max returns the upper bound.
func (r IntRange) Max() int { return r.max }

// Steps returns the number of step positions.
func (r IntRange) Steps() int { return r.max - r.min + 1 }

// ToValue returns the integer nearest to n.
func (r IntRange) ToValue(n Normal) int {
	return r.min + int(math.Round(float64(n.Value())*r.steps))
}

// ToNormal maps v onto its step position, clamping values outside the range.
func (r IntRange) ToNormal(v int) Normal {
	if v <= r.min {
		return NormalMin
	}
	if v >= r.max {
		return NormalMax
	}
	return normalFrom64(float64(v-r.min) / r.steps)
}

// DefaultValue is 0 when the range contains it, otherwise min.
func (r IntRange) DefaultValue() int {
	if r.min <= 0 && r.max >= 0 {
		return 0
	}
	return r.min
}

func (r IntRange) DefaultNormal() Normal { return r.ToNormal(r.DefaultValue()) }

// SnapNormal replaces n with the nearest step position.
func (r IntRange) SnapNormal(n *Normal) {
	if r.steps == 0 {
		*n = NormalMin
		return
	}
	*n = normalFrom64(math.Round(float64(n.Value())*r.steps) / r.steps)
}

func (IntRange) isRange() {}

func notFinite32(v float32) bool {
	return math.IsInf(float64(v), 0) || v != v
}
