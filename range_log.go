package audiogui

import (
	"fmt"
	"math"
)

// LogDBRange maps decibels onto a Normal with finer resolution around 0 dB.
//
// 0 dB sits at zeroPosition. On each side the dB value grows with the square
// of the normal distance from zeroPosition, so a drag near unity gain moves in
// small dB increments and a drag near the extremes moves in large ones.
type LogDBRange struct {
	min, max     float32
	zeroPosition Normal
}

// NewLogDBRange creates a decibel range. min must be negative, max positive,
// and zeroPosition strictly inside (0, 1).
func NewLogDBRange(min, max float32, zeroPosition Normal) (LogDBRange, error) {
	if !(min < 0) || !(max > 0) || notFinite32(min) || notFinite32(max) {
		return LogDBRange{}, fmt.Errorf("%w: dB range needs min < 0 < max, got [%g, %g]", ErrInvalidRange, min, max)
	}
	if zp := zeroPosition.Value(); zp <= 0 || zp >= 1 {
		return LogDBRange{}, fmt.Errorf("%w: dB zero position must be inside (0, 1), got %g", ErrInvalidRange, zp)
	}
	return LogDBRange{min: min, max: max, zeroPosition: zeroPosition}, nil
}

// MustLogDBRange is like NewLogDBRange but panics on invalid arguments.
func MustLogDBRange(min, max float32, zeroPosition Normal) LogDBRange {
	r, err := NewLogDBRange(min, max, zeroPosition)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultLogDBRange returns -12 dB to +12 dB with 0 dB centered.
func DefaultLogDBRange() LogDBRange {
	return MustLogDBRange(-12, 12, NormalCenter)
}

// Min returns the lowest dB value.
func (r LogDBRange) Min() float32 { return r.min }

// Max returns the highest dB value.
func (r LogDBRange) Max() float32 { return r.max }

// ZeroPosition returns the normal at which the range reads 0 dB.
func (r LogDBRange) ZeroPosition() Normal { return r.zeroPosition }

// ToValue maps n to decibels.
func (r LogDBRange) ToValue(n Normal) float32 {
	nv := float64(n.Value())
	zp := float64(r.zeroPosition.Value())
	switch {
	case nv == zp:
		return 0
	case nv < zp:
		if zp == 0 {
			return 0
		}
		t := 1 - nv/zp
		return float32(float64(r.min) * t * t)
	default:
		if zp == 1 {
			return 0
		}
		t := (nv - zp) / (1 - zp)
		return float32(float64(r.max) * t * t)
	}
}

// ToNormal maps v to a Normal, clamping values outside the range.
func (r LogDBRange) ToNormal(v float32) Normal {
	zp := float64(r.zeroPosition.Value())
	switch {
	case v != v:
		return r.zeroPosition
	case v <= r.min:
		return NormalMin
	case v >= r.max:
		return NormalMax
	case v == 0:
		return r.zeroPosition
	case v < 0:
		return normalFrom64(zp * (1 - math.Sqrt(float64(v)/float64(r.min))))
	default:
		return normalFrom64(zp + (1-zp)*math.Sqrt(float64(v)/float64(r.max)))
	}
}

// DefaultValue is 0 dB.
func (r LogDBRange) DefaultValue() float32 { return 0 }

func (r LogDBRange) DefaultNormal() Normal { return r.zeroPosition }

func (r LogDBRange) SnapNormal(*Normal) {}

func (LogDBRange) isRange() {}

// Frequency defaults: ten octaves from 20 Hz.
const (
	DefaultFreqMin float32 = 20
	DefaultFreqMax float32 = 20480
)

// FreqRange maps frequencies onto a Normal so that every octave takes the
// same share of the widget.
type FreqRange struct {
	min, max float32
	octaves  float64
}

// NewFreqRange creates an octave-spaced range. Both bounds must be positive.
func NewFreqRange(min, max float32) (FreqRange, error) {
	if !(min > 0) || !(max > min) || notFinite32(max) {
		return FreqRange{}, fmt.Errorf("%w: frequency range needs 0 < min < max, got [%g, %g]", ErrInvalidRange, min, max)
	}
	return FreqRange{
		min:     min,
		max:     max,
		octaves: math.Log2(float64(max) / float64(min)),
	}, nil
}

// MustFreqRange is like NewFreqRange but panics on invalid bounds.
func MustFreqRange(min, max float32) FreqRange {
	r, err := NewFreqRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultFreqRange returns 20 Hz to 20480 Hz.
func DefaultFreqRange() FreqRange {
	return MustFreqRange(DefaultFreqMin, DefaultFreqMax)
}

// Min returns the lowest frequency.
func (r FreqRange) Min() float32 { return r.min }

// Max returns the highest frequency.
func (r FreqRange) Max() float32 { return r.max }

// Octaves returns the number of octaves the range spans.
func (r FreqRange) Octaves() float64 { return r.octaves }

// ToValue maps n to a frequency in Hz.
func (r FreqRange) ToValue(n Normal) float32 {
	return float32(float64(r.min) * math.Exp2(float64(n.Value())*r.octaves))
}

// ToNormal maps a frequency to a Normal, clamping values outside the range.
func (r FreqRange) ToNormal(v float32) Normal {
	if v <= r.min || v != v {
		return NormalMin
	}
	if v >= r.max {
		return NormalMax
	}
	return normalFrom64(math.Log2(float64(v)/float64(r.min)) / r.octaves)
}

// DefaultValue is 1 kHz, clamped into the range.
func (r FreqRange) DefaultValue() float32 {
	return clampf(1000, r.min, r.max)
}

func (r FreqRange) DefaultNormal() Normal { return r.ToNormal(r.DefaultValue()) }

func (r FreqRange) SnapNormal(*Normal) {}

func (FreqRange) isRange() {}
