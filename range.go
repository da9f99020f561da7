package audiogui

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned by range constructors whose bounds cannot
// describe a usable mapping.
var ErrInvalidRange = errors.New("invalid range")

// Range is a scaling law between a Normal and a real parameter value.
//
// The set of laws is closed: FloatRange, IntRange, LogDBRange and FreqRange.
// Code that needs the concrete law switches on the type (see FormatValue).
type Range interface {
	// DefaultNormal returns the normal of the range's default value.
	DefaultNormal() Normal
	// SnapNormal moves n onto the nearest representable step.
	// It leaves n untouched for continuous ranges.
	SnapNormal(n *Normal)

	isRange()
}

// ValueRange is a Range with a concrete value type.
type ValueRange[V any] interface {
	Range
	ToValue(n Normal) V
	ToNormal(v V) Normal
	DefaultValue() V
}

var (
	_ ValueRange[float32] = FloatRange{}
	_ ValueRange[int]     = IntRange{}
	_ ValueRange[float32] = LogDBRange{}
	_ ValueRange[float32] = FreqRange{}
)

// FormatValue renders the value at n for display, including units.
func FormatValue(r Range, n Normal) string {
	switch r := r.(type) {
	case FloatRange:
		return fmt.Sprintf("%.3f", r.ToValue(n))
	case IntRange:
		return fmt.Sprintf("%d", r.ToValue(n))
	case LogDBRange:
		return fmt.Sprintf("%.2f dB", r.ToValue(n))
	case FreqRange:
		v := r.ToValue(n)
		if v >= 1000 {
			return fmt.Sprintf("%.2f kHz", v/1000)
		}
		return fmt.Sprintf("%.1f Hz", v)
	default:
		return n.String()
	}
}

// CreateParam builds a Param whose current and default normals come from
// real values mapped through r.
//
//	freq := audiogui.DefaultFreqRange()
//	p := audiogui.CreateParam(freq, ParamCutoff, float32(1000), float32(1000))
func CreateParam[ID comparable, V any](r ValueRange[V], id ID, value, defaultValue V) Param[ID] {
	return NewParam(id, r.ToNormal(value), r.ToNormal(defaultValue))
}

// CreateDefaultParam builds a Param that starts at the range's default value.
func CreateDefaultParam[ID comparable](r Range, id ID) Param[ID] {
	def := r.DefaultNormal()
	return NewParam(id, def, def)
}
