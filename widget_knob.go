package audiogui

import "math"

// Knob sweep in screen radians, clockwise from the positive X axis.
// Normal 0 sits at the lower left and normal 1 at the lower right.
const (
	knobStartAngle = 0.75 * math.Pi
	knobSweep      = 1.5 * math.Pi
)

// Knob is a rotary control. It is dragged vertically like most plugin knobs:
// moving the pointer up turns it clockwise.
type Knob[ID comparable] struct {
	*Controller[ID]

	Modulation *ModulationRange
	TickMarks  TickMarks
	TextMarks  TextMarks
}

// NewKnob creates a knob controlling param.
func NewKnob[ID comparable](param Param[ID], opts ...Option) *Knob[ID] {
	return &Knob[ID]{Controller: NewController(param, AxisVertical, opts...)}
}

// Handle implements Widget.
func (k *Knob[ID]) Handle(ev Event, bounds Rect) []Change[ID] {
	return single(k.Update(ev, bounds))
}

// knobAngle returns the angle at which n is drawn.
func knobAngle(n Normal) float32 {
	return knobStartAngle + n.Scale(knobSweep)
}

// Draw implements Widget.
func (k *Knob[ID]) Draw(dl *DrawList, bounds Rect, cursor Vec2, sheet StyleSheet) {
	st := styleFor(sheet, bounds.Contains(cursor), k.IsDragging())

	center := bounds.Center()
	outer := minf(bounds.W, bounds.H) / 2
	radius := outer - st.TickLengths[TickTierOne] - st.KnobArcWidth
	if radius <= 0 {
		return
	}
	segs := st.KnobSegments
	if segs < 1 {
		segs = 32
	}

	start := float32(knobStartAngle)
	end := start + float32(knobSweep)
	valueAngle := knobAngle(k.Normal())

	dl.AddArc(center, radius, start, end, segs, st.RailColor, st.KnobArcWidth)
	if n := int(float32(segs) * k.Normal().Value()); n > 0 {
		dl.AddArc(center, radius, start, valueAngle, n, st.FillColor, st.KnobArcWidth)
	}

	if m := k.Modulation; m != nil && m.Visible {
		lo, hi := orderedSpan(m)
		r := radius - st.KnobArcWidth*1.5
		if m.FilledVisible {
			span := hi.Value() - lo.Value()
			if n := int(float32(segs) * span); n > 0 {
				dl.AddArc(center, r, knobAngle(lo), knobAngle(hi), n, st.ModulationFillColor, st.KnobArcWidth)
			}
		}
		for _, n := range [2]Normal{lo, hi} {
			a := knobAngle(n)
			dl.AddLine(arcPoint(center, r-st.KnobArcWidth, a), arcPoint(center, r+st.KnobArcWidth, a), st.ModulationColor, 2)
		}
	}

	for _, t := range k.TickMarks {
		l := tickLength(&st, t.Tier)
		if l <= 0 {
			continue
		}
		a := knobAngle(t.Position)
		r := radius + st.KnobArcWidth
		dl.AddLine(arcPoint(center, r, a), arcPoint(center, r+l, a), st.TickColors[t.Tier], 1)
	}

	body := radius - st.KnobArcWidth
	if body > 0 {
		dl.AddLine(center, arcPoint(center, body, valueAngle), st.HandleColor, 2)
	}
}
