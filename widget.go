package audiogui

// Widget is anything a Surface can place: it turns events into change
// notifications and draws itself into a DrawList.
type Widget[ID comparable] interface {
	// Handle applies one event and returns the notifications it produced.
	Handle(ev Event, bounds Rect) []Change[ID]
	// Draw appends the widget's primitives. cursor is the last known pointer
	// position, used for hover styling.
	Draw(dl *DrawList, bounds Rect, cursor Vec2, sheet StyleSheet)
}

var (
	_ Widget[int] = (*HSlider[int])(nil)
	_ Widget[int] = (*VSlider[int])(nil)
	_ Widget[int] = (*Knob[int])(nil)
	_ Widget[int] = (*XYPad[int])(nil)
)

// single adapts a controller result to Widget.Handle.
func single[ID comparable](ch Change[ID], ok bool) []Change[ID] {
	if !ok {
		return nil
	}
	return []Change[ID]{ch}
}

// tickLength returns the style length for a tier, or 0 for an unknown tier.
func tickLength(st *Style, tier TickTier) float32 {
	if !tier.valid() {
		return 0
	}
	return st.TickLengths[tier]
}

// drawHTicks draws tick marks hanging from the top and bottom edges of r.
// x0 and span locate normal 0 and the travel length.
func drawHTicks(dl *DrawList, st *Style, ticks TickMarks, r Rect, x0, span float32) {
	for _, t := range ticks {
		l := tickLength(st, t.Tier)
		if l <= 0 {
			continue
		}
		x := x0 + t.Position.Scale(span)
		c := st.TickColors[t.Tier]
		dl.AddLine(Vec2{X: x, Y: r.Y}, Vec2{X: x, Y: r.Y + l}, c, 1)
		dl.AddLine(Vec2{X: x, Y: r.Y + r.H - l}, Vec2{X: x, Y: r.Y + r.H}, c, 1)
	}
}

// drawVTicks draws tick marks from the left and right edges of r.
// y0 is the top of the travel; normal 1 sits there.
func drawVTicks(dl *DrawList, st *Style, ticks TickMarks, r Rect, y0, span float32) {
	for _, t := range ticks {
		l := tickLength(st, t.Tier)
		if l <= 0 {
			continue
		}
		y := y0 + t.Position.ScaleInv(span)
		c := st.TickColors[t.Tier]
		dl.AddLine(Vec2{X: r.X, Y: y}, Vec2{X: r.X + l, Y: y}, c, 1)
		dl.AddLine(Vec2{X: r.X + r.W - l, Y: y}, Vec2{X: r.X + r.W, Y: y}, c, 1)
	}
}

// orderedSpan returns lo <= hi regardless of how a ModulationRange was set.
func orderedSpan(m *ModulationRange) (lo, hi Normal) {
	if m.Start.Value() <= m.End.Value() {
		return m.Start, m.End
	}
	return m.End, m.Start
}
