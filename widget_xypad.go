package audiogui

// XYPad is a two-dimensional pad controlling one Param per axis.
type XYPad[ID comparable] struct {
	*XYController[ID]

	// Optional overlays per axis
	ModulationX, ModulationY *ModulationRange
	TickMarksX, TickMarksY   TickMarks
	TextMarks                TextMarks
}

// NewXYPad creates a pad controlling x horizontally and y vertically.
func NewXYPad[ID comparable](x, y Param[ID], opts ...Option) *XYPad[ID] {
	return &XYPad[ID]{XYController: NewXYController(x, y, opts...)}
}

// Handle implements Widget. A change reports one entry per moved axis,
// X first.
func (p *XYPad[ID]) Handle(ev Event, bounds Rect) []Change[ID] {
	ch, ok := p.Update(ev, bounds)
	if !ok {
		return nil
	}
	out := make([]Change[ID], 0, 2)
	if ch.HasX {
		out = append(out, ch.X)
	}
	if ch.HasY {
		out = append(out, ch.Y)
	}
	return out
}

// Draw implements Widget.
func (p *XYPad[ID]) Draw(dl *DrawList, bounds Rect, cursor Vec2, sheet StyleSheet) {
	st := styleFor(sheet, bounds.Contains(cursor), p.IsDragging())

	dl.AddRect(bounds, st.RailColor)
	drawHTicks(dl, &st, p.TickMarksX, bounds, bounds.X, bounds.W)
	drawVTicks(dl, &st, p.TickMarksY, bounds, bounds.Y, bounds.H)

	if m := p.ModulationX; m != nil && m.Visible {
		lo, hi := orderedSpan(m)
		a := bounds.X + lo.Scale(bounds.W)
		b := bounds.X + hi.Scale(bounds.W)
		if m.FilledVisible {
			dl.AddRect(Rect{X: a, Y: bounds.Y, W: b - a, H: bounds.H}, st.ModulationFillColor)
		}
		dl.AddLine(Vec2{X: a, Y: bounds.Y}, Vec2{X: a, Y: bounds.Y + bounds.H}, st.ModulationColor, 1)
		dl.AddLine(Vec2{X: b, Y: bounds.Y}, Vec2{X: b, Y: bounds.Y + bounds.H}, st.ModulationColor, 1)
	}
	if m := p.ModulationY; m != nil && m.Visible {
		lo, hi := orderedSpan(m)
		top := bounds.Y + hi.ScaleInv(bounds.H)
		bottom := bounds.Y + lo.ScaleInv(bounds.H)
		if m.FilledVisible {
			dl.AddRect(Rect{X: bounds.X, Y: top, W: bounds.W, H: bottom - top}, st.ModulationFillColor)
		}
		dl.AddLine(Vec2{X: bounds.X, Y: top}, Vec2{X: bounds.X + bounds.W, Y: top}, st.ModulationColor, 1)
		dl.AddLine(Vec2{X: bounds.X, Y: bottom}, Vec2{X: bounds.X + bounds.W, Y: bottom}, st.ModulationColor, 1)
	}

	hx := bounds.X + p.XNormal().Scale(bounds.W)
	hy := bounds.Y + p.YNormal().ScaleInv(bounds.H)

	// Crosshair through the handle
	dl.AddLine(Vec2{X: hx, Y: bounds.Y}, Vec2{X: hx, Y: bounds.Y + bounds.H}, st.FillColor, 1)
	dl.AddLine(Vec2{X: bounds.X, Y: hy}, Vec2{X: bounds.X + bounds.W, Y: hy}, st.FillColor, 1)

	dl.AddRectOutline(bounds, st.RailBorderColor, st.BorderWidth)

	size := minf(st.HandleSize, minf(bounds.W, bounds.H))
	handle := Rect{X: hx - size/2, Y: hy - size/2, W: size, H: size}
	dl.AddRect(handle, st.HandleColor)
	dl.AddRectOutline(handle, st.HandleBorderColor, st.BorderWidth)
}
