package audiogui

// HSlider is a horizontal slider. Dragging right increases the value.
//
// Usage:
//
//	gain := audiogui.NewHSlider(audiogui.CreateDefaultParam(db, ParamGain))
//	surface.Place(gain, audiogui.Rect{X: 10, Y: 10, W: 200, H: 24})
type HSlider[ID comparable] struct {
	*Controller[ID]

	Modulation *ModulationRange
	TickMarks  TickMarks
	TextMarks  TextMarks
}

// NewHSlider creates a horizontal slider controlling param.
func NewHSlider[ID comparable](param Param[ID], opts ...Option) *HSlider[ID] {
	return &HSlider[ID]{Controller: NewController(param, AxisHorizontal, opts...)}
}

// Handle implements Widget.
func (s *HSlider[ID]) Handle(ev Event, bounds Rect) []Change[ID] {
	return single(s.Update(ev, bounds))
}

// Draw implements Widget.
func (s *HSlider[ID]) Draw(dl *DrawList, bounds Rect, cursor Vec2, sheet StyleSheet) {
	st := styleFor(sheet, bounds.Contains(cursor), s.IsDragging())

	rail := bounds
	if st.RailThickness > 0 && st.RailThickness < bounds.H {
		rail.Y = bounds.Y + (bounds.H-st.RailThickness)/2
		rail.H = st.RailThickness
	}

	handleW := minf(st.HandleSize, bounds.W)
	travel := bounds.W - handleW
	x0 := bounds.X + handleW/2
	handleX := bounds.X + s.Normal().Scale(travel)

	dl.AddRect(rail, st.RailColor)
	if fill := handleX + handleW/2 - rail.X; fill > 0 {
		dl.AddRect(Rect{X: rail.X, Y: rail.Y, W: fill, H: rail.H}, st.FillColor)
	}
	dl.AddRectOutline(rail, st.RailBorderColor, st.BorderWidth)

	drawHTicks(dl, &st, s.TickMarks, bounds, x0, travel)

	if m := s.Modulation; m != nil && m.Visible {
		lo, hi := orderedSpan(m)
		a := x0 + lo.Scale(travel)
		b := x0 + hi.Scale(travel)
		if m.FilledVisible {
			dl.AddRect(Rect{X: a, Y: rail.Y, W: b - a, H: rail.H}, st.ModulationFillColor)
		}
		dl.AddLine(Vec2{X: a, Y: rail.Y}, Vec2{X: a, Y: rail.Y + rail.H}, st.ModulationColor, 2)
		dl.AddLine(Vec2{X: b, Y: rail.Y}, Vec2{X: b, Y: rail.Y + rail.H}, st.ModulationColor, 2)
	}

	handle := Rect{X: handleX, Y: bounds.Y, W: handleW, H: bounds.H}
	dl.AddRect(handle, st.HandleColor)
	dl.AddRectOutline(handle, st.HandleBorderColor, st.BorderWidth)
	cx := handleX + handleW/2
	dl.AddLine(Vec2{X: cx, Y: bounds.Y + 2}, Vec2{X: cx, Y: bounds.Y + bounds.H - 2}, st.NotchColor, 2)
}
