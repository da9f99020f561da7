package audiogui

// VSlider is a vertical slider. Dragging up increases the value and the fill
// grows from the bottom.
type VSlider[ID comparable] struct {
	*Controller[ID]

	Modulation *ModulationRange
	TickMarks  TickMarks
	TextMarks  TextMarks
}

// NewVSlider creates a vertical slider controlling param.
func NewVSlider[ID comparable](param Param[ID], opts ...Option) *VSlider[ID] {
	return &VSlider[ID]{Controller: NewController(param, AxisVertical, opts...)}
}

// Handle implements Widget.
func (s *VSlider[ID]) Handle(ev Event, bounds Rect) []Change[ID] {
	return single(s.Update(ev, bounds))
}

// Draw implements Widget.
func (s *VSlider[ID]) Draw(dl *DrawList, bounds Rect, cursor Vec2, sheet StyleSheet) {
	st := styleFor(sheet, bounds.Contains(cursor), s.IsDragging())

	rail := bounds
	if st.RailThickness > 0 && st.RailThickness < bounds.W {
		rail.X = bounds.X + (bounds.W-st.RailThickness)/2
		rail.W = st.RailThickness
	}

	handleH := minf(st.HandleSize, bounds.H)
	travel := bounds.H - handleH
	y0 := bounds.Y + handleH/2
	handleY := bounds.Y + s.Normal().ScaleInv(travel)

	dl.AddRect(rail, st.RailColor)
	if top := handleY + handleH/2; top < rail.Y+rail.H {
		dl.AddRect(Rect{X: rail.X, Y: top, W: rail.W, H: rail.Y + rail.H - top}, st.FillColor)
	}
	dl.AddRectOutline(rail, st.RailBorderColor, st.BorderWidth)

	drawVTicks(dl, &st, s.TickMarks, bounds, y0, travel)

	if m := s.Modulation; m != nil && m.Visible {
		lo, hi := orderedSpan(m)
		top := y0 + hi.ScaleInv(travel)
		bottom := y0 + lo.ScaleInv(travel)
		if m.FilledVisible {
			dl.AddRect(Rect{X: rail.X, Y: top, W: rail.W, H: bottom - top}, st.ModulationFillColor)
		}
		dl.AddLine(Vec2{X: rail.X, Y: top}, Vec2{X: rail.X + rail.W, Y: top}, st.ModulationColor, 2)
		dl.AddLine(Vec2{X: rail.X, Y: bottom}, Vec2{X: rail.X + rail.W, Y: bottom}, st.ModulationColor, 2)
	}

	handle := Rect{X: bounds.X, Y: handleY, W: bounds.W, H: handleH}
	dl.AddRect(handle, st.HandleColor)
	dl.AddRectOutline(handle, st.HandleBorderColor, st.BorderWidth)
	cy := handleY + handleH/2
	dl.AddLine(Vec2{X: bounds.X + 2, Y: cy}, Vec2{X: bounds.X + bounds.W - 2, Y: cy}, st.NotchColor, 2)
}
