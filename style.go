package audiogui

// Style defines the visual appearance of a parameter widget in one state.
type Style struct {
	// Rail / background
	RailColor       uint32
	RailBorderColor uint32
	RailThickness   float32 // Slider rail thickness (0 = fill the cross axis)

	// Filled portion between the origin and the handle
	FillColor uint32

	// Handle
	HandleColor       uint32
	HandleBorderColor uint32
	HandleSize        float32 // Slider handle length along the axis, pad handle edge
	NotchColor        uint32  // Center line inside the handle

	// Knob
	KnobArcWidth float32 // Thickness of the value arc
	KnobSegments int     // Line segments used to approximate the arc

	// Tick marks, indexed by TickTier
	TickColors  [TickTierCount]uint32
	TickLengths [TickTierCount]float32

	// Modulation overlay
	ModulationColor     uint32
	ModulationFillColor uint32

	BorderWidth float32
}

// StyleSheet supplies the style for each interaction state.
type StyleSheet interface {
	Active() Style
	Hovered() Style
	Dragging() Style
}

// styleFor picks the style for the widget's current state.
func styleFor(sheet StyleSheet, hovered, dragging bool) Style {
	switch {
	case dragging:
		return sheet.Dragging()
	case hovered:
		return sheet.Hovered()
	default:
		return sheet.Active()
	}
}

// DefaultStyleSheet is a flat dark style.
type DefaultStyleSheet struct{}

// Active returns the idle style.
func (DefaultStyleSheet) Active() Style {
	return Style{
		RailColor:           RGBA(38, 38, 42, 255),
		RailBorderColor:     RGBA(20, 20, 22, 255),
		RailThickness:       0,
		FillColor:           RGBA(92, 140, 200, 255),
		HandleColor:         RGBA(200, 200, 205, 255),
		HandleBorderColor:   RGBA(20, 20, 22, 255),
		HandleSize:          10,
		NotchColor:          RGBA(40, 40, 44, 255),
		KnobArcWidth:        3,
		KnobSegments:        48,
		TickColors:          [TickTierCount]uint32{RGBA(170, 170, 175, 255), RGBA(120, 120, 125, 255), RGBA(80, 80, 85, 255)},
		TickLengths:         [TickTierCount]float32{6, 4, 2},
		ModulationColor:     RGBA(230, 160, 60, 255),
		ModulationFillColor: RGBA(230, 160, 60, 90),
		BorderWidth:         1,
	}
}

// Hovered brightens the handle.
func (s DefaultStyleSheet) Hovered() Style {
	st := s.Active()
	st.HandleColor = RGBA(225, 225, 230, 255)
	return st
}

// Dragging highlights the handle and fill.
func (s DefaultStyleSheet) Dragging() Style {
	st := s.Active()
	st.HandleColor = RGBA(245, 245, 250, 255)
	st.FillColor = RGBA(110, 165, 230, 255)
	return st
}
