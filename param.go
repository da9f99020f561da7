package audiogui

// Param is the unit of state a widget controls: a user identifier together
// with the current and default Normal.
//
// ID is opaque to this package. It is handed back unchanged in every change
// notification so the host can tell which parameter moved.
type Param[ID comparable] struct {
	id            ID
	normal        Normal
	defaultNormal Normal
}

// NewParam creates a Param from normals that were already computed.
// Most callers use CreateParam or CreateDefaultParam instead.
func NewParam[ID comparable](id ID, normal, defaultNormal Normal) Param[ID] {
	return Param[ID]{id: id, normal: normal, defaultNormal: defaultNormal}
}

// ID returns the identifier given at construction.
func (p Param[ID]) ID() ID { return p.id }

// Normal returns the current position.
func (p Param[ID]) Normal() Normal { return p.normal }

// DefaultNormal returns the position a double click resets to.
func (p Param[ID]) DefaultNormal() Normal { return p.defaultNormal }

// ModulationRange is a display-only overlay drawn on top of a widget, such as
// the sweep of an LFO modulating the parameter.
type ModulationRange struct {
	Start, End    Normal
	Visible       bool // Draw the range markers
	FilledVisible bool // Fill the span between Start and End
}

// NewModulationRange returns a visible, filled overlay from start to end.
func NewModulationRange(start, end Normal) *ModulationRange {
	return &ModulationRange{Start: start, End: end, Visible: true, FilledVisible: true}
}
