package audiogui

// Axis selects which pointer coordinate drives a single-axis controller.
type Axis int

const (
	AxisHorizontal Axis = iota // Left to right increases the value
	AxisVertical               // Bottom to top increases the value
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Change is the notification emitted when a controller moves its Param.
type Change[ID comparable] struct {
	ID     ID
	Normal Normal
}

// Controller turns pointer events into updates of a single Param.
//
// It is Idle until a single left click lands inside the widget bounds, then
// Dragging until any left button release. While dragging, pointer travel along
// the axis is divided by the bounds extent, multiplied by the active scalar
// and added to an unclamped accumulator. The Param receives the accumulator
// clamped into a Normal, so overshooting an end and reversing tracks the
// pointer instead of reacting immediately. A double or triple click resets
// the Param to its default without starting a drag.
//
// The host must deliver a release when the pointer is lost (for example on
// window focus loss). Without one the controller stays in Dragging.
type Controller[ID comparable] struct {
	param Param[ID]
	axis  Axis
	opts  options

	dragging   bool
	prevCoord  float32
	continuous float32
	pressed    Modifiers
	lastClick  *Click
}

// NewController creates an idle controller that owns param.
func NewController[ID comparable](param Param[ID], axis Axis, opts ...Option) *Controller[ID] {
	return &Controller[ID]{
		param:      param,
		axis:       axis,
		opts:       applyOptions(opts),
		continuous: param.normal.Value(),
	}
}

// Param returns a copy of the controlled parameter.
func (c *Controller[ID]) Param() Param[ID] { return c.param }

// ID returns the parameter identifier.
func (c *Controller[ID]) ID() ID { return c.param.id }

// Normal returns the current position of the parameter.
func (c *Controller[ID]) Normal() Normal { return c.param.normal }

// Axis returns the drag axis.
func (c *Controller[ID]) Axis() Axis { return c.axis }

// IsDragging reports whether a drag gesture is in progress.
func (c *Controller[ID]) IsDragging() bool { return c.dragging }

// Modifiers returns the modifier keys the controller believes are held.
func (c *Controller[ID]) Modifiers() Modifiers { return c.pressed }

// SetNormal moves the parameter programmatically, e.g. from host automation
// or a MIDI controller. No change notification is emitted.
func (c *Controller[ID]) SetNormal(n Normal) {
	c.param.normal = n
	c.continuous = n.Value()
}

// SnapNormal snaps the parameter through r, e.g. an IntRange, on the host's
// update path.
func (c *Controller[ID]) SnapNormal(r Range) {
	r.SnapNormal(&c.param.normal)
	if !c.dragging {
		c.continuous = c.param.normal.Value()
	}
}

// Reset moves the parameter back to its default. No notification is emitted.
func (c *Controller[ID]) Reset() {
	c.SetNormal(c.opts.snapNormal(c.param.defaultNormal))
}

// Update applies one event. bounds is the widget's current layout rectangle.
// It returns a change notification when the event moved the parameter.
func (c *Controller[ID]) Update(ev Event, bounds Rect) (Change[ID], bool) {
	switch ev.Kind {
	case EventPointerMoved:
		return c.move(ev.Pos, bounds)
	case EventButtonPressed:
		return c.press(ev, bounds)
	case EventButtonReleased:
		if ev.Button == MouseButtonLeft {
			c.release()
		}
	case EventModifiersChanged:
		c.pressed = ev.Modifiers
	}
	return Change[ID]{}, false
}

func (c *Controller[ID]) change() Change[ID] {
	return Change[ID]{ID: c.param.id, Normal: c.param.normal}
}

func (c *Controller[ID]) coord(p Vec2) float32 {
	if c.axis == AxisVertical {
		return p.Y
	}
	return p.X
}

func (c *Controller[ID]) move(pos Vec2, bounds Rect) (Change[ID], bool) {
	if !c.dragging {
		return Change[ID]{}, false
	}
	extent := bounds.Extent(c.axis)
	if extent <= 0 {
		return Change[ID]{}, false
	}

	coord := c.coord(pos)
	delta := (coord - c.prevCoord) / extent
	if c.axis == AxisVertical {
		// Screen Y grows downward.
		delta = -delta
	}
	delta *= c.opts.stepScalar(c.pressed)

	c.continuous += delta
	c.prevCoord = coord
	c.param.normal = c.opts.snapNormal(NewNormal(c.continuous))
	return c.change(), true
}

func (c *Controller[ID]) press(ev Event, bounds Rect) (Change[ID], bool) {
	if ev.Button != MouseButtonLeft || !bounds.Contains(ev.Pos) {
		return Change[ID]{}, false
	}

	click := c.opts.clicks.Classify(ev.Button, ev.Pos, ev.Time, c.lastClick)
	c.lastClick = &click

	if click.Kind == ClickSingle {
		c.dragging = true
		c.prevCoord = c.coord(ev.Pos)
		logger.Debug("drag start", "id", c.param.id, "normal", c.param.normal.Value())
		return Change[ID]{}, false
	}

	c.dragging = false
	c.Reset()
	logger.Debug("reset to default", "id", c.param.id, "click", click.Kind, "normal", c.param.normal.Value())
	return c.change(), true
}

func (c *Controller[ID]) release() {
	if c.dragging {
		logger.Debug("drag end", "id", c.param.id, "normal", c.param.normal.Value(), "accumulator", c.continuous)
	}
	c.dragging = false
	c.continuous = c.param.normal.Value()
}
