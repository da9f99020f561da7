package audiogui

// XYChange is the notification emitted by an XYController. Each axis is
// reported with its own identifier; an axis whose extent was zero is left out.
type XYChange[ID comparable] struct {
	X, Y       Change[ID]
	HasX, HasY bool
}

// XYController drives two independent Params from one pointer gesture.
// X grows to the right and Y grows upward. The axes share the gesture, the
// scalar selection and the double click, and are otherwise unrelated: each
// has its own accumulator and clamp.
type XYController[ID comparable] struct {
	x, y Param[ID]
	opts options

	dragging   bool
	prev       Vec2
	continuous Vec2
	pressed    Modifiers
	lastClick  *Click
}

// NewXYController creates an idle dual-axis controller.
func NewXYController[ID comparable](x, y Param[ID], opts ...Option) *XYController[ID] {
	return &XYController[ID]{
		x:          x,
		y:          y,
		opts:       applyOptions(opts),
		continuous: Vec2{X: x.normal.Value(), Y: y.normal.Value()},
	}
}

// XParam returns a copy of the horizontal parameter.
func (c *XYController[ID]) XParam() Param[ID] { return c.x }

// YParam returns a copy of the vertical parameter.
func (c *XYController[ID]) YParam() Param[ID] { return c.y }

// XNormal returns the horizontal position.
func (c *XYController[ID]) XNormal() Normal { return c.x.normal }

// YNormal returns the vertical position.
func (c *XYController[ID]) YNormal() Normal { return c.y.normal }

// IsDragging reports whether a drag gesture is in progress.
func (c *XYController[ID]) IsDragging() bool { return c.dragging }

// SetNormals moves both parameters programmatically without notification.
func (c *XYController[ID]) SetNormals(x, y Normal) {
	c.x.normal, c.y.normal = x, y
	c.continuous = Vec2{X: x.Value(), Y: y.Value()}
}

// Reset moves both parameters back to their defaults.
func (c *XYController[ID]) Reset() {
	c.SetNormals(c.opts.snapNormal(c.x.defaultNormal), c.opts.snapNormal(c.y.defaultNormal))
}

// Update applies one event. bounds is the pad's current layout rectangle.
func (c *XYController[ID]) Update(ev Event, bounds Rect) (XYChange[ID], bool) {
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
	return XYChange[ID]{}, false
}

func (c *XYController[ID]) both() XYChange[ID] {
	return XYChange[ID]{
		X:    Change[ID]{ID: c.x.id, Normal: c.x.normal},
		Y:    Change[ID]{ID: c.y.id, Normal: c.y.normal},
		HasX: true,
		HasY: true,
	}
}

func (c *XYController[ID]) move(pos Vec2, bounds Rect) (XYChange[ID], bool) {
	if !c.dragging {
		return XYChange[ID]{}, false
	}

	scalar := c.opts.stepScalar(c.pressed)
	var out XYChange[ID]

	if bounds.W > 0 {
		c.continuous.X += (pos.X - c.prev.X) / bounds.W * scalar
		c.prev.X = pos.X
		c.x.normal = c.opts.snapNormal(NewNormal(c.continuous.X))
		out.X = Change[ID]{ID: c.x.id, Normal: c.x.normal}
		out.HasX = true
	}
	if bounds.H > 0 {
		c.continuous.Y += (c.prev.Y - pos.Y) / bounds.H * scalar
		c.prev.Y = pos.Y
		c.y.normal = c.opts.snapNormal(NewNormal(c.continuous.Y))
		out.Y = Change[ID]{ID: c.y.id, Normal: c.y.normal}
		out.HasY = true
	}

	return out, out.HasX || out.HasY
}

func (c *XYController[ID]) press(ev Event, bounds Rect) (XYChange[ID], bool) {
	if ev.Button != MouseButtonLeft || !bounds.Contains(ev.Pos) {
		return XYChange[ID]{}, false
	}

	click := c.opts.clicks.Classify(ev.Button, ev.Pos, ev.Time, c.lastClick)
	c.lastClick = &click

	if click.Kind == ClickSingle {
		c.dragging = true
		c.prev = ev.Pos
		logger.Debug("xy drag start", "x", c.x.id, "y", c.y.id)
		return XYChange[ID]{}, false
	}

	c.dragging = false
	c.Reset()
	logger.Debug("xy reset to default", "x", c.x.id, "y", c.y.id, "click", click.Kind)
	return c.both(), true
}

func (c *XYController[ID]) release() {
	if c.dragging {
		logger.Debug("xy drag end", "x", c.x.id, "y", c.y.id)
	}
	c.dragging = false
	c.continuous = Vec2{X: c.x.normal.Value(), Y: c.y.normal.Value()}
}
