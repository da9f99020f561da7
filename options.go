package audiogui

// Drag sensitivity defaults. A scalar of 1 moves the widget by its full
// extent when the pointer travels the full extent.
const (
	DefaultScalar         float32 = 0.98
	DefaultModifierScalar float32 = 0.02
)

// DefaultModifierKeys selects fine dragging.
const DefaultModifierKeys = ModCtrl

// Option configures a Controller or XYController.
type Option func(*options)

// options holds controller configuration shared by both controller kinds.
type options struct {
	scalar         float32
	modifierScalar float32
	modifierKeys   Modifiers
	clicks         ClickConfig
	snap           Range
}

func defaultOptions() options {
	return options{
		scalar:         DefaultScalar,
		modifierScalar: DefaultModifierScalar,
		modifierKeys:   DefaultModifierKeys,
		clicks:         DefaultClickConfig(),
	}
}

// applyOptions applies all options over the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScalar sets how far the widget moves per unit of pointer travel.
// For example 0.5 moves the widget half a pixel for every pixel dragged.
func WithScalar(scalar float32) Option {
	return func(o *options) { o.scalar = scalar }
}

// WithModifierScalar sets the scalar used while the modifier keys are held.
func WithModifierScalar(scalar float32) Option {
	return func(o *options) { o.modifierScalar = scalar }
}

// WithModifierKeys sets the keys that switch to the modifier scalar.
// ModNone disables fine dragging.
func WithModifierKeys(keys Modifiers) Option {
	return func(o *options) { o.modifierKeys = keys }
}

// WithClickConfig sets double click timing and tolerance.
func WithClickConfig(cfg ClickConfig) Option {
	return func(o *options) { o.clicks = cfg }
}

// WithSnap snaps the parameter through r after every drag step and reset.
// Without it the parameter moves continuously and the host is expected to call
// SnapNormal itself.
func WithSnap(r Range) Option {
	return func(o *options) { o.snap = r }
}

// stepScalar picks the scalar for the currently held modifiers.
func (o *options) stepScalar(pressed Modifiers) float32 {
	if pressed.Contains(o.modifierKeys) {
		return o.modifierScalar
	}
	return o.scalar
}

func (o *options) snapNormal(n Normal) Normal {
	if o.snap != nil {
		o.snap.SnapNormal(&n)
	}
	return n
}
