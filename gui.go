package audiogui

import "fmt"

// Renderer is the interface for rendering widget draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// SurfaceOption configures a Surface instance.
type SurfaceOption func(*surfaceConfig)

type surfaceConfig struct {
	sheet StyleSheet
}

// WithStyleSheet sets the style sheet used to draw every widget.
func WithStyleSheet(sheet StyleSheet) SurfaceOption {
	return func(c *surfaceConfig) { c.sheet = sheet }
}

type placement[ID comparable] struct {
	widget Widget[ID]
	bounds Rect
}

// Surface owns a set of placed widgets, routes events to them and renders
// them. The host runs it on its UI thread; it is not safe for concurrent use.
type Surface[ID comparable] struct {
	renderer Renderer
	sheet    StyleSheet
	widgets  []placement[ID]
	cursor   Vec2
}

// NewSurface creates an empty surface drawing through renderer.
func NewSurface[ID comparable](renderer Renderer, opts ...SurfaceOption) *Surface[ID] {
	cfg := surfaceConfig{sheet: DefaultStyleSheet{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Surface[ID]{renderer: renderer, sheet: cfg.sheet}
}

// Place adds a widget at bounds and returns its index for SetBounds.
func (s *Surface[ID]) Place(w Widget[ID], bounds Rect) int {
	s.widgets = append(s.widgets, placement[ID]{widget: w, bounds: bounds})
	return len(s.widgets) - 1
}

// SetBounds moves a placed widget, e.g. after a window resize.
func (s *Surface[ID]) SetBounds(index int, bounds Rect) error {
	if index < 0 || index >= len(s.widgets) {
		return fmt.Errorf("set bounds: widget index %d out of range [0,%d)", index, len(s.widgets))
	}
	s.widgets[index].bounds = bounds
	return nil
}

// Len returns the number of placed widgets.
func (s *Surface[ID]) Len() int {
	return len(s.widgets)
}

// Cursor returns the last pointer position seen by Dispatch.
func (s *Surface[ID]) Cursor() Vec2 {
	return s.cursor
}

// StyleSheet returns the current style sheet.
func (s *Surface[ID]) StyleSheet() StyleSheet {
	return s.sheet
}

// SetStyleSheet replaces the style sheet.
func (s *Surface[ID]) SetStyleSheet(sheet StyleSheet) {
	s.sheet = sheet
}

// Dispatch delivers ev to every widget and returns the resulting change
// notifications in placement order.
func (s *Surface[ID]) Dispatch(ev Event) []Change[ID] {
	if ev.Kind != EventModifiersChanged {
		s.cursor = ev.Pos
	}

	var changes []Change[ID]
	for _, p := range s.widgets {
		changes = append(changes, p.widget.Handle(ev, p.bounds)...)
	}
	if len(changes) > 0 {
		logger.Debug("dispatch", "event", ev.Kind, "changes", len(changes))
	}
	return changes
}

// Render draws every widget and hands the result to the renderer.
func (s *Surface[ID]) Render() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	for _, p := range s.widgets {
		p.widget.Draw(dl, p.bounds, s.cursor, s.sheet)
	}
	dl.Finalize()

	if err := s.renderer.Render(dl); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Resize notifies the renderer of a display size change.
func (s *Surface[ID]) Resize(width, height int) {
	s.renderer.Resize(width, height)
}
