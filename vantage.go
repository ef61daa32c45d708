package vantage

// Point is a 2D point or vector in either surface-pixel or logical-plane
// coordinates, depending on context.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Div divides both components by s. Used to convert a surface-pixel delta
// into a logical-plane delta at the current zoom level.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Size is the pixel dimensions of the drawing surface.
// A zero width or height makes drawing a no-op.
type Size struct {
	Width, Height int
}

// Empty reports whether the size has zero area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// View is the affine transform describing the currently visible window onto
// the unbounded logical plane: surface pixel = Scale * (logical + Offset).
// Scale must stay positive; the zoom pipeline guarantees it never reaches 0.
type View struct {
	Offset Point
	Scale  float64
}

// ViewBox is the logical-space rectangle currently visible, rounded to
// integers. It is derived from View on demand and is never the system of
// record; round-tripping through ViewBox reproduces the same visible
// rectangle only up to rounding and aspect-fit.
type ViewBox struct {
	Top, Bottom, Left, Right int
}

// Width returns Right - Left.
func (b ViewBox) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b ViewBox) Height() int {
	return b.Bottom - b.Top
}

// Empty reports whether the box has zero or negative area. Such boxes cannot
// be converted to a View (the scale would be infinite or negative).
func (b ViewBox) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Touch is a single active touch point in surface-relative coordinates,
// matching what the input source reports for pointer events.
type Touch struct {
	X, Y float64
}

// ViewChangeReason tags every view-change notification with the operation
// that caused it.
type ViewChangeReason uint8

const (
	ReasonMove ViewChangeReason = iota // pan via drag or touch centroid
	ReasonZoom                         // wheel or pinch zoom
	ReasonSet                          // SetView / SetViewBox / animation
)

// String returns the reason name for logging.
func (r ViewChangeReason) String() string {
	switch r {
	case ReasonMove:
		return "move"
	case ReasonZoom:
		return "zoom"
	case ReasonSet:
		return "set"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventKind identifies a kind of input event delivered over a Source
// subscription.
type EventKind uint8

const (
	EventPointerDown  EventKind = iota // a mouse button was pressed
	EventPointerMove                   // the cursor moved (any button state)
	EventPointerUp                     // a mouse button was released
	EventPointerLeave                  // the pointer left the surface
	EventWheel                         // wheel / scroll gesture
	EventTouchStart                    // the set of active touches grew
	EventTouchMove                     // active touches moved
	EventTouchEnd                      // the set of active touches shrank
)

// PointerEvent carries cursor position (in client coordinates, before
// cursorOffset is applied) and the button involved, if any.
type PointerEvent struct {
	X, Y   float64
	Button MouseButton
}

// WheelEvent carries the cursor position and the vertical wheel delta.
// Positive DeltaY zooms out, negative zooms in.
type WheelEvent struct {
	X, Y   float64
	DeltaY float64
}

// TouchEvent carries the full set of currently active touches.
type TouchEvent struct {
	Touches []Touch
}

// Event is the union delivered to subscribers. Only the field matching Kind
// is populated.
type Event struct {
	Kind    EventKind
	Pointer PointerEvent
	Wheel   WheelEvent
	Touch   TouchEvent
}
