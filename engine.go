package vantage

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultZoomSensitivity = 320.0

// Options configures a new Engine. All fields are optional; zero values fall
// back to the documented defaults.
type Options struct {
	// InitialPosition is the starting view offset. Default: origin.
	InitialPosition Point
	// InitialScale is the starting zoom. Default: 1.
	InitialScale float64
	// MinScale and MaxScale clamp zoom operations. A zero value leaves that
	// side unbounded.
	MinScale float64
	MaxScale float64
	// ZoomSensitivity is the wheel-to-scale-factor divisor. Larger values
	// make the wheel less sensitive. Default: 320.
	ZoomSensitivity float64

	// OnContextInit fires once, when the drawing surface first becomes
	// available (the first Resize with non-zero area).
	OnContextInit func(*DrawContext)
	// OnBeforeDraw fires each draw, before the view transform is applied.
	OnBeforeDraw func(*DrawContext)
	// OnDraw fires each draw with the view transform applied. This is the
	// caller's actual rendering.
	OnDraw func(*DrawContext)
	// OnViewChange fires whenever the affine view changes.
	OnViewChange func(View, ViewChangeReason)
	// OnViewBoxChange fires whenever the visible logical rectangle changes.
	OnViewBoxChange func(ViewBox, ViewChangeReason)
	// OnRightClick fires on a right-click gesture with the logical-plane
	// point under the cursor.
	OnRightClick func(Point)
}

// gestureMode is the top-level state of the gesture state machine.
type gestureMode uint8

const (
	gestureIdle     gestureMode = iota // no button or touch active
	gestureDragging                    // mouse button held
	gestureTouching                    // one or more active touches
)

// viewState is the mutable cross-event state owned exclusively by the
// gesture state machine.
type viewState struct {
	view      View
	mode      gestureMode
	prev      Point   // previous cursor offset or touch centroid
	pinchDist float64 // baseline two-touch distance; 0 when not pinching
}

// Engine owns the drawing surface, the view state, and the gesture state
// machine. All methods must be called from the Ebitengine update goroutine;
// the engine performs no locking.
type Engine struct {
	opts  Options
	state viewState

	surface *ebiten.Image
	size    Size
	bounds  Rect // surface position and size in client coordinates

	contextReady bool // OnContextInit already fired

	unsubs []func() // active Source subscriptions, released by Detach

	snapshots snapshotPool
	anim      *viewAnim

	screenshotQueue []string
	screenshotDir   string

	debug bool
}

// New creates an engine with the given options. The drawing surface does not
// exist yet: every state-mutating operation and Draw are silent no-ops until
// the first Resize call with a non-zero area.
func New(opts Options) *Engine {
	if opts.InitialScale == 0 {
		opts.InitialScale = 1
	}
	if opts.ZoomSensitivity == 0 {
		opts.ZoomSensitivity = defaultZoomSensitivity
	}
	return &Engine{
		opts: opts,
		state: viewState{
			view: View{Offset: opts.InitialPosition, Scale: opts.InitialScale},
		},
	}
}

// ready reports whether the drawing surface has been initialized.
func (e *Engine) ready() bool {
	return e.surface != nil
}

// View returns the current view.
func (e *Engine) View() View {
	return e.state.view
}

// ViewBox returns the logical rectangle currently visible, derived from the
// view by rounding. Returns the zero box before the surface is initialized.
func (e *Engine) ViewBox() ViewBox {
	if !e.ready() {
		return ViewBox{}
	}
	return viewToViewBox(e.size, e.state.view)
}

// Size returns the surface pixel dimensions.
func (e *Engine) Size() Size {
	return e.size
}

// Surface returns the engine-owned surface image, or nil before the first
// resize. The caller must not retain it across Resize calls.
func (e *Engine) Surface() *ebiten.Image {
	return e.surface
}

// SetView replaces the view wholesale, notifies listeners with ReasonSet,
// and redraws. No-op before the surface is initialized.
func (e *Engine) SetView(v View) {
	if !e.ready() {
		return
	}
	e.cancelAnim()
	e.state.view = v
	e.commit(ReasonSet)
}

// SetViewBox converts the box to a view (aspect-fit, centered), notifies
// listeners with ReasonSet, and redraws. Degenerate (zero-area) boxes are
// dropped; no-op before the surface is initialized.
func (e *Engine) SetViewBox(b ViewBox) {
	if !e.ready() || b.Empty() {
		return
	}
	e.cancelAnim()
	e.state.view = viewBoxToView(e.size, b)
	e.commit(ReasonSet)
}

// notify fires the view-changed and view-box-changed notifications for a
// completed mutation.
func (e *Engine) notify(reason ViewChangeReason) {
	if e.opts.OnViewChange != nil {
		e.opts.OnViewChange(e.state.view, reason)
	}
	if e.opts.OnViewBoxChange != nil {
		e.opts.OnViewBoxChange(viewToViewBox(e.size, e.state.view), reason)
	}
}

// commit notifies listeners, then redraws.
func (e *Engine) commit(reason ViewChangeReason) {
	e.notify(reason)
	e.Draw()
}

// Update advances time-based engine state (view animations). Call once per
// tick from the game loop; dt is in seconds.
func (e *Engine) Update(dt float64) {
	e.updateAnim(dt)
}

// Attach subscribes the gesture state machine to every event kind of the
// given source. The subscriptions stay active until Detach.
func (e *Engine) Attach(src Source) {
	kinds := []EventKind{
		EventPointerDown, EventPointerMove, EventPointerUp, EventPointerLeave,
		EventWheel, EventTouchStart, EventTouchMove, EventTouchEnd,
	}
	for _, kind := range kinds {
		e.unsubs = append(e.unsubs, src.Subscribe(kind, e.handleEvent))
	}
}

// Detach releases all subscriptions made by Attach. Safe to call repeatedly.
func (e *Engine) Detach() {
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil
}

// SetDebugMode enables or disables the debug overlay and stderr gesture
// logging.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}
