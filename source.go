package vantage

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Source delivers input events to subscribers. Subscribe returns an
// unsubscribe function; the engine's Detach calls every returned function,
// which is the only teardown mechanism.
type Source interface {
	Subscribe(kind EventKind, fn func(Event)) (unsubscribe func())
}

// --- Dispatcher ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

const eventKindCount = int(EventTouchEnd) + 1

// Dispatcher is a synchronous fan-out Source. Dispatch runs every handler
// subscribed to the event's kind, in subscription order, on the calling
// goroutine.
type Dispatcher struct {
	handlers [eventKindCount][]eventHandler
	nextID   uint32
}

// Subscribe registers fn for the given event kind and returns a function
// that removes the registration.
func (d *Dispatcher) Subscribe(kind EventKind, fn func(Event)) func() {
	d.nextID++
	id := d.nextID
	d.handlers[kind] = append(d.handlers[kind], eventHandler{id: id, fn: fn})
	return func() {
		d.handlers[kind] = removeEventHandler(d.handlers[kind], id)
	}
}

// Dispatch delivers the event to all handlers subscribed to its kind.
func (d *Dispatcher) Dispatch(ev Event) {
	for _, h := range d.handlers[ev.Kind] {
		h.fn(ev)
	}
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Ebitengine poller ---

// wheelDeltaPerTick converts Ebitengine wheel ticks (~1 per notch) into the
// pixel-style deltas the zoom sensitivity is calibrated for.
const wheelDeltaPerTick = 120.0

// Poller is a Source that reads Ebitengine's polled input state once per
// tick and synthesizes the event stream: mouse edges and moves on pointer
// events, wheel ticks on wheel events, and touch-set changes on touch
// events. Synthetic events queued with the Inject methods are delivered
// ahead of real input on the next Poll.
type Poller struct {
	Dispatcher

	bounds    Rect
	hasBounds bool

	prevCursor  Point
	leftDown    bool
	rightDown   bool
	inside      bool
	everPolled  bool
	prevTouches  []Touch
	touchIDs     []ebiten.TouchID
	prevTouchIDs []ebiten.TouchID

	injectQueue []Event
}

// SetBounds sets the surface rectangle in client coordinates, enabling
// pointer-leave detection when the cursor exits it. Without bounds the
// pointer never "leaves".
func (p *Poller) SetBounds(bounds Rect) {
	p.bounds = bounds
	p.hasBounds = true
}

// Poll reads the current input state and dispatches the resulting events.
// Call once per tick.
func (p *Poller) Poll() {
	// Injected events first, so scripted input wins over the real devices.
	// The queue is detached before dispatch: a handler may inject
	// re-entrantly, and appending into the drained backing array would
	// overwrite events still awaiting delivery. Re-entrant injections are
	// held for the next Poll.
	if len(p.injectQueue) > 0 {
		queue := p.injectQueue
		p.injectQueue = nil
		for _, ev := range queue {
			p.Dispatch(ev)
		}
	}

	p.pollMouse()
	p.pollWheel()
	p.pollTouches()
	p.everPolled = true
}

func (p *Poller) pollMouse() {
	mx, my := ebiten.CursorPosition()
	cur := Point{X: float64(mx), Y: float64(my)}

	inside := !p.hasBounds || p.bounds.Contains(cur.X, cur.Y)
	if p.everPolled && p.inside && !inside {
		p.Dispatch(Event{Kind: EventPointerLeave})
	}
	p.inside = inside

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if left && !p.leftDown {
		p.Dispatch(Event{Kind: EventPointerDown, Pointer: PointerEvent{X: cur.X, Y: cur.Y, Button: MouseButtonLeft}})
	} else if !left && p.leftDown {
		p.Dispatch(Event{Kind: EventPointerUp, Pointer: PointerEvent{X: cur.X, Y: cur.Y, Button: MouseButtonLeft}})
	}
	p.leftDown = left

	if right && !p.rightDown {
		p.Dispatch(Event{Kind: EventPointerDown, Pointer: PointerEvent{X: cur.X, Y: cur.Y, Button: MouseButtonRight}})
	}
	p.rightDown = right

	if p.everPolled && cur != p.prevCursor {
		p.Dispatch(Event{Kind: EventPointerMove, Pointer: PointerEvent{X: cur.X, Y: cur.Y, Button: MouseButtonLeft}})
	}
	p.prevCursor = cur
}

func (p *Poller) pollWheel() {
	_, yoff := ebiten.Wheel()
	if yoff == 0 {
		return
	}
	// Ebitengine reports positive ticks for scroll-up; the engine expects
	// positive DeltaY for zoom-out (scroll-down), so the sign flips.
	p.Dispatch(Event{Kind: EventWheel, Wheel: WheelEvent{
		X:      p.prevCursor.X,
		Y:      p.prevCursor.Y,
		DeltaY: -yoff * wheelDeltaPerTick,
	}})
}

func (p *Poller) pollTouches() {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	touches := make([]Touch, 0, len(p.touchIDs))
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		touches = append(touches, Touch{X: float64(tx), Y: float64(ty)})
	}

	prev := len(p.prevTouches)
	cur := len(touches)
	switch {
	case cur > prev:
		p.Dispatch(Event{Kind: EventTouchStart, Touch: TouchEvent{Touches: touches}})
	case cur < prev:
		p.Dispatch(Event{Kind: EventTouchEnd, Touch: TouchEvent{Touches: touches}})
	case cur > 0 && !touchIDsEqual(p.prevTouchIDs, p.touchIDs):
		// One finger lifted as another landed within a single tick. The
		// count is unchanged but the positions belong to different fingers,
		// so a move event would pan by the identity jump. Re-baseline
		// instead, as a fresh touch start.
		p.Dispatch(Event{Kind: EventTouchStart, Touch: TouchEvent{Touches: touches}})
	case cur > 0 && touchesMoved(p.prevTouches, touches):
		p.Dispatch(Event{Kind: EventTouchMove, Touch: TouchEvent{Touches: touches}})
	}
	p.prevTouches = touches
	p.prevTouchIDs = append(p.prevTouchIDs[:0], p.touchIDs...)
}

func touchIDsEqual(a, b []ebiten.TouchID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func touchesMoved(prev, cur []Touch) bool {
	for i := range cur {
		if cur[i] != prev[i] {
			return true
		}
	}
	return false
}

// --- Synthetic event injection ---

// InjectPress queues a left-button press at the given client coordinates.
func (p *Poller) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, Event{
		Kind:    EventPointerDown,
		Pointer: PointerEvent{X: x, Y: y, Button: MouseButtonLeft},
	})
}

// InjectMove queues a pointer move to the given client coordinates.
func (p *Poller) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, Event{
		Kind:    EventPointerMove,
		Pointer: PointerEvent{X: x, Y: y, Button: MouseButtonLeft},
	})
}

// InjectRelease queues a left-button release at the given client coordinates.
func (p *Poller) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, Event{
		Kind:    EventPointerUp,
		Pointer: PointerEvent{X: x, Y: y, Button: MouseButtonLeft},
	})
}

// InjectDrag queues a full left-button drag from (fromX, fromY) to
// (toX, toY) as press, interpolated moves, release. frames is the total
// event count, minimum 2 (press and release only).
func (p *Poller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	// The last move lands exactly on the destination; the release does not
	// pan, so the moves must cover the full distance.
	for i := 1; i <= frames-2; i++ {
		t := float64(i) / float64(frames-2)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event at the given client coordinates.
func (p *Poller) InjectWheel(x, y, deltaY float64) {
	p.injectQueue = append(p.injectQueue, Event{
		Kind:  EventWheel,
		Wheel: WheelEvent{X: x, Y: y, DeltaY: deltaY},
	})
}

// InjectTouches queues a touch event of the given kind with the given touch
// set. kind must be one of EventTouchStart, EventTouchMove, EventTouchEnd.
func (p *Poller) InjectTouches(kind EventKind, touches []Touch) {
	p.injectQueue = append(p.injectQueue, Event{
		Kind:  kind,
		Touch: TouchEvent{Touches: touches},
	})
}
