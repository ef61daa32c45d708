package vantage

import "math"

// minZoomStep floors the wheel zoom factor so a single oversized wheel delta
// (|deltaY| >= sensitivity) cannot collapse the scale to zero or flip its
// sign.
const minZoomStep = 0.01

// handleEvent routes a subscribed event to the matching handler.
func (e *Engine) handleEvent(ev Event) {
	switch ev.Kind {
	case EventPointerDown:
		e.PointerDown(ev.Pointer)
	case EventPointerMove:
		e.PointerMove(ev.Pointer)
	case EventPointerUp:
		e.PointerUp(ev.Pointer)
	case EventPointerLeave:
		e.PointerLeave()
	case EventWheel:
		e.Wheel(ev.Wheel)
	case EventTouchStart:
		e.TouchStart(ev.Touch)
	case EventTouchMove:
		e.TouchMove(ev.Touch)
	case EventTouchEnd:
		e.TouchEnd(ev.Touch)
	}
}

// PointerDown starts a mouse drag, or fires the right-click callback with
// the logical point under the cursor.
func (e *Engine) PointerDown(ev PointerEvent) {
	if !e.ready() {
		return
	}
	pos := cursorOffset(ev.X, ev.Y, e.bounds)

	if ev.Button == MouseButtonRight {
		if e.opts.OnRightClick != nil {
			e.opts.OnRightClick(logicalAt(e.state.view, pos))
		}
		return
	}

	e.cancelAnim()
	e.state.mode = gestureDragging
	e.state.prev = pos
	e.logf("drag start at (%.1f, %.1f)", pos.X, pos.Y)
}

// PointerMove pans the view while a drag is active. The surface-pixel delta
// is converted to a logical delta at the current scale, so dragging d pixels
// at scale s moves the offset by d/s.
func (e *Engine) PointerMove(ev PointerEvent) {
	if !e.ready() || e.state.mode != gestureDragging {
		return
	}
	pos := cursorOffset(ev.X, ev.Y, e.bounds)
	delta := pos.Sub(e.state.prev).Div(e.state.view.Scale)
	e.state.view.Offset = e.state.view.Offset.Add(delta)
	e.state.prev = pos
	e.commit(ReasonMove)
}

// PointerUp ends a mouse drag.
func (e *Engine) PointerUp(PointerEvent) {
	if e.state.mode == gestureDragging {
		e.state.mode = gestureIdle
		e.logf("drag end")
	}
}

// PointerLeave ends a mouse drag when the pointer leaves the surface.
func (e *Engine) PointerLeave() {
	if e.state.mode == gestureDragging {
		e.state.mode = gestureIdle
		e.logf("drag end (pointer left surface)")
	}
}

// Wheel zooms toward the cursor. The factor is derived from the wheel delta
// and the configured sensitivity; positive DeltaY zooms out, negative in.
// Zooming never changes which logical point sits under the cursor.
func (e *Engine) Wheel(ev WheelEvent) {
	if !e.ready() {
		return
	}
	e.cancelAnim()

	factor := 1 - math.Abs(ev.DeltaY)/e.opts.ZoomSensitivity
	if factor < minZoomStep {
		factor = minZoomStep
	}

	target := e.state.view.Scale
	if ev.DeltaY > 0 {
		target *= factor
	} else {
		target /= factor
	}

	pos := cursorOffset(ev.X, ev.Y, e.bounds)
	e.zoomAt(pos, target)
	e.commit(ReasonZoom)
}

// TouchStart enters the touching state and records the gesture baseline:
// the centroid for panning and, with two touches, their distance for
// pinch zoom.
func (e *Engine) TouchStart(ev TouchEvent) {
	if !e.ready() || len(ev.Touches) == 0 {
		return
	}
	e.cancelAnim()
	e.state.mode = gestureTouching
	e.state.prev = touchCentroid(ev.Touches)
	e.state.pinchDist = 0
	if len(ev.Touches) >= 2 {
		e.state.pinchDist = touchDistance(ev.Touches[0], ev.Touches[1])
	}
	e.logf("touch start (%d touches)", len(ev.Touches))
}

// TouchMove pans by the centroid delta, then applies pinch zoom when two
// touches are active. The pan must be applied before the zoom: reversing the
// order changes the anchor point the zoom preserves.
func (e *Engine) TouchMove(ev TouchEvent) {
	if !e.ready() || e.state.mode != gestureTouching || len(ev.Touches) == 0 {
		return
	}

	pos := touchCentroid(ev.Touches)
	delta := pos.Sub(e.state.prev).Div(e.state.view.Scale)
	e.state.view.Offset = e.state.view.Offset.Add(delta)
	e.state.prev = pos
	e.notify(ReasonMove)

	if len(ev.Touches) >= 2 && e.state.pinchDist > 0 {
		dist := touchDistance(ev.Touches[0], ev.Touches[1])
		e.zoomAt(pos, e.state.view.Scale*dist/e.state.pinchDist)
		e.state.pinchDist = dist
		e.notify(ReasonZoom)
	}

	e.Draw()
}

// TouchEnd re-baselines the gesture from the touches that remain, exactly as
// a fresh touch start would. Only when no touches remain does the state
// machine return to idle.
func (e *Engine) TouchEnd(ev TouchEvent) {
	if e.state.mode != gestureTouching {
		return
	}
	if len(ev.Touches) == 0 {
		e.state.mode = gestureIdle
		e.state.pinchDist = 0
		e.logf("touch end")
		return
	}
	e.TouchStart(ev)
}

// zoomAt commits a zoom to the clamped target scale while keeping the
// logical point under pos (in surface pixels) visually fixed:
//
//	offset' = offset - (pos/scale - pos/clamped)
func (e *Engine) zoomAt(pos Point, target float64) {
	clamped := e.clampScale(target)
	old := e.state.view.Scale
	e.state.view.Offset = e.state.view.Offset.Sub(pos.Div(old).Sub(pos.Div(clamped)))
	e.state.view.Scale = clamped
}

// clampScale applies the configured zoom bounds. An unset (zero) bound never
// constrains.
func (e *Engine) clampScale(target float64) float64 {
	if e.opts.MaxScale > 0 && target > e.opts.MaxScale {
		target = e.opts.MaxScale
	}
	if e.opts.MinScale > 0 && target < e.opts.MinScale {
		target = e.opts.MinScale
	}
	return target
}
