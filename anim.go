package vantage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewAnim holds the active view-transition tweens for offset and scale.
type viewAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenS *gween.Tween
	doneX  bool
	doneY  bool
	doneS  bool
}

// AnimateTo tweens the view to the given target over duration seconds. The
// target scale is clamped to the configured bounds up front, so the animated
// view never leaves them. Each animation frame runs through the normal
// notify-and-redraw pipeline with ReasonSet. Starting a gesture, SetView, or
// SetViewBox cancels the animation. No-op before the surface is initialized.
func (e *Engine) AnimateTo(target View, duration float32, easeFn ease.TweenFunc) {
	if !e.ready() {
		return
	}
	target.Scale = e.clampScale(target.Scale)
	cur := e.state.view
	e.anim = &viewAnim{
		tweenX: gween.New(float32(cur.Offset.X), float32(target.Offset.X), duration, easeFn),
		tweenY: gween.New(float32(cur.Offset.Y), float32(target.Offset.Y), duration, easeFn),
		tweenS: gween.New(float32(cur.Scale), float32(target.Scale), duration, easeFn),
	}
}

// AnimateToViewBox is AnimateTo with the target expressed as a view box
// (aspect-fit, centered). Degenerate boxes are dropped.
func (e *Engine) AnimateToViewBox(b ViewBox, duration float32, easeFn ease.TweenFunc) {
	if !e.ready() || b.Empty() {
		return
	}
	e.AnimateTo(viewBoxToView(e.size, b), duration, easeFn)
}

// Animating reports whether a view transition is in progress.
func (e *Engine) Animating() bool {
	return e.anim != nil
}

// updateAnim advances the active view transition. Called from Engine.Update.
// Held while the surface is uninitialized (a zero-size resize mid-animation):
// state mutation and notifications stay suspended until the surface returns.
func (e *Engine) updateAnim(dt float64) {
	a := e.anim
	if a == nil || !e.ready() {
		return
	}

	d := float32(dt)
	if !a.doneX {
		val, done := a.tweenX.Update(d)
		e.state.view.Offset.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(d)
		e.state.view.Offset.Y = float64(val)
		a.doneY = done
	}
	if !a.doneS {
		val, done := a.tweenS.Update(d)
		e.state.view.Scale = float64(val)
		a.doneS = done
	}
	if a.doneX && a.doneY && a.doneS {
		e.anim = nil
	}

	e.commit(ReasonSet)
}

// cancelAnim drops the active view transition, freezing the view where the
// last frame left it.
func (e *Engine) cancelAnim() {
	e.anim = nil
}
