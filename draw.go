package vantage

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawContext is handed to the draw callbacks. Before the view transform is
// applied (OnContextInit, OnBeforeDraw) GeoM is the identity; during OnDraw
// it maps logical-plane coordinates to surface pixels.
type DrawContext struct {
	// Target is the engine-owned drawing surface.
	Target *ebiten.Image
	// GeoM is the current coordinate transform. Pass it (or a copy composed
	// with further transforms) to DrawImageOptions / DrawTrianglesOptions.
	GeoM ebiten.GeoM
	// View is the view the transform was built from.
	View View
	// Size is the surface pixel size.
	Size Size
}

// Op returns draw options pre-loaded with the context transform, ready for
// Target.DrawImage.
func (c *DrawContext) Op() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = c.GeoM
	return op
}

// Draw re-renders the surface from the current view. The sequence is fixed:
// reset the transform, run OnBeforeDraw, apply the view transform (scale
// first, so the translation is in logical units), clear the visible region,
// run OnDraw. No-op while the surface is uninitialized or has zero area.
func (e *Engine) Draw() {
	if !e.ready() || e.size.Empty() {
		return
	}

	ctx := DrawContext{Target: e.surface, View: e.state.view, Size: e.size}

	if e.opts.OnBeforeDraw != nil {
		e.opts.OnBeforeDraw(&ctx)
	}

	ctx.GeoM = viewGeoM(e.state.view)

	// Clear the visible logical rectangle, extent dimension/scale at the
	// negated offset. Under the view transform that region maps exactly onto
	// the full surface raster, so no stale pixels survive a pan.
	e.surface.Clear()

	if e.opts.OnDraw != nil {
		e.opts.OnDraw(&ctx)
	}

	if e.debug {
		e.drawDebugOverlay()
	}

	e.flushScreenshots()
}
