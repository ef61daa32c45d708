// Package vantage turns a fixed-size drawing surface into a pannable,
// zoomable window onto an unbounded logical 2D plane, built on [Ebitengine].
//
// The engine owns the coordinate math and the gesture handling (mouse drag,
// wheel zoom toward the cursor, and one- or two-finger touch gestures with
// pinch zoom) and tells the caller where to look. What to draw stays
// entirely with the caller: an OnDraw callback receives a [DrawContext]
// whose GeoM maps logical coordinates to surface pixels.
//
// # Quick start
//
//	engine := vantage.New(vantage.Options{
//		MinScale: 0.1,
//		MaxScale: 8,
//		OnDraw: func(ctx *vantage.DrawContext) {
//			op := ctx.Op() // GeoM pre-loaded with the view transform
//			ctx.Target.DrawImage(worldImage, op)
//		},
//	})
//	if err := vantage.Run(engine, vantage.RunConfig{
//		Title: "My Canvas", Width: 800, Height: 600,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself: create a [Poller],
// call [Engine.Attach], forward Layout size changes to [Engine.Resize], call
// [Poller.Poll] and [Engine.Update] each tick, and blit [Engine.Surface]
// in Draw.
//
// # View and view box
//
// The visible region is exposed in two interchangeable forms. The [View] is
// the system of record: an offset plus a uniform scale, with
// surface pixel = Scale * (logical + Offset). The [ViewBox] is the derived
// integer rectangle of the logical plane currently visible. [Engine.SetView]
// replaces the transform wholesale; [Engine.SetViewBox] aspect-fits and
// centers a logical rectangle. Both notify the OnViewChange and
// OnViewBoxChange callbacks and redraw.
//
// Zooming, whether by wheel or pinch, preserves its anchor: the logical point
// under the cursor or touch centroid stays visually fixed while the scale
// changes, clamped to the configured MinScale/MaxScale bounds.
//
// Resizing the surface keeps the view: only the visible pixel window
// changes, and the previous raster is blitted back during the resize so the
// window never flashes blank.
//
// [Ebitengine]: https://ebitengine.org
package vantage
