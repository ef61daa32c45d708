package vantage

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Snapshot buffer pool ---

// snapshotPool manages reusable offscreen ebiten.Images keyed by
// power-of-two dimensions. Live window resizing produces a burst of Resize
// calls; after warmup, taking a raster snapshot is allocation-free.
type snapshotPool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two.
func (p *snapshotPool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool for reuse. The image is cleared on
// next Acquire, not here (avoids redundant GPU work if released then
// immediately re-acquired).
func (p *snapshotPool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}

// --- Resize handling ---

// Resize reacts to an external surface-size change: the observed content
// rectangle of the host window, or the monitor dimensions after a
// full-screen toggle (the run glue forwards both through Layout).
//
// The existing raster is snapshotted and blitted back onto the resized
// surface before the proper redraw, so the overlap region never flashes
// blank. The view is deliberately NOT rescaled: only the visible pixel
// window changes, never the zoom.
func (e *Engine) Resize(w, h int) {
	if w == e.size.Width && h == e.size.Height && e.surface != nil {
		return
	}

	var snap *ebiten.Image
	if e.surface != nil && !e.size.Empty() {
		snap = e.snapshots.Acquire(e.size.Width, e.size.Height)
		snap.DrawImage(e.surface, nil)
	}

	if e.surface != nil {
		e.surface.Deallocate()
		e.surface = nil
	}

	e.size = Size{Width: w, Height: h}
	e.bounds.Width = float64(w)
	e.bounds.Height = float64(h)

	if !e.size.Empty() {
		e.surface = ebiten.NewImage(w, h)
		if snap != nil {
			e.surface.DrawImage(snap, nil)
		}
		if !e.contextReady {
			e.contextReady = true
			if e.opts.OnContextInit != nil {
				ctx := DrawContext{Target: e.surface, View: e.state.view, Size: e.size}
				e.opts.OnContextInit(&ctx)
			}
		}
	}

	e.snapshots.Release(snap)
	e.logf("resize to %dx%d", w, h)
	e.Draw()
}

// SetBounds sets the surface's position within the client coordinate space.
// Pointer event coordinates are translated by this origin (cursorOffset);
// the size component tracks the surface automatically on Resize.
func (e *Engine) SetBounds(x, y float64) {
	e.bounds.X = x
	e.bounds.Y = y
}
