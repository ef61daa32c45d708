package vantage

import (
	"image/color"
	"testing"
)

func TestResizeKeepsView(t *testing.T) {
	e := newTestEngine(t, Options{}, 400, 400)

	target := View{Offset: Point{X: -75, Y: 30}, Scale: 1.5}
	e.SetView(target)

	// Scribble so the pre-resize raster is non-empty.
	e.Surface().Fill(color.White)

	e.Resize(800, 400)

	if e.View() != target {
		t.Errorf("view after resize = %+v, want %+v (resize must not touch the view)", e.View(), target)
	}
	if e.Size() != (Size{Width: 800, Height: 400}) {
		t.Errorf("size = %v, want 800x400", e.Size())
	}
}

func TestResizeGrowsViewBoxOnly(t *testing.T) {
	e := newTestEngine(t, Options{}, 400, 400)

	before := e.ViewBox()
	e.Resize(800, 400)
	after := e.ViewBox()

	if after.Top != before.Top || after.Left != before.Left || after.Bottom != before.Bottom {
		t.Errorf("view box anchor moved: %v -> %v", before, after)
	}
	if after.Width() != 2*before.Width() {
		t.Errorf("view box width = %d, want %d (doubled pixel window at scale 1)", after.Width(), 2*before.Width())
	}
}

func TestResizeSameSizeIsNoOp(t *testing.T) {
	draws := 0
	e := newTestEngine(t, Options{OnDraw: func(*DrawContext) { draws++ }}, 400, 300)

	surf := e.Surface()
	before := draws
	e.Resize(400, 300)

	if e.Surface() != surf {
		t.Error("surface reallocated on same-size resize")
	}
	if draws != before {
		t.Error("redundant draw on same-size resize")
	}
}

func TestResizeToZeroDisablesDrawing(t *testing.T) {
	e := newTestEngine(t, Options{}, 400, 300)

	e.Resize(0, 0)
	if e.ready() {
		t.Error("surface still allocated after zero-size resize")
	}

	// Setters go back to being no-ops.
	e.SetView(View{Offset: Point{X: 5, Y: 5}, Scale: 2})
	if e.View().Scale != 1 {
		t.Error("SetView mutated view while surface was gone")
	}

	// Growing again restores drawing without re-firing context init.
	e.Resize(200, 200)
	if !e.ready() {
		t.Error("surface not restored after growing from zero")
	}
}

func TestContextInitFiresExactlyOnce(t *testing.T) {
	inits := 0
	e := New(Options{OnContextInit: func(*DrawContext) { inits++ }})

	e.Resize(100, 100)
	e.Resize(300, 200)
	e.Resize(0, 0)
	e.Resize(300, 200)

	if inits != 1 {
		t.Errorf("OnContextInit fired %d times, want 1", inits)
	}
}

// --- Snapshot pool ---

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{255, 256}, {256, 256}, {257, 512}, {1000, 1024},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSnapshotPoolReuse(t *testing.T) {
	var pool snapshotPool

	img := pool.Acquire(300, 200)
	b := img.Bounds()
	if b.Dx() != 512 || b.Dy() != 256 {
		t.Errorf("acquired %dx%d, want 512x256 (next power of two)", b.Dx(), b.Dy())
	}

	pool.Release(img)
	again := pool.Acquire(280, 190)
	if again != img {
		t.Error("pool did not reuse the released buffer for a same-bucket request")
	}

	// A different bucket allocates fresh.
	other := pool.Acquire(600, 600)
	if other == img {
		t.Error("pool returned a buffer from the wrong bucket")
	}
}

func TestSnapshotPoolReleaseNil(t *testing.T) {
	var pool snapshotPool
	pool.Release(nil) // must not panic
}
