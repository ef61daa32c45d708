package vantage

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func pointsClose(a, b Point, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: -2}
	q := Point{X: 1, Y: 5}

	if got := p.Add(q); got != (Point{X: 4, Y: 3}) {
		t.Errorf("Add = %v, want {4 3}", got)
	}
	if got := p.Sub(q); got != (Point{X: 2, Y: -7}) {
		t.Errorf("Sub = %v, want {2 -7}", got)
	}
	if got := p.Div(2); got != (Point{X: 1.5, Y: -1}) {
		t.Errorf("Div = %v, want {1.5 -1}", got)
	}
}

func TestCursorOffset(t *testing.T) {
	bounds := Rect{X: 20, Y: 30, Width: 800, Height: 600}
	got := cursorOffset(120, 130, bounds)
	if got != (Point{X: 100, Y: 100}) {
		t.Errorf("cursorOffset = %v, want {100 100}", got)
	}
}

func TestViewToViewBox(t *testing.T) {
	size := Size{Width: 800, Height: 600}

	tests := []struct {
		name string
		view View
		want ViewBox
	}{
		{
			"identity",
			View{Scale: 1},
			ViewBox{Top: 0, Bottom: 600, Left: 0, Right: 800},
		},
		{
			"offset",
			View{Offset: Point{X: -100, Y: 50}, Scale: 1},
			ViewBox{Top: -50, Bottom: 550, Left: 100, Right: 900},
		},
		{
			"zoomed in",
			View{Scale: 2},
			ViewBox{Top: 0, Bottom: 300, Left: 0, Right: 400},
		},
		{
			"zoomed out with offset",
			View{Offset: Point{X: 10, Y: 20}, Scale: 0.5},
			ViewBox{Top: -20, Bottom: 1180, Left: -10, Right: 1590},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := viewToViewBox(size, tt.view); got != tt.want {
				t.Errorf("viewToViewBox(%v) = %v, want %v", tt.view, got, tt.want)
			}
		})
	}
}

func TestViewBoxToView_AspectFit(t *testing.T) {
	size := Size{Width: 800, Height: 600}

	// A wide box: width is the limiting dimension.
	b := ViewBox{Left: 0, Right: 400, Top: 0, Bottom: 100}
	v := viewBoxToView(size, b)
	if !approxEqual(v.Scale, 2, epsilon) {
		t.Errorf("scale = %f, want 2 (800/400)", v.Scale)
	}
	// Box center (200, 50) should land at the surface center (400, 300):
	// pixel = scale * (logical + offset).
	cx := v.Scale * (200 + v.Offset.X)
	cy := v.Scale * (50 + v.Offset.Y)
	if !approxEqual(cx, 400, epsilon) || !approxEqual(cy, 300, epsilon) {
		t.Errorf("box center maps to (%f, %f), want (400, 300)", cx, cy)
	}

	// A tall box: height limits.
	b = ViewBox{Left: 0, Right: 100, Top: 0, Bottom: 1200}
	v = viewBoxToView(size, b)
	if !approxEqual(v.Scale, 0.5, epsilon) {
		t.Errorf("scale = %f, want 0.5 (600/1200)", v.Scale)
	}
}

func TestViewBoxRoundTrip(t *testing.T) {
	size := Size{Width: 800, Height: 600}

	views := []View{
		{Scale: 1},
		{Offset: Point{X: 40, Y: -25}, Scale: 1},
		{Offset: Point{X: -300, Y: 120}, Scale: 2},
		{Offset: Point{X: 7, Y: 13}, Scale: 0.25},
		{Offset: Point{X: 1000, Y: -1000}, Scale: 4},
	}
	for _, v := range views {
		box := viewToViewBox(size, v)
		back := viewBoxToView(size, box)

		// Rounding to integers perturbs the box edges by at most 0.5 logical
		// units, so the reconstructed scale and offset must agree within the
		// tolerance that rounding allows.
		tol := 1.0 / v.Scale
		if !approxEqual(back.Scale, v.Scale, v.Scale*tol) {
			t.Errorf("view %v: round-trip scale = %f, want ~%f", v, back.Scale, v.Scale)
		}
		if !approxEqual(back.Offset.X, v.Offset.X, 1+tol) || !approxEqual(back.Offset.Y, v.Offset.Y, 1+tol) {
			t.Errorf("view %v: round-trip offset = %v, want ~%v", v, back.Offset, v.Offset)
		}
	}
}

func TestTouchDistance(t *testing.T) {
	a := Touch{X: 0, Y: 0}
	b := Touch{X: 3, Y: 4}
	if d := touchDistance(a, b); !approxEqual(d, 5, epsilon) {
		t.Errorf("touchDistance = %f, want 5", d)
	}
	// Symmetry.
	if touchDistance(a, b) != touchDistance(b, a) {
		t.Error("touchDistance is not symmetric")
	}
	if d := touchDistance(a, a); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}
}

func TestTouchCentroid(t *testing.T) {
	tests := []struct {
		name    string
		touches []Touch
		want    Point
	}{
		{"empty", nil, Point{}},
		{"single equals the touch", []Touch{{X: 10, Y: 20}}, Point{X: 10, Y: 20}},
		{"two is the midpoint", []Touch{{X: 0, Y: 0}, {X: 100, Y: 50}}, Point{X: 50, Y: 25}},
		{"extra touches ignored", []Touch{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 999, Y: 999}}, Point{X: 50, Y: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := touchCentroid(tt.touches); got != tt.want {
				t.Errorf("touchCentroid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewGeoM(t *testing.T) {
	v := View{Offset: Point{X: 10, Y: -5}, Scale: 2}
	g := viewGeoM(v)

	// pixel = scale * (logical + offset)
	sx, sy := g.Apply(100, 50)
	if !approxEqual(sx, 220, epsilon) || !approxEqual(sy, 90, epsilon) {
		t.Errorf("Apply(100, 50) = (%f, %f), want (220, 90)", sx, sy)
	}
}

func TestLogicalAt_InvertsViewGeoM(t *testing.T) {
	v := View{Offset: Point{X: -33, Y: 7}, Scale: 1.5}
	g := viewGeoM(v)

	logical := Point{X: 12, Y: -90}
	sx, sy := g.Apply(logical.X, logical.Y)
	back := logicalAt(v, Point{X: sx, Y: sy})
	if !pointsClose(back, logical, 1e-6) {
		t.Errorf("logicalAt round-trip = %v, want %v", back, logical)
	}
}

func TestViewBoxDimensions(t *testing.T) {
	b := ViewBox{Left: -10, Right: 30, Top: 5, Bottom: 25}
	if b.Width() != 40 || b.Height() != 20 {
		t.Errorf("dimensions = %dx%d, want 40x20", b.Width(), b.Height())
	}
	if b.Empty() {
		t.Error("non-degenerate box reported empty")
	}
	if !(ViewBox{Left: 5, Right: 5, Top: 0, Bottom: 10}).Empty() {
		t.Error("zero-width box not reported empty")
	}
}

func BenchmarkViewToViewBox(b *testing.B) {
	size := Size{Width: 1920, Height: 1080}
	v := View{Offset: Point{X: 123.4, Y: -567.8}, Scale: 1.75}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = viewToViewBox(size, v)
	}
}
