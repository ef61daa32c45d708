package vantage

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// cursorOffset converts a pointer position in client coordinates to
// surface-local pixel coordinates by subtracting the surface's top-left
// position.
func cursorOffset(x, y float64, bounds Rect) Point {
	return Point{X: x - bounds.X, Y: y - bounds.Y}
}

// viewToViewBox derives the integer logical rectangle visible through the
// given view on a surface of the given pixel size.
func viewToViewBox(size Size, v View) ViewBox {
	w := float64(size.Width)
	h := float64(size.Height)
	return ViewBox{
		Top:    int(math.Round(-v.Offset.Y)),
		Bottom: int(math.Round(-v.Offset.Y + h/v.Scale)),
		Left:   int(math.Round(-v.Offset.X)),
		Right:  int(math.Round(-v.Offset.X + w/v.Scale)),
	}
}

// viewBoxToView fits the box into the surface preserving aspect ratio, then
// centers it. The box must have positive area: a zero-width or zero-height
// box produces an infinite scale. Callers guard against degenerate boxes
// before calling (Engine.SetViewBox drops them).
func viewBoxToView(size Size, b ViewBox) View {
	bw := float64(b.Width())
	bh := float64(b.Height())
	w := float64(size.Width)
	h := float64(size.Height)

	scale := math.Min(w/bw, h/bh)
	return View{
		Scale: scale,
		Offset: Point{
			X: -(float64(b.Left) + bw/2 - w/(2*scale)),
			Y: -(float64(b.Top) + bh/2 - h/(2*scale)),
		},
	}
}

// touchDistance returns the Euclidean distance between two touch points.
func touchDistance(a, b Touch) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// touchCentroid averages up to the first two touch points: with one touch the
// centroid is that touch, with two it is their midpoint. Returns the zero
// point for an empty slice.
func touchCentroid(touches []Touch) Point {
	switch len(touches) {
	case 0:
		return Point{}
	case 1:
		return Point{X: touches[0].X, Y: touches[0].Y}
	default:
		return Point{
			X: (touches[0].X + touches[1].X) / 2,
			Y: (touches[0].Y + touches[1].Y) / 2,
		}
	}
}

// viewGeoM builds the drawing-context transform for a view. Scale is applied
// first so that the translation is expressed in logical units:
//
//	surface pixel = Scale * (logical + Offset)
func viewGeoM(v View) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(v.Offset.X, v.Offset.Y)
	g.Scale(v.Scale, v.Scale)
	return g
}

// logicalAt inverts the view transform for a single surface-pixel point,
// yielding the logical-plane point currently displayed there.
func logicalAt(v View, p Point) Point {
	return p.Div(v.Scale).Sub(v.Offset)
}
