package vantage

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// logf prints a gesture/resize trace line to stderr when debug mode is on.
func (e *Engine) logf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[vantage] "+format+"\n", args...)
}

// drawDebugOverlay prints the current view state onto the surface after the
// caller's rendering. Only called when debug mode is on.
func (e *Engine) drawDebugOverlay() {
	v := e.state.view
	box := viewToViewBox(e.size, v)
	ebitenutil.DebugPrint(e.surface, fmt.Sprintf(
		"scale: %.3f\noffset: (%.1f, %.1f)\nbox: L%d R%d T%d B%d\nFPS: %.1f",
		v.Scale, v.Offset.X, v.Offset.Y,
		box.Left, box.Right, box.Top, box.Bottom,
		ebiten.ActualFPS(),
	))
}
