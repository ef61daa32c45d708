package vantage

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"
)

// Screenshot queues a labeled capture of the drawing surface. The PNG is
// written to the screenshot directory at the end of the next Draw pass,
// after the scene callback has rendered. Safe to call from any engine
// callback.
func (e *Engine) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// SetScreenshotDir overrides the output directory for Screenshot captures.
// Default: "screenshots".
func (e *Engine) SetScreenshotDir(dir string) {
	e.screenshotDir = dir
}

// flushScreenshots captures the surface for every queued label and writes
// each as a PNG file. Called at the end of Engine.Draw.
func (e *Engine) flushScreenshots() {
	if len(e.screenshotQueue) == 0 {
		return
	}

	dir := e.screenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[vantage] screenshot: mkdir %s: %v\n", dir, err)
		e.screenshotQueue = e.screenshotQueue[:0]
		return
	}

	w, h := e.size.Width, e.size.Height
	pixels := make([]byte, 4*w*h)
	e.surface.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}

	stamp := time.Now().Format("20060102_150405")

	for _, label := range e.screenshotQueue {
		safe := sanitizeLabel(label)
		path := fmt.Sprintf("%s/%s_%s.png", dir, stamp, safe)
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[vantage] screenshot: %v\n", err)
		}
	}

	e.screenshotQueue = e.screenshotQueue[:0]
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
