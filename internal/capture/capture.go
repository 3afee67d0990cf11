// Package capture is the fallback bitmap source when the clipboard
// has nothing usable: it grabs the display under the cursor directly,
// adapted from the teacher's screenshot package but returning a
// bitmap.Bitmap instead of a base64-encoded PNG.
package capture

import (
	"fmt"
	"math"

	"github.com/kbinani/screenshot"

	"github.com/corvid-tools/breachcore/internal/bitmap"
)

// ActiveDisplay captures the display the cursor is currently on.
func ActiveDisplay() (bitmap.Bitmap, error) {
	idx := monitorAtCursor()
	bounds := screenshot.GetDisplayBounds(idx)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return bitmap.Bitmap{}, fmt.Errorf("capture: display %d: %w", idx, err)
	}
	return bitmap.FromImage(img), nil
}

// VirtualScreen captures the full virtual desktop spanning every
// attached monitor.
func VirtualScreen() (bitmap.Bitmap, error) {
	x, y, w, h := virtualScreenBounds()
	img, err := screenshot.Capture(x, y, w, h)
	if err != nil {
		return bitmap.Bitmap{}, fmt.Errorf("capture: virtual screen: %w", err)
	}
	return bitmap.FromImage(img), nil
}

func virtualScreenBounds() (x, y, w, h int) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return 0, 0, 1920, 1080
	}

	minX, minY := math.MaxInt32, math.MaxInt32
	maxX, maxY := math.MinInt32, math.MinInt32
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		if b.Min.X < minX {
			minX = b.Min.X
		}
		if b.Min.Y < minY {
			minY = b.Min.Y
		}
		if b.Max.X > maxX {
			maxX = b.Max.X
		}
		if b.Max.Y > maxY {
			maxY = b.Max.Y
		}
	}
	return minX, minY, maxX - minX, maxY - minY
}
