package capture

import (
	"image"
	"unsafe"

	"github.com/kbinani/screenshot"
	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

type point struct {
	X, Y int32
}

// monitorAtCursor returns the index of the display currently under
// the mouse cursor, falling back to the primary display (0) if the
// cursor position can't be read or falls outside every display.
func monitorAtCursor() int {
	var p point
	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return 0
	}

	n := screenshot.NumActiveDisplays()
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		if (image.Point{X: int(p.X), Y: int(p.Y)}).In(b) {
			return i
		}
	}
	return 0
}
