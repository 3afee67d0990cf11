// Package mouseinput issues synthetic mouse clicks via SendInput, the
// Win32 equivalent of the original implementation's winput crate.
// Movement is relative, mirroring the original's click(dx, dy) helper:
// the caller tracks the cursor's last known position and passes the
// delta to the next target.
package mouseinput

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSendInput = user32.NewProc("SendInput")
)

const (
	inputMouse = 0

	mouseEventMoveRaw = 0x0001
	mouseEventLeftUp  = 0x0004
	mouseEventLeftDn  = 0x0002
)

type mouseInput struct {
	dx, dy      int32
	mouseData   uint32
	flags       uint32
	time        uint32
	extraInfo   uintptr
}

type input struct {
	inputType uint32
	// padding brings this up to the union's largest member (MOUSEINPUT)
	// on 64-bit Windows.
	mi      mouseInput
	_padding [8]byte
}

func sendMouseInput(dx, dy int32, flags uint32) {
	in := input{
		inputType: inputMouse,
		mi:        mouseInput{dx: dx, dy: dy, flags: flags},
	}
	procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
}

// Click moves the cursor by (dx, dy) relative to its current position,
// then presses and releases the left button, pacing each step the
// same way the original implementation did to let the game register
// the click reliably.
func Click(dx, dy int32) {
	sendMouseInput(dx, dy, mouseEventMoveRaw)
	time.Sleep(300 * time.Millisecond)

	sendMouseInput(0, 0, mouseEventLeftDn)
	time.Sleep(30 * time.Millisecond)

	sendMouseInput(0, 0, mouseEventLeftUp)
	time.Sleep(200 * time.Millisecond)
}
