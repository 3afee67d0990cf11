// Package hotkey installs a low-level keyboard hook for the
// screenshot trigger key, the same WH_KEYBOARD_LL hook the original
// implementation used, wrapped in the teacher's
// NewLazySystemDLL/NewProc DLL-calling idiom instead of cgo bindings.
package hotkey

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetWindowsHookExA  = user32.NewProc("SetWindowsHookExA")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx     = user32.NewProc("CallNextHookEx")
	procGetMessageA        = user32.NewProc("GetMessageA")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageA   = user32.NewProc("DispatchMessageA")
)

const (
	whKeyboardLL = 13
	hcAction     = 0
	wmKeyUp      = 0x0101

	// VKSnapshot is the virtual key code for PrintScreen — the default
	// screenshot trigger.
	VKSnapshot = 0x2C
)

// kbdllHookStruct mirrors the Windows KBDLLHOOKSTRUCT layout.
type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// Listener drives the low-level keyboard hook's message loop, calling
// onKey every time vkCode is released.
type Listener struct {
	vkCode uint32
	onKey  func()
	hook   uintptr
}

// NewListener builds a Listener for the given virtual key code. onKey
// runs synchronously inside the hook callback on key-up; callers that
// need to do real work (screenshot + solve) should spawn their own
// goroutine and return quickly, the same way the original hook spawned
// a worker thread per keypress.
func NewListener(vkCode uint32, onKey func()) *Listener {
	return &Listener{vkCode: vkCode, onKey: onKey}
}

var active *Listener

// Run installs the hook and pumps the message loop until the process
// is asked to exit. It never returns under normal operation.
func (l *Listener) Run() error {
	active = l
	hook, _, err := procSetWindowsHookExA.Call(
		uintptr(whKeyboardLL),
		windows.NewCallback(hookProc),
		0,
		0,
	)
	if hook == 0 {
		return err
	}
	l.hook = hook
	defer procUnhookWindowsHookEx.Call(l.hook)

	var m msg
	for {
		ret, _, _ := procGetMessageA.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 {
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageA.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func hookProc(code int32, wParam uintptr, lParam uintptr) uintptr {
	if active != nil && code == hcAction && wParam == wmKeyUp {
		info := (*kbdllHookStruct)(unsafe.Pointer(lParam))
		if info.VkCode == active.vkCode {
			active.onKey()
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}
