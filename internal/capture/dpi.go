package capture

import "golang.org/x/sys/windows"

var (
	user32DPI = windows.NewLazySystemDLL("user32.dll")
	shcore    = windows.NewLazySystemDLL("shcore.dll")

	procSetProcessDPIAware     = user32DPI.NewProc("SetProcessDPIAware")
	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
)

const processPerMonitorDPIAware = 2

func init() {
	// Geometry's pixel-exact area search depends on screen coordinates
	// matching actual pixels, not DPI-virtualized ones. Try per-monitor
	// awareness first (Windows 8.1+), falling back to basic awareness.
	if shcore.Load() == nil && procSetProcessDpiAwareness.Find() == nil {
		procSetProcessDpiAwareness.Call(uintptr(processPerMonitorDPIAware))
	} else {
		procSetProcessDPIAware.Call()
	}
}
