// Package clipboard reads a bitmap straight out of the Windows clipboard
// CF_DIB format. It is the hotkey path's bitmap source: after the
// screenshot key is released, the OS has already put a DIB on the
// clipboard and this package turns it into an internal/bitmap.Bitmap
// without an intermediate PNG encode.
package clipboard

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/corvid-tools/breachcore/internal/bitmap"
	"github.com/corvid-tools/breachcore/internal/mask"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard              = user32.NewProc("CloseClipboard")
	procGetClipboardData           = user32.NewProc("GetClipboardData")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")

	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

const (
	cfDIB = 8

	// maxClipboardSize bounds how much clipboard memory we'll read, so a
	// hostile or corrupt clipboard payload can't force an unbounded copy.
	maxClipboardSize = 100 * 1024 * 1024
)

// bitmapInfoHeader mirrors the Windows BITMAPINFOHEADER layout.
type bitmapInfoHeader struct {
	biSize          uint32
	biWidth         int32
	biHeight        int32
	biPlanes        uint16
	biBitCount      uint16
	biCompression   uint32
	biSizeImage     uint32
	biXPelsPerMeter int32
	biYPelsPerMeter int32
	biClrUsed       uint32
	biClrImportant  uint32
}

// ErrNoImageInClipboard is returned when the clipboard has no DIB data.
var ErrNoImageInClipboard = errors.New("clipboard: no image data available")

// ReadBitmap reads the current clipboard contents as a bitmap.Bitmap.
func ReadBitmap() (bitmap.Bitmap, error) {
	// OpenClipboard/CloseClipboard must run on the same OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	available, _, _ := procIsClipboardFormatAvailable.Call(uintptr(cfDIB))
	if available == 0 {
		return bitmap.Bitmap{}, ErrNoImageInClipboard
	}

	ret, _, _ := procOpenClipboard.Call(0)
	if ret == 0 {
		return bitmap.Bitmap{}, errors.New("clipboard: failed to open clipboard")
	}
	defer procCloseClipboard.Call()

	hData, _, _ := procGetClipboardData.Call(uintptr(cfDIB))
	if hData == 0 {
		return bitmap.Bitmap{}, ErrNoImageInClipboard
	}

	ptr, _, _ := procGlobalLock.Call(hData)
	if ptr == 0 {
		return bitmap.Bitmap{}, errors.New("clipboard: failed to lock clipboard data")
	}
	defer procGlobalUnlock.Call(hData)

	size, _, _ := procGlobalSize.Call(hData)
	if size == 0 {
		return bitmap.Bitmap{}, errors.New("clipboard: failed to get clipboard data size")
	}
	if size > maxClipboardSize {
		return bitmap.Bitmap{}, errors.New("clipboard: image too large")
	}

	header := (*bitmapInfoHeader)(unsafe.Pointer(ptr))

	width := int(header.biWidth)
	height := int(header.biHeight)
	bitCount := int(header.biBitCount)

	bottomUp := height > 0
	if height < 0 {
		height = -height
	}
	if width <= 0 || height <= 0 {
		return bitmap.Bitmap{}, errors.New("clipboard: invalid image dimensions")
	}

	pixelOffset := uintptr(header.biSize)
	if bitCount <= 8 {
		colorTableSize := uintptr(1<<uint(bitCount)) * 4
		if header.biClrUsed > 0 {
			colorTableSize = uintptr(header.biClrUsed) * 4
		}
		pixelOffset += colorTableSize
	}
	pixelPtr := ptr + pixelOffset

	rowSize := ((width*bitCount + 31) / 32) * 4
	expectedSize := uintptr(rowSize * height)
	dataSize := size - pixelOffset
	if dataSize < expectedSize {
		return bitmap.Bitmap{}, errors.New("clipboard: pixel data smaller than expected")
	}

	pix := make([]mask.RGB, width*height)

	switch bitCount {
	case 24:
		for y := 0; y < height; y++ {
			srcY := y
			if bottomUp {
				srcY = height - 1 - y
			}
			rowPtr := pixelPtr + uintptr(srcY*rowSize)
			for x := 0; x < width; x++ {
				pixelAddr := rowPtr + uintptr(x*3)
				b := *(*byte)(unsafe.Pointer(pixelAddr))
				g := *(*byte)(unsafe.Pointer(pixelAddr + 1))
				r := *(*byte)(unsafe.Pointer(pixelAddr + 2))
				pix[y*width+x] = mask.RGB{R: r, G: g, B: b}
			}
		}
	case 32:
		for y := 0; y < height; y++ {
			srcY := y
			if bottomUp {
				srcY = height - 1 - y
			}
			rowPtr := pixelPtr + uintptr(srcY*rowSize)
			for x := 0; x < width; x++ {
				pixelAddr := rowPtr + uintptr(x*4)
				b := *(*byte)(unsafe.Pointer(pixelAddr))
				g := *(*byte)(unsafe.Pointer(pixelAddr + 1))
				r := *(*byte)(unsafe.Pointer(pixelAddr + 2))
				pix[y*width+x] = mask.RGB{R: r, G: g, B: b}
			}
		}
	default:
		return bitmap.Bitmap{}, fmt.Errorf("clipboard: unsupported bit depth %d", bitCount)
	}

	return bitmap.New(width, height, pix), nil
}
