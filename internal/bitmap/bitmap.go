// Package bitmap provides the 24-bit RGB raster type every stage of the
// core consumes, plus the file decoder. Clipboard and live-capture
// sources live in their own packages (internal/clipboard,
// internal/capture) and build a Bitmap the same way.
package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"github.com/corvid-tools/breachcore/internal/mask"
)

// Bitmap is an immutable RGB raster. It implements mask.PixelSource.
type Bitmap struct {
	width, height int
	pix           []mask.RGB
}

// New wraps a pre-built pixel slice. w*h must equal len(pix).
func New(w, h int, pix []mask.RGB) Bitmap {
	if len(pix) != w*h {
		panic("bitmap: pixel slice length does not match w*h")
	}
	return Bitmap{width: w, height: h, pix: pix}
}

func (b Bitmap) Width() int  { return b.width }
func (b Bitmap) Height() int { return b.height }

// At returns the pixel at (x, y). Out-of-range coordinates are a
// programmer error, same as slice indexing.
func (b Bitmap) At(x, y int) mask.RGB {
	return b.pix[y*b.width+x]
}

// FromImage converts any image.Image into a Bitmap, dropping alpha the
// way the capture/clipboard collaborators do.
func FromImage(img image.Image) Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]mask.RGB, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bch, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pix[y*w+x] = mask.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bch >> 8)}
		}
	}
	return New(w, h, pix)
}

// Decode reads a 24-bit BMP from r.
func Decode(r io.Reader) (Bitmap, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return Bitmap{}, fmt.Errorf("bitmap: decode: %w", err)
	}
	return FromImage(img), nil
}

// DecodeFile opens and decodes a BMP file from disk.
func DecodeFile(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, fmt.Errorf("bitmap: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// ToImage converts b to a standard library image.Image, for encoding
// or any other stdlib image consumer.
func (b Bitmap) ToImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.pix[y*b.width+x]
			img.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// Encode writes b to w as a 24-bit BMP, the format a solved run's
// source screenshot is archived in.
func Encode(w io.Writer, b Bitmap) error {
	if err := bmp.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("bitmap: encode: %w", err)
	}
	return nil
}
