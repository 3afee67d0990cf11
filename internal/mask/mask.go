// Package mask implements the core's binary-image primitives: color
// thresholding of a bitmap into a 0/255 mask, and the handful of
// geometric queries (rfind_rect, usage vectors, rect hull, template
// distance) every downstream stage is built from.
package mask

// PixelSource is the minimal surface Filter needs from a bitmap. It lets
// this package stay independent of any concrete image decoder.
type PixelSource interface {
	At(x, y int) RGB
}

// Mask is a width x height matrix of bytes, each 0 or 255.
type Mask struct {
	w, h int
	data []byte
}

// Filter produces a Mask of rect's dimensions where a pixel is 255 iff
// every channel of the source pixel is within tol of target.
func Filter(src PixelSource, target RGB, tol uint8, rect Rect) Mask {
	w, h := rect.Width(), rect.Height()
	data := make([]byte, w*h)

	rMin, rMax := channelRange(target.R, tol)
	gMin, gMax := channelRange(target.G, tol)
	bMin, bMax := channelRange(target.B, tol)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := src.At(rect.Left+x, rect.Top+y)
			v := byte(0)
			if p.R >= rMin && p.R <= rMax &&
				p.G >= gMin && p.G <= gMax &&
				p.B >= bMin && p.B <= bMax {
				v = 255
			}
			data[y*w+x] = v
		}
	}
	return Mask{w: w, h: h, data: data}
}

func channelRange(c, tol uint8) (min, max uint8) {
	min = clampToByte(int(c) - int(tol))
	max = clampToByte(int(c) + int(tol))
	return
}

// New builds a Mask directly from a flat 0/255 buffer. Used by tests and
// by callers assembling a mask from something other than Filter.
func New(w, h int, data []byte) Mask {
	if len(data) != w*h {
		panic("mask: data length does not match w*h")
	}
	return Mask{w: w, h: h, data: data}
}

func (m Mask) Width() int  { return m.w }
func (m Mask) Height() int { return m.h }

func (m Mask) Pixel(x, y int) byte {
	return m.data[y*m.w+x]
}

// RFindRect returns the most-bottom-then-most-right origin (x, y) such
// that every pixel in [x, x+w) x [y, y+h) is non-zero. ok is false if no
// such rectangle exists (or w/h is degenerate).
func (m Mask) RFindRect(w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 || w > m.w || h > m.h {
		return 0, 0, false
	}

	for yStart := m.h - h; yStart >= 0; yStart-- {
		for xStart := m.w - w; xStart >= 0; xStart-- {
			if m.isFilledRect(xStart, yStart, w, h) {
				return xStart, yStart, true
			}
		}
	}
	return 0, 0, false
}

func (m Mask) isFilledRect(x, y, w, h int) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if m.Pixel(x+dx, y+dy) == 0 {
				return false
			}
		}
	}
	return true
}

// ColumnsUsage reports, per column, whether any pixel in that column is
// non-zero.
func (m Mask) ColumnsUsage() []bool {
	usage := make([]bool, m.w)
	for x := 0; x < m.w; x++ {
		for y := 0; y < m.h; y++ {
			if m.Pixel(x, y) != 0 {
				usage[x] = true
				break
			}
		}
	}
	return usage
}

// RowsUsage reports, per row, whether any pixel in that row is non-zero.
func (m Mask) RowsUsage() []bool {
	usage := make([]bool, m.h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Pixel(x, y) != 0 {
				usage[y] = true
				break
			}
		}
	}
	return usage
}

// RectHull returns the tightest axis-aligned rectangle enclosing all
// non-zero pixels inside rect (in this mask's own coordinates). ok is
// false if the region has no non-zero pixel.
func (m Mask) RectHull(rect Rect) (hull Rect, ok bool) {
	left, top := m.w, m.h
	right, bottom := -1, -1

	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			if m.Pixel(x, y) == 0 {
				continue
			}
			if x < left {
				left = x
			}
			if x > right {
				right = x
			}
			if y < top {
				top = y
			}
			bottom = y
		}
	}

	if right < left {
		return Rect{}, false
	}
	// RectHull's Bottom follows the half-open/inclusive mix of Rect: the
	// caller treats [top, bottom] inclusive for Y here, so store bottom+1
	// to keep Rect.Height()/iteration consistent with the rest of the
	// package (half-open both axes internally).
	return Rect{Left: left, Top: top, Right: right + 1, Bottom: bottom + 1}, true
}

// TemplateMatchError rescales template to srcRect's dimensions by
// nearest-neighbor and returns the fraction of disagreeing pixels.
func (m Mask) TemplateMatchError(srcRect Rect, template Mask) float64 {
	sw, sh := srcRect.Width(), srcRect.Height()
	tw, th := template.Width(), template.Height()

	xMax := tw - 1
	yMax := th - 1

	var mismatches int
	for y := 0; y < sh; y++ {
		ty := (y * th) / sh
		if ty > yMax {
			ty = yMax
		}
		for x := 0; x < sw; x++ {
			tx := (x * tw) / sw
			if tx > xMax {
				tx = xMax
			}
			if m.Pixel(srcRect.Left+x, srcRect.Top+y) != template.Pixel(tx, ty) {
				mismatches++
			}
		}
	}
	return float64(mismatches) / float64(sw*sh)
}
