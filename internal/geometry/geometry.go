// Package geometry locates the three regions of interest on a breach
// protocol screenshot: the hex matrix, the daemon conditions panel, and
// the attack buffer size strip. Every finder works purely off masked
// color geometry — no OCR, no template matching.
package geometry

import (
	"errors"

	"github.com/corvid-tools/breachcore/internal/bitmap"
	"github.com/corvid-tools/breachcore/internal/mask"
)

// ErrNotFound is returned by any finder that could not locate its
// region. Per spec the orchestrator treats this as fail-fast: it
// aborts the run with a user-visible message.
var ErrNotFound = errors.New("geometry: region not found")

// FindMatrixArea locates the hex matrix's content rectangle.
func FindMatrixArea(bmp bitmap.Bitmap) (mask.Rect, error) {
	leftHalf := mask.Rect{Left: 0, Top: 0, Right: bmp.Width() / 2, Bottom: bmp.Height()}
	m := mask.Filter(bmp, matrixColor, 50, leftHalf)

	bx, by, ok := m.RFindRect(300, 5)
	if !ok {
		return mask.Rect{}, ErrNotFound
	}
	xRight := bx + 300 - 1
	yTop := by + 5 - 1

	yBottom, ok := scanDownToZero(m, xRight, yTop)
	if !ok {
		return mask.Rect{}, ErrNotFound
	}

	xLeft, ok := scanLeftToZero(m, xRight-300, yBottom-1)
	if !ok {
		return mask.Rect{}, ErrNotFound
	}

	r := mask.Rect{Left: xLeft + 1, Top: yTop + 1, Right: xRight - 1, Bottom: yBottom - 1}
	if r.Left >= r.Right || r.Top >= r.Bottom {
		return mask.Rect{}, ErrNotFound
	}
	return r, nil
}

// FindConditionArea locates the daemon conditions text area, excluding
// the description icons drawn to its right.
func FindConditionArea(bmp bitmap.Bitmap, matrixArea mask.Rect) (mask.Rect, error) {
	strip := mask.Rect{Left: matrixArea.Right, Top: matrixArea.Top, Right: bmp.Width(), Bottom: matrixArea.Bottom}
	if strip.Left >= strip.Right || strip.Top >= strip.Bottom {
		return mask.Rect{}, ErrNotFound
	}
	m := mask.Filter(bmp, conditionBorderColor, 30, strip)

	bx, by, ok := m.RFindRect(300, 1)
	if !ok {
		return mask.Rect{}, ErrNotFound
	}

	leftX, ok := scanLeftToZero(m, bx, by)
	if !ok {
		return mask.Rect{}, ErrNotFound
	}
	bottomY := by

	// The icons sit flush against the bottom border while the hex text
	// sits higher up with a gap above it; a thin strip immediately above
	// the border therefore only contains icon ink. Its left edge is the
	// right boundary of the text area.
	const iconStripHeight = 3
	iconStripTop := bottomY - iconStripHeight
	if iconStripTop < 0 {
		iconStripTop = 0
	}
	hull, hasIcons := m.RectHull(mask.Rect{Left: leftX + 1, Top: iconStripTop, Right: m.Width(), Bottom: bottomY})

	rightX := m.Width()
	if hasIcons {
		rightX = hull.Left
	}

	r := mask.Rect{
		Left:   strip.Left + leftX + 1,
		Top:    strip.Top,
		Right:  strip.Left + rightX,
		Bottom: strip.Top + bottomY - 1,
	}
	if r.Left >= r.Right || r.Top >= r.Bottom {
		return mask.Rect{}, ErrNotFound
	}
	return r, nil
}

// FindBufferSize locates the attack buffer slot strip above the
// conditions area and returns the number of slots.
func FindBufferSize(bmp bitmap.Bitmap, conditionArea mask.Rect) (int, error) {
	stripTop := conditionArea.Top / 2
	strip := mask.Rect{Left: conditionArea.Left, Top: stripTop, Right: conditionArea.Right, Bottom: conditionArea.Top}
	if strip.Left >= strip.Right || strip.Top >= strip.Bottom {
		return 0, ErrNotFound
	}
	m := mask.Filter(bmp, bufferColor, 30, strip)

	const wallHeight = 35
	bx, by, ok := m.RFindRect(1, wallHeight)
	if !ok {
		return 0, ErrNotFound
	}
	xRight := bx

	top := by
	for top-1 >= 0 && m.Pixel(xRight, top-1) != 0 {
		top--
	}
	bottom := by + wallHeight - 1

	midRow := (top + bottom) / 2

	count := 0
	for x := 0; x <= xRight && x < m.Width(); x++ {
		if m.Pixel(x, midRow) != 0 {
			count++
		}
	}

	size := count / 2
	if size <= 0 {
		return 0, ErrNotFound
	}
	return size, nil
}

// scanDownToZero scans downward from (x, yStart) and returns the y of
// the first zero pixel encountered, per the matrix-area bottom-edge
// search in spec.md section 4.2.
func scanDownToZero(m mask.Mask, x, yStart int) (int, bool) {
	y := yStart
	for {
		y++
		if y >= m.Height() {
			return 0, false
		}
		if m.Pixel(x, y) == 0 {
			return y, true
		}
	}
}

// scanLeftToZero scans leftward from (xStart, y) and returns the x of
// the first zero pixel encountered.
func scanLeftToZero(m mask.Mask, xStart, y int) (int, bool) {
	x := xStart
	if x >= m.Width() {
		x = m.Width() - 1
	}
	for {
		if x < 0 {
			return 0, false
		}
		if m.Pixel(x, y) == 0 {
			return x, true
		}
		x--
	}
}
