// Package segment turns a mask's column/row usage vectors into the
// spans that bound each matrix cell or condition glyph.
package segment

import (
	"errors"

	"github.com/corvid-tools/breachcore/internal/mask"
)

// ErrEmpty is returned when either axis produces zero spans — the
// mask has no ink on that axis at all.
var ErrEmpty = errors.New("segment: no spans found")

// columnMergeGapPx is the maximum gap, in pixels, between two ink
// runs on the column axis that still belong to the same matrix cell
// (a hex byte is drawn as two glyphs with a small gap between them).
const columnMergeGapPx = 15

// Locate walks m's column and row usage vectors into spans. Column
// spans merge across small gaps per columnMergeGapPx so that a two-
// glyph hex byte collapses into one span; row spans never merge.
func Locate(m mask.Mask) (columns, rows []mask.Span, err error) {
	columns = columnSpans(m.ColumnsUsage())
	rows = rowSpans(m.RowsUsage())
	if len(columns) == 0 || len(rows) == 0 {
		return nil, nil, ErrEmpty
	}
	return columns, rows, nil
}

// columnSpans walks usage left to right. On a space→ink transition,
// a gap of at most columnMergeGapPx since the previous span's end
// re-opens that span instead of starting a new one.
func columnSpans(usage []bool) []mask.Span {
	var spans []mask.Span
	inSpan := false
	start := 0

	for x, used := range usage {
		switch {
		case used && !inSpan:
			if n := len(spans); n > 0 && x-spans[n-1].End <= columnMergeGapPx {
				start = spans[n-1].Start
				spans = spans[:n-1]
			} else {
				start = x
			}
			inSpan = true
		case !used && inSpan:
			spans = append(spans, mask.Span{Start: start, End: x})
			inSpan = false
		}
	}
	if inSpan {
		spans = append(spans, mask.Span{Start: start, End: len(usage)})
	}
	return spans
}

// rowSpans walks usage left to right with no merge rule: every
// contiguous ink run is its own span.
func rowSpans(usage []bool) []mask.Span {
	var spans []mask.Span
	inSpan := false
	start := 0

	for y, used := range usage {
		switch {
		case used && !inSpan:
			start = y
			inSpan = true
		case !used && inSpan:
			spans = append(spans, mask.Span{Start: start, End: y})
			inSpan = false
		}
	}
	if inSpan {
		spans = append(spans, mask.Span{Start: start, End: len(usage)})
	}
	return spans
}
