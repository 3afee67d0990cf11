// Package ocr classifies matrix and condition cells against the six
// fixed hex-byte templates. There is no general-purpose text
// recognition here — the alphabet is closed and every cell either
// matches one of the six templates or the call fails.
package ocr

import (
	"errors"

	"github.com/corvid-tools/breachcore/internal/mask"
	"github.com/corvid-tools/breachcore/internal/templates"
)

// ErrNoMatch is returned by ClassifyCell when the cell's rect hull is
// empty (no ink at all inside the span intersection).
var ErrNoMatch = errors.New("ocr: cell has no ink to classify")

// ErrNotSquare is returned by OCRMatrix when the segmenter finds an
// unequal number of row and column spans, or fewer than 3 of either
// (non-square matrices are a spec non-goal).
var ErrNotSquare = errors.New("ocr: matrix is not square or too small")

// Cell is a classified grid position: Row/Col are indices into the
// segmenter's row/column spans, Value is the matched hex byte.
type Cell struct {
	Row, Col int
	Value    templates.HexByte
}

// Grid is the classified matrix or conditions output, one row per
// entry, left to right within each row.
type Grid [][]templates.HexByte

// ClassifyCell tightens column x row to the ink it actually contains
// and returns the closed-alphabet hex byte whose template minimizes
// template match error. Ties break in templates.Alphabet order.
func ClassifyCell(m mask.Mask, column, row mask.Span) (templates.HexByte, error) {
	cellRect := mask.Rect{Left: column.Start, Top: row.Start, Right: column.End, Bottom: row.End}
	tight, ok := m.RectHull(cellRect)
	if !ok {
		return 0, ErrNoMatch
	}

	var best templates.HexByte
	bestErr := -1.0
	for _, hb := range templates.Alphabet {
		tmpl := templates.Masks[hb]
		e := m.TemplateMatchError(tight, tmpl)
		if bestErr < 0 || e < bestErr {
			bestErr = e
			best = hb
		}
	}
	return best, nil
}

// MatrixResult is OCRMatrix's return value: the outermost span
// boundaries plus the classified N x N grid.
type MatrixResult struct {
	Left, Top, Right, Bottom int
	Grid                     Grid
}

// OCRMatrix segments m, requires a square grid of at least 3x3, and
// classifies every cell in row-major order. Any single unclassifiable
// cell fails the whole call.
func OCRMatrix(m mask.Mask, locate func(mask.Mask) (columns, rows []mask.Span, err error)) (MatrixResult, error) {
	columns, rows, err := locate(m)
	if err != nil {
		return MatrixResult{}, err
	}
	if len(columns) != len(rows) || len(columns) < 3 {
		return MatrixResult{}, ErrNotSquare
	}

	grid := make(Grid, len(rows))
	for ri, row := range rows {
		grid[ri] = make([]templates.HexByte, len(columns))
		for ci, col := range columns {
			hb, err := ClassifyCell(m, col, row)
			if err != nil {
				return MatrixResult{}, err
			}
			grid[ri][ci] = hb
		}
	}

	return MatrixResult{
		Left:   columns[0].Start,
		Top:    rows[0].Start,
		Right:  columns[len(columns)-1].Start,
		Bottom: rows[len(rows)-1].Start,
		Grid:   grid,
	}, nil
}

// OCRConditions segments m without the square constraint, classifying
// cells left to right within each row. As soon as a cell in a row
// fails to classify, that row is truncated (conditions have irregular
// right padding) and the next row is attempted.
func OCRConditions(m mask.Mask, locate func(mask.Mask) (columns, rows []mask.Span, err error)) (Grid, error) {
	columns, rows, err := locate(m)
	if err != nil {
		return nil, err
	}

	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		var line []templates.HexByte
		for _, col := range columns {
			hb, err := ClassifyCell(m, col, row)
			if err != nil {
				break
			}
			line = append(line, hb)
		}
		grid = append(grid, line)
	}
	return grid, nil
}
