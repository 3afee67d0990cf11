// Package run wires geometry, segmentation, OCR, and the solver into
// the single pipeline original_source's main.rs ran as execute(): find
// the matrix, find the conditions, find the buffer size, solve, rank.
// It has no CLI concerns of its own — cmd/breachcore calls Execute and
// decides what to do with the Result.
package run

import (
	"fmt"

	"github.com/corvid-tools/breachcore/internal/bitmap"
	"github.com/corvid-tools/breachcore/internal/geometry"
	"github.com/corvid-tools/breachcore/internal/mask"
	"github.com/corvid-tools/breachcore/internal/ocr"
	"github.com/corvid-tools/breachcore/internal/segment"
	"github.com/corvid-tools/breachcore/internal/solver"
)

// matrixColor and conditionColor are the hex-digit ink colors used to
// re-filter each region before classification. They match the colors
// geometry uses to locate the regions in the first place (same UI
// palette, different purpose: there it bounds a rectangle, here it
// isolates glyph pixels for template matching).
var (
	matrixColor    = mask.RGB{R: 0xD0, G: 0xED, B: 0x57}
	conditionColor = mask.RGB{R: 0xF0, G: 0xF0, B: 0xF0}
)

// Result is everything a caller needs to report a run and, optionally,
// play it back with synthetic clicks.
type Result struct {
	MatrixArea    mask.Rect
	Matrix        ocr.Grid
	ConditionArea mask.Rect
	Conditions    ocr.Grid
	BufferSize    int
	Solutions     []solver.Solution
	Best          []solver.Solution
}

// Execute runs the full recognize-and-solve pipeline against img. It
// fails fast: the first stage that can't locate or classify its region
// aborts the run.
func Execute(img bitmap.Bitmap) (Result, error) {
	matrixArea, err := geometry.FindMatrixArea(img)
	if err != nil {
		return Result{}, fmt.Errorf("run: matrix was not found: %w", err)
	}

	matrixMask := mask.Filter(img, matrixColor, 50, matrixArea)
	matrixResult, err := ocr.OCRMatrix(matrixMask, segment.Locate)
	if err != nil {
		return Result{}, fmt.Errorf("run: matrix was not recognized: %w", err)
	}

	conditionArea, err := geometry.FindConditionArea(img, matrixArea)
	if err != nil {
		return Result{}, fmt.Errorf("run: conditions were not found: %w", err)
	}

	conditionMask := mask.Filter(img, conditionColor, 50, conditionArea)
	conditions, err := ocr.OCRConditions(conditionMask, segment.Locate)
	if err != nil {
		return Result{}, fmt.Errorf("run: conditions were not recognized: %w", err)
	}

	bufferSize, err := geometry.FindBufferSize(img, conditionArea)
	if err != nil {
		return Result{}, fmt.Errorf("run: buffer size was not recognized: %w", err)
	}

	matrix := toMatrix(matrixResult.Grid)
	conds := toConditions(conditions)

	solutions := solver.Solve(matrix, conds, bufferSize)
	best := solver.FilterBest(solutions)

	return Result{
		MatrixArea:    mask.Rect{Left: matrixArea.Left + matrixResult.Left, Top: matrixArea.Top + matrixResult.Top, Right: matrixArea.Left + matrixResult.Right, Bottom: matrixArea.Top + matrixResult.Bottom},
		Matrix:        matrixResult.Grid,
		ConditionArea: conditionArea,
		Conditions:    conditions,
		BufferSize:    bufferSize,
		Solutions:     solutions,
		Best:          best,
	}, nil
}

func toMatrix(g ocr.Grid) solver.Matrix {
	m := make(solver.Matrix, len(g))
	for i, row := range g {
		m[i] = make([]byte, len(row))
		for j, hb := range row {
			m[i][j] = byte(hb)
		}
	}
	return m
}

func toConditions(g ocr.Grid) []solver.Condition {
	conds := make([]solver.Condition, len(g))
	for i, row := range g {
		c := make(solver.Condition, len(row))
		for j, hb := range row {
			c[j] = byte(hb)
		}
		conds[i] = c
	}
	return conds
}

// FormatHex renders a hex byte the way original_source's main.rs did:
// "0x1c ".
func FormatHex(v byte) string {
	return fmt.Sprintf("%#04x ", v)
}

// ClickPoint is one synthetic click target, already translated from
// matrix-grid coordinates into screen pixels.
type ClickPoint struct {
	X, Y int
}

// ClickPoints translates a solution's grid steps into absolute screen
// coordinates, the way original_source's execute() computed
// item_width/item_height from the matrix span and offset +15/+10 into
// each cell. gridSize is the matrix's side length (len(result.Matrix)).
func ClickPoints(r Result, solution solver.Solution, gridSize int) []ClickPoint {
	if gridSize <= 1 {
		return nil
	}
	left := r.MatrixArea.Left
	top := r.MatrixArea.Top
	itemWidth := (r.MatrixArea.Right - r.MatrixArea.Left) / (gridSize - 1)
	itemHeight := (r.MatrixArea.Bottom - r.MatrixArea.Top) / (gridSize - 1)

	points := make([]ClickPoint, len(solution.Steps))
	for i, s := range solution.Steps {
		points[i] = ClickPoint{
			X: s.X*itemWidth + left + 15,
			Y: s.Y*itemHeight + top + 10,
		}
	}
	return points
}
