package segment

import (
	"reflect"
	"testing"

	"github.com/corvid-tools/breachcore/internal/mask"
)

// buildMask lights up the given columns for rows in [rowStart, rowEnd).
func buildMask(w, h int, cols []int, rowStart, rowEnd int) mask.Mask {
	data := make([]byte, w*h)
	for _, x := range cols {
		for y := rowStart; y < rowEnd; y++ {
			data[y*w+x] = 255
		}
	}
	return mask.New(w, h, data)
}

func TestLocateMergesCloseColumnsWithinACell(t *testing.T) {
	const w, h = 50, 10

	// Cell 1: two glyphs at columns [2,4) and [7,9), gap 3 -> merge.
	// Cell 2: two glyphs at columns [40,42) and [46,48), gap 4 -> merge.
	// Gap between the cells (9 -> 40) is 31, well over the merge
	// threshold, so they must stay separate spans.
	cols := []int{2, 3, 7, 8, 40, 41, 46, 47}
	m := buildMask(w, h, cols, 2, 8)

	columns, rows, err := Locate(m)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}

	wantColumns := []mask.Span{{Start: 2, End: 9}, {Start: 40, End: 48}}
	if !reflect.DeepEqual(columns, wantColumns) {
		t.Fatalf("columns = %+v, want %+v", columns, wantColumns)
	}

	wantRows := []mask.Span{{Start: 2, End: 8}}
	if !reflect.DeepEqual(rows, wantRows) {
		t.Fatalf("rows = %+v, want %+v", rows, wantRows)
	}
}

func TestLocateDoesNotMergeRows(t *testing.T) {
	const w, h = 20, 20
	data := make([]byte, w*h)
	for x := 2; x < 6; x++ {
		for _, y := range []int{2, 3, 6, 7} {
			data[y*w+x] = 255
		}
	}
	m := mask.New(w, h, data)

	_, rows, err := Locate(m)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	want := []mask.Span{{Start: 2, End: 4}, {Start: 6, End: 8}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %+v, want %+v (row axis must not merge close runs)", rows, want)
	}
}

func TestLocateEmptyMaskFails(t *testing.T) {
	m := mask.New(10, 10, make([]byte, 100))
	if _, _, err := Locate(m); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestLocateFarColumnsStaySeparate(t *testing.T) {
	const w, h = 40, 6
	cols := []int{1, 2, 30, 31}
	m := buildMask(w, h, cols, 1, 4)

	columns, _, err := Locate(m)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	want := []mask.Span{{Start: 1, End: 3}, {Start: 30, End: 32}}
	if !reflect.DeepEqual(columns, want) {
		t.Fatalf("columns = %+v, want %+v", columns, want)
	}
}
