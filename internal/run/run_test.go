package run

import (
	"reflect"
	"testing"

	"github.com/corvid-tools/breachcore/internal/mask"
	"github.com/corvid-tools/breachcore/internal/solver"
)

func TestClickPoints(t *testing.T) {
	r := Result{
		MatrixArea: mask.Rect{Left: 100, Top: 15, Right: 640, Bottom: 195},
	}
	sol := solver.Solution{Steps: []solver.Step{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 4, Y: 2}}}

	got := ClickPoints(r, sol, 5)

	itemWidth := (640 - 100) / 4
	itemHeight := (195 - 15) / 4
	want := []ClickPoint{
		{X: 0*itemWidth + 100 + 15, Y: 0*itemHeight + 15 + 10},
		{X: 0*itemWidth + 100 + 15, Y: 2*itemHeight + 15 + 10},
		{X: 4*itemWidth + 100 + 15, Y: 2*itemHeight + 15 + 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ClickPoints = %+v, want %+v", got, want)
	}
}

func TestClickPointsDegenerateGrid(t *testing.T) {
	r := Result{MatrixArea: mask.Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}}
	sol := solver.Solution{Steps: []solver.Step{{X: 0, Y: 0}}}
	if got := ClickPoints(r, sol, 1); got != nil {
		t.Fatalf("expected nil for gridSize <= 1, got %+v", got)
	}
}

func TestFormatHex(t *testing.T) {
	if got := FormatHex(0x1c); got != "0x1c " {
		t.Fatalf("FormatHex(0x1c) = %q, want %q", got, "0x1c ")
	}
}
