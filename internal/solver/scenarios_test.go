package solver

import "testing"

// These scenarios are translated directly from the original solver's
// recorded test fixtures (matrix/conditions/expected solutions for
// nine captured screenshots). They exercise the whole pipeline
// end-to-end rather than any single stage.

func hasSolution(solutions []Solution, steps []Step, conditions []bool) bool {
	for _, s := range solutions {
		if equalSteps(s.Steps, steps) && equalBools(s.Conditions, conditions) {
			return true
		}
	}
	return false
}

func assertWellFormed(t *testing.T, solutions []Solution, bufferSize int) {
	t.Helper()
	for _, s := range solutions {
		if len(s.Steps) == 0 || len(s.Steps) > bufferSize {
			t.Fatalf("solution is empty or exceeds buffer size: %+v", s.Steps)
		}
		seen := make(map[Step]bool)
		for _, step := range s.Steps {
			if seen[step] {
				t.Fatalf("solution repeats a cell: %+v", s.Steps)
			}
			seen[step] = true
		}
		if s.Steps[0].Y != 0 {
			t.Fatalf("solution does not start on row 0: %+v", s.Steps)
		}
		for i := 1; i < len(s.Steps); i++ {
			prev, cur := s.Steps[i-1], s.Steps[i]
			sharesX := prev.X == cur.X
			sharesY := prev.Y == cur.Y
			if !sharesX && !sharesY {
				t.Fatalf("step %d does not share a coordinate with its predecessor: %+v", i, s.Steps)
			}
			if i == 1 && isHorizontalStep(prev, cur) {
				t.Fatalf("finalized solution's first transition must be vertical: %+v", s.Steps)
			}
			if i >= 2 {
				prevHorizontal := isHorizontalStep(s.Steps[i-2], prev)
				curHorizontal := isHorizontalStep(prev, cur)
				if curHorizontal == prevHorizontal {
					t.Fatalf("alternation rule violated at step %d: %+v", i, s.Steps)
				}
			}
		}
		anyTrue := false
		for _, v := range s.Conditions {
			if v {
				anyTrue = true
			}
		}
		if !anyTrue {
			t.Fatalf("solution covers nothing: %+v", s.Conditions)
		}
	}
}

// Scenario A (spec.md section 8, "test1"): no full solution exists.
func TestScenarioA(t *testing.T) {
	matrix := Matrix{
		{0xBD, 0x55, 0x55, 0x7A, 0xE9, 0x7A, 0x55},
		{0x55, 0xE9, 0x55, 0xBD, 0x55, 0x55, 0xE9},
		{0xE9, 0x55, 0xBD, 0x7A, 0x1C, 0x55, 0x7A},
		{0x55, 0x1C, 0x55, 0x55, 0x7A, 0x1C, 0xFF},
		{0x1C, 0x7A, 0x7A, 0x1C, 0xBD, 0x1C, 0xBD},
		{0x1C, 0x7A, 0xE9, 0xFF, 0x1C, 0xE9, 0xFF},
		{0x1C, 0x7A, 0x7A, 0xBD, 0x7A, 0x55, 0xBD},
	}
	conditions := []Condition{
		{0x1C, 0x7A},
		{0x7A, 0x1C, 0x1C},
		{0x7A, 0x7A, 0xBD, 0x7A},
	}

	solutions := Solve(matrix, conditions, 6)
	assertWellFormed(t, solutions, 6)

	if !hasSolution(solutions, steps(5, 0, 5, 3, 1, 3, 1, 4), []bool{true, true, false}) {
		t.Fatal("missing expected solution covering conditions 0 and 1")
	}
	if !hasSolution(solutions, steps(3, 0, 3, 2, 2, 2, 2, 4, 5, 4, 5, 0), []bool{true, false, true}) {
		t.Fatal("missing expected solution covering conditions 0 and 2")
	}

	best := FilterBest(solutions)
	for _, s := range best {
		if countTrue(s.Conditions) == 3 {
			t.Fatal("scenario A has no full solution, but FilterBest produced one")
		}
	}
}

// Scenario B (spec.md section 8, "test2"): a full solution exists.
func TestScenarioB(t *testing.T) {
	matrix := Matrix{
		{0x55, 0xBD, 0xBD, 0xBD, 0x55},
		{0xBD, 0x1C, 0x55, 0xE9, 0x1C},
		{0xBD, 0xBD, 0x1C, 0x1C, 0x55},
		{0x55, 0xE9, 0xE9, 0x55, 0xE9},
		{0x1C, 0x55, 0x55, 0x1C, 0x1C},
	}
	conditions := []Condition{
		{0x1C, 0x55},
		{0xBD, 0x55},
		{0x55, 0x55, 0x1C},
	}

	solutions := Solve(matrix, conditions, 6)
	assertWellFormed(t, solutions, 6)

	if !hasSolution(solutions, steps(2, 0, 2, 4, 1, 4, 1, 1, 2, 1), []bool{true, true, true}) {
		t.Fatal("missing expected full-coverage solution")
	}

	best := FilterBest(solutions)
	full := false
	for _, s := range best {
		if countTrue(s.Conditions) == 3 {
			full = true
		}
	}
	if !full {
		t.Fatal("expected a full solution to survive ranking")
	}
}

// Scenario C (spec.md section 8, "test6"): single condition, two
// representative solutions of equal length both cover it.
func TestScenarioC(t *testing.T) {
	matrix := Matrix{
		{0x1C, 0x1C, 0x1C, 0xBD, 0x1C, 0x1C},
		{0xBD, 0xBD, 0xE9, 0x55, 0x1C, 0x7A},
		{0x7A, 0x1C, 0x1C, 0xBD, 0x55, 0x1C},
		{0x7A, 0x7A, 0x7A, 0x7A, 0xE9, 0x55},
		{0x7A, 0x7A, 0xE9, 0x1C, 0x55, 0x55},
		{0x1C, 0x7A, 0x1C, 0xE9, 0x1C, 0x55},
	}
	conditions := []Condition{{0x1C, 0xBD, 0xE9, 0x1C}}

	solutions := Solve(matrix, conditions, 6)
	assertWellFormed(t, solutions, 6)

	if !hasSolution(solutions, steps(0, 0, 0, 1, 2, 1, 2, 0), []bool{true}) {
		t.Fatal("missing first expected solution")
	}
	if !hasSolution(solutions, steps(1, 0, 1, 1, 2, 1, 2, 0), []bool{true}) {
		t.Fatal("missing second expected solution")
	}
}

// Scenario D (spec.md section 8, "test8"): a single merged solution
// covers both conditions.
func TestScenarioD(t *testing.T) {
	matrix := Matrix{
		{0xBD, 0x1C, 0x1C, 0x7A, 0x55, 0x1C},
		{0x1C, 0xE9, 0xE9, 0x55, 0x7A, 0x55},
		{0x55, 0x1C, 0x55, 0x7A, 0x55, 0x55},
		{0xE9, 0xE9, 0x1C, 0x55, 0x55, 0xBD},
		{0x1C, 0x7A, 0x7A, 0xE9, 0x1C, 0x1C},
		{0x1C, 0x1C, 0xBD, 0xBD, 0x1C, 0xBD},
	}
	conditions := []Condition{
		{0x55, 0x1C, 0xBD, 0xE9},
		{0x55, 0x7A, 0x55},
	}

	solutions := Solve(matrix, conditions, 6)
	assertWellFormed(t, solutions, 6)

	if !hasSolution(solutions, steps(4, 0, 4, 1, 5, 1, 5, 0, 0, 0, 0, 3), []bool{true, true}) {
		t.Fatal("missing expected joint solution")
	}
}

// Scenario E: degenerate matrix, every cell the same byte.
func TestScenarioE(t *testing.T) {
	matrix := Matrix{
		{0x55, 0x55, 0x55},
		{0x55, 0x55, 0x55},
		{0x55, 0x55, 0x55},
	}
	conditions := []Condition{{0x55, 0x55}}

	solutions := Solve(matrix, conditions, 2)
	if len(solutions) == 0 {
		t.Fatal("expected at least one length-2 solution")
	}
	assertWellFormed(t, solutions, 2)
	for _, s := range solutions {
		if len(s.Steps) != 2 {
			t.Fatalf("expected exactly length 2, got %+v", s.Steps)
		}
	}
}

// Scenario F: the matrix is missing the byte a condition requires.
func TestScenarioF(t *testing.T) {
	matrix := Matrix{
		{0x55, 0x55, 0x55},
		{0x55, 0x55, 0x55},
		{0x55, 0x55, 0x55},
	}
	conditions := []Condition{{0xFF}}

	solutions := Solve(matrix, conditions, 6)
	if len(solutions) != 0 {
		t.Fatalf("expected no solutions, got %+v", solutions)
	}
}
