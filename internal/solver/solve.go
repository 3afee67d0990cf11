package solver

// Matrix is an N x N grid of hex bytes, indexed matrix[y][x].
type Matrix [][]byte

// Condition is an ordered sequence of hex bytes a path must contain as
// a contiguous sub-sequence to be "covered".
type Condition []byte

func (m Matrix) width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Matrix) height() int {
	return len(m)
}

// Solve finds every finalized pick sequence covering at least one
// condition, subject to the buffer size limit. Use FilterBest to
// collapse and rank the result.
func Solve(matrix Matrix, conditions []Condition, bufferSize int) []Solution {
	var solutions []Solution
	for ci, cond := range conditions {
		flags := make([]bool, len(conditions))
		flags[ci] = true
		for _, steps := range findConditionSolutions(cond, nil, matrix) {
			solutions = append(solutions, Solution{Steps: steps, Conditions: flags})
		}
	}

	solutions = mergeSolutions(solutions, bufferSize)

	var finalized []Solution
	for _, s := range solutions {
		if steps, ok := finalizeSolution(s.Steps, matrix, bufferSize); ok {
			finalized = append(finalized, Solution{Steps: steps, Conditions: s.Conditions})
		}
	}
	return finalized
}

// findConditionSolutions enumerates every step chain that consumes
// condition in order, depth-first.
func findConditionSolutions(condition Condition, steps []Step, matrix Matrix) [][]Step {
	if len(condition) == 0 {
		return [][]Step{steps}
	}

	nextHex := condition[0]
	var out [][]Step
	for _, step := range nextPossibleSteps(steps, nextHex, matrix) {
		newSteps := concatSteps(steps, []Step{step})
		out = append(out, findConditionSolutions(condition[1:], newSteps, matrix)...)
	}
	return out
}

// nextPossibleSteps lists every cell holding nextCode not already
// picked, filtered by the alternation rule relative to steps.
func nextPossibleSteps(steps []Step, nextCode byte, matrix Matrix) []Step {
	var all []Step
	for y, row := range matrix {
		for x, hex := range row {
			step := Step{X: x, Y: y}
			if hex == nextCode && !containsStep(steps, step) {
				all = append(all, step)
			}
		}
	}
	if len(all) == 0 {
		return all
	}

	if len(steps) == 0 {
		return all
	}
	last := steps[len(steps)-1]

	horizontal, constrained := nextStepIsHorizontal(steps)
	if !constrained {
		var out []Step
		for _, s := range all {
			if s.X == last.X || s.Y == last.Y {
				out = append(out, s)
			}
		}
		return out
	}

	var out []Step
	for _, s := range all {
		if horizontal && s.Y == last.Y {
			out = append(out, s)
		} else if !horizontal && s.X == last.X {
			out = append(out, s)
		}
	}
	return out
}

// mergeSolutions iterates pairs to a fixed point, widening condition
// coverage (containment) and appending new merged solutions (overlap,
// disjoint concatenation) as described in the solver's design notes.
// solutions grows in place.
func mergeSolutions(solutions []Solution, bufferSize int) []Solution {
	changed := true
	for changed {
		changed = false

		for i := 0; i < len(solutions); i++ {
			src := solutions[i]

			for j := 0; j < len(solutions); j++ {
				if i == j {
					continue
				}
				dest := solutions[j]

				if equalBools(src.Conditions, dest.Conditions) {
					continue
				}

				switch {
				case isPartOf(src.Steps, dest.Steps):
					widened := false
					for k := range src.Conditions {
						if !src.Conditions[k] && dest.Conditions[k] {
							src.Conditions[k] = true
							widened = true
						}
					}
					if widened {
						changed = true
					}

				default:
					if p, ok := unionPoint(src.Steps, dest.Steps); ok {
						if shareAnyStep(src.Steps[:p], dest.Steps) {
							continue
						}
						total := p + len(dest.Steps)
						if total > bufferSize {
							continue
						}

						goodDirection := len(src.Steps)-p >= 2
						if !goodDirection {
							goodDirection = len(src.Steps) <= 1 || len(dest.Steps) <= 1 ||
								isHorizontalStep(src.Steps[len(src.Steps)-2], src.Steps[len(src.Steps)-1]) !=
									isHorizontalStep(dest.Steps[0], dest.Steps[1])
						}
						if !goodDirection {
							continue
						}

						candidate := concatSteps(src.Steps[:p], dest.Steps)
						if !anySolutionHasSteps(solutions, candidate) {
							solutions = append(solutions, Solution{
								Steps:      candidate,
								Conditions: orBools(src.Conditions, dest.Conditions),
							})
							changed = true
						}
					} else if !shareAnyStep(src.Steps, dest.Steps) {
						if len(src.Steps)+len(dest.Steps) > bufferSize {
							continue
						}
						last := src.Steps[len(src.Steps)-1]
						first := dest.Steps[0]

						var noAdditionalSteps bool
						switch {
						case last.X == first.X:
							srcOK := len(src.Steps) <= 1 || isHorizontalStep(src.Steps[len(src.Steps)-2], src.Steps[len(src.Steps)-1])
							destOK := len(dest.Steps) <= 1 || isHorizontalStep(dest.Steps[0], dest.Steps[1])
							noAdditionalSteps = srcOK && destOK
						case last.Y == first.Y:
							srcOK := len(src.Steps) <= 1 || !isHorizontalStep(src.Steps[len(src.Steps)-2], src.Steps[len(src.Steps)-1])
							destOK := len(dest.Steps) <= 1 || !isHorizontalStep(dest.Steps[0], dest.Steps[1])
							noAdditionalSteps = srcOK && destOK
						default:
							noAdditionalSteps = false
						}

						if noAdditionalSteps {
							candidate := concatSteps(src.Steps, dest.Steps)
							if !anySolutionHasSteps(solutions, candidate) {
								solutions = append(solutions, Solution{
									Steps:      candidate,
									Conditions: orBools(src.Conditions, dest.Conditions),
								})
								changed = true
							}
						}
						// A disjoint concatenation that needs additional
						// junction steps is not attempted: step_limit
						// almost always rules those solutions out anyway,
						// and no condition exercises the gap today.
					}
				}
			}

			solutions[i] = src
		}
	}
	return solutions
}

func anySolutionHasSteps(solutions []Solution, steps []Step) bool {
	for _, s := range solutions {
		if equalSteps(s.Steps, steps) {
			return true
		}
	}
	return false
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func orBools(a, b []bool) []bool {
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] || b[i]
	}
	return out
}

// finalizeSolution prepends 0-3 steps so the path starts at row 0 and
// honors the alternation rule from its very first step.
func finalizeSolution(s []Step, matrix Matrix, bufferSize int) ([]Step, bool) {
	if len(s) == 0 {
		return nil, false
	}

	if s[0].Y == 0 {
		if len(s) == 1 || !isHorizontalStep(s[0], s[1]) {
			return s, true
		}
	}

	if len(s) == 1 {
		if bufferSize >= len(s)+1 {
			return []Step{{X: s[0].X, Y: 0}, s[0]}, true
		}
		return nil, false
	}

	width := matrix.width()
	height := matrix.height()

	if isHorizontalStep(s[0], s[1]) {
		firstStep := Step{X: s[0].X, Y: 0}
		if !containsStep(s, firstStep) {
			if bufferSize >= len(s)+1 {
				return concatSteps([]Step{firstStep}, s), true
			}
			return nil, false
		}

		if bufferSize < len(s)+3 {
			return nil, false
		}
		for x := 0; x < width; x++ {
			if x == s[0].X {
				continue
			}
			for y := 0; y < height; y++ {
				if y == s[0].Y {
					continue
				}
				first := Step{X: x, Y: 0}
				second := Step{X: x, Y: y}
				third := Step{X: s[0].X, Y: y}
				if containsStep(s, first) || containsStep(s, second) || containsStep(s, third) {
					continue
				}
				return concatSteps([]Step{first, second, third}, s), true
			}
		}
		return nil, false
	}

	if bufferSize < len(s)+2 {
		return nil, false
	}
	for x := 0; x < width; x++ {
		if x == s[0].X {
			continue
		}
		first := Step{X: x, Y: 0}
		second := Step{X: x, Y: s[0].Y}
		if containsStep(s, first) || containsStep(s, second) {
			continue
		}
		return concatSteps([]Step{first, second}, s), true
	}
	return nil, false
}
