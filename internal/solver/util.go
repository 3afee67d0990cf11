package solver

// isPartOf reports whether part is a contiguous sub-slice of main.
func isPartOf(main, part []Step) bool {
	if len(main) == 0 || len(part) == 0 || len(part) > len(main) {
		return false
	}
	start := part[0]
	for i, v := range main {
		if len(part) > len(main)-i {
			return false
		}
		if v == start && equalSteps(part, main[i:i+len(part)]) {
			return true
		}
	}
	return false
}

// unionPoint finds the smallest index p such that c1[p:] equals a
// prefix of c2 (c1's suffix overlaps c2's prefix). It returns false if
// no such overlap exists.
func unionPoint(c1, c2 []Step) (int, bool) {
	if len(c1) == 0 || len(c2) == 0 {
		return 0, false
	}
	start := c2[0]
	for i, v := range c1 {
		n := len(c1) - i
		if n > len(c2) {
			n = len(c2)
		}
		if v == start && equalSteps(c1[i:], c2[:n]) {
			return i, true
		}
	}
	return 0, false
}

func equalSteps(a, b []Step) bool {
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
