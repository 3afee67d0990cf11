package solver

import "sort"

// FilterBest groups solutions by their covered-conditions vector,
// keeps the shortest in each group, and sorts ascending from
// "smallest but useful" to "covers the most and hardest-to-reach
// daemons". Callers should treat the last element as the best pick.
func FilterBest(solutions []Solution) []Solution {
	best := make(map[string]Solution)
	order := make([]string, 0, len(solutions))

	for _, s := range solutions {
		key := conditionsKey(s.Conditions)
		existing, ok := best[key]
		if !ok {
			best[key] = s
			order = append(order, key)
			continue
		}
		if len(s.Steps) < len(existing.Steps) {
			best[key] = s
		}
	}

	result := make([]Solution, len(order))
	for i, key := range order {
		result[i] = best[key]
	}

	sort.SliceStable(result, func(i, j int) bool {
		return lessSolution(result[i], result[j])
	})
	return result
}

func conditionsKey(conditions []bool) string {
	b := make([]byte, len(conditions))
	for i, v := range conditions {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func countTrue(conditions []bool) int {
	n := 0
	for _, v := range conditions {
		if v {
			n++
		}
	}
	return n
}

// lessSolution orders by covered-condition count ascending, then by
// comparing condition vectors right to left: the vector whose
// later-first true entry sorts higher.
func lessSolution(a, b Solution) bool {
	ca, cb := countTrue(a.Conditions), countTrue(b.Conditions)
	if ca != cb {
		return ca < cb
	}
	for i := len(a.Conditions) - 1; i >= 0; i-- {
		if a.Conditions[i] && !b.Conditions[i] {
			return false
		}
		if !a.Conditions[i] && b.Conditions[i] {
			return true
		}
	}
	return false
}
