package solver

import "github.com/cardfelt/chipsplit/chips"

// enumerateAssignments walks every injective mapping of k catalog values
// onto the k colors, i.e. all k-permutations of the catalog, in
// lexicographic index order. The emit callback receives a fresh slice
// aligned with the fixed color order and returns false to stop early. The
// space is generated lazily; nothing is materialized.
func enumerateAssignments(catalog chips.Catalog, k int, emit func(values []chips.Cents) bool) {
	used := make([]bool, len(catalog))
	values := make([]chips.Cents, k)

	var rec func(pos int) bool
	rec = func(pos int) bool {
		if pos == k {
			out := make([]chips.Cents, k)
			copy(out, values)
			return emit(out)
		}
		for i, v := range catalog {
			if used[i] {
				continue
			}
			used[i] = true
			values[pos] = v
			ok := rec(pos + 1)
			used[i] = false
			if !ok {
				return false
			}
		}
		return true
	}
	rec(0)
}

// AssignmentSpace returns the number of distinct value assignments for a
// catalog of size n and numColors colors: the falling factorial P(n, k).
// Saturates at MaxUint64 instead of overflowing.
func AssignmentSpace(n, numColors int) uint64 {
	if numColors > n {
		return 0
	}
	total := uint64(1)
	for i := 0; i < numColors; i++ {
		f := uint64(n - i)
		if f != 0 && total > ^uint64(0)/f {
			return ^uint64(0)
		}
		total *= f
	}
	return total
}
