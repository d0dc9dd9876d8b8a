package solver

import "github.com/cardfelt/chipsplit/chips"

// allocator enumerates per-player chip counts for a single value assignment.
// The per-color bound is min(stock/players, target/value); within those
// bounds the search is exhaustive, with branch-and-bound pruning that never
// discards a candidate outranking the incumbent, so the returned best is the
// true optimum of the scoring chain.
type allocator struct {
	sc     *scorer
	values []chips.Cents
	maxPer []int
	// suffixMax[i] is the maximum value attainable from colors i..end.
	suffixMax []chips.Cents
	counts    []int
	nodes     uint64
}

func newAllocator(sc *scorer, stock []int, players int, values []chips.Cents) *allocator {
	k := len(values)
	a := &allocator{
		sc:        sc,
		values:    values,
		maxPer:    make([]int, k),
		suffixMax: make([]chips.Cents, k+1),
		counts:    make([]int, k),
	}
	for i := 0; i < k; i++ {
		m := stock[i] / players
		if sc.target > 0 {
			if byValue := int(sc.target / values[i]); byValue < m {
				m = byValue
			}
		}
		a.maxPer[i] = m
	}
	for i := k - 1; i >= 0; i-- {
		a.suffixMax[i] = a.suffixMax[i+1] + chips.Cents(a.maxPer[i])*values[i]
	}
	return a
}

// search finds the best allocation for this assignment, seeded with (and
// compared against) an incumbent best from earlier assignments. Returns the
// incumbent unchanged if nothing here beats it, or nil if there is no
// incumbent and no allocation hands out a single chip.
func (a *allocator) search(best *candidate) *candidate {
	if a.sc.target == 0 {
		return a.maxUsage(best)
	}
	a.dfs(0, 0, 0, 0, &best)
	return best
}

// searchFrom is like search but with the first color's count pinned; used by
// the parallel evaluator to partition a fixed-assignment search.
func (a *allocator) searchFrom(firstCount int, best *candidate) *candidate {
	if len(a.values) == 0 || firstCount > a.maxPer[0] {
		return best
	}
	a.counts[0] = firstCount
	used := 0
	if firstCount > 0 {
		used = 1
	}
	a.dfs(1, chips.Cents(firstCount)*a.values[0], firstCount, used, &best)
	return best
}

// maxUsage handles the no-target mode. With no proximity term, more chips
// can never score worse, so every color simply takes its maximum bound.
func (a *allocator) maxUsage(best *candidate) *candidate {
	a.nodes++
	var value chips.Cents
	numChips, used := 0, 0
	for i, m := range a.maxPer {
		a.counts[i] = m
		value += chips.Cents(m) * a.values[i]
		numChips += m
		if m > 0 {
			used++
		}
	}
	if numChips == 0 {
		return best
	}
	c := candidate{values: a.values, counts: a.counts, value: value, used: used, numChips: numChips}
	if a.sc.better(&c, best) {
		return c.clone()
	}
	return best
}

func (a *allocator) dfs(i int, partial chips.Cents, numChips, used int, best **candidate) {
	if i == len(a.values) {
		a.nodes++
		if numChips == 0 {
			return
		}
		c := candidate{values: a.values, counts: a.counts, value: partial, used: used, numChips: numChips}
		if a.sc.better(&c, *best) {
			*best = c.clone()
		}
		return
	}
	t := a.sc.target
	for n := 0; n <= a.maxPer[i]; n++ {
		v := partial + chips.Cents(n)*a.values[i]
		if b := *best; t > 0 && b != nil {
			incumbentFull := a.sc.fullSpread(b)
			// Every leaf below this node overshoots by at least v-t;
			// larger counts for this color only overshoot further.
			if over := v - t; over > a.sc.tol && (incumbentFull || a.sc.diff(b) < over) {
				break
			}
			// Even maxing out every remaining color cannot come close
			// enough to the target to beat the incumbent.
			if short := t - (v + a.suffixMax[i+1]); short > a.sc.tol && (incumbentFull || a.sc.diff(b) < short) {
				continue
			}
		}
		a.counts[i] = n
		u := used
		if n > 0 {
			u++
		}
		a.dfs(i+1, v, numChips+n, u, best)
	}
	a.counts[i] = 0
}
