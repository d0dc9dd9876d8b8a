package solver

import "github.com/cardfelt/chipsplit/chips"

// candidate is one trial solution: a value assignment plus a per-player
// allocation, both as slices aligned with the fixed color order. Candidates
// are ephemeral; only local bests are copied out of the search loop.
type candidate struct {
	values []chips.Cents
	counts []int

	value    chips.Cents // total value one player receives
	used     int         // colors with count > 0
	numChips int         // total chips one player receives
}

func (c *candidate) clone() *candidate {
	cc := &candidate{
		values:   make([]chips.Cents, len(c.values)),
		counts:   make([]int, len(c.counts)),
		value:    c.value,
		used:     c.used,
		numChips: c.numChips,
	}
	copy(cc.values, c.values)
	copy(cc.counts, c.counts)
	return cc
}

// scorer implements the candidate ranking. The relation is a total order, so
// merging worker-local bests is associative and commutative and the final
// winner does not depend on how the search space was partitioned.
type scorer struct {
	target    chips.Cents // 0 means no target: maximize usage
	tol       chips.Cents
	numColors int
}

func (sc *scorer) diff(c *candidate) chips.Cents {
	d := c.value - sc.target
	if d < 0 {
		d = -d
	}
	return d
}

// fullSpread reports whether the candidate gives every color at least one
// chip while staying within the tolerance of the target. Such candidates
// outrank everything else: diversity beats an exact value match once the
// match is close enough.
func (sc *scorer) fullSpread(c *candidate) bool {
	return c.used == sc.numColors && sc.diff(c) <= sc.tol
}

// better reports whether a outranks b. Tie-break chain: full-spread tier,
// then distance from target, then colors used, then chips per player, then
// lexicographic order over (values, counts) so exact ties still have a
// single reproducible winner. A nil candidate loses to any candidate.
func (sc *scorer) better(a, b *candidate) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if sc.target > 0 {
		af, bf := sc.fullSpread(a), sc.fullSpread(b)
		if af != bf {
			return af
		}
		ad, bd := sc.diff(a), sc.diff(b)
		if ad != bd {
			return ad < bd
		}
	}
	if a.used != b.used {
		return a.used > b.used
	}
	if a.numChips != b.numChips {
		return a.numChips > b.numChips
	}
	for i := range a.values {
		if a.values[i] != b.values[i] {
			return a.values[i] < b.values[i]
		}
	}
	for i := range a.counts {
		if a.counts[i] != b.counts[i] {
			return a.counts[i] < b.counts[i]
		}
	}
	return false
}
