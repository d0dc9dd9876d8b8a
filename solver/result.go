package solver

import "github.com/cardfelt/chipsplit/chips"

// buildResult converts the winning candidate into the reportable
// distribution: per-player maps, unused stock per color, unused value, and
// the efficiency percentage.
func (s *Solver) buildResult(sc *scorer, best *candidate, colors []string) *chips.DistributionResult {
	res := &chips.DistributionResult{
		Colors:         colors,
		Assignment:     make(chips.ValueAssignment, len(colors)),
		PerPlayer:      make(chips.PerPlayerAllocation, len(colors)),
		Unused:         make(map[string]int, len(colors)),
		ValuePerPlayer: best.value,
		Target:         sc.target,
		NumPlayers:     s.players,
	}
	for i, color := range colors {
		res.Assignment[color] = best.values[i]
		res.PerPlayer[color] = best.counts[i]
		used := best.counts[i] * s.players
		unused := s.set.Count(color) - used
		res.Unused[color] = unused
		res.TotalChipsUsed += used
		res.TotalChipsUnused += unused
		res.UnusedValue += chips.Cents(unused) * best.values[i]
	}
	if available := s.set.TotalChips(); available > 0 {
		res.Efficiency = 100 * float64(res.TotalChipsUsed) / float64(available)
	}
	return res
}

// emptyResult covers the empty chip set: nothing to assign or allocate,
// efficiency 0 by convention, and no error.
func (s *Solver) emptyResult(target chips.Cents) *chips.DistributionResult {
	return &chips.DistributionResult{
		Colors:     []string{},
		Assignment: chips.ValueAssignment{},
		PerPlayer:  chips.PerPlayerAllocation{},
		Unused:     map[string]int{},
		Target:     target,
		NumPlayers: s.players,
	}
}
