package chips

import (
	"fmt"
	"sort"
)

// ChipSet is the pool of physical chips available for a game, keyed by color
// name. It is read-only once constructed; the solver never mutates it.
type ChipSet struct {
	counts map[string]int
	colors []string
}

// NewChipSet builds a chip set from a color -> available count mapping.
// Counts must be non-negative. The color ordering used everywhere downstream
// (search, partitioning, tie-breaks, reports) is ascending by color name.
func NewChipSet(counts map[string]int) (*ChipSet, error) {
	cs := &ChipSet{
		counts: make(map[string]int, len(counts)),
		colors: make([]string, 0, len(counts)),
	}
	for color, count := range counts {
		if count < 0 {
			return nil, fmt.Errorf("chip count for %s must be non-negative, got %d", color, count)
		}
		cs.counts[color] = count
		cs.colors = append(cs.colors, color)
	}
	sort.Strings(cs.colors)
	return cs, nil
}

// Colors returns the color names in the fixed order (ascending by name).
// Callers must not modify the returned slice.
func (cs *ChipSet) Colors() []string {
	return cs.colors
}

// Count returns the available chips of the given color, or 0 if the color is
// not part of the set.
func (cs *ChipSet) Count(color string) int {
	return cs.counts[color]
}

// NumColors returns the number of distinct colors.
func (cs *ChipSet) NumColors() int {
	return len(cs.colors)
}

// TotalChips returns the total number of chips across all colors.
func (cs *ChipSet) TotalChips() int {
	total := 0
	for _, c := range cs.counts {
		total += c
	}
	return total
}
