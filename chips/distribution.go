package chips

// ValueAssignment maps each color to the denomination assigned to it. In
// calculate mode the solver searches over assignments; in distribute mode it
// comes straight from the config. Denominations are pairwise distinct across
// colors.
type ValueAssignment map[string]Cents

// PerPlayerAllocation maps each color to the number of chips a single player
// receives. For every color, count * numPlayers never exceeds the available
// stock.
type PerPlayerAllocation map[string]int

// DistributionResult is the final reportable outcome of a search. It is
// built once from the winning candidate and never mutated afterwards.
type DistributionResult struct {
	// Colors lists the color names in the fixed order; iterate with this
	// rather than ranging over the maps.
	Colors []string

	Assignment ValueAssignment
	PerPlayer  PerPlayerAllocation

	// ValuePerPlayer is the total monetary value one player receives.
	ValuePerPlayer Cents
	// Target is the buy-in target the search aimed for; 0 when the search
	// ran in maximize-usage mode.
	Target     Cents
	NumPlayers int

	// Unused maps color to chips left over after all players are served.
	Unused map[string]int

	TotalChipsUsed   int
	TotalChipsUnused int
	UnusedValue      Cents

	// Efficiency is the percentage of available chips handed out, in
	// [0, 100]. An empty chip set yields 0 by convention.
	Efficiency float64
}
