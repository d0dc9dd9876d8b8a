package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/cardfelt/chipsplit/chips"
)

func standardSet(t *testing.T) *chips.ChipSet {
	t.Helper()
	set, err := chips.NewChipSet(map[string]int{
		"white": 100, "red": 100, "green": 100, "blue": 100, "black": 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func standardValues() chips.ValueAssignment {
	return chips.ValueAssignment{
		"white": 5, "red": 10, "green": 25, "blue": 50, "black": 100,
	}
}

func TestDistributeStandardGame(t *testing.T) {
	is := is.New(t)
	sv := New(standardSet(t), 9, Options{})
	res, err := sv.Distribute(context.Background(), standardValues(), 500)
	is.NoErr(err)

	is.Equal(res.PerPlayer, chips.PerPlayerAllocation{
		"white": 10, "red": 10, "green": 8, "blue": 1, "black": 1,
	})
	is.Equal(res.ValuePerPlayer, chips.Cents(500)) // exact buy-in
	is.Equal(res.Target, chips.Cents(500))
	is.Equal(res.NumPlayers, 9)
	is.Equal(res.TotalChipsUsed, 270)
	is.Equal(res.TotalChipsUnused, 230)
	is.Equal(res.Efficiency, 54.0)
	is.True(sv.Nodes() > 0)
}

func TestDistributeSupplyInvariant(t *testing.T) {
	is := is.New(t)
	set := standardSet(t)
	sv := New(set, 9, Options{})
	res, err := sv.Distribute(context.Background(), standardValues(), 500)
	is.NoErr(err)

	for _, color := range res.Colors {
		used := res.PerPlayer[color] * res.NumPlayers
		is.True(used <= set.Count(color))
		is.Equal(res.Unused[color], set.Count(color)-used)
	}
}

func TestDistributeDeterministicAcrossThreads(t *testing.T) {
	is := is.New(t)
	var first *chips.DistributionResult
	for _, threads := range []int{1, 2, 8} {
		sv := New(standardSet(t), 9, Options{Threads: threads})
		res, err := sv.Distribute(context.Background(), standardValues(), 500)
		is.NoErr(err)
		if first == nil {
			first = res
			continue
		}
		is.Equal(res, first) // winner must not depend on partitioning
	}
}

func TestCalculateSmallCatalog(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{"red": 100, "white": 100})
	is.NoErr(err)
	catalog, err := chips.NewCatalog([]chips.Cents{5, 10, 25})
	is.NoErr(err)

	sv := New(set, 4, Options{})
	res, err := sv.Calculate(context.Background(), catalog, 100)
	is.NoErr(err)

	// Exact buy-in with both colors and the most chips per player; the
	// mirrored 19-chip pairing loses the value tie-break.
	is.Equal(res.Assignment, chips.ValueAssignment{"red": 5, "white": 10})
	is.Equal(res.PerPlayer, chips.PerPlayerAllocation{"red": 18, "white": 1})
	is.Equal(res.ValuePerPlayer, chips.Cents(100))
}

func TestCalculateAssignsDistinctValues(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{"a": 10, "b": 10, "c": 10})
	is.NoErr(err)
	sv := New(set, 2, Options{})
	res, err := sv.Calculate(context.Background(), chips.DefaultCatalog(), 325)
	is.NoErr(err)

	seen := map[chips.Cents]bool{}
	for _, color := range res.Colors {
		v := res.Assignment[color]
		is.True(v > 0)
		is.True(!seen[v]) // injective assignment
		seen[v] = true
	}
}

func TestCalculateDeterministicAcrossThreads(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{"red": 100, "white": 100})
	is.NoErr(err)
	catalog, err := chips.NewCatalog([]chips.Cents{5, 10, 25})
	is.NoErr(err)

	var first *chips.DistributionResult
	for _, threads := range []int{1, 3, 7} {
		sv := New(set, 4, Options{Threads: threads})
		res, err := sv.Calculate(context.Background(), catalog, 100)
		is.NoErr(err)
		if first == nil {
			first = res
			continue
		}
		is.Equal(res, first)
	}
}

func TestCalculateInsufficientDenominations(t *testing.T) {
	is := is.New(t)
	sv := New(standardSet(t), 9, Options{})
	catalog, err := chips.NewCatalog([]chips.Cents{5, 10, 25})
	is.NoErr(err)
	_, err = sv.Calculate(context.Background(), catalog, 500)
	is.True(errors.Is(err, ErrInsufficientDenominations))
}

func TestDistributeNoFeasibleAllocation(t *testing.T) {
	is := is.New(t)
	// Three chips among four players: nobody can get even one.
	set, err := chips.NewChipSet(map[string]int{"red": 3})
	is.NoErr(err)
	sv := New(set, 4, Options{})
	_, err = sv.Distribute(context.Background(), chips.ValueAssignment{"red": 25}, 100)
	is.True(errors.Is(err, ErrNoFeasibleAllocation))
}

func TestEmptyChipSet(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{})
	is.NoErr(err)
	sv := New(set, 4, Options{})

	res, err := sv.Distribute(context.Background(), chips.ValueAssignment{}, 100)
	is.NoErr(err)
	is.Equal(res.Efficiency, 0.0)
	is.Equal(res.TotalChipsUsed, 0)
	is.Equal(len(res.PerPlayer), 0)

	res, err = sv.Calculate(context.Background(), chips.DefaultCatalog(), 100)
	is.NoErr(err)
	is.Equal(res.Efficiency, 0.0)
}

func TestFullSpreadPreferredWithinTolerance(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{"gold": 1, "silver": 1})
	is.NoErr(err)
	sv := New(set, 1, Options{})
	// 115 misses the 100 target by 15, inside the default 25 window, and
	// uses every color; it must beat the exact single-color match.
	res, err := sv.Distribute(context.Background(),
		chips.ValueAssignment{"gold": 100, "silver": 15}, 100)
	is.NoErr(err)
	is.Equal(res.PerPlayer, chips.PerPlayerAllocation{"gold": 1, "silver": 1})
	is.Equal(res.ValuePerPlayer, chips.Cents(115))
}

func TestCloserMatchPreferredOutsideTolerance(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{"gold": 1, "silver": 1})
	is.NoErr(err)
	sv := New(set, 1, Options{})
	// 140 misses by 40, outside the window, so the exact match wins even
	// though it leaves silver unused.
	res, err := sv.Distribute(context.Background(),
		chips.ValueAssignment{"gold": 100, "silver": 40}, 100)
	is.NoErr(err)
	is.Equal(res.PerPlayer, chips.PerPlayerAllocation{"gold": 1, "silver": 0})
	is.Equal(res.ValuePerPlayer, chips.Cents(100))
}

func TestDistributeMaximizeUsage(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{"x": 10, "y": 5})
	is.NoErr(err)
	sv := New(set, 2, Options{})
	res, err := sv.Distribute(context.Background(),
		chips.ValueAssignment{"x": 5, "y": 25}, 0)
	is.NoErr(err)
	is.Equal(res.Target, chips.Cents(0))
	is.Equal(res.PerPlayer, chips.PerPlayerAllocation{"x": 5, "y": 2})
	is.Equal(res.ValuePerPlayer, chips.Cents(75))
	is.Equal(res.TotalChipsUsed, 14)
	is.Equal(res.Unused, map[string]int{"x": 0, "y": 1})
}

func TestDistributeRejectsBadAssignments(t *testing.T) {
	set, err := chips.NewChipSet(map[string]int{"red": 10, "white": 10})
	if err != nil {
		t.Fatal(err)
	}
	sv := New(set, 2, Options{})
	for name, assignment := range map[string]chips.ValueAssignment{
		"missing color":   {"red": 25},
		"zero value":      {"red": 25, "white": 0},
		"negative value":  {"red": 25, "white": -5},
		"duplicate value": {"red": 25, "white": 25},
	} {
		if _, err := sv.Distribute(context.Background(), assignment, 100); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestCustomTolerance(t *testing.T) {
	is := is.New(t)
	set, err := chips.NewChipSet(map[string]int{"gold": 1, "silver": 1})
	is.NoErr(err)
	// Widen the window to 50 and the 140 full spread wins after all.
	sv := New(set, 1, Options{Tolerance: 50})
	res, err := sv.Distribute(context.Background(),
		chips.ValueAssignment{"gold": 100, "silver": 40}, 100)
	is.NoErr(err)
	is.Equal(res.PerPlayer, chips.PerPlayerAllocation{"gold": 1, "silver": 1})
}

func TestSolverDefaults(t *testing.T) {
	is := is.New(t)
	sv := New(standardSet(t), 9, Options{})
	is.True(sv.Threads() >= 1)
	sv = New(standardSet(t), 9, Options{Threads: 3})
	is.Equal(sv.Threads(), 3)
}
