// Package solver implements the chip split search engine: it pairs value
// assignments (which denomination each color is worth) with per-player
// allocations (how many chips of each color one player gets) and returns the
// best-scoring pairing. In calculate mode it searches over assignments drawn
// from a denomination catalog; in distribute mode the assignment is fixed
// and only allocations are searched. Both modes evaluate candidates in
// parallel, and the winner is identical regardless of thread count.
package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cardfelt/chipsplit/chips"
)

var (
	// ErrInsufficientDenominations is returned in calculate mode when the
	// catalog holds fewer values than there are colors to assign.
	ErrInsufficientDenominations = errors.New("not enough denominations for all colors")
	// ErrNoFeasibleAllocation is returned when no allocation can hand out a
	// single chip within the supply constraints.
	ErrNoFeasibleAllocation = errors.New("no feasible allocation")
	// ErrSearchFailed wraps a worker-level failure. Partial results are
	// never returned in that case.
	ErrSearchFailed = errors.New("search failed")
)

// DefaultTolerance is the "close enough" window around the buy-in target
// within which a full-spread allocation outranks a closer value match.
const DefaultTolerance = chips.Cents(25)

// Options tunes a Solver. The zero value picks the defaults.
type Options struct {
	// Tolerance overrides DefaultTolerance when positive.
	Tolerance chips.Cents
	// Threads overrides the worker count; defaults to the CPU count.
	Threads int
}

// Solver searches for the best chip distribution for one game setup. The
// chip set is read-only; a Solver may be reused for several searches.
type Solver struct {
	set     *chips.ChipSet
	players int
	tol     chips.Cents
	threads int
	nodes   atomic.Uint64
}

// New creates a solver for the given chip set and player count. players must
// be positive; that is validated by the config layer and only assumed here.
func New(set *chips.ChipSet, players int, opts Options) *Solver {
	s := &Solver{
		set:     set,
		players: players,
		tol:     DefaultTolerance,
		threads: max(1, runtime.NumCPU()),
	}
	if opts.Tolerance > 0 {
		s.tol = opts.Tolerance
	}
	if opts.Threads > 0 {
		s.threads = opts.Threads
	}
	return s
}

// Threads returns the worker count used for searches.
func (s *Solver) Threads() int {
	return s.threads
}

// Nodes returns the number of allocations evaluated by the last search.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Calculate runs the calculate mode: search every injective assignment of
// catalog denominations to colors, and for each assignment every bounded
// per-player allocation, returning the best pairing. target is the buy-in
// per player; pass 0 to maximize chip usage with no proximity term.
func (s *Solver) Calculate(ctx context.Context, catalog chips.Catalog, target chips.Cents) (*chips.DistributionResult, error) {
	colors := s.set.Colors()
	if len(colors) == 0 {
		return s.emptyResult(target), nil
	}
	if len(catalog) < len(colors) {
		return nil, fmt.Errorf("%w: %d values for %d colors",
			ErrInsufficientDenominations, len(catalog), len(colors))
	}
	sc := &scorer{target: target, tol: s.tol, numColors: len(colors)}
	s.nodes.Store(0)

	log.Info().
		Int("colors", len(colors)).
		Int("catalog", len(catalog)).
		Uint64("assignments", AssignmentSpace(len(catalog), len(colors))).
		Int("threads", s.threads).
		Msg("starting assignment search")
	start := time.Now()

	best, err := s.searchAssignments(ctx, catalog, sc, s.stock(colors))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	s.logDone(start)
	if best == nil {
		return nil, ErrNoFeasibleAllocation
	}
	return s.buildResult(sc, best, colors), nil
}

// Distribute runs the distribute mode: the denomination of every color is
// fixed by the caller and only per-player allocations are searched. target
// is the buy-in per player; pass 0 to maximize chip usage.
func (s *Solver) Distribute(ctx context.Context, assignment chips.ValueAssignment, target chips.Cents) (*chips.DistributionResult, error) {
	colors := s.set.Colors()
	if len(colors) == 0 {
		return s.emptyResult(target), nil
	}
	values := make([]chips.Cents, len(colors))
	seen := make(map[chips.Cents]string, len(colors))
	for i, color := range colors {
		v, ok := assignment[color]
		if !ok {
			return nil, fmt.Errorf("no value assigned to color %s", color)
		}
		if v <= 0 {
			return nil, fmt.Errorf("value for color %s must be positive, got %v", color, v)
		}
		if prev, dup := seen[v]; dup {
			return nil, fmt.Errorf("colors %s and %s share denomination %v", prev, color, v)
		}
		seen[v] = color
		values[i] = v
	}
	sc := &scorer{target: target, tol: s.tol, numColors: len(colors)}
	s.nodes.Store(0)

	log.Info().
		Int("colors", len(colors)).
		Int("threads", s.threads).
		Msg("starting allocation search")
	start := time.Now()

	best, err := s.searchAllocations(ctx, sc, s.stock(colors), values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	s.logDone(start)
	if best == nil {
		return nil, ErrNoFeasibleAllocation
	}
	return s.buildResult(sc, best, colors), nil
}

func (s *Solver) stock(colors []string) []int {
	stock := make([]int, len(colors))
	for i, color := range colors {
		stock[i] = s.set.Count(color)
	}
	return stock
}

func (s *Solver) logDone(start time.Time) {
	elapsed := time.Since(start)
	nodes := s.nodes.Load()
	log.Info().
		Dur("elapsed", elapsed).
		Uint64("nodes", nodes).
		Float64("nps", float64(nodes)/elapsed.Seconds()).
		Msg("search done")
}
