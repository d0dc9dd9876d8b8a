package report

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/cardfelt/chipsplit/chips"
)

func sampleResult() *chips.DistributionResult {
	return &chips.DistributionResult{
		Colors:           []string{"black", "white"},
		Assignment:       chips.ValueAssignment{"black": 100, "white": 5},
		PerPlayer:        chips.PerPlayerAllocation{"black": 4, "white": 20},
		Unused:           map[string]int{"black": 64, "white": 0},
		ValuePerPlayer:   500,
		Target:           500,
		NumPlayers:       9,
		TotalChipsUsed:   216,
		TotalChipsUnused: 64,
		UnusedValue:      6400,
		Efficiency:       77.1,
	}
}

func TestRender(t *testing.T) {
	is := is.New(t)
	out := Render(sampleResult())

	for _, want := range []string{
		"POKER CHIP DISTRIBUTION",
		"Buy-in per player: $5.00",
		"Players: 9",
		"Total pot: $45.00",
		"Black:     $1.00",
		"White:     $0.05",
		"Black:     4 chips ($4.00)",
		"White:     20 chips ($1.00)",
		"Total per player: $5.00 (target $5.00, error $0.00 / 0.0%)",
		"Unused chips ($64.00 total value):",
		"Black:     64 chips",
		"Efficiency: 77.1% (216 of 280 chips in play)",
	} {
		is.True(strings.Contains(out, want)) // want
	}
	// White has nothing left over, so only black appears under unused.
	unused := out[strings.Index(out, "Unused chips"):]
	is.True(!strings.Contains(unused, "White"))
}

func TestRenderPerfectEfficiency(t *testing.T) {
	is := is.New(t)
	res := sampleResult()
	res.Unused = map[string]int{"black": 0, "white": 0}
	res.TotalChipsUnused = 0
	res.UnusedValue = 0
	res.Efficiency = 100

	out := Render(res)
	is.True(strings.Contains(out, "Unused chips: none - perfect efficiency!"))
	is.True(strings.Contains(out, "Efficiency: 100.0%"))
}

func TestRenderNoTarget(t *testing.T) {
	is := is.New(t)
	res := sampleResult()
	res.Target = 0

	out := Render(res)
	is.True(strings.Contains(out, "no buy-in target, maximizing chip usage"))
	is.True(!strings.Contains(out, "Total pot"))
	is.True(!strings.Contains(out, "target $"))
}
