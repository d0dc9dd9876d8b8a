// Package report renders a DistributionResult for humans. The report layer
// only formats; everything it prints comes straight off the result struct.
package report

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/cardfelt/chipsplit/chips"
)

// Render formats the full distribution report.
func Render(res *chips.DistributionResult) string {
	var ss strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(&ss, "%s\nPOKER CHIP DISTRIBUTION\n%s\n\n", rule, rule)

	ss.WriteString("Game:\n")
	if res.Target > 0 {
		fmt.Fprintf(&ss, "  Buy-in per player: %v\n", res.Target)
		fmt.Fprintf(&ss, "  Players: %d\n", res.NumPlayers)
		fmt.Fprintf(&ss, "  Total pot: %v\n", res.Target*chips.Cents(res.NumPlayers))
	} else {
		fmt.Fprintf(&ss, "  Players: %d (no buy-in target, maximizing chip usage)\n", res.NumPlayers)
	}

	ss.WriteString("\nChip values:\n")
	for _, color := range res.Colors {
		fmt.Fprintf(&ss, "  %-10s %v\n", title(color)+":", res.Assignment[color])
	}

	ss.WriteString("\nPer player:\n")
	for _, color := range res.Colors {
		count := res.PerPlayer[color]
		fmt.Fprintf(&ss, "  %-10s %d chips (%v)\n",
			title(color)+":", count, chips.Cents(count)*res.Assignment[color])
	}
	fmt.Fprintf(&ss, "  Total per player: %v", res.ValuePerPlayer)
	if res.Target > 0 {
		diff := res.ValuePerPlayer - res.Target
		if diff < 0 {
			diff = -diff
		}
		fmt.Fprintf(&ss, " (target %v, error %v / %.1f%%)",
			res.Target, diff, 100*float64(diff)/float64(res.Target))
	}
	ss.WriteString("\n")

	leftover := lo.Filter(res.Colors, func(color string, _ int) bool {
		return res.Unused[color] > 0
	})
	if len(leftover) == 0 {
		ss.WriteString("\nUnused chips: none - perfect efficiency!\n")
	} else {
		fmt.Fprintf(&ss, "\nUnused chips (%v total value):\n", res.UnusedValue)
		for _, color := range leftover {
			fmt.Fprintf(&ss, "  %-10s %d chips\n", title(color)+":", res.Unused[color])
		}
	}
	fmt.Fprintf(&ss, "\nEfficiency: %.1f%% (%d of %d chips in play)\n",
		res.Efficiency, res.TotalChipsUsed, res.TotalChipsUsed+res.TotalChipsUnused)
	return ss.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
