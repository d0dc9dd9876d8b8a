// Package config loads and validates game configuration: the chip colors
// with their counts (and, for distribute mode, fixed values), the buy-in per
// player, and the player count. Files are YAML; scalar fields can be
// overridden through CHIPSPLIT_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/cardfelt/chipsplit/chips"
)

// ChipColor is one color entry: how many chips are available and, optionally,
// what each one is worth in dollars. A nil Value means calculate mode will
// pick the denomination.
type ChipColor struct {
	Count int
	Value *float64
}

// GameConfig is one game's setup.
type GameConfig struct {
	BuyInPerPerson float64
	NumPlayers     int
	// Tolerance is the close-enough window in dollars; 0 keeps the solver
	// default.
	Tolerance  float64
	ChipColors map[string]ChipColor
}

// Load reads a YAML config file. Two color forms are accepted: the legacy
// plain count (`white: 100`) and the rich form
// (`white: {count: 100, value: 0.25}`).
func Load(path string) (*GameConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("chipsplit")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	colors, err := parseColors(v.Get("chip_colors"))
	if err != nil {
		return nil, err
	}
	cfg := &GameConfig{
		BuyInPerPerson: v.GetFloat64("buy_in_per_person"),
		NumPlayers:     v.GetInt("num_players"),
		Tolerance:      v.GetFloat64("tolerance"),
		ChipColors:     colors,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseColors(raw any) (map[string]ChipColor, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("chip_colors must map color names to a count or to {count, value}")
	}
	colors := make(map[string]ChipColor, len(m))
	for color, entry := range m {
		switch e := entry.(type) {
		case map[string]any:
			count, ok := toInt(e["count"])
			if !ok {
				return nil, fmt.Errorf("chip color %s: missing or invalid count", color)
			}
			cc := ChipColor{Count: count}
			if rawValue, present := e["value"]; present {
				value, ok := toFloat(rawValue)
				if !ok {
					return nil, fmt.Errorf("chip color %s: invalid value", color)
				}
				cc.Value = &value
			}
			colors[color] = cc
		default:
			// Legacy form: just a count.
			count, ok := toInt(entry)
			if !ok {
				return nil, fmt.Errorf("chip color %s: expected a count or {count, value}, got %T", color, entry)
			}
			colors[color] = ChipColor{Count: count}
		}
	}
	return colors, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Validate checks the invariants the solver assumes: positive buy-in and
// player count, non-negative chip counts, positive values where given.
func (c *GameConfig) Validate() error {
	if c.BuyInPerPerson <= 0 {
		return fmt.Errorf("buy_in_per_person must be positive, got %v", c.BuyInPerPerson)
	}
	if c.NumPlayers <= 0 {
		return fmt.Errorf("num_players must be positive, got %d", c.NumPlayers)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %v", c.Tolerance)
	}
	for color, cc := range c.ChipColors {
		if cc.Count < 0 {
			return fmt.Errorf("chip count for %s must be non-negative, got %d", color, cc.Count)
		}
		if cc.Value != nil && *cc.Value <= 0 {
			return fmt.Errorf("chip value for %s must be positive, got %v", color, *cc.Value)
		}
	}
	return nil
}

// ChipSet builds the read-only chip pool from the color counts.
func (c *GameConfig) ChipSet() (*chips.ChipSet, error) {
	counts := make(map[string]int, len(c.ChipColors))
	for color, cc := range c.ChipColors {
		counts[color] = cc.Count
	}
	return chips.NewChipSet(counts)
}

// FixedValues returns the per-color denominations for distribute mode.
// Every color must carry a value; missing colors are reported sorted.
func (c *GameConfig) FixedValues() (chips.ValueAssignment, error) {
	assignment := make(chips.ValueAssignment, len(c.ChipColors))
	var missing []string
	for color, cc := range c.ChipColors {
		if cc.Value == nil {
			missing = append(missing, color)
			continue
		}
		assignment[color] = chips.FromDollars(*cc.Value)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing values for colors %v: distribute mode requires a value on every color", missing)
	}
	return assignment, nil
}

// HasFixedValues reports whether every color carries a value.
func (c *GameConfig) HasFixedValues() bool {
	for _, cc := range c.ChipColors {
		if cc.Value == nil {
			return false
		}
	}
	return true
}

// BuyInCents returns the buy-in target in cents.
func (c *GameConfig) BuyInCents() chips.Cents {
	return chips.FromDollars(c.BuyInPerPerson)
}

// ToleranceCents returns the tolerance in cents, or 0 when unset.
func (c *GameConfig) ToleranceCents() chips.Cents {
	if c.Tolerance == 0 {
		return 0
	}
	return chips.FromDollars(c.Tolerance)
}
