package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var exampleColors = []string{"white", "red", "green", "blue", "black"}

// exampleValues pairs each example color with a denomination for the
// distribute-mode example.
var exampleValues = map[string]float64{
	"white": 0.05,
	"red":   0.10,
	"green": 0.25,
	"blue":  0.50,
	"black": 1.00,
}

// WriteExample writes an example YAML config to path. With withValues set
// the colors carry fixed denominations (distribute mode); otherwise they are
// plain counts (calculate mode). Refuses to overwrite unless force is set.
func WriteExample(path string, withValues, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, not overwriting", path)
		}
	}
	colors := make(map[string]any, len(exampleColors))
	for _, color := range exampleColors {
		if withValues {
			colors[color] = map[string]any{"count": 100, "value": exampleValues[color]}
		} else {
			colors[color] = 100
		}
	}
	data := map[string]any{
		"buy_in_per_person": 5.0,
		"num_players":       9,
		"chip_colors":       colors,
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
