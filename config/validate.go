package config

import (
	"fmt"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/key"
)

// Validate checks a value about to be stored under k.
func Validate(k string, v any) error {
	switch k {
	case key.HighlightColors:
		colors, ok := v.([]string)
		if !ok {
			return fmt.Errorf("%s: expected a list of colors", k)
		}
		for _, c := range colors {
			if _, err := color.Normalize(c); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	case key.GenerationMinLightness, key.GenerationMaxLightness:
		f, ok := v.(float64)
		if !ok || f < 0 || f > 1 {
			return fmt.Errorf("%s: expected a number between 0 and 1, got %v", k, v)
		}
	case key.GenerationSaturation:
		f, ok := v.(float64)
		if !ok || f > 1 {
			return fmt.Errorf("%s: expected a number up to 1, got %v", k, v)
		}
	}

	return nil
}
