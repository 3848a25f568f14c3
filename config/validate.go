package config

import (
	"fmt"
	"strings"

	"nimbus/ascii"
	"nimbus/errors"
)

// Validate checks cfg for values the render loop cannot work with.
func Validate(cfg *Config) error {
	if _, ok := ascii.Lookup(cfg.Glyph); !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown glyph %q", cfg.Glyph),
			"Use one of: "+strings.Join(ascii.Names(), ", "))
	}

	switch cfg.Strategy {
	case StrategyFull, StrategyPhase:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown refresh strategy %q", cfg.Strategy),
			fmt.Sprintf("Use %q to refresh telemetry or %q to only cycle colours", StrategyFull, StrategyPhase))
	}

	if cfg.Frame <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Frame period must be positive, got %s", cfg.Frame),
			"Try --frame 50ms")
	}
	if cfg.Strategy == StrategyFull && cfg.Refresh <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh period must be positive, got %s", cfg.Refresh),
			"Try --refresh 1s")
	}
	if cfg.Speed <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Animation speed must be positive, got %g", cfg.Speed),
			"Try --speed 0.5")
	}
	if cfg.MinWidth < 0 || cfg.MinHeight < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Minimum terminal size cannot be negative, got %dx%d", cfg.MinWidth, cfg.MinHeight),
			"Use 0 to size by the glyph")
	}

	return nil
}
