package config

import "time"

// Strategy selects what happens on each tick of the render loop.
type Strategy string

const (
	// StrategyFull re-reads telemetry every refresh period and replaces the
	// animated text; the colour phase advances every frame period.
	StrategyFull Strategy = "full"

	// StrategyPhase composes once at startup and only advances the colour
	// phase afterwards.
	StrategyPhase Strategy = "phase"
)

// Config is the effective nimbus configuration.
type Config struct {
	// Glyph names the template to draw (see ascii.Names)
	Glyph string `yaml:"glyph" mapstructure:"glyph"`

	// Strategy is the refresh strategy
	Strategy Strategy `yaml:"strategy" mapstructure:"strategy"`

	// Refresh is the telemetry refresh period under StrategyFull
	Refresh time.Duration `yaml:"refresh" mapstructure:"refresh"`

	// Frame is the colour animation period
	Frame time.Duration `yaml:"frame" mapstructure:"frame"`

	// Speed scales the hue rotation per frame
	Speed float64 `yaml:"speed" mapstructure:"speed"`

	// MinWidth and MinHeight override the smallest terminal nimbus draws in.
	// Zero means the glyph's natural size.
	MinWidth  int `yaml:"min_width" mapstructure:"min_width"`
	MinHeight int `yaml:"min_height" mapstructure:"min_height"`

	// Border boxes the glyph
	Border bool `yaml:"border" mapstructure:"border"`

	// LogFile receives log output; empty disables logging
	LogFile string `yaml:"log_file" mapstructure:"log_file"`

	// Debug enables debug-level log messages
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Glyph:    "cloud",
		Strategy: StrategyFull,
		Refresh:  time.Second,
		Frame:    50 * time.Millisecond,
		Speed:    0.5,
	}
}
