// Package config loads nimbus settings from defaults, an optional YAML
// file, NIMBUS_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"nimbus/errors"
)

const (
	// EnvPrefix is the prefix for environment overrides (NIMBUS_GLYPH, ...).
	EnvPrefix = "NIMBUS"
	// GlobalConfigDir is the directory for the user config, relative to home.
	GlobalConfigDir = ".config/nimbus"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
)

// NewViper returns a viper instance with nimbus defaults and environment
// lookups registered. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("glyph", d.Glyph)
	v.SetDefault("strategy", string(d.Strategy))
	v.SetDefault("refresh", d.Refresh)
	v.SetDefault("frame", d.Frame)
	v.SetDefault("speed", d.Speed)
	v.SetDefault("min_width", d.MinWidth)
	v.SetDefault("min_height", d.MinHeight)
	v.SetDefault("border", d.Border)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("debug", d.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Find returns the config file to read: the explicit path when given,
// otherwise ~/.config/nimbus/config.yaml when it exists, otherwise "".
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Load reads the config file at path (if any) into v and returns the
// validated configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		where := "flags and NIMBUS_* variables"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+where)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML with durations in their string form.
func Marshal(cfg *Config) ([]byte, error) {
	out := struct {
		Glyph     string  `yaml:"glyph"`
		Strategy  string  `yaml:"strategy"`
		Refresh   string  `yaml:"refresh"`
		Frame     string  `yaml:"frame"`
		Speed     float64 `yaml:"speed"`
		MinWidth  int     `yaml:"min_width"`
		MinHeight int     `yaml:"min_height"`
		Border    bool    `yaml:"border"`
		LogFile   string  `yaml:"log_file,omitempty"`
		Debug     bool    `yaml:"debug"`
	}{
		Glyph:     cfg.Glyph,
		Strategy:  string(cfg.Strategy),
		Refresh:   cfg.Refresh.String(),
		Frame:     cfg.Frame.String(),
		Speed:     cfg.Speed,
		MinWidth:  cfg.MinWidth,
		MinHeight: cfg.MinHeight,
		Border:    cfg.Border,
		LogFile:   cfg.LogFile,
		Debug:     cfg.Debug,
	}
	return yaml.Marshal(out)
}
