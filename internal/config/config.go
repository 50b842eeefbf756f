// Package config loads CLI defaults from an optional config file and
// the environment.
package config

import (
	"github.com/spf13/viper"
)

// Config holds the CLI defaults. Flags still win over everything here.
type Config struct {
	// MappingPath is the default mapping file used by redact/analyze
	// when --mapping is not given.
	MappingPath string
	// Patterns is the default detector selection for redact.
	Patterns []string
	// Verbose enables debug logging by default.
	Verbose bool
}

// Load reads config.yaml from the given directories (first hit wins)
// and applies VEIL_* environment overrides (VEIL_MAPPING, VEIL_PATTERNS,
// VEIL_VERBOSE). A missing config file is not an error; defaults and
// env vars still apply.
func Load(configPaths ...string) (Config, error) {
	cfg := Config{}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()
	v.SetEnvPrefix("VEIL")

	v.BindEnv("mapping")
	v.BindEnv("patterns")
	v.BindEnv("verbose")

	if len(configPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return cfg, err
			}
		}
	}

	if v.IsSet("mapping") {
		cfg.MappingPath = v.GetString("mapping")
	}
	if v.IsSet("patterns") {
		cfg.Patterns = v.GetStringSlice("patterns")
	}
	if v.IsSet("verbose") {
		cfg.Verbose = v.GetBool("verbose")
	}

	return cfg, nil
}
