package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/halfsum/partition"
)

// Config is the host program's configuration. It is loaded from an optional
// YAML file and then overridden by explicitly set flags.
type Config struct {
	Mode     string `yaml:"mode"`     // "full" or "rolling"
	MaxCells int    `yaml:"maxCells"` // table budget; 0 keeps the library default
	LogLevel string `yaml:"logLevel"` // logrus level name
	Table    bool   `yaml:"table"`    // render the DP table
	Split    bool   `yaml:"split"`    // print both groups
}

// defaultConfig mirrors the library defaults.
func defaultConfig() Config {
	return Config{
		Mode:     partition.DefaultMemoryMode.String(),
		LogLevel: "info",
	}
}

// loadConfig reads path into a copy of base. An empty path returns base.
func loadConfig(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg := base
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("decode config %q: %w", path, err)
	}

	return cfg, nil
}

// options converts the config into solver options.
func (c Config) options() ([]partition.Option, error) {
	mode, err := partition.ParseMemoryMode(c.Mode)
	if err != nil {
		return nil, fmt.Errorf("mode %q: %w", c.Mode, err)
	}
	if c.MaxCells < 0 {
		return nil, fmt.Errorf("maxCells %d must be >= 0", c.MaxCells)
	}
	if (c.Table || c.Split) && mode != partition.FullTable {
		return nil, fmt.Errorf("table/split output: %w", partition.ErrTableNeedsFullMode)
	}

	opts := []partition.Option{partition.WithMemoryMode(mode)}
	if c.MaxCells > 0 {
		opts = append(opts, partition.WithMaxCells(c.MaxCells))
	}

	return opts, nil
}
