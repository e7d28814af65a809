package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halfsum/partition"
)

// TestLoadConfig_EmptyPath returns the base unchanged.
func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := loadConfig("", defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestLoadConfig_Partial keeps defaults for keys the file omits.
func TestLoadConfig_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxCells: 500\nsplit: true\n"), 0o600))

	cfg, err := loadConfig(path, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "full", cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500, cfg.MaxCells)
	assert.True(t, cfg.Split)
}

// TestLoadConfig_Malformed surfaces YAML errors.
func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxCells: [1, 2\n"), 0o600))

	_, err := loadConfig(path, defaultConfig())
	assert.Error(t, err)
}

// TestConfig_Options validates conversion into solver options.
func TestConfig_Options(t *testing.T) {
	opts, err := Config{Mode: "rolling", MaxCells: 10}.options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	_, err = Config{Mode: "full", MaxCells: -1}.options()
	assert.Error(t, err)

	_, err = Config{Mode: "rolling", Split: true}.options()
	assert.ErrorIs(t, err, partition.ErrTableNeedsFullMode)

	_, err = Config{Mode: "bogus"}.options()
	assert.ErrorIs(t, err, partition.ErrUnknownMode)
}
