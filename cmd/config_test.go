package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "minesweepah.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestConfigLayers(t *testing.T) {
	config := NewConfig()
	assert.Equal(t, 25, config.Width)
	assert.Equal(t, 45, config.Height)
	assert.Equal(t, 0.25, config.Mineiness)
	assert.Equal(t, time.Second, config.TickInterval)

	path := writeConfigFile(t, "width: 9\nheight: 9\nmineiness: 0.1\ntick_interval: 250ms\n")
	require.NoError(t, config.LoadFile(path))
	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 9, config.Height)
	assert.Equal(t, 0.1, config.Mineiness)
	assert.Equal(t, 250*time.Millisecond, config.TickInterval)

	require.NoError(t, config.LoadEnv(map[string]string{
		"MINESWEEPAH_HEIGHT":   "16",
		"MINESWEEPAH_DIRECTOR": "true",
		"UNRELATED":            "x",
	}))
	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 16, config.Height)
	assert.True(t, config.Director)

	gameConfig := config.GameConfig()
	assert.Equal(t, 9, gameConfig.Width)
	assert.Equal(t, 16, gameConfig.Height)
	assert.Equal(t, 0.1, gameConfig.Mineiness)
	assert.Equal(t, 250*time.Millisecond, gameConfig.TickInterval)
}

func TestConfigErrors(t *testing.T) {
	config := NewConfig()

	assert.Error(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, config.LoadFile(writeConfigFile(t, "widht: 9\n")))
	assert.Error(t, config.LoadEnv(map[string]string{"MINESWEEPAH_WIDTH": "wide"}))
}

func TestStrategy(t *testing.T) {
	var strategy Strategy
	require.NoError(t, strategy.Set("random"))
	assert.Equal(t, Random, strategy)
	assert.Equal(t, "random", strategy.String())
	assert.Error(t, strategy.Set("psychic"))

	config := NewConfig()
	assert.Equal(t, Constraint, config.Strategy)

	require.NoError(t, config.LoadFile(writeConfigFile(t, "strategy: random\n")))
	assert.Equal(t, Random, config.Strategy)

	require.NoError(t, config.LoadEnv(map[string]string{"MINESWEEPAH_STRATEGY": "constraint"}))
	assert.Equal(t, Constraint, config.Strategy)

	assert.Error(t, config.LoadFile(writeConfigFile(t, "strategy: psychic\n")))
}
