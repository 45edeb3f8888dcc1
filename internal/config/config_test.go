package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "frozentoes.log", conf.LogFile)
		assert.False(t, conf.Window.DisableMouse)
		assert.Equal(t, 7, conf.Window.CellWidth)
		assert.Equal(t, 3, conf.Window.CellHeight)
	})

	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		data := "log-level: debug\nlog-file: \"-\"\nwindow:\n  disable-mouse: true\n  cell-width: 9\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values win and missing ones keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "-", conf.LogFile)
		assert.True(t, conf.Window.DisableMouse)
		assert.Equal(t, 9, conf.Window.CellWidth)
		assert.Equal(t, 3, conf.Window.CellHeight)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CELL_HEIGHT", "5")

		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.Window.CellHeight)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("window: [\n"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
