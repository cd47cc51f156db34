package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".chrono")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
}

func TestLoadFile(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("CHRONO_SERVER", "")
		os.Unsetenv("CHRONO_SERVER")

		cfg, err := LoadFile()
		require.NoError(t, err)
		assert.Equal(t, DefaultServerURL, cfg.Server)
		assert.False(t, cfg.NonInteractive)
	})

	t.Run("file values are read", func(t *testing.T) {
		writeConfigFile(t, "server: http://calendar.example.com\nnon_interactive: true\n")

		cfg, err := LoadFile()
		require.NoError(t, err)
		assert.Equal(t, "http://calendar.example.com", cfg.Server)
		assert.True(t, cfg.NonInteractive)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		writeConfigFile(t, "server: http://from-file.example.com\n")
		t.Setenv("CHRONO_SERVER", "http://from-env.example.com")

		cfg, err := LoadFile()
		require.NoError(t, err)
		assert.Equal(t, "http://from-env.example.com", cfg.Server)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		writeConfigFile(t, "server: [broken\n")

		_, err := LoadFile()
		assert.Error(t, err)
	})
}

func TestContextInjection(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		cfg := &GlobalConfig{ServerURL: "http://localhost:8081"}
		ctx := InjectConfig(context.Background(), cfg)

		got, ok := FromContext(ctx)
		require.True(t, ok)
		assert.Same(t, cfg, got)
		assert.Same(t, cfg, MustFromContext(ctx))
	})

	t.Run("absent config", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
		assert.Panics(t, func() { MustFromContext(context.Background()) })
	})
}
