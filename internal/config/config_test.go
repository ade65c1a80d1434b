package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	conf, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", conf.LogLevel)
	assert.Zero(t, conf.Seed)
	assert.Nil(t, conf.DriverOptions())

	got := conf.Engine()
	want := engine.DefaultConfig()
	assert.Equal(t, want.Rows, got.Rows)
	assert.Equal(t, want.Columns, got.Columns)
	assert.Equal(t, want.DropSpeed, got.DropSpeed)
	assert.Equal(t, want.Preview, got.Preview)
	assert.False(t, got.StrictSpawn)
	assert.False(t, got.HoldOncePerLock)
	assert.Same(t, want.Catalog, got.Catalog)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("BLOCKFALL_ROWS", "24")
	t.Setenv("BLOCKFALL_DROP_SPEED", "4.5")
	t.Setenv("BLOCKFALL_STRICT_SPAWN", "true")
	t.Setenv("BLOCKFALL_SEED", "77")

	conf, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 24, conf.Game.Rows)
	assert.Equal(t, 4.5, conf.Game.DropSpeed)
	assert.True(t, conf.Engine().StrictSpawn)
	assert.Equal(t, uint64(77), conf.Seed)
	assert.Len(t, conf.DriverOptions(), 1)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
log-level: debug
game:
  rows: 16
  columns: 8
  hold-once-per-lock: true
`)

	t.Run("file values", func(t *testing.T) {
		conf, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 16, conf.Game.Rows)
		assert.Equal(t, 8, conf.Game.Columns)
		assert.Equal(t, 5, conf.Game.Preview)
		assert.True(t, conf.Engine().HoldOncePerLock)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("BLOCKFALL_COLUMNS", "12")

		conf, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 12, conf.Game.Columns)
		assert.Equal(t, 16, conf.Game.Rows)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("BLOCKFALL_LOG_LEVEL", "chatty")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	})

	t.Run("field too narrow", func(t *testing.T) {
		t.Setenv("BLOCKFALL_COLUMNS", "3")
		_, err := config.Load("")
		assert.ErrorIs(t, err, engine.ErrShapeTooLarge)
	})

	t.Run("must load panics", func(t *testing.T) {
		t.Setenv("BLOCKFALL_PREVIEW", "9")
		assert.Panics(t, func() { config.MustLoad("") })
	})
}

func TestNewLogger(t *testing.T) {
	conf := &config.Config{LogLevel: "warn"}

	var buf bytes.Buffer
	logger := conf.NewLogger(&buf, true)
	logger.Info("hidden")
	logger.Warn("shown", "component", "test")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	conf.NewLogger(&buf, false).Error("boom")
	assert.Contains(t, buf.String(), "level=ERROR msg=boom")
}

func TestUsage(t *testing.T) {
	usage := config.Usage()
	assert.Contains(t, usage, "BLOCKFALL_ROWS")
	assert.Contains(t, usage, "gravity ticks per second")
}
