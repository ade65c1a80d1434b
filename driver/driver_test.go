package driver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDriver(t testing.TB, cfg engine.Config, opts ...driver.Option) *driver.Driver {
	t.Helper()
	opts = append([]driver.Option{driver.WithSeed(5)}, opts...)
	d, err := driver.New(cfg, quietLogger(), opts...)
	require.NoError(t, err)
	return d
}

// blockedField has row 1 filled except the first column, so the first
// piece cannot leave the spawn row.
func blockedField(t testing.TB, rows, cols int) *field.Field {
	t.Helper()
	f, err := field.New(rows, cols)
	require.NoError(t, err)
	for col := 1; col < cols; col++ {
		f.Set(1, col, piece.KindT)
	}
	return f
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.DropSpeed = -1

	_, err := driver.New(cfg, nil)
	assert.ErrorIs(t, err, engine.ErrInvalidDropSpeed)
}

func TestNewStartsFirstGame(t *testing.T) {
	d := newDriver(t, engine.DefaultConfig())

	snap := d.Snapshot()
	assert.Equal(t, engine.StateRunning, snap.State)
	assert.True(t, snap.HasActive)
	assert.Zero(t, d.Game())
	assert.Equal(t, engine.DefaultConfig().Rows, d.Config().Rows)
}

func TestApply(t *testing.T) {
	d := newDriver(t, engine.DefaultConfig())
	start := d.Snapshot().Active

	require.True(t, d.Apply(driver.CommandMoveLeft))
	require.True(t, d.Apply(driver.CommandSoftDrop))
	assert.Equal(t, field.Position{Row: 1, Col: start.Position.Col - 1}, d.Snapshot().Active.Position)

	require.True(t, d.Apply(driver.CommandMoveRight))
	require.True(t, d.Apply(driver.CommandRotateCW))
	require.True(t, d.Apply(driver.CommandRotateCCW))
	assert.Equal(t, start.Shape.String(), d.Snapshot().Active.Shape.String())

	assert.False(t, d.Apply(driver.CommandNone))
	assert.False(t, d.Apply(driver.Command(200)))

	require.True(t, d.Apply(driver.CommandHold))
	assert.Equal(t, start.Kind, d.Snapshot().Held)

	require.True(t, d.Apply(driver.CommandHardDrop))
	assert.Equal(t, 1, d.Stats().Engine.Locks)

	stats := d.Stats()
	assert.Equal(t, int64(1), stats.Commands[driver.CommandMoveLeft])
	assert.Equal(t, int64(1), stats.Commands[driver.CommandHardDrop])
	assert.Equal(t, int64(2), stats.Rejected)
	assert.NotContains(t, stats.Commands, driver.CommandPause)
}

func TestPauseToggle(t *testing.T) {
	d := newDriver(t, engine.DefaultConfig())

	require.True(t, d.Apply(driver.CommandPause))
	assert.True(t, d.Snapshot().Paused())

	assert.False(t, d.Tick())
	assert.False(t, d.Apply(driver.CommandMoveLeft))
	assert.False(t, d.Apply(driver.CommandHardDrop))
	assert.Zero(t, d.Stats().Ticks)

	require.True(t, d.Apply(driver.CommandPause))
	assert.False(t, d.Snapshot().Paused())

	assert.True(t, d.Tick())
	stats := d.Stats()
	assert.Equal(t, int64(1), stats.Ticks)
	assert.Equal(t, stats.LastDuration, stats.MinDuration)
	assert.Equal(t, int64(2), stats.Commands[driver.CommandPause])
}

func TestRestart(t *testing.T) {
	cfg := engine.DefaultConfig()
	d := newDriver(t, cfg)

	for !d.Snapshot().GameOver() {
		d.Apply(driver.CommandHardDrop)
	}
	assert.False(t, d.Tick())

	d.Restart()
	assert.Equal(t, 1, d.Game())

	snap := d.Snapshot()
	assert.Equal(t, engine.StateRunning, snap.State)
	assert.Zero(t, snap.Score)
	assert.Equal(t, 1, snap.Stats.Pieces)
	assert.Equal(t, 1, d.Stats().Game)

	// game n of a seeded driver matches game 0 of a driver seeded n higher
	other := newDriver(t, cfg, driver.WithSeed(6))
	assert.Equal(t, other.Snapshot().Next, snap.Next)
	assert.Equal(t, other.Snapshot().Active.Kind, snap.Active.Kind)
}

func TestHooks(t *testing.T) {
	t.Run("game over", func(t *testing.T) {
		var d *driver.Driver
		var finals []engine.Snapshot
		var game int

		d = newDriver(t, engine.DefaultConfig(),
			driver.WithEngineOptions(engine.WithField(blockedField(t, 20, 10))),
			driver.WithOnGameOver(func(s engine.Snapshot) {
				finals = append(finals, s)
				// hooks run outside the lock and may call back in
				game = d.Game()
			}))

		require.True(t, d.Apply(driver.CommandHardDrop))
		require.Len(t, finals, 1)
		assert.True(t, finals[0].GameOver())
		assert.Zero(t, game)

		d.Apply(driver.CommandHardDrop)
		d.Tick()
		assert.Len(t, finals, 1)
	})

	t.Run("score changed", func(t *testing.T) {
		cfg := engine.DefaultConfig()
		cfg.Catalog = horizontalCatalog(t)

		f, err := field.New(20, 10)
		require.NoError(t, err)
		for _, col := range []int{0, 1, 2, 7, 8, 9} {
			f.Set(19, col, piece.KindL)
		}

		type change struct{ total, delta int }
		var changes []change
		d := newDriver(t, cfg,
			driver.WithEngineOptions(engine.WithField(f)),
			driver.WithOnScoreChanged(func(total, delta int) {
				changes = append(changes, change{total, delta})
			}))

		require.True(t, d.Apply(driver.CommandHardDrop))
		assert.Equal(t, []change{{200, 200}}, changes)
		assert.Equal(t, 200, d.Snapshot().Score)
	})
}

// horizontalCatalog maps every kind to a flat four-cell bar.
func horizontalCatalog(t testing.TB) *piece.Catalog {
	t.Helper()
	defs := make([]piece.Definition, 0, piece.KindCount)
	for _, k := range piece.Kinds() {
		defs = append(defs, piece.Definition{Kind: k, Name: k.String(), Shape: piece.MustShape("####")})
	}
	c, err := piece.NewCatalog(defs...)
	require.NoError(t, err)
	return c
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d, err := driver.New(engine.DefaultConfig(), logger,
		driver.WithSeed(1),
		driver.WithEngineOptions(engine.WithField(blockedField(t, 20, 10))))
	require.NoError(t, err)

	d.Apply(driver.CommandHardDrop)
	d.Restart()

	var messages []string
	for line := range bytes.Lines(buf.Bytes()) {
		var entry struct {
			Msg       string `json:"msg"`
			Component string `json:"component"`
		}
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "driver", entry.Component)
		messages = append(messages, entry.Msg)
	}

	assert.Equal(t, []string{"game started", "game over", "game restarting", "game started"}, messages)
}

func TestRun(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.DropSpeed = 500

	d := newDriver(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Go(func() { d.Run(ctx) })

	require.Eventually(t, func() bool {
		return d.Stats().Ticks >= 3
	}, 2*time.Second, time.Millisecond)

	// input races with gravity without corrupting state
	for range 50 {
		d.Apply(driver.CommandMoveLeft)
		d.Apply(driver.CommandRotateCW)
		d.Apply(driver.CommandMoveRight)
	}

	cancel()
	wg.Wait()

	ticks := d.Stats().Ticks
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, d.Stats().Ticks)
}
