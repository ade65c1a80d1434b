package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats[int]
	s.Finalize()
	assert.Zero(t, s.Avg)

	for _, v := range []int{400, 0, 200} {
		s.Add(v)
	}
	s.Finalize()
	assert.Equal(t, 0, s.Min)
	assert.Equal(t, 400, s.Max)
	assert.Equal(t, 200, s.Avg)
	assert.Equal(t, 600, s.Total)

	var d Stats[time.Duration]
	d.Add(time.Millisecond)
	d.Add(3 * time.Millisecond)
	d.Finalize()
	assert.Equal(t, 2*time.Millisecond, d.Avg)
}

func TestPlayStopsAfterGames(t *testing.T) {
	rec := &recorder{}
	d, err := driver.New(engine.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		driver.WithSeed(11), driver.WithOnGameOver(rec.record))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	play(ctx, d, rec, rand.New(rand.NewPCG(1, 2)), 3)
	require.NoError(t, ctx.Err())
	require.Len(t, rec.results, 3)
	assert.Equal(t, 2, d.Game())
	for _, snap := range rec.results {
		assert.True(t, snap.GameOver())
	}

	report := &Report{Duration: time.Second, Seed: 11, MaxGames: 3, Rows: 20, Columns: 10}
	fillResults(report, d, rec, time.Second)

	assert.Equal(t, 3, report.Games)
	assert.Len(t, report.Pieces.Samples, 3)
	assert.Positive(t, report.Pieces.Total)
	assert.Positive(t, report.TotalCommands)
	assert.Equal(t, int64(2), commandCount(report, driver.CommandRestart))

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Blockfall Bench Report")
	assert.Contains(t, out, "**Games Finished:** 3")
	assert.Contains(t, out, "**Field:** 20x10")
	assert.Contains(t, out, "- Restart: 2")
	assert.NotContains(t, out, "GC Pause")
}

func commandCount(r *Report, cmd driver.Command) int64 {
	for _, c := range r.Commands {
		if c.Command == cmd {
			return c.Count
		}
	}
	return 0
}

func TestPlayHonorsContext(t *testing.T) {
	rec := &recorder{}
	d, err := driver.New(engine.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		driver.WithSeed(4), driver.WithOnGameOver(rec.record))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	play(ctx, d, rec, rand.New(rand.NewPCG(1, 2)), 0)
	stats := d.Stats()
	assert.Zero(t, stats.Ticks)
	assert.Zero(t, stats.Rejected)
	assert.Empty(t, stats.Commands)
	assert.Empty(t, rec.results)
}
