package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
)

// playCommands are drawn uniformly by the random player.
var playCommands = []driver.Command{
	driver.CommandMoveLeft,
	driver.CommandMoveRight,
	driver.CommandRotateCW,
	driver.CommandRotateCCW,
	driver.CommandSoftDrop,
	driver.CommandHardDrop,
	driver.CommandHold,
}

// recorder collects the final snapshot of every finished game.
type recorder struct {
	results []engine.Snapshot
}

func (r *recorder) record(snap engine.Snapshot) {
	r.results = append(r.results, snap)
}

// play feeds random commands and gravity ticks to d until ctx is done or
// maxGames games have finished. A zero maxGames means no limit.
func play(ctx context.Context, d *driver.Driver, rec *recorder, rng *rand.Rand, maxGames int) {
	started := 1

	for ctx.Err() == nil {
		if len(rec.results) == started {
			if maxGames > 0 && started >= maxGames {
				return
			}
			d.Restart()
			started++
			continue
		}

		if rng.IntN(4) == 0 {
			d.Tick()
		} else {
			d.Apply(playCommands[rng.IntN(len(playCommands))])
		}
	}
}

// fillResults copies game and driver statistics into the report.
func fillResults(report *Report, d *driver.Driver, rec *recorder, elapsed time.Duration) {
	report.TotalTime = elapsed
	report.Games = len(rec.results)

	for _, snap := range rec.results {
		report.Scores.Add(snap.Score)
		report.Lines.Add(snap.Lines)
		report.Pieces.Add(snap.Stats.Pieces)
	}
	report.Scores.Finalize()
	report.Lines.Finalize()
	report.Pieces.Finalize()

	stats := d.Stats()
	report.Ticks = stats.Ticks
	report.TickTime = Stats[time.Duration]{
		Min: stats.MinDuration,
		Max: stats.MaxDuration,
		Avg: stats.AvgDuration,
	}

	report.Rejected = stats.Rejected
	report.TotalCommands = stats.Rejected
	for _, cmd := range driver.AllCommands() {
		n := stats.Commands[cmd]
		report.TotalCommands += n
		if n > 0 {
			report.Commands = append(report.Commands, CommandCount{Command: cmd, Count: n})
		}
	}
}
