package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/internal/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the bench should run for.")
	seed := flag.Uint64("seed", 0, "Seed for pieces and player input. 0 uses the configured seed, or a random one.")
	games := flag.Int("games", 0, "Stop after this many finished games. 0 runs until the duration expires.")
	configPath := flag.String("config", "", "Path to a YAML config file. Environment variables override it.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if *seed != 0 {
		conf.Seed = *seed
	}
	if conf.Seed == 0 {
		conf.Seed = rand.Uint64()
	}

	logger := conf.NewLogger(os.Stderr, true).With("component", "bench")
	logger.Info("starting bench", "duration", *duration, "seed", conf.Seed, "games", *games)

	rec := &recorder{}
	opts := append(conf.DriverOptions(), driver.WithOnGameOver(rec.record))
	d, err := driver.New(conf.Engine(), logger, opts...)
	if err != nil {
		logger.Error("driver setup failed", "error", err)
		os.Exit(1)
	}

	report := &Report{
		Duration:       *duration,
		Seed:           conf.Seed,
		MaxGames:       *games,
		Rows:           conf.Game.Rows,
		Columns:        conf.Game.Columns,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	play(ctx, d, rec, rand.New(rand.NewPCG(conf.Seed, ^conf.Seed)), *games)
	elapsed := time.Since(startTime)

	runtime.ReadMemStats(&report.MemStatsEnd)
	fillResults(report, d, rec, elapsed)

	logger.Info("bench finished", "games", report.Games, "elapsed", elapsed)

	fmt.Println("\n--- Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "error", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}
