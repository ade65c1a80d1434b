package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/internal/config"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "Path to a YAML config file. Environment variables override it.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	conf := config.MustLoad(*configPath)

	logger, closeLog := initLogger(conf)
	defer closeLog()

	d, err := driver.New(conf.Engine(), logger, conf.DriverOptions()...)
	if err != nil {
		panic(fmt.Errorf("driver setup failed: %w", err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Errorf("terminal unavailable: %w", err))
	}
	if err := screen.Init(); err != nil {
		panic(fmt.Errorf("terminal init failed: %w", err))
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go d.Run(ctx)

	newUI(screen, d).run(ctx)
	logger.Info("terminal frontend closed", "games", d.Game()+1, "score", d.Snapshot().Score)
}

// initLogger writes to the configured file. The terminal is owned by the
// screen, so logs are discarded when no file is set.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	if conf.LogFile == "" {
		return conf.NewLogger(io.Discard, false), func() {}
	}

	f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}
	return conf.NewLogger(f, false), func() { _ = f.Close() }
}
