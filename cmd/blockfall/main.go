package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/internal/config"
)

const (
	ScreenWidth  = 720
	ScreenHeight = 720
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "Path to a YAML config file. Environment variables override it.")
	debug := flag.Bool("debug", false, "Show the ImGui debug panel at startup (toggle with F1).")
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Blockfall", ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := newGame(d, imguiBackend, *debug)
	if err := ebiten.RunGame(game); err != nil {
		panic(fmt.Errorf("game loop failed: %w", err))
	}

	snap := d.Snapshot()
	logger.Info("window closed", "games", d.Game()+1, "score", snap.Score, "lines", snap.Lines)
}

func initLogger(conf *config.Config) (*slog.Logger, func()) {
	if conf.LogFile == "" {
		return conf.NewLogger(os.Stderr, false), func() {}
	}

	f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}
	return conf.NewLogger(f, false), func() { _ = f.Close() }
}
