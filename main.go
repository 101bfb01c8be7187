package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/downtoearth/common"
)

func main() {
	stageName := flag.String("stage", "stage1", "stage prefab name (prefabs/<name>.yaml)")
	debug := flag.Bool("debug", false, "draw hurtboxes and frame stats")
	watch := flag.Bool("watch", false, "reload the stage when prefab files change on disk")
	mute := flag.Bool("mute", false, "disable sound")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	log := newLogger(*logLevel)
	slog.SetDefault(log)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("down to earth")

	game, err := NewGame(Options{
		Stage: *stageName,
		Debug: *debug,
		Watch: *watch,
		Mute:  *mute,
		Log:   log,
	})
	if err != nil {
		log.Error("start", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
