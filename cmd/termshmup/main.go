// Command termshmup runs a stage in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/milk9111/downtoearth/audio"
	"github.com/milk9111/downtoearth/stage"
)

func main() {
	stageName := flag.String("stage", "stage1", "stage prefab name (prefabs/<name>.yaml)")
	logFile := flag.String("log", "", "write logs to this file; the terminal is busy drawing")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	log, closeLog, err := newLogger(*logFile, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(log)

	st, err := stage.Load(*stageName, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var sound *audio.Player
	if !*mute {
		sound = audio.NewPlayer(0.4, log)
		if err := sound.Init(); err != nil {
			// non-fatal, play silent
			log.Warn("audio init failed", "err", err)
		}
		defer sound.Close()
	}

	t, err := newTerm(st, sound, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := t.Run(context.Background()); err != nil && !errors.Is(err, errQuit) {
		log.Error("run", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	final := st.Stats()
	fmt.Printf("%s: %d frames, %d/%d downed, hull %d\n",
		st.Name(), final.Frames, final.EnemiesKilled, final.EnemiesKilled+final.EnemiesAlive, final.PlayerHealth)
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	var out io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}
