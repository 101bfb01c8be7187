// Command stagecheck loads stage prefabs and runs them headless for a fixed
// number of frames, printing a summary per stage. It exits non-zero if any
// stage fails to load.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/milk9111/downtoearth/ecs/component"
	"github.com/milk9111/downtoearth/stage"
)

type options struct {
	stages []string
	frames int
	dt     float64
	fire   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stagecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	stages := fs.String("stage", "stage1,stage2", "comma-separated stage prefab names")
	frames := fs.Int("frames", 600, "frames to simulate per stage")
	dt := fs.Float64("dt", 1.0/60, "seconds per frame")
	fire := fs.Bool("fire", false, "hold fire for the whole run")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", *logLevel, err)
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	opts := options{frames: *frames, dt: *dt, fire: *fire}
	for _, name := range strings.Split(*stages, ",") {
		if name = strings.TrimSpace(name); name != "" {
			opts.stages = append(opts.stages, name)
		}
	}
	if opts.frames < 0 || opts.dt <= 0 {
		return fmt.Errorf("frames must be >= 0 and dt > 0, got %d and %v", opts.frames, opts.dt)
	}
	return check(opts, stdout, log)
}

func check(opts options, stdout io.Writer, log *slog.Logger) error {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tFRAMES\tTIME\tDOWNED\tLEFT\tHULL\tSHOTS\tENEMY SHOTS\tLIVE\tRESULT")

	var errs []error
	for _, name := range opts.stages {
		st, err := stage.Load(name, log)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\t-\t-\tinvalid\n", name)
			continue
		}
		in := component.Intent{Fire: opts.fire}
		for i := 0; i < opts.frames && !st.Over(); i++ {
			st.Step(opts.dt, in)
			st.Events()
		}
		s := st.Stats()
		result := "survived"
		switch {
		case st.Over():
			result = "ship down"
		case s.EnemiesAlive == 0:
			result = "clear"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2fs\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			name, s.Frames, s.Elapsed, s.EnemiesKilled, s.EnemiesAlive, s.PlayerHealth,
			s.PlayerSpawned, s.EnemySpawned, s.LiveProjectile, result)
	}
	if err := tw.Flush(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
