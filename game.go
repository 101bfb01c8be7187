package main

import (
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/downtoearth/common"
	"github.com/milk9111/downtoearth/prefabs"
	"github.com/milk9111/downtoearth/stage"
)

// frameDT is the fixed simulation step; ebiten calls Update at 60 TPS.
const frameDT = 1.0 / 60

type Options struct {
	Stage string
	Debug bool
	Watch bool
	Mute  bool
	Log   *slog.Logger
}

type Game struct {
	opts  Options
	log   *slog.Logger
	stage *stage.Stage

	input   *Input
	sounds  *Sounds
	hud     *HUD
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	st, err := stage.Load(opts.Stage, log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:  opts,
		log:   log,
		stage: st,
		input: NewInput(),
	}
	if !opts.Mute {
		g.sounds = NewSounds(0.5)
	}
	g.hud = NewHUD()
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.stage.Over() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return nil
	}

	g.input.Update(g.stage.Snapshot().Player.Pos)
	g.stage.Step(frameDT, g.input.Intent())

	events := g.stage.Events()
	if g.sounds != nil {
		g.sounds.Handle(events)
	}
	g.hud.Update(g.stage.Snapshot(), g.stage.Stats())
	return nil
}

// pollReload rebuilds the stage between frames when a prefab changed on disk.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Debug("prefab changed", "file", name)
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("watch", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload() {
	cfg, err := prefabs.LoadStage(g.stage.Name())
	if err != nil {
		g.log.Warn("reload rejected", "stage", g.stage.Name(), "err", err)
		return
	}
	if err := g.stage.Reload(cfg); err != nil {
		g.log.Warn("reload rejected", "stage", g.stage.Name(), "err", err)
	}
}

func (g *Game) restart() {
	g.reload()
	g.paused = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.stage.Snapshot()
	drawSnapshot(screen, snap, g.opts.Debug)
	g.hud.Draw(screen)
	if g.opts.Debug {
		drawDebug(screen, snap, g.stage.Stats())
	}
	if snap.Over {
		drawGameOver(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
