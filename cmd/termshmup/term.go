package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/audio"
	"github.com/milk9111/downtoearth/common"
	"github.com/milk9111/downtoearth/component"
	ecscomp "github.com/milk9111/downtoearth/ecs/component"
	"github.com/milk9111/downtoearth/stage"
	"golang.org/x/sync/errgroup"
)

const frameDT = 1.0 / 60

var errQuit = errors.New("quit")

type term struct {
	screen tcell.Screen
	stage  *stage.Stage
	sound  *audio.Player
	log    *slog.Logger
	keys   keyState
}

func newTerm(st *stage.Stage, sound *audio.Player, log *slog.Logger) (*term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	return &term{screen: screen, stage: st, sound: sound, log: log}, nil
}

// Run polls input on one goroutine and steps the stage on another until the
// player quits or ctx is cancelled. The screen is finalised on return.
func (t *term) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	eg.Go(func() error {
		// PollEvent returns nil once the screen is finalised.
		<-ctx.Done()
		t.screen.Fini()
		return nil
	})
	eg.Go(func() error {
		return t.frames(ctx, events)
	})
	return eg.Wait()
}

func (t *term) frames(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if err := t.handle(ev); err != nil {
				return err
			}
		case now := <-ticker.C:
			t.stage.Step(frameDT, t.keys.intent(now))
			if t.sound != nil {
				t.sound.Handle(t.stage.Events())
			} else {
				t.stage.Events()
			}
			t.draw()
		}
	}
}

func (t *term) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return errQuit
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && t.stage.Over() {
			if err := t.stage.Reload(t.stage.Config()); err != nil {
				t.log.Warn("restart failed", "err", err)
			}
			return nil
		}
		t.keys.press(ev, time.Now())
	}
	return nil
}

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleGrid    = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleShip    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorOrange).Dim(true)
	styleBeam    = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleFlash   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// cellMap scales playfield coordinates onto the terminal, leaving row 0 for
// the status line.
type cellMap struct {
	bounds common.Rect
	w, h   int
}

func (m cellMap) cell(p cp.Vector) (int, int, bool) {
	if m.w <= 0 || m.h <= 1 {
		return 0, 0, false
	}
	x := int(math.Floor((p.X - m.bounds.X) / m.bounds.Width * float64(m.w)))
	y := 1 + int(math.Floor((p.Y-m.bounds.Y)/m.bounds.Height*float64(m.h-1)))
	if x < 0 || x >= m.w || y < 1 || y >= m.h {
		return 0, 0, false
	}
	return x, y, true
}

func (t *term) put(m cellMap, p cp.Vector, r rune, style tcell.Style) {
	if x, y, ok := m.cell(p); ok {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *term) line(m cellMap, from, to cp.Vector, r rune, style tcell.Style) {
	steps := int(from.Distance(to)/(m.bounds.Width/float64(max(m.w, 1)))) + 1
	for i := 0; i <= steps; i++ {
		t.put(m, from.Lerp(to, float64(i)/float64(steps)), r, style)
	}
}

func (t *term) draw() {
	snap := t.stage.Snapshot()
	stats := t.stage.Stats()
	w, h := t.screen.Size()
	m := cellMap{bounds: snap.Bounds, w: w, h: h}

	t.screen.Clear()
	for x := common.TileWidth; x < snap.Bounds.Width; x += common.TileWidth * 2 {
		for y := common.TileHeight; y < snap.Bounds.Height; y += common.TileHeight * 2 {
			t.put(m, cp.Vector{X: x, Y: y}, '·', styleGrid)
		}
	}

	for _, p := range snap.Projectiles {
		switch {
		case p.Preview:
			t.line(m, p.Origin, p.End, '.', styleWarning)
		case p.Beam:
			t.line(m, p.Origin, p.End, '=', styleBeam)
		case p.Owner == component.OwnerPlayer:
			t.put(m, p.Pos, '|', styleShot)
		default:
			t.put(m, p.Pos, '*', styleBullet)
		}
	}

	for _, e := range snap.Enemies {
		style := styleEnemy
		if e.Flash {
			style = styleFlash
		}
		r := 'V'
		if e.Archetype != "" {
			r = unicode.ToUpper([]rune(e.Archetype)[0])
		}
		t.put(m, e.Pos, r, style)
	}

	if snap.HasPlayer {
		style := styleShip
		if snap.Player.Flash {
			style = styleFlash
		}
		glyph := 'A'
		if snap.Player.Mode == ecscomp.ModeGround {
			glyph = '@'
		}
		t.put(m, snap.Player.Pos, glyph, style)
		t.put(m, snap.Player.Pos.Add(common.Polar(snap.Player.Aim, m.bounds.Width/float64(max(w, 1))*2)), '+', styleShip)
	}

	status := fmt.Sprintf(" HULL %d/%d  %s  DOWNED %d  LEFT %d  T %.1fs  [f]autofire:%v  [esc]quit",
		snap.Player.Health, snap.Player.MaxHealth, snap.Player.Mode, stats.EnemiesKilled, stats.EnemiesAlive, snap.Elapsed, t.keys.autofire)
	if snap.Over {
		status = fmt.Sprintf(" SHIP DOWN after %.1fs  [r]estart  [esc]quit", snap.Elapsed)
	}
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		t.screen.SetContent(i, 0, r, nil, styleHUD)
	}
	t.screen.Show()
}
