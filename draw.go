package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs/component"
	"github.com/milk9111/downtoearth/stage"
	"golang.org/x/image/colornames"
)

var (
	background   = color.NRGBA{R: 0x0b, G: 0x0d, B: 0x1a, A: 0xff}
	gridColor    = color.NRGBA{R: 0x1c, G: 0x22, B: 0x3a, A: 0xff}
	playerShot   = color.NRGBA{R: 0xff, G: 0xf1, B: 0x76, A: 0xff}
	enemyShot    = color.NRGBA{R: 0xff, G: 0x6e, B: 0x40, A: 0xff}
	beamColor    = color.NRGBA{R: 0xff, G: 0x30, B: 0x60, A: 0xe0}
	previewColor = color.NRGBA{R: 0xff, G: 0x30, B: 0x60, A: 0x50}
	boxColor     = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xa0}
)

func drawSnapshot(screen *ebiten.Image, snap stage.Snapshot, debug bool) {
	screen.Fill(background)
	drawIsoGrid(screen, snap.Bounds)

	for _, p := range snap.Projectiles {
		drawProjectile(screen, p, debug)
	}
	for _, e := range snap.Enemies {
		c := e.Color
		if e.Flash {
			c = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		vector.FillCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), c, true)
		if e.MaxHealth > 1 {
			drawBar(screen, e.Bounds.X, e.Bounds.Y-6, e.Bounds.Width, float64(e.Health)/float64(e.MaxHealth))
		}
		if debug {
			strokeRect(screen, e.Bounds, boxColor)
		}
	}
	if snap.HasPlayer {
		drawShip(screen, snap.Player)
		if debug {
			strokeRect(screen, snap.Player.Bounds, boxColor)
		}
	}
}

// drawIsoGrid draws the diamond tile grid the air-mode aim follows.
func drawIsoGrid(screen *ebiten.Image, b common.Rect) {
	slope := float64(common.TileHeight) / float64(common.TileWidth)
	span := b.Height / slope
	for x := -span; x < b.Width+span; x += common.TileWidth {
		vector.StrokeLine(screen, float32(x), float32(b.Bottom()), float32(x+span), float32(b.Y), 1, gridColor, false)
		vector.StrokeLine(screen, float32(x), float32(b.Y), float32(x+span), float32(b.Bottom()), 1, gridColor, false)
	}
}

func drawShip(screen *ebiten.Image, v stage.ShipView) {
	c := v.Color
	if v.Flash {
		c = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	if v.Health <= 0 {
		c = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	}
	x, y, r := float32(v.Pos.X), float32(v.Pos.Y), float32(v.Radius)
	vector.FillCircle(screen, x, y, r, c, true)

	tip := v.Pos.Add(common.Polar(v.Aim, v.Radius*1.8))
	vector.StrokeLine(screen, x, y, float32(tip.X), float32(tip.Y), 3, colornames.White, true)
	if v.Mode == component.ModeGround {
		vector.StrokeCircle(screen, x, y, r+4, 2, colornames.Orange, true)
	}
}

func drawProjectile(screen *ebiten.Image, p stage.ProjectileView, debug bool) {
	switch {
	case p.Beam:
		c, width := beamColor, float32(core.BeamWidth)
		if p.Preview {
			c, width = previewColor, 2
		}
		vector.StrokeLine(screen, float32(p.Origin.X), float32(p.Origin.Y), float32(p.End.X), float32(p.End.Y), width, c, true)
	case p.Owner == core.OwnerPlayer:
		tail := p.Pos.Sub(cp.ForAngle(p.Angle).Mult(10))
		vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(p.Pos.X), float32(p.Pos.Y), 3, playerShot, true)
	default:
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), 4, enemyShot, true)
	}
	if debug && !p.Preview {
		strokeRect(screen, p.Bounds, boxColor)
	}
}

func drawBar(screen *ebiten.Image, x, y, w, frac float64) {
	frac = math.Max(0, math.Min(1, frac))
	vector.FillRect(screen, float32(x), float32(y), float32(w), 3, colornames.Darkred, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*frac), 3, colornames.Limegreen, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, c, false)
}

func drawDebug(screen *ebiten.Image, snap stage.Snapshot, st stage.Stats) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Frame: %d  FPS: %.1f  Projectiles: %d  Fired p/e: %d/%d",
		snap.Frame, ebiten.ActualFPS(), st.LiveProjectile, st.PlayerSpawned, st.EnemySpawned,
	), 8, common.BaseHeight-20)
}

func drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, color.NRGBA{A: 0x90}, false)
	ebitenutil.DebugPrintAt(screen, "SHIP DOWN - press R to restart", common.BaseWidth/2-90, common.BaseHeight/2)
}
