package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/downtoearth/stage"
	"golang.org/x/image/font/basicfont"
)

// HUD shows hull, mode, score and elapsed time along the top edge.
type HUD struct {
	ui     *ebitenui.UI
	hull   *widget.Text
	mode   *widget.Text
	score  *widget.Text
	timer  *widget.Text
	status *widget.Text
}

func NewHUD() *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	label := func() *widget.Text {
		return widget.NewText(widget.TextOpts.Text("", &face, white))
	}
	h := &HUD{hull: label(), mode: label(), score: label(), timer: label(), status: label()}

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Left: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	bar.AddChild(h.hull)
	bar.AddChild(h.mode)
	bar.AddChild(h.score)
	bar.AddChild(h.timer)
	bar.AddChild(h.status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) Update(snap stage.Snapshot, st stage.Stats) {
	h.hull.Label = fmt.Sprintf("HULL %d/%d", snap.Player.Health, snap.Player.MaxHealth)
	h.mode.Label = "MODE " + snap.Player.Mode.String()
	h.score.Label = fmt.Sprintf("DOWNED %d  LEFT %d", st.EnemiesKilled, st.EnemiesAlive)
	h.timer.Label = fmt.Sprintf("T %.1fs", snap.Elapsed)
	switch {
	case snap.Over:
		h.status.Label = "SHIP DOWN"
	case st.EnemiesAlive == 0:
		h.status.Label = "SECTOR CLEAR"
	default:
		h.status.Label = ""
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
