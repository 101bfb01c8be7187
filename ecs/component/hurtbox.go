package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
)

// Hurtbox represents a defensive AABB centered on the entity transform.
type Hurtbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Rect places the box around pos.
func (h Hurtbox) Rect(pos cp.Vector) common.Rect {
	return common.RectAround(pos.Add(cp.Vector{X: h.OffsetX, Y: h.OffsetY}), h.Width, h.Height)
}

var HurtboxComponent = NewComponent[Hurtbox]()
