package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

// InputSystem turns the player's sampled Intent into a fresh velocity and aim
// angle. Velocity is never carried over from the previous frame.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.ShipComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, in *component.Intent, ship *component.Ship, vel *component.Velocity) {
			if in.ToggleMode {
				if ship.Mode == component.ModeAir {
					ship.Mode = component.ModeGround
				} else {
					ship.Mode = component.ModeAir
				}
				in.ToggleMode = false
			}

			mx, my := in.Move()
			dir := cp.Vector{X: mx, Y: my}
			if dir.LengthSq() > 0 {
				dir = dir.Normalize()
			}
			vel.V = dir.Mult(ship.Speed)

			if f, ok := component.FacingFrom(in.AimX, in.AimY); ok {
				ship.Facing = f
			} else if f, ok := component.FacingFrom(int(mx), int(my)); ok {
				ship.Facing = f
			}

			switch {
			case in.HasAim:
				ship.AimAngle = in.AimAngle
			case ship.Mode == component.ModeGround:
				ship.AimAngle = ship.Facing.Angle()
			default:
				ship.AimAngle = common.IsoForwardAngle()
			}
			ship.AimAngle = math.Remainder(ship.AimAngle, 2*math.Pi)

			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				t.Angle = ship.AimAngle
			}
		})
}
