package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

// MovementSystem moves every entity once per frame. An active path sets the
// position outright; otherwise the wander heuristic (enemies) or the input
// system (player) has already chosen a velocity and it is integrated here.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	arena := w.Arena()
	if arena == nil {
		return
	}
	dt := arena.DT

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, vel *component.Velocity) {
			if pf, ok := ecs.Get(w, e, component.PathFollowComponent.Kind()); ok && pf.Active() {
				pf.Path.Update(dt)
				t.Pos = pf.Path.Position()
				vel.V = cp.Vector{}
				return
			}

			if wander, ok := ecs.Get(w, e, component.WanderComponent.Kind()); ok {
				m.wander(arena, t, vel, wander, dt)
			}

			t.Pos = t.Pos.Add(vel.V.Mult(dt))

			if ship, ok := ecs.Get(w, e, component.ShipComponent.Kind()); ok {
				t.Pos = arena.Bounds.ClampPoint(t.Pos, ship.Radius)
			}
		})
}

func (m *MovementSystem) wander(arena *ecs.Arena, t *component.Transform, vel *component.Velocity, wd *component.Wander, dt float64) {
	wd.Timer += dt
	if wd.Timer < wd.Interval {
		return
	}
	wd.Timer = 0
	heading := common.Heading(t.Pos, wd.Goal)
	if wd.Spread > 0 && arena.Rand != nil {
		heading += (arena.Rand.Float64()*2 - 1) * wd.Spread
	}
	vel.V = common.Polar(heading, wd.Speed)
}
