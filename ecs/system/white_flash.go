package system

import (
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

// WhiteFlashSystem toggles and expires damage flashes.
type WhiteFlashSystem struct{}

func NewWhiteFlashSystem() *WhiteFlashSystem { return &WhiteFlashSystem{} }

func (s *WhiteFlashSystem) Update(w *ecs.World) {
	arena := w.Arena()
	if arena == nil {
		return
	}
	dt := arena.DT

	ecs.ForEach(w, component.WhiteFlashComponent.Kind(), func(e ecs.Entity, wf *component.WhiteFlash) {
		if wf.Interval <= 0 {
			wf.Interval = component.HitFlashInterval
		}
		wf.Timer += dt
		for wf.Timer >= wf.Interval {
			wf.Timer -= wf.Interval
			wf.On = !wf.On
		}
		wf.Remaining -= dt
		if wf.Remaining <= 0 {
			ecs.Remove(w, e, component.WhiteFlashComponent.Kind())
		}
	})
}

// flash starts or restarts e's damage flash.
func flash(w *ecs.World, e ecs.Entity) {
	if !ecs.IsAlive(w, e) {
		return
	}
	_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{
		Remaining: component.HitFlashDuration,
		Interval:  component.HitFlashInterval,
		On:        true,
	})
}
