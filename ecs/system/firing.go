package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

// FiringSystem runs the player's gun and every enemy's firing strategy after
// movement, so shots leave from this frame's positions. Everything spawned is
// staged on the arena, never appended to the live collection directly.
type FiringSystem struct {
	log *slog.Logger
	buf []*core.Projectile
}

func NewFiringSystem(log *slog.Logger) *FiringSystem {
	if log == nil {
		log = slog.Default()
	}
	return &FiringSystem{log: log}
}

func (f *FiringSystem) Update(w *ecs.World) {
	arena := w.Arena()
	if arena == nil {
		return
	}
	dt := arena.DT

	target, hasPlayer := playerPosition(w)

	ecs.ForEach3(w, component.GunComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, gun *component.Gun, in *component.Intent, t *component.Transform) {
			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.IsDead() {
				return
			}
			gun.SinceLastShot += dt
			if !in.Fire || !gun.Ready() {
				return
			}
			gun.SinceLastShot = 0
			spawn := t.Pos.Add(common.Polar(t.Angle, gun.Offset))
			arena.Stage(core.NewProjectile(spawn, t.Angle, gun.ProjectileSpeed, core.OwnerPlayer))
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerFired, Frame: arena.Frame, Entity: e, Owner: core.OwnerPlayer, Pos: spawn, Count: 1})
		})

	ecs.ForEach2(w, component.ShooterComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, sh *component.Shooter, t *component.Transform) {
			aim := target
			if !hasPlayer {
				aim = t.Pos
			}
			f.buf = sh.Strategy.Update(dt, t.Pos, aim, f.buf[:0])
			if len(f.buf) == 0 {
				return
			}
			arena.Stage(f.buf...)
			f.report(w, arena, e, t.Pos, sh)
			clear(f.buf)
		})
}

func (f *FiringSystem) report(w *ecs.World, arena *ecs.Arena, e ecs.Entity, pos cp.Vector, sh *component.Shooter) {
	evt := ecs.Event{Frame: arena.Frame, Entity: e, Owner: core.OwnerEnemy, Pos: pos, Count: len(f.buf)}
	first := f.buf[0]
	switch {
	case first.IsPreview():
		evt.Type = ecs.EventBeamWarning
		f.log.Debug("beam warning", "entity", e.String(), "angle", first.Angle(), "phase", sh.Strategy.Beam.Phase().String())
	case first.IsBeam():
		evt.Type = ecs.EventBeamFired
		f.log.Debug("beam firing", "entity", e.String(), "angle", first.Angle(), "phase", sh.Strategy.Beam.Phase().String())
	default:
		evt.Type = ecs.EventEnemyFired
	}
	w.Events().Push(evt)
}

// playerPosition returns the first live player's position.
func playerPosition(w *ecs.World) (cp.Vector, bool) {
	e, _, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return t.Pos, true
}
