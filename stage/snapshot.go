package stage

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

// Snapshot is a read-only copy of everything a frontend needs to draw one
// frame. Nothing in it aliases simulation state.
type Snapshot struct {
	Frame   uint64
	Elapsed float64
	Bounds  common.Rect
	Over    bool

	HasPlayer   bool
	Player      ShipView
	Enemies     []EnemyView
	Projectiles []ProjectileView
}

type ShipView struct {
	Pos       cp.Vector
	Aim       float64
	Mode      component.ShipMode
	Health    int
	MaxHealth int
	Radius    float64
	Bounds    common.Rect
	Color     color.NRGBA
	Flash     bool
}

type EnemyView struct {
	ID        ecs.Entity
	Archetype string
	Pos       cp.Vector
	Health    int
	MaxHealth int
	Radius    float64
	Bounds    common.Rect
	Color     color.NRGBA
	Flash     bool
}

type ProjectileView struct {
	Pos     cp.Vector
	Angle   float64
	Owner   core.Owner
	Beam    bool
	Preview bool
	Origin  cp.Vector
	End     cp.Vector
	Bounds  common.Rect
	// Lifetime is core.NoLifetime for projectiles that expire off screen.
	Lifetime float64
}

func (s *Stage) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:   s.arena.Frame,
		Elapsed: s.arena.Elapsed,
		Bounds:  s.arena.Bounds,
		Over:    s.over,
	}
	w := s.world

	if t, ok := ecs.Get(w, s.player, component.TransformComponent.Kind()); ok {
		snap.HasPlayer = true
		v := ShipView{Pos: t.Pos, Aim: t.Angle}
		if ship, ok := ecs.Get(w, s.player, component.ShipComponent.Kind()); ok {
			v.Mode = ship.Mode
			v.Radius = ship.Radius
		}
		if h, ok := ecs.Get(w, s.player, component.HealthComponent.Kind()); ok {
			v.Health, v.MaxHealth = h.CurrentHP(), h.MaxHP()
		}
		if hb, ok := ecs.Get(w, s.player, component.HurtboxComponent.Kind()); ok {
			v.Bounds = hb.Rect(t.Pos)
		}
		if a, ok := ecs.Get(w, s.player, component.AppearanceComponent.Kind()); ok {
			v.Color = a.Color
		}
		v.Flash = flashing(w, s.player)
		snap.Player = v
	}

	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, tag *component.EnemyTag, t *component.Transform) {
			v := EnemyView{ID: e, Archetype: tag.Archetype, Pos: t.Pos, Flash: flashing(w, e)}
			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
				v.Health, v.MaxHealth = h.CurrentHP(), h.MaxHP()
			}
			if hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind()); ok {
				v.Bounds = hb.Rect(t.Pos)
			}
			if a, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok {
				v.Color = a.Color
				v.Radius = a.Radius
			}
			snap.Enemies = append(snap.Enemies, v)
		})

	live := s.arena.Projectiles()
	snap.Projectiles = make([]ProjectileView, 0, len(live))
	for _, p := range live {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Pos:      p.Position(),
			Angle:    p.Angle(),
			Owner:    p.Owner(),
			Beam:     p.IsBeam(),
			Preview:  p.IsPreview(),
			Origin:   p.Origin(),
			End:      p.BeamEnd(),
			Bounds:   p.Bounds(),
			Lifetime: p.Lifetime(),
		})
	}
	return snap
}

func flashing(w *ecs.World, e ecs.Entity) bool {
	wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind())
	return ok && wf.On
}
