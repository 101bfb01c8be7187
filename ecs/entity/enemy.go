package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
	"github.com/milk9111/downtoearth/prefabs"
)

var enemyColor = color.NRGBA{R: 0xff, G: 0x5e, B: 0x7a, A: 0xff}

// NewEnemy creates one hostile from a resolved enemy config. Each enemy gets
// its own firing strategy and its own path.
func NewEnemy(w *ecs.World, cfg prefabs.EnemyConfig) (ecs.Entity, error) {
	spec := cfg.Spec

	strategy, err := StrategyFromSpec(spec.Pattern)
	if err != nil {
		return 0, fmt.Errorf("enemy %s: %w", spec.Name, err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{Archetype: spec.Name}); err != nil {
		return 0, fmt.Errorf("enemy %s: add enemy tag: %w", spec.Name, err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Pos: cfg.At, Angle: cfg.InitialDirection}); err != nil {
		return 0, fmt.Errorf("enemy %s: add transform: %w", spec.Name, err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{
		V: common.Polar(cfg.InitialDirection, spec.Speed),
	}); err != nil {
		return 0, fmt.Errorf("enemy %s: add velocity: %w", spec.Name, err)
	}
	if err := ecs.Add(w, entity, component.WanderComponent.Kind(), &component.Wander{
		Speed:    spec.Speed,
		Interval: cfg.WanderInterval,
		Spread:   common.Radians(spec.Wander.Spread),
		Goal:     cfg.WanderGoal,
	}); err != nil {
		return 0, fmt.Errorf("enemy %s: add wander: %w", spec.Name, err)
	}
	if err := ecs.Add(w, entity, component.ShooterComponent.Kind(), &component.Shooter{Strategy: strategy}); err != nil {
		return 0, fmt.Errorf("enemy %s: add shooter: %w", spec.Name, err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), core.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("enemy %s: add health: %w", spec.Name, err)
	}
	if err := ecs.Add(w, entity, component.HurtboxComponent.Kind(), hurtbox(spec.Hurtbox)); err != nil {
		return 0, fmt.Errorf("enemy %s: add hurtbox: %w", spec.Name, err)
	}
	if err := ecs.Add(w, entity, component.AppearanceComponent.Kind(), &component.Appearance{
		Color:  spec.Color.Or(enemyColor),
		Radius: math.Max(spec.Hurtbox.Width, spec.Hurtbox.Height) / 2,
	}); err != nil {
		return 0, fmt.Errorf("enemy %s: add appearance: %w", spec.Name, err)
	}

	if r := cfg.Route; r != nil {
		if err := AttachPath(w, entity, core.NewPath(r.Waypoints, r.Speed, r.Loop)); err != nil {
			return 0, fmt.Errorf("enemy %s: attach route %s: %w", spec.Name, r.Name, err)
		}
	}

	return entity, nil
}

// AttachPath hands e's movement to p. The path starts from e's current
// position, heading for waypoint 0, and e's velocity is zeroed.
func AttachPath(w *ecs.World, e ecs.Entity, p *core.Path) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("entity %s has no transform", e)
	}
	p.SetStart(t.Pos)
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.V = cp.Vector{}
	}
	return ecs.Add(w, e, component.PathFollowComponent.Kind(), &component.PathFollow{Path: p})
}
