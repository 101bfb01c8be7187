package entity

import (
	"fmt"
	"image/color"

	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
	"github.com/milk9111/downtoearth/prefabs"
)

var playerColor = color.NRGBA{R: 0x7f, G: 0xd4, B: 0xff, A: 0xff}

// NewPlayer creates the player ship at cfg.At.
func NewPlayer(w *ecs.World, cfg prefabs.PlayerConfig) (ecs.Entity, error) {
	spec := cfg.Spec
	mode := component.ModeAir
	if spec.Mode == "ground" {
		mode = component.ModeGround
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Pos: cfg.At}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Intent{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, entity, component.ShipComponent.Kind(), &component.Ship{
		Speed:  spec.Speed,
		Radius: spec.Radius,
		Mode:   mode,
	}); err != nil {
		return 0, fmt.Errorf("player: add ship: %w", err)
	}
	// start ready to fire
	if err := ecs.Add(w, entity, component.GunComponent.Kind(), &component.Gun{
		FireRate:        spec.Gun.FireRate,
		ProjectileSpeed: spec.Gun.ProjectileSpeed,
		Offset:          spec.Gun.Offset,
		SinceLastShot:   spec.Gun.FireRate,
	}); err != nil {
		return 0, fmt.Errorf("player: add gun: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), core.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, entity, component.HurtboxComponent.Kind(), hurtbox(spec.Hurtbox)); err != nil {
		return 0, fmt.Errorf("player: add hurtbox: %w", err)
	}
	if err := ecs.Add(w, entity, component.AppearanceComponent.Kind(), &component.Appearance{
		Color:  spec.Color.Or(playerColor),
		Radius: spec.Radius,
	}); err != nil {
		return 0, fmt.Errorf("player: add appearance: %w", err)
	}

	return entity, nil
}

func hurtbox(h prefabs.HurtboxSpec) *component.Hurtbox {
	return &component.Hurtbox{Width: h.Width, Height: h.Height, OffsetX: h.OffsetX, OffsetY: h.OffsetY}
}
