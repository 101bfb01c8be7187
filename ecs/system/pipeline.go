package system

import (
	"log/slog"

	"github.com/milk9111/downtoearth/ecs"
)

// NewPipeline returns the frame's systems in their required order: input,
// movement, firing, projectile integration, collision, cleanup. Damage
// flashes decay last.
func NewPipeline(log *slog.Logger) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(),
		NewMovementSystem(),
		NewFiringSystem(log),
		NewProjectileSystem(),
		NewCollisionSystem(),
		NewCleanupSystem(log),
		NewWhiteFlashSystem(),
	)
}
