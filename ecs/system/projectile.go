package system

import "github.com/milk9111/downtoearth/ecs"

// ProjectileSystem integrates every live projectile, then merges this frame's
// staged spawns so collision sees them at their spawn point.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (p *ProjectileSystem) Update(w *ecs.World) {
	arena := w.Arena()
	if arena == nil {
		return
	}
	for _, proj := range arena.Projectiles() {
		proj.Update(arena.DT)
	}
	arena.MergeStaged()
}
