package system

import (
	"log/slog"

	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

// CleanupSystem is the last pass of a frame: it removes dead enemies and
// spent or expired projectiles, and reports the player's death once.
type CleanupSystem struct {
	log          *slog.Logger
	playerDowned bool
}

func NewCleanupSystem(log *slog.Logger) *CleanupSystem {
	if log == nil {
		log = slog.Default()
	}
	return &CleanupSystem{log: log}
}

func (c *CleanupSystem) Update(w *ecs.World) {
	arena := w.Arena()
	if arena == nil {
		return
	}

	var dead []ecs.Entity
	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, _ *component.EnemyTag, h *core.Health) {
			if !h.IsDead() {
				return
			}
			dead = append(dead, e)
		})
	for _, e := range dead {
		evt := ecs.Event{Type: ecs.EventEntityDied, Frame: arena.Frame, Entity: e}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			evt.Pos = t.Pos
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(evt)
	}

	if e, _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok && !c.playerDowned {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.IsDead() {
			c.playerDowned = true
			evt := ecs.Event{Type: ecs.EventPlayerDied, Frame: arena.Frame, Entity: e}
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				evt.Pos = t.Pos
			}
			w.Events().Push(evt)
			c.log.Info("player died", "frame", arena.Frame, "elapsed", arena.Elapsed)
		}
	}

	arena.Sweep()
}
