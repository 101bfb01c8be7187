package entity

import (
	"fmt"

	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/prefabs"
)

// BuildStage creates the player and every enemy of cfg, in spawn order.
func BuildStage(w *ecs.World, cfg *prefabs.StageConfig) (ecs.Entity, []ecs.Entity, error) {
	if cfg == nil {
		return 0, nil, fmt.Errorf("build stage: nil config")
	}
	player, err := NewPlayer(w, cfg.Player)
	if err != nil {
		return 0, nil, fmt.Errorf("build stage %s: %w", cfg.Name, err)
	}
	enemies := make([]ecs.Entity, 0, len(cfg.Enemies))
	for i, ec := range cfg.Enemies {
		e, err := NewEnemy(w, ec)
		if err != nil {
			return 0, nil, fmt.Errorf("build stage %s: enemies[%d]: %w", cfg.Name, i, err)
		}
		enemies = append(enemies, e)
	}
	return player, enemies, nil
}
