// Package stage runs one encounter: it builds the world from a resolved stage
// config and steps the frame pipeline. Frontends only talk to this package.
package stage

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
	"github.com/milk9111/downtoearth/ecs/entity"
	"github.com/milk9111/downtoearth/ecs/system"
	"github.com/milk9111/downtoearth/prefabs"
)

// Stage is a running encounter. It is not safe for concurrent use; frontends
// call Step, Snapshot and Events from their frame loop.
type Stage struct {
	RunID uuid.UUID

	cfg      *prefabs.StageConfig
	log      *slog.Logger
	world    *ecs.World
	arena    *ecs.Arena
	pipeline *ecs.Scheduler
	player   ecs.Entity
	over     bool
}

// Load resolves the named stage from prefabs and builds it.
func Load(name string, log *slog.Logger) (*Stage, error) {
	cfg, err := prefabs.LoadStage(name)
	if err != nil {
		return nil, err
	}
	return Build(cfg, log)
}

// Build creates a stage from a resolved config.
func Build(cfg *prefabs.StageConfig, log *slog.Logger) (*Stage, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Stage{RunID: uuid.New()}
	s.log = log.With("run_id", s.RunID.String())
	if err := s.build(cfg); err != nil {
		return nil, err
	}
	s.log.Info("stage built", "stage", cfg.Name, "enemies", len(cfg.Enemies), "seed", cfg.Seed)
	return s, nil
}

// Reload replaces the running encounter with cfg, keeping the run id. On
// error the current encounter keeps running.
func (s *Stage) Reload(cfg *prefabs.StageConfig) error {
	prev := *s
	if err := s.build(cfg); err != nil {
		*s = prev
		return err
	}
	s.log.Info("stage reloaded", "stage", cfg.Name, "enemies", len(cfg.Enemies))
	return nil
}

func (s *Stage) build(cfg *prefabs.StageConfig) error {
	if cfg == nil {
		return fmt.Errorf("stage: nil config")
	}
	w := ecs.NewWorld()
	arena := ecs.NewArena(common.Rect{Width: cfg.Width, Height: cfg.Height}, cfg.Seed)
	w.SetArena(arena)

	player, _, err := entity.BuildStage(w, cfg)
	if err != nil {
		return fmt.Errorf("stage: %w", err)
	}

	s.cfg = cfg
	s.world = w
	s.arena = arena
	s.player = player
	s.pipeline = system.NewPipeline(s.log)
	s.over = false
	return nil
}

// Step advances the encounter by dt seconds with the player's intent for this
// frame. It does nothing once the game is over.
func (s *Stage) Step(dt float64, in component.Intent) {
	if s == nil || s.over {
		return
	}
	if cur, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		*cur = in
	}
	s.arena.Advance(dt)
	s.pipeline.Update(s.world)

	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok && h.IsDead() {
		s.over = true
	}
}

// Over reports whether the player has been destroyed.
func (s *Stage) Over() bool {
	return s != nil && s.over
}

// Events drains the events produced since the last call.
func (s *Stage) Events() []ecs.Event {
	if s == nil {
		return nil
	}
	return s.world.Events().Drain()
}

func (s *Stage) Name() string {
	return s.cfg.Name
}

func (s *Stage) Config() *prefabs.StageConfig {
	return s.cfg
}

// World exposes the ECS world for diagnostics and tests.
func (s *Stage) World() *ecs.World {
	return s.world
}

// Stats summarises a run.
type Stats struct {
	Frames         uint64
	Elapsed        float64
	EnemiesAlive   int
	EnemiesKilled  int
	PlayerHealth   int
	PlayerSpawned  int
	EnemySpawned   int
	LiveProjectile int
}

func (s *Stage) Stats() Stats {
	alive := len(ecs.Query(s.world, component.EnemyTagComponent.Kind().ID()))
	st := Stats{
		Frames:         s.arena.Frame,
		Elapsed:        s.arena.Elapsed,
		EnemiesAlive:   alive,
		EnemiesKilled:  len(s.cfg.Enemies) - alive,
		PlayerSpawned:  s.arena.Spawned(core.OwnerPlayer),
		EnemySpawned:   s.arena.Spawned(core.OwnerEnemy),
		LiveProjectile: len(s.arena.Projectiles()),
	}
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		st.PlayerHealth = h.CurrentHP()
	}
	return st
}
