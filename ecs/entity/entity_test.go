package entity

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
	"github.com/milk9111/downtoearth/prefabs"
)

func TestStrategyFromSpec(t *testing.T) {
	cases := []struct {
		name    string
		spec    *prefabs.PatternSpec
		want    core.FiringKind
		wantErr bool
	}{
		{"nil", nil, core.FiringNone, false},
		{"none", &prefabs.PatternSpec{Kind: "none"}, core.FiringNone, false},
		{"direct", &prefabs.PatternSpec{Kind: "direct", FireRate: 1, ProjectileSpeed: 100, ActiveRadius: 50}, core.FiringDirect, false},
		{"direct_always_needs_no_radius", &prefabs.PatternSpec{Kind: "direct", FireRate: 1, ProjectileSpeed: 100, Always: true}, core.FiringDirect, false},
		{"radial", &prefabs.PatternSpec{Kind: "radial", Count: 6, Interval: 2, ProjectileSpeed: 100}, core.FiringRadial, false},
		{"beam", &prefabs.PatternSpec{Kind: "beam", Interval: 6, Warning: 1, Duration: 2}, core.FiringBeam, false},
		{"radial_zero_count", &prefabs.PatternSpec{Kind: "radial", Interval: 2, ProjectileSpeed: 100}, core.FiringNone, true},
		{"unknown", &prefabs.PatternSpec{Kind: "spiral"}, core.FiringNone, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := StrategyFromSpec(c.spec)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if s.Kind != c.want {
				t.Fatalf("kind = %v, want %v", s.Kind, c.want)
			}
		})
	}
}

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, prefabs.PlayerConfig{
		Spec: prefabs.PlayerSpec{
			Speed: 300, Radius: 15, Health: 20, Mode: "ground",
			Hurtbox: prefabs.HurtboxSpec{Width: 30, Height: 30},
			Gun:     prefabs.GunSpec{FireRate: 0.15, ProjectileSpeed: 500, Offset: 30},
		},
		At: cp.Vector{X: 160, Y: 300},
	})
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.Pos != (cp.Vector{X: 160, Y: 300}) {
		t.Fatalf("transform = %+v", tr)
	}
	ship, ok := ecs.Get(w, e, component.ShipComponent.Kind())
	if !ok || ship.Mode != component.ModeGround || ship.Speed != 300 {
		t.Fatalf("ship = %+v", ship)
	}
	gun, ok := ecs.Get(w, e, component.GunComponent.Kind())
	if !ok || !gun.Ready() {
		t.Fatalf("gun should start ready: %+v", gun)
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || h.MaxHP() != 20 || h.CurrentHP() != 20 {
		t.Fatalf("health = %+v", h)
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) || !ecs.Has(w, e, component.InputComponent.Kind()) {
		t.Fatalf("player missing tag or input")
	}
}

func enemyConfig() prefabs.EnemyConfig {
	return prefabs.EnemyConfig{
		Spec: prefabs.EnemySpec{
			Name: "ufo", Speed: 80, Health: 2,
			Hurtbox: prefabs.HurtboxSpec{Width: 32, Height: 32},
			Wander:  prefabs.WanderSpec{MinInterval: 1, MaxInterval: 3, Spread: 45},
			Pattern: &prefabs.PatternSpec{Kind: "radial", Count: 4, Interval: 1, ProjectileSpeed: 50},
		},
		At:               cp.Vector{X: 600, Y: 300},
		WanderGoal:       cp.Vector{X: 560, Y: 300},
		WanderInterval:   2,
		InitialDirection: math.Pi / 2,
	}
}

func TestNewEnemyFreeRoam(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewEnemy(w, enemyConfig())
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok || math.Abs(v.V.X) > 1e-9 || math.Abs(v.V.Y-80) > 1e-9 {
		t.Fatalf("initial velocity = %+v, want (0, 80)", v)
	}
	wd, ok := ecs.Get(w, e, component.WanderComponent.Kind())
	if !ok || wd.Interval != 2 || math.Abs(wd.Spread-math.Pi/4) > 1e-9 {
		t.Fatalf("wander = %+v", wd)
	}
	sh, ok := ecs.Get(w, e, component.ShooterComponent.Kind())
	if !ok || sh.Strategy.Kind != core.FiringRadial {
		t.Fatalf("shooter = %+v", sh)
	}
	if ecs.Has(w, e, component.PathFollowComponent.Kind()) {
		t.Fatalf("enemy without route got a path")
	}
	tag, _ := ecs.Get(w, e, component.EnemyTagComponent.Kind())
	if tag.Archetype != "ufo" {
		t.Fatalf("archetype = %q", tag.Archetype)
	}
}

func TestNewEnemyOnRoute(t *testing.T) {
	w := ecs.NewWorld()
	cfg := enemyConfig()
	cfg.Route = &prefabs.RouteConfig{
		Name:      "patrol",
		Waypoints: []cp.Vector{{X: 100, Y: 100}, {X: 200, Y: 100}},
		Speed:     50,
		Loop:      true,
	}
	e, err := NewEnemy(w, cfg)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	pf, ok := ecs.Get(w, e, component.PathFollowComponent.Kind())
	if !ok || !pf.Active() {
		t.Fatalf("path not attached")
	}
	if pf.Path.TargetIndex() != 0 || pf.Path.Position() != cfg.At {
		t.Fatalf("path should start at spawn heading for waypoint 0: target=%d pos=%v", pf.Path.TargetIndex(), pf.Path.Position())
	}
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if v.V != (cp.Vector{}) {
		t.Fatalf("velocity not zeroed: %v", v.V)
	}
}

func TestEnemiesDoNotShareState(t *testing.T) {
	w := ecs.NewWorld()
	cfg := enemyConfig()
	a, err := NewEnemy(w, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewEnemy(w, cfg)
	if err != nil {
		t.Fatal(err)
	}
	sa, _ := ecs.Get(w, a, component.ShooterComponent.Kind())
	sb, _ := ecs.Get(w, b, component.ShooterComponent.Kind())
	sa.Strategy.Update(0.5, cp.Vector{}, cp.Vector{}, nil)
	if sb.Strategy.Radial.Timer() != 0 {
		t.Fatalf("strategies share timers")
	}
}

func TestNewEnemyRejectsBadPattern(t *testing.T) {
	w := ecs.NewWorld()
	cfg := enemyConfig()
	cfg.Spec.Pattern = &prefabs.PatternSpec{Kind: "radial"}
	if _, err := NewEnemy(w, cfg); err == nil {
		t.Fatalf("expected error")
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("failed build left entities behind")
	}
}

func TestBuildStage1(t *testing.T) {
	cfg, err := prefabs.LoadStage("stage1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w := ecs.NewWorld()
	player, enemies, err := BuildStage(w, cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !ecs.IsAlive(w, player) || len(enemies) != len(cfg.Enemies) {
		t.Fatalf("player alive=%v enemies=%d", ecs.IsAlive(w, player), len(enemies))
	}
	routed := len(ecs.Query(w, component.PathFollowComponent.Kind().ID()))
	if routed != 4 {
		t.Fatalf("routed enemies = %d, want 4", routed)
	}
}
