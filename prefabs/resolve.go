package prefabs

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/jakecoffman/cp"
)

// RouteConfig is a route with its waypoints evaluated.
type RouteConfig struct {
	Name      string
	Waypoints []cp.Vector
	Speed     float64
	Loop      bool
}

// EnemyConfig is one enemy ready to be built: the archetype with any
// per-spawn overrides applied and every expression evaluated.
type EnemyConfig struct {
	Spec             EnemySpec
	At               cp.Vector
	Route            *RouteConfig
	WanderGoal       cp.Vector
	WanderInterval   float64
	InitialDirection float64
}

type PlayerConfig struct {
	Spec PlayerSpec
	At   cp.Vector
}

// StageConfig is a fully evaluated, validated stage.
type StageConfig struct {
	Name    string
	Width   float64
	Height  float64
	Seed    uint64
	Player  PlayerConfig
	Enemies []EnemyConfig
}

// LoadStage loads and resolves a stage together with the player and enemy
// prefabs it references.
func LoadStage(name string) (*StageConfig, error) {
	spec, err := LoadStageSpec(name)
	if err != nil {
		return nil, err
	}
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	archetypes, err := LoadArchetypes()
	if err != nil {
		return nil, err
	}
	return Resolve(spec, player, archetypes)
}

// Resolve evaluates every expression in spec and validates the result. All
// problems found are reported together.
func Resolve(spec *StageSpec, player *PlayerSpec, archetypes map[string]EnemySpec) (*StageConfig, error) {
	if spec == nil || player == nil {
		return nil, errors.New("prefabs: resolve: nil spec")
	}

	cfg := &StageConfig{
		Name:   spec.Name,
		Width:  spec.Width,
		Height: spec.Height,
		Seed:   spec.Seed,
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("prefabs: stage %s: playfield must be positive, got %gx%g", spec.Name, cfg.Width, cfg.Height)
	}
	env := NewEnv(cfg.Width, cfg.Height)
	rng := rand.New(rand.NewPCG(spec.Seed, spec.Seed+1))

	var errs []error

	at, err := env.Point(spec.Player.At)
	if err != nil {
		errs = append(errs, fmt.Errorf("player.at: %w", err))
	}
	cfg.Player = PlayerConfig{Spec: *player, At: at}

	routes := make(map[string]*RouteConfig, len(spec.Routes))
	names := make([]string, 0, len(spec.Routes))
	for name := range spec.Routes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r, err := resolveRoute(env, name, spec.Routes[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		routes[name] = r
	}

	for i, s := range spec.Spawns {
		base, ok := archetypes[s.Archetype]
		if !ok {
			errs = append(errs, fmt.Errorf("spawns[%d]: unknown archetype %q", i, s.Archetype))
			continue
		}
		ec, err := resolveSpawn(env, rng, base, s, routes)
		if err != nil {
			errs = append(errs, fmt.Errorf("spawns[%d] (%s): %w", i, s.Archetype, err))
			continue
		}
		cfg.Enemies = append(cfg.Enemies, ec)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("prefabs: stage %s: %w", spec.Name, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("prefabs: stage %s: %w", spec.Name, err)
	}
	return cfg, nil
}

func resolveRoute(env Env, name string, r RouteSpec) (*RouteConfig, error) {
	out := &RouteConfig{Name: name, Speed: r.Speed, Loop: r.Loop}
	if r.Script != "" {
		pts, err := env.RunRouteScript(r.Script, r.Params)
		if err != nil {
			return nil, fmt.Errorf("routes.%s: %w", name, err)
		}
		out.Waypoints = pts
		return out, nil
	}
	for i, p := range r.Points {
		v, err := env.Point(p)
		if err != nil {
			return nil, fmt.Errorf("routes.%s.points[%d]: %w", name, i, err)
		}
		out.Waypoints = append(out.Waypoints, v)
	}
	return out, nil
}

func resolveSpawn(env Env, rng *rand.Rand, base EnemySpec, s SpawnSpec, routes map[string]*RouteConfig) (EnemyConfig, error) {
	spec := base
	if s.Speed > 0 {
		spec.Speed = s.Speed
	}
	if s.Pattern != nil {
		p := *s.Pattern
		spec.Pattern = &p
	} else if base.Pattern != nil {
		p := *base.Pattern
		spec.Pattern = &p
	}

	at, err := env.Point(s.At)
	if err != nil {
		return EnemyConfig{}, fmt.Errorf("at: %w", err)
	}
	goal, err := env.Point(spec.Wander.Goal)
	if err != nil {
		return EnemyConfig{}, fmt.Errorf("wander.goal: %w", err)
	}

	ec := EnemyConfig{
		Spec:             spec,
		At:               at,
		WanderGoal:       goal,
		WanderInterval:   spec.Wander.MinInterval,
		InitialDirection: rng.Float64() * 2 * math.Pi,
	}
	if span := spec.Wander.MaxInterval - spec.Wander.MinInterval; span > 0 {
		ec.WanderInterval += rng.Float64() * span
	}

	if s.Route != "" {
		r, ok := routes[s.Route]
		if !ok {
			return EnemyConfig{}, fmt.Errorf("unknown route %q", s.Route)
		}
		// every enemy owns its own copy of the route
		own := *r
		own.Waypoints = append([]cp.Vector(nil), r.Waypoints...)
		ec.Route = &own
	}
	return ec, nil
}
