package prefabs

import (
	"errors"
	"fmt"
)

// Validate rejects configuration the simulation core does not guard against:
// non-positive speeds, rates and durations, empty bursts, short routes and
// unknown pattern kinds. Every problem is reported, joined.
func Validate(cfg *StageConfig) error {
	if cfg == nil {
		return errors.New("nil stage config")
	}
	var errs []error

	p := cfg.Player.Spec
	if p.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player: speed must be > 0, got %g", p.Speed))
	}
	if p.Health <= 0 {
		errs = append(errs, fmt.Errorf("player: health must be > 0, got %d", p.Health))
	}
	if p.Gun.FireRate <= 0 {
		errs = append(errs, fmt.Errorf("player: gun.fire_rate must be > 0, got %g", p.Gun.FireRate))
	}
	if p.Gun.ProjectileSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player: gun.projectile_speed must be > 0, got %g", p.Gun.ProjectileSpeed))
	}
	if p.Mode != "" && p.Mode != "air" && p.Mode != "ground" {
		errs = append(errs, fmt.Errorf("player: unknown mode %q", p.Mode))
	}
	errs = append(errs, validateHurtbox("player", p.Hurtbox)...)

	for i, e := range cfg.Enemies {
		where := fmt.Sprintf("enemies[%d] (%s)", i, e.Spec.Name)
		if e.Spec.Speed <= 0 {
			errs = append(errs, fmt.Errorf("%s: speed must be > 0, got %g", where, e.Spec.Speed))
		}
		if e.Spec.Health <= 0 {
			errs = append(errs, fmt.Errorf("%s: health must be > 0, got %d", where, e.Spec.Health))
		}
		if e.Spec.Wander.MinInterval <= 0 {
			errs = append(errs, fmt.Errorf("%s: wander.min_interval must be > 0", where))
		}
		errs = append(errs, validateHurtbox(where, e.Spec.Hurtbox)...)
		if e.Spec.Pattern != nil {
			if err := ValidatePattern(*e.Spec.Pattern); err != nil {
				errs = append(errs, fmt.Errorf("%s: pattern: %w", where, err))
			}
		}
		if r := e.Route; r != nil {
			if len(r.Waypoints) < 2 {
				errs = append(errs, fmt.Errorf("%s: route %s needs at least 2 waypoints, got %d", where, r.Name, len(r.Waypoints)))
			}
			if r.Speed <= 0 {
				errs = append(errs, fmt.Errorf("%s: route %s speed must be > 0, got %g", where, r.Name, r.Speed))
			}
		}
	}
	return errors.Join(errs...)
}

// ValidatePattern checks the fields the pattern's kind uses.
func ValidatePattern(p PatternSpec) error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %g", name, v))
		}
	}
	switch p.Kind {
	case "", "none":
	case "direct":
		positive("fire_rate", p.FireRate)
		positive("projectile_speed", p.ProjectileSpeed)
		if !p.Always {
			positive("active_radius", p.ActiveRadius)
		}
	case "radial":
		if p.Count <= 0 {
			errs = append(errs, fmt.Errorf("count must be > 0, got %d", p.Count))
		}
		positive("interval", p.Interval)
		positive("projectile_speed", p.ProjectileSpeed)
	case "beam":
		positive("interval", p.Interval)
		positive("warning", p.Warning)
		positive("duration", p.Duration)
		if p.ProjectileSpeed < 0 {
			errs = append(errs, fmt.Errorf("projectile_speed must be >= 0, got %g", p.ProjectileSpeed))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown kind %q", p.Kind))
	}
	return errors.Join(errs...)
}

func validateHurtbox(where string, h HurtboxSpec) []error {
	if h.Width <= 0 || h.Height <= 0 {
		return []error{fmt.Errorf("%s: hurtbox must have positive size, got %gx%g", where, h.Width, h.Height)}
	}
	return nil
}
