package entity

import (
	"fmt"

	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/prefabs"
)

// StrategyFromSpec builds a fresh firing strategy from a pattern spec. A nil
// spec or kind "none" yields a strategy that never fires.
func StrategyFromSpec(p *prefabs.PatternSpec) (core.FiringStrategy, error) {
	if p == nil {
		return core.FiringStrategy{}, nil
	}
	if err := prefabs.ValidatePattern(*p); err != nil {
		return core.FiringStrategy{}, fmt.Errorf("pattern %q: %w", p.Kind, err)
	}
	switch p.Kind {
	case "direct":
		return core.NewDirectAtTarget(p.FireRate, p.ProjectileSpeed, p.ActiveRadius, p.Always), nil
	case "radial":
		return core.NewRadialBurst(p.Count, p.Interval, p.ProjectileSpeed), nil
	case "beam":
		return core.NewLingeringBeam(p.Interval, p.Warning, p.Duration, p.ProjectileSpeed), nil
	default:
		return core.FiringStrategy{}, nil
	}
}
