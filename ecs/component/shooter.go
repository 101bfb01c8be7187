package component

import core "github.com/milk9111/downtoearth/component"

// Shooter owns an enemy's firing strategy. Every enemy gets its own copy so
// timers never leak between entities.
type Shooter struct {
	Strategy core.FiringStrategy
}

var ShooterComponent = NewComponent[Shooter]()

// Gun is the player's cooldown-gated weapon.
type Gun struct {
	FireRate        float64
	ProjectileSpeed float64
	Offset          float64
	SinceLastShot   float64
}

// Ready reports whether the cooldown has elapsed.
func (g *Gun) Ready() bool {
	return g != nil && g.SinceLastShot >= g.FireRate
}

var GunComponent = NewComponent[Gun]()
