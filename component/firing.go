package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
)

// FiringKind selects which variant of FiringStrategy is active.
type FiringKind int

const (
	FiringNone FiringKind = iota
	FiringDirect
	FiringRadial
	FiringBeam
)

func (k FiringKind) String() string {
	switch k {
	case FiringDirect:
		return "direct"
	case FiringRadial:
		return "radial"
	case FiringBeam:
		return "beam"
	default:
		return "none"
	}
}

// FiringStrategy is an enemy's firing behaviour. It is a closed set of
// variants; Kind picks the one whose state is live. Values are self-contained,
// so copying a strategy gives the copy its own timers.
type FiringStrategy struct {
	Kind   FiringKind
	Direct DirectAtTarget
	Radial RadialBurst
	Beam   LingeringBeam
}

// NewDirectAtTarget fires one shot at the target every fireRate seconds. Unless
// always is set, shots are held while the target is farther than activeRadius.
func NewDirectAtTarget(fireRate, projectileSpeed, activeRadius float64, always bool) FiringStrategy {
	return FiringStrategy{
		Kind: FiringDirect,
		Direct: DirectAtTarget{
			FireRate:        fireRate,
			ProjectileSpeed: projectileSpeed,
			ActiveRadius:    activeRadius,
			Always:          always,
		},
	}
}

// NewRadialBurst fires count shots in a full ring every interval seconds.
func NewRadialBurst(count int, interval, projectileSpeed float64) FiringStrategy {
	return FiringStrategy{
		Kind: FiringRadial,
		Radial: RadialBurst{
			Count:           count,
			Interval:        interval,
			ProjectileSpeed: projectileSpeed,
		},
	}
}

// NewLingeringBeam telegraphs a beam for warning seconds after every interval,
// then fires it for duration seconds.
func NewLingeringBeam(interval, warning, duration, projectileSpeed float64) FiringStrategy {
	return FiringStrategy{
		Kind: FiringBeam,
		Beam: LingeringBeam{
			Interval:        interval,
			WarningDuration: warning,
			BeamDuration:    duration,
			ProjectileSpeed: projectileSpeed,
		},
	}
}

// Update advances the active variant by dt and appends whatever it fires to out.
func (s *FiringStrategy) Update(dt float64, self, target cp.Vector, out []*Projectile) []*Projectile {
	if s == nil {
		return out
	}
	switch s.Kind {
	case FiringDirect:
		return s.Direct.Update(dt, self, target, out)
	case FiringRadial:
		return s.Radial.Update(dt, self, out)
	case FiringBeam:
		return s.Beam.Update(dt, self, target, out)
	}
	return out
}

// DirectAtTarget aims single shots straight at the target.
type DirectAtTarget struct {
	FireRate        float64
	ProjectileSpeed float64
	ActiveRadius    float64
	Always          bool

	timer float64
}

func (d *DirectAtTarget) Update(dt float64, self, target cp.Vector, out []*Projectile) []*Projectile {
	d.timer += dt
	if !d.Always && target.Sub(self).LengthSq() > d.ActiveRadius*d.ActiveRadius {
		return out
	}
	if d.timer < d.FireRate {
		return out
	}
	d.timer = 0
	return append(out, NewProjectile(self, common.Heading(self, target), d.ProjectileSpeed, OwnerEnemy))
}

// Timer returns seconds accumulated since the last shot.
func (d *DirectAtTarget) Timer() float64 { return d.timer }

// RadialBurst fires a ring of evenly spaced shots starting at angle 0.
type RadialBurst struct {
	Count           int
	Interval        float64
	ProjectileSpeed float64

	timer float64
}

func (r *RadialBurst) Update(dt float64, self cp.Vector, out []*Projectile) []*Projectile {
	r.timer += dt
	if r.timer < r.Interval {
		return out
	}
	r.timer = 0
	for i := 0; i < r.Count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(r.Count)
		out = append(out, NewProjectile(self, angle, r.ProjectileSpeed, OwnerEnemy))
	}
	return out
}

func (r *RadialBurst) Timer() float64 { return r.timer }

// BeamPhase is the stage of a LingeringBeam cycle.
type BeamPhase int

const (
	BeamIdle BeamPhase = iota
	BeamWarning
	BeamFiring
)

func (p BeamPhase) String() string {
	switch p {
	case BeamWarning:
		return "warning"
	case BeamFiring:
		return "firing"
	default:
		return "idle"
	}
}

// LingeringBeam cycles Idle -> Warning -> Firing -> Idle. Entering Warning
// locks the aim on the target and spawns a harmless preview beam; entering
// Firing spawns the real beam along the same locked angle.
type LingeringBeam struct {
	Interval        float64
	WarningDuration float64
	BeamDuration    float64
	ProjectileSpeed float64

	timer float64
	phase BeamPhase
	aim   float64
}

func (b *LingeringBeam) Update(dt float64, self, target cp.Vector, out []*Projectile) []*Projectile {
	b.timer += dt
	switch b.phase {
	case BeamIdle:
		if b.timer >= b.Interval {
			b.timer = 0
			b.phase = BeamWarning
			b.aim = common.Heading(self, target)
			out = append(out, NewBeam(self, b.aim, b.ProjectileSpeed, OwnerEnemy, b.WarningDuration, true))
		}
	case BeamWarning:
		if b.timer >= b.WarningDuration {
			b.timer = 0
			b.phase = BeamFiring
			out = append(out, NewBeam(self, b.aim, b.ProjectileSpeed, OwnerEnemy, b.BeamDuration, false))
		}
	case BeamFiring:
		if b.timer >= b.BeamDuration {
			b.timer = 0
			b.phase = BeamIdle
		}
	}
	return out
}

func (b *LingeringBeam) Phase() BeamPhase { return b.phase }

// Aim returns the angle locked at the start of the current warning.
func (b *LingeringBeam) Aim() float64 { return b.aim }

func (b *LingeringBeam) Timer() float64 { return b.timer }
