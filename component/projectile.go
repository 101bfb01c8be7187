package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
)

// Owner identifies which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota + 1
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

const (
	// NoLifetime marks a projectile that expires by leaving the playfield
	// instead of by timer.
	NoLifetime = -1.0

	// ShotSize is the side of a point projectile's square footprint.
	ShotSize = 16.0

	// BeamLength and BeamWidth give a beam's fixed extent from its origin.
	BeamLength = 600.0
	BeamWidth  = 12.0

	// lifetimeEpsilon absorbs float drift so a timer fed the exact duration
	// in several steps still lands on zero.
	lifetimeEpsilon = 1e-9
)

// Projectile is a bullet or beam in flight. Point projectiles collide with a
// small box around their position; beams collide with a long box anchored at
// their origin along their firing angle for their whole life.
type Projectile struct {
	position cp.Vector
	velocity cp.Vector
	origin   cp.Vector
	angle    float64
	owner    Owner
	lifetime float64
	timed    bool
	beam     bool
	preview  bool
	spent    bool
}

func newProjectile(pos cp.Vector, angle, speed float64, owner Owner, lifetime float64) *Projectile {
	p := &Projectile{
		position: pos,
		origin:   pos,
		velocity: common.Polar(angle, speed),
		angle:    angle,
		owner:    owner,
		lifetime: NoLifetime,
	}
	if lifetime >= 0 {
		p.lifetime = lifetime
		p.timed = true
	}
	return p
}

// NewProjectile creates a point projectile that expires off-screen.
func NewProjectile(pos cp.Vector, angle, speed float64, owner Owner) *Projectile {
	return newProjectile(pos, angle, speed, owner, NoLifetime)
}

// NewTimedProjectile creates a point projectile that expires after lifetime
// seconds. A negative lifetime falls back to off-screen expiry.
func NewTimedProjectile(pos cp.Vector, angle, speed float64, owner Owner, lifetime float64) *Projectile {
	return newProjectile(pos, angle, speed, owner, lifetime)
}

// NewBeam creates a beam anchored at origin. Preview beams are telegraphs and
// never deal damage.
func NewBeam(origin cp.Vector, angle, speed float64, owner Owner, lifetime float64, preview bool) *Projectile {
	p := newProjectile(origin, angle, speed, owner, lifetime)
	p.beam = true
	p.preview = preview
	return p
}

// Update integrates position and counts down a timed lifetime, stopping at zero.
func (p *Projectile) Update(dt float64) {
	if p == nil {
		return
	}
	p.position = p.position.Add(p.velocity.Mult(dt))
	if !p.timed {
		return
	}
	p.lifetime -= dt
	if p.lifetime <= lifetimeEpsilon {
		p.lifetime = 0
	}
}

// IsExpired reports whether a timed projectile has run out, or an untimed
// one has left bounds grown by common.OffscreenMargin.
func (p *Projectile) IsExpired(bounds common.Rect) bool {
	if p == nil {
		return true
	}
	if p.timed {
		return p.lifetime == 0
	}
	m := common.OffscreenMargin
	return p.position.X < bounds.X-m || p.position.X > bounds.Right()+m ||
		p.position.Y < bounds.Y-m || p.position.Y > bounds.Bottom()+m
}

// Bounds returns the collision box.
func (p *Projectile) Bounds() common.Rect {
	if p == nil {
		return common.Rect{}
	}
	if p.beam {
		end := p.origin.Add(common.Polar(p.angle, BeamLength))
		return common.RectSpanning(p.origin, end, BeamWidth/2)
	}
	return common.RectAround(p.position, ShotSize, ShotSize)
}

// BeamEnd returns the far end of a beam's segment. For point projectiles it
// is the current position.
func (p *Projectile) BeamEnd() cp.Vector {
	if p == nil || !p.beam {
		return p.Position()
	}
	return p.origin.Add(common.Polar(p.angle, BeamLength))
}

func (p *Projectile) Position() cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	return p.position
}

func (p *Projectile) Velocity() cp.Vector { return p.velocity }
func (p *Projectile) Origin() cp.Vector   { return p.origin }
func (p *Projectile) Angle() float64      { return p.angle }
func (p *Projectile) Owner() Owner        { return p.owner }
func (p *Projectile) IsBeam() bool        { return p.beam }
func (p *Projectile) IsPreview() bool     { return p.preview }
func (p *Projectile) Timed() bool         { return p.timed }

// Lifetime returns the remaining seconds, or NoLifetime for untimed projectiles.
func (p *Projectile) Lifetime() float64 {
	if !p.timed {
		return NoLifetime
	}
	return p.lifetime
}

// MarkSpent flags the projectile for removal after it hits something.
func (p *Projectile) MarkSpent() {
	if p != nil {
		p.spent = true
	}
}

// Spent reports whether the projectile already hit a target this frame or earlier.
func (p *Projectile) Spent() bool {
	return p != nil && p.spent
}

// Damaging reports whether the projectile may still take part in damage resolution.
func (p *Projectile) Damaging() bool {
	return p != nil && !p.preview && !p.spent
}
