package component

// Health is a reusable integer health pool for anything that can take damage.
// Current never drops below zero and the owner counts as dead once it is zero.
type Health struct {
	Max     int
	Current int

	OnDamage func(h *Health, amount int)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsDead reports whether the pool is exhausted. A nil pool is dead.
func (h *Health) IsDead() bool {
	return h == nil || h.Current <= 0
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return !h.IsDead()
}

// TakeDamage subtracts amount, clamping at zero. OnDeath fires once, on the
// hit that empties the pool. Damage to an already dead pool is ignored.
func (h *Health) TakeDamage(amount int) {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.Current == 0 && h.OnDeath != nil {
		h.OnDeath(h)
	}
}

// Heal restores health up to Max.
func (h *Health) Heal(amount int) {
	if h == nil || h.Current <= 0 || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() int {
	if h == nil {
		return 0
	}
	return h.Current
}

// MaxHP returns the maximum health value.
func (h *Health) MaxHP() int {
	if h == nil {
		return 0
	}
	return h.Max
}

// Fraction returns Current/Max in [0, 1], for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
