package component

// Outcome counts what one Resolve call did.
type Outcome struct {
	HostileHits int
	PlayerHits  int
	Contacts    int
	Kills       int
}

// CombatResolver applies projectile and contact damage once per frame.
type CombatResolver struct {
	Emitter *CombatEventEmitter

	frame int
}

// NewCombatResolver creates a resolver instance.
func NewCombatResolver() *CombatResolver {
	return &CombatResolver{Emitter: &CombatEventEmitter{}}
}

// Frame returns how many times Resolve has run.
func (r *CombatResolver) Frame() int {
	if r == nil {
		return 0
	}
	return r.frame
}

// Resolve runs the three damage passes in order:
//
//  1. player shots against hostiles, first hit only
//  2. hostile shots against the player
//  3. hostile bodies against the player body, damaging both
//
// Previews and spent projectiles never take part. Targets that are already
// dead are skipped, so nothing is hit again after the hit that killed it;
// hostile shots that overlap a ship killed earlier in pass 2 are still spent.
// player may be nil when there is no ship on the field.
func (r *CombatResolver) Resolve(projectiles []*Projectile, hostiles []Target, player Target) Outcome {
	var out Outcome
	if r == nil {
		return out
	}
	r.frame++

	for _, p := range projectiles {
		if !p.Damaging() || p.Owner() != OwnerPlayer {
			continue
		}
		box := p.Bounds()
		for _, h := range hostiles {
			if h == nil || h.IsDead() || !box.Intersects(h.Bounds()) {
				continue
			}
			p.MarkSpent()
			h.TakeDamage(ProjectileDamage)
			out.HostileHits++
			r.emitHit(p, h, &out)
			break
		}
	}

	if player == nil || player.IsDead() {
		return out
	}

	playerBox := player.Bounds()
	for _, p := range projectiles {
		if !p.Damaging() || p.Owner() != OwnerEnemy || !p.Bounds().Intersects(playerBox) {
			continue
		}
		p.MarkSpent()
		// shots landing after the killing hit are absorbed without damage
		if player.IsDead() {
			continue
		}
		player.TakeDamage(ProjectileDamage)
		out.PlayerHits++
		r.emitHit(p, player, &out)
	}

	for _, h := range hostiles {
		if player.IsDead() {
			break
		}
		if h == nil || h.IsDead() || !h.Bounds().Intersects(playerBox) {
			continue
		}
		h.TakeDamage(ContactDamage)
		player.TakeDamage(ContactDamage)
		out.Contacts++
		r.emit(CombatEvent{
			Type:       EventContact,
			AttackerID: h.ID(),
			TargetID:   player.ID(),
			Damage:     ContactDamage,
			Pos:        h.Bounds().Center(),
		})
		r.emitDeath(h, &out)
		r.emitDeath(player, &out)
	}
	return out
}

func (r *CombatResolver) emitHit(p *Projectile, t Target, out *Outcome) {
	r.emit(CombatEvent{
		Type:     EventProjectileHit,
		TargetID: t.ID(),
		Owner:    p.Owner(),
		Damage:   ProjectileDamage,
		Beam:     p.IsBeam(),
		Pos:      p.Position(),
	})
	r.emitDeath(t, out)
}

func (r *CombatResolver) emitDeath(t Target, out *Outcome) {
	if !t.IsDead() {
		return
	}
	out.Kills++
	r.emit(CombatEvent{
		Type:     EventDeath,
		TargetID: t.ID(),
		Pos:      t.Bounds().Center(),
	})
}

func (r *CombatResolver) emit(evt CombatEvent) {
	if r.Emitter != nil {
		r.Emitter.Emit(evt)
	}
}
