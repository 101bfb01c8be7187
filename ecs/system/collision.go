package system

import (
	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

// entityTarget adapts an ECS entity to the resolver's Target contract.
type entityTarget struct {
	e      ecs.Entity
	box    common.Rect
	health *core.Health
}

func (t *entityTarget) ID() uint64            { return uint64(t.e) }
func (t *entityTarget) Bounds() common.Rect   { return t.box }
func (t *entityTarget) TakeDamage(amount int) { t.health.TakeDamage(amount) }
func (t *entityTarget) IsDead() bool          { return t.health.IsDead() }

// CollisionSystem runs the combat resolver over the arena's projectiles, the
// enemies and the player, and republishes what happened as frame events.
type CollisionSystem struct {
	resolver *core.CombatResolver
	world    *ecs.World
	frame    uint64
	hostiles []core.Target
	pool     []entityTarget
}

func NewCollisionSystem() *CollisionSystem {
	c := &CollisionSystem{resolver: core.NewCombatResolver()}
	c.resolver.Emitter.Subscribe(c.publish)
	return c
}

// Resolver exposes the underlying resolver, for tests and diagnostics.
func (c *CollisionSystem) Resolver() *core.CombatResolver {
	return c.resolver
}

func (c *CollisionSystem) Update(w *ecs.World) {
	arena := w.Arena()
	if arena == nil {
		return
	}
	c.world = w
	c.frame = arena.Frame
	defer func() { c.world = nil }()

	enemies := ecs.Query(w,
		component.EnemyTagComponent.Kind().ID(),
		component.TransformComponent.Kind().ID(),
		component.HealthComponent.Kind().ID(),
		component.HurtboxComponent.Kind().ID(),
	)
	if cap(c.pool) < len(enemies)+1 {
		c.pool = make([]entityTarget, 0, len(enemies)+1)
	}
	c.pool = c.pool[:0]
	c.hostiles = c.hostiles[:0]
	for _, e := range enemies {
		if t, ok := c.target(w, e); ok {
			c.pool = append(c.pool, t)
			c.hostiles = append(c.hostiles, &c.pool[len(c.pool)-1])
		}
	}

	var player core.Target
	if e, _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := c.target(w, e); ok {
			c.pool = append(c.pool, t)
			player = &c.pool[len(c.pool)-1]
		}
	}

	c.resolver.Resolve(arena.Projectiles(), c.hostiles, player)
	clear(c.hostiles)
}

func (c *CollisionSystem) target(w *ecs.World, e ecs.Entity) (entityTarget, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return entityTarget{}, false
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return entityTarget{}, false
	}
	hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind())
	if !ok {
		return entityTarget{}, false
	}
	return entityTarget{e: e, box: hb.Rect(t.Pos), health: h}, true
}

func (c *CollisionSystem) publish(evt core.CombatEvent) {
	if c.world == nil {
		return
	}
	out := ecs.Event{
		Frame:  c.frame,
		Entity: ecs.Entity(evt.TargetID),
		Owner:  evt.Owner,
		Pos:    evt.Pos,
		Count:  evt.Damage,
	}
	switch evt.Type {
	case core.EventProjectileHit:
		out.Type = ecs.EventProjectileHit
		flash(c.world, ecs.Entity(evt.TargetID))
	case core.EventContact:
		out.Type = ecs.EventContactDamage
		out.Entity = ecs.Entity(evt.AttackerID)
		flash(c.world, ecs.Entity(evt.TargetID))
		flash(c.world, ecs.Entity(evt.AttackerID))
	default:
		// deaths are reported by the cleanup system once removal happens
		return
	}
	c.world.Events().Push(out)
}
