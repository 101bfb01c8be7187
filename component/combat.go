package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
)

// ContactDamage and ProjectileDamage are the fixed damage amounts applied by
// the resolver.
const (
	ProjectileDamage = 1
	ContactDamage    = 1
)

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventProjectileHit CombatEventType = "projectile_hit"
	EventContact       CombatEventType = "contact"
	EventDeath         CombatEventType = "death"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	AttackerID uint64
	TargetID   uint64
	Owner      Owner
	Damage     int
	Beam       bool
	Pos        cp.Vector
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe adds a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// Target is anything the resolver can hit: it has a box, takes damage and
// knows whether it is dead.
//
//go:generate go tool mockgen -destination=./mocks/target_mock.go -package=mocks . Target
type Target interface {
	ID() uint64
	Bounds() common.Rect
	TakeDamage(amount int)
	IsDead() bool
}
