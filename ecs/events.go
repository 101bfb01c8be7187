package ecs

import (
	"github.com/jakecoffman/cp"
	core "github.com/milk9111/downtoearth/component"
)

// EventType names a frame event.
type EventType string

const (
	EventPlayerFired   EventType = "player_fired"
	EventEnemyFired    EventType = "enemy_fired"
	EventBeamWarning   EventType = "beam_warning"
	EventBeamFired     EventType = "beam_fired"
	EventProjectileHit EventType = "projectile_hit"
	EventContactDamage EventType = "contact_damage"
	EventEntityDied    EventType = "entity_died"
	EventPlayerDied    EventType = "player_died"
)

// Event is something that happened during a frame. Entity is zero when the
// event is not tied to one.
type Event struct {
	Type   EventType
	Frame  uint64
	Entity Entity
	Owner  core.Owner
	Pos    cp.Vector
	Count  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
