package ecs

import "github.com/milk9111/downtoearth/ecs/component"

// World owns entities, their component stores and the per-frame resources
// shared by systems.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	arena    *Arena
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s := w.stores[id]
	if s == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetArena attaches the playfield resource.
func (w *World) SetArena(a *Arena) {
	if w == nil {
		return
	}
	w.arena = a
}

// Arena returns the attached playfield resource, if any.
func (w *World) Arena() *Arena {
	if w == nil {
		return nil
	}
	return w.arena
}
