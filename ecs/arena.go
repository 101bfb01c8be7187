package ecs

import (
	"math/rand/v2"

	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
)

// Arena is the playfield resource shared by systems: bounds, frame clock,
// randomness and the single projectile collection.
//
// Systems that spawn projectiles call Stage; the staged buffer is merged into
// the live collection once per frame by the projectile system, so no pass ever
// appends to the slice it is iterating.
type Arena struct {
	Bounds  common.Rect
	Rand    *rand.Rand
	DT      float64
	Elapsed float64
	Frame   uint64

	projectiles []*core.Projectile
	staged      []*core.Projectile
	spawned     map[core.Owner]int
}

// NewArena creates an arena over bounds with a deterministic random source.
func NewArena(bounds common.Rect, seed uint64) *Arena {
	return &Arena{
		Bounds:  bounds,
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		spawned: make(map[core.Owner]int),
	}
}

// Advance starts a new frame of length dt.
func (a *Arena) Advance(dt float64) {
	if a == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	a.DT = dt
	a.Elapsed += dt
	a.Frame++
}

// Stage queues projectiles to join the live collection at the next merge.
func (a *Arena) Stage(ps ...*core.Projectile) {
	if a == nil {
		return
	}
	for _, p := range ps {
		if p == nil {
			continue
		}
		a.staged = append(a.staged, p)
		if a.spawned == nil {
			a.spawned = make(map[core.Owner]int)
		}
		a.spawned[p.Owner()]++
	}
}

// Staged returns the projectiles waiting to be merged.
func (a *Arena) Staged() []*core.Projectile {
	if a == nil {
		return nil
	}
	return a.staged
}

// MergeStaged appends staged projectiles to the live collection and returns
// how many were merged.
func (a *Arena) MergeStaged() int {
	if a == nil || len(a.staged) == 0 {
		return 0
	}
	n := len(a.staged)
	a.projectiles = append(a.projectiles, a.staged...)
	clear(a.staged)
	a.staged = a.staged[:0]
	return n
}

// Projectiles returns the live collection. Callers must not retain it across
// frames.
func (a *Arena) Projectiles() []*core.Projectile {
	if a == nil {
		return nil
	}
	return a.projectiles
}

// Sweep removes spent and expired projectiles in one stable pass and returns
// how many were removed.
func (a *Arena) Sweep() int {
	if a == nil {
		return 0
	}
	kept := a.projectiles[:0]
	for _, p := range a.projectiles {
		if p.Spent() || p.IsExpired(a.Bounds) {
			continue
		}
		kept = append(kept, p)
	}
	removed := len(a.projectiles) - len(kept)
	clear(a.projectiles[len(kept):])
	a.projectiles = kept
	return removed
}

// Spawned returns how many projectiles owner has fired since the arena was created.
func (a *Arena) Spawned(owner core.Owner) int {
	if a == nil {
		return 0
	}
	return a.spawned[owner]
}
