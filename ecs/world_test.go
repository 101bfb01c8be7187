package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
		live    []int
	}{
		{"single_destroyed", 1, []int{0}, nil},
		{"destroy_middle", 3, []int{1}, []int{0, 2}},
		{"destroy_ends", 4, []int{0, 3}, []int{1, 2}},
		{"none_destroyed", 2, nil, []int{0, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, c.create)
			for i := range ents {
				ents[i] = CreateEntity(w)
			}
			for _, i := range c.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("destroy %v returned false", ents[i])
				}
				if IsAlive(w, ents[i]) {
					t.Fatalf("%v alive after destroy", ents[i])
				}
			}
			got := Entities(w)
			if len(got) != len(c.live) {
				t.Fatalf("live = %v, want %d entities", got, len(c.live))
			}
			for j, i := range c.live {
				if got[j] != ents[i] {
					t.Fatalf("live[%d] = %v, want %v", j, got[j], ents[i])
				}
			}
		})
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	ship := CreateEntity(w)
	drone := CreateEntity(w)
	transform := component.TransformComponent.Kind()
	velocity := component.VelocityComponent.Kind()

	cases := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
		undo  func() bool
	}{
		{
			name:  "transform_on_ship",
			setup: func() error { return Add(w, ship, transform, &component.Transform{Pos: cp.Vector{X: 10, Y: 20}}) },
			check: func(t *testing.T) {
				tr, ok := Get(w, ship, transform)
				if !ok || tr.Pos != (cp.Vector{X: 10, Y: 20}) {
					t.Fatalf("transform = %v ok=%v", tr, ok)
				}
				if Has(w, drone, transform) {
					t.Fatalf("drone picked up the ship's transform")
				}
			},
			undo: func() bool { return Remove(w, ship, transform) },
		},
		{
			name: "velocity_on_both",
			setup: func() error {
				if err := Add(w, ship, velocity, &component.Velocity{V: cp.Vector{X: 1}}); err != nil {
					return err
				}
				return Add(w, drone, velocity, &component.Velocity{V: cp.Vector{Y: 1}})
			},
			check: func(t *testing.T) {
				a, _ := Get(w, ship, velocity)
				b, _ := Get(w, drone, velocity)
				if a == nil || b == nil || a.V == b.V {
					t.Fatalf("velocities shared or missing: %v %v", a, b)
				}
			},
			undo: func() bool { return Remove(w, drone, velocity) },
		},
		{
			name:  "replace_keeps_latest",
			setup: func() error { return Add(w, ship, velocity, &component.Velocity{V: cp.Vector{X: 5}}) },
			check: func(t *testing.T) {
				v, _ := Get(w, ship, velocity)
				if v == nil || v.V.X != 5 {
					t.Fatalf("velocity = %v, want X=5", v)
				}
			},
			undo: func() bool { return Remove(w, ship, velocity) },
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.setup(); err != nil {
				t.Fatalf("setup: %v", err)
			}
			c.check(t)
			if !c.undo() {
				t.Fatalf("remove failed")
			}
		})
	}
	if Remove(w, ship, velocity) {
		t.Fatalf("second remove reported success")
	}
}

// enemyQuery mirrors how movement finds free-roaming hostiles.
func enemyQuery(w *World) []Entity {
	var out []Entity
	ForEach3(w, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e Entity, _ *component.EnemyTag, _ *component.Transform, _ *component.Velocity) {
			out = append(out, e)
		})
	return out
}

func TestForEach3Intersection(t *testing.T) {
	type parts struct{ tag, transform, velocity bool }
	cases := []struct {
		name   string
		ents   []parts
		kill   int // -1 = none
		expect []int
	}{
		{"full_match_only", []parts{{true, true, false}, {true, true, true}, {false, true, true}}, -1, []int{1}},
		{"dead_excluded", []parts{{true, true, true}, {true, true, true}}, 0, []int{1}},
		{"no_common", []parts{{true, false, false}, {false, true, false}}, -1, nil},
		{"missing_store", []parts{{true, true, false}}, -1, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, len(c.ents))
			for i, p := range c.ents {
				e := CreateEntity(w)
				ents[i] = e
				if p.tag {
					_ = Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{Archetype: "drone"})
				}
				if p.transform {
					_ = Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
				}
				if p.velocity {
					_ = Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
				}
			}
			if c.kill >= 0 {
				DestroyEntity(w, ents[c.kill])
			}
			got := enemyQuery(w)
			if len(got) != len(c.expect) {
				t.Fatalf("got %v, want %d entities", got, len(c.expect))
			}
			for j, i := range c.expect {
				if got[j] != ents[i] {
					t.Fatalf("got[%d] = %v, want %v", j, got[j], ents[i])
				}
			}
		})
	}
}

func TestEntityGenerations(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if !e.Valid() || e.Index() != 1 {
		t.Fatalf("first entity = %v, want slot 1", e)
	}
	if !DestroyEntity(w, e) {
		t.Fatal("destroy failed")
	}
	if DestroyEntity(w, e) {
		t.Fatal("stale handle destroyed twice")
	}

	reused := CreateEntity(w)
	if reused.Index() != e.Index() {
		t.Fatalf("slot not reused: %v vs %v", reused, e)
	}
	if reused == e || IsAlive(w, e) {
		t.Fatalf("stale handle %v still alive after slot reuse", e)
	}
	if reused.String() != "1v1" {
		t.Fatalf("reused = %s, want 1v1", reused)
	}
	if err := Add(w, e, component.NewComponentKind[int](), intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("add to stale handle: %v", err)
	}
}

func TestDestroyStripsComponents(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := CreateEntity(w)
	if err := Add(w, e, k, intPtr(7)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)
	next := CreateEntity(w)
	if Has(w, next, k) {
		t.Fatalf("new entity in reused slot inherited a component")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("zero kind: %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("nil value: %v", err)
	}
}

func TestForEachSlotOrderAndDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	ents := make([]Entity, 5)
	for i := range ents {
		ents[i] = CreateEntity(w)
	}
	// insert out of slot order
	for _, i := range []int{4, 0, 2, 1, 3} {
		if err := Add(w, ents[i], k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	var seen []int
	ForEach(w, k, func(e Entity, v *int) {
		seen = append(seen, *v)
		if *v == 1 {
			DestroyEntity(w, ents[3])
		}
	})
	want := []int{0, 1, 2, 4}
	if len(seen) != len(want) {
		t.Fatalf("seen %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen %v, want %v", seen, want)
		}
	}
}

func TestForEach2AndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	if _, _, ok := First(w, ka); ok {
		t.Fatalf("First on empty world")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("two"))
	_ = Add(w, e3, kb, stringPtr("three"))

	var got []Entity
	ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
		if *a != 2 || *b != "two" {
			t.Fatalf("wrong values %d %q", *a, *b)
		}
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("ForEach2 = %v, want [%v]", got, e2)
	}

	e, v, ok := First(w, kb)
	if !ok || e != e2 || *v != "two" {
		t.Fatalf("First = %v %v %v", e, v, ok)
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventPlayerFired, Frame: 1})
	w.Events().Push(Event{Type: EventEntityDied, Frame: 1})
	if w.Events().Len() != 2 {
		t.Fatalf("len = %d", w.Events().Len())
	}
	evts := w.Events().Drain()
	if len(evts) != 2 || evts[0].Type != EventPlayerFired || evts[1].Type != EventEntityDied {
		t.Fatalf("drain = %+v", evts)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("queue not cleared")
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(*World) { *s.log = append(*s.log, s.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"a", &log}, nil, recordSystem{"b", &log})
	s.Add(recordSystem{"c", &log})
	s.Update(NewWorld())
	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("order = %v", log)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("systems = %d", len(s.Systems()))
	}
}
