package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/common"
	core "github.com/milk9111/downtoearth/component"
	"github.com/milk9111/downtoearth/ecs"
	"github.com/milk9111/downtoearth/ecs/component"
)

func newArenaWorld(t *testing.T) (*ecs.World, *ecs.Arena) {
	t.Helper()
	w := ecs.NewWorld()
	a := ecs.NewArena(common.Playfield(), 1)
	w.SetArena(a)
	return w, a
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, h.Kind(), v); err != nil {
		t.Fatalf("add %s: %v", h.Kind(), err)
	}
}

func addPlayer(t *testing.T, w *ecs.World, pos cp.Vector, hp int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent, &component.PlayerTag{})
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{Pos: pos})
	mustAdd(t, w, e, component.VelocityComponent, &component.Velocity{})
	mustAdd(t, w, e, component.InputComponent, &component.Intent{})
	mustAdd(t, w, e, component.ShipComponent, &component.Ship{Speed: 300, Radius: 15})
	mustAdd(t, w, e, component.GunComponent, &component.Gun{FireRate: 0.15, ProjectileSpeed: 500, Offset: 30, SinceLastShot: 0.15})
	mustAdd(t, w, e, component.HealthComponent, core.NewHealth(hp))
	mustAdd(t, w, e, component.HurtboxComponent, &component.Hurtbox{Width: 30, Height: 30})
	return e
}

func addEnemy(t *testing.T, w *ecs.World, pos cp.Vector, hp int, s core.FiringStrategy) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyTagComponent, &component.EnemyTag{Archetype: "test"})
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{Pos: pos})
	mustAdd(t, w, e, component.VelocityComponent, &component.Velocity{})
	mustAdd(t, w, e, component.WanderComponent, &component.Wander{Speed: 80, Interval: 1000})
	mustAdd(t, w, e, component.ShooterComponent, &component.Shooter{Strategy: s})
	mustAdd(t, w, e, component.HealthComponent, core.NewHealth(hp))
	mustAdd(t, w, e, component.HurtboxComponent, &component.Hurtbox{Width: 32, Height: 32})
	return e
}

func eventsOf(evts []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range evts {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestInputSystem(t *testing.T) {
	cases := []struct {
		name      string
		intent    component.Intent
		mode      component.ShipMode
		wantVel   cp.Vector
		wantAngle float64
		wantMode  component.ShipMode
	}{
		{"idle_air_aims_iso_forward", component.Intent{}, component.ModeAir, cp.Vector{}, common.IsoForwardAngle(), component.ModeAir},
		{"right", component.Intent{Right: true}, component.ModeAir, cp.Vector{X: 300}, common.IsoForwardAngle(), component.ModeAir},
		{"diagonal_normalised", component.Intent{Right: true, Down: true}, component.ModeAir,
			cp.Vector{X: 300 / math.Sqrt2, Y: 300 / math.Sqrt2}, common.IsoForwardAngle(), component.ModeAir},
		{"ground_faces_aim", component.Intent{AimX: 0, AimY: 1}, component.ModeGround, cp.Vector{}, math.Pi / 2, component.ModeGround},
		{"explicit_aim_wins", component.Intent{HasAim: true, AimAngle: 1}, component.ModeGround, cp.Vector{}, 1, component.ModeGround},
		{"toggle_mode", component.Intent{ToggleMode: true, AimX: -1}, component.ModeAir, cp.Vector{}, math.Pi, component.ModeGround},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newArenaWorld(t)
			e := addPlayer(t, w, cp.Vector{X: 400, Y: 300}, 20)
			ship, _ := ecs.Get(w, e, component.ShipComponent.Kind())
			ship.Mode = c.mode
			in, _ := ecs.Get(w, e, component.InputComponent.Kind())
			*in = c.intent

			NewInputSystem().Update(w)

			vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			if vel.V.Sub(c.wantVel).Length() > 1e-9 {
				t.Fatalf("velocity = %v, want %v", vel.V, c.wantVel)
			}
			if ship.Mode != c.wantMode {
				t.Fatalf("mode = %v, want %v", ship.Mode, c.wantMode)
			}
			if math.Abs(math.Remainder(ship.AimAngle-c.wantAngle, 2*math.Pi)) > 1e-9 {
				t.Fatalf("aim = %v, want %v", ship.AimAngle, c.wantAngle)
			}
			if in.ToggleMode {
				t.Fatalf("toggle not consumed")
			}
		})
	}
}

func TestMovementFollowsPathThenWanders(t *testing.T) {
	w, a := newArenaWorld(t)
	e := addEnemy(t, w, cp.Vector{X: 100, Y: 100}, 1, core.FiringStrategy{})
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	vel.V = cp.Vector{X: 999}
	path := core.NewPath([]cp.Vector{{X: 110, Y: 100}, {X: 120, Y: 100}}, 10, false)
	path.SetStart(cp.Vector{X: 100, Y: 100})
	mustAdd(t, w, e, component.PathFollowComponent, &component.PathFollow{Path: path})

	m := NewMovementSystem()
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	for i := 0; i < 2; i++ {
		a.Advance(1)
		m.Update(w)
	}
	if tr.Pos != (cp.Vector{X: 120, Y: 100}) || !path.Finished() {
		t.Fatalf("pos = %v finished = %v", tr.Pos, path.Finished())
	}
	if vel.V != (cp.Vector{}) {
		t.Fatalf("path-driven entity kept velocity %v", vel.V)
	}

	// finished path hands back to free roam
	vel.V = cp.Vector{X: 5}
	a.Advance(1)
	m.Update(w)
	if tr.Pos != (cp.Vector{X: 125, Y: 100}) {
		t.Fatalf("free roam did not resume: %v", tr.Pos)
	}
}

func TestMovementWanderHeadsForGoal(t *testing.T) {
	w, a := newArenaWorld(t)
	e := addEnemy(t, w, cp.Vector{X: 100, Y: 100}, 1, core.FiringStrategy{})
	wd, _ := ecs.Get(w, e, component.WanderComponent.Kind())
	wd.Interval = 1
	wd.Goal = cp.Vector{X: 100, Y: 500}

	a.Advance(1)
	NewMovementSystem().Update(w)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if math.Abs(vel.V.X) > 1e-9 || math.Abs(vel.V.Y-80) > 1e-9 {
		t.Fatalf("velocity = %v, want (0, 80)", vel.V)
	}
	if wd.Timer != 0 {
		t.Fatalf("timer not reset")
	}
}

func TestMovementClampsShip(t *testing.T) {
	w, a := newArenaWorld(t)
	e := addPlayer(t, w, cp.Vector{X: 790, Y: 5}, 20)
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	vel.V = cp.Vector{X: 300, Y: -300}
	a.Advance(1)
	NewMovementSystem().Update(w)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.Pos != (cp.Vector{X: 785, Y: 15}) {
		t.Fatalf("pos = %v, want (785, 15)", tr.Pos)
	}
}

func TestFiringPlayerGunCooldown(t *testing.T) {
	w, a := newArenaWorld(t)
	e := addPlayer(t, w, cp.Vector{X: 100, Y: 100}, 20)
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.Fire = true

	f := NewFiringSystem(nil)
	fired := 0
	for i := 0; i < 4; i++ {
		a.Advance(0.1)
		f.Update(w)
		fired = len(a.Staged())
	}
	// ready at start, then every 0.2s at dt 0.1 with rate 0.15
	if fired != 2 {
		t.Fatalf("staged %d shots, want 2", fired)
	}
	shot := a.Staged()[0]
	if shot.Position() != (cp.Vector{X: 130, Y: 100}) || shot.Owner() != core.OwnerPlayer {
		t.Fatalf("shot at %v owner %v", shot.Position(), shot.Owner())
	}
	if len(a.Projectiles()) != 0 {
		t.Fatalf("firing appended to the live collection")
	}
	if got := len(eventsOf(w.Events().Drain(), ecs.EventPlayerFired)); got != 2 {
		t.Fatalf("player fired events = %d", got)
	}
}

func TestFiringDeadPlayerHoldsFire(t *testing.T) {
	w, a := newArenaWorld(t)
	e := addPlayer(t, w, cp.Vector{X: 100, Y: 100}, 1)
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.Fire = true
	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	h.TakeDamage(1)

	a.Advance(1)
	NewFiringSystem(nil).Update(w)
	if len(a.Staged()) != 0 {
		t.Fatalf("dead player fired")
	}
}

func TestFiringEnemyAimsAtPlayer(t *testing.T) {
	w, a := newArenaWorld(t)
	addPlayer(t, w, cp.Vector{X: 100, Y: 300}, 20)
	addEnemy(t, w, cp.Vector{X: 100, Y: 100}, 1, core.NewDirectAtTarget(1, 200, 0, true))

	a.Advance(1)
	NewFiringSystem(nil).Update(w)
	staged := a.Staged()
	if len(staged) != 1 {
		t.Fatalf("staged %d, want 1", len(staged))
	}
	if math.Abs(staged[0].Angle()-math.Pi/2) > 1e-9 || staged[0].Owner() != core.OwnerEnemy {
		t.Fatalf("angle %v owner %v", staged[0].Angle(), staged[0].Owner())
	}
	evts := eventsOf(w.Events().Drain(), ecs.EventEnemyFired)
	if len(evts) != 1 || evts[0].Count != 1 {
		t.Fatalf("enemy fired events = %+v", evts)
	}
}

func TestFiringBeamEvents(t *testing.T) {
	w, a := newArenaWorld(t)
	addPlayer(t, w, cp.Vector{X: 400, Y: 300}, 20)
	addEnemy(t, w, cp.Vector{X: 100, Y: 300}, 1, core.NewLingeringBeam(1, 1, 1, 0))

	f := NewFiringSystem(nil)
	var types []ecs.EventType
	for i := 0; i < 3; i++ {
		a.Advance(1)
		f.Update(w)
		for _, e := range w.Events().Drain() {
			types = append(types, e.Type)
		}
	}
	if len(types) != 2 || types[0] != ecs.EventBeamWarning || types[1] != ecs.EventBeamFired {
		t.Fatalf("events = %v", types)
	}
}

func TestPipelineSpawnsAppearAtSpawnPoint(t *testing.T) {
	w, a := newArenaWorld(t)
	addEnemy(t, w, cp.Vector{X: 400, Y: 300}, 1, core.NewRadialBurst(4, 0.1, 100))
	p := NewPipeline(nil)

	a.Advance(0.1)
	p.Update(w)
	live := a.Projectiles()
	if len(live) != 4 {
		t.Fatalf("live = %d, want 4", len(live))
	}
	for _, proj := range live {
		if proj.Position() != (cp.Vector{X: 400, Y: 300}) {
			t.Fatalf("spawned projectile integrated in its spawn frame: %v", proj.Position())
		}
	}

	a.Advance(0.1)
	p.Update(w)
	if got := live[0].Position(); got.Sub(cp.Vector{X: 410, Y: 300}).Length() > 1e-9 {
		t.Fatalf("first shot at %v after one step, want (410, 300)", got)
	}
	if len(a.Projectiles()) != 8 {
		t.Fatalf("live = %d, want 8", len(a.Projectiles()))
	}
}

func TestPipelineKillAndCleanup(t *testing.T) {
	w, a := newArenaWorld(t)
	player := addPlayer(t, w, cp.Vector{X: 100, Y: 300}, 20)
	enemy := addEnemy(t, w, cp.Vector{X: 200, Y: 300}, 1, core.FiringStrategy{})
	shot := core.NewProjectile(cp.Vector{X: 200, Y: 300}, 0, 0, core.OwnerPlayer)
	a.Stage(shot)
	a.MergeStaged()

	p := NewPipeline(nil)
	a.Advance(1.0 / 60)
	p.Update(w)

	if ecs.IsAlive(w, enemy) {
		t.Fatalf("dead enemy not removed")
	}
	if len(a.Projectiles()) != 0 {
		t.Fatalf("spent projectile not removed")
	}
	evts := w.Events().Drain()
	if hits := eventsOf(evts, ecs.EventProjectileHit); len(hits) != 1 || hits[0].Owner != core.OwnerPlayer {
		t.Fatalf("hit events = %+v", hits)
	}
	died := eventsOf(evts, ecs.EventEntityDied)
	if len(died) != 1 || died[0].Entity != enemy || died[0].Pos != (cp.Vector{X: 200, Y: 300}) {
		t.Fatalf("died events = %+v", died)
	}
	if !ecs.IsAlive(w, player) {
		t.Fatalf("player removed")
	}
}

func TestPipelineContactDamageAndPlayerDeath(t *testing.T) {
	w, a := newArenaWorld(t)
	player := addPlayer(t, w, cp.Vector{X: 300, Y: 300}, 2)
	enemy := addEnemy(t, w, cp.Vector{X: 305, Y: 300}, 10, core.FiringStrategy{})
	p := NewPipeline(nil)

	var all []ecs.Event
	for i := 0; i < 4; i++ {
		a.Advance(1.0 / 60)
		p.Update(w)
		all = append(all, w.Events().Drain()...)
	}

	if got := len(eventsOf(all, ecs.EventContactDamage)); got != 2 {
		t.Fatalf("contact events = %d, want 2", got)
	}
	if got := eventsOf(all, ecs.EventPlayerDied); len(got) != 1 || got[0].Entity != player {
		t.Fatalf("player died events = %+v", got)
	}
	h, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
	if h.CurrentHP() != 8 {
		t.Fatalf("enemy hp = %d, want 8", h.CurrentHP())
	}
	if !ecs.IsAlive(w, player) {
		t.Fatalf("dead player entity should stay for game over")
	}
}

func TestWhiteFlashOnHit(t *testing.T) {
	w, a := newArenaWorld(t)
	enemy := addEnemy(t, w, cp.Vector{X: 200, Y: 300}, 5, core.FiringStrategy{})
	a.Stage(core.NewProjectile(cp.Vector{X: 200, Y: 300}, 0, 0, core.OwnerPlayer))
	a.MergeStaged()

	a.Advance(0.01)
	NewCollisionSystem().Update(w)
	wf, ok := ecs.Get(w, enemy, component.WhiteFlashComponent.Kind())
	if !ok || !wf.On {
		t.Fatalf("no flash after hit")
	}

	s := NewWhiteFlashSystem()
	for i := 0; i < 40; i++ {
		a.Advance(0.01)
		s.Update(w)
	}
	if ecs.Has(w, enemy, component.WhiteFlashComponent.Kind()) {
		t.Fatalf("flash did not expire")
	}
}
