package component

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"pgregory.net/rapid"
)

const angleTol = 1e-9

func TestDirectAtTargetFiresOnceAtRate(t *testing.T) {
	s := NewDirectAtTarget(1.0, 200, 0, true)
	self := cp.Vector{X: 100, Y: 100}
	target := cp.Vector{X: 200, Y: 200}

	var out []*Projectile
	out = s.Update(0.5, self, target, out)
	if len(out) != 0 {
		t.Fatalf("fired early: %d projectiles", len(out))
	}
	out = s.Update(0.5, self, target, out)
	if len(out) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(out))
	}
	if got, want := out[0].Angle(), math.Pi/4; math.Abs(got-want) > angleTol {
		t.Fatalf("angle = %v, want %v", got, want)
	}
	if out[0].Owner() != OwnerEnemy {
		t.Fatalf("owner = %v, want enemy", out[0].Owner())
	}
	if out[0].Timed() {
		t.Fatalf("direct shots should use off-screen expiry")
	}
	if s.Direct.Timer() != 0 {
		t.Fatalf("timer not reset: %v", s.Direct.Timer())
	}
}

func TestDirectAtTargetRadius(t *testing.T) {
	cases := []struct {
		name   string
		always bool
		target cp.Vector
		want   int
	}{
		{"inside_radius", false, cp.Vector{X: 50}, 1},
		{"on_radius", false, cp.Vector{X: 100}, 1},
		{"outside_radius", false, cp.Vector{X: 150}, 0},
		{"outside_radius_always", true, cp.Vector{X: 150}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewDirectAtTarget(1, 100, 100, c.always)
			out := s.Update(1, cp.Vector{}, c.target, nil)
			if len(out) != c.want {
				t.Fatalf("got %d projectiles, want %d", len(out), c.want)
			}
		})
	}
}

func TestDirectAtTargetTimerRunsWhileSuppressed(t *testing.T) {
	s := NewDirectAtTarget(1, 100, 10, false)
	far := cp.Vector{X: 500}
	near := cp.Vector{X: 5}
	for i := 0; i < 4; i++ {
		if out := s.Update(0.5, cp.Vector{}, far, nil); len(out) != 0 {
			t.Fatalf("fired while out of range")
		}
	}
	if s.Direct.Timer() != 2 {
		t.Fatalf("timer = %v, want 2", s.Direct.Timer())
	}
	if out := s.Update(0, cp.Vector{}, near, nil); len(out) != 1 {
		t.Fatalf("should fire as soon as target is in range")
	}
}

func TestRadialBurstSpacing(t *testing.T) {
	s := NewRadialBurst(8, 2, 100)
	if out := s.Update(1.5, cp.Vector{}, cp.Vector{}, nil); len(out) != 0 {
		t.Fatalf("fired before interval")
	}
	out := s.Update(0.5, cp.Vector{X: 10, Y: 20}, cp.Vector{}, nil)
	if len(out) != 8 {
		t.Fatalf("expected 8 projectiles, got %d", len(out))
	}
	step := 2 * math.Pi / 8
	for i, p := range out {
		if math.Abs(p.Angle()-step*float64(i)) > angleTol {
			t.Fatalf("projectile %d angle = %v, want %v", i, p.Angle(), step*float64(i))
		}
		if p.Position() != (cp.Vector{X: 10, Y: 20}) {
			t.Fatalf("projectile %d spawned at %v", i, p.Position())
		}
	}
	if s.Radial.Timer() != 0 {
		t.Fatalf("timer not reset")
	}
}

func TestRadialBurstIgnoresTargetProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 32).Draw(t, "count")
		tx := rapid.Float64Range(-1000, 1000).Draw(t, "tx")
		ty := rapid.Float64Range(-1000, 1000).Draw(t, "ty")
		s := NewRadialBurst(count, 1, 50)
		out := s.Update(1, cp.Vector{}, cp.Vector{X: tx, Y: ty}, nil)
		if len(out) != count {
			t.Fatalf("got %d projectiles, want %d", len(out), count)
		}
		for i := 1; i < len(out); i++ {
			gap := out[i].Angle() - out[i-1].Angle()
			if math.Abs(gap-2*math.Pi/float64(count)) > angleTol {
				t.Fatalf("uneven gap %v between %d and %d", gap, i-1, i)
			}
		}
	})
}

func TestLingeringBeamCycle(t *testing.T) {
	s := NewLingeringBeam(3, 1, 2, 0)
	self := cp.Vector{X: 0, Y: 0}
	target := cp.Vector{X: 0, Y: 100}

	var out []*Projectile
	out = s.Update(2.5, self, target, out)
	if len(out) != 0 || s.Beam.Phase() != BeamIdle {
		t.Fatalf("left idle early")
	}

	out = s.Update(0.5, self, target, out)
	if len(out) != 1 {
		t.Fatalf("expected preview, got %d projectiles", len(out))
	}
	preview := out[0]
	if !preview.IsPreview() || !preview.IsBeam() || preview.Lifetime() != 1 {
		t.Fatalf("bad preview: preview=%v beam=%v lifetime=%v", preview.IsPreview(), preview.IsBeam(), preview.Lifetime())
	}
	if s.Beam.Phase() != BeamWarning {
		t.Fatalf("phase = %v, want warning", s.Beam.Phase())
	}

	// the target moving during the warning must not re-aim the beam
	moved := cp.Vector{X: 100, Y: 0}
	out = s.Update(0.5, self, moved, out)
	if len(out) != 1 {
		t.Fatalf("spawned during warning")
	}
	out = s.Update(0.5, self, moved, out)
	if len(out) != 2 {
		t.Fatalf("expected real beam, got %d projectiles", len(out))
	}
	beam := out[1]
	if beam.IsPreview() || !beam.IsBeam() || beam.Lifetime() != 2 {
		t.Fatalf("bad beam: preview=%v beam=%v lifetime=%v", beam.IsPreview(), beam.IsBeam(), beam.Lifetime())
	}
	if math.Abs(beam.Angle()-preview.Angle()) > angleTol || math.Abs(beam.Angle()-math.Pi/2) > angleTol {
		t.Fatalf("beam angle %v, preview angle %v", beam.Angle(), preview.Angle())
	}
	if s.Beam.Phase() != BeamFiring {
		t.Fatalf("phase = %v, want firing", s.Beam.Phase())
	}

	out = s.Update(2, self, target, out)
	if len(out) != 2 || s.Beam.Phase() != BeamIdle {
		t.Fatalf("should return to idle without emitting, phase=%v n=%d", s.Beam.Phase(), len(out))
	}
	out = s.Update(2.5, self, target, out)
	if len(out) != 2 {
		t.Fatalf("emitted before interval elapsed again")
	}
	out = s.Update(0.5, self, target, out)
	if len(out) != 3 || !out[2].IsPreview() {
		t.Fatalf("second cycle did not start")
	}
}

func TestFiringStrategiesAreIndependent(t *testing.T) {
	proto := NewDirectAtTarget(1, 100, 0, true)
	a, b := proto, proto
	a.Update(0.5, cp.Vector{}, cp.Vector{X: 1}, nil)
	if b.Direct.Timer() != 0 {
		t.Fatalf("copies share timer state")
	}
	if out := a.Update(0.5, cp.Vector{}, cp.Vector{X: 1}, nil); len(out) != 1 {
		t.Fatalf("a should fire")
	}
	if out := b.Update(0.5, cp.Vector{}, cp.Vector{X: 1}, nil); len(out) != 0 {
		t.Fatalf("b fired with a's timer")
	}
}

func TestFiringNoneAndNil(t *testing.T) {
	var s FiringStrategy
	if out := s.Update(10, cp.Vector{}, cp.Vector{}, nil); len(out) != 0 {
		t.Fatalf("zero strategy fired")
	}
	var np *FiringStrategy
	if out := np.Update(10, cp.Vector{}, cp.Vector{}, nil); len(out) != 0 {
		t.Fatalf("nil strategy fired")
	}
}
