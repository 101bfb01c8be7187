package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// arriveDistSq is the squared distance under which the follower counts as
// standing on its target waypoint.
const arriveDistSq = 1e-4

// Path moves a point along an ordered list of waypoints at constant speed.
// A looping path wraps back to the first waypoint forever; a non-looping path
// stops on the last one and reports Finished.
type Path struct {
	waypoints []cp.Vector
	target    int
	position  cp.Vector
	speed     float64
	loop      bool
	finished  bool
}

// NewPath creates a path positioned on the first waypoint and heading for the second.
func NewPath(waypoints []cp.Vector, speed float64, loop bool) *Path {
	p := &Path{speed: speed, loop: loop}
	p.SetWaypoints(waypoints)
	return p
}

// SetWaypoints replaces the route and resets progress.
func (p *Path) SetWaypoints(waypoints []cp.Vector) {
	if p == nil {
		return
	}
	p.waypoints = append(p.waypoints[:0:0], waypoints...)
	p.Reset()
}

// Reset puts the follower back on the first waypoint.
func (p *Path) Reset() {
	if p == nil {
		return
	}
	p.finished = len(p.waypoints) == 0
	if p.finished {
		p.target = 0
		return
	}
	p.position = p.waypoints[0]
	p.target = 1 % len(p.waypoints)
}

// SetStart places the follower at pos without snapping to a waypoint. The
// next target becomes the first waypoint. With no waypoints, pos becomes the
// permanent position.
func (p *Path) SetStart(pos cp.Vector) {
	if p == nil {
		return
	}
	p.position = pos
	if len(p.waypoints) == 0 {
		p.finished = true
		return
	}
	p.target = 0
	p.finished = false
}

// Update advances the follower by speed*dt toward the current waypoint. A
// single tick completes at most one waypoint; distance left over after
// reaching it is dropped.
func (p *Path) Update(dt float64) {
	if p == nil || p.finished || len(p.waypoints) == 0 {
		return
	}

	target := p.waypoints[p.target]
	toTarget := target.Sub(p.position)
	distSq := toTarget.LengthSq()
	if distSq < arriveDistSq {
		p.position = target
		p.advance()
		return
	}

	dist := math.Sqrt(distSq)
	step := p.speed * dt
	if step >= dist {
		p.position = target
		p.advance()
		return
	}
	p.position = p.position.Add(toTarget.Mult(step / dist))
}

func (p *Path) advance() {
	p.target++
	if p.target < len(p.waypoints) {
		return
	}
	if p.loop {
		p.target = 0
		return
	}
	p.target = len(p.waypoints) - 1
	p.finished = true
}

// Position returns the follower's current position.
func (p *Path) Position() cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	return p.position
}

// Finished reports whether the follower has stopped for good.
func (p *Path) Finished() bool {
	return p == nil || p.finished
}

// TargetIndex returns the index of the waypoint currently being approached.
func (p *Path) TargetIndex() int {
	if p == nil {
		return 0
	}
	return p.target
}

// Waypoints returns a copy of the route.
func (p *Path) Waypoints() []cp.Vector {
	if p == nil {
		return nil
	}
	return append([]cp.Vector(nil), p.waypoints...)
}
