package component

import (
	"github.com/jakecoffman/cp"
	core "github.com/milk9111/downtoearth/component"
)

// Wander is the free-roam heuristic: every Interval seconds the entity picks
// a new heading toward Goal, deviated by a random angle up to Spread radians.
type Wander struct {
	Speed    float64
	Interval float64
	Spread   float64
	Goal     cp.Vector
	Timer    float64
}

var WanderComponent = NewComponent[Wander]()

// PathFollow attaches a waypoint route. While the path is unfinished it owns
// the entity's position outright.
type PathFollow struct {
	Path *core.Path
}

// Active reports whether the path still controls movement.
func (p *PathFollow) Active() bool {
	return p != nil && p.Path != nil && !p.Path.Finished()
}

var PathFollowComponent = NewComponent[PathFollow]()
