package component

import "github.com/jakecoffman/cp"

// Transform is an entity's world position and facing angle in radians.
type Transform struct {
	Pos   cp.Vector
	Angle float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is recomputed every frame by whichever system owns the entity's
// movement and integrated once by the movement system.
type Velocity struct {
	V cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
