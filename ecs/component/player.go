package component

import "math"

// ShipMode selects how the ship aims.
type ShipMode int

const (
	ModeAir ShipMode = iota
	ModeGround
)

func (m ShipMode) String() string {
	if m == ModeGround {
		return "ground"
	}
	return "air"
}

// Facing is one of eight compass directions, 0 = east, increasing clockwise
// in screen space (y down).
type Facing int

const (
	FacingE Facing = iota
	FacingSE
	FacingS
	FacingSW
	FacingW
	FacingNW
	FacingN
	FacingNE
)

// Angle returns the facing's screen-space angle in radians.
func (f Facing) Angle() float64 {
	return float64(((f%8)+8)%8) * math.Pi / 4
}

// FacingFrom converts an 8-way stick direction to a Facing. ok is false for
// the neutral (0, 0) direction.
func FacingFrom(x, y int) (Facing, bool) {
	if x == 0 && y == 0 {
		return 0, false
	}
	a := math.Atan2(float64(y), float64(x))
	step := int(math.Round(a / (math.Pi / 4)))
	return Facing(((step % 8) + 8) % 8), true
}

// Ship is the player craft's movement and aiming state.
type Ship struct {
	Speed    float64
	Radius   float64
	Mode     ShipMode
	Facing   Facing
	AimAngle float64
}

var ShipComponent = NewComponent[Ship]()
