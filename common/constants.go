package common

import "math"

const (
	BaseWidth  = 800
	BaseHeight = 600

	// OffscreenMargin is how far past the playfield an untimed projectile may
	// travel before it counts as expired.
	OffscreenMargin = 50.0

	// Isometric floor tile size; the ship's forward direction is one tile "up"
	// in world space, which projects to the top-right of the screen.
	TileWidth  = 64.0
	TileHeight = 32.0
)

// Playfield returns the default playfield rectangle.
func Playfield() Rect {
	return Rect{Width: BaseWidth, Height: BaseHeight}
}

// IsoForwardAngle is the screen-space angle of the isometric forward direction.
func IsoForwardAngle() float64 {
	return -math.Atan2(TileHeight, TileWidth)
}
