package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Heading returns the angle in radians of the vector from -> to.
func Heading(from, to cp.Vector) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Polar returns a vector of length mag pointing along angle.
func Polar(angle, mag float64) cp.Vector {
	return cp.ForAngle(angle).Mult(mag)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
