package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world space. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns a w*h rectangle centered on c.
func RectAround(c cp.Vector, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// RectSpanning returns the smallest rectangle containing a and b, grown by pad on every side.
func RectSpanning(a, b cp.Vector, pad float64) Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of r.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether r and other overlap. Edges are half-open, so
// rectangles that only touch do not intersect, and zero-sized rectangles never do.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Expand grows r by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ClampPoint pulls p inside r shrunk by inset.
func (r Rect) ClampPoint(p cp.Vector, inset float64) cp.Vector {
	return cp.Vector{
		X: Clamp(p.X, r.X+inset, r.Right()-inset),
		Y: Clamp(p.Y, r.Y+inset, r.Bottom()-inset),
	}
}
