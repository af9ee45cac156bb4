package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world units, Y up.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround builds a rect of the given size centered on c.
func RectAround(c cp.Vector, width, height float64) Rect {
	return Rect{X: c.X - width/2, Y: c.Y - height/2, Width: width, Height: height}
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Min() cp.Vector { return cp.Vector{X: r.X, Y: r.Y} }
func (r Rect) Max() cp.Vector { return cp.Vector{X: r.X + r.Width, Y: r.Y + r.Height} }

func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
