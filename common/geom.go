package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// DirFromDeg returns the unit vector at deg degrees counter-clockwise from +X.
func DirFromDeg(deg float64) cp.Vector {
	return cp.ForAngle(deg * Deg2Rad)
}

// RotateDeg rotates v by deg degrees counter-clockwise.
func RotateDeg(v cp.Vector, deg float64) cp.Vector {
	rad := deg * Deg2Rad
	sin, cos := math.Sincos(rad)
	return cp.Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Direction returns the unit vector from a to b, or the zero vector when
// the points coincide.
func Direction(from, to cp.Vector) cp.Vector {
	d := to.Sub(from)
	if d.LengthSq() == 0 {
		return cp.Vector{}
	}
	return d.Normalize()
}

// BearingDeg returns the angle of v in degrees.
func BearingDeg(v cp.Vector) float64 {
	return math.Atan2(v.Y, v.X) * Rad2Deg
}

// RandomOnUnitCircle returns a uniformly distributed unit vector.
func RandomOnUnitCircle(rng RNG) cp.Vector {
	return cp.ForAngle(rng.Float64() * 2 * math.Pi)
}

// RandomInRadius returns a point uniformly distributed in the disc of the
// given radius around the origin.
func RandomInRadius(rng RNG, radius float64) cp.Vector {
	if radius <= 0 {
		return cp.Vector{}
	}
	r := radius * math.Sqrt(rng.Float64())
	return RandomOnUnitCircle(rng).Mult(r)
}
