package waves

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
)

// Edge of the camera rectangle a spawn is placed beyond.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnArea places spawns just outside the camera and away from the hero.
type SpawnArea struct {
	Camera          common.Rect
	Clearance       float64
	MinHeroDistance float64
}

// EdgePoint returns a point beyond edge e at fraction u along it. The world
// is Y-up, so the top edge is the rect's max Y.
func (s SpawnArea) EdgePoint(e Edge, u float64) cp.Vector {
	lo, hi := s.Camera.Min(), s.Camera.Max()
	switch e {
	case EdgeTop:
		return cp.Vector{X: common.Lerp(lo.X, hi.X, u), Y: hi.Y + s.Clearance}
	case EdgeRight:
		return cp.Vector{X: hi.X + s.Clearance, Y: common.Lerp(lo.Y, hi.Y, u)}
	case EdgeBottom:
		return cp.Vector{X: common.Lerp(lo.X, hi.X, u), Y: lo.Y - s.Clearance}
	default:
		return cp.Vector{X: lo.X - s.Clearance, Y: common.Lerp(lo.Y, hi.Y, u)}
	}
}

// Position picks a random edge and point along it, then pushes the result
// out to MinHeroDistance if it landed too close to the hero. The push can
// put the point back inside the camera.
func (s SpawnArea) Position(rng common.RNG, hero cp.Vector, hasHero bool) cp.Vector {
	edge := Edge(common.RangeInt(rng, 0, 4))
	pos := s.EdgePoint(edge, rng.Float64())
	if !hasHero {
		return pos
	}
	return PushFrom(pos, hero, s.MinHeroDistance)
}

// PushFrom moves p radially away from center until it is at least dist
// away. A point exactly on center is pushed along +X.
func PushFrom(p, center cp.Vector, dist float64) cp.Vector {
	if p.Distance(center) >= dist {
		return p
	}
	dir := common.Direction(center, p)
	if dir.LengthSq() == 0 {
		dir = cp.Vector{X: 1}
	}
	return center.Add(dir.Mult(dist))
}
