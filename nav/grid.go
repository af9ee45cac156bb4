package nav

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
)

// Cell is a grid coordinate.
type Cell struct {
	X int
	Y int
}

// Grid is a walkability grid laid over world space. Cell (0,0) has its
// lower-left corner at Origin.
type Grid struct {
	Origin   cp.Vector
	CellSize float64
	Width    int
	Height   int

	blocked []bool
}

// NewGrid covers bounds with square cells of the given size.
func NewGrid(bounds common.Rect, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	w := int(math.Ceil(bounds.Width / cellSize))
	h := int(math.Ceil(bounds.Height / cellSize))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{
		Origin:   bounds.Min(),
		CellSize: cellSize,
		Width:    w,
		Height:   h,
		blocked:  make([]bool, w*h),
	}
}

// Bounds is the world rect the grid covers.
func (g *Grid) Bounds() common.Rect {
	return common.Rect{
		X:      g.Origin.X,
		Y:      g.Origin.Y,
		Width:  float64(g.Width) * g.CellSize,
		Height: float64(g.Height) * g.CellSize,
	}
}

func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// CellAt maps a world point to its cell, clamped to the grid.
func (g *Grid) CellAt(p cp.Vector) Cell {
	x := int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	y := int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	return Cell{X: clampInt(x, 0, g.Width-1), Y: clampInt(y, 0, g.Height-1)}
}

// Center is the world position of a cell's center.
func (g *Grid) Center(c Cell) cp.Vector {
	half := g.CellSize * 0.5
	return cp.Vector{
		X: g.Origin.X + float64(c.X)*g.CellSize + half,
		Y: g.Origin.Y + float64(c.Y)*g.CellSize + half,
	}
}

func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Y*g.Width+c.X]
}

func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	g.blocked[c.Y*g.Width+c.X] = blocked
}

// BlockRect marks every cell overlapping r as blocked.
func (g *Grid) BlockRect(r common.Rect) {
	lo := g.CellAt(r.Min())
	hi := g.CellAt(cp.Vector{X: r.X + r.Width - 0.001, Y: r.Y + r.Height - 0.001})
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			g.blocked[y*g.Width+x] = true
		}
	}
}

// Walkable reports whether p lies inside the grid on an open cell.
func (g *Grid) Walkable(p cp.Vector) bool {
	if !g.Bounds().Contains(p) {
		return false
	}
	return !g.Blocked(g.CellAt(p))
}

// SampleNearestWalkable finds the walkable point closest to p within
// maxDistance. A walkable p is returned unchanged; otherwise the nearest
// open cell center is used.
func (g *Grid) SampleNearestWalkable(p cp.Vector, maxDistance float64) (cp.Vector, bool) {
	if g.Walkable(p) {
		return p, true
	}
	if maxDistance <= 0 {
		return cp.Vector{}, false
	}

	origin := g.CellAt(p)
	reach := int(math.Ceil(maxDistance/g.CellSize)) + 1
	best := cp.Vector{}
	bestDist := math.Inf(1)
	found := false
	for ring := 0; ring <= reach; ring++ {
		for y := origin.Y - ring; y <= origin.Y+ring; y++ {
			for x := origin.X - ring; x <= origin.X+ring; x++ {
				if abs(x-origin.X) != ring && abs(y-origin.Y) != ring {
					continue
				}
				c := Cell{X: x, Y: y}
				if g.Blocked(c) {
					continue
				}
				center := g.Center(c)
				d := center.Distance(p)
				if d <= maxDistance && d < bestDist {
					best, bestDist, found = center, d, true
				}
			}
		}
		// Anything in a later ring is at least a full ring further away.
		if found && bestDist <= float64(ring)*g.CellSize {
			break
		}
	}
	return best, found
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
