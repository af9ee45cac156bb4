package nav

import (
	"container/heap"
	"math"

	"github.com/jakecoffman/cp"
)

// DefaultMaxNodes bounds a single search.
const DefaultMaxNodes = 4096

// FindPath runs an 8-way A* from start to goal. Diagonal steps may not cut
// blocked corners. It returns nil when the goal is blocked or unreachable
// within maxNodes expansions.
func (g *Grid) FindPath(start, goal Cell, maxNodes int) []Cell {
	if !g.InBounds(start) || !g.InBounds(goal) || g.Blocked(goal) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	n := g.Width * g.Height
	cameFrom := make([]int, n)
	gScore := make([]float64, n)
	for i := range cameFrom {
		cameFrom[i] = -1
		gScore[i] = math.Inf(1)
	}
	startIdx := g.index(start)
	goalIdx := g.index(goal)
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Push(open, &openItem{cell: start, f: octile(start, goal)})

	expanded := 0
	for open.Len() > 0 && expanded < maxNodes {
		cur := heap.Pop(open).(*openItem)
		curIdx := g.index(cur.cell)
		if cur.g > gScore[curIdx] {
			continue // stale entry
		}
		expanded++
		if curIdx == goalIdx {
			return g.reconstruct(cameFrom, startIdx, goalIdx)
		}
		for _, step := range steps {
			next := Cell{X: cur.cell.X + step.dx, Y: cur.cell.Y + step.dy}
			if g.Blocked(next) {
				continue
			}
			if step.dx != 0 && step.dy != 0 {
				if g.Blocked(Cell{X: cur.cell.X + step.dx, Y: cur.cell.Y}) ||
					g.Blocked(Cell{X: cur.cell.X, Y: cur.cell.Y + step.dy}) {
					continue
				}
			}
			idx := g.index(next)
			tentative := gScore[curIdx] + step.cost
			if tentative < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentative
				heap.Push(open, &openItem{cell: next, g: tentative, f: tentative + octile(next, goal)})
			}
		}
	}
	return nil
}

// PathTo plans between two world points and returns cell-center waypoints
// ending exactly at to. The start cell is dropped.
func (g *Grid) PathTo(from, to cp.Vector, maxNodes int) ([]cp.Vector, bool) {
	cells := g.FindPath(g.CellAt(from), g.CellAt(to), maxNodes)
	if cells == nil {
		return nil, false
	}
	points := make([]cp.Vector, 0, len(cells))
	for _, c := range cells[1:] {
		points = append(points, g.Center(c))
	}
	if len(points) > 0 {
		points[len(points)-1] = to
	} else {
		points = append(points, to)
	}
	return points, true
}

func (g *Grid) index(c Cell) int { return c.Y*g.Width + c.X }

func (g *Grid) reconstruct(cameFrom []int, startIdx, goalIdx int) []Cell {
	path := make([]Cell, 0, 32)
	for cur := goalIdx; cur != -1; cur = cameFrom[cur] {
		path = append(path, Cell{X: cur % g.Width, Y: cur / g.Width})
		if cur == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

var steps = []struct {
	dx, dy int
	cost   float64
}{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
}

func octile(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

type openItem struct {
	cell  Cell
	f     float64
	g     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
