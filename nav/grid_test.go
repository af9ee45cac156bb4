package nav

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid() *Grid {
	// 10x10 cells of 1 unit, centered on the origin.
	return NewGrid(common.RectAround(cp.Vector{}, 10, 10), 1)
}

func TestCellMapping(t *testing.T) {
	g := newTestGrid()
	cases := []struct {
		name string
		p    cp.Vector
		want Cell
	}{
		{"origin", cp.Vector{}, Cell{5, 5}},
		{"lower_left", cp.Vector{X: -5, Y: -5}, Cell{0, 0}},
		{"clamped", cp.Vector{X: 50, Y: -50}, Cell{9, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, g.CellAt(c.p))
		})
	}
	assert.Equal(t, cp.Vector{X: 0.5, Y: 0.5}, g.Center(Cell{5, 5}))
}

func TestFindPathAroundWall(t *testing.T) {
	g := newTestGrid()
	// Vertical wall at x=5 from y=0..7 leaves a gap at the top.
	for y := 0; y < 8; y++ {
		g.SetBlocked(Cell{5, y}, true)
	}
	path := g.FindPath(Cell{2, 2}, Cell{8, 2}, 0)
	require.NotEmpty(t, path)
	assert.Equal(t, Cell{2, 2}, path[0])
	assert.Equal(t, Cell{8, 2}, path[len(path)-1])
	for _, c := range path {
		assert.False(t, g.Blocked(c), "path crosses %v", c)
	}
	for i := 1; i < len(path); i++ {
		dx := abs(path[i].X - path[i-1].X)
		dy := abs(path[i].Y - path[i-1].Y)
		assert.LessOrEqual(t, dx, 1)
		assert.LessOrEqual(t, dy, 1)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := newTestGrid()
	for y := 0; y < 10; y++ {
		g.SetBlocked(Cell{5, y}, true)
	}
	assert.Nil(t, g.FindPath(Cell{1, 1}, Cell{8, 8}, 0))
	assert.Nil(t, g.FindPath(Cell{1, 1}, Cell{5, 3}, 0), "blocked goal")
}

func TestPathToEndsAtTarget(t *testing.T) {
	g := newTestGrid()
	to := cp.Vector{X: 3.2, Y: -1.7}
	pts, ok := g.PathTo(cp.Vector{X: -3, Y: 2}, to, 0)
	require.True(t, ok)
	assert.Equal(t, to, pts[len(pts)-1])

	pts, ok = g.PathTo(to, to, 0)
	require.True(t, ok)
	assert.Equal(t, []cp.Vector{to}, pts)
}

func TestSampleNearestWalkable(t *testing.T) {
	g := newTestGrid()
	g.BlockRect(common.Rect{X: -1, Y: -1, Width: 2, Height: 2})

	p, ok := g.SampleNearestWalkable(cp.Vector{X: 3, Y: 3}, 1)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 3, Y: 3}, p, "walkable points are kept")

	p, ok = g.SampleNearestWalkable(cp.Vector{X: -0.5, Y: 0.5}, 2)
	require.True(t, ok)
	assert.True(t, g.Walkable(p))
	assert.InDelta(t, 1, p.Distance(cp.Vector{X: -0.5, Y: 0.5}), 1e-9)

	_, ok = g.SampleNearestWalkable(cp.Vector{X: 0, Y: 0}, 0.4)
	assert.False(t, ok)

	_, ok = g.SampleNearestWalkable(cp.Vector{X: 40, Y: 0}, 2)
	assert.False(t, ok, "far outside the grid")
}
