package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationWalksPath(t *testing.T) {
	h := newHarness()
	e := h.body(t, cp.Vector{}, combat.TagHero, 10)
	agent := &component.NavAgent{Speed: 1, HasDestination: true, Path: []cp.Vector{{X: 1}, {X: 1, Y: 1}}}
	mustAdd(t, h.w, e, component.NavAgentComponent.Kind(), agent)
	s := ecs.NewScheduler(NewNavigationSystem())

	s.Step(h.w, 0.5)
	tr, _ := ecs.Get(h.w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 0.5, tr.Position.X, 1e-9)
	motion, _ := ecs.Get(h.w, e, component.MotionComponent.Kind())
	assert.InDelta(t, 1, motion.Velocity.X, 1e-9)

	s.Step(h.w, 1)
	assert.InDelta(t, 1, tr.Position.X, 1e-9)
	assert.InDelta(t, 0.5, tr.Position.Y, 1e-9)
	require.Len(t, agent.Path, 1)

	s.Step(h.w, 1)
	assert.Empty(t, agent.Path)
	assert.False(t, agent.HasDestination)
}

func TestNavigationFreezesEnemiesDuringTimeStop(t *testing.T) {
	h := newHarness()
	enemy := h.body(t, cp.Vector{}, combat.TagEnemy, 3)
	hero := h.body(t, cp.Vector{}, combat.TagHero, 10)
	for _, e := range []ecs.Entity{enemy, hero} {
		mustAdd(t, h.w, e, component.NavAgentComponent.Kind(), &component.NavAgent{Speed: 1, HasDestination: true, Path: []cp.Vector{{X: 5}}})
	}
	h.w.SetPaused(true)
	ecs.NewScheduler(NewNavigationSystem()).Step(h.w, 1)

	ep, _ := position(h.w, enemy)
	hp, _ := position(h.w, hero)
	assert.Zero(t, ep.X)
	assert.InDelta(t, 1, hp.X, 1e-9)
}

func TestGridNavigator(t *testing.T) {
	w := ecs.NewWorld()
	grid := nav.NewGrid(common.Rect{X: -10, Y: -10, Width: 20, Height: 20}, 1)
	grid.BlockRect(common.Rect{X: 2, Y: -10, Width: 1, Height: 20})
	gn := NewGridNavigator(w, grid)

	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: cp.Vector{X: -5.5, Y: 0.5}})
	mustAdd(t, w, e, component.NavAgentComponent.Kind(), &component.NavAgent{Speed: 1})

	require.True(t, gn.IsPathComplete(e))
	require.True(t, gn.RequestMoveTo(e, cp.Vector{X: -0.5, Y: 0.5}))
	assert.False(t, gn.IsPathComplete(e))

	agent, _ := ecs.Get(w, e, component.NavAgentComponent.Kind())
	last := agent.Path[len(agent.Path)-1]
	assert.Equal(t, cp.Vector{X: -0.5, Y: 0.5}, last)

	assert.False(t, gn.RequestMoveTo(e, cp.Vector{X: 5.5, Y: 0.5}), "wall splits the grid")
	assert.True(t, gn.IsPathComplete(e))

	gn.Stop(e)
	assert.Nil(t, agent.Path)

	_, ok := gn.SampleNearestWalkable(cp.Vector{X: 2.5, Y: 0.5}, 0.4)
	assert.False(t, ok)
	p, ok := gn.SampleNearestWalkable(cp.Vector{X: 2.5, Y: 0.5}, 1.5)
	require.True(t, ok)
	assert.InDelta(t, 1, p.Distance(cp.Vector{X: 2.5, Y: 0.5}), 1e-9)
}
