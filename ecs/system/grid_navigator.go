package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/nav"
)

// GridNavigator plans paths on a nav grid and stores them on the agent's
// NavAgent component. NavigationSystem walks them.
type GridNavigator struct {
	World    *ecs.World
	Grid     *nav.Grid
	MaxNodes int
}

func NewGridNavigator(w *ecs.World, grid *nav.Grid) *GridNavigator {
	return &GridNavigator{World: w, Grid: grid, MaxNodes: nav.DefaultMaxNodes}
}

// RequestMoveTo plans a path from e's position to p. It reports false and
// leaves the agent stopped when no path exists.
func (n *GridNavigator) RequestMoveTo(e ecs.Entity, p cp.Vector) bool {
	agent, ok := ecs.Get(n.World, e, component.NavAgentComponent.Kind())
	if !ok {
		return false
	}
	from, ok := position(n.World, e)
	if !ok || n.Grid == nil {
		return false
	}

	path, found := n.Grid.PathTo(from, p, n.MaxNodes)
	if !found {
		agent.Path = nil
		agent.HasDestination = false
		return false
	}
	agent.Destination = p
	agent.HasDestination = true
	agent.Path = path
	return true
}

func (n *GridNavigator) Stop(e ecs.Entity) {
	agent, ok := ecs.Get(n.World, e, component.NavAgentComponent.Kind())
	if !ok {
		return
	}
	agent.Path = nil
	agent.HasDestination = false
}

// IsPathComplete reports whether e has nowhere left to go.
func (n *GridNavigator) IsPathComplete(e ecs.Entity) bool {
	agent, ok := ecs.Get(n.World, e, component.NavAgentComponent.Kind())
	if !ok {
		return true
	}
	return !agent.HasDestination || len(agent.Path) == 0
}

func (n *GridNavigator) SampleNearestWalkable(p cp.Vector, maxDistance float64) (cp.Vector, bool) {
	if n.Grid == nil {
		return p, true
	}
	return n.Grid.SampleNearestWalkable(p, maxDistance)
}
