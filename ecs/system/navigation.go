package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

const defaultArriveDistance = 0.05

// NavigationSystem walks agents along their planned paths and records the
// resulting velocity for aim prediction.
type NavigationSystem struct{}

func NewNavigationSystem() *NavigationSystem {
	return &NavigationSystem{}
}

func (s *NavigationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.NavAgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, agent *component.NavAgent, t *component.Transform) {
		// Time stop freezes enemies but not the hero.
		if w.Paused() && tagsOf(w, e).Has(combat.TagEnemy) {
			setVelocity(w, e, cp.Vector{})
			return
		}
		if agent.Suspended || len(agent.Path) == 0 || dt <= 0 {
			if len(agent.Path) == 0 {
				agent.HasDestination = false
			}
			if !agent.Suspended {
				setVelocity(w, e, cp.Vector{})
			}
			return
		}

		arrive := agent.ArriveDistance
		if arrive <= 0 {
			arrive = defaultArriveDistance
		}
		start := t.Position
		budget := agent.Speed * dt
		for budget > 0 && len(agent.Path) > 0 {
			next := agent.Path[0]
			dist := t.Position.Distance(next)
			if dist <= budget || dist <= arrive {
				t.Position = next
				budget -= dist
				agent.Path = agent.Path[1:]
				continue
			}
			t.Position = t.Position.Add(next.Sub(t.Position).Mult(budget / dist))
			budget = 0
		}
		if len(agent.Path) == 0 {
			agent.Path = nil
			agent.HasDestination = false
		}

		moved := t.Position.Sub(start)
		if moved.X > 0 {
			t.Facing = 1
		} else if moved.X < 0 {
			t.Facing = -1
		}
		setVelocity(w, e, moved.Mult(1/dt))
	})
}

func setVelocity(w *ecs.World, e ecs.Entity, v cp.Vector) {
	if motion, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
		motion.Velocity = v
	}
}
