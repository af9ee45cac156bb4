package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/prefabs"
)

// NewEnemy builds a ranged enemy at pos. Wander and stationary modes anchor
// on pos.
func NewEnemy(w *ecs.World, prefab string, spec prefabs.EnemySpec, patterns []*combat.AttackPattern, pos cp.Vector) (ecs.Entity, error) {
	b := newBuild(w, "enemy")
	b.body(prefab, pos, combat.TagEnemy, spec.Radius, spec.Health)

	stats := spec.Stats.Stats()
	add(b, "enemy", component.EnemyComponent.Kind(), &component.Enemy{
		Mode:               combat.MovementMode(spec.Mode),
		Stats:              stats,
		WanderRadius:       spec.WanderRadius,
		OrbitRadius:        spec.OrbitRadius,
		PathUpdateInterval: spec.PathUpdateInterval,
		Patterns:           patterns,
		Origin:             pos,
	})
	add(b, "detection", component.DetectionComponent.Kind(), &component.Detection{
		Radius:   spec.DetectionRadius,
		Mask:     combat.TagHero | combat.TagPlayer,
		Policy:   component.PolicyPriority,
		Priority: combat.EnemyPriority,
		Enabled:  true,
	})
	add(b, "nav agent", component.NavAgentComponent.Kind(), &component.NavAgent{Speed: stats.MoveSpeed})
	return b.done()
}
