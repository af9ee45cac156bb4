package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
)

// Enemy is the brain of a ranged enemy: a fixed movement mode plus a
// cooldown-gated attack cycle.
type Enemy struct {
	Mode               combat.MovementMode
	Stats              combat.Stats
	WanderRadius       float64
	OrbitRadius        float64
	PathUpdateInterval float64
	Patterns           []*combat.AttackPattern

	Origin          cp.Vector
	PatternIndex    int
	AttackTimer     float64
	PathTimer       float64
	WanderTarget    cp.Vector
	HasWanderTarget bool
	Activity        combat.Slot
	Dead            bool
}

var EnemyComponent = NewComponent[Enemy]()
