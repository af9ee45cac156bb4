package component

import "github.com/milk9111/vanguard/combat"

var HealthComponent = NewComponent[combat.Health]()

var ProjectileComponent = NewComponent[combat.Projectile]()

// TargetPolicy selects how a detector picks its target.
type TargetPolicy int

const (
	// PolicyPriority keeps the first primary-tier candidate, falling back
	// to the secondary tier.
	PolicyPriority TargetPolicy = iota
	// PolicyNearest re-picks the closest candidate every tick.
	PolicyNearest
)

// Detection is a proximity sensor feeding a target state.
type Detection struct {
	Radius   float64
	Mask     combat.Tag
	Policy   TargetPolicy
	Priority combat.PriorityPolicy
	Enabled  bool
	Targets  combat.TargetState
}

var DetectionComponent = NewComponent[Detection]()
