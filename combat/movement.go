package combat

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
)

// MovementMode is an enemy's fixed movement behavior.
type MovementMode int

const (
	MoveStationary MovementMode = iota
	MoveChase
	MoveKeepDistance
	MoveWander
	MoveOrbit
)

func (m MovementMode) String() string {
	switch m {
	case MoveStationary:
		return "stationary"
	case MoveChase:
		return "chase"
	case MoveKeepDistance:
		return "keep_distance"
	case MoveWander:
		return "wander"
	case MoveOrbit:
		return "orbit"
	}
	return fmt.Sprintf("movement(%d)", int(m))
}

func ParseMovementMode(s string) (MovementMode, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")) {
	case "stationary", "":
		return MoveStationary, nil
	case "chase":
		return MoveChase, nil
	case "keep_distance", "keepdistance", "kite":
		return MoveKeepDistance, nil
	case "wander":
		return MoveWander, nil
	case "orbit":
		return MoveOrbit, nil
	}
	return MoveStationary, fmt.Errorf("combat: unknown movement mode %q", s)
}

const (
	// RetreatDistance is how far a keep-distance enemy backs off per order.
	RetreatDistance = 2.0
	// RetreatFraction of the attack range under which it backs off.
	RetreatFraction = 0.7
)

// Spacing is a keep-distance decision.
type Spacing int

const (
	SpacingHold Spacing = iota
	SpacingRetreat
	SpacingAdvance
)

// KeepDistance decides how a ranged enemy adjusts to a target dist away.
func KeepDistance(dist, attackRange float64) Spacing {
	switch {
	case dist < attackRange*RetreatFraction:
		return SpacingRetreat
	case dist > attackRange:
		return SpacingAdvance
	}
	return SpacingHold
}

// RetreatPoint steps dist from self directly away from target. When self
// sits on target it backs off along +X.
func RetreatPoint(self, target cp.Vector, dist float64) cp.Vector {
	away := common.Direction(target, self)
	if away.LengthSq() == 0 {
		away = cp.Vector{X: 1}
	}
	return self.Add(away.Mult(dist))
}

// OrbitPoint is the point radius from target, rotated +90 degrees from the
// bearing self->target.
func OrbitPoint(self, target cp.Vector, radius float64) cp.Vector {
	bearing := common.BearingDeg(target.Sub(self))
	return target.Add(common.DirFromDeg(bearing + 90).Mult(radius))
}
