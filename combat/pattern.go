package combat

import (
	"fmt"
	"strings"
)

// PatternKind is the shape of a ranged attack.
type PatternKind int

const (
	PatternSingle PatternKind = iota
	PatternBurst
	PatternCircle
	PatternSpiral
	PatternPredictive
)

func (k PatternKind) String() string {
	switch k {
	case PatternSingle:
		return "single"
	case PatternBurst:
		return "burst"
	case PatternCircle:
		return "circle"
	case PatternSpiral:
		return "spiral"
	case PatternPredictive:
		return "predictive"
	default:
		return fmt.Sprintf("pattern(%d)", int(k))
	}
}

func ParsePatternKind(s string) (PatternKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return PatternSingle, nil
	case "burst":
		return PatternBurst, nil
	case "circle":
		return PatternCircle, nil
	case "spiral":
		return PatternSpiral, nil
	case "predictive":
		return PatternPredictive, nil
	}
	return PatternSingle, fmt.Errorf("combat: unknown pattern kind %q", s)
}

// DamageKind selects which hero multiplier reduces incoming damage.
type DamageKind int

const (
	DamagePhysical DamageKind = iota
	DamageElemental
)

func ParseDamageKind(s string) (DamageKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "physical", "":
		return DamagePhysical, nil
	case "elemental":
		return DamageElemental, nil
	}
	return DamagePhysical, fmt.Errorf("combat: unknown damage kind %q", s)
}

// AttackPattern describes a ranged attack. Patterns are read-only once
// loaded and are shared by every enemy that uses them.
type AttackPattern struct {
	Name            string
	Kind            PatternKind
	Cooldown        float64
	ProjectileSpeed float64
	Damage          int
	ProjectileCount int
	SpreadDegrees   float64
	BurstDelay      float64

	// Projectile names the prefab fired by this pattern. Empty means the
	// pattern has no usable payload.
	Projectile   string
	Lifetime     float64
	DestroyOnHit bool
	DamageKind   DamageKind
}

// DefaultAttackPattern returns a single-shot pattern with stock tuning.
func DefaultAttackPattern() AttackPattern {
	return AttackPattern{
		Kind:            PatternSingle,
		Cooldown:        2,
		ProjectileSpeed: 5,
		Damage:          1,
		ProjectileCount: 8,
		SpreadDegrees:   45,
		BurstDelay:      0.1,
		Lifetime:        5,
		DestroyOnHit:    true,
	}
}

// Usable reports whether the pattern can emit projectiles at all.
func (p *AttackPattern) Usable() bool {
	return p != nil && p.Projectile != "" && p.ProjectileSpeed > 0
}

// MultiTick reports whether firing spans several ticks.
func (p *AttackPattern) MultiTick() bool {
	return p != nil && (p.Kind == PatternBurst || p.Kind == PatternSpiral)
}
