package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
)

type HeroState int

const (
	HeroIdle HeroState = iota
	HeroAttacking
	HeroDying
)

func (s HeroState) String() string {
	switch s {
	case HeroIdle:
		return "idle"
	case HeroAttacking:
		return "attacking"
	case HeroDying:
		return "dying"
	}
	return "unknown"
}

// HeroAttack is a slot in the melee rotation.
type HeroAttack int

const (
	AttackRush HeroAttack = iota
	AttackWhirl
)

func (a HeroAttack) String() string {
	if a == AttackWhirl {
		return "whirl"
	}
	return "rush"
}

// HeroTuning is the authored part of the hero brain.
type HeroTuning struct {
	NavSample       float64
	MaxRoamDuration float64
	MinRoamDistance float64
	MaxRoamDistance float64
	RoamHold        float64

	RushOvershoot    float64
	RushDuration     float64
	RushCooldown     float64
	RushDamage       int
	RushDamageRadius float64

	Whirl             combat.MoveParams
	WhirlCooldown     float64
	WhirlDamage       int
	WhirlDamageRadius float64

	DeathGrace      float64
	RepulseRadius   float64
	RepulseDistance float64
}

// Hero is the brain of the melee hero.
type Hero struct {
	HeroTuning
	Stats combat.Stats

	State      HeroState
	Origin     cp.Vector
	NextAttack HeroAttack
	LastRush   float64
	LastWhirl  float64
	Roaming    bool
	RoamTimer  float64
	HoldTimer  float64
	Buffs      combat.Buffs
	Activity   combat.Slot

	InvisibleUntil float64
}

var HeroComponent = NewComponent[Hero]()

// NewHero returns a hero brain whose attacks are ready immediately.
func NewHero(tuning HeroTuning, stats combat.Stats, origin cp.Vector) *Hero {
	return &Hero{
		HeroTuning: tuning,
		Stats:      stats,
		Origin:     origin,
		LastRush:   math.Inf(-1),
		LastWhirl:  math.Inf(-1),
		Buffs:      combat.NewBuffs(),
	}
}

// Invisible reports whether enemies currently cannot see the hero.
func (h *Hero) Invisible(now float64) bool {
	return h != nil && now < h.InvisibleUntil
}

// RushReady reports whether the rush cooldown, measured from its last
// launch, has elapsed at now.
func (h *Hero) RushReady(now float64) bool {
	return now >= h.LastRush+h.RushCooldown
}

func (h *Hero) WhirlReady(now float64) bool {
	return now >= h.LastWhirl+h.WhirlCooldown
}
