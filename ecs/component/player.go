package component

import (
	"math"

	"github.com/milk9111/vanguard/combat"
)

// SupportAction is something the support player asks for.
type SupportAction int

const (
	ActionHealStart SupportAction = iota
	ActionHealStop
	ActionBuff
	ActionAbility
)

// SupportRequest is queued by input or scripts and consumed by the support
// system on its next tick.
type SupportRequest struct {
	Action  SupportAction
	Effect  combat.SupportEffect
	Ability combat.Ability
}

// Player is the support character backing the hero: heal minigame, one
// buff at a time, and timed ability unlocks.
type Player struct {
	HealZones    combat.HealZones
	HealBar      combat.HealBar
	HealCooldown float64
	LastHeal     float64

	Buffs       combat.BuffGate
	BuffPotency int
	Abilities   *combat.AbilityBook

	// TimeStopUntil is when an active time stop ends, or 0.
	TimeStopUntil float64

	Requests []SupportRequest
}

var PlayerComponent = NewComponent[Player]()

// NewPlayer returns a support player with stock tuning.
func NewPlayer() *Player {
	return &Player{
		HealZones:    combat.DefaultHealZones(),
		HealBar:      combat.HealBar{Speed: 1, Traverse: 1},
		HealCooldown: 1,
		LastHeal:     math.Inf(-1),
		Buffs:        combat.BuffGate{Cooldown: 5, Duration: 10},
		BuffPotency:  1,
		Abilities:    combat.DefaultAbilityBook(),
	}
}

// Request queues a support action.
func (p *Player) Request(r SupportRequest) {
	p.Requests = append(p.Requests, r)
}
