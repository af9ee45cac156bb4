package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/prefabs"
)

// NewPlayer builds the support player. The ability book is fresh per player
// so unlock clocks are never shared.
func NewPlayer(w *ecs.World, prefab string, spec prefabs.PlayerSpec, support prefabs.SupportSpec, pos cp.Vector) (ecs.Entity, error) {
	book, err := support.AbilityBook()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	b := newBuild(w, "player")
	b.body(prefab, pos, combat.TagPlayer, spec.Radius, spec.Health)
	add(b, "player", component.PlayerComponent.Kind(), &component.Player{
		HealZones:    support.Zones(),
		HealBar:      combat.HealBar{Speed: spec.HealBarSpeed, Traverse: spec.HealTraverse},
		HealCooldown: spec.HealCooldown,
		LastHeal:     math.Inf(-1),
		Buffs:        combat.BuffGate{Cooldown: spec.BuffCooldown, Duration: spec.BuffDuration},
		BuffPotency:  spec.BuffPotency,
		Abilities:    book,
	})
	return b.done()
}
