package system

import (
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
)

// Event types pushed onto the world queue.
const (
	EventDamage        = "damage"
	EventEnemyDied     = "enemy_died"
	EventHeroDied      = "hero_died"
	EventWaveSpawned   = "wave_spawned"
	EventBuffApplied   = "buff_applied"
	EventBuffExpired   = "buff_expired"
	EventHealed        = "healed"
	EventAbilityUsed   = "ability_used"
	EventAbilityUnlock = "ability_unlocked"
	EventSupportDenied = "support_denied"
)

// Cue names.
const (
	CueEnemyDeath = "enemy_death"
	CueHeroDeath  = "hero_death"
	CueHeroHit    = "hero_hit"
	CueRush       = "hero_rush"
	CueWhirl      = "hero_whirl"
	CueBuff       = "buff_received"
	CueHeal       = "heal"
	CueFire       = "projectile_fire"
)

// EffectEvent describes a support effect landing on, or leaving, the hero.
type EffectEvent struct {
	Hero   ecs.Entity
	Effect combat.SupportEffect
	Amount int
	Grade  string
}

// AbilityEvent describes an ability unlock or use.
type AbilityEvent struct {
	Ability combat.Ability
	Hits    int
}

// DeniedEvent is pushed when a support request is refused.
type DeniedEvent struct {
	Action string
	Err    error
}

func push(w *ecs.World, typ string, data any) {
	w.Emit(typ, data)
}
