package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

// DamageEnemy applies damage to an enemy. The killing blow runs the death
// sequence exactly once: the enemy stops acting, leaves spatial queries and
// is destroyed in the same call. It reports whether this call killed it.
func DamageEnemy(ctx *Context, w *ecs.World, e ecs.Entity, amount int, evt combat.DamageEvent) bool {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	evt.Target = e.Ref()
	applied, died := health.ApplyDamage(amount, evt)
	if applied {
		evt.Amount = amount
		push(w, EventDamage, evt)
	}
	if !died {
		return false
	}

	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		enemy.Dead = true
		enemy.Activity.Cancel()
	}
	if d, ok := ecs.Get(w, e, component.DetectionComponent.Kind()); ok {
		d.Enabled = false
		d.Targets.Clear()
	}
	if ctx != nil && ctx.Nav != nil {
		ctx.Nav.Stop(e)
	}
	removeBody(w, e)
	ctx.cue(CueEnemyDeath, e)
	push(w, EventEnemyDied, evt)
	ctx.logger().Debug("enemy died", "entity", e, "cause", evt.Cause)
	ecs.DestroyEntity(w, e)
	return true
}

// DamageHero applies incoming damage through the hero's buffs. Dying heroes
// and invulnerable heroes take nothing.
func DamageHero(ctx *Context, w *ecs.World, e ecs.Entity, amount int, evt combat.DamageEvent) bool {
	hero, ok := ecs.Get(w, e, component.HeroComponent.Kind())
	if !ok || hero.State == component.HeroDying {
		return false
	}
	if hero.Buffs.Invulnerable(w.Now()) {
		return false
	}
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	final := hero.Buffs.Incoming(amount, evt.Kind)
	evt.Target = e.Ref()
	applied, died := health.ApplyDamage(final, evt)
	if applied {
		evt.Amount = final
		push(w, EventDamage, evt)
		ctx.cue(CueHeroHit, e)
	}
	if died {
		killHero(ctx, w, e, hero, evt)
	}
	return died
}

func killHero(ctx *Context, w *ecs.World, e ecs.Entity, hero *component.Hero, evt combat.DamageEvent) {
	hero.State = component.HeroDying
	hero.Activity.Cancel()
	if agent, ok := ecs.Get(w, e, component.NavAgentComponent.Kind()); ok {
		agent.Suspended = false
	}
	if ctx != nil && ctx.Nav != nil {
		ctx.Nav.Stop(e)
	}
	if d, ok := ecs.Get(w, e, component.DetectionComponent.Kind()); ok {
		d.Enabled = false
		d.Targets.Clear()
	}
	removeBody(w, e)
	_ = ecs.Add(w, e, component.DespawnComponent.Kind(), &component.Despawn{Remaining: hero.DeathGrace})

	ctx.cue(CueHeroDeath, e)
	push(w, EventHeroDied, evt)
	ctx.logger().Info("hero died", "entity", e, "cause", evt.Cause)
}

// DamagePlayer applies damage to the support player, if it can be hurt.
func DamagePlayer(w *ecs.World, e ecs.Entity, amount int, evt combat.DamageEvent) bool {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	evt.Target = e.Ref()
	applied, died := health.ApplyDamage(amount, evt)
	if applied {
		evt.Amount = amount
		push(w, EventDamage, evt)
	}
	return died
}

// AreaDamage hits every enemy within radius of center and returns how many
// took damage.
func AreaDamage(ctx *Context, w *ecs.World, source ecs.Entity, center cp.Vector, radius float64, amount int, cause string) int {
	hits := 0
	for _, target := range ctx.query(center, radius, combat.TagEnemy) {
		if !tagsOf(w, target).Has(combat.TagEnemy) {
			continue
		}
		health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
		if !ok || health.Dead {
			continue
		}
		hits++
		DamageEnemy(ctx, w, target, amount, combat.DamageEvent{Source: source.Ref(), Cause: cause})
	}
	return hits
}
