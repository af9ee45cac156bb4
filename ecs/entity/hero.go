package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/prefabs"
)

// NewHero builds the melee hero at pos. The hero roams around pos while it
// has nothing to fight.
func NewHero(w *ecs.World, prefab string, spec prefabs.HeroSpec, pos cp.Vector) (ecs.Entity, error) {
	b := newBuild(w, "hero")
	b.body(prefab, pos, combat.TagHero, spec.Radius, spec.Health)

	stats := spec.Stats.Stats()
	add(b, "hero", component.HeroComponent.Kind(), component.NewHero(HeroTuning(spec), stats, pos))
	add(b, "detection", component.DetectionComponent.Kind(), &component.Detection{
		Radius:  stats.DetectionRange,
		Mask:    combat.TagEnemy,
		Policy:  component.PolicyNearest,
		Enabled: true,
	})
	add(b, "nav agent", component.NavAgentComponent.Kind(), &component.NavAgent{Speed: stats.MoveSpeed})
	return b.done()
}

func HeroTuning(spec prefabs.HeroSpec) component.HeroTuning {
	return component.HeroTuning{
		NavSample:         spec.NavSample,
		MaxRoamDuration:   spec.MaxRoamDuration,
		MinRoamDistance:   spec.MinRoamDistance,
		MaxRoamDistance:   spec.MaxRoamDistance,
		RoamHold:          spec.RoamHold,
		RushOvershoot:     spec.Rush.Overshoot,
		RushDuration:      spec.Rush.Duration,
		RushCooldown:      spec.Rush.Cooldown,
		RushDamage:        spec.Rush.Damage,
		RushDamageRadius:  spec.Rush.DamageRadius,
		Whirl:             spec.Whirl.MoveParams(),
		WhirlCooldown:     spec.Whirl.Cooldown,
		WhirlDamage:       spec.Whirl.Damage,
		WhirlDamageRadius: spec.Whirl.DamageRadius,
		DeathGrace:        spec.DeathGrace,
		RepulseRadius:     spec.RepulseRadius,
		RepulseDistance:   spec.RepulseDistance,
	}
}
