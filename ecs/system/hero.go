package system

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

var ErrHeroDying = errors.New("system: hero is dying")

const (
	defaultRepulseRadius   = 2.0
	defaultRepulseDistance = 2.0
)

// HeroSystem runs the hero brain: roam while idle, close in on the nearest
// enemy, then alternate rush and whirl. Time stop does not freeze it.
type HeroSystem struct {
	ctx *Context
}

func NewHeroSystem(ctx *Context) *HeroSystem {
	return &HeroSystem{ctx: ctx}
}

func (s *HeroSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	alive := aliveFunc(w)
	now := w.Now()
	dt := w.Delta()

	ecs.ForEach3(w, component.HeroComponent.Kind(), component.TransformComponent.Kind(), component.DetectionComponent.Kind(), func(e ecs.Entity, hero *component.Hero, t *component.Transform, d *component.Detection) {
		if hero.State == component.HeroDying {
			return
		}

		for _, effect := range hero.Buffs.Tick(now) {
			push(w, EventBuffExpired, EffectEvent{Hero: e, Effect: effect})
			s.ctx.logger().Debug("hero buff expired", "effect", effect)
		}

		var target ecs.Entity
		var targetPos cp.Vector
		if ref := d.Targets.Current(); ref != 0 && alive(ref) {
			if pos, ok := position(w, ecs.Entity(ref)); ok {
				target = ecs.Entity(ref)
				targetPos = pos
			}
		}

		// A target that died mid-attack lets the attack resolve; one that
		// only left detection range cancels it.
		if a := hero.Activity.Active(); a != nil && (target != 0 || !alive(a.Target)) {
			s.stepActivity(w, e, hero, t, a, dt, alive)
			return
		}

		if target == 0 {
			if hero.State == component.HeroAttacking {
				hero.State = component.HeroIdle
				s.stopAttack(w, e, hero)
				s.ctx.Nav.Stop(e)
			}
			s.idle(e, hero, dt)
			return
		}

		if hero.State == component.HeroIdle {
			hero.State = component.HeroAttacking
			hero.Roaming = false
		}

		face(t, targetPos.X-t.Position.X)
		if t.Position.Distance(targetPos) > hero.Stats.EngagementRange {
			s.ctx.Nav.RequestMoveTo(e, targetPos)
			return
		}
		s.ctx.Nav.Stop(e)

		switch hero.NextAttack {
		case component.AttackRush:
			if hero.RushReady(now) && s.startRush(w, e, hero, t.Position, target, targetPos) {
				hero.LastRush = now
				hero.NextAttack = component.AttackWhirl
			}
		case component.AttackWhirl:
			if hero.WhirlReady(now) && s.startWhirl(w, e, hero, target, targetPos) {
				hero.LastWhirl = now
				hero.NextAttack = component.AttackRush
			}
		}
	})
}

func (s *HeroSystem) idle(e ecs.Entity, hero *component.Hero, dt float64) {
	nav := s.ctx.Nav
	if hero.Roaming {
		hero.RoamTimer -= dt
		if nav.IsPathComplete(e) || hero.RoamTimer <= 0 {
			hero.Roaming = false
			hero.HoldTimer = hero.RoamHold
		}
		return
	}
	if hero.HoldTimer > 0 {
		hero.HoldTimer -= dt
		return
	}

	dir := common.RandomOnUnitCircle(s.ctx.RNG)
	dist := common.RangeFloat(s.ctx.RNG, hero.MinRoamDistance, hero.MaxRoamDistance)
	p, ok := nav.SampleNearestWalkable(hero.Origin.Add(dir.Mult(dist)), hero.NavSample*5)
	if !ok || !nav.RequestMoveTo(e, p) {
		nav.Stop(e)
		s.ctx.logger().Debug("hero found no roam point", "entity", e)
		return
	}
	hero.Roaming = true
	hero.RoamTimer = common.RangeFloat(s.ctx.RNG, 1, hero.MaxRoamDuration)
}

func (s *HeroSystem) startRush(w *ecs.World, e ecs.Entity, hero *component.Hero, self cp.Vector, target ecs.Entity, targetPos cp.Vector) bool {
	end := targetPos.Add(common.Direction(self, targetPos).Mult(hero.RushOvershoot))
	sample := hero.NavSample * 2
	if p, ok := s.ctx.Nav.SampleNearestWalkable(end, sample); ok {
		end = p
	} else if p, ok := s.ctx.Nav.SampleNearestWalkable(targetPos, sample); ok {
		end = p
	} else {
		s.ctx.logger().Warn("rush endpoint off the walkable area, dashing at target", "entity", e)
		end = targetPos
	}

	if err := hero.Activity.Begin(combat.NewRush(target.Ref(), self, end, hero.RushDuration)); err != nil {
		return false
	}
	s.suspend(w, e, true)
	s.ctx.cue(CueRush, e)
	s.ctx.logger().Debug("hero rush", "entity", e, "target", target)
	return true
}

func (s *HeroSystem) startWhirl(w *ecs.World, e ecs.Entity, hero *component.Hero, target ecs.Entity, targetPos cp.Vector) bool {
	if err := hero.Activity.Begin(combat.NewWhirl(target.Ref(), targetPos, hero.Whirl)); err != nil {
		return false
	}
	s.suspend(w, e, true)
	s.ctx.cue(CueWhirl, e)
	s.ctx.logger().Debug("hero whirl", "entity", e, "target", target)
	return true
}

func (s *HeroSystem) stepActivity(w *ecs.World, e ecs.Entity, hero *component.Hero, t *component.Transform, a *combat.Activity, dt float64, alive combat.AliveFunc) {
	before := t.Position
	valid := alive(a.Target)

	switch a.Kind {
	case combat.ActivityRush:
		t.Position = a.StepRush(dt, valid)
		if a.Done {
			dmg := hero.Buffs.Outgoing(hero.RushDamage)
			AreaDamage(s.ctx, w, e, t.Position, hero.RushDamageRadius, dmg, "rush")
		}
	case combat.ActivityWhirl:
		step := a.StepWhirl(dt, valid)
		if step.Moved {
			t.Position = step.Position
		}
		if step.Damage {
			dmg := hero.Buffs.Outgoing(hero.WhirlDamage)
			AreaDamage(s.ctx, w, e, t.Position, hero.WhirlDamageRadius, dmg, "whirl")
		}
	default:
		a.Done = true
	}

	if dt > 0 {
		setVelocity(w, e, t.Position.Sub(before).Mult(1/dt))
	}
	if a.Done {
		s.stopAttack(w, e, hero)
	}
}

// stopAttack drops any in-flight attack and hands movement back to the
// navigator.
func (s *HeroSystem) stopAttack(w *ecs.World, e ecs.Entity, hero *component.Hero) {
	hero.Activity.Cancel()
	s.suspend(w, e, false)
}

func (s *HeroSystem) suspend(w *ecs.World, e ecs.Entity, suspended bool) {
	if suspended {
		s.ctx.Nav.Stop(e)
	}
	if agent, ok := ecs.Get(w, e, component.NavAgentComponent.Kind()); ok {
		agent.Suspended = suspended
	}
}

func face(t *component.Transform, dx float64) {
	if dx > 0 {
		t.Facing = 1
	} else if dx < 0 {
		t.Facing = -1
	}
}

// ApplySupportEffect lands a support effect on the hero. Heal restores
// potency hit points; buffs last duration seconds.
func ApplySupportEffect(ctx *Context, w *ecs.World, e ecs.Entity, effect combat.SupportEffect, duration float64, potency int) error {
	hero, ok := ecs.Get(w, e, component.HeroComponent.Kind())
	if !ok {
		return fmt.Errorf("system: apply %s: %w", effect, ecs.ErrEntityNotAlive)
	}
	if hero.State == component.HeroDying {
		return fmt.Errorf("system: apply %s: %w", effect, ErrHeroDying)
	}

	now := w.Now()
	amount := 0
	switch effect {
	case combat.EffectHeal:
		if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			amount = health.Heal(potency)
		}
	case combat.EffectBuffDamage:
		hero.Buffs.ApplyDamageBuff(potency, now, duration)
	case combat.EffectBuffDefense:
		hero.Buffs.ApplyDefenseBuff(potency, now, duration)
	case combat.EffectBuffResistance:
		hero.Buffs.ApplyResistanceBuff(potency, now, duration)
	case combat.EffectRepulse:
		amount = repulse(ctx, w, e, hero)
	case combat.EffectInvulnerable:
		hero.Buffs.ApplyInvulnerability(now, duration)
	default:
		return fmt.Errorf("system: unknown support effect %s", effect)
	}

	ctx.cue(CueBuff, e)
	push(w, EventBuffApplied, EffectEvent{Hero: e, Effect: effect, Amount: amount})
	ctx.logger().Debug("support effect", "effect", effect, "amount", amount, "duration", duration)
	return nil
}

// repulse shoves enemies near the hero straight outward onto walkable
// ground and returns how many moved.
func repulse(ctx *Context, w *ecs.World, e ecs.Entity, hero *component.Hero) int {
	center, ok := position(w, e)
	if !ok {
		return 0
	}
	radius := hero.RepulseRadius
	if radius <= 0 {
		radius = defaultRepulseRadius
	}
	dist := hero.RepulseDistance
	if dist <= 0 {
		dist = defaultRepulseDistance
	}

	moved := 0
	for _, other := range ctx.query(center, radius, combat.TagEnemy) {
		t, ok := ecs.Get(w, other, component.TransformComponent.Kind())
		if !ok || !tagsOf(w, other).Has(combat.TagEnemy) {
			continue
		}
		dir := common.Direction(center, t.Position)
		if dir.LengthSq() == 0 {
			dir = cp.Vector{X: 1}
		}
		p := t.Position.Add(dir.Mult(dist))
		if ctx.Nav != nil {
			sampled, ok := ctx.Nav.SampleNearestWalkable(p, dist)
			if !ok {
				continue
			}
			p = sampled
			ctx.Nav.Stop(other)
		}
		t.Position = p
		if pw := w.PhysicsWorld(); pw != nil && pw.Registered(other) {
			pw.Move(other, p)
		}
		moved++
	}
	return moved
}
