package system

import (
	"errors"
	"math"

	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

var (
	ErrHealIdle = errors.New("system: heal bar is not running")
	ErrNotABuff = errors.New("system: heal is not a buff")
	ErrNoHero   = errors.New("system: no living hero")
)

// SupportSystem consumes the support player's requests: the heal timing
// bar, one buff at a time and the timed abilities. It keeps running during
// time stop so it can end it.
type SupportSystem struct {
	ctx *Context
}

func NewSupportSystem(ctx *Context) *SupportSystem {
	return &SupportSystem{ctx: ctx}
}

func (s *SupportSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	dt := w.Delta()

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.TimeStopUntil > 0 && now >= p.TimeStopUntil {
			p.TimeStopUntil = 0
			w.SetPaused(false)
			s.ctx.logger().Info("time stop ended")
		}

		if p.Abilities != nil {
			for _, a := range p.Abilities.Advance(dt, now) {
				push(w, EventAbilityUnlock, AbilityEvent{Ability: a})
				s.ctx.logger().Info("ability unlocked", "ability", a, "elapsed", now)
			}
		}
		p.HealBar.Step(dt)

		requests := p.Requests
		p.Requests = nil
		for _, r := range requests {
			if err := s.handle(w, p, r, now); err != nil {
				push(w, EventSupportDenied, DeniedEvent{Action: actionName(r), Err: err})
				s.ctx.logger().Debug("support request denied", "action", actionName(r), "err", err)
			}
		}
	})
}

func (s *SupportSystem) handle(w *ecs.World, p *component.Player, r component.SupportRequest, now float64) error {
	switch r.Action {
	case component.ActionHealStart:
		if now < p.LastHeal+p.HealCooldown {
			return combat.ErrSupportCooldown
		}
		p.HealBar.Start()
		return nil

	case component.ActionHealStop:
		if !p.HealBar.Active {
			return ErrHealIdle
		}
		grade := p.HealZones.Grade(p.HealBar.Stop())
		p.LastHeal = now
		return s.heal(w, grade)

	case component.ActionBuff:
		if r.Effect == combat.EffectHeal {
			return ErrNotABuff
		}
		hero, ok := findHero(w)
		if !ok {
			return ErrNoHero
		}
		if err := p.Buffs.Try(r.Effect, now); err != nil {
			return err
		}
		return ApplySupportEffect(s.ctx, w, hero, r.Effect, p.Buffs.Duration, p.BuffPotency)

	case component.ActionAbility:
		if p.Abilities == nil {
			return combat.ErrAbilityLocked
		}
		spec, err := p.Abilities.Use(r.Ability, now)
		if err != nil {
			return err
		}
		return s.useAbility(w, p, r.Ability, spec, now)
	}
	return nil
}

// heal restores a share of the hero's max health set by the bar grade.
func (s *SupportSystem) heal(w *ecs.World, grade combat.HealGrade) error {
	hero, ok := findHero(w)
	if !ok {
		return ErrNoHero
	}
	amount := 0
	if health, ok := ecs.Get(w, hero, component.HealthComponent.Kind()); ok && grade.Percent > 0 {
		amount = int(math.Ceil(float64(health.Max) * grade.Percent))
	}
	if amount > 0 {
		if err := ApplySupportEffect(s.ctx, w, hero, combat.EffectHeal, 0, amount); err != nil {
			return err
		}
		s.ctx.cue(CueHeal, hero)
	}
	push(w, EventHealed, EffectEvent{Hero: hero, Effect: combat.EffectHeal, Amount: amount, Grade: grade.Name})
	return nil
}

func (s *SupportSystem) useAbility(w *ecs.World, p *component.Player, a combat.Ability, spec combat.AbilitySpec, now float64) error {
	evt := AbilityEvent{Ability: a}
	switch a {
	case combat.AbilityAnnihilation:
		hero, ok := findHero(w)
		if !ok {
			return ErrNoHero
		}
		center, _ := position(w, hero)
		evt.Hits = AreaDamage(s.ctx, w, hero, center, spec.Radius, spec.Damage, "annihilation")

	case combat.AbilityInvulnerability:
		hero, ok := findHero(w)
		if !ok {
			return ErrNoHero
		}
		if err := ApplySupportEffect(s.ctx, w, hero, combat.EffectInvulnerable, spec.Duration, 0); err != nil {
			return err
		}

	case combat.AbilityTimeStop:
		p.TimeStopUntil = now + spec.Duration
		w.SetPaused(true)

	case combat.AbilityInvisibility:
		heroEnt, ok := findHero(w)
		if !ok {
			return ErrNoHero
		}
		hero, _ := ecs.Get(w, heroEnt, component.HeroComponent.Kind())
		hero.InvisibleUntil = now + spec.Duration

	case combat.AbilityEndGame:
		if e, ok := ecs.First(w, component.WaveDirectorComponent.Kind()); ok {
			wd, _ := ecs.Get(w, e, component.WaveDirectorComponent.Kind())
			if wd.Director != nil {
				evt.Hits = wd.Director.CurrentAlive()
				wd.Director.ClearAll(func(id uint64) { ecs.DestroyEntity(w, ecs.Entity(id)) })
			}
		}
	}

	push(w, EventAbilityUsed, evt)
	s.ctx.logger().Info("ability used", "ability", a, "hits", evt.Hits)
	return nil
}

func actionName(r component.SupportRequest) string {
	switch r.Action {
	case component.ActionHealStart:
		return "heal_start"
	case component.ActionHealStop:
		return "heal_stop"
	case component.ActionBuff:
		return r.Effect.String()
	case component.ActionAbility:
		return r.Ability.String()
	}
	return "unknown"
}
