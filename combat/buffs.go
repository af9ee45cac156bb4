package combat

import (
	"fmt"
	"math"
	"strings"
)

// SupportEffect is something the support player can apply to the hero.
type SupportEffect int

const (
	EffectHeal SupportEffect = iota
	EffectBuffDamage
	EffectBuffDefense
	EffectBuffResistance
	EffectRepulse
	EffectInvulnerable
)

func (e SupportEffect) String() string {
	switch e {
	case EffectHeal:
		return "heal"
	case EffectBuffDamage:
		return "buff_damage"
	case EffectBuffDefense:
		return "buff_defense"
	case EffectBuffResistance:
		return "buff_resistance"
	case EffectRepulse:
		return "repulse"
	case EffectInvulnerable:
		return "invulnerable"
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

func ParseSupportEffect(s string) (SupportEffect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heal":
		return EffectHeal, nil
	case "buff_damage", "damage":
		return EffectBuffDamage, nil
	case "buff_defense", "buff_defence", "defense":
		return EffectBuffDefense, nil
	case "buff_resistance", "resistance":
		return EffectBuffResistance, nil
	case "repulse":
		return EffectRepulse, nil
	case "invulnerable", "invulnerability":
		return EffectInvulnerable, nil
	}
	return EffectHeal, fmt.Errorf("combat: unknown support effect %q", s)
}

// timedMultiplier is a multiplier that snaps back to 1 once now passes
// its expiry. An expiry of zero means no buff is active.
type timedMultiplier struct {
	Value  float64
	Expiry float64
}

func (m *timedMultiplier) set(v, now, duration float64) {
	m.Value = v
	m.Expiry = now + duration
}

func (m *timedMultiplier) tick(now float64) bool {
	if m.Expiry > 0 && now > m.Expiry {
		m.Value = 1
		m.Expiry = 0
		return true
	}
	return false
}

func (m *timedMultiplier) get() float64 {
	if m.Expiry == 0 && m.Value == 0 {
		return 1
	}
	return m.Value
}

// Buffs holds the hero's time-limited multipliers.
type Buffs struct {
	damage     timedMultiplier
	defense    timedMultiplier
	resistance timedMultiplier
	invuln     float64
}

// NewBuffs returns neutral multipliers.
func NewBuffs() Buffs {
	return Buffs{
		damage:     timedMultiplier{Value: 1},
		defense:    timedMultiplier{Value: 1},
		resistance: timedMultiplier{Value: 1},
	}
}

func (b *Buffs) DamageMultiplier() float64     { return b.damage.get() }
func (b *Buffs) DefenseMultiplier() float64    { return b.defense.get() }
func (b *Buffs) ResistanceMultiplier() float64 { return b.resistance.get() }

// Invulnerable reports whether an invulnerability window covers now.
func (b *Buffs) Invulnerable(now float64) bool {
	return b.invuln > 0 && now <= b.invuln
}

// ApplyDamageBuff makes outgoing damage 1+potency times stronger.
func (b *Buffs) ApplyDamageBuff(potency int, now, duration float64) {
	b.damage.set(1+float64(potency), now, duration)
}

// ApplyDefenseBuff reduces incoming physical damage by 20% per potency.
func (b *Buffs) ApplyDefenseBuff(potency int, now, duration float64) {
	b.defense.set(math.Max(0, 1-0.2*float64(potency)), now, duration)
}

// ApplyResistanceBuff reduces incoming elemental damage by 20% per potency.
func (b *Buffs) ApplyResistanceBuff(potency int, now, duration float64) {
	b.resistance.set(math.Max(0, 1-0.2*float64(potency)), now, duration)
}

func (b *Buffs) ApplyInvulnerability(now, duration float64) {
	b.invuln = now + duration
}

// Tick expires buffs whose time has passed and returns the effects that
// ended on this call.
func (b *Buffs) Tick(now float64) []SupportEffect {
	var expired []SupportEffect
	if b.damage.tick(now) {
		expired = append(expired, EffectBuffDamage)
	}
	if b.defense.tick(now) {
		expired = append(expired, EffectBuffDefense)
	}
	if b.resistance.tick(now) {
		expired = append(expired, EffectBuffResistance)
	}
	if b.invuln > 0 && now > b.invuln {
		b.invuln = 0
		expired = append(expired, EffectInvulnerable)
	}
	return expired
}

// Outgoing scales damage dealt, rounding up.
func (b *Buffs) Outgoing(base int) int {
	return int(math.Ceil(float64(base) * b.DamageMultiplier()))
}

// Incoming scales damage received by the multiplier matching kind,
// rounding up and never going below zero.
func (b *Buffs) Incoming(amount int, kind DamageKind) int {
	mult := b.DefenseMultiplier()
	if kind == DamageElemental {
		mult = b.ResistanceMultiplier()
	}
	v := int(math.Ceil(float64(amount) * mult))
	if v < 0 {
		return 0
	}
	return v
}
