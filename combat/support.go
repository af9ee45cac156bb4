package combat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAbilityLocked   = errors.New("combat: ability not unlocked")
	ErrAbilityCooldown = errors.New("combat: ability on cooldown")
	ErrSupportCooldown = errors.New("combat: support on cooldown")
	ErrBuffActive      = errors.New("combat: another buff is active")
)

// HealGrade is the quality of a heal bar stop.
type HealGrade struct {
	Name    string
	Percent float64
}

// HealZones are the heal bar windows. Zones are centered on 0.5 unless
// Lo/Hi are set explicitly.
type HealZones struct {
	PerfectWidth float64
	GoodWidth    float64
	OkayLo       float64
	OkayHi       float64
	MehLo        float64
	MehHi        float64
}

func DefaultHealZones() HealZones {
	return HealZones{
		PerfectWidth: 0.03,
		GoodWidth:    0.1,
		OkayLo:       0.4,
		OkayHi:       0.6,
		MehLo:        0.2,
		MehHi:        0.8,
	}
}

// Grade maps a bar position in [0,1] to a heal percentage.
func (z HealZones) Grade(pos float64) HealGrade {
	within := func(lo, hi float64) bool { return pos >= lo && pos <= hi }
	switch {
	case within(0.5-z.PerfectWidth/2, 0.5+z.PerfectWidth/2):
		return HealGrade{Name: "perfect", Percent: 0.5}
	case within(0.5-z.GoodWidth/2, 0.5+z.GoodWidth/2):
		return HealGrade{Name: "good", Percent: 0.3}
	case within(z.OkayLo, z.OkayHi):
		return HealGrade{Name: "okay", Percent: 0.15}
	case within(z.MehLo, z.MehHi):
		return HealGrade{Name: "meh", Percent: 0.05}
	}
	return HealGrade{Name: "miss"}
}

// HealBar is the ping-pong timing bar of the heal minigame.
type HealBar struct {
	Speed    float64
	Traverse float64 // seconds for one full sweep at speed 1

	Active   bool
	Position float64
	timer    float64
	dir      float64
}

func (b *HealBar) Start() {
	b.Active = true
	b.Position = 0
	b.timer = 0
	b.dir = 1
}

// Step moves the bar and bounces it off both ends.
func (b *HealBar) Step(dt float64) {
	if !b.Active {
		return
	}
	traverse := b.Traverse
	if traverse <= 0 {
		traverse = 2
	}
	speed := b.Speed
	if speed <= 0 {
		speed = 1
	}
	b.timer += dt * speed * b.dir
	if b.timer > traverse {
		b.timer = traverse
	}
	if b.timer < 0 {
		b.timer = 0
	}
	b.Position = b.timer / traverse
	if b.Position >= 1 && b.dir > 0 {
		b.dir = -1
	} else if b.Position <= 0 && b.dir < 0 {
		b.dir = 1
	}
}

// Stop ends the minigame and returns the final position.
func (b *HealBar) Stop() float64 {
	b.Active = false
	return b.Position
}

// Ability is a timed-unlock special ability.
type Ability int

const (
	AbilityAnnihilation Ability = iota
	AbilityInvulnerability
	AbilityTimeStop
	AbilityInvisibility
	AbilityEndGame
)

func (a Ability) String() string {
	switch a {
	case AbilityAnnihilation:
		return "annihilation"
	case AbilityInvulnerability:
		return "invulnerability"
	case AbilityTimeStop:
		return "time_stop"
	case AbilityInvisibility:
		return "invisibility"
	case AbilityEndGame:
		return "end_game"
	}
	return fmt.Sprintf("ability(%d)", int(a))
}

func ParseAbility(s string) (Ability, error) {
	for a := AbilityAnnihilation; a <= AbilityEndGame; a++ {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, nil
		}
	}
	return AbilityAnnihilation, fmt.Errorf("combat: unknown ability %q", s)
}

// AbilitySpec is the tuning for one ability.
type AbilitySpec struct {
	Duration float64
	Cooldown float64
	Radius   float64
	Damage   int
}

// AbilityBook tracks unlocks and cooldowns. Timed abilities unlock one per
// UnlockInterval in UnlockOrder; EndGame unlocks on its own at EndGameAt
// and can be used once.
type AbilityBook struct {
	UnlockInterval float64
	UnlockOrder    []Ability
	EndGameAt      float64
	Specs          map[Ability]AbilitySpec

	unlocked    []Ability
	sinceUnlock float64
	lastUsed    map[Ability]float64
	endGameUsed bool
}

// DefaultAbilityBook returns the stock unlock schedule.
func DefaultAbilityBook() *AbilityBook {
	return &AbilityBook{
		UnlockInterval: 120,
		UnlockOrder:    []Ability{AbilityAnnihilation, AbilityInvulnerability, AbilityTimeStop, AbilityInvisibility},
		EndGameAt:      600,
		Specs: map[Ability]AbilitySpec{
			AbilityAnnihilation:    {Cooldown: 600, Radius: 20, Damage: 9999},
			AbilityInvulnerability: {Duration: 20, Cooldown: 120},
			AbilityTimeStop:        {Duration: 10, Cooldown: 60},
			AbilityInvisibility:    {Duration: 30, Cooldown: 30},
		},
	}
}

// Advance moves the unlock clock and returns abilities unlocked by it.
func (b *AbilityBook) Advance(dt, elapsed float64) []Ability {
	var out []Ability
	if len(b.unlocked) < len(b.UnlockOrder) && b.UnlockInterval > 0 {
		b.sinceUnlock += dt
		if b.sinceUnlock >= b.UnlockInterval {
			b.sinceUnlock = 0
			next := b.UnlockOrder[len(b.unlocked)]
			b.unlocked = append(b.unlocked, next)
			out = append(out, next)
		}
	}
	if b.EndGameAt > 0 && elapsed >= b.EndGameAt && !b.has(AbilityEndGame) {
		b.unlocked = append(b.unlocked, AbilityEndGame)
		out = append(out, AbilityEndGame)
	}
	return out
}

func (b *AbilityBook) has(a Ability) bool {
	for _, u := range b.unlocked {
		if u == a {
			return true
		}
	}
	return false
}

// Unlocked returns a copy of the unlocked abilities in unlock order.
func (b *AbilityBook) Unlocked() []Ability {
	return append([]Ability(nil), b.unlocked...)
}

// Use checks unlock and cooldown and records the use at now.
func (b *AbilityBook) Use(a Ability, now float64) (AbilitySpec, error) {
	if !b.has(a) {
		return AbilitySpec{}, fmt.Errorf("%w: %s", ErrAbilityLocked, a)
	}
	if a == AbilityEndGame {
		if b.endGameUsed {
			return AbilitySpec{}, fmt.Errorf("%w: %s", ErrAbilityCooldown, a)
		}
		b.endGameUsed = true
		return AbilitySpec{}, nil
	}
	spec := b.Specs[a]
	if last, ok := b.lastUsed[a]; ok && now < last+spec.Cooldown {
		return AbilitySpec{}, fmt.Errorf("%w: %s ready in %.0fs", ErrAbilityCooldown, a, last+spec.Cooldown-now)
	}
	if b.lastUsed == nil {
		b.lastUsed = make(map[Ability]float64)
	}
	b.lastUsed[a] = now
	return spec, nil
}

// Reset forgets unlocks and cooldowns.
func (b *AbilityBook) Reset() {
	b.unlocked = nil
	b.sinceUnlock = 0
	b.lastUsed = nil
	b.endGameUsed = false
}

// BuffGate lets one support buff run at a time with a shared cooldown.
type BuffGate struct {
	Cooldown float64
	Duration float64

	lastUsed float64
	used     bool
	activeTo float64
	active   SupportEffect
}

// Try reserves the gate for effect at now.
func (g *BuffGate) Try(effect SupportEffect, now float64) error {
	if g.used && now < g.lastUsed+g.Cooldown {
		return ErrSupportCooldown
	}
	if g.used && now < g.activeTo {
		return fmt.Errorf("%w: %s", ErrBuffActive, g.active)
	}
	g.used = true
	g.lastUsed = now
	g.activeTo = now + g.Duration
	g.active = effect
	return nil
}
