package combat

import (
	"errors"
	"testing"
)

func TestHealZonesGrade(t *testing.T) {
	z := DefaultHealZones()
	cases := []struct {
		pos  float64
		want string
	}{
		{0.5, "perfect"},
		{0.51, "perfect"},
		{0.53, "good"},
		{0.58, "okay"},
		{0.25, "meh"},
		{0.9, "miss"},
	}
	for _, c := range cases {
		if got := z.Grade(c.pos); got.Name != c.want {
			t.Fatalf("Grade(%v) = %s, want %s", c.pos, got.Name, c.want)
		}
	}
}

func TestHealBarBounces(t *testing.T) {
	b := HealBar{Speed: 1, Traverse: 1}
	b.Start()
	b.Step(0.5)
	b.Step(0.75)
	if b.Position != 1 {
		t.Fatalf("bar should clamp at the end, at %v", b.Position)
	}
	b.Step(0.25)
	if b.Position > 0.76 || b.Position < 0.74 {
		t.Fatalf("bar should be coming back, at %v", b.Position)
	}
}

func TestAbilityBookUnlocksInOrder(t *testing.T) {
	b := DefaultAbilityBook()
	if _, err := b.Use(AbilityAnnihilation, 0); !errors.Is(err, ErrAbilityLocked) {
		t.Fatalf("expected locked, got %v", err)
	}

	elapsed := 0.0
	for elapsed < 241 {
		elapsed += 1
		b.Advance(1, elapsed)
	}
	got := b.Unlocked()
	if len(got) != 2 || got[0] != AbilityAnnihilation || got[1] != AbilityInvulnerability {
		t.Fatalf("unexpected unlocks %v", got)
	}

	if _, err := b.Use(AbilityInvulnerability, 241); err != nil {
		t.Fatalf("use: %v", err)
	}
	if _, err := b.Use(AbilityInvulnerability, 300); !errors.Is(err, ErrAbilityCooldown) {
		t.Fatalf("expected cooldown, got %v", err)
	}
	if _, err := b.Use(AbilityInvulnerability, 361); err != nil {
		t.Fatalf("cooldown should have passed: %v", err)
	}
}

func TestBuffGateOneAtATime(t *testing.T) {
	g := BuffGate{Cooldown: 5, Duration: 10}
	if err := g.Try(EffectBuffDamage, 0); err != nil {
		t.Fatalf("first buff: %v", err)
	}
	if err := g.Try(EffectBuffDefense, 3); !errors.Is(err, ErrSupportCooldown) {
		t.Fatalf("expected cooldown, got %v", err)
	}
	if err := g.Try(EffectBuffDefense, 6); !errors.Is(err, ErrBuffActive) {
		t.Fatalf("expected active buff, got %v", err)
	}
	if err := g.Try(EffectBuffDefense, 10.5); err != nil {
		t.Fatalf("buff after expiry: %v", err)
	}
}
