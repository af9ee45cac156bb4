package combat

// Health tracks hit points for anything that can take damage.
//
// Death is a one-way latch: the first hit that brings Current to zero or
// below sets Dead and fires OnDeath. Later damage is ignored.
type Health struct {
	Max          int
	Current      int
	Dead         bool
	Invulnerable bool

	OnDamage func(h *Health, evt DamageEvent)
	OnDeath  func(h *Health, evt DamageEvent)
}

// NewHealth creates a Health at full hit points.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the owner can still act.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount, flooring health at zero. It reports whether
// damage was applied and whether this call caused the death.
func (h *Health) ApplyDamage(amount int, evt DamageEvent) (applied, died bool) {
	if h == nil || h.Dead || h.Invulnerable || amount <= 0 {
		return false, false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	evt.Amount = amount
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
		return true, true
	}
	return true, false
}

// Heal restores health up to Max. The dead stay dead.
func (h *Health) Heal(amount int) int {
	if h == nil || h.Dead || amount <= 0 {
		return 0
	}
	before := h.Current
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

// Fraction returns Current/Max in [0,1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// DamageEvent describes one application of damage.
type DamageEvent struct {
	Source uint64
	Target uint64
	Amount int
	Kind   DamageKind
	Cause  string
}
