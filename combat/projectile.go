package combat

import "github.com/jakecoffman/cp"

// Projectile is a moving hazard fired by an attack pattern.
type Projectile struct {
	Position     cp.Vector
	Velocity     cp.Vector
	Damage       int
	Remaining    float64
	DestroyOnHit bool
	DamageKind   DamageKind
	Radius       float64

	// Hits is the set of tags the projectile damages. Walls always stop it.
	Hits  Tag
	Owner uint64

	hit map[uint64]bool
}

// NewProjectile launches a projectile from origin along dir using the
// pattern's speed, damage and lifetime. dir need not be normalized; a zero
// dir launches along +X.
func NewProjectile(origin, dir cp.Vector, p *AttackPattern, hits Tag) Projectile {
	if dir.LengthSq() == 0 {
		dir = cp.Vector{X: 1}
	}
	lifetime := p.Lifetime
	if lifetime <= 0 {
		lifetime = DefaultAttackPattern().Lifetime
	}
	return Projectile{
		Position:     origin,
		Velocity:     dir.Normalize().Mult(p.ProjectileSpeed),
		Damage:       p.Damage,
		Remaining:    lifetime,
		DestroyOnHit: p.DestroyOnHit,
		DamageKind:   p.DamageKind,
		Hits:         hits,
	}
}

// Advance moves the projectile and burns lifetime. It reports true once the
// projectile has expired.
func (p *Projectile) Advance(dt float64) bool {
	p.Remaining -= dt
	if p.Remaining <= 0 {
		return true
	}
	p.Position = p.Position.Add(p.Velocity.Mult(dt))
	return false
}

// MarkHit records a damaged target and reports false if it was already hit.
// Piercing projectiles use it to damage each target once.
func (p *Projectile) MarkHit(id uint64) bool {
	if p.hit == nil {
		p.hit = make(map[uint64]bool)
	}
	if p.hit[id] {
		return false
	}
	p.hit[id] = true
	return true
}
