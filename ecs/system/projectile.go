package system

import (
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

const defaultProjectileRadius = 0.2

// ProjectileSystem flies projectiles, stops them at walls and applies
// their damage. It is frozen by time stop.
type ProjectileSystem struct {
	ctx *Context
}

func NewProjectileSystem(ctx *Context) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx}
}

func (s *ProjectileSystem) Pausable() bool { return true }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *combat.Projectile, t *component.Transform) {
		prev := p.Position
		if p.Advance(dt) {
			ecs.DestroyEntity(w, e)
			return
		}
		t.Position = p.Position

		if pw.SegmentBlocked(prev, p.Position, uint(combat.TagWall)) {
			ecs.DestroyEntity(w, e)
			return
		}

		radius := p.Radius
		if radius <= 0 {
			radius = defaultProjectileRadius
		}
		for _, hit := range s.ctx.query(p.Position, radius, p.Hits) {
			tags := tagsOf(w, hit)
			if hit.Ref() == p.Owner || !tags.Has(p.Hits) || !p.MarkHit(hit.Ref()) {
				continue
			}

			evt := combat.DamageEvent{Source: p.Owner, Kind: p.DamageKind, Cause: "projectile"}
			if tags.Has(combat.TagHero) {
				DamageHero(s.ctx, w, hit, p.Damage, evt)
			} else {
				DamagePlayer(w, hit, p.Damage, evt)
			}
			if p.DestroyOnHit {
				ecs.DestroyEntity(w, e)
				return
			}
		}
	})
}
