package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/prefabs"
)

// NewProjectile builds an unlaunched projectile shell. The firing enemy
// fills in velocity, damage and owner.
func NewProjectile(w *ecs.World, prefab string, spec prefabs.ProjectileSpec, pos cp.Vector) (ecs.Entity, error) {
	b := newBuild(w, "projectile")
	add(b, "transform", component.TransformComponent.Kind(), &component.Transform{Position: pos, Facing: 1})
	add(b, "tags", component.TagsComponent.Kind(), &component.Tags{Mask: combat.TagProjectile})
	add(b, "name", component.NameComponent.Kind(), &component.Name{Prefab: prefab})
	add(b, "projectile", component.ProjectileComponent.Kind(), &combat.Projectile{Position: pos, Radius: spec.Radius})
	return b.done()
}
