package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

// build adds components to one new entity. The first failure is kept and
// later adds are skipped; done destroys the half-built entity on failure.
type build struct {
	w    *ecs.World
	e    ecs.Entity
	what string
	err  error
}

func newBuild(w *ecs.World, what string) *build {
	return &build{w: w, e: ecs.CreateEntity(w), what: what}
}

func add[T any](b *build, label string, kind component.ComponentKind[T], v *T) {
	if b.err != nil {
		return
	}
	if err := ecs.Add(b.w, b.e, kind, v); err != nil {
		b.err = fmt.Errorf("%s: add %s: %w", b.what, label, err)
	}
}

func (b *build) done() (ecs.Entity, error) {
	if b.err != nil {
		ecs.DestroyEntity(b.w, b.e)
		return 0, b.err
	}
	return b.e, nil
}

// body adds what every combatant carries: placement, tags, a spatial body,
// observed motion and health.
func (b *build) body(prefab string, pos cp.Vector, tags combat.Tag, radius float64, health int) {
	add(b, "transform", component.TransformComponent.Kind(), &component.Transform{Position: pos, Facing: 1})
	add(b, "tags", component.TagsComponent.Kind(), &component.Tags{Mask: tags})
	add(b, "name", component.NameComponent.Kind(), &component.Name{Prefab: prefab})
	add(b, "physics body", component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: radius, Enabled: true})
	add(b, "motion", component.MotionComponent.Kind(), &component.Motion{})
	add(b, "health", component.HealthComponent.Kind(), combat.NewHealth(health))
}
