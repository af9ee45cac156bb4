package system

import (
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

// SpatialSyncSystem mirrors transforms into the physics world so radius
// queries see this tick's positions.
type SpatialSyncSystem struct{}

func NewSpatialSyncSystem() *SpatialSyncSystem {
	return &SpatialSyncSystem{}
}

func (s *SpatialSyncSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		switch {
		case !body.Enabled:
			pw.Unregister(e)
		case pw.Registered(e):
			pw.Move(e, t.Position)
		default:
			pw.Register(e, t.Position, body.Radius, uint(tagsOf(w, e)))
		}
	})
}
