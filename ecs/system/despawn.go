package system

import (
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

// DespawnSystem counts down Despawn timers and destroys expired entities.
type DespawnSystem struct{}

func NewDespawnSystem() *DespawnSystem {
	return &DespawnSystem{}
}

func (s *DespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.DespawnComponent.Kind(), func(e ecs.Entity, d *component.Despawn) {
		d.Remaining -= dt
		if d.Remaining > 0 {
			return
		}
		ecs.DestroyEntity(w, e)
	})
}
