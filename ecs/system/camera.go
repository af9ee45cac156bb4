package system

import (
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

// CameraSystem eases each camera toward its target, or the hero when it
// has none.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		target := ecs.Entity(cam.Target)
		if !ecs.IsAlive(w, target) {
			hero, ok := findHero(w)
			if !ok {
				return
			}
			target = hero
		}
		pos, ok := position(w, target)
		if !ok {
			return
		}
		if cam.Smoothness <= 0 {
			cam.Center = pos
			return
		}
		cam.Center = cam.Center.Lerp(pos, common.Clamp01(cam.Smoothness*dt))
	})
}
