package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/waves"
)

// WaveSpawnSystem ticks the arena's wave director against the live world.
// It is frozen by time stop.
type WaveSpawnSystem struct {
	ctx *Context
}

func NewWaveSpawnSystem(ctx *Context) *WaveSpawnSystem {
	return &WaveSpawnSystem{ctx: ctx}
}

func (s *WaveSpawnSystem) Pausable() bool { return true }

func (s *WaveSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, ok := ecs.First(w, component.WaveDirectorComponent.Kind())
	if !ok {
		return
	}
	wd, _ := ecs.Get(w, e, component.WaveDirectorComponent.Kind())
	if wd.Director == nil {
		return
	}

	env := waves.Env{
		RNG:   s.ctx.RNG,
		Alive: aliveFunc(w),
		Spawn: s.spawn,
	}
	if cam, ok := firstCamera(w); ok {
		env.Camera = common.RectAround(cam.Center, cam.Width, cam.Height)
	}
	env.Hero, env.HasHero = heroPosition(w)

	report := wd.Director.Tick(w.Delta(), env)
	if report == nil {
		return
	}
	push(w, EventWaveSpawned, *report)
	if report.Spawned > 0 {
		s.ctx.logger().Debug("wave spawned", "wave", report.ID, "types", report.Types, "count", report.Spawned, "alive", wd.Director.CurrentAlive())
	}
}

func (s *WaveSpawnSystem) spawn(a *waves.Archetype, pos cp.Vector) (uint64, error) {
	if s.ctx.Spawner == nil {
		return 0, ErrNoSpawner
	}
	e, err := s.ctx.Spawner.Spawn(a.Prefab, pos)
	if err != nil {
		return 0, err
	}
	return e.Ref(), nil
}

func firstCamera(w *ecs.World) (*component.Camera, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.CameraComponent.Kind())
}

// heroPosition returns where the first living hero stands.
func heroPosition(w *ecs.World) (cp.Vector, bool) {
	e, ok := findHero(w)
	if !ok {
		return cp.Vector{}, false
	}
	return position(w, e)
}

func findHero(w *ecs.World) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.HeroComponent.Kind(), func(e ecs.Entity, hero *component.Hero) {
		if found == 0 && hero.State != component.HeroDying {
			found = e
		}
	})
	return found, found != 0
}
