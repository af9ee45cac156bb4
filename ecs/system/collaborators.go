package system

import (
	"errors"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

var ErrNoSpawner = errors.New("system: no spawner configured")

// SpatialIndex answers radius queries against registered bodies.
type SpatialIndex interface {
	QueryRadius(center cp.Vector, radius float64, mask uint) []ecs.Entity
}

// Navigator moves agents over walkable ground.
type Navigator interface {
	RequestMoveTo(e ecs.Entity, p cp.Vector) bool
	Stop(e ecs.Entity)
	IsPathComplete(e ecs.Entity) bool
	SampleNearestWalkable(p cp.Vector, maxDistance float64) (cp.Vector, bool)
}

// Spawner instantiates prefabs into the world.
type Spawner interface {
	Spawn(prefab string, pos cp.Vector) (ecs.Entity, error)
}

// VelocitySource reports how fast an entity is moving.
type VelocitySource interface {
	Velocity(e ecs.Entity) (cp.Vector, bool)
}

// CuePlayer plays fire-and-forget audio or visual cues.
type CuePlayer interface {
	PlayCue(name string, e ecs.Entity)
}

// Context carries the collaborators shared by the combat systems.
type Context struct {
	Log      *slog.Logger
	RNG      common.RNG
	Space    SpatialIndex
	Nav      Navigator
	Spawner  Spawner
	Velocity VelocitySource
	Cues     CuePlayer
}

func (c *Context) logger() *slog.Logger {
	if c == nil || c.Log == nil {
		return common.Logger
	}
	return c.Log
}

func (c *Context) cue(name string, e ecs.Entity) {
	if c == nil || c.Cues == nil {
		return
	}
	c.Cues.PlayCue(name, e)
}

func (c *Context) query(center cp.Vector, radius float64, mask combat.Tag) []ecs.Entity {
	if c == nil || c.Space == nil || radius <= 0 {
		return nil
	}
	return c.Space.QueryRadius(center, radius, uint(mask))
}

// MotionVelocity reads velocities from the Motion component.
type MotionVelocity struct {
	World *ecs.World
}

func (m MotionVelocity) Velocity(e ecs.Entity) (cp.Vector, bool) {
	motion, ok := ecs.Get(m.World, e, component.MotionComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return motion.Velocity, true
}

// aliveFunc reports whether a handle refers to a live entity that has not
// died yet.
func aliveFunc(w *ecs.World) combat.AliveFunc {
	return func(id uint64) bool {
		if !ecs.IsAliveRef(w, id) {
			return false
		}
		if h, ok := ecs.Get(w, ecs.Entity(id), component.HealthComponent.Kind()); ok && h.Dead {
			return false
		}
		return true
	}
}

func position(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return t.Position, true
}

func tagsOf(w *ecs.World, e ecs.Entity) combat.Tag {
	t, ok := ecs.Get(w, e, component.TagsComponent.Kind())
	if !ok {
		return combat.TagNone
	}
	return t.Mask
}

// removeBody takes e out of spatial queries immediately.
func removeBody(w *ecs.World, e ecs.Entity) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Enabled = false
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.Unregister(e)
	}
}
