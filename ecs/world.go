package ecs

import (
	"sort"

	"github.com/milk9111/vanguard/ecs/component"
)

var (
	ErrEntityNotAlive       = component.ErrEntityNotAlive
	ErrNilComponent         = component.ErrNilComponent
	ErrInvalidComponentKind = component.ErrInvalidComponentKind
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, their components, the event queue and the tick
// clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	now    float64
	dt     float64
	ticks  uint64
	paused bool

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components. Any spatial body it
// owns is dropped too. It returns false for a dead or stale handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	if w.physicsWorld != nil {
		w.physicsWorld.Unregister(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is current.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// IsAliveRef is IsAlive for the raw handles components store.
func IsAliveRef(w *World, ref uint64) bool {
	return IsAlive(w, Entity(ref))
}

// Entities lists live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// SortEntities orders a slice by slot id.
func SortEntities(ents []Entity) {
	sort.Slice(ents, func(i, j int) bool { return ents[i].Less(ents[j]) })
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues an event stamped with the current world time.
func (w *World) Emit(typ string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Time: w.now, Data: data})
}

// Now is the simulation time in seconds, advanced by the scheduler.
func (w *World) Now() float64 { return w.now }

// Delta is the length of the current tick.
func (w *World) Delta() float64 { return w.dt }

// SetPaused freezes every Pausable system until unpaused.
func (w *World) SetPaused(paused bool) { w.paused = paused }

func (w *World) Paused() bool { return w.paused }

// Ticks counts scheduler steps since the world was created.
func (w *World) Ticks() uint64 { return w.ticks }

func (w *World) advance(dt float64) {
	w.dt = dt
	w.now += dt
	w.ticks++
}

// SetPhysicsWorld attaches a spatial index to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached spatial index, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
