package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/stretchr/testify/require"
)

type fakeNav struct {
	moves  map[ecs.Entity]cp.Vector
	stops  map[ecs.Entity]int
	noWalk bool
}

func newFakeNav() *fakeNav {
	return &fakeNav{moves: map[ecs.Entity]cp.Vector{}, stops: map[ecs.Entity]int{}}
}

func (n *fakeNav) RequestMoveTo(e ecs.Entity, p cp.Vector) bool {
	n.moves[e] = p
	return true
}

func (n *fakeNav) Stop(e ecs.Entity) {
	delete(n.moves, e)
	n.stops[e]++
}

func (n *fakeNav) IsPathComplete(e ecs.Entity) bool {
	_, moving := n.moves[e]
	return !moving
}

func (n *fakeNav) SampleNearestWalkable(p cp.Vector, _ float64) (cp.Vector, bool) {
	return p, !n.noWalk
}

type fakeSpawner struct {
	w       *ecs.World
	spawned []string
	ents    []ecs.Entity
}

func (s *fakeSpawner) Spawn(prefab string, pos cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(s.w)
	_ = ecs.Add(s.w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Facing: 1})
	_ = ecs.Add(s.w, e, component.TagsComponent.Kind(), &component.Tags{Mask: combat.TagProjectile})
	s.spawned = append(s.spawned, prefab)
	s.ents = append(s.ents, e)
	return e, nil
}

type harness struct {
	w       *ecs.World
	pw      *ecs.PhysicsWorld
	ctx     *Context
	nav     *fakeNav
	cues    *RecordingCues
	spawner *fakeSpawner
}

func newHarness() *harness {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)
	h := &harness{
		w:       w,
		pw:      pw,
		nav:     newFakeNav(),
		cues:    &RecordingCues{},
		spawner: &fakeSpawner{w: w},
	}
	h.ctx = &Context{
		Log:      common.DiscardLogger(),
		RNG:      common.NewRNG(1),
		Space:    pw,
		Nav:      h.nav,
		Spawner:  h.spawner,
		Velocity: MotionVelocity{World: w},
		Cues:     h.cues,
	}
	return h
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, kind, v))
}

func (h *harness) body(t *testing.T, pos cp.Vector, tags combat.Tag, health int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(h.w)
	mustAdd(t, h.w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Facing: 1})
	mustAdd(t, h.w, e, component.TagsComponent.Kind(), &component.Tags{Mask: tags})
	mustAdd(t, h.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.5, Enabled: true})
	mustAdd(t, h.w, e, component.HealthComponent.Kind(), combat.NewHealth(health))
	mustAdd(t, h.w, e, component.MotionComponent.Kind(), &component.Motion{})
	return e
}

func testHeroTuning() component.HeroTuning {
	return component.HeroTuning{
		NavSample:         1,
		MaxRoamDuration:   3,
		MinRoamDistance:   3,
		MaxRoamDistance:   9,
		RushOvershoot:     1.5,
		RushDuration:      0.2,
		RushCooldown:      1,
		RushDamage:        1,
		RushDamageRadius:  0.6,
		Whirl:             combat.MoveParams{Duration: 2.5, EntryTime: 0.4, Radius: 2.5, AngularSpeed: 360, TickInterval: 0.4},
		WhirlCooldown:     2,
		WhirlDamage:       1,
		WhirlDamageRadius: 0.8,
		DeathGrace:        1.5,
	}
}

func (h *harness) hero(t *testing.T, pos cp.Vector) (ecs.Entity, *component.Hero) {
	t.Helper()
	e := h.body(t, pos, combat.TagHero, 10)
	stats := combat.Stats{MoveSpeed: 3.5, DetectionRange: 10, AttackRange: 1.5, EngagementRange: 1.5}
	hero := component.NewHero(testHeroTuning(), stats, pos)
	mustAdd(t, h.w, e, component.HeroComponent.Kind(), hero)
	mustAdd(t, h.w, e, component.DetectionComponent.Kind(), &component.Detection{
		Radius:  10,
		Mask:    combat.TagEnemy,
		Policy:  component.PolicyNearest,
		Enabled: true,
	})
	mustAdd(t, h.w, e, component.NavAgentComponent.Kind(), &component.NavAgent{Speed: 3.5})
	return e, hero
}

func (h *harness) enemy(t *testing.T, pos cp.Vector, mode combat.MovementMode, patterns ...*combat.AttackPattern) (ecs.Entity, *component.Enemy) {
	t.Helper()
	e := h.body(t, pos, combat.TagEnemy, 3)
	en := &component.Enemy{
		Mode:               mode,
		Stats:              combat.Stats{MoveSpeed: 2, DetectionRange: 10, AttackRange: 6},
		WanderRadius:       5,
		OrbitRadius:        4,
		PathUpdateInterval: 0.5,
		Patterns:           patterns,
		Origin:             pos,
	}
	mustAdd(t, h.w, e, component.EnemyComponent.Kind(), en)
	mustAdd(t, h.w, e, component.DetectionComponent.Kind(), &component.Detection{
		Radius:   8,
		Mask:     combat.TagHero | combat.TagPlayer,
		Policy:   component.PolicyPriority,
		Priority: combat.EnemyPriority,
		Enabled:  true,
	})
	mustAdd(t, h.w, e, component.NavAgentComponent.Kind(), &component.NavAgent{Speed: 2})
	return e, en
}

func (h *harness) scheduler(systems ...ecs.System) *ecs.Scheduler {
	all := append([]ecs.System{NewSpatialSyncSystem(), NewDetectionSystem(h.ctx)}, systems...)
	return ecs.NewScheduler(all...)
}

func currentTarget(t *testing.T, w *ecs.World, e ecs.Entity) uint64 {
	t.Helper()
	d, ok := ecs.Get(w, e, component.DetectionComponent.Kind())
	require.True(t, ok)
	return d.Targets.Current()
}

func eventsOf(w *ecs.World, typ string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}
