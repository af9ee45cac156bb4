package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burstPattern() *combat.AttackPattern {
	p := combat.DefaultAttackPattern()
	p.Kind = combat.PatternBurst
	p.ProjectileCount = 5
	p.Projectile = "bolt"
	return &p
}

func TestEnemyPrefersHeroInSameTick(t *testing.T) {
	h := newHarness()
	e, _ := h.enemy(t, cp.Vector{}, combat.MoveStationary)
	player := h.body(t, cp.Vector{X: 2}, combat.TagPlayer, 5)
	hero := h.body(t, cp.Vector{X: 3}, combat.TagHero, 10)
	s := h.scheduler(NewEnemySystem(h.ctx))

	s.Step(h.w, 0.1)
	assert.Equal(t, hero.Ref(), currentTarget(t, h.w, e))

	d, _ := ecs.Get(h.w, e, component.DetectionComponent.Kind())
	assert.Equal(t, player.Ref(), d.Targets.Remembered())
}

func TestEnemyTargetTiers(t *testing.T) {
	h := newHarness()
	e, _ := h.enemy(t, cp.Vector{}, combat.MoveStationary)
	player := h.body(t, cp.Vector{X: 2}, combat.TagPlayer, 5)
	s := h.scheduler(NewEnemySystem(h.ctx))

	s.Step(h.w, 0.1)
	require.Equal(t, player.Ref(), currentTarget(t, h.w, e))

	hero := h.body(t, cp.Vector{X: 3}, combat.TagHero, 10)
	s.Step(h.w, 0.1)
	require.Equal(t, hero.Ref(), currentTarget(t, h.w, e), "hero displaces player")

	ht, _ := ecs.Get(h.w, hero, component.TransformComponent.Kind())
	ht.Position = cp.Vector{X: 40}
	s.Step(h.w, 0.1)
	assert.Equal(t, player.Ref(), currentTarget(t, h.w, e), "remembered player reacquired")
}

func TestInvisibleHeroIsIgnoredByEnemies(t *testing.T) {
	h := newHarness()
	e, _ := h.enemy(t, cp.Vector{}, combat.MoveStationary)
	heroEnt, hero := h.hero(t, cp.Vector{X: 3})
	hero.InvisibleUntil = 5
	s := h.scheduler(NewEnemySystem(h.ctx))

	s.Step(h.w, 0.1)
	assert.Zero(t, currentTarget(t, h.w, e))

	s.Step(h.w, 5)
	assert.Equal(t, heroEnt.Ref(), currentTarget(t, h.w, e))
}

func TestEnemyDeathIsIdempotent(t *testing.T) {
	h := newHarness()
	e, _ := h.enemy(t, cp.Vector{}, combat.MoveStationary)
	h.scheduler().Step(h.w, 0.1)
	require.True(t, h.pw.Registered(e))

	assert.False(t, DamageEnemy(h.ctx, h.w, e, 1, combat.DamageEvent{}))
	assert.True(t, DamageEnemy(h.ctx, h.w, e, 5, combat.DamageEvent{}))
	assert.False(t, DamageEnemy(h.ctx, h.w, e, 5, combat.DamageEvent{}))

	assert.False(t, ecs.IsAlive(h.w, e))
	assert.False(t, h.pw.Registered(e))
	assert.Equal(t, 1, h.cues.Count(CueEnemyDeath))
	assert.Len(t, eventsOf(h.w, EventEnemyDied), 1)
}

func TestEnemyMovementModes(t *testing.T) {
	cases := []struct {
		name   string
		mode   combat.MovementMode
		target cp.Vector
		want   *cp.Vector
	}{
		{"chase", combat.MoveChase, cp.Vector{X: 2}, &cp.Vector{X: 2}},
		{"chase_out_of_range", combat.MoveChase, cp.Vector{X: 12}, nil},
		{"keep_distance_retreats", combat.MoveKeepDistance, cp.Vector{X: 2}, &cp.Vector{X: -2}},
		{"keep_distance_holds", combat.MoveKeepDistance, cp.Vector{X: 5}, nil},
		{"keep_distance_advances", combat.MoveKeepDistance, cp.Vector{X: 7}, &cp.Vector{X: 7}},
		{"orbit", combat.MoveOrbit, cp.Vector{X: 2}, &cp.Vector{X: 2, Y: 4}},
		{"stationary", combat.MoveStationary, cp.Vector{X: 2}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness()
			e, en := h.enemy(t, cp.Vector{}, c.mode)
			d, _ := ecs.Get(h.w, e, component.DetectionComponent.Kind())
			d.Radius = 20
			en.Stats.AttackRange = 6
			h.body(t, c.target, combat.TagHero, 10)

			h.scheduler(NewEnemySystem(h.ctx)).Step(h.w, 0.1)

			got, moving := h.nav.moves[e]
			if c.want == nil {
				assert.False(t, moving, "unexpected move to %v", got)
				return
			}
			require.True(t, moving)
			assert.InDelta(t, c.want.X, got.X, 1e-9)
			assert.InDelta(t, c.want.Y, got.Y, 1e-9)
		})
	}
}

func TestEnemyRetreatHaltsWithoutWalkableGround(t *testing.T) {
	h := newHarness()
	h.nav.noWalk = true
	e, _ := h.enemy(t, cp.Vector{}, combat.MoveKeepDistance)
	h.body(t, cp.Vector{X: 2}, combat.TagHero, 10)

	h.scheduler(NewEnemySystem(h.ctx)).Step(h.w, 0.1)

	_, moving := h.nav.moves[e]
	assert.False(t, moving)
	assert.Equal(t, 1, h.nav.stops[e])
}

func TestEnemyWanderStaysNearOrigin(t *testing.T) {
	h := newHarness()
	origin := cp.Vector{X: 10, Y: 10}
	e, en := h.enemy(t, origin, combat.MoveWander)
	s := h.scheduler(NewEnemySystem(h.ctx))

	s.Step(h.w, 0.1)
	require.True(t, en.HasWanderTarget)
	first := en.WanderTarget
	assert.LessOrEqual(t, first.Distance(origin), en.WanderRadius)

	delete(h.nav.moves, e)
	s.Step(h.w, 0.1)
	s.Step(h.w, 0.5)
	require.True(t, en.HasWanderTarget)
	assert.NotEqual(t, first, en.WanderTarget, "arrival rolls a new point")
}

func TestEnemyBurstStopsWhenTargetDies(t *testing.T) {
	h := newHarness()
	_, en := h.enemy(t, cp.Vector{}, combat.MoveStationary, burstPattern())
	hero := h.body(t, cp.Vector{X: 3}, combat.TagHero, 10)
	s := h.scheduler(NewEnemySystem(h.ctx))

	s.Step(h.w, 0.05)
	require.Len(t, h.spawner.spawned, 1, "first shot fires immediately")
	require.True(t, en.Activity.Busy())

	s.Step(h.w, 0.1)
	require.Len(t, h.spawner.spawned, 2)

	ecs.DestroyEntity(h.w, hero)
	for i := 0; i < 5; i++ {
		s.Step(h.w, 0.1)
	}
	assert.Len(t, h.spawner.spawned, 2)
	assert.False(t, en.Activity.Busy())
	assert.Equal(t, 0, en.PatternIndex)
}

func TestEnemyFiresProjectilesAtPatternSpeed(t *testing.T) {
	single := combat.DefaultAttackPattern()
	single.Projectile = "bolt"
	circle := combat.DefaultAttackPattern()
	circle.Kind = combat.PatternCircle
	circle.Projectile = "orb"
	circle.Cooldown = 0.1

	h := newHarness()
	_, en := h.enemy(t, cp.Vector{}, combat.MoveStationary, &single, &circle)
	h.body(t, cp.Vector{X: 3}, combat.TagHero, 10)
	s := h.scheduler(NewEnemySystem(h.ctx))

	s.Step(h.w, 0.1)
	require.Equal(t, []string{"bolt"}, h.spawner.spawned)
	assert.Equal(t, 1, en.PatternIndex)
	assert.InDelta(t, 2, en.AttackTimer, 1e-9)

	proj, ok := ecs.Get(h.w, h.spawner.ents[0], component.ProjectileComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 5, proj.Velocity.Length(), 1e-9)
	assert.InDelta(t, 0, proj.Velocity.Y, 1e-9)
	assert.True(t, proj.Hits.Has(combat.TagHero))
	assert.True(t, proj.Hits.Has(combat.TagPlayer))

	s.Step(h.w, 2)
	assert.Len(t, h.spawner.spawned, 9, "circle fires its whole ring at once")
	assert.Equal(t, 0, en.PatternIndex)
}

func TestEnemySkipsUnusablePatternButKeepsCycle(t *testing.T) {
	empty := combat.DefaultAttackPattern()
	empty.Cooldown = 0.5
	h := newHarness()
	_, en := h.enemy(t, cp.Vector{}, combat.MoveStationary, &empty)
	h.body(t, cp.Vector{X: 3}, combat.TagHero, 10)

	h.scheduler(NewEnemySystem(h.ctx)).Step(h.w, 0.1)

	assert.Empty(t, h.spawner.spawned)
	assert.InDelta(t, 0.5, en.AttackTimer, 1e-9)
}

func TestEnemyFrozenByTimeStop(t *testing.T) {
	h := newHarness()
	_, en := h.enemy(t, cp.Vector{}, combat.MoveStationary, burstPattern())
	h.body(t, cp.Vector{X: 3}, combat.TagHero, 10)
	s := h.scheduler(NewEnemySystem(h.ctx))

	h.w.SetPaused(true)
	s.Step(h.w, 0.5)
	assert.Empty(t, h.spawner.spawned)
	assert.False(t, en.Activity.Busy())

	h.w.SetPaused(false)
	s.Step(h.w, 0.1)
	assert.Len(t, h.spawner.spawned, 1)
}
