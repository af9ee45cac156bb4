package arena

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/ecs/system"
	"github.com/milk9111/vanguard/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func newTestArena(t *testing.T, opts Options) *Arena {
	t.Helper()
	opts.Log = common.DiscardLogger()
	if opts.Cues == nil {
		opts.Cues = &system.RecordingCues{}
	}
	a, err := New(opts)
	require.NoError(t, err)
	return a
}

func run(a *Arena, seconds float64) {
	for n := int(seconds / tick); n > 0; n-- {
		a.Step(tick)
	}
}

func TestNewBuildsCast(t *testing.T) {
	a := newTestArena(t, Options{Seed: 1})

	assert.True(t, a.HeroAlive())
	assert.True(t, ecs.Has(a.World, a.Player, component.PlayerComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(a.World, component.CameraComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(a.World, component.WaveDirectorComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(a.World, component.ArenaBoundsComponent.Kind()))
	assert.Len(t, a.Physics.Walls(), 5, "four border walls plus one authored wall")

	assert.Equal(t, "normal", a.Difficulty.Name)
	assert.Equal(t, 150, a.Director.Config.MaxAlive)
	assert.False(t, a.Grid.Walkable(cp.Vector{X: -7, Y: 4}), "obstacle blocks the grid")
	assert.True(t, a.Grid.Walkable(cp.Vector{}))
}

func TestSystemOrder(t *testing.T) {
	systems := Systems(&system.Context{})
	require.Len(t, systems, 10)
	assert.IsType(t, &system.SpatialSyncSystem{}, systems[0])
	assert.IsType(t, &system.DetectionSystem{}, systems[1])
	assert.IsType(t, &system.HeroSystem{}, systems[2])
	assert.IsType(t, &system.EnemySystem{}, systems[3])
	assert.IsType(t, &system.CameraSystem{}, systems[9])
}

func TestFirstWaveSpawnsFodder(t *testing.T) {
	a := newTestArena(t, Options{Seed: 7})
	run(a, 2.5)

	require.Equal(t, 1, a.Stats.Waves)
	assert.GreaterOrEqual(t, a.Stats.Spawned, 3)
	assert.Equal(t, []string{"fodder"}, a.Stats.LastWave.Types)

	enemies := 0
	ecs.ForEach(a.World, component.NameComponent.Kind(), func(_ ecs.Entity, n *component.Name) {
		if n.Prefab == "enemy_grunt.yaml" {
			enemies++
		}
	})
	assert.Positive(t, enemies)
	assert.LessOrEqual(t, enemies, a.Stats.Spawned)
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestArena(t, Options{Seed: 42})
	b := newTestArena(t, Options{Seed: 42})
	run(a, 10)
	run(b, 10)

	assert.Equal(t, a.Stats.Waves, b.Stats.Waves)
	assert.Equal(t, a.Stats.Spawned, b.Stats.Spawned)
	assert.Equal(t, a.Stats.Kills, b.Stats.Kills)
	assert.Equal(t, a.Director.CurrentAlive(), b.Director.CurrentAlive())
}

func TestDifficultyOverride(t *testing.T) {
	a := newTestArena(t, Options{Difficulty: "hard"})
	assert.Equal(t, "hard", a.Difficulty.Name)
	assert.Equal(t, 200, a.Director.Config.MaxAlive)
	assert.Equal(t, 1.5, a.Director.Config.BaseInterval)

	_, err := New(Options{Difficulty: "impossible", Log: common.DiscardLogger()})
	assert.Error(t, err)
}

func TestSetDifficulty(t *testing.T) {
	a := newTestArena(t, Options{})
	require.NoError(t, a.SetDifficulty("hard"))
	assert.Equal(t, "hard", a.Difficulty.Name)
	assert.Equal(t, 200, a.Director.Config.MaxAlive)

	world := a.World
	assert.Error(t, a.SetDifficulty("impossible"))
	assert.Equal(t, "hard", a.Difficulty.Name)
	assert.Same(t, world, a.World)

	require.NoError(t, a.Reset())
	assert.Equal(t, "hard", a.Difficulty.Name, "reset keeps the chosen preset")
}

func TestResetRebuildsWorld(t *testing.T) {
	a := newTestArena(t, Options{Seed: 3})
	run(a, 3)
	require.NotZero(t, a.Stats.Spawned)
	old := a.World

	require.NoError(t, a.Reset())
	assert.NotSame(t, old, a.World)
	assert.Zero(t, a.Stats)
	assert.Zero(t, a.Director.Elapsed)
	assert.Zero(t, a.Director.CurrentAlive())
	assert.Equal(t, 1, ecs.Count(a.World, component.HeroComponent.Kind()))
}

func TestApplyWaveChangeKeepsClock(t *testing.T) {
	a := newTestArena(t, Options{Seed: 5})
	run(a, 3)
	elapsed := a.Director.Elapsed
	alive := a.Director.CurrentAlive()
	oldTable := a.Director.Table

	require.NoError(t, a.Apply(prefabs.Change{Name: "waves.yaml", Kind: prefabs.ChangeSpec}))
	assert.NotSame(t, oldTable, a.Director.Table)
	assert.Equal(t, elapsed, a.Director.Elapsed)
	assert.Equal(t, alive, a.Director.CurrentAlive())

	require.NoError(t, a.Apply(prefabs.Change{Name: "scripts/swarm_growth.tengo", Kind: prefabs.ChangeScript}))
	assert.Equal(t, elapsed, a.Director.Elapsed)
}

func TestApplyPrefabChangeKeepsWorld(t *testing.T) {
	a := newTestArena(t, Options{})
	world := a.World
	require.NoError(t, a.Apply(prefabs.Change{Name: "enemy_grunt.yaml", Kind: prefabs.ChangeSpec}))
	assert.Same(t, world, a.World)

	require.NoError(t, a.Apply(prefabs.Change{Name: "arena.yaml", Kind: prefabs.ChangeSpec}))
	assert.NotSame(t, world, a.World)
}

func TestRequestReachesSupportSystem(t *testing.T) {
	a := newTestArena(t, Options{})
	require.NoError(t, a.Request(component.SupportRequest{
		Action:  component.ActionAbility,
		Ability: combat.AbilityTimeStop,
	}))
	require.NoError(t, a.Request(component.SupportRequest{
		Action: component.ActionBuff,
		Effect: combat.EffectBuffDamage,
	}))
	a.Step(tick)

	assert.Equal(t, 1, a.Stats.Denied, "time stop is still locked")
	assert.Equal(t, 1, a.Stats.Buffs)
	assert.False(t, a.World.Paused())
}
