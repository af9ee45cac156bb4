// Package arena assembles a playable world from prefabs: the spatial index,
// walkable grid, starting cast, wave director and the system schedule.
package arena

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/ecs/entity"
	"github.com/milk9111/vanguard/ecs/system"
	"github.com/milk9111/vanguard/nav"
	"github.com/milk9111/vanguard/prefabs"
	"github.com/milk9111/vanguard/waves"
)

var ErrNoPlayer = errors.New("arena: no support player")

const (
	borderWallRadius = 0.1
	// maxStep bounds one tick so projectiles cannot skip past walls.
	maxStep = 0.1
)

type Options struct {
	// Arena is the arena prefab; empty means arena.yaml.
	Arena string
	// Difficulty overrides the waves file's difficulty when set.
	Difficulty string
	Seed       int64
	Log        *slog.Logger
	Cues       system.CuePlayer
}

// Arena owns one running world and everything needed to tick it.
type Arena struct {
	Spec       prefabs.ArenaSpec
	Difficulty waves.Difficulty
	World      *ecs.World
	Physics    *ecs.PhysicsWorld
	Grid       *nav.Grid
	Context    *system.Context
	Factory    *entity.Factory
	Scheduler  *ecs.Scheduler
	Director   *waves.Director

	Hero   ecs.Entity
	Player ecs.Entity
	Camera ecs.Entity

	Stats Stats

	opts Options
	log  *slog.Logger
}

// New loads the arena prefab and builds its world.
func New(opts Options) (*Arena, error) {
	if opts.Arena == "" {
		opts.Arena = "arena.yaml"
	}
	if opts.Log == nil {
		opts.Log = common.Logger
	}
	if opts.Cues == nil {
		opts.Cues = system.LogCues{Log: opts.Log}
	}
	a := &Arena{opts: opts, log: opts.Log}
	if err := a.build(); err != nil {
		return nil, err
	}
	return a, nil
}

// Systems returns the tick order. Sensing runs before the brains, the
// brains before movement, and spawning after everything that can kill.
func Systems(ctx *system.Context) []ecs.System {
	return []ecs.System{
		system.NewSpatialSyncSystem(),
		system.NewDetectionSystem(ctx),
		system.NewHeroSystem(ctx),
		system.NewEnemySystem(ctx),
		system.NewProjectileSystem(ctx),
		system.NewNavigationSystem(),
		system.NewWaveSpawnSystem(ctx),
		system.NewSupportSystem(ctx),
		system.NewDespawnSystem(),
		system.NewCameraSystem(),
	}
}

func (a *Arena) build() error {
	spec, err := prefabs.LoadArenaSpec(a.opts.Arena)
	if err != nil {
		return err
	}
	a.Spec = spec

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	bounds := spec.Bounds.Rect()
	grid := nav.NewGrid(bounds, spec.CellSize)
	for _, r := range spec.Obstacles {
		grid.BlockRect(r.Rect())
	}

	a.World, a.Physics, a.Grid = w, pw, grid
	a.Factory = entity.NewFactory(w, a.log)
	a.Context = &system.Context{
		Log:      a.log,
		RNG:      common.NewRNG(a.opts.Seed),
		Space:    pw,
		Nav:      system.NewGridNavigator(w, grid),
		Spawner:  a.Factory,
		Velocity: system.MotionVelocity{World: w},
		Cues:     a.opts.Cues,
	}
	a.Scheduler = ecs.NewScheduler(Systems(a.Context)...)
	a.Scheduler.MaxDelta = maxStep
	a.Stats = Stats{}

	if _, err := entity.NewArenaBounds(w, bounds); err != nil {
		return err
	}
	if spec.BorderWalls {
		if err := entity.NewBorderWalls(w, bounds, borderWallRadius); err != nil {
			return err
		}
	}
	for _, ws := range spec.Walls {
		if _, err := entity.NewWall(w, vec(ws.A), vec(ws.B), ws.Radius); err != nil {
			return err
		}
	}

	heroPos := vec(spec.Hero.Position)
	if a.Hero, err = a.Factory.Spawn(spec.Hero.Prefab, heroPos); err != nil {
		return fmt.Errorf("arena: spawn hero: %w", err)
	}
	if a.Player, err = a.Factory.Spawn(spec.Player.Prefab, vec(spec.Player.Position)); err != nil {
		return fmt.Errorf("arena: spawn player: %w", err)
	}
	if a.Camera, err = entity.NewCamera(w, spec.Camera, heroPos, a.Hero); err != nil {
		return err
	}

	cfg, table, err := a.loadWaves()
	if err != nil {
		return err
	}
	director := waves.NewDirector(cfg, table, a.log)
	a.Director = director
	if _, err := entity.NewWaveDirector(w, director); err != nil {
		return err
	}

	a.log.Info("arena ready",
		"arena", spec.Name,
		"difficulty", a.Difficulty.Name,
		"seed", a.opts.Seed,
		"archetypes", len(director.Table.Archetypes),
	)
	return nil
}

// loadWaves resolves difficulty, pacing and the spawn table from the
// arena's wave files.
func (a *Arena) loadWaves() (waves.Config, *waves.Table, error) {
	var cfg waves.Config
	ws, err := prefabs.LoadWavesSpec(a.Spec.Waves)
	if err != nil {
		return cfg, nil, err
	}
	diffs, err := prefabs.LoadDifficultySpec(a.Spec.Difficulties)
	if err != nil {
		return cfg, nil, err
	}
	name := ws.Difficulty
	if a.opts.Difficulty != "" {
		name = a.opts.Difficulty
	}
	d, err := diffs.Lookup(name)
	if err != nil {
		return cfg, nil, err
	}
	if cfg, err = ws.Config(d, a.log); err != nil {
		return cfg, nil, err
	}
	table, err := ws.Table(a.log)
	if err != nil {
		return cfg, nil, err
	}
	a.Difficulty = d
	return cfg, table, nil
}

// Step runs one tick and folds its events into Stats. The drained events
// are returned for callers that present them.
func (a *Arena) Step(dt float64) []ecs.Event {
	a.Scheduler.Step(a.World, dt)
	events := a.World.Events().Drain()
	a.Stats.observe(events)
	return events
}

// Reset throws the world away and rebuilds it from the prefabs, reseeding
// the RNG so a reset run replays the same waves.
func (a *Arena) Reset() error {
	a.log.Info("arena reset", "arena", a.opts.Arena)
	return a.build()
}

// SetDifficulty restarts the arena on another difficulty preset. An unknown
// preset leaves the running world untouched.
func (a *Arena) SetDifficulty(name string) error {
	prev := a.opts.Difficulty
	a.opts.Difficulty = name
	if _, _, err := a.loadWaves(); err != nil {
		a.opts.Difficulty = prev
		return err
	}
	return a.Reset()
}

// ReloadWaves rereads the wave files and swaps pacing and spawn table into
// the running director without touching its clock or tracked enemies.
func (a *Arena) ReloadWaves() error {
	cfg, table, err := a.loadWaves()
	if err != nil {
		return err
	}
	a.Director.Config = cfg
	a.Director.SwapTable(table)
	a.log.Info("waves reloaded",
		"difficulty", a.Difficulty.Name,
		"archetypes", len(table.Archetypes),
		"elapsed", a.Director.Elapsed,
	)
	return nil
}

// Apply reacts to a prefab edit. Wave files and scripts swap the spawn
// table, the arena file rebuilds the world and anything else only affects
// entities spawned from now on.
func (a *Arena) Apply(c prefabs.Change) error {
	switch {
	case c.Kind == prefabs.ChangeScript, c.Name == a.Spec.Waves, c.Name == a.Spec.Difficulties:
		return a.ReloadWaves()
	case c.Name == a.opts.Arena:
		return a.Reset()
	}
	a.Factory.Invalidate()
	a.log.Info("prefab cache cleared", "prefab", c.Name)
	return nil
}

// Request queues a support action on the arena's player.
func (a *Arena) Request(r component.SupportRequest) error {
	p, ok := ecs.Get(a.World, a.Player, component.PlayerComponent.Kind())
	if !ok {
		return ErrNoPlayer
	}
	p.Request(r)
	return nil
}

// HeroAlive reports whether the hero has not started dying.
func (a *Arena) HeroAlive() bool {
	hero, ok := ecs.Get(a.World, a.Hero, component.HeroComponent.Kind())
	return ok && hero.State != component.HeroDying
}

func vec(v prefabs.VectorSpec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
