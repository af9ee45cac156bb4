package waves

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
)

// Config tunes wave pacing and population.
type Config struct {
	BaseInterval  float64
	MinInterval   float64
	IntervalCurve Curve
	MaxAlive      int
	Area          SpawnArea
	LogEvery      int
}

// DefaultConfig matches the Normal difficulty pacing.
func DefaultConfig() Config {
	return Config{
		BaseInterval:  2,
		MinInterval:   0.3,
		IntervalCurve: EaseInOut(0, 0, 600, 1),
		MaxAlive:      200,
		Area:          SpawnArea{Clearance: 2, MinHeroDistance: 8},
		LogEvery:      50,
	}
}

// Interval is the gap until the next wave at elapsed seconds.
func (c Config) Interval(elapsed float64) float64 {
	return common.Lerp(c.BaseInterval, c.MinInterval, Eval(c.IntervalCurve, elapsed))
}

// SpawnFunc creates one enemy of archetype a at pos and returns its handle.
type SpawnFunc func(a *Archetype, pos cp.Vector) (uint64, error)

// Env is what the director needs from the world for one tick.
type Env struct {
	RNG     common.RNG
	Camera  common.Rect
	Hero    cp.Vector
	HasHero bool
	Alive   func(id uint64) bool
	Spawn   SpawnFunc
}

// Report summarizes one wave.
type Report struct {
	ID      uuid.UUID
	Time    float64
	Types   []string
	Spawned int
	Capped  bool
}

// Director decides when waves happen, what they contain and where they
// appear. It holds weak handles to the enemies it spawned.
type Director struct {
	Config Config
	Table  *Table
	Log    *slog.Logger

	Elapsed      float64
	NextSpawn    float64
	TotalSpawned int

	alive []uint64
}

// NewDirector schedules the first wave one base interval in.
func NewDirector(cfg Config, table *Table, log *slog.Logger) *Director {
	if log == nil {
		log = common.Logger
	}
	return &Director{
		Config:    cfg,
		Table:     table,
		Log:       log,
		NextSpawn: cfg.BaseInterval,
	}
}

// CurrentAlive is the number of spawned enemies still alive as of the last
// prune, plus any spawned since.
func (d *Director) CurrentAlive() int {
	return len(d.alive)
}

// ActiveEnemies returns a copy of the tracked enemy handles.
func (d *Director) ActiveEnemies() []uint64 {
	return append([]uint64(nil), d.alive...)
}

// Tick advances the director by dt. It returns a report when a wave was
// due this tick, whether or not anything spawned.
func (d *Director) Tick(dt float64, env Env) *Report {
	d.Elapsed += dt
	d.Table.Update(d.Elapsed)

	var report *Report
	if d.Elapsed >= d.NextSpawn {
		report = d.spawnWave(env)
		d.NextSpawn = d.Elapsed + d.Config.Interval(d.Elapsed)
	}

	d.prune(env.Alive)
	return report
}

func (d *Director) spawnWave(env Env) *Report {
	report := &Report{ID: uuid.New(), Time: d.Elapsed}
	if d.atCap() {
		report.Capped = true
		d.Log.Debug("enemy cap reached, skipping wave", "max", d.Config.MaxAlive)
		return report
	}

	selected := d.Table.Select(env.RNG)
	if len(selected) == 0 {
		d.Log.Warn("no active archetypes", "elapsed", d.Elapsed)
		return report
	}

	area := d.Config.Area
	if env.Camera.Width > 0 || env.Camera.Height > 0 {
		area.Camera = env.Camera
	}
	for _, a := range selected {
		report.Types = append(report.Types, a.Name)
		n := Count(env.RNG, a, d.Elapsed)
		for i := 0; i < n; i++ {
			if d.atCap() {
				report.Capped = true
				break
			}
			pos := area.Position(env.RNG, env.Hero, env.HasHero)
			if env.Spawn == nil {
				continue
			}
			id, err := env.Spawn(a, pos)
			if err != nil {
				d.Log.Warn("spawn failed", "archetype", a.Name, "prefab", a.Prefab, "err", err)
				continue
			}
			d.track(id)
			report.Spawned++
		}
	}
	return report
}

func (d *Director) atCap() bool {
	return d.Config.MaxAlive > 0 && len(d.alive) >= d.Config.MaxAlive
}

func (d *Director) track(id uint64) {
	d.alive = append(d.alive, id)
	d.TotalSpawned++
	if d.Config.LogEvery > 0 && d.TotalSpawned%d.Config.LogEvery == 0 {
		d.Log.Info("spawn progress", "elapsed", d.Elapsed, "total", d.TotalSpawned, "alive", len(d.alive))
	}
}

func (d *Director) prune(alive func(uint64) bool) {
	if alive == nil {
		return
	}
	kept := d.alive[:0]
	for _, id := range d.alive {
		if alive(id) {
			kept = append(kept, id)
		}
	}
	d.alive = kept
}

// ClearAll destroys every tracked enemy through destroy and forgets them.
func (d *Director) ClearAll(destroy func(uint64)) {
	if destroy != nil {
		for _, id := range d.alive {
			destroy(id)
		}
	}
	d.alive = nil
}

// Reset clears enemies and restarts the clock.
func (d *Director) Reset(destroy func(uint64)) {
	d.ClearAll(destroy)
	d.Elapsed = 0
	d.NextSpawn = d.Config.BaseInterval
	d.TotalSpawned = 0
	d.Table.Update(0)
}

// SwapTable replaces the spawn table without touching the clock.
func (d *Director) SwapTable(t *Table) {
	if t == nil {
		return
	}
	d.Table = t
	d.Table.Update(d.Elapsed)
}
