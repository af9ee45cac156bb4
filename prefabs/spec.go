package prefabs

import (
	"fmt"

	"github.com/milk9111/vanguard/combat"
	"gopkg.in/yaml.v3"
)

// Prefab kinds named in the kind field of an entity prefab.
const (
	KindHero       = "hero"
	KindPlayer     = "player"
	KindEnemy      = "enemy"
	KindProjectile = "projectile"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Header is the part every entity prefab shares.
type Header struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

func LoadHeader(filename string) (Header, error) {
	return LoadSpec[Header](filename)
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type StatsSpec struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	DetectionRange  float64 `yaml:"detection_range"`
	AttackRange     float64 `yaml:"attack_range"`
	EngagementRange float64 `yaml:"engagement_range"`
}

func (s StatsSpec) Stats() combat.Stats {
	return combat.Stats{
		MoveSpeed:       s.MoveSpeed,
		DetectionRange:  s.DetectionRange,
		AttackRange:     s.AttackRange,
		EngagementRange: s.EngagementRange,
	}
}

func (s *StatsSpec) fill(d StatsSpec) {
	fill(&s.MoveSpeed, d.MoveSpeed)
	fill(&s.DetectionRange, d.DetectionRange)
	fill(&s.AttackRange, d.AttackRange)
	fill(&s.EngagementRange, d.EngagementRange)
}

type RushSpec struct {
	Overshoot    float64 `yaml:"overshoot"`
	Duration     float64 `yaml:"duration"`
	Cooldown     float64 `yaml:"cooldown"`
	Damage       int     `yaml:"damage"`
	DamageRadius float64 `yaml:"damage_radius"`
}

type WhirlSpec struct {
	Radius       float64 `yaml:"radius"`
	AngularSpeed float64 `yaml:"angular_speed"`
	EntryTime    float64 `yaml:"entry_time"`
	Duration     float64 `yaml:"duration"`
	Cooldown     float64 `yaml:"cooldown"`
	Damage       int     `yaml:"damage"`
	TickInterval float64 `yaml:"tick_interval"`
	DamageRadius float64 `yaml:"damage_radius"`
}

func (s WhirlSpec) MoveParams() combat.MoveParams {
	return combat.MoveParams{
		Duration:     s.Duration,
		EntryTime:    s.EntryTime,
		Radius:       s.Radius,
		AngularSpeed: s.AngularSpeed,
		TickInterval: s.TickInterval,
	}
}

type HeroSpec struct {
	Name            string    `yaml:"name"`
	Kind            string    `yaml:"kind"`
	Health          int       `yaml:"health"`
	Radius          float64   `yaml:"radius"`
	Stats           StatsSpec `yaml:"stats"`
	NavSample       float64   `yaml:"nav_sample"`
	MaxRoamDuration float64   `yaml:"max_roam_duration"`
	MinRoamDistance float64   `yaml:"min_roam_distance"`
	MaxRoamDistance float64   `yaml:"max_roam_distance"`
	RoamHold        float64   `yaml:"roam_hold"`
	Rush            RushSpec  `yaml:"rush"`
	Whirl           WhirlSpec `yaml:"whirl"`
	DeathGrace      float64   `yaml:"death_grace"`
	RepulseRadius   float64   `yaml:"repulse_radius"`
	RepulseDistance float64   `yaml:"repulse_distance"`
}

func DefaultHeroSpec() HeroSpec {
	return HeroSpec{
		Name:            "hero",
		Kind:            KindHero,
		Health:          10,
		Radius:          0.5,
		Stats:           StatsSpec{MoveSpeed: 3.5, DetectionRange: 10, AttackRange: 1.5, EngagementRange: 1.5},
		NavSample:       1,
		MaxRoamDuration: 3,
		MinRoamDistance: 3,
		MaxRoamDistance: 9,
		Rush:            RushSpec{Overshoot: 1.5, Duration: 0.2, Cooldown: 1, Damage: 1, DamageRadius: 0.6},
		Whirl: WhirlSpec{
			Radius:       2.5,
			AngularSpeed: 360,
			EntryTime:    0.4,
			Duration:     2.5,
			Cooldown:     2,
			Damage:       1,
			TickInterval: 0.4,
			DamageRadius: 0.8,
		},
		DeathGrace:      1.5,
		RepulseRadius:   2,
		RepulseDistance: 2,
	}
}

// LoadHeroSpec loads a hero prefab, filling unset fields from the defaults.
func LoadHeroSpec(filename string) (HeroSpec, error) {
	spec, err := LoadSpec[HeroSpec](filename)
	if err != nil {
		return spec, err
	}
	spec.fill(DefaultHeroSpec())
	return spec, nil
}

func (s *HeroSpec) fill(d HeroSpec) {
	fill(&s.Name, d.Name)
	fill(&s.Health, d.Health)
	fill(&s.Radius, d.Radius)
	s.Stats.fill(d.Stats)
	fill(&s.NavSample, d.NavSample)
	fill(&s.MaxRoamDuration, d.MaxRoamDuration)
	fill(&s.MinRoamDistance, d.MinRoamDistance)
	fill(&s.MaxRoamDistance, d.MaxRoamDistance)
	fill(&s.Rush.Overshoot, d.Rush.Overshoot)
	fill(&s.Rush.Duration, d.Rush.Duration)
	fill(&s.Rush.Cooldown, d.Rush.Cooldown)
	fill(&s.Rush.Damage, d.Rush.Damage)
	fill(&s.Rush.DamageRadius, d.Rush.DamageRadius)
	fill(&s.Whirl.Radius, d.Whirl.Radius)
	fill(&s.Whirl.AngularSpeed, d.Whirl.AngularSpeed)
	fill(&s.Whirl.EntryTime, d.Whirl.EntryTime)
	fill(&s.Whirl.Duration, d.Whirl.Duration)
	fill(&s.Whirl.Cooldown, d.Whirl.Cooldown)
	fill(&s.Whirl.Damage, d.Whirl.Damage)
	fill(&s.Whirl.TickInterval, d.Whirl.TickInterval)
	fill(&s.Whirl.DamageRadius, d.Whirl.DamageRadius)
	fill(&s.DeathGrace, d.DeathGrace)
	fill(&s.RepulseRadius, d.RepulseRadius)
	fill(&s.RepulseDistance, d.RepulseDistance)
}

type EnemySpec struct {
	Name               string    `yaml:"name"`
	Kind               string    `yaml:"kind"`
	Health             int       `yaml:"health"`
	Radius             float64   `yaml:"radius"`
	Mode               Mode      `yaml:"mode"`
	Stats              StatsSpec `yaml:"stats"`
	DetectionRadius    float64   `yaml:"detection_radius"`
	WanderRadius       float64   `yaml:"wander_radius"`
	OrbitRadius        float64   `yaml:"orbit_radius"`
	PathUpdateInterval float64   `yaml:"path_update_interval"`
	Patterns           []string  `yaml:"patterns"`
	PatternFile        string    `yaml:"pattern_file"`
}

func DefaultEnemySpec() EnemySpec {
	return EnemySpec{
		Name:               "enemy",
		Kind:               KindEnemy,
		Health:             3,
		Radius:             0.4,
		Stats:              StatsSpec{MoveSpeed: 2, DetectionRange: 10, AttackRange: 6},
		WanderRadius:       5,
		OrbitRadius:        4,
		PathUpdateInterval: 0.5,
		PatternFile:        "patterns.yaml",
	}
}

func LoadEnemySpec(filename string) (EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec](filename)
	if err != nil {
		return spec, err
	}
	spec.fill(DefaultEnemySpec())
	return spec, nil
}

func (s *EnemySpec) fill(d EnemySpec) {
	fill(&s.Name, d.Name)
	fill(&s.Health, d.Health)
	fill(&s.Radius, d.Radius)
	s.Stats.fill(d.Stats)
	fill(&s.DetectionRadius, s.Stats.DetectionRange)
	fill(&s.WanderRadius, d.WanderRadius)
	fill(&s.OrbitRadius, d.OrbitRadius)
	fill(&s.PathUpdateInterval, d.PathUpdateInterval)
	fill(&s.PatternFile, d.PatternFile)
}

type ProjectileSpec struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Radius float64 `yaml:"radius"`
}

func LoadProjectileSpec(filename string) (ProjectileSpec, error) {
	spec, err := LoadSpec[ProjectileSpec](filename)
	if err != nil {
		return spec, err
	}
	fill(&spec.Radius, 0.2)
	return spec, nil
}

type PatternSpec struct {
	Name            string      `yaml:"name"`
	Kind            PatternKind `yaml:"kind"`
	Cooldown        float64     `yaml:"cooldown"`
	ProjectileSpeed float64     `yaml:"projectile_speed"`
	Damage          int         `yaml:"damage"`
	ProjectileCount int         `yaml:"projectile_count"`
	SpreadDegrees   float64     `yaml:"spread_degrees"`
	BurstDelay      float64     `yaml:"burst_delay"`
	Projectile      string      `yaml:"projectile"`
	Lifetime        float64     `yaml:"lifetime"`
	DestroyOnHit    *bool       `yaml:"destroy_on_hit"`
	DamageKind      DamageKind  `yaml:"damage_kind"`
}

// Pattern builds the shared pattern record. An empty projectile is kept
// empty: such a pattern is loaded but never fires.
func (s PatternSpec) Pattern() *combat.AttackPattern {
	p := combat.DefaultAttackPattern()
	p.Name = s.Name
	p.Kind = combat.PatternKind(s.Kind)
	p.Projectile = s.Projectile
	p.DamageKind = combat.DamageKind(s.DamageKind)
	setIfSet(&p.Cooldown, s.Cooldown)
	setIfSet(&p.ProjectileSpeed, s.ProjectileSpeed)
	setIfSet(&p.Damage, s.Damage)
	setIfSet(&p.ProjectileCount, s.ProjectileCount)
	setIfSet(&p.SpreadDegrees, s.SpreadDegrees)
	setIfSet(&p.BurstDelay, s.BurstDelay)
	setIfSet(&p.Lifetime, s.Lifetime)
	if s.DestroyOnHit != nil {
		p.DestroyOnHit = *s.DestroyOnHit
	}
	return &p
}

type PatternsSpec struct {
	Patterns []PatternSpec `yaml:"patterns"`
}

// LoadPatterns loads a pattern file keyed by pattern name.
func LoadPatterns(filename string) (map[string]*combat.AttackPattern, error) {
	spec, err := LoadSpec[PatternsSpec](filename)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*combat.AttackPattern, len(spec.Patterns))
	for i, ps := range spec.Patterns {
		if ps.Name == "" {
			return nil, fmt.Errorf("prefabs: %s: pattern %d has no name", filename, i)
		}
		if _, dup := out[ps.Name]; dup {
			return nil, fmt.Errorf("prefabs: %s: duplicate pattern %q", filename, ps.Name)
		}
		out[ps.Name] = ps.Pattern()
	}
	return out, nil
}

type PlayerSpec struct {
	Name         string  `yaml:"name"`
	Kind         string  `yaml:"kind"`
	Health       int     `yaml:"health"`
	Radius       float64 `yaml:"radius"`
	HealCooldown float64 `yaml:"heal_cooldown"`
	HealBarSpeed float64 `yaml:"heal_bar_speed"`
	HealTraverse float64 `yaml:"heal_traverse"`
	BuffCooldown float64 `yaml:"buff_cooldown"`
	BuffDuration float64 `yaml:"buff_duration"`
	BuffPotency  int     `yaml:"buff_potency"`
	Support      string  `yaml:"support"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:         "player",
		Kind:         KindPlayer,
		Health:       10,
		Radius:       0.5,
		HealCooldown: 1,
		HealBarSpeed: 1,
		HealTraverse: 1,
		BuffCooldown: 5,
		BuffDuration: 10,
		BuffPotency:  1,
		Support:      "support.yaml",
	}
}

func LoadPlayerSpec(filename string) (PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](filename)
	if err != nil {
		return spec, err
	}
	d := DefaultPlayerSpec()
	fill(&spec.Name, d.Name)
	fill(&spec.Health, d.Health)
	fill(&spec.Radius, d.Radius)
	fill(&spec.HealCooldown, d.HealCooldown)
	fill(&spec.HealBarSpeed, d.HealBarSpeed)
	fill(&spec.HealTraverse, d.HealTraverse)
	fill(&spec.BuffCooldown, d.BuffCooldown)
	fill(&spec.BuffDuration, d.BuffDuration)
	fill(&spec.BuffPotency, d.BuffPotency)
	fill(&spec.Support, d.Support)
	return spec, nil
}

type AbilitySpec struct {
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
	Radius   float64 `yaml:"radius"`
	Damage   int     `yaml:"damage"`
}

type HealZonesSpec struct {
	PerfectWidth float64 `yaml:"perfect_width"`
	GoodWidth    float64 `yaml:"good_width"`
	OkayLo       float64 `yaml:"okay_lo"`
	OkayHi       float64 `yaml:"okay_hi"`
	MehLo        float64 `yaml:"meh_lo"`
	MehHi        float64 `yaml:"meh_hi"`
}

// SupportSpec is the support player's meta-progression: heal windows and
// the ability unlock schedule.
type SupportSpec struct {
	HealZones      HealZonesSpec          `yaml:"heal_zones"`
	UnlockInterval float64                `yaml:"unlock_interval"`
	UnlockOrder    []string               `yaml:"unlock_order"`
	EndGameAt      float64                `yaml:"end_game_at"`
	Abilities      map[string]AbilitySpec `yaml:"abilities"`
}

func LoadSupportSpec(filename string) (SupportSpec, error) {
	return LoadSpec[SupportSpec](filename)
}

// Zones overlays the authored heal windows on the stock ones.
func (s SupportSpec) Zones() combat.HealZones {
	z := combat.DefaultHealZones()
	setIfSet(&z.PerfectWidth, s.HealZones.PerfectWidth)
	setIfSet(&z.GoodWidth, s.HealZones.GoodWidth)
	setIfSet(&z.OkayLo, s.HealZones.OkayLo)
	setIfSet(&z.OkayHi, s.HealZones.OkayHi)
	setIfSet(&z.MehLo, s.HealZones.MehLo)
	setIfSet(&z.MehHi, s.HealZones.MehHi)
	return z
}

// AbilityBook builds the unlock schedule. Unset fields keep the stock
// values; abilities listed in the file replace the stock tuning.
func (s SupportSpec) AbilityBook() (*combat.AbilityBook, error) {
	book := combat.DefaultAbilityBook()
	setIfSet(&book.UnlockInterval, s.UnlockInterval)
	setIfSet(&book.EndGameAt, s.EndGameAt)
	if len(s.UnlockOrder) > 0 {
		order := make([]combat.Ability, 0, len(s.UnlockOrder))
		for _, name := range s.UnlockOrder {
			a, err := combat.ParseAbility(name)
			if err != nil {
				return nil, fmt.Errorf("prefabs: unlock order: %w", err)
			}
			order = append(order, a)
		}
		book.UnlockOrder = order
	}
	for name, as := range s.Abilities {
		a, err := combat.ParseAbility(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: abilities: %w", err)
		}
		book.Specs[a] = combat.AbilitySpec{
			Duration: as.Duration,
			Cooldown: as.Cooldown,
			Radius:   as.Radius,
			Damage:   as.Damage,
		}
	}
	return book, nil
}

func fill[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

func setIfSet[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
