package prefabs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/waves"
	"gopkg.in/yaml.v3"
)

type KeyframeSpec struct {
	Time  float64 `yaml:"t"`
	Value float64 `yaml:"v"`
}

// CurveSpec is a curve written as a preset name, a bare number, a tengo
// script or an explicit key list:
//
//	count_curve: normal_growth
//	count_curve: 1.5
//	count_curve: {script: growth.tengo}
//	count_curve: {interp: ease, keys: [{t: 0, v: 1}, {t: 600, v: 3}]}
type CurveSpec struct {
	Preset   string         `yaml:"preset"`
	Script   string         `yaml:"script"`
	Fallback float64        `yaml:"fallback"`
	Interp   string         `yaml:"interp"`
	Keys     []KeyframeSpec `yaml:"keys"`
	Constant *float64       `yaml:"constant"`
}

func (c *CurveSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var f float64
		if err := n.Decode(&f); err == nil {
			c.Constant = &f
			return nil
		}
		return n.Decode(&c.Preset)
	}
	type plain CurveSpec
	return n.Decode((*plain)(c))
}

func (c CurveSpec) IsZero() bool {
	return c.Preset == "" && c.Script == "" && len(c.Keys) == 0 && c.Constant == nil
}

// Build returns nil for an empty spec, which evaluates as a flat 1.
func (c CurveSpec) Build(log *slog.Logger) (waves.Curve, error) {
	switch {
	case c.Constant != nil:
		return waves.Constant(*c.Constant), nil
	case c.Script != "":
		src, err := LoadScript(c.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", c.Script, err)
		}
		curve, err := waves.NewScriptCurve(c.Script, src)
		if err != nil {
			return nil, err
		}
		curve.Log = log
		if c.Fallback != 0 {
			curve.Fallback = c.Fallback
		}
		return curve, nil
	case len(c.Keys) > 0:
		interp, err := waves.ParseInterp(c.Interp)
		if err != nil {
			return nil, err
		}
		keys := make([]waves.Keyframe, len(c.Keys))
		for i, k := range c.Keys {
			keys[i] = waves.Keyframe{Time: k.Time, Value: k.Value}
		}
		return waves.NewKeyCurve(interp, keys...), nil
	case c.Preset != "":
		return waves.LookupCurve(c.Preset)
	}
	return nil, nil
}

type ArchetypeSpec struct {
	Name       string    `yaml:"name"`
	Preset     string    `yaml:"preset"`
	Prefab     string    `yaml:"prefab"`
	StartTime  *float64  `yaml:"start_time"`
	EndTime    *float64  `yaml:"end_time"`
	BaseWeight float64   `yaml:"base_weight"`
	PeakWeight float64   `yaml:"peak_weight"`
	PeakTime   float64   `yaml:"peak_time"`
	MinCount   int       `yaml:"min_count"`
	MaxCount   int       `yaml:"max_count"`
	CountCurve CurveSpec `yaml:"count_curve"`
}

// Archetype starts from the named preset, if any, and overlays the fields
// set in the file.
func (s ArchetypeSpec) Archetype(log *slog.Logger) (*waves.Archetype, error) {
	var a waves.Archetype
	if s.Preset != "" {
		p, ok := waves.ArchetypePresets[strings.ToLower(s.Preset)]
		if !ok {
			return nil, fmt.Errorf("prefabs: archetype %s: unknown preset %q", s.Name, s.Preset)
		}
		a = p
	}
	setIfSet(&a.Name, s.Name)
	setIfSet(&a.Prefab, s.Prefab)
	if s.StartTime != nil {
		a.StartTime = *s.StartTime
	}
	if s.EndTime != nil {
		a.EndTime = *s.EndTime
	}
	setIfSet(&a.BaseWeight, s.BaseWeight)
	setIfSet(&a.PeakWeight, s.PeakWeight)
	setIfSet(&a.PeakTime, s.PeakTime)
	setIfSet(&a.MinCount, s.MinCount)
	setIfSet(&a.MaxCount, s.MaxCount)
	if a.Name == "" {
		return nil, fmt.Errorf("prefabs: archetype has no name")
	}
	if a.Prefab == "" {
		return nil, fmt.Errorf("prefabs: archetype %s: no prefab", a.Name)
	}
	curve, err := s.CountCurve.Build(log)
	if err != nil {
		return nil, fmt.Errorf("prefabs: archetype %s: count curve: %w", a.Name, err)
	}
	a.CountCurve = curve
	return &a, nil
}

// WavesSpec is the spawn table plus director pacing.
type WavesSpec struct {
	Difficulty    string          `yaml:"difficulty"`
	IntervalCurve CurveSpec       `yaml:"interval_curve"`
	MaxAlive      int             `yaml:"max_alive"`
	LogEvery      int             `yaml:"log_every"`
	Archetypes    []ArchetypeSpec `yaml:"archetypes"`
}

func LoadWavesSpec(filename string) (WavesSpec, error) {
	return LoadSpec[WavesSpec](filename)
}

// Table builds a fresh spawn table. Archetype order follows the file.
func (s WavesSpec) Table(log *slog.Logger) (*waves.Table, error) {
	if len(s.Archetypes) == 0 {
		return nil, waves.ErrNoArchetypes
	}
	t := &waves.Table{}
	for _, as := range s.Archetypes {
		a, err := as.Archetype(log)
		if err != nil {
			return nil, err
		}
		if t.Find(a.Name) != nil {
			return nil, fmt.Errorf("prefabs: duplicate archetype %q", a.Name)
		}
		t.Archetypes = append(t.Archetypes, a)
	}
	return t, nil
}

// Config builds director pacing for difficulty d. A max_alive in the file
// overrides the preset's cap.
func (s WavesSpec) Config(d waves.Difficulty, log *slog.Logger) (waves.Config, error) {
	cfg := waves.DefaultConfig()
	d.Apply(&cfg)
	if !s.IntervalCurve.IsZero() {
		curve, err := s.IntervalCurve.Build(log)
		if err != nil {
			return cfg, fmt.Errorf("prefabs: interval curve: %w", err)
		}
		cfg.IntervalCurve = curve
	}
	setIfSet(&cfg.MaxAlive, s.MaxAlive)
	setIfSet(&cfg.LogEvery, s.LogEvery)
	return cfg, nil
}

type DifficultyPresetSpec struct {
	BaseInterval    float64 `yaml:"base_interval"`
	MinInterval     float64 `yaml:"min_interval"`
	MaxAlive        int     `yaml:"max_alive"`
	Clearance       float64 `yaml:"clearance"`
	MinHeroDistance float64 `yaml:"min_hero_distance"`
}

type DifficultySpec struct {
	Default string                          `yaml:"default"`
	Presets map[string]DifficultyPresetSpec `yaml:"presets"`
}

func LoadDifficultySpec(filename string) (DifficultySpec, error) {
	return LoadSpec[DifficultySpec](filename)
}

// Lookup resolves name against the file first and the built-in presets
// second. An empty name picks the file's default.
func (s DifficultySpec) Lookup(name string) (waves.Difficulty, error) {
	if strings.TrimSpace(name) == "" {
		name = s.Default
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := s.Presets[key]; ok {
		return waves.Difficulty{
			Name:            key,
			BaseInterval:    p.BaseInterval,
			MinInterval:     p.MinInterval,
			MaxAlive:        p.MaxAlive,
			Clearance:       p.Clearance,
			MinHeroDistance: p.MinHeroDistance,
		}, nil
	}
	return waves.LookupDifficulty(key)
}

type PlacementSpec struct {
	Prefab   string     `yaml:"prefab"`
	Position VectorSpec `yaml:"position"`
}

type WallSpec struct {
	A      VectorSpec `yaml:"a"`
	B      VectorSpec `yaml:"b"`
	Radius float64    `yaml:"radius"`
}

type CameraSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Smoothness float64 `yaml:"smoothness"`
}

// ArenaSpec lays out one arena: bounds, blocked ground, walls, the starting
// cast and which wave files drive it.
type ArenaSpec struct {
	Name         string        `yaml:"name"`
	Bounds       RectSpec      `yaml:"bounds"`
	CellSize     float64       `yaml:"cell_size"`
	BorderWalls  bool          `yaml:"border_walls"`
	Obstacles    []RectSpec    `yaml:"obstacles"`
	Walls        []WallSpec    `yaml:"walls"`
	Hero         PlacementSpec `yaml:"hero"`
	Player       PlacementSpec `yaml:"player"`
	Camera       CameraSpec    `yaml:"camera"`
	Waves        string        `yaml:"waves"`
	Difficulties string        `yaml:"difficulties"`
}

func LoadArenaSpec(filename string) (ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return spec, err
	}
	fill(&spec.CellSize, 0.5)
	fill(&spec.Hero.Prefab, "hero.yaml")
	fill(&spec.Player.Prefab, "player.yaml")
	fill(&spec.Camera.Width, 24)
	fill(&spec.Camera.Height, 14)
	fill(&spec.Waves, "waves.yaml")
	fill(&spec.Difficulties, "difficulty.yaml")
	if spec.Bounds.Width <= 0 || spec.Bounds.Height <= 0 {
		return spec, fmt.Errorf("prefabs: %s: arena bounds must have positive size", filename)
	}
	return spec, nil
}

func (r RectSpec) Rect() common.Rect {
	return common.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
