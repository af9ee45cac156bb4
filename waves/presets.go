package waves

import (
	"fmt"
	"sort"
	"strings"
)

// Difficulty is a named pacing preset.
type Difficulty struct {
	Name            string
	BaseInterval    float64
	MinInterval     float64
	MaxAlive        int
	Clearance       float64
	MinHeroDistance float64
}

// Apply copies the preset into cfg.
func (d Difficulty) Apply(cfg *Config) {
	cfg.BaseInterval = d.BaseInterval
	cfg.MinInterval = d.MinInterval
	cfg.MaxAlive = d.MaxAlive
	cfg.Area.Clearance = d.Clearance
	cfg.Area.MinHeroDistance = d.MinHeroDistance
}

var Difficulties = map[string]Difficulty{
	"easy":      {Name: "easy", BaseInterval: 3, MinInterval: 0.8, MaxAlive: 100, Clearance: 3, MinHeroDistance: 10},
	"normal":    {Name: "normal", BaseInterval: 2, MinInterval: 0.4, MaxAlive: 150, Clearance: 2, MinHeroDistance: 8},
	"hard":      {Name: "hard", BaseInterval: 1.5, MinInterval: 0.2, MaxAlive: 200, Clearance: 2, MinHeroDistance: 6},
	"nightmare": {Name: "nightmare", BaseInterval: 1, MinInterval: 0.1, MaxAlive: 300, Clearance: 1.5, MinHeroDistance: 5},
}

// LookupDifficulty finds a preset by case-insensitive name.
func LookupDifficulty(name string) (Difficulty, error) {
	d, ok := Difficulties[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Difficulty{}, fmt.Errorf("waves: unknown difficulty %q (have %s)", name, strings.Join(difficultyNames(), ", "))
	}
	return d, nil
}

func difficultyNames() []string {
	names := make([]string, 0, len(Difficulties))
	for n := range Difficulties {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ArchetypePresets are stock weight progressions keyed by name. Prefab is
// left empty; callers bind it.
var ArchetypePresets = map[string]Archetype{
	"fodder":   {Name: "fodder", StartTime: 0, BaseWeight: 100, PeakWeight: 40, PeakTime: 300, MinCount: 3, MaxCount: 8},
	"standard": {Name: "standard", StartTime: 30, BaseWeight: 50, PeakWeight: 80, PeakTime: 300, MinCount: 2, MaxCount: 5},
	"elite":    {Name: "elite", StartTime: 120, BaseWeight: 20, PeakWeight: 60, PeakTime: 450, MinCount: 1, MaxCount: 3},
	"miniboss": {Name: "miniboss", StartTime: 180, BaseWeight: 10, PeakWeight: 30, PeakTime: 600, MinCount: 1, MaxCount: 2},
	"boss":     {Name: "boss", StartTime: 300, BaseWeight: 5, PeakWeight: 20, PeakTime: 900, MinCount: 1, MaxCount: 1},
	"swarm":    {Name: "swarm", StartTime: 60, BaseWeight: 30, PeakWeight: 70, PeakTime: 400, MinCount: 5, MaxCount: 15},
}

// CurvePresets are stock interval and growth curves.
var CurvePresets = map[string]func() Curve{
	"easy_interval":      func() Curve { return EaseInOut(0, 1, 900, 0.5) },
	"normal_interval":    func() Curve { return EaseInOut(0, 1, 600, 0.3) },
	"hard_interval":      func() Curve { return EaseInOut(0, 1, 300, 0.2) },
	"brutal_interval":    func() Curve { return EaseInOut(0, 1, 120, 0.1) },
	"ramp_interval":      func() Curve { return EaseInOut(0, 0, 600, 1) },
	"slow_growth":        func() Curve { return Linear(0, 1, 900, 1.5) },
	"normal_growth":      func() Curve { return Linear(0, 1, 600, 2.5) },
	"fast_growth":        func() Curve { return EaseInOut(0, 1, 300, 4) },
	"s_curve_growth":     func() Curve { return EaseInOut(0, 1, 600, 3) },
	"exponential_growth": func() Curve {
		return NewKeyCurve(InterpLinear, Keyframe{0, 1}, Keyframe{300, 2}, Keyframe{600, 5}, Keyframe{900, 10})
	},
	"flat": func() Curve { return Constant(1) },
}

// LookupCurve builds a preset curve by name.
func LookupCurve(name string) (Curve, error) {
	mk, ok := CurvePresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("waves: unknown curve preset %q", name)
	}
	return mk(), nil
}
