package waves

import (
	"errors"

	"github.com/milk9111/vanguard/common"
)

// ErrNoArchetypes is returned when a spawn table has nothing to spawn.
var ErrNoArchetypes = errors.New("waves: no archetypes configured")

// Archetype is a spawnable enemy type whose weight changes with time.
type Archetype struct {
	Name       string
	Prefab     string
	StartTime  float64
	EndTime    float64 // 0 means no end
	BaseWeight float64
	PeakWeight float64
	PeakTime   float64
	MinCount   int
	MaxCount   int
	CountCurve Curve

	// Derived every tick.
	Weight float64
	Active bool
}

// Update recomputes Active and Weight for the given elapsed time. Weight
// moves linearly from BaseWeight at StartTime to PeakWeight at PeakTime
// and holds there.
func (a *Archetype) Update(elapsed float64) {
	started := elapsed >= a.StartTime
	ended := a.EndTime > 0 && elapsed >= a.EndTime
	a.Active = started && !ended
	if !a.Active {
		a.Weight = 0
		return
	}
	span := a.PeakTime - a.StartTime
	if span <= 0 {
		span = 1
	}
	progress := common.Clamp01((elapsed - a.StartTime) / span)
	a.Weight = common.Lerp(a.BaseWeight, a.PeakWeight, progress)
}

// Table is an ordered set of archetypes.
type Table struct {
	Archetypes []*Archetype
}

// Update refreshes every archetype.
func (t *Table) Update(elapsed float64) {
	if t == nil {
		return
	}
	for _, a := range t.Archetypes {
		a.Update(elapsed)
	}
}

// TotalWeight sums the weights of active archetypes.
func (t *Table) TotalWeight() float64 {
	if t == nil {
		return 0
	}
	total := 0.0
	for _, a := range t.Archetypes {
		if a.Active {
			total += a.Weight
		}
	}
	return total
}

// Select draws between one and four archetypes (never more than the table
// holds) by cumulative weight. Repeat draws are discarded rather than
// redrawn, so fewer distinct types may come back.
func (t *Table) Select(rng common.RNG) []*Archetype {
	if t == nil || len(t.Archetypes) == 0 {
		return nil
	}
	total := t.TotalWeight()
	if total <= 0 {
		return nil
	}
	draws := common.RangeInt(rng, 1, min(4, len(t.Archetypes))+1)
	selected := make([]*Archetype, 0, draws)
	for i := 0; i < draws; i++ {
		pick := t.pick(rng.Float64() * total)
		if pick == nil || contains(selected, pick) {
			continue
		}
		selected = append(selected, pick)
	}
	return selected
}

func (t *Table) pick(r float64) *Archetype {
	cumulative := 0.0
	for _, a := range t.Archetypes {
		if !a.Active {
			continue
		}
		cumulative += a.Weight
		if r <= cumulative {
			return a
		}
	}
	return nil
}

func contains(list []*Archetype, a *Archetype) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

// Count rolls how many of a to spawn: a uniform integer in
// [MinCount, MaxCount] scaled by the count curve and rounded half to even.
func Count(rng common.RNG, a *Archetype, elapsed float64) int {
	if a == nil {
		return 0
	}
	lo, hi := a.MinCount, a.MaxCount
	if hi < lo {
		hi = lo
	}
	base := common.RangeInt(rng, lo, hi+1)
	n := common.RoundHalfEven(float64(base) * Eval(a.CountCurve, elapsed))
	if n < 0 {
		return 0
	}
	return n
}

// Find returns the archetype with the given name.
func (t *Table) Find(name string) *Archetype {
	if t == nil {
		return nil
	}
	for _, a := range t.Archetypes {
		if a.Name == name {
			return a
		}
	}
	return nil
}
