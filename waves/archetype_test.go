package waves

import (
	"testing"

	"github.com/milk9111/vanguard/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchetypeWeightProgression(t *testing.T) {
	a := &Archetype{StartTime: 0, BaseWeight: 100, PeakWeight: 40, PeakTime: 300}
	cases := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{"at_start", 0, 100},
		{"midpoint", 150, 70},
		{"at_peak", 300, 40},
		{"past_peak_holds", 900, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a.Update(c.elapsed)
			assert.True(t, a.Active)
			assert.InDelta(t, c.want, a.Weight, 1e-9)
		})
	}
}

func TestArchetypeInactiveOutsideWindow(t *testing.T) {
	a := &Archetype{StartTime: 30, EndTime: 120, BaseWeight: 50, PeakWeight: 80, PeakTime: 90}

	a.Update(10)
	assert.False(t, a.Active)
	assert.Zero(t, a.Weight)

	a.Update(30)
	assert.True(t, a.Active)
	assert.InDelta(t, 50, a.Weight, 1e-9)

	a.Update(120)
	assert.False(t, a.Active, "end time is exclusive")
	assert.Zero(t, a.Weight)
}

func TestArchetypeZeroSpanUsesUnitSpan(t *testing.T) {
	a := &Archetype{StartTime: 10, PeakTime: 10, BaseWeight: 0, PeakWeight: 10}
	a.Update(10.5)
	assert.InDelta(t, 5, a.Weight, 1e-9)
}

func TestSelectReturnsDistinctActiveArchetypes(t *testing.T) {
	table := &Table{Archetypes: []*Archetype{
		{Name: "a", BaseWeight: 1, PeakWeight: 1, PeakTime: 1},
		{Name: "b", BaseWeight: 1, PeakWeight: 1, PeakTime: 1},
		{Name: "c", StartTime: 1000, BaseWeight: 1, PeakWeight: 1, PeakTime: 1001},
		{Name: "d", BaseWeight: 1, PeakWeight: 1, PeakTime: 1},
		{Name: "e", BaseWeight: 1, PeakWeight: 1, PeakTime: 1},
	}}
	table.Update(5)
	rng := common.NewRNG(42)
	for i := 0; i < 200; i++ {
		sel := table.Select(rng)
		require.NotEmpty(t, sel)
		require.LessOrEqual(t, len(sel), 4)
		seen := map[string]bool{}
		for _, a := range sel {
			require.False(t, seen[a.Name], "duplicate %s", a.Name)
			require.NotEqual(t, "c", a.Name, "inactive archetype selected")
			seen[a.Name] = true
		}
	}
}

func TestSelectNothingWhenNoWeight(t *testing.T) {
	table := &Table{Archetypes: []*Archetype{{Name: "late", StartTime: 60}}}
	table.Update(0)
	assert.Empty(t, table.Select(common.NewRNG(1)))
}

func TestCountScalesAndRounds(t *testing.T) {
	rng := common.NewRNG(3)
	a := &Archetype{MinCount: 2, MaxCount: 2, CountCurve: Constant(1.25)}
	assert.Equal(t, 2, Count(rng, a, 0), "2.5 rounds to even")

	a.CountCurve = Constant(1.5)
	assert.Equal(t, 3, Count(rng, a, 0))

	a = &Archetype{MinCount: 1, MaxCount: 4}
	for i := 0; i < 100; i++ {
		n := Count(rng, a, 0)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 4)
	}
}
