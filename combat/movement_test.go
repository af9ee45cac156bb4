package combat

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestKeepDistance(t *testing.T) {
	cases := []struct {
		name string
		dist float64
		want Spacing
	}{
		{"too_close", 4.1, SpacingRetreat},
		{"at_threshold_holds", 4.2, SpacingHold},
		{"in_band", 5, SpacingHold},
		{"at_range_holds", 6, SpacingHold},
		{"too_far", 6.5, SpacingAdvance},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, KeepDistance(c.dist, 6))
		})
	}
}

func TestRetreatAndOrbitPoints(t *testing.T) {
	self := cp.Vector{X: 1}
	target := cp.Vector{}

	r := RetreatPoint(self, target, RetreatDistance)
	assert.InDelta(t, 3, r.X, 1e-9)
	assert.InDelta(t, 0, r.Y, 1e-9)

	// Bearing self->target is 180deg, so +90 puts the orbit point at 270deg.
	o := OrbitPoint(self, target, 4)
	assert.InDelta(t, 0, o.X, 1e-9)
	assert.InDelta(t, -4, o.Y, 1e-9)
}

func TestParseMovementMode(t *testing.T) {
	m, err := ParseMovementMode("Keep-Distance")
	assert.NoError(t, err)
	assert.Equal(t, MoveKeepDistance, m)
	_, err = ParseMovementMode("teleport")
	assert.Error(t, err)
}
