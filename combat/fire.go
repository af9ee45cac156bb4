package combat

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
)

const (
	SpiralShotsPerWave  = 8
	SpiralStepDegrees   = 45.0
	SpiralWaveOffsetDeg = 15.0

	// PredictiveMinSpeed is the target speed above which predictive
	// patterns lead their shots.
	PredictiveMinSpeed = 0.1
)

// SingleDirection aims straight at the target.
func SingleDirection(shooter, target cp.Vector) cp.Vector {
	return common.Direction(shooter, target)
}

// BurstDirections spreads count shots evenly across spreadDeg centered on
// base. A single shot goes straight along base.
func BurstDirections(base cp.Vector, count int, spreadDeg float64) []cp.Vector {
	if count <= 0 {
		return nil
	}
	out := make([]cp.Vector, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, BurstDirection(base, i, count, spreadDeg))
	}
	return out
}

// BurstDirection is the i-th shot of a burst.
func BurstDirection(base cp.Vector, i, count int, spreadDeg float64) cp.Vector {
	if count <= 1 {
		return base
	}
	angle := -spreadDeg/2 + spreadDeg/float64(count-1)*float64(i)
	return common.RotateDeg(base, angle)
}

// CircleDirections spaces count shots around the full circle starting at 0°.
func CircleDirections(count int) []cp.Vector {
	if count <= 0 {
		return nil
	}
	step := 360.0 / float64(count)
	out := make([]cp.Vector, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, common.DirFromDeg(step*float64(i)))
	}
	return out
}

// SpiralWave returns the directions of one spiral wave. Wave 0 starts at 0°
// and each later wave is rotated by SpiralWaveOffsetDeg.
func SpiralWave(wave int) []cp.Vector {
	offset := SpiralWaveOffsetDeg * float64(wave)
	out := make([]cp.Vector, 0, SpiralShotsPerWave)
	for i := 0; i < SpiralShotsPerWave; i++ {
		out = append(out, common.DirFromDeg(SpiralStepDegrees*float64(i)+offset))
	}
	return out
}

// PredictiveDirection leads a moving target by the projectile's travel time.
// Slow targets fall back to a straight shot.
func PredictiveDirection(shooter, target, velocity cp.Vector, speed float64) cp.Vector {
	if velocity.Length() <= PredictiveMinSpeed || speed <= 0 {
		return SingleDirection(shooter, target)
	}
	dist := shooter.Distance(target)
	predicted := target.Add(velocity.Mult(dist / speed))
	return common.Direction(shooter, predicted)
}
