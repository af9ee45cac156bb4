package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpClamped clamps t to [0,1] before interpolating.
func LerpClamped(a, b, t float64) float64 {
	return Lerp(a, b, Clamp01(t))
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InverseLerp returns where v sits between a and b, clamped to [0,1].
// A degenerate range yields 0.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

// SmoothStep interpolates from->to with a cubic Hermite ease in and out.
func SmoothStep(from, to, t float64) float64 {
	t = Clamp01(t)
	t = -2*t*t*t + 3*t*t
	return to*t + from*(1-t)
}

// RoundHalfEven rounds to the nearest integer, ties to even.
func RoundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
