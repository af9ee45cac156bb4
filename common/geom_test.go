package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const eps = 1e-9

func near(a, b cp.Vector) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestRotateDeg(t *testing.T) {
	cases := []struct {
		name string
		in   cp.Vector
		deg  float64
		want cp.Vector
	}{
		{"quarter", cp.Vector{X: 1}, 90, cp.Vector{Y: 1}},
		{"half", cp.Vector{X: 1}, 180, cp.Vector{X: -1}},
		{"negative", cp.Vector{X: 0, Y: 1}, -90, cp.Vector{X: 1}},
		{"zero", cp.Vector{X: 2, Y: 3}, 0, cp.Vector{X: 2, Y: 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RotateDeg(c.in, c.deg)
			if !near(got, c.want) {
				t.Fatalf("RotateDeg(%v, %v) = %v, want %v", c.in, c.deg, got, c.want)
			}
		})
	}
}

func TestDirFromDegIsUnit(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		d := DirFromDeg(deg)
		if math.Abs(d.Length()-1) > eps {
			t.Fatalf("DirFromDeg(%v) length %v", deg, d.Length())
		}
	}
}

func TestRandomInRadiusStaysInside(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		p := RandomInRadius(rng, 5)
		if p.Length() > 5+eps {
			t.Fatalf("point %v outside radius", p)
		}
	}
	if p := RandomInRadius(rng, 0); p != (cp.Vector{}) {
		t.Fatalf("zero radius should give origin, got %v", p)
	}
}

func TestDirectionOfCoincidentPointsIsZero(t *testing.T) {
	p := cp.Vector{X: 3, Y: 4}
	if d := Direction(p, p); d != (cp.Vector{}) {
		t.Fatalf("expected zero vector, got %v", d)
	}
}

func TestSmoothStep(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, c := range cases {
		if got := SmoothStep(0, 1, c.t); math.Abs(got-c.want) > eps {
			t.Fatalf("SmoothStep(0,1,%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestRoundHalfEven(t *testing.T) {
	cases := map[float64]int{0.5: 0, 1.5: 2, 2.5: 2, 2.6: 3, -0.5: 0}
	for in, want := range cases {
		if got := RoundHalfEven(in); got != want {
			t.Fatalf("RoundHalfEven(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestRangeIntExclusiveMax(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 500; i++ {
		v := RangeInt(rng, 1, 4)
		if v < 1 || v >= 4 {
			t.Fatalf("RangeInt out of range: %d", v)
		}
	}
	if v := RangeInt(rng, 3, 3); v != 3 {
		t.Fatalf("degenerate range should return min, got %d", v)
	}
}
