package waves

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/vanguard/common"
)

// Curve maps elapsed game time to a multiplier.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a function to Curve.
type CurveFunc func(t float64) float64

func (f CurveFunc) Evaluate(t float64) float64 { return f(t) }

// Constant is a flat curve.
type Constant float64

func (c Constant) Evaluate(float64) float64 { return float64(c) }

// Interp selects how a KeyCurve blends between keys.
type Interp int

const (
	InterpLinear Interp = iota
	// InterpEase uses zero tangents at every key, so each segment eases in
	// and out.
	InterpEase
)

func ParseInterp(s string) (Interp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return InterpLinear, nil
	case "ease", "ease_in_out", "easeinout":
		return InterpEase, nil
	}
	return InterpLinear, fmt.Errorf("waves: unknown interpolation %q", s)
}

// Keyframe is one point on a KeyCurve.
type Keyframe struct {
	Time  float64
	Value float64
}

// KeyCurve is a piecewise curve through sorted keys. Outside the key range
// it holds the first or last value.
type KeyCurve struct {
	Keys   []Keyframe
	Interp Interp
}

// NewKeyCurve copies and sorts keys by time.
func NewKeyCurve(interp Interp, keys ...Keyframe) *KeyCurve {
	sorted := append([]Keyframe(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &KeyCurve{Keys: sorted, Interp: interp}
}

// Linear is a two-key straight line.
func Linear(t0, v0, t1, v1 float64) *KeyCurve {
	return NewKeyCurve(InterpLinear, Keyframe{t0, v0}, Keyframe{t1, v1})
}

// EaseInOut is a two-key curve with flat ends.
func EaseInOut(t0, v0, t1, v1 float64) *KeyCurve {
	return NewKeyCurve(InterpEase, Keyframe{t0, v0}, Keyframe{t1, v1})
}

func (c *KeyCurve) Evaluate(t float64) float64 {
	if c == nil || len(c.Keys) == 0 {
		return 1
	}
	first, last := c.Keys[0], c.Keys[len(c.Keys)-1]
	if t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}
	i := sort.Search(len(c.Keys), func(i int) bool { return c.Keys[i].Time > t })
	a, b := c.Keys[i-1], c.Keys[i]
	u := common.InverseLerp(a.Time, b.Time, t)
	if c.Interp == InterpEase {
		return common.SmoothStep(a.Value, b.Value, u)
	}
	return common.Lerp(a.Value, b.Value, u)
}

// Eval evaluates c, treating a nil curve as a flat 1.
func Eval(c Curve, t float64) float64 {
	if c == nil {
		return 1
	}
	return c.Evaluate(t)
}
