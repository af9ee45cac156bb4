package waves

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptCurve evaluates a tengo script per sample. The script reads the
// global t (seconds) and must assign a number to value.
//
//	math := import("math")
//	value := 1 + math.pow(t / 300, 2)
type ScriptCurve struct {
	Name     string
	Fallback float64
	Log      *slog.Logger

	compiled *tengo.Compiled
	failed   bool
}

// NewScriptCurve compiles src once.
func NewScriptCurve(name string, src []byte) (*ScriptCurve, error) {
	script := tengo.NewScript(src)
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("waves: script %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("waves: compile script %s: %w", name, err)
	}
	return &ScriptCurve{Name: name, Fallback: 1, compiled: compiled}, nil
}

func (c *ScriptCurve) Evaluate(t float64) float64 {
	if c == nil || c.compiled == nil {
		return 1
	}
	v, err := c.eval(t)
	if err != nil {
		if !c.failed && c.Log != nil {
			c.Log.Warn("curve script failed, using fallback", "curve", c.Name, "err", err)
		}
		c.failed = true
		return c.Fallback
	}
	return v
}

func (c *ScriptCurve) eval(t float64) (float64, error) {
	if err := c.compiled.Set("t", t); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}
	if !c.compiled.IsDefined("value") {
		return 0, fmt.Errorf("value not defined")
	}
	v := c.compiled.Get("value")
	switch v.ValueType() {
	case "int", "float":
		return v.Float(), nil
	}
	return 0, fmt.Errorf("value is %s, want number", v.ValueType())
}
