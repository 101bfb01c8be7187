package prefabs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

// Env is the set of variables visible to expressions and route scripts.
type Env map[string]float64

// NewEnv exposes the playfield size as `width` and `height`.
func NewEnv(width, height float64) Env {
	return Env{"width": width, "height": height}
}

// Eval evaluates e. Plain numbers skip the script engine.
func (env Env) Eval(e Expr) (float64, error) {
	src := strings.TrimSpace(string(e))
	if src == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(src, 64); err == nil {
		return v, nil
	}

	script := tengo.NewScript([]byte("__out := " + src))
	script.SetImports(stdlib.GetModuleMap("math"))
	for k, v := range env {
		if err := script.Add(k, v); err != nil {
			return 0, fmt.Errorf("expr %q: bind %s: %w", src, k, err)
		}
	}
	compiled, err := script.Run()
	if err != nil {
		return 0, fmt.Errorf("expr %q: %w", src, err)
	}
	v, err := number(compiled.Get("__out").Value())
	if err != nil {
		return 0, fmt.Errorf("expr %q: %w", src, err)
	}
	return v, nil
}

// Point evaluates both coordinates of p.
func (env Env) Point(p PointSpec) (cp.Vector, error) {
	x, err := env.Eval(p.X)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("x: %w", err)
	}
	y, err := env.Eval(p.Y)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("y: %w", err)
	}
	return cp.Vector{X: x, Y: y}, nil
}

// RunRouteScript runs a route script with the environment and params bound
// as globals and returns the `points` array it builds. Scripts may import
// the tengo math module.
func (env Env) RunRouteScript(name string, params map[string]Expr) ([]cp.Vector, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("route script %s: %w", name, err)
	}

	bound := make(map[string]any, len(params))
	for k, e := range params {
		v, err := env.Eval(e)
		if err != nil {
			return nil, fmt.Errorf("route script %s: param %s: %w", name, k, err)
		}
		bound[k] = v
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for k, v := range env {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("route script %s: bind %s: %w", name, k, err)
		}
	}
	if err := script.Add("params", bound); err != nil {
		return nil, fmt.Errorf("route script %s: bind params: %w", name, err)
	}
	if err := script.Add("points", []any{}); err != nil {
		return nil, fmt.Errorf("route script %s: bind points: %w", name, err)
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("route script %s: %w", name, err)
	}

	raw := compiled.Get("points").Array()
	out := make([]cp.Vector, 0, len(raw))
	for i, item := range raw {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("route script %s: points[%d] is not an [x, y] pair", name, i)
		}
		x, err := number(pair[0])
		if err != nil {
			return nil, fmt.Errorf("route script %s: points[%d].x: %w", name, i, err)
		}
		y, err := number(pair[1])
		if err != nil {
			return nil, fmt.Errorf("route script %s: points[%d].y: %w", name, i, err)
		}
		out = append(out, cp.Vector{X: x, Y: y})
	}
	return out, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("want a number, got %T", v)
	}
}
