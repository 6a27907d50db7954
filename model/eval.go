package model

import (
	"log/slog"
	"math"

	"github.com/expr-lang/expr"

	"github.com/ardnew/scad/lang"
)

// scope holds the variables declared so far while building a model.
type scope struct {
	refs map[string]*lang.Variable
	env  map[string]any
}

func newScope() *scope {
	return &scope{
		refs: make(map[string]*lang.Variable),
		env: map[string]any{
			"PI": math.Pi,
		},
	}
}

func (s *scope) declare(v *lang.Variable) {
	s.refs[v.Name()] = v
	s.env[v.Name()] = native(v)
}

func (s *scope) lookup(name string) (*lang.Variable, error) {
	v, ok := s.refs[name]
	if !ok {
		return nil, ErrUndefinedVariable.With(slog.String("name", name))
	}

	return v, nil
}

// eval compiles and runs an expr-lang expression against the declared
// variables and converts the result to a literal value.
func (s *scope) eval(src string) (lang.Value, error) {
	program, err := expr.Compile(src, expr.Env(s.env))
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).With(slog.String("expr", src))
	}

	out, err := expr.Run(program, s.env)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("expr", src))
	}

	v, err := lang.ValueOf(out)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("expr", src))
	}

	return v, nil
}

// native returns the Go value an expression sees for v. References are
// followed to the referenced variable's current value.
func native(v lang.Value) any {
	switch x := v.(type) {
	case *lang.Variable:
		if x == nil {
			return nil
		}

		return native(x.Value())

	case lang.Number:
		return float64(x)

	case lang.Bool:
		return bool(x)

	case lang.String:
		return string(x)

	case lang.List:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = native(e)
		}

		return out

	case lang.Record:
		out := make(map[string]any, len(x))
		for _, f := range x {
			out[f.Name] = native(f.Value)
		}

		return out

	default:
		return nil
	}
}
