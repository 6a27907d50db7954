package model

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/scad/lang"
)

// Build constructs a document from the model. Indent and banner settings in
// the model are applied first, so opts may override them.
//
// Variables are declared in file order; a reference or expression may only
// use variables declared before it.
func (m *Model) Build(ctx context.Context, opts ...lang.Option) (*lang.Document, error) {
	base := []lang.Option{lang.WithLogger(m.logger)}

	if m.Indent != nil {
		base = append(base, lang.WithIndent(*m.Indent))
	}

	if m.Banner != nil {
		base = append(base, lang.WithBanner(*m.Banner))
	}

	doc := lang.New(append(base, opts...)...)
	sc := newScope()

	for _, item := range m.Specials {
		name := fmt.Sprint(item.Key)

		v, err := sc.value(item.Value)
		if err != nil {
			return nil, lang.WrapError(err).With(slog.String("special", name))
		}

		if !doc.Specials.Set(name, v) {
			return nil, ErrInvalidNode.With(
				slog.String("special", name),
				slog.String("issue", "unknown special variable"),
			)
		}
	}

	for i, spec := range m.Variables {
		if !lang.IsIdentifier(spec.Name) {
			return nil, ErrInvalidNode.Wrap(lang.ErrInvalidIdentifier).With(
				slog.Int("variable", i),
				slog.String("name", spec.Name),
			)
		}

		v, err := sc.value(spec.Value)
		if err != nil {
			return nil, lang.WrapError(err).With(slog.String("variable", spec.Name))
		}

		sc.declare(doc.AddVariable(
			spec.Name,
			v,
			lang.WithSection(spec.Section),
			lang.WithComment(spec.Comment),
		))
	}

	for i, raw := range m.Entries {
		n, err := sc.node(raw)
		if err != nil {
			return nil, lang.WrapError(err).With(slog.Int("entry", i))
		}

		doc.Add(n)
	}

	m.logger.DebugContext(
		ctx,
		"model built",
		slog.Int("variable_count", len(m.Variables)),
		slog.Int("entry_count", len(m.Entries)),
	)

	return doc, nil
}

// node converts one decoded entry into a node.
func (s *scope) node(raw any) (*lang.Node, error) {
	fields, err := mapping(raw)
	if err != nil {
		return nil, err
	}

	switch {
	case fields.has(keyCall):
		return s.call(fields)

	case fields.has(keyModifier):
		return s.modifier(fields)

	case fields.has(keyAssign):
		return s.assign(fields)

	default:
		return nil, ErrInvalidNode.With(
			slog.String("issue", "entry needs one of call, modifier or assign"),
			slog.String("keys", strings.Join(fields.keys(), ",")),
		)
	}
}

func (s *scope) call(fields entry) (*lang.Node, error) {
	if err := fields.only(keyCall, keyArgs, keyChildren, keyBlock); err != nil {
		return nil, err
	}

	name, err := fields.text(keyCall)
	if err != nil {
		return nil, err
	}

	c, err := lang.Resolve(name)
	if err != nil {
		return nil, ErrInvalidNode.Wrap(err)
	}

	g, ok := c.(*lang.Generic)
	if !ok {
		return nil, ErrInvalidNode.With(
			slog.String("call", name),
			slog.String("issue", "modifier used as call"),
		)
	}

	rawArgs, err := fields.list(keyArgs)
	if err != nil {
		return nil, err
	}

	args := make([]lang.Value, len(rawArgs))

	for i, a := range rawArgs {
		if args[i], err = s.value(a); err != nil {
			return nil, lang.WrapError(err).With(
				slog.String("call", name),
				slog.Int("arg", i),
			)
		}
	}

	rawChildren, err := fields.list(keyChildren)
	if err != nil {
		return nil, err
	}

	block, err := fields.flag(keyBlock)
	if err != nil {
		return nil, err
	}

	if len(rawChildren) == 0 && !block {
		return g.Call(args...).Leaf(), nil
	}

	children := make([]*lang.Node, len(rawChildren))

	for i, rc := range rawChildren {
		if children[i], err = s.node(rc); err != nil {
			return nil, lang.WrapError(err).With(
				slog.String("parent", name),
				slog.Int("child", i),
			)
		}
	}

	return g.Call(args...).With(children...), nil
}

// modifiers maps the short modifier names of model files to their symbols.
// The reserved constructor names ("_debug" and so on) are accepted too.
var modifiers = map[string]lang.Modifier{
	"bg":      lang.ModBackground,
	"debug":   lang.ModDebug,
	"root":    lang.ModRoot,
	"disable": lang.ModDisable,
}

func (s *scope) modifier(fields entry) (*lang.Node, error) {
	if err := fields.only(keyModifier, keyChild); err != nil {
		return nil, err
	}

	name, err := fields.text(keyModifier)
	if err != nil {
		return nil, err
	}

	symbol, ok := modifiers[name]
	if !ok {
		c, err := lang.Resolve(name)
		if err != nil {
			return nil, ErrInvalidNode.Wrap(err)
		}

		p, ok := c.(*lang.Prefix)
		if !ok {
			return nil, ErrInvalidNode.With(
				slog.String("modifier", name),
				slog.String("issue", "want one of bg, debug, root, disable"),
			)
		}

		symbol = p.Symbol()
	}

	raw, ok := fields.get(keyChild)
	if !ok || raw == nil {
		return nil, ErrInvalidNode.With(
			slog.String("modifier", name),
			slog.String("issue", "missing child"),
		)
	}

	child, err := s.node(raw)
	if err != nil {
		return nil, err
	}

	return lang.NewModifier(symbol, child), nil
}

func (s *scope) assign(fields entry) (*lang.Node, error) {
	if err := fields.only(keyAssign, keyValue); err != nil {
		return nil, err
	}

	name, err := fields.text(keyAssign)
	if err != nil {
		return nil, err
	}

	if !lang.IsIdentifier(name) {
		return nil, ErrInvalidNode.Wrap(lang.ErrInvalidIdentifier).
			With(slog.String("assign", name))
	}

	raw, _ := fields.get(keyValue)

	v, err := s.value(raw)
	if err != nil {
		return nil, lang.WrapError(err).With(slog.String("assign", name))
	}

	return lang.NewAssignment(name, v), nil
}

// value converts a decoded scalar, sequence or mapping into a value,
// resolving references and evaluating expressions.
func (s *scope) value(raw any) (lang.Value, error) {
	switch x := raw.(type) {
	case string:
		switch {
		case strings.HasPrefix(x, lang.RefPrefix+lang.RefPrefix),
			strings.HasPrefix(x, lang.ExprPrefix+lang.ExprPrefix):
			return lang.String(x[1:]), nil

		case strings.HasPrefix(x, lang.RefPrefix):
			return s.lookup(x[len(lang.RefPrefix):])

		case strings.HasPrefix(x, lang.ExprPrefix):
			return s.eval(x[len(lang.ExprPrefix):])
		}

		return lang.String(x), nil

	case []any:
		l := make(lang.List, len(x))

		for i, e := range x {
			v, err := s.value(e)
			if err != nil {
				return nil, err
			}

			l[i] = v
		}

		return l, nil

	case yaml.MapSlice, map[string]any:
		fields, err := mapping(x)
		if err != nil {
			return nil, err
		}

		r := make(lang.Record, 0, len(fields))

		for _, item := range fields {
			v, err := s.value(item.Value)
			if err != nil {
				return nil, lang.WrapError(err).With(slog.String("field", item.Key.(string)))
			}

			r = r.Set(item.Key.(string), v)
		}

		return r, nil
	}

	return lang.ValueOf(raw)
}
