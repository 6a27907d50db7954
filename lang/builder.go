package lang

import (
	"log/slog"
	"slices"
)

// Constructor is the result of resolving an identifier with [Resolve].
// It is either a [*Generic] or a [*Prefix].
type Constructor interface {
	Name() string

	constructor()
}

// Generic constructs calls to any named module or object.
type Generic struct {
	name string
}

// Prefix constructs modifier nodes wrapping exactly one child.
type Prefix struct {
	name   string
	symbol Modifier
}

func (*Generic) constructor() {}
func (*Prefix) constructor() {}

// prefixes maps the reserved modifier names to their marker symbols. The
// leading underscore keeps them clear of real module names.
var prefixes = map[string]Modifier{
	"_bg":      ModBackground,
	"_debug":   ModDebug,
	"_root":    ModRoot,
	"_disable": ModDisable,
}

// Resolve returns the constructor for name.
//
// The reserved names "_bg", "_debug", "_root" and "_disable" resolve to a
// [*Prefix]. Every other valid identifier resolves to a [*Generic]; the
// catalog of known builtins is not consulted, so user-defined modules work
// the same way as primitives.
//
// Example:
//
//	c, _ := lang.Resolve("translate")
//	node := c.(*lang.Generic).Call(lang.Vec(10, 0, 0)).With(
//	    lang.Module("cube", lang.Number(5)).Leaf(),
//	)
func Resolve(name string) (Constructor, error) {
	if symbol, ok := prefixes[name]; ok {
		return &Prefix{name: name, symbol: symbol}, nil
	}

	if !IsIdentifier(name) {
		return nil, ErrInvalidIdentifier.With(slog.String("name", name))
	}

	return &Generic{name: name}, nil
}

// IsIdentifier reports whether name is a valid OpenSCAD identifier: a
// letter, underscore or '$' followed by letters, digits, underscores or '$'.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// Name returns the resolved identifier.
func (g *Generic) Name() string { return g.name }

// Call captures construction arguments.
func (g *Generic) Call(args ...Value) *Call {
	return &Call{Name: g.name, Args: args}
}

// Name returns the reserved modifier name.
func (p *Prefix) Name() string { return p.name }

// Symbol returns the marker written before the wrapped node.
func (p *Prefix) Symbol() Modifier { return p.symbol }

// Wrap returns a modifier node around child.
func (p *Prefix) Wrap(child *Node) *Node {
	return NewModifier(p.symbol, child)
}

// Call is a named invocation with captured arguments that has not yet been
// given children. It can become either a module with [Call.With] or an
// object with [Call.Leaf].
type Call struct {
	Name string
	Args []Value
}

// Module returns a [Call] for name without validating the identifier.
func Module(name string, args ...Value) *Call {
	return &Call{Name: name, Args: args}
}

// With returns a module node with the given children.
func (c *Call) With(children ...*Node) *Node {
	return NewModule(c.Name, slices.Clone(c.Args), children...)
}

// Leaf returns an object node.
func (c *Call) Leaf() *Node {
	return NewObject(c.Name, slices.Clone(c.Args)...)
}

// Bg marks child as background (%).
func Bg(child *Node) *Node { return NewModifier(ModBackground, child) }

// Debug highlights child (#).
func Debug(child *Node) *Node { return NewModifier(ModDebug, child) }

// Root renders only child (!).
func Root(child *Node) *Node { return NewModifier(ModRoot, child) }

// Disable excludes child (*).
func Disable(child *Node) *Node { return NewModifier(ModDisable, child) }
