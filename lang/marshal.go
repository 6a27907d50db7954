package lang

import (
	"encoding/json"
	"strings"
)

// Prefixes that mark strings with special meaning in exported trees.
const (
	// RefPrefix marks a reference to a declared variable.
	RefPrefix = "@"

	// ExprPrefix marks an expression evaluated when a model is loaded.
	ExprPrefix = "="
)

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// MarshalJSON implements json.Marshaler for Node.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToMap())
}

// ToMap converts the document to a native Go map structure using the same
// layout that the model package reads, so an exported tree can be loaded
// back as a model.
func (d *Document) ToMap() map[string]any {
	result := map[string]any{
		"indent": d.indent,
		"banner": d.banner,
	}

	if specials := d.Specials.Assignments(); len(specials) > 0 {
		m := make(map[string]any, len(specials))
		for _, s := range specials {
			m[s.Name] = ToNative(s.Args[0])
		}

		result["specials"] = m
	}

	if len(d.variables) > 0 {
		vars := make([]any, len(d.variables))

		for i, v := range d.variables {
			m := map[string]any{
				"name":  v.name,
				"value": ToNative(v.value),
			}

			if v.section != "" {
				m["section"] = v.section
			}

			if v.comment != "" {
				m["comment"] = v.comment
			}

			vars[i] = m
		}

		result["variables"] = vars
	}

	if len(d.entries) > 0 {
		entries := make([]any, len(d.entries))
		for i, n := range d.entries {
			entries[i] = n.ToMap()
		}

		result["entries"] = entries
	}

	return result
}

// ToMap converts the node to a native Go map structure.
func (n *Node) ToMap() map[string]any {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case KindModule, KindObject:
		m := map[string]any{"call": n.Name}

		if len(n.Args) > 0 {
			m["args"] = nativeList(n.Args)
		}

		if n.Kind == KindModule {
			if len(n.Children) == 0 {
				m["block"] = true
			} else {
				children := make([]any, len(n.Children))
				for i, c := range n.Children {
					children[i] = c.ToMap()
				}

				m["children"] = children
			}
		}

		return m

	case KindModifier:
		return map[string]any{
			"modifier": n.Symbol.Name(),
			"child":    n.Child.ToMap(),
		}

	case KindAssignment:
		var value any
		if len(n.Args) > 0 {
			value = ToNative(n.Args[0])
		}

		return map[string]any{
			"assign": n.Name,
			"value":  value,
		}

	default:
		return map[string]any{"kind": n.Kind.String()}
	}
}

// ToNative converts a Value to its native Go type.
//
// Variables become RefPrefix+name. Strings that begin with RefPrefix or
// ExprPrefix have that prefix doubled so they read back as literals.
func ToNative(v Value) any {
	switch x := v.(type) {
	case *Variable:
		if x == nil {
			return nil
		}

		return RefPrefix + x.name

	case Number:
		return float64(x)

	case Bool:
		return bool(x)

	case String:
		s := string(x)
		if strings.HasPrefix(s, RefPrefix) || strings.HasPrefix(s, ExprPrefix) {
			s = s[:1] + s
		}

		return s

	case List:
		return nativeList(x)

	case Record:
		m := make(map[string]any, len(x))
		for _, f := range x {
			m[f.Name] = ToNative(f.Value)
		}

		return m

	default:
		return nil
	}
}

func nativeList(l []Value) []any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = ToNative(v)
	}

	return out
}
