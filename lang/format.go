package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
)

// WriteNode returns the source text for n at the given nesting depth.
//
// The first line is not indented; callers place it. Lines of nested
// children are indented by depth+1 units of the document's indent string.
func (d *Document) WriteNode(depth int, n *Node) (string, error) {
	if n == nil {
		return "", ErrUnrecognizedNode.With(slog.String("node", "nil"))
	}

	switch n.Kind {
	case KindModule:
		return d.writeModule(depth, n.Name, n.Args, n.Children)

	case KindObject:
		return d.writeObject(n.Name, n.Args)

	case KindModifier:
		return d.writeModifier(depth, n.Symbol, n.Child)

	case KindAssignment:
		return d.writeAssignment(n.Name, n.Args)

	default:
		return "", ErrUnrecognizedNode.With(
			slog.Int("kind", int(n.Kind)),
			slog.String("name", n.Name),
		)
	}
}

// Compile returns the source text for nodes, each written at depth 0 and
// separated by newlines.
func (d *Document) Compile(nodes ...*Node) (string, error) {
	text := make([]string, len(nodes))

	for i, n := range nodes {
		s, err := d.WriteNode(0, n)
		if err != nil {
			return "", err
		}

		text[i] = s
	}

	return strings.Join(text, "\n"), nil
}

func (d *Document) writeIndent(depth int) string {
	return strings.Repeat(d.indent, depth)
}

func (d *Document) writeModule(
	depth int,
	name string,
	args []Value,
	children []*Node,
) (string, error) {
	argText, err := d.WriteArgs(args)
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	buf.WriteString(name + "(" + argText + ") {\n")

	for i, c := range children {
		s, err := d.WriteNode(depth+1, c)
		if err != nil {
			return "", err
		}

		if i > 0 {
			buf.WriteByte('\n')
		}

		buf.WriteString(d.writeIndent(depth+1) + s)
	}

	if len(children) > 0 {
		buf.WriteByte('\n')
	}

	buf.WriteString(d.writeIndent(depth) + "}")

	return buf.String(), nil
}

func (d *Document) writeObject(name string, args []Value) (string, error) {
	argText, err := d.WriteArgs(args)
	if err != nil {
		return "", err
	}

	return name + "(" + argText + ");", nil
}

// writeAssignment writes the single assigned value outside argument
// position, so a record is rejected rather than expanded.
func (d *Document) writeAssignment(name string, args []Value) (string, error) {
	var value Value
	if len(args) > 0 {
		value = args[0]
	}

	s, err := d.WriteValue(value, false)
	if err != nil {
		return "", err
	}

	return name + " = " + s + ";", nil
}

func (d *Document) writeModifier(
	depth int,
	symbol Modifier,
	child *Node,
) (string, error) {
	s, err := d.WriteNode(depth, child)
	if err != nil {
		return "", err
	}

	return string(symbol) + s, nil
}

// Format writes the rendered document to w.
func (d *Document) Format(ctx context.Context, w io.Writer) error {
	text, err := d.Render(ctx)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, text)

	return err
}

// FormatJSON writes the document tree as JSON to the writer.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(d, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(d)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the document tree as YAML to the writer.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, d.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// Print writes a human-readable dump of the document tree to w.
func (d *Document) Print(_ context.Context, w io.Writer) {
	put := writer(w)

	for _, v := range d.variables {
		put("\n", "Variable", v.name)

		if v.section != "" {
			put("\n", "  Section", v.section)
		}

		put("\n", "  Value", describe(v.value))
	}

	for _, n := range d.entries {
		n.Print(w, 0)
	}
}

// Print writes a human-readable dump of n and its descendants to w.
func (n *Node) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	put := writer(w)

	if n == nil {
		put("\n", prefix+"(nil)")

		return
	}

	switch n.Kind {
	case KindModifier:
		put("\n", prefix+n.Kind.String(), string(n.Symbol))
		n.Child.Print(w, indent+1)

	default:
		put("\n", prefix+n.Kind.String(), n.Name)

		for _, arg := range n.Args {
			put("\n", prefix+"  Arg", describe(arg))
		}

		for _, c := range n.Children {
			c.Print(w, indent+1)
		}
	}
}

func writer(w io.Writer) func(eol string, item ...string) {
	return func(eol string, item ...string) {
		_, err := io.WriteString(w, strings.Join(item, ": ")+eol)
		if err != nil {
			panic(err)
		}
	}
}

// describe returns a compact, always-successful rendering of v for
// diagnostics.
func describe(v Value) string {
	switch x := v.(type) {
	case nil:
		return "(absent)"

	case *Variable:
		if x == nil {
			return "(nil)"
		}

		return "@" + x.name

	case Number:
		return formatNumber(float64(x))

	case Bool:
		return fmt.Sprint(bool(x))

	case String:
		return fmt.Sprintf("%q", string(x))

	case List:
		elem := make([]string, len(x))
		for i, e := range x {
			elem[i] = describe(e)
		}

		return "[" + strings.Join(elem, ", ") + "]"

	case Record:
		elem := make([]string, len(x))
		for i, f := range x {
			elem[i] = f.Name + "=" + describe(f.Value)
		}

		return "{" + strings.Join(elem, ", ") + "}"

	default:
		return typeName(v)
	}
}
