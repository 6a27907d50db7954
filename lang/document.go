package lang

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/scad/log"
)

// Sink persists rendered source text. The document never touches storage
// itself; dest is passed through uninterpreted.
type Sink interface {
	Write(dest, text string) error
}

// SinkFunc adapts an ordinary function to a [Sink].
type SinkFunc func(dest, text string) error

// Write implements [Sink].
func (f SinkFunc) Write(dest, text string) error { return f(dest, text) }

// Document is the root of a generated OpenSCAD file. It accumulates
// declared variables and top-level entries, and renders them in order.
//
// A Document is not safe for concurrent mutation. Rendering does not modify
// it and may be repeated.
type Document struct {
	// Specials are written before all variables.
	Specials Specials

	entries   []*Node
	variables []*Variable
	indent    string
	banner    string
	escape    bool
	sink      Sink
	logger    log.Logger
}

// New returns an empty document configured by opts.
func New(opts ...Option) *Document {
	d := &Document{}

	applyDefaults(d)
	applyOptions(d, opts...)

	return d
}

// AddVariable declares a variable and returns it for use as a [Value].
// Names are not checked for uniqueness.
func (d *Document) AddVariable(
	name string,
	value Value,
	opts ...VariableOption,
) *Variable {
	v := &Variable{name: name, value: value}
	for _, opt := range opts {
		opt(v)
	}

	d.variables = append(d.variables, v)

	d.logger.Trace(
		"variable declared",
		slog.String("name", name),
		slog.String("section", v.section),
	)

	return v
}

// Add appends a top-level entry and returns it.
func (d *Document) Add(node *Node) *Node {
	d.entries = append(d.entries, node)

	return node
}

// AddMultiple appends top-level entries in order and returns them.
func (d *Document) AddMultiple(nodes ...*Node) []*Node {
	d.entries = append(d.entries, nodes...)

	return nodes
}

// Entries returns the top-level entries in the order they were added.
func (d *Document) Entries() []*Node { return d.entries }

// Variables returns the declared variables in declaration order.
func (d *Document) Variables() []*Variable { return d.variables }

// Indent returns the indentation unit.
func (d *Document) Indent() string { return d.indent }

// Banner returns the banner text.
func (d *Document) Banner() string { return d.banner }

// Render returns the complete source text: the banner, the specials block,
// unsectioned variables, one block per section in alphabetical order, and
// finally the top-level entries.
//
// If any node or value cannot be written, no text is returned.
func (d *Document) Render(ctx context.Context) (string, error) {
	d.logger.TraceContext(
		ctx,
		"render start",
		slog.Int("variable_count", len(d.variables)),
		slog.Int("entry_count", len(d.entries)),
	)

	specials, err := d.writeSpecials()
	if err != nil {
		return "", err
	}

	variables, err := d.writeVariables()
	if err != nil {
		return "", err
	}

	entries, err := d.Compile(d.entries...)
	if err != nil {
		return "", err
	}

	text := d.banner + "\n" + specials + "\n" + variables + "\n" + entries

	d.logger.TraceContext(ctx, "render complete", slog.Int("length", len(text)))

	return text, nil
}

func (d *Document) writeSpecials() (string, error) {
	nodes := d.Specials.Assignments()
	if len(nodes) == 0 {
		return "", nil
	}

	text := make([]string, len(nodes))

	for i, n := range nodes {
		s, err := d.WriteNode(0, n)
		if err != nil {
			return "", err
		}

		text[i] = s
	}

	return "/* Specials */\n\n" + strings.Join(text, "\n") + "\n", nil
}

func (d *Document) writeVariables() (string, error) {
	var (
		buf         strings.Builder
		unsectioned []*Variable
	)

	sections := make(map[string][]*Variable)

	for _, v := range d.variables {
		if v.section == "" {
			unsectioned = append(unsectioned, v)
		} else {
			sections[v.section] = append(sections[v.section], v)
		}
	}

	if len(unsectioned) > 0 {
		text, err := d.writeDeclarations(unsectioned)
		if err != nil {
			return "", err
		}

		buf.WriteString("/* Variables */\n\n" + text + "\n")
	}

	for _, name := range slices.Sorted(maps.Keys(sections)) {
		text, err := d.writeDeclarations(sections[name])
		if err != nil {
			return "", err
		}

		buf.WriteString("/* [ " + name + " ] */\n\n" + text)
	}

	if len(sections) > 0 {
		buf.WriteString("\n")
	}

	return buf.String(), nil
}

func (d *Document) writeDeclarations(vars []*Variable) (string, error) {
	text := make([]string, len(vars))

	for i, v := range vars {
		s, err := d.WriteDeclaration(v)
		if err != nil {
			return "", err
		}

		text[i] = s
	}

	return strings.Join(text, "\n"), nil
}

// WriteDeclaration returns the declaration statement for v, preceded by
// its comment line if it has one, and followed by a newline.
func (d *Document) WriteDeclaration(v *Variable) (string, error) {
	s, err := d.WriteNode(0, v.Node())
	if err != nil {
		return "", err
	}

	if v.comment != "" {
		s = "// " + v.comment + "\n" + s
	}

	return s + "\n", nil
}

// WriteOutput renders the document and hands the text to the configured
// sink under the name dest. If verbose is set, the rendered text is also
// logged at info level.
func (d *Document) WriteOutput(
	ctx context.Context,
	dest string,
	verbose bool,
) error {
	if d.sink == nil {
		return ErrMissingSink.With(slog.String("dest", dest))
	}

	text, err := d.Render(ctx)
	if err != nil {
		return err
	}

	if verbose {
		logger := d.logger
		if logger.Logger == nil {
			logger = log.Default()
		}

		logger.InfoContext(
			ctx,
			"rendered output",
			slog.String("dest", dest),
			slog.String("source", text),
		)
	}

	if err := d.sink.Write(dest, text); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("dest", dest))
	}

	d.logger.DebugContext(
		ctx,
		"output written",
		slog.String("dest", dest),
		slog.Int("length", len(text)),
	)

	return nil
}

// WriteScadFile is like [Document.WriteOutput] with the destination derived
// from src by [ScadFilename].
func (d *Document) WriteScadFile(
	ctx context.Context,
	src string,
	verbose bool,
) error {
	return d.WriteOutput(ctx, ScadFilename(src), verbose)
}
