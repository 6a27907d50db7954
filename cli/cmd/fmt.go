package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/scad/lang"
)

// Fmt reads a model and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Print rendered OpenSCAD source (default)."`
	JSON   JSON   `cmd:""                    help:"Print the document tree as JSON."`
	YAML   YAML   `cmd:""                    help:"Print the document tree as YAML."`
	AST    AST    `cmd:""                    help:"Print a readable dump of the document tree."`
}

// Native prints rendered OpenSCAD source.
type Native struct {
	Indent string `help:"Indent unit overriding the model's." short:"i"`
	Escape bool   `help:"Escape quotes and backslashes in string literals."`

	Source string `arg:"" default:"-" help:"Model file or '-' for default stdin." name:"source"`
}

// Run executes the native format command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	opts := []lang.Option{lang.WithStringEscaping(f.Escape)}
	if f.Indent != "" {
		opts = append(opts, lang.WithIndent(f.Indent))
	}

	doc, err := buildDocument(ctx, f.Source, opts...)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "native"))
	}

	return doc.Format(ctx, stdout)
}

// JSON prints the document tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Model file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := buildDocument(ctx, j.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	return doc.FormatJSON(ctx, stdout, j.Indent)
}

// YAML prints the document tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`

	Source string `arg:"" default:"-" help:"Model file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := buildDocument(ctx, y.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	if err := doc.FormatYAML(ctx, stdout, y.Indent); err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return nil
}

// AST prints a readable dump of the document tree.
type AST struct {
	Source string `arg:"" default:"-" help:"Model file or '-' for default stdin." name:"source"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	doc, err := buildDocument(ctx, a.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "ast"))
	}

	doc.Print(ctx, stdout)

	return nil
}
