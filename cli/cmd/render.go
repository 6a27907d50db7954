package cmd

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/ardnew/scad/lang"
	"github.com/ardnew/scad/log"
)

// Render builds models and writes their OpenSCAD source.
type Render struct {
	Output  string `help:"Directory for generated files (default: beside each model)." short:"o" type:"path"`
	Stdout  bool   `help:"Write rendered source to stdout instead of files."`
	Verbose bool   `help:"Log rendered source as it is written."                       short:"v"`
	Escape  bool   `help:"Escape quotes and backslashes in string literals."`

	Models []string `arg:"" default:"-" help:"Model file(s) or '-' for stdin." name:"model"`
}

// Run executes the render command. Every model is attempted; the errors of
// those that fail are joined.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var errs []error

	for _, src := range uniqueSources(r.Models) {
		if err := r.render(ctx, src); err != nil {
			log.ErrorContext(ctx, "render failed",
				slog.String("model", src),
				slog.Any("error", err),
			)

			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Render) render(ctx context.Context, src string) error {
	opts := []lang.Option{lang.WithStringEscaping(r.Escape)}

	if r.Stdout {
		doc, err := buildDocument(ctx, src, opts...)
		if err != nil {
			return err
		}

		return doc.Format(ctx, stdout)
	}

	if src == stdinSource {
		return ErrStdinTarget
	}

	dir := r.Output
	if dir == "" {
		dir = filepath.Dir(src)
	}

	doc, err := buildDocument(ctx, src, append(opts, lang.WithSink(fileSink(dir)))...)
	if err != nil {
		return err
	}

	if err := doc.WriteScadFile(ctx, filepath.Base(src), r.Verbose); err != nil {
		return err
	}

	log.InfoContext(ctx, "rendered",
		slog.String("model", src),
		slog.String("output", filepath.Join(dir, lang.ScadFilename(filepath.Base(src)))),
	)

	return nil
}
