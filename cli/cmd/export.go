package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/ardnew/scad/lang"
	"github.com/ardnew/scad/log"
)

// openscadPathEnv names the environment variable OpenSCAD searches for
// library files.
const openscadPathEnv = "OPENSCADPATH"

// Export renders a model and converts it with the OpenSCAD executable.
type Export struct {
	Output   string   `help:"Output file; its extension selects the format (stl, off, amf, 3mf, dxf, svg, png)." required:""         short:"o" type:"path"`
	OpenSCAD string   `default:"openscad"                                                                      help:"OpenSCAD executable." name:"openscad"`
	Lib      []string `help:"Library directory prepended to OPENSCADPATH."                               short:"L"                   type:"path"`
	Arg      []string `help:"Extra argument passed to OpenSCAD."`
	Keep     bool     `help:"Keep the rendered source beside the output file."`

	Model string `arg:"" help:"Model file or '-' for stdin." name:"model"`
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	dir := filepath.Dir(e.Output)

	if !e.Keep {
		dir, err = os.MkdirTemp("", "scad-export-*")
		if err != nil {
			return ErrExport.Wrap(err)
		}

		defer os.RemoveAll(dir)
	}

	doc, err := buildDocument(ctx, e.Model, lang.WithSink(fileSink(dir)))
	if err != nil {
		return err
	}

	name := filepath.Base(e.Output)
	if e.Model != stdinSource {
		name = filepath.Base(e.Model)
	}

	if err := doc.WriteScadFile(ctx, name, false); err != nil {
		return err
	}

	source := filepath.Join(dir, lang.ScadFilename(name))
	args := append(append([]string{}, e.Arg...), "-o", e.Output, source)
	path := openscadPath(os.Getenv(openscadPathEnv), e.Lib...)

	// OpenSCAD reports progress, echo() output, and warnings on stderr.
	output := log.Default().LineWriter(ctx, log.LevelInfo, "openscad", "output",
		slog.String("model", e.Model),
	)

	cmd := exec.CommandContext(ctx, e.OpenSCAD, args...)
	cmd.Env = append(os.Environ(), openscadPathEnv+"="+path)
	cmd.Stdout = stdout
	cmd.Stderr = output

	log.DebugContext(ctx, "export start",
		slog.String("openscad", e.OpenSCAD),
		slog.Any("args", args),
		slog.String(openscadPathEnv, path),
	)

	runErr := cmd.Run()

	if err = errors.Join(runErr, output.Close()); err != nil {
		return ErrExport.Wrap(err).With(
			slog.String("model", e.Model),
			slog.String("output", e.Output),
		)
	}

	log.InfoContext(ctx, "exported",
		slog.String("model", e.Model),
		slog.String("output", e.Output),
	)

	return nil
}

// openscadPath returns the library search path current with the absolute
// form of each directory in lib prepended.
func openscadPath(current string, lib ...string) string {
	prefix := make([]string, 0, len(lib))

	for _, dir := range lib {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}

		prefix = append(prefix, dir)
	}

	return mung.Make(
		mung.WithSubjectItems(current),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}
