package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ardnew/scad/lang"
	"github.com/ardnew/scad/log"
)

// Diff compares a model's rendered source with an existing file.
type Diff struct {
	Against string `help:"Existing source to compare (default: the model's .scad file)." short:"a" type:"path"`
	Context int    `default:"3"                                                         help:"Unchanged lines shown around each change." short:"C"`
	Color   string `default:"auto"                                                      enum:"auto,always,never"                          help:"Colorize output."`
	Escape  bool   `help:"Escape quotes and backslashes in string literals."`

	Model string `arg:"" help:"Model file or '-' for stdin." name:"model"`
}

// Run executes the diff command. It returns [ErrOutOfDate] if the rendered
// source differs from the existing file, which is treated as empty if it
// does not exist.
func (d *Diff) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	against := d.Against
	if against == "" {
		if d.Model == stdinSource {
			return ErrStdinTarget.With(slog.String("hint", "use --against"))
		}

		against = filepath.Join(
			filepath.Dir(d.Model),
			lang.ScadFilename(filepath.Base(d.Model)),
		)
	}

	rendered, err := renderSource(ctx, d.Model, lang.WithStringEscaping(d.Escape))
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(against)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return lang.WrapError(err).With(slog.String("against", against))
	}

	ops := diffLines(string(existing), rendered)
	if !changed(ops) {
		log.InfoContext(ctx, "up to date",
			slog.String("model", d.Model),
			slog.String("against", against),
		)

		return nil
	}

	p := newPalette(colorEnabled(d.Color, stdout))

	p.hunk.Fprintf(stdout, "--- %s\n+++ %s (rendered)\n", against, d.Model)

	if err := writeDiff(stdout, ops, d.Context, p); err != nil {
		return err
	}

	return ErrOutOfDate.With(
		slog.String("model", d.Model),
		slog.String("against", against),
	)
}

// lineOp is one line of a line-oriented diff.
type lineOp struct {
	op   diffmatchpatch.Operation
	text string
}

// diffLines returns the line-level edit script that turns a into b.
func diffLines(a, b string) []lineOp {
	dmp := diffmatchpatch.New()

	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var ops []lineOp

	for _, diff := range diffs {
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}

			ops = append(ops, lineOp{diff.Type, strings.TrimSuffix(line, "\n")})
		}
	}

	return ops
}

func changed(ops []lineOp) bool {
	for _, o := range ops {
		if o.op != diffmatchpatch.DiffEqual {
			return true
		}
	}

	return false
}

type palette struct {
	del, ins, hunk *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		del:  color.New(color.FgRed),
		ins:  color.New(color.FgGreen),
		hunk: color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.del, p.ins, p.hunk} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// colorEnabled resolves mode (auto, always, never) for output to w. In auto
// mode color is used only on a terminal and when NO_COLOR is unset.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeDiff writes ops to w, keeping only the unchanged lines within around
// lines of a change. Each run of kept lines is introduced by a hunk
// marker naming its first line number in the rendered source.
func writeDiff(w io.Writer, ops []lineOp, around int, p palette) error {
	keep := make([]bool, len(ops))

	for i, o := range ops {
		if o.op == diffmatchpatch.DiffEqual {
			continue
		}

		for j := max(0, i-around); j <= min(len(ops)-1, i+around); j++ {
			keep[j] = true
		}
	}

	gap, line := true, 0

	for i, o := range ops {
		if o.op != diffmatchpatch.DiffDelete {
			line++
		}

		if !keep[i] {
			gap = true

			continue
		}

		if gap {
			at := line
			if o.op == diffmatchpatch.DiffDelete {
				at++
			}

			if _, err := p.hunk.Fprintf(w, "@@ +%d @@\n", at); err != nil {
				return err
			}

			gap = false
		}

		var err error

		switch o.op {
		case diffmatchpatch.DiffDelete:
			_, err = p.del.Fprintln(w, "-"+o.text)
		case diffmatchpatch.DiffInsert:
			_, err = p.ins.Fprintln(w, "+"+o.text)
		default:
			_, err = io.WriteString(w, " "+o.text+"\n")
		}

		if err != nil {
			return err
		}
	}

	return nil
}
