package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/scad/cli/cmd/view"
	"github.com/ardnew/scad/lang"
)

var (
	catalogNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	catalogMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	catalogParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Catalog lists the OpenSCAD builtins known to scad.
type Catalog struct {
	Kind string `default:"all" enum:"all,module,object" help:"Only list builtins of this kind."`

	Query string `arg:"" help:"Fuzzy pattern matched against builtin names." optional:""`
}

// builtinNames adapts a builtin slice to [fuzzy.Source].
type builtinNames []lang.Builtin

func (b builtinNames) String(i int) string { return b[i].Name }
func (b builtinNames) Len() int            { return len(b) }

// Run executes the catalog command. Without a query, builtins are listed in
// catalog order; otherwise best matches come first.
func (c *Catalog) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	entries := slices.DeleteFunc(
		slices.Collect(lang.Builtins()),
		func(b lang.Builtin) bool {
			return c.Kind != "all" && !strings.EqualFold(b.Kind.String(), c.Kind)
		},
	)

	var matches fuzzy.Matches

	if c.Query == "" {
		matches = make(fuzzy.Matches, len(entries))
		for i, b := range entries {
			matches[i] = fuzzy.Match{Str: b.Name, Index: i}
		}
	} else {
		matches = fuzzy.FindFrom(c.Query, builtinNames(entries))
	}

	if len(matches) == 0 {
		return ErrNoMatch.With(
			slog.String("query", c.Query),
			slog.String("kind", c.Kind),
		)
	}

	return writeCatalog(stdout, entries, matches)
}

// writeCatalog writes one aligned line per match: the highlighted name, its
// parameters, and a summary.
func writeCatalog(w io.Writer, entries []lang.Builtin, matches fuzzy.Matches) error {
	nameWidth, sigWidth := 0, 0

	for _, m := range matches {
		b := entries[m.Index]
		nameWidth = max(nameWidth, len(b.Name))
		sigWidth = max(sigWidth, len(b.Signature())-len(b.Name))
	}

	for _, m := range matches {
		b := entries[m.Index]
		params := strings.TrimPrefix(b.Signature(), b.Name)

		_, err := fmt.Fprintf(w, "%s%s  %s%s  %s\n",
			view.Highlight(m, catalogNameStyle, catalogMatchStyle),
			strings.Repeat(" ", nameWidth-len(b.Name)),
			catalogParamStyle.Render(params),
			strings.Repeat(" ", sigWidth-len(params)),
			b.Summary,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
