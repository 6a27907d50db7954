package view

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/scad/log"
)

const defaultEditor = "vi"

// editModelCommand implements [tea.ExecCommand] for the edit-render-retry
// loop. It opens the model file in the user's editor and renders the result.
// If the model no longer renders, the user is prompted to re-edit; declining
// returns [ErrEditDeclined] and leaves the previous source on screen.
type editModelCommand struct {
	path    string
	ctxFunc func() context.Context
	logger  log.Logger
	source  string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editModelCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editModelCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editModelCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-render-retry loop.
func (c *editModelCommand) Run() error {
	ctx := c.ctxFunc()

	for {
		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, c.path); err != nil {
			return err
		}

		source, err := load(ctx, c.path, c.logger)

		c.logger.TraceContext(
			ctx,
			"editor render attempt",
			slog.String("path", c.path),
			slog.Bool("success", err == nil),
		)

		if err == nil {
			c.source = source

			return nil
		}

		fmt.Fprintf(c.stderr, "\nRender error: %s\n", err)
		fmt.Fprintf(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return ErrEditDeclined
		}
	}
}

// runEditor launches the user's editor on the given file path.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
