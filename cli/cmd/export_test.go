package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ardnew/scad/log"
)

type brokenLog struct{}

func (brokenLog) Write([]byte) (int, error) { return 0, errors.New("log closed") }

// fakeOpenSCAD writes a script that records its arguments, OPENSCADPATH and
// input source, then creates the requested output file.
func fakeOpenSCAD(t *testing.T, dir string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake executable requires a POSIX shell")
	}

	script := `#!/bin/sh
log="` + filepath.Join(dir, "invocation") + `"
printf '%s\n' "$@" > "$log"
printf 'path=%s\n' "$OPENSCADPATH" >> "$log"
while [ $# -gt 1 ]; do
	if [ "$1" = "-o" ]; then out="$2"; fi
	shift
done
cat "$1" > "$out"
echo "Total rendering time: 0:00:00.001" >&2
`

	path := filepath.Join(dir, "openscad")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestExport_Run(t *testing.T) {
	bin := t.TempDir()
	exe := fakeOpenSCAD(t, bin)

	out := t.TempDir()
	src := writeFile(t, t.TempDir(), "bracket.yaml", bracketModel)
	lib := t.TempDir()

	t.Setenv(openscadPathEnv, "/usr/share/openscad/libraries")

	cmd := &Export{
		Output:   filepath.Join(out, "bracket.stl"),
		OpenSCAD: exe,
		Lib:      []string{lib},
		Arg:      []string{"--export-format=binstl"},
		Model:    src,
	}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Export.Run() error = %v", err)
	}

	got, err := os.ReadFile(cmd.Output)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != bracketSource {
		t.Errorf("OpenSCAD input = %q, want %q", got, bracketSource)
	}

	inv, err := os.ReadFile(filepath.Join(bin, "invocation"))
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(inv)), "\n")
	if len(lines) != 5 {
		t.Fatalf("invocation = %q", lines)
	}

	if lines[0] != "--export-format=binstl" || lines[1] != "-o" || lines[2] != cmd.Output {
		t.Errorf("arguments = %q", lines[:3])
	}

	if filepath.Base(lines[3]) != "bracket.scad" {
		t.Errorf("source argument = %q", lines[3])
	}

	if !strings.HasPrefix(lines[4], "path="+lib) ||
		!strings.Contains(lines[4], "/usr/share/openscad/libraries") {
		t.Errorf("OPENSCADPATH = %q", lines[4])
	}

	// The rendered source is removed unless kept.
	if _, err := os.Stat(lines[3]); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temporary source %q still exists", lines[3])
	}
}

func TestExport_Keep(t *testing.T) {
	exe := fakeOpenSCAD(t, t.TempDir())

	out := t.TempDir()
	src := writeFile(t, t.TempDir(), "bracket.yaml", bracketModel)

	cmd := &Export{
		Output:   filepath.Join(out, "bracket.stl"),
		OpenSCAD: exe,
		Keep:     true,
		Model:    src,
	}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Export.Run() error = %v", err)
	}

	kept, err := os.ReadFile(filepath.Join(out, "bracket.scad"))
	if err != nil {
		t.Fatalf("rendered source not kept: %v", err)
	}

	if string(kept) != bracketSource {
		t.Errorf("kept source = %q", kept)
	}
}

func TestExport_Failure(t *testing.T) {
	src := writeFile(t, t.TempDir(), "bracket.yaml", bracketModel)

	cmd := &Export{
		Output:   filepath.Join(t.TempDir(), "bracket.stl"),
		OpenSCAD: filepath.Join(t.TempDir(), "no-such-openscad"),
		Model:    src,
	}

	if err := cmd.Run(context.Background()); !errors.Is(err, ErrExport) {
		t.Errorf("Export.Run() error = %v, want ErrExport", err)
	}
}

func TestExport_LogFailure(t *testing.T) {
	exe := fakeOpenSCAD(t, t.TempDir())
	src := writeFile(t, t.TempDir(), "bracket.yaml", bracketModel)

	saved := log.Default()
	t.Cleanup(func() { log.SetDefault(saved) })
	log.SetDefault(log.Make(brokenLog{}))

	cmd := &Export{
		Output:   filepath.Join(t.TempDir(), "bracket.stl"),
		OpenSCAD: exe,
		Model:    src,
	}

	err := cmd.Run(context.Background())
	if !errors.Is(err, ErrExport) || !strings.Contains(err.Error(), "log closed") {
		t.Errorf("Export.Run() error = %v, want ErrExport caused by the log", err)
	}

	// OpenSCAD itself succeeded.
	if _, err := os.Stat(cmd.Output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestOpenscadPath(t *testing.T) {
	lib := t.TempDir()
	sep := string(os.PathListSeparator)

	tests := []struct {
		name    string
		current string
		lib     []string
		want    []string
	}{
		{
			name:    "no_libraries",
			current: "/opt/libs",
			want:    []string{"/opt/libs"},
		},
		{
			name: "empty_current",
			lib:  []string{lib},
			want: []string{lib},
		},
		{
			name:    "prepended",
			current: "/opt/libs",
			lib:     []string{lib},
			want:    []string{lib, "/opt/libs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := openscadPath(tt.current, tt.lib...)

			var items []string

			for _, s := range strings.Split(got, sep) {
				if s != "" {
					items = append(items, s)
				}
			}

			if strings.Join(items, sep) != strings.Join(tt.want, sep) {
				t.Errorf("openscadPath(%q, %q) = %q, want %q",
					tt.current, tt.lib, got, tt.want)
			}
		})
	}
}
