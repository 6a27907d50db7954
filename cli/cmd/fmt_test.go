package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/scad/model"
)

func TestFmt_Native(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Native
		contains string
	}{
		{
			name:     "model indent",
			cmd:      Native{},
			contains: "translate([10, 0, 0]) {\n\tcube(outer);\n}",
		},
		{
			name:     "indent override",
			cmd:      Native{Indent: "  "},
			contains: "translate([10, 0, 0]) {\n  cube(outer);\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t)
			tt.cmd.Source = writeFile(t, t.TempDir(), "bracket.yaml", bracketModel)

			if err := tt.cmd.Run(context.Background()); err != nil {
				t.Fatalf("Native.Run() error = %v", err)
			}

			if !strings.Contains(out.String(), tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, out)
			}
		})
	}
}

func TestFmt_JSON(t *testing.T) {
	out := captureStdout(t)
	feedStdin(t, bracketModel)

	if err := (&JSON{Indent: 2, Source: "-"}).Run(context.Background()); err != nil {
		t.Fatalf("JSON.Run() error = %v", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(out.Bytes(), &tree); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	entries, ok := tree["entries"].([]any)
	if !ok || len(entries) != 2 {
		t.Fatalf("entries = %#v", tree["entries"])
	}

	if first, _ := entries[0].(map[string]any); first["call"] != "translate" {
		t.Errorf("first entry = %#v", entries[0])
	}
}

func TestFmt_YAMLRoundTrip(t *testing.T) {
	out := captureStdout(t)
	src := writeFile(t, t.TempDir(), "bracket.yaml", bracketModel)

	if err := (&YAML{Indent: 2, Source: src}).Run(context.Background()); err != nil {
		t.Fatalf("YAML.Run() error = %v", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &tree); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}

	// The exported tree reads back as a model.
	exported := writeFile(t, t.TempDir(), "exported.yaml", out.String())

	got, err := renderSource(context.Background(), exported)
	if err != nil {
		t.Fatalf("render exported tree: %v", err)
	}

	if !strings.Contains(got, "#sphere(r=wall);") {
		t.Errorf("exported tree rendered:\n%s", got)
	}
}

func TestFmt_AST(t *testing.T) {
	out := captureStdout(t)
	feedStdin(t, bracketModel)

	if err := (&AST{Source: "-"}).Run(context.Background()); err != nil {
		t.Fatalf("AST.Run() error = %v", err)
	}

	for _, want := range []string{"Variable: wall", "Module: translate", "Modifier: #"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFmt_InvalidModel(t *testing.T) {
	tests := []struct {
		name string
		run  func(source string) error
	}{
		{"native", func(s string) error { return (&Native{Source: s}).Run(context.Background()) }},
		{"json", func(s string) error { return (&JSON{Source: s}).Run(context.Background()) }},
		{"yaml", func(s string) error { return (&YAML{Source: s}).Run(context.Background()) }},
		{"ast", func(s string) error { return (&AST{Source: s}).Run(context.Background()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureStdout(t)

			src := writeFile(t, t.TempDir(), "bad.yaml", "entries: [{call: cube, args: [\"@nope\"]}]")

			if err := tt.run(src); !errors.Is(err, model.ErrUndefinedVariable) {
				t.Errorf("error = %v, want ErrUndefinedVariable", err)
			}
		})
	}
}
