package lang

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteNode(t *testing.T) {
	leaf := Module("cube", Number(1)).Leaf()

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "module without children",
			node: Module("cube", Opts("size", Vec(1, 2, 3))).With(),
			want: "cube(size=[1, 2, 3]) {\n}",
		},
		{
			name: "object",
			node: Module("sphere", Opts("r", 5)).Leaf(),
			want: "sphere(r=5);",
		},
		{
			name: "object without arguments",
			node: Module("fill").Leaf(),
			want: "fill();",
		},
		{
			name: "modifier",
			node: Debug(Module("sphere", Opts("r", 5)).Leaf()),
			want: "#sphere(r=5);",
		},
		{
			name: "assignment",
			node: NewAssignment("x", Number(3)),
			want: "x = 3;",
		},
		{
			name: "module with children",
			node: Module("union").With(leaf, Module("sphere", Number(2)).Leaf()),
			want: "union() {\n\tcube(1);\n\tsphere(2);\n}",
		},
		{
			name: "nested modules",
			node: Module("translate", Vec(1, 0, 0)).With(
				Module("rotate", Vec(0, 0, 90)).With(leaf),
			),
			want: "translate([1, 0, 0]) {\n" +
				"\trotate([0, 0, 90]) {\n" +
				"\t\tcube(1);\n" +
				"\t}\n" +
				"}",
		},
		{
			name: "modifier on module",
			node: Bg(Module("union").With(leaf)),
			want: "%union() {\n\tcube(1);\n}",
		},
		{
			name: "modifier inside module",
			node: Module("difference").With(leaf, Disable(leaf)),
			want: "difference() {\n\tcube(1);\n\t*cube(1);\n}",
		},
		{
			name: "stacked modifiers",
			node: Root(Debug(leaf)),
			want: "!#cube(1);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().WriteNode(0, tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WriteNode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteNode_Indent(t *testing.T) {
	doc := New(WithIndent("  "))

	node := Module("a").With(Module("b").With(Module("c").Leaf()))

	got, err := doc.WriteNode(0, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "a() {\n  b() {\n    c();\n  }\n}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WriteNode() mismatch (-want +got):\n%s", diff)
	}

	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[2], doc.Indent()+doc.Indent()+"c") {
		t.Errorf("innermost statement not indented two units: %q", lines[2])
	}
}

func TestWriteNode_Unrecognized(t *testing.T) {
	tests := []struct {
		name string
		node *Node
	}{
		{"nil", nil},
		{"unknown kind", &Node{Kind: Kind(99), Name: "x"}},
		{"modifier without child", NewModifier(ModDebug, nil)},
		{"nested nil child", Module("union").With(Module("cube").Leaf(), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().WriteNode(0, tt.node)
			if !errors.Is(err, ErrUnrecognizedNode) {
				t.Errorf("expected ErrUnrecognizedNode, got %v", err)
			}

			if got != "" {
				t.Errorf("expected no output on error, got %q", got)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	doc := New()

	got, err := doc.Compile(
		Module("cube", Number(1)).Leaf(),
		Module("translate", Vec(0, 0, 5)).With(Module("sphere", Number(2)).Leaf()),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "cube(1);\ntranslate([0, 0, 5]) {\n\tsphere(2);\n}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
	}

	single, err := doc.Compile(Module("cube", Number(1)).Leaf())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if single != "cube(1);" {
		t.Errorf("Compile() single = %q", single)
	}
}

func TestFormat(t *testing.T) {
	doc := New(WithBanner(""))
	doc.Add(Module("cube", Number(1)).Leaf())

	var buf bytes.Buffer
	if err := doc.Format(context.Background(), &buf); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want, err := doc.Render(context.Background())
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestFormatYAML(t *testing.T) {
	doc := New()
	doc.AddVariable("wall", Number(2), WithSection("Options"))
	doc.Add(Module("cube", Opts("size", 10)).Leaf())

	var buf bytes.Buffer
	if err := doc.FormatYAML(context.Background(), &buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"call: cube", "name: wall", "section: Options"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestPrint(t *testing.T) {
	doc := New()
	doc.AddVariable("wall", Number(2), WithSection("Options"))
	doc.Add(Debug(Module("sphere", Opts("r", 5)).Leaf()))

	var buf bytes.Buffer
	doc.Print(context.Background(), &buf)

	want := "Variable: wall\n" +
		"  Section: Options\n" +
		"  Value: 2\n" +
		"Modifier: #\n" +
		"  Object: sphere\n" +
		"    Arg: {r=5}\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}
