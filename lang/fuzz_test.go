package lang

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzWriteValue checks that value writing is deterministic and that
// escaped strings can be recovered exactly.
func FuzzWriteValue(f *testing.F) {
	f.Add("r", 5.0, "text", true)
	f.Add("size", -0.25, `say "hi"`, false)
	f.Add("center", 1e21, `C:\parts\`, true)
	f.Add("opts", 0.0, "", false)
	f.Add("", 3.0, "\n\t", true)

	f.Fuzz(func(t *testing.T, key string, num float64, text string, flag bool) {
		if !utf8.ValidString(key) || !utf8.ValidString(text) {
			t.Skip("invalid UTF-8")
		}

		v := List{Number(num), String(text), Bool(flag), List{Number(num), List{}}}

		for _, escape := range []bool{false, true} {
			d := New(WithStringEscaping(escape))

			first, err := d.WriteValue(v, false)
			if err != nil {
				t.Fatalf("WriteValue(%v) error: %v", v, err)
			}

			if second, _ := d.WriteValue(v, false); first != second {
				t.Fatalf("WriteValue not deterministic: %q != %q", first, second)
			}

			if !strings.HasPrefix(first, "[") || !strings.HasSuffix(first, "[]]]") {
				t.Errorf("list written as %q", first)
			}
		}

		quoted, err := New(WithStringEscaping(true)).WriteValue(String(text), false)
		if err != nil {
			t.Fatal(err)
		}

		inner := strings.TrimSuffix(strings.TrimPrefix(quoted, `"`), `"`)
		if got := strings.NewReplacer(`\\`, `\`, `\"`, `"`).Replace(inner); got != text {
			t.Errorf("escaped %q does not unescape to %q (got %q)", quoted, text, got)
		}

		rec := Record{{key, Number(num)}}

		args, err := New().WriteValue(rec, true)
		if err != nil {
			t.Fatalf("record in argument position: %v", err)
		}

		if reserved := slices.Contains(reservedFields, key); reserved != (args == "") {
			t.Errorf("record field %q written as %q", key, args)
		}

		if _, err := New().WriteValue(rec, false); !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("record outside argument position: got %v", err)
		}
	})
}

// FuzzResolve checks that every identifier resolves and renders as itself,
// and that everything else is rejected.
func FuzzResolve(f *testing.F) {
	for _, seed := range []string{"cube", "_root", "root", "$fn", "2d", "a-b", "", "linear_extrude"} {
		f.Add(seed, uint8(2))
	}

	f.Fuzz(func(t *testing.T, name string, depth uint8) {
		c, err := Resolve(name)

		if !IsIdentifier(name) {
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Fatalf("Resolve(%q) error = %v, want ErrInvalidIdentifier", name, err)
			}

			return
		}

		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", name, err)
		}

		g, ok := c.(*Generic)
		if !ok {
			if _, reserved := prefixes[name]; !reserved {
				t.Fatalf("Resolve(%q) = %T, want *Generic", name, c)
			}

			return
		}

		// Nest the call depth levels deep; the leaf lands depth indents in.
		n := int(depth % 8)
		node := g.Call().Leaf()

		for range n {
			node = g.Call().With(node)
		}

		out, err := New(WithIndent("  ")).WriteNode(0, node)
		if err != nil {
			t.Fatalf("WriteNode error: %v", err)
		}

		lines := strings.Split(out, "\n")
		if want := n*2 + 1; len(lines) != want {
			t.Fatalf("%d lines, want %d:\n%s", len(lines), want, out)
		}

		if leaf := lines[n]; leaf != strings.Repeat("  ", n)+name+"();" {
			t.Errorf("leaf line = %q", leaf)
		}
	})
}
