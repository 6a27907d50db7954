package lang

import "testing"

func TestSpecials_Assignments(t *testing.T) {
	var s Specials

	if nodes := s.Assignments(); len(nodes) != 0 {
		t.Fatalf("expected no assignments, got %d", len(nodes))
	}

	s.Preview = Bool(false)
	s.Fa = Number(12)
	s.Vpt = Vec(0, 0, 0)

	doc := New()
	want := []string{"$fa = 12;", "$vpt = [0, 0, 0];", "$preview = false;"}

	nodes := s.Assignments()
	if len(nodes) != len(want) {
		t.Fatalf("got %d assignments, want %d", len(nodes), len(want))
	}

	for i, n := range nodes {
		got, err := doc.WriteNode(0, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != want[i] {
			t.Errorf("assignment %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestSpecials_Set(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"$fn", true},
		{"fn", true},
		{"$children", true},
		{"vpd", true},
		{"$unknown", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Specials

			if ok := s.Set(tt.name, Number(1)); ok != tt.ok {
				t.Errorf("Set(%q) = %v, want %v", tt.name, ok, tt.ok)
			}

			if n := len(s.Assignments()); (n == 1) != tt.ok {
				t.Errorf("Set(%q) produced %d assignments", tt.name, n)
			}
		})
	}
}
