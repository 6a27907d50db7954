package view

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory_AddAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	for _, q := range []string{"cube", "  ", "sphere", "sphere", "translate", "cube"} {
		if err := h.Add(q); err != nil {
			t.Fatalf("Add(%q): %v", q, err)
		}
	}

	want := []string{"sphere", "translate", "cube"}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if got := reloaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("reloaded Entries() = %q, want %q", got, want)
	}
}

func TestHistory_LoadCollapsesDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	if err := os.WriteFile(path, []byte("a\nb\n\na\nc\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	want := []string{"b", "a", "c"}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}
}

func TestHistory_At(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	if err := h.Add("cube"); err != nil {
		t.Fatal(err)
	}

	if got, err := h.At(0); err != nil || got != "cube" {
		t.Errorf("At(0) = (%q, %v), want (cube, nil)", got, err)
	}

	for _, i := range []int{-1, 1} {
		if _, err := h.At(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}
