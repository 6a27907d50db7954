package lang

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"sentinel", ErrMissingSink, "no output sink configured"},
		{"with", ErrMissingSink.With(slog.String("dest", "x")), "no output sink configured"},
		{"wrap", ErrMissingSink.Wrap(cause), "no output sink configured: boom"},
		{"wrap with", ErrMissingSink.Wrap(cause).With(slog.Int("n", 1)), "no output sink configured: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrMissingSink) {
				t.Error("does not match its sentinel")
			}

			if errors.Is(tt.err, ErrWriteOutput) {
				t.Error("matches an unrelated sentinel")
			}

			if tt.err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrInvalidIdentifier.Wrap(errors.New("bad")).With(slog.String("name", "2x"))

	attrs := err.LogValue().Group()

	got := make(map[string]string, len(attrs))
	for _, a := range attrs {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error": "invalid identifier",
		"cause": "bad",
		"name":  "2x",
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("attr %q = %q, want %q", k, got[k], v)
		}
	}

	if len(err.Attrs()) != 1 {
		t.Errorf("Attrs() = %v", err.Attrs())
	}
}
