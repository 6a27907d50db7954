package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCatalog_Run(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Catalog
		first   string
		present []string
		absent  []string
		wantErr error
	}{
		{
			name:    "all",
			cmd:     Catalog{Kind: "all"},
			first:   "union",
			present: []string{"translate", "cube", "text"},
		},
		{
			name:    "query",
			cmd:     Catalog{Kind: "all", Query: "cyl"},
			first:   "cylinder",
			present: []string{"h, r, r1, r2, d, d1, d2, center", "cylinder or cone"},
			absent:  []string{"union"},
		},
		{
			name:    "modules",
			cmd:     Catalog{Kind: "module"},
			first:   "union",
			present: []string{"linear_extrude"},
			absent:  []string{"cube", "circle"},
		},
		{
			name:    "objects",
			cmd:     Catalog{Kind: "object"},
			first:   "cube",
			present: []string{"polygon"},
			absent:  []string{"translate", "hull"},
		},
		{
			name:    "no_match",
			cmd:     Catalog{Kind: "module", Query: "sphere"},
			wantErr: ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t)

			err := tt.cmd.Run(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Catalog.Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Catalog.Run() error = %v", err)
			}

			text := ansi.Strip(out.String())

			if !strings.HasPrefix(text, tt.first+" ") {
				t.Errorf("first entry is not %q:\n%s", tt.first, text)
			}

			for _, s := range tt.present {
				if !strings.Contains(text, s) {
					t.Errorf("output missing %q:\n%s", s, text)
				}
			}

			for _, s := range tt.absent {
				if strings.Contains(text, s) {
					t.Errorf("output contains %q:\n%s", s, text)
				}
			}
		})
	}
}
