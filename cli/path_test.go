package cli

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	located := func() (string, error) { return "/xdg", nil }
	failed := func() (string, error) { return "", errors.New("unset") }

	tests := []struct {
		name   string
		env    string
		locate func() (string, error)
		want   string
	}{
		{"located", "", located, filepath.Join("/xdg", basePrefix())},
		{"env_override", "/opt/scad/", located, "/opt/scad"},
		{"relative_env_ignored", "rel/dir", located, filepath.Join("/xdg", basePrefix())},
		{"home_fallback", "", failed, filepath.Join(home, ".hidden", basePrefix())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCAD_TEST_DIR", tt.env)

			if got := userDir("SCAD_TEST_DIR", tt.locate, ".hidden"); got != tt.want {
				t.Errorf("userDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBasePrefix(t *testing.T) {
	p := basePrefix()

	if p == "" || p[0] == '.' {
		t.Errorf("basePrefix() = %q", p)
	}
}
