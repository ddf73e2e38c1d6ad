package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	overridden := Default()
	overridden.Unit = "F"
	overridden.TimeoutSec = 30

	tests := []struct {
		name    string
		content string // empty = no config file on disk
		want    Config
	}{
		{
			"missing file keeps defaults",
			"",
			Default(),
		},
		{
			"file overrides named fields only",
			`{"unit": "F", "timeout_sec": 30}`,
			overridden,
		},
		{
			"malformed json falls back to defaults",
			`{"unit": "F", "timeout_sec":`,
			Default(),
		},
		{
			// A type mismatch surfaces after earlier fields have
			// already been decoded; none of them may leak through.
			"type mismatch discards partial values",
			`{"unit": "F", "timeout_sec": "ten"}`,
			Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)
			if tt.content != "" {
				cfgDir := filepath.Join(dir, "hddtemp")
				if err := os.MkdirAll(cfgDir, 0o755); err != nil {
					t.Fatalf("mkdir config dir: %v", err)
				}
				p := filepath.Join(cfgDir, "config.json")
				if err := os.WriteFile(p, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("write config: %v", err)
				}
			}

			if got := Load(); got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")

	want := filepath.Join("/tmp/xdgtest", "hddtemp", "config.json")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
