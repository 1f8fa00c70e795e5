package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Errorf("got %+v, want defaults", s)
	}
	if s.Addr != ":8000" || s.MaxSteps != 15 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeSettings(t, "addr: \":9000\"\nmodel: claude-sonnet-4-20250514\ntemperature: 0.2\nmax_steps: 8\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Addr != ":9000" || s.Model != "claude-sonnet-4-20250514" || s.Temperature != 0.2 || s.MaxSteps != 8 {
		t.Errorf("got %+v", s)
	}
	// Unset fields keep their defaults.
	if s.MaxTokens != 8096 {
		t.Errorf("max_tokens = %d, want default 8096", s.MaxTokens)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"temperature too high", "temperature: 1.5\n", "temperature"},
		{"negative steps", "max_steps: -1\n", "max_steps"},
		{"zero tokens", "max_tokens: 0\n", "max_tokens"},
		{"not yaml", ": : :\n", "parse settings"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
