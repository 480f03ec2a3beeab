package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/scrollhead/pkg/errors"
	"github.com/matzehuels/scrollhead/pkg/snap"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Header.CollapsedHeight != 100 {
		t.Errorf("CollapsedHeight = %v, want 100", cfg.Header.CollapsedHeight)
	}
	if cfg.Scroll.Throttle.Duration != 16*time.Millisecond {
		t.Errorf("Throttle = %v, want 16ms", cfg.Scroll.Throttle.Duration)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := `
[header]
collapsed_height = 120

[snap]
easing = "spring"
duration = "250ms"
release_idle = "90ms"

[content]
rows = ["one", "two"]
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Header.CollapsedHeight != 120 {
		t.Errorf("CollapsedHeight = %v, want 120", cfg.Header.CollapsedHeight)
	}
	if cfg.Header.LowerHeight != 96 {
		t.Errorf("LowerHeight = %v, want default 96", cfg.Header.LowerHeight)
	}
	if cfg.Snap.Duration.Duration != 250*time.Millisecond {
		t.Errorf("Snap.Duration = %v, want 250ms", cfg.Snap.Duration.Duration)
	}
	if cfg.Snap.ReleaseIdle.Duration != 90*time.Millisecond {
		t.Errorf("Snap.ReleaseIdle = %v, want 90ms", cfg.Snap.ReleaseIdle.Duration)
	}
	if len(cfg.Content.Rows) != 2 || cfg.Content.Rows[1] != "two" {
		t.Errorf("Content.Rows = %v, want [one two]", cfg.Content.Rows)
	}

	opts := cfg.AnimationOptions()
	if opts.Easing != snap.EaseSpring || opts.Duration != 250*time.Millisecond {
		t.Errorf("AnimationOptions() = %+v", opts)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[header\ncollapsed_height = 1"},
		{"unknown key", "[header]\nheight = 3"},
		{"zero collapsed height", "[header]\ncollapsed_height = 0"},
		{"bad easing", "[snap]\neasing = \"bounce\""},
		{"bad duration", "[snap]\nduration = \"fast\""},
		{"throttle too small", "[scroll]\nthrottle = \"1ms\""},
		{"empty rows", "[content]\nrows = []"},
		{"negative overscroll", "[scroll]\noverscroll = -1"},
		{"zero spring frequency", "[snap]\nspring_frequency = 0"},
		{"negative spring damping", "[snap]\nspring_damping = -0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() accepted invalid config")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want INVALID_CONFIG (%v)", errors.GetCode(err), err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[scroll]\nstep = 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scroll.Step != 25 {
		t.Errorf("Scroll.Step = %v, want 25", cfg.Scroll.Step)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, used, err := LoadDefault("")
	if err != nil || used != "" {
		t.Fatalf("LoadDefault() with no file = (%q, %v), want defaults", used, err)
	}
	if cfg.Header.CollapsedHeight != 100 {
		t.Errorf("CollapsedHeight = %v, want default", cfg.Header.CollapsedHeight)
	}

	path := filepath.Join(dir, "scrollhead", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[header]\ncollapsed_height = 80\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, used, err = LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if used != path || cfg.Header.CollapsedHeight != 80 {
		t.Errorf("LoadDefault() = (%q, %v), want (%q, 80)", used, cfg.Header.CollapsedHeight, path)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(Default())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), `duration = "300ms"`) {
		t.Errorf("encoded config missing duration string:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode(Default())) error: %v", err)
	}
	if cfg.Snap.Duration.Duration != 300*time.Millisecond || len(cfg.Content.Rows) != len(Default().Content.Rows) {
		t.Errorf("round trip lost values: %+v", cfg.Snap)
	}
}
