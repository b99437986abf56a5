package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Viewport != (ViewportConfig{Width: 320, Height: 240}) {
		t.Errorf("Viewport = %+v", cfg.Viewport)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if len(cfg.Entities) != len(DefaultEntities) {
		t.Errorf("got %d entities, want defaults", len(cfg.Entities))
	}
}

func TestResolveReadsFile(t *testing.T) {
	dir := writeConfig(t, `
viewport:
  width: 640
logging:
  level: debug
  format: json
entities:
  - id: mymod:golem
    width: 1.4
    height: 2.7
`)
	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Viewport != (ViewportConfig{Width: 640, Height: 240}) {
		t.Errorf("Viewport = %+v", cfg.Viewport)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if len(cfg.Entities) != 1 || cfg.Entities[0].ID != "mymod:golem" {
		t.Errorf("Entities = %+v", cfg.Entities)
	}
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative viewport": "viewport: {width: -5}\n",
		"bad identifier":    "entities: [{id: 'Bad ID', width: 1, height: 1}]\n",
		"zero height":       "entities: [{id: pig, width: 1, height: 0}]\n",
		"malformed yaml":    "viewport: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Resolve(writeConfig(t, content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	v, err := ParseSize("640x480")
	if err != nil || v != (ViewportConfig{Width: 640, Height: 480}) {
		t.Errorf("ParseSize = %+v, %v", v, err)
	}
	for _, bad := range []string{"640", "0x10", "10x0", "-4x10", "axb"} {
		if _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) succeeded", bad)
		}
	}
}
