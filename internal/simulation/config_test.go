package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if c.TileSize != 32 || c.ViewportWidth != 640 || c.ViewportHeight != 480 {
		t.Errorf("Unexpected defaults: tile %d viewport %dx%d", c.TileSize, c.ViewportWidth, c.ViewportHeight)
	}
	if c.WalkSpeed != 2.0 || c.SprintSpeed != 4.0 {
		t.Errorf("Expected speeds 2/4, got %v/%v", c.WalkSpeed, c.SprintSpeed)
	}

	w, h := c.PlayerSize()
	if w != 32 || h != 32 {
		t.Errorf("Expected player size to default to tile size, got %vx%v", w, h)
	}
	fx, fy := c.CameraFocus()
	if fx != 320 || fy != 240 {
		t.Errorf("Expected focus at viewport centre, got (%v, %v)", fx, fy)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.Map != "map1" {
		t.Errorf("Expected default map, got %q", c.Map)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"tile_size": 16, "sprint_speed": 6.5, "map": "courtyard", "keys": {"primary": ["q"]}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if c.TileSize != 16 || c.SprintSpeed != 6.5 || c.Map != "courtyard" {
		t.Errorf("Overrides not applied: %+v", c)
	}
	if c.WalkSpeed != 2.0 || c.ViewportWidth != 640 {
		t.Errorf("Expected untouched fields to keep defaults: %+v", c)
	}
	if got := c.Keys["primary"]; len(got) != 1 || got[0] != "q" {
		t.Errorf("Expected key override, got %v", got)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tile", func(c *Config) { c.TileSize = 0 }},
		{"negative viewport", func(c *Config) { c.ViewportWidth = -1 }},
		{"zero walk", func(c *Config) { c.WalkSpeed = 0 }},
		{"sprint below walk", func(c *Config) { c.SprintSpeed = 1 }},
		{"negative player", func(c *Config) { c.PlayerHeight = -4 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"no map", func(c *Config) { c.Map = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvMap:          "courtyard",
		EnvSeed:         "99",
		EnvAudio:        "false",
		EnvBackend:      "term",
		EnvLogVerbosity: "2",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	c := DefaultConfig()
	if err := c.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if c.Map != "courtyard" || c.Seed != 99 || c.Audio || c.Backend != "term" || c.LogVerbosity != 2 {
		t.Errorf("Env not applied: %+v", c)
	}
	if c.AssetDir != "assets" {
		t.Errorf("Expected unset variables to leave defaults, got asset dir %q", c.AssetDir)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvAudio, EnvLogVerbosity} {
		lookup := func(k string) (string, bool) {
			if k == key {
				return "not-a-value", true
			}
			return "", false
		}
		if err := DefaultConfig().ApplyEnv(lookup); err == nil {
			t.Errorf("Expected error for invalid %s", key)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("TILEWALK_TEST_DOTENV=courtyard\n"), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv("TILEWALK_TEST_DOTENV", "")
	os.Unsetenv("TILEWALK_TEST_DOTENV")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("TILEWALK_TEST_DOTENV"); got != "courtyard" {
		t.Errorf("Expected value from env file, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "also-missing.env")); err != nil {
		t.Errorf("Expected missing files to be skipped, got %v", err)
	}
}
