package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points the search path at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SpaceshipConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultSpaceshipConfig() {
		t.Errorf("embedded YAML and DefaultSpaceshipConfig differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultSpaceshipConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultTimings(t *testing.T) {
	timing := DefaultSpaceshipConfig().Timing

	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"render", timing.Render(), 40 * time.Millisecond},
		{"star", timing.Star(), 40 * time.Millisecond},
		{"enemy spawn", timing.EnemySpawn(), 1500 * time.Millisecond},
		{"enemy shot", timing.EnemyShot(), 750 * time.Millisecond},
		{"fire window", timing.FireWindow(), 200 * time.Millisecond},
	}

	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
		}
	}
}

func TestLoadSpaceshipEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadSpaceship("")
	if err != nil {
		t.Fatalf("LoadSpaceship: %v", err)
	}
	if cfg != DefaultSpaceshipConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadSpaceshipCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "stars:\n  count: 12\nhero:\n  prune_offscreen: true\n")

	cfg, err := LoadSpaceship(path)
	if err != nil {
		t.Fatalf("LoadSpaceship: %v", err)
	}

	if cfg.Stars.Count != 12 {
		t.Errorf("Stars.Count = %d, expected 12", cfg.Stars.Count)
	}
	if !cfg.Hero.PruneOffscreen {
		t.Error("Hero.PruneOffscreen should be overridden to true")
	}
	// Untouched keys keep their defaults
	if cfg.Stars.Speed != 3 {
		t.Errorf("Stars.Speed = %v, expected default 3", cfg.Stars.Speed)
	}
	if cfg.Timing.EnemySpawnMs != 1500 {
		t.Errorf("Timing.EnemySpawnMs = %d, expected default 1500", cfg.Timing.EnemySpawnMs)
	}
}

func TestLoadSpaceshipCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	writeFile(t, badYAML, "stars: [unterminated\n")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "timing:\n  render_ms: 0\n")

	reversed := filepath.Join(dir, "reversed.yaml")
	writeFile(t, reversed, "stars:\n  speed: -3\n")

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"malformed yaml", badYAML, "failed to load config"},
		{"invalid values", invalid, "timing.render_ms must be positive"},
		{"stars scrolling up", reversed, "stars.speed must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSpaceship(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSpaceshipSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, LocalConfigPath, "stars:\n  count: 7\n")

	cfg, err := LoadSpaceship("")
	if err != nil {
		t.Fatalf("LoadSpaceship: %v", err)
	}
	if cfg.Stars.Count != 7 {
		t.Errorf("local config should be used, Stars.Count = %d", cfg.Stars.Count)
	}

	writeFile(t, filepath.Join(home, ".spaceship", "configs", "spaceship.yaml"), "stars:\n  count: 3\n")

	cfg, err = LoadSpaceship("")
	if err != nil {
		t.Fatalf("LoadSpaceship: %v", err)
	}
	if cfg.Stars.Count != 3 {
		t.Errorf("user config should win over local, Stars.Count = %d", cfg.Stars.Count)
	}
}

func TestLoadSpaceshipSkipsBrokenDiscoveredFile(t *testing.T) {
	isolate(t)
	writeFile(t, LocalConfigPath, "timing:\n  star_ms: -1\n")

	cfg, err := LoadSpaceship("")
	if err != nil {
		t.Fatalf("discovered broken files should be skipped, got %v", err)
	}
	if cfg.Timing.StarMs != 40 {
		t.Errorf("expected embedded default star_ms, got %d", cfg.Timing.StarMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SpaceshipConfig)
		wantErr string
	}{
		{"defaults", func(c *SpaceshipConfig) {}, ""},
		{"zero stars allowed", func(c *SpaceshipConfig) { c.Stars.Count = 0 }, ""},
		{"negative stars", func(c *SpaceshipConfig) { c.Stars.Count = -1 }, "stars.count"},
		{"zero cell width", func(c *SpaceshipConfig) { c.Canvas.CellWidth = 0 }, "canvas.cell_width"},
		{"star sizes inverted", func(c *SpaceshipConfig) { c.Stars.MaxSize = 0.5 }, "stars.max_size"},
		{"negative drift", func(c *SpaceshipConfig) { c.Enemies.Drift = -2 }, "enemies.drift"},
		{"bad progression", func(c *SpaceshipConfig) { c.Difficulty.Progression.Type = "lunar" }, "progression.type"},
		{"zero margin", func(c *SpaceshipConfig) { c.Scoring.CollisionMargin = 0 }, "collision_margin"},
		{"negative star speed", func(c *SpaceshipConfig) { c.Stars.Speed = -3 }, "stars.speed"},
		{"zero star speed", func(c *SpaceshipConfig) { c.Stars.Speed = 0 }, "stars.speed"},
		{"negative enemy speed", func(c *SpaceshipConfig) { c.Enemies.Speed = -5 }, "enemies.speed"},
		{"zero enemy shot speed", func(c *SpaceshipConfig) { c.Enemies.ShotSpeed = 0 }, "enemies.shot_speed"},
		{"negative hero shot speed", func(c *SpaceshipConfig) { c.Hero.ShotSpeed = -15 }, "hero.shot_speed"},
		{"zero hero offset", func(c *SpaceshipConfig) { c.Canvas.HeroOffset = 0 }, "canvas.hero_offset"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSpaceshipConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) returned error %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplySpaceshipPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		progression  string
	}{
		{"", false, 0.0, "none"},
		{DifficultyEasy, true, 0.0, "score"},
		{DifficultyNormal, true, 0.3, "score"},
		{DifficultyHard, true, 0.7, "score"},
		{DifficultyFixed, false, 0.0, "none"},
	}

	for _, tc := range tests {
		cfg := DefaultSpaceshipConfig()
		ApplySpaceshipPreset(&cfg, tc.preset)

		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("preset %q: Enabled = %v, expected %v", tc.preset, cfg.Difficulty.Enabled, tc.enabled)
		}
		if cfg.Difficulty.InitialLevel != tc.initialLevel {
			t.Errorf("preset %q: InitialLevel = %v, expected %v", tc.preset, cfg.Difficulty.InitialLevel, tc.initialLevel)
		}
		if cfg.Difficulty.Progression.Type != tc.progression {
			t.Errorf("preset %q: Progression.Type = %q, expected %q", tc.preset, cfg.Difficulty.Progression.Type, tc.progression)
		}
	}
}
