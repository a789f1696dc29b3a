package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, Default())
	}
}

func TestValidateRejectsBadTunables(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow board", func(c *Config) { c.Board.Width = 3 }},
		{"short board", func(c *Config) { c.Board.Height = 0 }},
		{"zero single reward", func(c *Config) { c.Scoring.Single = 0 }},
		{"negative tetris reward", func(c *Config) { c.Scoring.Tetris = -800 }},
		{"zero lines per level", func(c *Config) { c.Scoring.LinesPerLevel = 0 }},
		{"zero base interval", func(c *Config) { c.Gravity.BaseIntervalMs = 0 }},
		{"min above base", func(c *Config) { c.Gravity.MinIntervalMs = 2000 }},
		{"negative decay", func(c *Config) { c.Gravity.DecayPerLevelMs = -1 }},
	}

	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate should fail", tc.name)
		}
	}
}

func TestRulesConversion(t *testing.T) {
	rules := Default().Rules()

	if rules.Width != 10 || rules.Height != 20 {
		t.Errorf("board = %dx%d, want 10x20", rules.Width, rules.Height)
	}
	if rules.ScoreFor(1) != 100 || rules.ScoreFor(4) != 800 {
		t.Errorf("line scores = %d/%d, want 100/800", rules.ScoreFor(1), rules.ScoreFor(4))
	}
	if rules.ScoreFor(0) != 0 || rules.ScoreFor(5) != 0 {
		t.Error("out-of-range clear counts should score zero")
	}
	if rules.LevelFor(25) != 2 {
		t.Errorf("LevelFor(25) = %d, want 2", rules.LevelFor(25))
	}
	if rules.DropInterval(0) != 800*time.Millisecond {
		t.Errorf("level 0 interval = %v, want 800ms", rules.DropInterval(0))
	}
	if rules.DropInterval(5) != 500*time.Millisecond {
		t.Errorf("level 5 interval = %v, want 500ms", rules.DropInterval(5))
	}
	if rules.DropInterval(50) != 100*time.Millisecond {
		t.Errorf("deep levels should floor at the minimum, got %v", rules.DropInterval(50))
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("board:\n  width: 12\n  height: 24\nscoring:\n  single: 50\n  double: 150\n  triple: 350\n  tetris: 1000\n  lines_per_level: 5\ngravity:\n  base_interval_ms: 500\n  min_interval_ms: 50\n  decay_per_level_ms: 25\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Scoring.LinesPerLevel != 5 {
		t.Errorf("loaded config = %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  width: 2\n  height: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail validation for a degenerate board")
	}
}
