package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultDerivedValues(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if got := cfg.GroundY(); got != 156 {
		t.Errorf("GroundY() = %v, expected 156", got)
	}
	if got := cfg.TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() = %v, expected %v", got, time.Second/60)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.yaml")
	data := []byte("physics:\n  scroll_velocity: -12\nspawn:\n  interval: 1500ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Physics.ScrollVelocity != -12 {
		t.Errorf("ScrollVelocity = %v, expected -12", cfg.Physics.ScrollVelocity)
	}
	if cfg.Spawn.Interval != 1500*time.Millisecond {
		t.Errorf("Spawn.Interval = %v, expected 1.5s", cfg.Spawn.Interval)
	}
	// Untouched fields keep their defaults
	if cfg.Physics.Gravity != 0.4 {
		t.Errorf("Gravity = %v, expected default 0.4", cfg.Physics.Gravity)
	}
	if cfg.Board.Width != 750 {
		t.Errorf("Board.Width = %v, expected default 750", cfg.Board.Width)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  width: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"malformed yaml", broken, "failed to parse yaml"},
		{"invalid values", invalid, "player.width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadRunner(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantMsg string
	}{
		{"zero board width", func(c *RunnerConfig) { c.Board.Width = 0 }, "board.width"},
		{"negative kind height", func(c *RunnerConfig) { c.Spawn.Guard.Height = -1 }, "spawn.guard.height"},
		{"player taller than board", func(c *RunnerConfig) { c.Player.Height = 300 }, "exceeds board.height"},
		{"thresholds out of order", func(c *RunnerConfig) { c.Spawn.PickupThreshold = 0.9 }, "thresholds"},
		{"threshold at one", func(c *RunnerConfig) { c.Spawn.LowThreshold = 1 }, "thresholds"},
		{"zero spawn interval", func(c *RunnerConfig) { c.Spawn.Interval = 0 }, "spawn.interval"},
		{"zero tick rate", func(c *RunnerConfig) { c.Timing.TickRate = 0 }, "timing.tick_rate"},
		{"tick rate above cap", func(c *RunnerConfig) { c.Timing.TickRate = MaxTickRate + 1 }, "timing.tick_rate"},
		{"tick rate with zero interval", func(c *RunnerConfig) { c.Timing.TickRate = 2_000_000_000 }, "timing.tick_rate"},
		{"scroll to the right", func(c *RunnerConfig) { c.Physics.ScrollVelocity = 8 }, "physics.scroll_velocity"},
		{"no scroll", func(c *RunnerConfig) { c.Physics.ScrollVelocity = 0 }, "physics.scroll_velocity"},
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"upward gravity", func(c *RunnerConfig) { c.Physics.Gravity = -0.4 }, "physics.gravity"},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpVelocity = 10 }, "physics.jump_velocity"},
		{"downward enhanced jump", func(c *RunnerConfig) { c.Physics.EnhancedJumpVelocity = 0 }, "physics.enhanced_jump_velocity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Board.Width = 0
	cfg.Timing.TickRate = -5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"board.width", "timing.tick_rate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestParseRejectsHugeTickRate(t *testing.T) {
	if _, err := Parse([]byte("timing:\n  tick_rate: 2000000000\n")); err == nil {
		t.Fatal("expected a tick rate that rounds the interval to zero to be rejected")
	}
}

func TestWithTickRate(t *testing.T) {
	base := DefaultRunnerConfig()

	tests := []struct {
		name    string
		rate    int
		want    int
		wantErr bool
	}{
		{"zero keeps config", 0, 60, false},
		{"override", 30, 30, false},
		{"at cap", MaxTickRate, MaxTickRate, false},
		{"above cap", MaxTickRate + 1, 0, true},
		{"negative", -5, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := base.WithTickRate(tc.rate)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("WithTickRate(%d) failed: %v", tc.rate, err)
			}
			if cfg.Timing.TickRate != tc.want {
				t.Errorf("TickRate = %d, expected %d", cfg.Timing.TickRate, tc.want)
			}
			if cfg.TickInterval() <= 0 {
				t.Errorf("TickInterval() = %v, expected positive", cfg.TickInterval())
			}
		})
	}
}
