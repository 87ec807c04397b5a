// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Timing  TimingConfig  `yaml:"timing"`
	HUD     HUDConfig     `yaml:"hud"`
}

// BoardConfig defines the logical play field.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's fixed size and horizontal position.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	ScrollVelocity       float64 `yaml:"scroll_velocity"`        // Added to every entity's X each tick
	Gravity              float64 `yaml:"gravity"`                // Added to the player's vertical velocity each tick
	JumpVelocity         float64 `yaml:"jump_velocity"`          // Takeoff velocity of a normal jump
	EnhancedJumpVelocity float64 `yaml:"enhanced_jump_velocity"` // Takeoff velocity of a buffed jump
}

// SpawnConfig defines spawn cadence, type selection and per-kind geometry.
type SpawnConfig struct {
	Interval        time.Duration `yaml:"interval"`
	LowThreshold    float64       `yaml:"low_threshold"`    // roll > this spawns a bush
	PickupThreshold float64       `yaml:"pickup_threshold"` // roll > this (and <= low) spawns a teacup
	Bush            KindConfig    `yaml:"bush"`
	Teacup          KindConfig    `yaml:"teacup"`
	Guard           KindConfig    `yaml:"guard"`
	Dragon          KindConfig    `yaml:"dragon"`
}

// KindConfig defines the size of an entity kind and its vertical offset from groundY.
type KindConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"`
}

// TimingConfig defines the update cadence.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Updates per second
}

// HUDConfig defines where the score overlay is drawn.
type HUDConfig struct {
	ScoreX float64 `yaml:"score_x"`
	ScoreY float64 `yaml:"score_y"`
}

// MaxTickRate is the fastest update cadence a config may ask for.
const MaxTickRate = 1000

// GroundY returns the player's resting Y coordinate.
func (c RunnerConfig) GroundY() float64 {
	return c.Board.Height - c.Player.Height
}

// TickInterval returns the wall-clock duration of one tick.
func (c RunnerConfig) TickInterval() time.Duration {
	if c.Timing.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Timing.TickRate)
}

// Validate reports every field that would break the simulation.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("board.width", c.Board.Width)
	positive("board.height", c.Board.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)

	kinds := []struct {
		name string
		k    KindConfig
	}{
		{"spawn.bush", c.Spawn.Bush},
		{"spawn.teacup", c.Spawn.Teacup},
		{"spawn.guard", c.Spawn.Guard},
		{"spawn.dragon", c.Spawn.Dragon},
	}
	for _, k := range kinds {
		positive(k.name+".width", k.k.Width)
		positive(k.name+".height", k.k.Height)
	}

	if c.Player.Height > c.Board.Height {
		errs = append(errs, fmt.Errorf("player.height %v exceeds board.height %v", c.Player.Height, c.Board.Height))
	}
	if c.Spawn.PickupThreshold < 0 || c.Spawn.LowThreshold >= 1 || c.Spawn.PickupThreshold > c.Spawn.LowThreshold {
		errs = append(errs, fmt.Errorf("spawn thresholds must satisfy 0 <= pickup <= low < 1, got pickup=%v low=%v",
			c.Spawn.PickupThreshold, c.Spawn.LowThreshold))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval must be > 0, got %v", c.Spawn.Interval))
	}
	if c.Timing.TickRate <= 0 || c.Timing.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be in 1..%d, got %d", MaxTickRate, c.Timing.TickRate))
	}

	// Entities scroll left and the player falls down the screen.
	if c.Physics.ScrollVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.scroll_velocity must be < 0, got %v", c.Physics.ScrollVelocity))
	}
	positive("physics.gravity", c.Physics.Gravity)
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be < 0, got %v", c.Physics.JumpVelocity))
	}
	if c.Physics.EnhancedJumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.enhanced_jump_velocity must be < 0, got %v", c.Physics.EnhancedJumpVelocity))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// WithTickRate returns the config with its tick rate overridden. A zero rate
// keeps the configured one; any other value must pass Validate.
func (c RunnerConfig) WithTickRate(rate int) (RunnerConfig, error) {
	if rate == 0 {
		return c, nil
	}
	c.Timing.TickRate = rate
	if err := c.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return c, nil
}
