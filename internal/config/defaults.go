package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the reference constants of the runner.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Board: BoardConfig{
			Width:  750,
			Height: 250,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  88,
			Height: 94,
		},
		Physics: PhysicsConfig{
			ScrollVelocity:       -8,
			Gravity:              0.4,
			JumpVelocity:         -11,
			EnhancedJumpVelocity: -15,
		},
		Spawn: SpawnConfig{
			Interval:        2 * time.Second,
			LowThreshold:    0.75,
			PickupThreshold: 0.5,
			Bush:            KindConfig{Width: 52, Height: 58, OffsetY: 40},
			Teacup:          KindConfig{Width: 40, Height: 40, OffsetY: 40},
			Guard:           KindConfig{Width: 78, Height: 90, OffsetY: 0},
			Dragon:          KindConfig{Width: 92, Height: 60, OffsetY: -70},
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		HUD: HUDConfig{
			ScoreX: 10,
			ScoreY: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
