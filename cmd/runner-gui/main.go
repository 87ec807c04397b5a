// runner-gui plays Teatime Runner in a desktop window with sound.
//
// It is a separate binary because the window and audio backends need cgo
// on most platforms, which the terminal binary does not.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/teatime-runner/internal/audio"
	"github.com/vovakirdan/teatime-runner/internal/config"
	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/platform/gui"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

var (
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagTheme    string
	flagVolume   float64
	flagMute     bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "runner-gui",
	Short: "Teatime Runner in a window",
	Long: `Play Teatime Runner in a desktop window.

Controls:
  Space/Up/W   - Jump (also starts the first round)
  R/Enter      - Restart
  Esc          - Stop the round
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", theme.DefaultID, "Colour theme ID")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume (0-1)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-gui",
		Level:           level,
	})

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	cfg, err = cfg.WithTickRate(flagFPS)
	if err != nil {
		return fmt.Errorf("invalid --fps: %w", err)
	}
	th, err := theme.Get(flagTheme)
	if err != nil {
		return err
	}

	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer(flagVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	return gui.Run(gui.Options{
		Config:  cfg,
		Runtime: rt,
		Theme:   th,
		Audio:   player,
		Logger:  logger,
	})
}
