// runner is an endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner sim               - Run autopilot rounds headless and print the history
//	runner themes            - List sprite themes
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom runner config YAML
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - RNG seed for reproducible spawns
//	--theme <id>        - Sprite theme (default: classic)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/teatime-runner/internal/config"
	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagTheme    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Teatime Runner - an endless runner in your terminal",
	Long: `Teatime Runner is an endless side-scroller. Jump the bushes and the
guards, grab a teacup for a higher jump, and see how far you get.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Let the autopilot play and print the results
  themes   - Show available sprite themes
  config   - Print the default configuration

Examples:
  runner play
  runner play --theme ascii --seed 42
  runner serve --ssh :2222
  runner sim --rounds 5 --miss 0.05`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", theme.DefaultID, "Sprite theme ID")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves the runner config, the runtime overrides and the theme from the global flags.
func loadSettings() (config.RunnerConfig, core.RuntimeConfig, theme.Theme, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, core.RuntimeConfig{}, theme.Theme{}, err
	}
	cfg, err = cfg.WithTickRate(flagFPS)
	if err != nil {
		return config.RunnerConfig{}, core.RuntimeConfig{}, theme.Theme{}, fmt.Errorf("invalid --fps: %w", err)
	}

	th, err := theme.Get(flagTheme)
	if err != nil {
		return config.RunnerConfig{}, core.RuntimeConfig{}, theme.Theme{}, err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return cfg, rt, th, nil
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
