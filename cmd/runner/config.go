package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/teatime-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in runner configuration as YAML.

Save it to ~/.teatime/configs/runner.yaml or pass it with --config to
change the physics, the spawn table or the tick rate.

Examples:
  runner config > ~/.teatime/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
