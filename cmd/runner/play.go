package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/teatime-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Space/Up/W   - Jump (also starts the first round)
  R/Enter      - Restart
  Esc          - Stop the round
  Up/Down      - Scroll the round history (game over screen)
  Ctrl+S       - Save a text screenshot to the temp directory
  Q/Ctrl+C     - Quit

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  runner play
  runner play --theme mono
  runner play --fps 30 --log-file /tmp/runner.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, rt, th, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("runner", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Theme:   th,
		Logger:  logger,
	})
	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
