// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and SSH serving.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/teatime-runner/internal/clock"
)

// jobMsg carries one firing from the run-queue into Update, so every game
// callback runs on the Bubble Tea event loop.
type jobMsg func()

// waitForJob blocks until the next firing is queued or done is closed.
func waitForJob(q *clock.Queue, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-q.Jobs():
			return jobMsg(fn)
		case <-done:
			return nil
		}
	}
}
