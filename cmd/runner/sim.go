package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/teatime-runner/internal/clock"
	"github.com/vovakirdan/teatime-runner/internal/config"
	"github.com/vovakirdan/teatime-runner/internal/runner"
	"github.com/vovakirdan/teatime-runner/internal/storage"
)

var (
	flagRounds   int
	flagMaxTicks int
	flagMiss     float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play and print the round history",
	Long: `Runs rounds headless on a virtual clock with an autopilot that jumps
over every hazard in reach. --miss makes it skip that share of its jumps.
A round that reaches --max-ticks is stopped and recorded at its current score.

Examples:
  runner sim
  runner sim --rounds 10 --miss 0.1 --seed 7
  runner sim --miss 0 --max-ticks 10000`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of rounds to play")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Stop a round after this many ticks")
	simCmd.Flags().Float64Var(&flagMiss, "miss", 0.05, "Share of jumps the autopilot skips (0-1)")
}

// simOptions controls one simulation run.
type simOptions struct {
	Rounds   int
	MaxTicks int
	Miss     float64
	Seed     int64
}

// simulate plays opts.Rounds rounds and returns the history holding them.
// The second result counts rounds stopped at the tick cap.
func simulate(cfg config.RunnerConfig, opts simOptions, logger *log.Logger) (*storage.Store, int, error) {
	if opts.Rounds <= 0 {
		return nil, 0, errors.New("sim: rounds must be positive")
	}
	if opts.MaxTicks <= 0 {
		return nil, 0, errors.New("sim: max ticks must be positive")
	}
	if opts.Miss < 0 || opts.Miss > 1 {
		return nil, 0, fmt.Errorf("sim: miss rate %v out of [0,1]", opts.Miss)
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	store, err := storage.OpenHistory()
	if err != nil {
		return nil, 0, err
	}

	var appendErr error
	record := func(score int) {
		if _, err := store.Append(score); err != nil && appendErr == nil {
			appendErr = err
		}
	}

	clk := clock.NewManual()
	game := runner.New(runner.Options{
		Config:     cfg,
		Scheduler:  clk,
		Seed:       opts.Seed,
		Logger:     logger,
		OnRoundEnd: record,
	})
	pilot := runner.NewAutopilot(runner.DefaultReach, opts.Miss, opts.Seed)
	step := cfg.TickInterval()

	capped := 0
	for range opts.Rounds {
		game.Start()
		for ticks := 0; game.State().Phase == runner.PhaseRunning; ticks++ {
			if ticks == opts.MaxTicks {
				score := game.State().Score
				game.Stop()
				logger.Debug("round capped", "round", game.State().Round, "score", score)
				record(score)
				capped++
				break
			}
			pilot.Step(game)
			clk.Advance(step)
		}
	}

	if appendErr != nil {
		store.Close()
		return nil, 0, appendErr
	}
	return store, capped, nil
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, rt, _, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger, closeLog, err := newLogger("runner-sim", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, capped, err := simulate(cfg, simOptions{
		Rounds:   flagRounds,
		MaxTicks: flagMaxTicks,
		Miss:     flagMiss,
		Seed:     rt.Seed,
	}, logger)
	if err != nil {
		closeLog()
		fail("%v", err)
	}
	defer store.Close()

	if err := printHistory(os.Stdout, store, capped, rt.Seed); err != nil {
		closeLog()
		fail("%v", err)
	}
}

// topRounds is how many of the best rounds the summary lists.
const topRounds = 3

// printHistory writes the round table and the summary to w.
func printHistory(w io.Writer, store *storage.Store, capped int, seed int64) error {
	rounds, err := store.Rounds()
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	top, err := store.Top(topRounds)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Autopilot rounds (seed %d)\n", seed)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-5s  %-10s  %s\n", "Round", "Score", "ID")
	fmt.Fprintf(w, "  %-5s  %-10s  %s\n", "-----", "-----", "--")
	for _, r := range rounds {
		fmt.Fprintf(w, "  %-5d  %-10d  %s\n", r.Round, r.Score, r.ID)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d   Average: %.1f   Total: %d\n", stats.Best, stats.AvgScore, stats.TotalScore)
	fmt.Fprint(w, "Top:")
	for i, r := range top {
		fmt.Fprintf(w, "  %d. round %d (%d)", i+1, r.Round, r.Score)
	}
	fmt.Fprintln(w)
	if capped > 0 {
		fmt.Fprintf(w, "%d of %d rounds reached the tick cap\n", capped, stats.Rounds)
	}
	return nil
}
