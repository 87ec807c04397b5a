// Package gui runs the game in a desktop window with ebiten.
// The game runs on a virtual clock advanced once per ebiten update, so
// every callback stays on the ebiten update goroutine.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/teatime-runner/internal/audio"
	"github.com/vovakirdan/teatime-runner/internal/clock"
	"github.com/vovakirdan/teatime-runner/internal/config"
	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/runner"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

// windowScale is the initial window size relative to the board.
const windowScale = 1.5

// keyBindings lists the keys polled each frame.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEnter, core.ActionRestart},
	{ebiten.KeyEscape, core.ActionStop},
	{ebiten.KeyQ, core.ActionQuit},
}

// Options configures an App.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig // tick rate override and seed
	Theme   theme.Theme
	Audio   *audio.Player // nil plays nothing
	Logger  *log.Logger   // nil discards
}

// App implements ebiten.Game for one runner game.
type App struct {
	game   *runner.Game
	clock  *clock.Manual
	frame  *runner.Recorder
	theme  theme.Theme
	audio  *audio.Player
	logger *log.Logger

	input  core.InputFrame
	step   time.Duration
	width  int
	height int
	best   int
}

// New creates the window game. It does not open the window.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := opts.Config.WithTickRate(opts.Runtime.TickRate)
	if err != nil {
		logger.Warn("ignoring tick rate override", "rate", opts.Runtime.TickRate, "error", err)
		cfg = opts.Config
	}

	a := &App{
		clock:  clock.NewManual(),
		frame:  runner.NewRecorder(),
		theme:  opts.Theme,
		audio:  opts.Audio,
		logger: logger,
		input:  core.NewInputFrame(),
		step:   time.Second / ebiten.DefaultTPS,
		width:  int(cfg.Board.Width),
		height: int(cfg.Board.Height),
	}

	a.game = runner.New(runner.Options{
		Config:     cfg,
		Scheduler:  a.clock,
		Surface:    a.frame,
		Seed:       opts.Runtime.Seed,
		Logger:     logger,
		OnRoundEnd: a.onRoundEnd,
		OnEvent:    a.onEvent,
	})
	return a
}

// Game returns the running game.
func (a *App) Game() *runner.Game {
	return a.game
}

// Update polls the keyboard and advances the game by one frame.
func (a *App) Update() error {
	a.input.Clear()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			a.input.Set(b.action)
		}
	}

	if a.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	a.advance(a.input)
	return nil
}

// advance applies one frame of input, then moves the virtual clock by one frame.
func (a *App) advance(in core.InputFrame) {
	switch a.game.State().Phase {
	case runner.PhaseIdle:
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			a.game.Start()
		}
	case runner.PhaseRunning:
		if in.Has(core.ActionJump) {
			a.game.Jump()
		}
		if in.Has(core.ActionRestart) {
			a.game.Restart()
		}
		if in.Has(core.ActionStop) {
			a.game.Stop()
		}
	case runner.PhaseOver:
		if in.Has(core.ActionRestart) {
			a.game.Restart()
		}
	}

	a.clock.Advance(a.step)
}

func (a *App) onRoundEnd(score int) {
	a.best = max(a.best, score)
	a.logger.Info("round over", "score", score, "best", a.best)
}

func (a *App) onEvent(ev runner.Event) {
	if a.audio != nil {
		a.audio.HandleEvent(ev)
	}
}

// Draw replays the last game frame and adds the title or game over banner.
func (a *App) Draw(screen *ebiten.Image) {
	c := &canvas{dst: screen, theme: a.theme, groundY: float32(a.height - groundHeight)}
	a.frame.Replay(c)

	switch a.game.State().Phase {
	case runner.PhaseIdle:
		a.banner(screen, "TEATIME RUNNER", "press space to start")
	case runner.PhaseOver:
		a.banner(screen, "GAME OVER",
			fmt.Sprintf("score %d   best %d   press R to restart", a.game.State().Score, a.best))
	}
}

func (a *App) banner(screen *ebiten.Image, title, hint string) {
	face := basicfont.Face7x13
	clr := rgba(a.theme.Text)

	tw := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, (a.width-tw)/2, a.height/2-10, clr)

	hw := text.BoundString(face, hint).Dx()
	text.Draw(screen, hint, face, (a.width-hw)/2, a.height/2+10, rgba(core.ColorGray))
}

// Layout keeps one logical board unit per pixel; ebiten scales the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(opts Options) error {
	app := New(opts)

	ebiten.SetWindowSize(int(float64(app.width)*windowScale), int(float64(app.height)*windowScale))
	ebiten.SetWindowTitle("Teatime Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(app)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
