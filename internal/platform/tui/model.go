package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/teatime-runner/internal/clock"
	"github.com/vovakirdan/teatime-runner/internal/config"
	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/runner"
	"github.com/vovakirdan/teatime-runner/internal/storage"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

// queueSize bounds the firings waiting for the event loop.
const queueSize = 16

// Options configures a Model.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig // terminal size, tick rate override and seed
	Theme   theme.Theme
	Logger  *log.Logger // nil discards
}

// Model is the Bubble Tea model running one game. It uses pointer
// receivers so the game's callbacks can update it in place.
type Model struct {
	game    *runner.Game
	queue   *clock.Queue
	sched   *clock.Realtime
	screen  *core.Screen
	surface *CellSurface
	store   *storage.Store
	logger  *log.Logger

	keymap *KeyMapper
	edge   *JumpEdge
	keys   KeyMap
	help   help.Model
	table  table.Model

	width     int
	height    int
	lastScore int
	best      int
	quitting  bool

	done      chan struct{}
	closeOnce sync.Once
}

// NewModel creates a model with its own game, scheduler and round history.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := opts.Config.WithTickRate(opts.Runtime.TickRate)
	if err != nil {
		logger.Warn("ignoring tick rate override", "rate", opts.Runtime.TickRate, "error", err)
		cfg = opts.Config
	}

	width := core.Max(opts.Runtime.ScreenW, 20)
	height := core.Max(opts.Runtime.ScreenH, 6)

	m := &Model{
		queue:  clock.NewQueue(queueSize),
		screen: core.NewScreen(width, height-1),
		logger: logger,
		keymap: NewKeyMapper(),
		edge:   NewJumpEdge(DefaultJumpQuiet),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		table:  newHistoryTable(),
		width:  width,
		height: height,
		done:   make(chan struct{}),
	}
	m.sched = clock.NewRealtime(m.queue)
	m.surface = NewCellSurface(m.screen, cfg.Board.Width, cfg.Board.Height, opts.Theme)

	store, err := storage.OpenHistory()
	if err != nil {
		// Continue without history
		logger.Warn("could not open round history", "error", err)
	}
	m.store = store

	m.game = runner.New(runner.Options{
		Config:     cfg,
		Scheduler:  m.sched,
		Surface:    m.surface,
		Seed:       opts.Runtime.Seed,
		Logger:     logger,
		OnRoundEnd: m.onRoundEnd,
		OnEvent: func(ev runner.Event) {
			logger.Debug("game event", "type", ev.Type, "round", ev.Round, "score", ev.Score)
		},
	})

	return m
}

// Init starts consuming the run-queue.
func (m *Model) Init() tea.Cmd {
	return waitForJob(m.queue, m.done)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case jobMsg:
		msg()
		return m, waitForJob(m.queue, m.done)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.game.Stop()
		m.Close()
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	switch m.game.State().Phase {
	case runner.PhaseIdle:
		if action == core.ActionJump || action == core.ActionRestart {
			m.edge.Press(time.Now())
			m.game.Start()
		}

	case runner.PhaseRunning:
		switch action {
		case core.ActionJump:
			if m.edge.Press(time.Now()) {
				m.game.Jump()
			}
		case core.ActionRestart:
			m.game.Restart()
		case core.ActionStop:
			m.game.Stop()
		}

	case runner.PhaseOver:
		if action == core.ActionRestart {
			m.edge.Reset()
			m.game.Restart()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// onRoundEnd records the final score. Runs inside a game tick.
func (m *Model) onRoundEnd(score int) {
	m.lastScore = score
	if m.store == nil {
		m.best = max(m.best, score)
		return
	}

	if _, err := m.store.Append(score); err != nil {
		m.logger.Warn("could not record round", "score", score, "error", err)
	}
	m.refreshHistory()
}

// refreshHistory reloads the table and best score from the store.
func (m *Model) refreshHistory() {
	rounds, err := m.store.Rounds()
	if err != nil {
		m.logger.Warn("could not load round history", "error", err)
		return
	}
	m.table.SetRows(historyRows(rounds))
	m.table.GotoBottom()

	if best, err := m.store.Best(); err == nil {
		m.best = best
	}
}

// resize fits the board to a new terminal size. The bottom line is the status bar.
func (m *Model) resize(width, height int) {
	m.width = core.Max(width, 20)
	m.height = core.Max(height, 6)
	m.screen.Resize(m.width, m.height-1)
	m.surface.Fit()
	m.help.Width = m.width
}

// saveScreenshot writes the current frame to a text file in the temp directory.
func (m *Model) saveScreenshot() {
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(os.TempDir(), fmt.Sprintf("teatime-runner_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Game returns the model's game.
func (m *Model) Game() *runner.Game {
	return m.game
}

// Close stops the game's tasks and drops the history. Safe to call more
// than once and from any goroutine.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.sched.Close()
		close(m.done)
		if m.store != nil {
			m.store.Close()
		}
	})
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.game.State().Phase {
	case runner.PhaseIdle:
		return m.titleView()
	case runner.PhaseOver:
		return m.overView()
	default:
		return RenderScreen(m.screen) + "\n" + m.statusLine()
	}
}

func (m *Model) statusLine() string {
	st := m.game.State()
	left := fmt.Sprintf(" score %d  round %d  best %d", st.Score, st.Round, m.best)
	if m.game.Player().EnhancedJumpReady() {
		left += "  [tea boost]"
	}
	right := "space jump · esc stop · q quit "
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return statusStyle.Render(left)
	}
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) titleView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TEATIME RUNNER"))
	b.WriteString("\n\n")
	b.WriteString("Jump the bushes and the guards.\n")
	b.WriteString("A teacup makes your next jump higher.\n\n")
	b.WriteString(dimStyle.Render("press space or enter to start"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}

func (m *Model) overView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString("Final score: ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d", m.game.State().Score)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   best %d", m.best)))
	b.WriteString("\n\n")
	if m.store != nil {
		b.WriteString(m.table.View())
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
