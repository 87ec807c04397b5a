package runner

import (
	"io"
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/teatime-runner/internal/clock"
	"github.com/vovakirdan/teatime-runner/internal/config"
)

// Phase is the lifecycle state of a game.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is a snapshot of the current round.
type State struct {
	Phase    Phase
	Score    int
	Round    int // Rounds started so far
	Entities int // Live entity count
}

// Options configures a Game.
type Options struct {
	Config    config.RunnerConfig
	Scheduler clock.Scheduler // Defaults to a Manual clock nobody advances
	Surface   Surface         // Defaults to a surface that draws nothing
	Seed      int64           // Seed for spawn rolls; 0 uses the current time
	Logger    *log.Logger     // Defaults to a discarding logger

	// OnRoundEnd receives the final score once per terminal collision.
	OnRoundEnd func(score int)
	// OnEvent receives lifecycle and gameplay notifications.
	OnEvent func(Event)
}

// Game owns one player, the live entities and the score, and drives them
// with a tick task and a spawn task armed on its scheduler.
//
// Game is not safe for concurrent use. All methods, including the task
// callbacks, must run on one logical run-queue.
type Game struct {
	cfg     config.RunnerConfig
	sched   clock.Scheduler
	surface Surface
	log     *log.Logger

	onRoundEnd func(int)
	onEvent    func(Event)

	player   *Player
	spawner  *Spawner
	entities []Entity

	phase Phase
	score int
	round int

	tickTask  clock.Task
	spawnTask clock.Task

	pending []Event // events raised inside a tick, delivered after it
}

// New creates an idle game.
func New(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:        opts.Config,
		sched:      opts.Scheduler,
		surface:    opts.Surface,
		log:        opts.Logger,
		onRoundEnd: opts.OnRoundEnd,
		onEvent:    opts.OnEvent,
		entities:   make([]Entity, 0, 8),
	}
	if g.sched == nil {
		g.sched = clock.NewManual()
	}
	if g.surface == nil {
		g.surface = discardSurface{}
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	g.player = NewPlayer(g.cfg)
	g.spawner = NewSpawner(g.cfg, rand.New(rand.NewSource(seed)))
	return g
}

// Start begins a round. It is a no-op while running and starts a fresh
// round when the previous one is over.
func (g *Game) Start() {
	if g.phase == PhaseRunning {
		return
	}
	g.resetRound()
	g.phase = PhaseRunning
	g.arm()

	g.log.Debug("round started", "round", g.round)
	g.emit(Event{Type: EventRoundStart, Round: g.round})
}

// Stop ends a running round without reporting a score. It is idempotent.
func (g *Game) Stop() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhaseOver
	g.disarm()

	g.log.Debug("round stopped", "round", g.round, "score", g.score)
	g.emit(Event{Type: EventStopped, Round: g.round, Score: g.score})
}

// Restart clears the live entities, zeroes the score, resets the player and
// runs a new round. A running round is reset in place on its existing tasks.
func (g *Game) Restart() {
	if g.phase != PhaseRunning {
		g.Start()
		return
	}
	g.resetRound()

	g.log.Debug("round restarted", "round", g.round)
	g.emit(Event{Type: EventRoundStart, Round: g.round})
}

// Jump requests a player jump. Ignored unless running; airborne requests
// are ignored by the player itself.
func (g *Game) Jump() {
	if g.phase != PhaseRunning {
		return
	}
	enhanced := g.player.EnhancedJumpReady()
	if g.player.Jump() {
		g.emit(Event{Type: EventJump, Round: g.round, Score: g.score, Enhanced: enhanced})
	}
}

// Tick advances the round by one fixed step and draws the frame.
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}
	s := g.surface

	s.Clear()
	g.player.Update(g.cfg.Physics.Gravity)
	g.player.Draw(s)

	// Back-to-front so removal never skips an entity.
	for i := len(g.entities) - 1; i >= 0; i-- {
		e := &g.entities[i]
		e.Update(g.cfg.Physics.ScrollVelocity)
		e.Draw(s)
		if DetectCollision(g.player.Rect, e.Rect) {
			g.react(e.Kind)
		}
		if e.IsOffScreen() {
			g.entities = slices.Delete(g.entities, i, i+1)
		}
	}

	over := g.phase == PhaseOver
	if !over {
		g.score++
	}
	s.DrawText(g.cfg.HUD.ScoreX, g.cfg.HUD.ScoreY, strconv.Itoa(g.score))

	if over {
		g.endRound()
		return
	}
	g.flush()
}

// Spawn adds one entity at the right board edge. Ignored unless running.
func (g *Game) Spawn() {
	if g.phase != PhaseRunning {
		return
	}
	e := g.spawner.Next()
	g.entities = append(g.entities, e)
	g.log.Debug("spawned", "kind", e.Kind, "x", e.X, "y", e.Y)
}

// place adds an entity to the live set as is.
func (g *Game) place(e Entity) {
	g.entities = append(g.entities, e)
}

// State returns a snapshot of the round.
func (g *Game) State() State {
	return State{
		Phase:    g.phase,
		Score:    g.score,
		Round:    g.round,
		Entities: len(g.entities),
	}
}

// Player returns the game's player. It stays owned by the game.
func (g *Game) Player() *Player {
	return g.player
}

// Entities returns a copy of the live entities.
func (g *Game) Entities() []Entity {
	return slices.Clone(g.entities)
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

func (g *Game) react(kind Kind) {
	switch ReactionFor(kind) {
	case ReactionPickup:
		if !g.player.EnhancedJumpReady() {
			g.pending = append(g.pending, Event{Type: EventPickup, Round: g.round, Score: g.score})
		}
		g.player.ActivateEnhancedJump()
	case ReactionTerminal:
		if g.phase == PhaseRunning {
			g.phase = PhaseOver
			g.player.Sprite = SpritePlayerDefeated
		}
	}
}

// endRound cancels both tasks and reports the score. Called once per
// terminal collision, after the entity pass of that tick.
func (g *Game) endRound() {
	g.disarm()
	score := g.score

	g.log.Info("round over", "round", g.round, "score", score)
	g.pending = append(g.pending, Event{Type: EventRoundEnd, Round: g.round, Score: score})
	g.flush()
	if g.onRoundEnd != nil {
		g.onRoundEnd(score)
	}
}

func (g *Game) resetRound() {
	g.entities = g.entities[:0]
	g.score = 0
	g.player.Reset()
	g.round++
}

func (g *Game) arm() {
	if g.tickTask == nil {
		g.tickTask = g.sched.Every(g.cfg.TickInterval(), g.Tick)
	}
	if g.spawnTask == nil {
		g.spawnTask = g.sched.Every(g.cfg.Spawn.Interval, g.Spawn)
	}
}

func (g *Game) disarm() {
	if g.tickTask != nil {
		g.tickTask.Stop()
		g.tickTask = nil
	}
	if g.spawnTask != nil {
		g.spawnTask.Stop()
		g.spawnTask = nil
	}
}

func (g *Game) emit(ev Event) {
	if g.onEvent != nil {
		g.onEvent(ev)
	}
}

// flush delivers the events raised during a tick.
func (g *Game) flush() {
	if len(g.pending) == 0 {
		return
	}
	events := g.pending
	g.pending = nil
	for _, ev := range events {
		g.emit(ev)
	}
}
