package runner

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/teatime-runner/internal/clock"
	"github.com/vovakirdan/teatime-runner/internal/config"
)

type harness struct {
	game   *Game
	clock  *clock.Manual
	rec    *Recorder
	ended  []int
	events []Event
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock: clock.NewManual(),
		rec:   NewRecorder(),
	}
	h.game = New(Options{
		Config:     config.DefaultRunnerConfig(),
		Scheduler:  h.clock,
		Surface:    h.rec,
		Seed:       1,
		OnRoundEnd: func(score int) { h.ended = append(h.ended, score) },
		OnEvent:    func(ev Event) { h.events = append(h.events, ev) },
	})
	return h
}

// ticks advances virtual time by n tick intervals.
func (h *harness) ticks(n int) {
	h.clock.Advance(time.Duration(n) * h.game.Config().TickInterval())
}

func (h *harness) eventTypes() []EventType {
	types := make([]EventType, 0, len(h.events))
	for _, ev := range h.events {
		types = append(types, ev.Type)
	}
	return types
}

func guardAt(x float64) Entity {
	return Entity{Rect: Rect{X: x, Y: 156, Width: 78, Height: 90}, Kind: KindGuard, Sprite: SpriteGuard}
}

func teacupAt(x float64) Entity {
	return Entity{Rect: Rect{X: x, Y: 196, Width: 40, Height: 40}, Kind: KindTeacup, Sprite: SpriteTeacup}
}

func TestGameStartsIdle(t *testing.T) {
	h := newHarness(t)

	if got := h.game.State().Phase; got != PhaseIdle {
		t.Errorf("Phase = %s, expected idle", got)
	}
	h.game.Tick()
	h.game.Spawn()
	h.game.Jump()
	if s := h.game.State(); s.Score != 0 || s.Entities != 0 {
		t.Errorf("idle game should ignore Tick/Spawn, got %+v", s)
	}
	if h.clock.Active() != 0 {
		t.Errorf("idle game armed %d tasks", h.clock.Active())
	}
}

func TestGameScoreIncrementsPerTick(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	for i := 1; i <= 10; i++ {
		h.ticks(1)
		if got := h.game.State().Score; got != i {
			t.Fatalf("after %d ticks Score = %d", i, got)
		}
	}
}

func TestGameStartIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.Start()
	h.game.Start()

	if h.clock.Active() != 2 {
		t.Fatalf("Active() = %d, expected one tick and one spawn task", h.clock.Active())
	}

	h.ticks(30)
	if got := h.game.State().Score; got != 30 {
		t.Errorf("Score = %d, expected 30 (no duplicate tick task)", got)
	}
	if got := h.game.State().Round; got != 1 {
		t.Errorf("Round = %d, expected 1", got)
	}
}

func TestGameSpawnCadence(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	h.clock.Advance(2 * time.Second)
	if got := h.game.State().Entities; got != 1 {
		t.Fatalf("Entities after 2s = %d, expected 1", got)
	}
	e := h.game.Entities()[0]
	if e.X != 750 {
		t.Errorf("fresh spawn X = %v, expected 750", e.X)
	}
	// 120 ticks in two seconds, independent of the spawn cadence
	if got := h.game.State().Score; got != 120 {
		t.Errorf("Score after 2s = %d, expected 120", got)
	}
}

func TestGameStopIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.ticks(5)

	h.game.Stop()
	h.game.Stop()

	if got := h.game.State().Phase; got != PhaseOver {
		t.Errorf("Phase = %s, expected over", got)
	}
	if h.clock.Active() != 0 {
		t.Errorf("Active() = %d, expected both tasks cancelled", h.clock.Active())
	}

	h.clock.Advance(5 * time.Second)
	if s := h.game.State(); s.Score != 5 || s.Entities != 0 {
		t.Errorf("stopped game changed: %+v", s)
	}
	if len(h.ended) != 0 {
		t.Errorf("external stop reported scores %v", h.ended)
	}
}

func TestGameFrameOrder(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.place(teacupAt(600))
	h.game.place(guardAt(700))

	h.ticks(1)

	var got []Sprite
	var text string
	for _, op := range h.rec.Ops() {
		switch op.Kind {
		case OpSprite:
			got = append(got, op.Sprite)
		case OpText:
			text = op.Text
		}
	}

	want := []Sprite{SpritePlayer, SpriteGuard, SpriteTeacup}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sprites = %v, expected %v", got, want)
	}
	last := h.rec.Ops()[len(h.rec.Ops())-1]
	if last.Kind != OpText || last.X != 10 || last.Y != 20 {
		t.Errorf("last op = %+v, expected the score overlay at (10,20)", last)
	}
	if text != "1" {
		t.Errorf("overlay = %q, expected %q", text, "1")
	}
	if h.rec.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", h.rec.Frames())
	}
}

func TestGameEntitiesDriftAndPrune(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.place(Entity{Rect: Rect{X: -30, Y: 0, Width: 40, Height: 10}, Kind: KindBush, Sprite: SpriteBush})
	h.game.place(Entity{Rect: Rect{X: -22, Y: 0, Width: 30, Height: 10}, Kind: KindBush, Sprite: SpriteBush})
	h.game.place(Entity{Rect: Rect{X: 400, Y: 0, Width: 10, Height: 10}, Kind: KindBush, Sprite: SpriteBush})

	h.ticks(1)
	// -38+40 = 2 stays, -30+30 = 0 stays on the boundary
	if got := h.game.State().Entities; got != 3 {
		t.Fatalf("Entities after 1 tick = %d, expected 3", got)
	}

	h.ticks(1)
	es := h.game.Entities()
	if len(es) != 1 {
		t.Fatalf("Entities after 2 ticks = %d, expected 1", len(es))
	}
	if es[0].X != 384 {
		t.Errorf("surviving X = %v, expected 384", es[0].X)
	}
	for _, e := range es {
		if e.IsOffScreen() {
			t.Errorf("off-screen entity left in the live set: %+v", e)
		}
	}
}

func TestGameGuardCollisionEndsRound(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.ticks(3)

	// Coincident with the player at (50,156,88,94)
	h.game.place(guardAt(50))
	if !DetectCollision(h.game.Player().Rect, guardAt(50).Rect) {
		t.Fatal("guard should collide with the player")
	}

	h.ticks(1)

	s := h.game.State()
	if s.Phase != PhaseOver {
		t.Fatalf("Phase = %s, expected over", s.Phase)
	}
	if !reflect.DeepEqual(h.ended, []int{3}) {
		t.Errorf("OnRoundEnd calls = %v, expected [3]", h.ended)
	}
	if s.Score != 3 {
		t.Errorf("Score = %d, expected the terminal tick not to score", s.Score)
	}
	if h.game.Player().Sprite != SpritePlayerDefeated {
		t.Errorf("player sprite = %s, expected %s", h.game.Player().Sprite, SpritePlayerDefeated)
	}
	if h.clock.Active() != 0 {
		t.Errorf("Active() = %d, expected both tasks cancelled", h.clock.Active())
	}

	h.clock.Advance(10 * time.Second)
	if len(h.ended) != 1 {
		t.Errorf("OnRoundEnd fired %d times, expected once", len(h.ended))
	}
}

func TestGameMultipleHazardsReportOnce(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.place(guardAt(60))
	h.game.place(guardAt(70))
	h.game.place(Entity{Rect: Rect{X: 80, Y: 196, Width: 52, Height: 58}, Kind: KindBush, Sprite: SpriteBush})

	h.ticks(1)

	if len(h.ended) != 1 {
		t.Errorf("OnRoundEnd fired %d times, expected once", len(h.ended))
	}
	// The rest of the terminal tick still ran
	for _, e := range h.game.Entities() {
		if e.X == 60 || e.X == 70 || e.X == 80 {
			t.Errorf("entity %s at %v was not updated on the terminal tick", e.Kind, e.X)
		}
	}
}

func TestGameRestartAfterCollision(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.ticks(2)
	h.game.place(teacupAt(700))
	h.game.place(guardAt(50))
	h.ticks(1)
	if h.game.State().Phase != PhaseOver {
		t.Fatal("round should be over")
	}

	h.game.Restart()

	s := h.game.State()
	if s.Phase != PhaseRunning || s.Score != 0 || s.Entities != 0 || s.Round != 2 {
		t.Errorf("after Restart state = %+v", s)
	}
	p := h.game.Player()
	if p.Sprite != SpritePlayer || !p.Grounded() || p.EnhancedJumpReady() {
		t.Errorf("player not reset: %+v", p)
	}
	if h.clock.Active() != 2 {
		t.Fatalf("Active() = %d, expected exactly one tick and one spawn task", h.clock.Active())
	}

	h.clock.Advance(2 * time.Second)
	if got := h.game.State().Entities; got != 1 {
		t.Errorf("spawning not re-enabled: Entities = %d", got)
	}
	if got := h.game.State().Score; got != 120 {
		t.Errorf("Score = %d, expected 120 at the old tick rate", got)
	}
}

func TestGameStartAfterOverRestarts(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.ticks(4)
	h.game.Stop()

	h.game.Start()
	if s := h.game.State(); s.Phase != PhaseRunning || s.Score != 0 || s.Round != 2 {
		t.Errorf("Start after Over: %+v", s)
	}
	if h.clock.Active() != 2 {
		t.Errorf("Active() = %d, expected 2", h.clock.Active())
	}
}

func TestGameRestartWhileRunning(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.ticks(10)
	h.game.place(guardAt(500))

	h.game.Restart()
	h.game.Restart()

	if s := h.game.State(); s.Score != 0 || s.Entities != 0 || s.Phase != PhaseRunning {
		t.Errorf("Restart while running: %+v", s)
	}
	if h.clock.Active() != 2 {
		t.Errorf("Active() = %d, expected the existing two tasks", h.clock.Active())
	}
	h.ticks(6)
	if got := h.game.State().Score; got != 6 {
		t.Errorf("Score = %d, expected 6", got)
	}
}

func TestGameRestartFromRoundEndCallback(t *testing.T) {
	h := newHarness(t)
	h.game.onRoundEnd = func(score int) {
		h.ended = append(h.ended, score)
		h.game.Restart()
	}
	h.game.Start()
	h.game.place(guardAt(50))

	h.ticks(1)
	if s := h.game.State(); s.Phase != PhaseRunning || s.Round != 2 {
		t.Fatalf("restart from callback: %+v", s)
	}
	if h.clock.Active() != 2 {
		t.Errorf("Active() = %d, expected 2", h.clock.Active())
	}

	h.ticks(3)
	if got := h.game.State().Score; got != 3 {
		t.Errorf("Score = %d, expected 3", got)
	}
}

func TestGamePickupScenario(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.place(teacupAt(60))

	h.ticks(1)
	p := h.game.Player()
	if !p.EnhancedJumpReady() {
		t.Fatal("pickup should arm the enhanced jump")
	}
	if h.game.State().Entities != 1 {
		t.Error("pickup should stay in play after contact")
	}
	if h.game.State().Phase != PhaseRunning {
		t.Error("pickup must not end the round")
	}

	h.game.Jump()
	if p.VelocityY() != -15 || p.EnhancedJumpReady() {
		t.Errorf("enhanced jump: vy=%v ready=%v", p.VelocityY(), p.EnhancedJumpReady())
	}
	h.game.Jump()
	if p.VelocityY() != -11 {
		t.Errorf("second jump vy = %v, expected -11", p.VelocityY())
	}
}

func TestPickupNotRemovedOnHit(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.place(teacupAt(100))

	h.ticks(1)
	if !h.game.Player().EnhancedJumpReady() {
		t.Fatal("first contact should arm the buff")
	}

	// Consume it while still overlapping; the next tick re-grants it
	h.game.Jump()
	if h.game.Player().EnhancedJumpReady() {
		t.Fatal("jump should consume the buff")
	}
	h.ticks(1)
	if !h.game.Player().EnhancedJumpReady() {
		t.Error("the same teacup should grant the buff again")
	}
}

func TestGameEvents(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	// Overlaps the player on the first tick only
	h.game.place(teacupAt(20))
	h.ticks(1)
	h.ticks(1)
	h.game.Jump()
	h.game.Jump() // normal jump, still grounded
	h.ticks(1)
	h.game.Jump() // airborne, no event
	h.game.place(guardAt(50))
	h.ticks(1)

	want := []EventType{EventRoundStart, EventPickup, EventJump, EventJump, EventRoundEnd}
	if got := h.eventTypes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	if !h.events[2].Enhanced || h.events[3].Enhanced {
		t.Errorf("Enhanced flags = %v, %v", h.events[2].Enhanced, h.events[3].Enhanced)
	}
	if end := h.events[4]; end.Score != 3 || end.Round != 1 {
		t.Errorf("round end event = %+v", end)
	}
}

func TestGameRealtimeQueue(t *testing.T) {
	q := clock.NewQueue(8)
	rt := clock.NewRealtime(q)
	defer rt.Close()

	cfg := config.DefaultRunnerConfig()
	cfg.Timing.TickRate = 500
	g := New(Options{Config: cfg, Scheduler: rt, Seed: 1})
	g.Start()

	deadline := time.After(5 * time.Second)
	for g.State().Score < 5 {
		select {
		case fn := <-q.Jobs():
			fn()
		case <-deadline:
			t.Fatalf("score only reached %d", g.State().Score)
		}
	}

	g.Stop()
	score := g.State().Score
	time.Sleep(20 * time.Millisecond)
	for len(q.Jobs()) > 0 {
		(<-q.Jobs())()
	}
	if g.State().Score != score {
		t.Error("stale tick ran after Stop")
	}
}

func TestAutopilot(t *testing.T) {
	run := func(miss float64) *harness {
		h := newHarness(t)
		ap := NewAutopilot(DefaultReach, miss, 7)
		h.game.Start()
		for i := 0; i < 60*90 && h.game.State().Phase == PhaseRunning; i++ {
			ap.Step(h.game)
			h.ticks(1)
		}
		return h
	}

	h := run(0)
	if h.game.State().Phase != PhaseRunning {
		t.Errorf("perfect autopilot crashed at score %d", h.game.State().Score)
	}

	h = run(1)
	if h.game.State().Phase != PhaseOver || len(h.ended) != 1 {
		t.Errorf("autopilot that never jumps should crash, state %+v", h.game.State())
	}
}
