package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/teatime-runner/internal/config"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultRunnerConfig())
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	want := Rect{X: 50, Y: 156, Width: 88, Height: 94}
	if p.Rect != want {
		t.Errorf("Rect = %+v, expected %+v", p.Rect, want)
	}
	if !p.Grounded() {
		t.Error("new player should be grounded")
	}
	if p.Sprite != SpritePlayer {
		t.Errorf("Sprite = %s, expected %s", p.Sprite, SpritePlayer)
	}
	if p.VelocityY() != 0 || p.EnhancedJumpReady() {
		t.Error("new player should have no velocity and no buff")
	}
}

func TestPlayerGroundClampKeepsVelocity(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 3; i++ {
		p.Update(0.4)
	}

	if p.Y != p.GroundY() {
		t.Errorf("Y = %v, expected clamp to %v", p.Y, p.GroundY())
	}
	if !approx(p.VelocityY(), 1.2) {
		t.Errorf("VelocityY() = %v, expected 1.2 to keep growing while grounded", p.VelocityY())
	}
}

func TestPlayerGroundedJump(t *testing.T) {
	p := newTestPlayer()

	if !p.Jump() {
		t.Fatal("grounded jump should take off")
	}
	if p.VelocityY() != -11 {
		t.Errorf("VelocityY() = %v, expected -11", p.VelocityY())
	}

	p.Update(0.4)
	if !approx(p.Y, 156-10.6) {
		t.Errorf("Y after one tick = %v, expected %v", p.Y, 156-10.6)
	}
}

func TestPlayerAirborneJumpIgnored(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.Update(0.4)
	p.Update(0.4)

	before := p.VelocityY()
	if p.Jump() {
		t.Error("airborne jump should not take off")
	}
	if p.VelocityY() != before {
		t.Errorf("VelocityY() = %v, expected unchanged %v", p.VelocityY(), before)
	}

	// Also ignored while airborne with the buff armed, which stays armed
	p.ActivateEnhancedJump()
	p.Jump()
	if p.VelocityY() != before || !p.EnhancedJumpReady() {
		t.Error("airborne jump should neither change velocity nor consume the buff")
	}
}

func TestPlayerEnhancedJump(t *testing.T) {
	p := newTestPlayer()

	p.ActivateEnhancedJump()
	p.ActivateEnhancedJump() // no stacking
	if !p.EnhancedJumpReady() {
		t.Fatal("buff should be armed")
	}

	p.Jump()
	if p.VelocityY() != -15 {
		t.Errorf("enhanced VelocityY() = %v, expected -15", p.VelocityY())
	}
	if p.EnhancedJumpReady() {
		t.Error("enhanced jump should consume the buff")
	}

	// Still on the ground: a second immediate jump is a normal one
	p.Jump()
	if p.VelocityY() != -11 {
		t.Errorf("second VelocityY() = %v, expected -11", p.VelocityY())
	}
}

func TestPlayerLandsAfterJump(t *testing.T) {
	p := newTestPlayer()
	p.Jump()

	peak := p.Y
	ticks := 0
	for {
		p.Update(0.4)
		ticks++
		peak = math.Min(peak, p.Y)
		if p.Grounded() {
			break
		}
		if ticks > 200 {
			t.Fatal("player never landed")
		}
	}

	if ticks < 50 || ticks > 60 {
		t.Errorf("airtime = %d ticks, expected about 55", ticks)
	}
	if rise := p.GroundY() - peak; rise < 140 || rise > 152 {
		t.Errorf("jump height = %v, expected about 146", rise)
	}
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer()
	p.ActivateEnhancedJump()
	p.Jump()
	p.Update(0.4)
	p.Sprite = SpritePlayerDefeated

	p.Reset()

	if !p.Grounded() || p.X != 50 {
		t.Errorf("Reset position = (%v, %v)", p.X, p.Y)
	}
	if p.VelocityY() != 0 {
		t.Errorf("Reset VelocityY() = %v, expected 0", p.VelocityY())
	}
	if p.EnhancedJumpReady() {
		t.Error("Reset should clear the buff")
	}
	if p.Sprite != SpritePlayer {
		t.Errorf("Reset sprite = %s, expected %s", p.Sprite, SpritePlayer)
	}
}
