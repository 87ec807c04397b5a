package runner

import (
	"math"

	"github.com/vovakirdan/teatime-runner/internal/config"
)

// Player is the jumping character. One exists per game; it is reset between
// rounds, never replaced.
type Player struct {
	Rect
	Sprite Sprite

	vy            float64 // Vertical velocity, positive is down
	enhancedReady bool    // Next grounded jump uses the enhanced velocity

	startX      float64
	groundY     float64
	jumpVel     float64
	enhancedVel float64
}

// NewPlayer creates a grounded player from the board and physics settings.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		startX:      cfg.Player.X,
		groundY:     cfg.GroundY(),
		jumpVel:     cfg.Physics.JumpVelocity,
		enhancedVel: cfg.Physics.EnhancedJumpVelocity,
	}
	p.Width = cfg.Player.Width
	p.Height = cfg.Player.Height
	p.Reset()
	return p
}

// Update integrates one tick of gravity. The position is clamped to the
// ground but the velocity is left as is, so it keeps growing while grounded.
func (p *Player) Update(gravity float64) {
	p.vy += gravity
	p.Y = math.Min(p.Y+p.vy, p.groundY)
}

// Grounded reports whether the player rests on the ground.
func (p *Player) Grounded() bool {
	return p.Y == p.groundY
}

// Jump starts a jump if grounded and reports whether it did. A pending
// enhanced jump is consumed. Airborne calls change nothing.
func (p *Player) Jump() bool {
	if !p.Grounded() {
		return false
	}
	if p.enhancedReady {
		p.vy = p.enhancedVel
		p.enhancedReady = false
		return true
	}
	p.vy = p.jumpVel
	return true
}

// ActivateEnhancedJump arms the one-shot enhanced jump. Repeated calls do not stack.
func (p *Player) ActivateEnhancedJump() {
	p.enhancedReady = true
}

// EnhancedJumpReady reports whether the next grounded jump is enhanced.
func (p *Player) EnhancedJumpReady() bool {
	return p.enhancedReady
}

// VelocityY returns the current vertical velocity.
func (p *Player) VelocityY() float64 {
	return p.vy
}

// GroundY returns the resting Y coordinate.
func (p *Player) GroundY() float64 {
	return p.groundY
}

// Reset puts the player back on the ground with the live sprite and no buff.
func (p *Player) Reset() {
	p.X = p.startX
	p.Y = p.groundY
	p.vy = 0
	p.enhancedReady = false
	p.Sprite = SpritePlayer
}

// Draw issues the player at its current position.
func (p *Player) Draw(s Surface) {
	s.DrawSprite(p.Sprite, p.X, p.Y, p.Width, p.Height)
}
