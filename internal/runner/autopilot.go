package runner

import "math/rand"

// DefaultReach is how far ahead of the player a hazard triggers a jump.
// Jumping inside this window clears both hazard kinds at the default physics.
const DefaultReach = 100

// Autopilot jumps over hazards that come within reach. A non-zero miss rate
// makes it skip some decisions so rounds eventually end.
type Autopilot struct {
	Reach float64
	Miss  float64
	rng   *rand.Rand
}

// NewAutopilot creates an autopilot whose misses are drawn from seed.
func NewAutopilot(reach, miss float64, seed int64) *Autopilot {
	return &Autopilot{
		Reach: reach,
		Miss:  miss,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// ShouldJump reports whether a hazard lies between the player's front edge
// and the reach distance.
func (a *Autopilot) ShouldJump(g *Game) bool {
	p := g.Player()
	if !p.Grounded() {
		return false
	}
	front := p.Right()
	for _, e := range g.entities {
		if ReactionFor(e.Kind) != ReactionTerminal {
			continue
		}
		gap := e.X - front
		if gap >= 0 && gap <= a.Reach {
			return true
		}
	}
	return false
}

// Step makes one decision and jumps if it calls for one. It reports whether
// a jump was requested.
func (a *Autopilot) Step(g *Game) bool {
	if !a.ShouldJump(g) {
		return false
	}
	if a.Miss > 0 && a.rng.Float64() < a.Miss {
		return false
	}
	g.Jump()
	return true
}
