package runner

import "fmt"

// DetectCollision reports whether two rectangles overlap on both axes.
// Touching edges do not collide.
func DetectCollision(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Reaction is what a player collision with an entity does.
type Reaction uint8

const (
	// ReactionPickup arms the enhanced jump. The entity stays in play.
	ReactionPickup Reaction = iota + 1
	// ReactionTerminal ends the round.
	ReactionTerminal
)

func (r Reaction) String() string {
	switch r {
	case ReactionPickup:
		return "pickup"
	case ReactionTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

var reactions = map[Kind]Reaction{
	KindBush:   ReactionTerminal,
	KindTeacup: ReactionPickup,
	KindGuard:  ReactionTerminal,
	KindDragon: ReactionTerminal,
}

// ReactionFor returns the collision reaction of a kind.
// It panics for a kind without a reaction.
func ReactionFor(kind Kind) Reaction {
	r, ok := reactions[kind]
	if !ok {
		panic(fmt.Sprintf("runner: no collision reaction for %s", kind))
	}
	return r
}
