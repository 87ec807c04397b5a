package runner

// EventType identifies a game notification.
type EventType uint8

const (
	EventRoundStart EventType = iota + 1
	EventJump
	EventPickup
	EventRoundEnd
	EventStopped
)

func (t EventType) String() string {
	switch t {
	case EventRoundStart:
		return "round-start"
	case EventJump:
		return "jump"
	case EventPickup:
		return "pickup"
	case EventRoundEnd:
		return "round-end"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Event is delivered to Options.OnEvent.
type Event struct {
	Type     EventType
	Round    int  // Round number, starting at 1
	Score    int  // Score when the event fired
	Enhanced bool // EventJump only: the jump used the enhanced velocity
}
