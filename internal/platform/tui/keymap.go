package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/teatime-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "ctrl+s":
		return core.ActionScreenshot
	case " ", "up", "w", "k":
		return core.ActionJump
	case "r", "enter":
		return core.ActionRestart
	case "esc":
		return core.ActionStop
	}

	return core.ActionNone
}

// DefaultJumpQuiet is the key-repeat window used by the terminal frontends.
const DefaultJumpQuiet = 120 * time.Millisecond

// JumpEdge turns a stream of jump key presses into press edges.
// Terminals report no key releases, only auto-repeated presses, so a press
// counts as a new edge only after the key has been quiet for the window.
type JumpEdge struct {
	quiet time.Duration
	last  time.Time
	seen  bool
}

// NewJumpEdge creates an edge detector with the given quiet window.
func NewJumpEdge(quiet time.Duration) *JumpEdge {
	return &JumpEdge{quiet: quiet}
}

// Press records a jump key press at now and reports whether it is a new edge.
func (e *JumpEdge) Press(now time.Time) bool {
	repeat := e.seen && now.Sub(e.last) < e.quiet
	e.last = now
	e.seen = true
	return !repeat
}

// Reset forgets the previous press.
func (e *JumpEdge) Reset() {
	e.seen = false
}
