// Package theme provides a global registry of sprite palettes.
// Themes register themselves in init() functions, allowing the terminal
// frontends to look them up by ID without hardcoded dependencies.
package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/runner"
)

// DefaultID is the theme used when none is requested.
const DefaultID = "classic"

// Glyph is how a sprite fills its cells.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Cell returns the screen cell for this glyph.
func (g Glyph) Cell() core.Cell {
	return core.Cell{Rune: g.Rune, Color: g.Color}
}

// Theme maps sprite handles to glyphs.
type Theme struct {
	ID     string
	Title  string
	Ground Glyph                   // Line drawn under the board
	Text   core.Color              // Score overlay colour
	Glyphs map[runner.Sprite]Glyph // Fill per sprite
}

// Glyph returns the fill for a sprite. Unknown sprites render as '?'.
func (t Theme) Glyph(s runner.Sprite) Glyph {
	if g, ok := t.Glyphs[s]; ok {
		return g
	}
	return Glyph{Rune: '?', Color: core.ColorDefault}
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.ID))
	}
	themes[t.ID] = t
}

// List returns all registered themes, sorted by ID.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, 0, len(themes))
	for _, t := range themes {
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a theme by ID. An empty ID selects the default theme.
func Get(id string) (Theme, error) {
	if id == "" {
		id = DefaultID
	}

	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", id)
	}
	return t, nil
}

// Default returns the built-in default theme.
func Default() Theme {
	t, err := Get(DefaultID)
	if err != nil {
		panic(err)
	}
	return t
}
