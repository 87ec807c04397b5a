package theme

import (
	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/runner"
)

func init() {
	Register(Theme{
		ID:     "classic",
		Title:  "Classic",
		Ground: Glyph{Rune: '═', Color: core.ColorYellow},
		Text:   core.ColorBrightYellow,
		Glyphs: map[runner.Sprite]Glyph{
			runner.SpritePlayer:         {Rune: '█', Color: core.ColorBrightGreen},
			runner.SpritePlayerDefeated: {Rune: '▒', Color: core.ColorBrightRed},
			runner.SpriteBush:           {Rune: '♣', Color: core.ColorGreen},
			runner.SpriteTeacup:         {Rune: '◆', Color: core.ColorCyan},
			runner.SpriteGuard:          {Rune: '▓', Color: core.ColorOrange},
			runner.SpriteDragon:         {Rune: '▲', Color: core.ColorMagenta},
		},
	})

	Register(Theme{
		ID:     "ascii",
		Title:  "Plain ASCII",
		Ground: Glyph{Rune: '=', Color: core.ColorDefault},
		Text:   core.ColorDefault,
		Glyphs: map[runner.Sprite]Glyph{
			runner.SpritePlayer:         {Rune: '#', Color: core.ColorGreen},
			runner.SpritePlayerDefeated: {Rune: 'x', Color: core.ColorRed},
			runner.SpriteBush:           {Rune: '*', Color: core.ColorGreen},
			runner.SpriteTeacup:         {Rune: 'u', Color: core.ColorCyan},
			runner.SpriteGuard:          {Rune: 'H', Color: core.ColorYellow},
			runner.SpriteDragon:         {Rune: 'W', Color: core.ColorMagenta},
		},
	})

	Register(Theme{
		ID:     "mono",
		Title:  "Monochrome",
		Ground: Glyph{Rune: '─', Color: core.ColorGray},
		Text:   core.ColorWhite,
		Glyphs: map[runner.Sprite]Glyph{
			runner.SpritePlayer:         {Rune: '█', Color: core.ColorWhite},
			runner.SpritePlayerDefeated: {Rune: '░', Color: core.ColorGray},
			runner.SpriteBush:           {Rune: '▒', Color: core.ColorWhite},
			runner.SpriteTeacup:         {Rune: 'o', Color: core.ColorWhite},
			runner.SpriteGuard:          {Rune: '▓', Color: core.ColorWhite},
			runner.SpriteDragon:         {Rune: '▲', Color: core.ColorWhite},
		},
	})
}
