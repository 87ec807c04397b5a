package gui

import (
	"image/color"

	"github.com/vovakirdan/teatime-runner/internal/core"
)

var background = color.RGBA{R: 0x1c, G: 0x1c, B: 0x24, A: 0xff}

// palette maps terminal colours to window colours.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorRed:          {R: 0xcc, G: 0x33, B: 0x33, A: 0xff},
	core.ColorGreen:        {R: 0x33, G: 0xaa, B: 0x44, A: 0xff},
	core.ColorYellow:       {R: 0xcc, G: 0xaa, B: 0x22, A: 0xff},
	core.ColorBlue:         {R: 0x33, G: 0x66, B: 0xcc, A: 0xff},
	core.ColorMagenta:      {R: 0xaa, G: 0x44, B: 0xbb, A: 0xff},
	core.ColorCyan:         {R: 0x33, G: 0xbb, B: 0xcc, A: 0xff},
	core.ColorWhite:        {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	core.ColorBrightRed:    {R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	core.ColorBrightGreen:  {R: 0x55, G: 0xee, B: 0x66, A: 0xff},
	core.ColorBrightYellow: {R: 0xff, G: 0xee, B: 0x55, A: 0xff},
	core.ColorOrange:       {R: 0xff, G: 0x88, B: 0x00, A: 0xff},
	core.ColorGray:         {R: 0x88, G: 0x88, B: 0x88, A: 0xff},
}

// rgba returns the window colour for c, falling back to the default colour.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
