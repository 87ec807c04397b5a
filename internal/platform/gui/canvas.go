package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/teatime-runner/internal/runner"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

// groundHeight is the thickness of the ground strip in pixels.
const groundHeight = 2

// canvas draws runner frames onto an ebiten image, one logical unit per pixel.
type canvas struct {
	dst     *ebiten.Image
	theme   theme.Theme
	groundY float32
}

func (c *canvas) Clear() {
	c.dst.Fill(background)
	w := float32(c.dst.Bounds().Dx())
	vector.DrawFilledRect(c.dst, 0, c.groundY, w, groundHeight, rgba(c.theme.Ground.Color), false)
}

func (c *canvas) DrawSprite(s runner.Sprite, x, y, w, h float64) {
	clr := rgba(c.theme.Glyph(s).Color)
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// DrawText places the text baseline at y.
func (c *canvas) DrawText(x, y float64, s string) {
	text.Draw(c.dst, s, basicfont.Face7x13, int(x), int(y), rgba(c.theme.Text))
}
