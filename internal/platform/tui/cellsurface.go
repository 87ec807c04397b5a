package tui

import (
	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/runner"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

// CellSurface draws runner frames onto a Screen. The board fills every row
// but the last, which holds the ground line.
type CellSurface struct {
	screen *core.Screen
	view   core.Viewport
	theme  theme.Theme
	boardW float64
	boardH float64
}

// NewCellSurface creates a surface projecting a boardW x boardH board onto screen.
func NewCellSurface(screen *core.Screen, boardW, boardH float64, th theme.Theme) *CellSurface {
	c := &CellSurface{
		screen: screen,
		theme:  th,
		boardW: boardW,
		boardH: boardH,
	}
	c.Fit()
	return c
}

// Fit recomputes the projection after the screen was resized.
func (c *CellSurface) Fit() {
	rows := core.Max(c.screen.Height()-1, 1)
	c.view = core.NewViewport(c.boardW, c.boardH, 0, 0, c.screen.Width(), rows)
}

// viewport returns the current projection.
func (c *CellSurface) viewport() core.Viewport {
	return c.view
}

func (c *CellSurface) Clear() {
	c.screen.Clear()
	c.screen.DrawHLine(0, c.view.Rows(), c.view.Cols(), c.theme.Ground.Cell())
}

func (c *CellSurface) DrawSprite(s runner.Sprite, x, y, w, h float64) {
	c.screen.DrawRect(c.view.Rect(x, y, w, h), c.theme.Glyph(s).Cell())
}

func (c *CellSurface) DrawText(x, y float64, text string) {
	cx, cy := c.view.Point(x, y)
	c.screen.DrawColorText(cx, cy, text, c.theme.Text)
}
