package core

import (
	"strings"
)

// Cell is a single screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a colour cell buffer. Frontends draw into it and the terminal
// renderer turns it into styled text.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: max(width, 0), height: max(height, 0)}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
	return s
}

func (s *Screen) Width() int {
	return s.width
}

func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the rectangle covering the whole screen.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the dimensions and keeps the overlapping top-left content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldW, oldH, oldCells := s.width, s.height, s.cells
	*s = *NewScreen(width, height)

	keep := s.Bounds().Intersect(NewRect(0, 0, oldW, oldH))
	for y := range keep.H {
		copy(s.cells[y*s.width:y*s.width+keep.W], oldCells[y*oldW:])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// SetCell places a cell at (x, y). Positions off the screen are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y*s.width+x] = c
}

// GetCell returns the cell at (x, y), or a blank cell off the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawColorText writes text left to right from (x, y), clipped at the edges.
func (s *Screen) DrawColorText(x, y int, text string, color Color) {
	for _, r := range text {
		s.SetCell(x, y, Cell{Rune: r, Color: color})
		x++
	}
}

// DrawRect fills the part of r that lies on the screen.
func (s *Screen) DrawRect(r Rect, fill Cell) {
	clip := r.Intersect(s.Bounds())
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := s.cells[y*s.width:]
		for x := clip.X; x < clip.Right(); x++ {
			row[x] = fill
		}
	}
}

// DrawHLine draws a one-row line of length cells starting at (x, y).
func (s *Screen) DrawHLine(x, y, length int, c Cell) {
	s.DrawRect(NewRect(x, y, length, 1), c)
}

// String returns the runes of every row joined with newlines, without colour.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as plain text. Rows off the screen read as blanks.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
