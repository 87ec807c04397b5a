package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// snap absorbs float noise so a box ending exactly on a cell border
// does not spill into the next cell.
const snap = 1e-9

// Viewport projects logical board coordinates onto terminal cells.
type Viewport struct {
	toCells mgl64.Mat3
	cols    int
	rows    int
}

// NewViewport maps a logicalW x logicalH board onto cols x rows cells
// whose top-left cell is (originX, originY).
func NewViewport(logicalW, logicalH float64, originX, originY, cols, rows int) Viewport {
	scale := mgl64.Scale2D(float64(cols)/logicalW, float64(rows)/logicalH)
	shift := mgl64.Translate2D(float64(originX), float64(originY))
	return Viewport{
		toCells: shift.Mul3(scale),
		cols:    cols,
		rows:    rows,
	}
}

// Cols returns the number of cell columns covered by the board.
func (v Viewport) Cols() int {
	return v.cols
}

// Rows returns the number of cell rows covered by the board.
func (v Viewport) Rows() int {
	return v.rows
}

func (v Viewport) project(x, y float64) mgl64.Vec3 {
	return v.toCells.Mul3x1(mgl64.Vec3{x, y, 1})
}

// Point returns the cell containing the logical point (x, y).
func (v Viewport) Point(x, y float64) (int, int) {
	p := v.project(x, y)
	return int(math.Floor(p.X() + snap)), int(math.Floor(p.Y() + snap))
}

// Rect returns the cells covered by a logical box. Any box with a positive
// size covers at least one cell so small sprites never vanish.
func (v Viewport) Rect(x, y, w, h float64) Rect {
	tl := v.project(x, y)
	br := v.project(x+w, y+h)

	x0 := int(math.Floor(tl.X() + snap))
	y0 := int(math.Floor(tl.Y() + snap))
	x1 := int(math.Ceil(br.X() - snap))
	y1 := int(math.Ceil(br.Y() - snap))

	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}
