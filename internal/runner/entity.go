// Package runner implements the endless-runner core: the player, the scrolling
// entities, spawn selection, collision rules and the fixed-tick game loop.
// It knows nothing about terminals or windows; presentation layers drive it
// through Game and receive frames through a Surface.
package runner

import "fmt"

// Kind tags an entity and selects its collision reaction.
type Kind uint8

const (
	KindBush   Kind = iota // low hazard
	KindTeacup             // pickup, grants the enhanced jump
	KindGuard              // tall hazard
	KindDragon             // flying hazard, never selected by the spawner
)

func (k Kind) String() string {
	switch k {
	case KindBush:
		return "bush"
	case KindTeacup:
		return "teacup"
	case KindGuard:
		return "guard"
	case KindDragon:
		return "dragon"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Sprite returns the drawable handle used for entities of this kind.
func (k Kind) Sprite() Sprite {
	switch k {
	case KindBush:
		return SpriteBush
	case KindTeacup:
		return SpriteTeacup
	case KindGuard:
		return SpriteGuard
	case KindDragon:
		return SpriteDragon
	default:
		return Sprite(k.String())
	}
}

// Rect is an axis-aligned rectangle in board units.
// Width and Height stay fixed after construction.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Entity is a scrolling obstacle or pickup.
type Entity struct {
	Rect
	Kind   Kind
	Sprite Sprite
}

// Update shifts the entity horizontally by the scroll velocity.
func (e *Entity) Update(scroll float64) {
	e.X += scroll
}

// IsOffScreen reports whether the right edge has passed the left boundary.
// An entity whose right edge sits exactly on zero is still on screen.
func (e *Entity) IsOffScreen() bool {
	return e.X+e.Width < 0
}

// Draw issues the entity at its current position.
func (e *Entity) Draw(s Surface) {
	s.DrawSprite(e.Sprite, e.X, e.Y, e.Width, e.Height)
}
