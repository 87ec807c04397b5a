package runner

// Sprite is an opaque drawable handle. Presentation layers map it to
// glyphs, colours or images.
type Sprite string

// Sprite handles issued by the game.
const (
	SpritePlayer         Sprite = "dino"
	SpritePlayerDefeated Sprite = "dino-dead"
	SpriteBush           Sprite = "bush"
	SpriteTeacup         Sprite = "teacup"
	SpriteGuard          Sprite = "guard"
	SpriteDragon         Sprite = "dragon"
)

// Sprites lists every handle the game can draw.
func Sprites() []Sprite {
	return []Sprite{SpritePlayer, SpritePlayerDefeated, SpriteBush, SpriteTeacup, SpriteGuard, SpriteDragon}
}

// Surface is the render target of a game. Coordinates are logical board
// units with the origin at the top-left corner.
type Surface interface {
	Clear()
	DrawSprite(sprite Sprite, x, y, w, h float64)
	DrawText(x, y float64, text string)
}

type discardSurface struct{}

func (discardSurface) Clear() {}

func (discardSurface) DrawSprite(Sprite, float64, float64, float64, float64) {}

func (discardSurface) DrawText(float64, float64, string) {}

// OpKind distinguishes recorded draw calls.
type OpKind uint8

const (
	OpSprite OpKind = iota
	OpText
)

// DrawOp is one recorded draw call.
type DrawOp struct {
	Kind   OpKind
	Sprite Sprite
	X, Y   float64
	W, H   float64
	Text   string
}

// Recorder is a Surface that keeps the draw calls of the current frame.
// Clear starts a new frame.
type Recorder struct {
	ops    []DrawOp
	frames int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{ops: make([]DrawOp, 0, 16)}
}

func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.frames++
}

func (r *Recorder) DrawSprite(sprite Sprite, x, y, w, h float64) {
	r.ops = append(r.ops, DrawOp{Kind: OpSprite, Sprite: sprite, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawText(x, y float64, text string) {
	r.ops = append(r.ops, DrawOp{Kind: OpText, X: x, Y: y, Text: text})
}

// Ops returns the draw calls of the current frame in issue order.
// The slice is reused by the next frame.
func (r *Recorder) Ops() []DrawOp {
	return r.ops
}

// Frames returns how many times Clear has been called.
func (r *Recorder) Frames() int {
	return r.frames
}

// Replay issues the current frame onto another surface.
func (r *Recorder) Replay(dst Surface) {
	dst.Clear()
	for _, op := range r.ops {
		switch op.Kind {
		case OpSprite:
			dst.DrawSprite(op.Sprite, op.X, op.Y, op.W, op.H)
		case OpText:
			dst.DrawText(op.X, op.Y, op.Text)
		}
	}
}
