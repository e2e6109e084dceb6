// Package actor implements the player-controlled animated sprite.
package actor

import (
	"image"

	"github.com/vovakirdan/going-mental/internal/config"
	"github.com/vovakirdan/going-mental/internal/core"
	"github.com/vovakirdan/going-mental/internal/sprite"
)

// wrapEpsilon absorbs float drift when the cursor sums fractional steps.
const wrapEpsilon = 1e-9

// Actor is the player: a rectangle that walks, faces and animates.
type Actor struct {
	rect        core.Rect
	facingRight bool
	cursor      float64 // Animation cursor in [0, frames.Len())
	frameIndex  int     // Frame selected by the last Update
	frames      *sprite.FrameSet
	speed       int
	step        float64
	screenW     int
	screenH     int
}

// New creates the actor centered on a screenW x screenH display.
func New(cfg config.ActorConfig, screenW, screenH int) *Actor {
	return NewWithFrames(cfg, sprite.NewStickFigure(cfg.Frames, cfg.Width, cfg.Height), screenW, screenH)
}

// NewWithFrames creates the actor with a custom frame set.
func NewWithFrames(cfg config.ActorConfig, frames *sprite.FrameSet, screenW, screenH int) *Actor {
	a := &Actor{
		rect:        core.NewRect(0, 0, cfg.Width, cfg.Height),
		facingRight: true,
		frames:      frames,
		speed:       cfg.Speed,
		step:        cfg.AnimationStep,
		screenW:     screenW,
		screenH:     screenH,
	}
	a.Recenter()
	return a
}

// Update applies one tick of held movement keys.
// Diagonal input is additive, so diagonals are faster than straight lines.
func (a *Actor) Update(in core.InputFrame) {
	dx, dy := a.delta(in)

	// Left is applied before right, so holding both ends facing right.
	if in.IsHeld(core.ActionLeft) {
		a.facingRight = false
	}
	if in.IsHeld(core.ActionRight) {
		a.facingRight = true
	}

	a.rect = a.rect.Translate(dx, dy)

	if in.Moving() {
		a.cursor += a.step
		if a.cursor+wrapEpsilon >= float64(a.frames.Len()) {
			a.cursor = 0
		}
		a.frameIndex = int(a.cursor)
	} else {
		a.frameIndex = 0
	}

	a.clamp()
}

// PushBack undoes the last move along every held direction.
// It is the soft collision response: sliding along an edge still works when
// one axis is held, and several held keys can leave partial overlap.
func (a *Actor) PushBack(in core.InputFrame) {
	dx, dy := a.delta(in)
	a.rect = a.rect.Translate(-dx, -dy)
	a.clamp()
}

// Recenter places the actor in the middle of the display.
func (a *Actor) Recenter() {
	a.rect = a.rect.CenteredAt(a.screenW/2, a.screenH/2)
}

// Bounds returns the collision rectangle.
func (a *Actor) Bounds() core.Rect {
	return a.rect
}

// Draw blits the current frame at the actor's position.
func (a *Actor) Draw(dst core.Surface) {
	dst.DrawImage(a.Image(), a.rect.X, a.rect.Y)
}

// Image returns the frame selected by the last Update, mirrored when facing left.
func (a *Actor) Image() image.Image {
	return a.frames.Frame(a.frameIndex, a.facingRight)
}

// Cursor returns the fractional animation cursor.
func (a *Actor) Cursor() float64 {
	return a.cursor
}

// FrameIndex returns the index of the displayed frame.
func (a *Actor) FrameIndex() int {
	return a.frameIndex
}

// FrameCount returns the length of the walking cycle.
func (a *Actor) FrameCount() int {
	return a.frames.Len()
}

// FacingRight reports the facing direction.
func (a *Actor) FacingRight() bool {
	return a.facingRight
}

// Speed returns the movement per held key per tick.
func (a *Actor) Speed() int {
	return a.speed
}

// SetPosition moves the top-left corner, clamped to the display.
func (a *Actor) SetPosition(x, y int) {
	a.rect.X, a.rect.Y = x, y
	a.clamp()
}

func (a *Actor) delta(in core.InputFrame) (dx, dy int) {
	if in.IsHeld(core.ActionLeft) {
		dx -= a.speed
	}
	if in.IsHeld(core.ActionRight) {
		dx += a.speed
	}
	if in.IsHeld(core.ActionUp) {
		dy -= a.speed
	}
	if in.IsHeld(core.ActionDown) {
		dy += a.speed
	}
	return dx, dy
}

func (a *Actor) clamp() {
	a.rect = a.rect.ClampInside(a.screenW, a.screenH)
}
