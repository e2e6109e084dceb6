package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/going-mental/internal/core"
)

// movementKeys maps each direction to its physical keys.
var movementKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
}

const advanceKey = ebiten.KeySpace

// keyState abstracts the keyboard so frames can be built without a window.
type keyState struct {
	pressed     func(ebiten.Key) bool // Key is down
	justPressed func(ebiten.Key) bool // Key went down this tick
	released    bool                  // Some key went up this tick
	closing     bool                  // The window close button was used
}

// liveKeys reads Ebiten's keyboard state for the current tick.
func liveKeys() keyState {
	return keyState{
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		released:    len(inpututil.AppendJustReleasedKeys(nil)) > 0,
		closing:     ebiten.IsWindowBeingClosed(),
	}
}

// buildFrame converts a keyboard state to an input frame.
func buildFrame(ks keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range movementKeys {
		for _, k := range keys {
			if ks.pressed(k) {
				frame.Hold(action)
			}
			if ks.justPressed(k) {
				frame.Press(action)
			}
		}
	}
	if ks.pressed(advanceKey) {
		frame.Hold(core.ActionAdvance)
	}
	if ks.justPressed(advanceKey) {
		frame.Press(core.ActionAdvance)
	}
	if ks.released {
		frame.Release()
	}
	if ks.closing {
		frame.Press(core.ActionQuit)
	}
	return frame
}
