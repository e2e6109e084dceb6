package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/going-mental/internal/core"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestBuildFrame(t *testing.T) {
	tests := []struct {
		name        string
		ks          keyState
		wantHeld    []core.Action
		wantPressed []core.Action
		wantRelease bool
	}{
		{
			name:     "wasd",
			ks:       keyState{pressed: keySet(ebiten.KeyA, ebiten.KeyW), justPressed: keySet()},
			wantHeld: []core.Action{core.ActionLeft, core.ActionUp},
		},
		{
			name:     "arrows",
			ks:       keyState{pressed: keySet(ebiten.KeyArrowRight, ebiten.KeyArrowDown), justPressed: keySet()},
			wantHeld: []core.Action{core.ActionRight, core.ActionDown},
		},
		{
			name:        "space edge",
			ks:          keyState{pressed: keySet(ebiten.KeySpace), justPressed: keySet(ebiten.KeySpace)},
			wantHeld:    []core.Action{core.ActionAdvance},
			wantPressed: []core.Action{core.ActionAdvance},
		},
		{
			name:     "space held",
			ks:       keyState{pressed: keySet(ebiten.KeySpace), justPressed: keySet()},
			wantHeld: []core.Action{core.ActionAdvance},
		},
		{
			name:        "release",
			ks:          keyState{pressed: keySet(), justPressed: keySet(), released: true},
			wantRelease: true,
		},
		{
			name:        "window close",
			ks:          keyState{pressed: keySet(), justPressed: keySet(), closing: true},
			wantPressed: []core.Action{core.ActionQuit},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := buildFrame(tc.ks)

			for _, a := range tc.wantHeld {
				if !f.IsHeld(a) {
					t.Errorf("%v should be held", a)
				}
			}
			if len(f.Held) != len(tc.wantHeld) {
				t.Errorf("held = %v, expected %v", f.Held, tc.wantHeld)
			}
			for _, a := range tc.wantPressed {
				if !f.JustPressed(a) {
					t.Errorf("%v should be pressed", a)
				}
			}
			if len(f.Pressed) != len(tc.wantPressed) {
				t.Errorf("pressed = %v, expected %v", f.Pressed, tc.wantPressed)
			}
			if f.Released != tc.wantRelease {
				t.Errorf("released = %v, expected %v", f.Released, tc.wantRelease)
			}
		})
	}
}
