package core

// Action represents a semantic game action, abstracted from physical keys.
// Frontends map their keys to actions; the game only sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionAdvance        // Space - complete the mission and move on
	ActionQuit           // Window close, Q, Ctrl+C
)

// MovementActions lists the four directional actions.
var MovementActions = [...]Action{ActionLeft, ActionRight, ActionUp, ActionDown}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAdvance:
		return "Advance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation tick.
type InputFrame struct {
	// Held contains actions whose key is down during this tick.
	Held map[Action]bool
	// Pressed contains actions whose key went down since the previous tick.
	Pressed map[Action]bool
	// Released is set when any key went up since the previous tick.
	Released bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press records a down transition of an action for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Release records that some key went up during this frame.
func (f *InputFrame) Release() {
	f.Released = true
}

// IsHeld returns true if the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// JustPressed returns true if the action went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed[a]
}

// Moving returns true if any movement action is held.
func (f InputFrame) Moving() bool {
	for _, a := range MovementActions {
		if f.Held[a] {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
	f.Released = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	clone.Released = f.Released
	return clone
}
