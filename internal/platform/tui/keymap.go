package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/going-mental/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionAdvance, false
	}

	return core.ActionNone, false
}

// opposite returns the direction that cancels a, or ActionNone.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// Input collects key events between ticks.
// Terminals report no key-up events, so a movement or advance key counts as
// held for holdTicks ticks after its last event; auto-repeat keeps it alive.
// Advance is pressed only when no advance hold is active. Every key event is
// a release edge.
type Input struct {
	keys      *KeyMapper
	holdTicks int
	remaining map[core.Action]int
	pending   core.InputFrame
}

// NewInput creates an input collector.
func NewInput(holdTicks int) *Input {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Input{
		keys:      NewKeyMapper(),
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// Key records a key event. Returns true if it was a quit request.
func (in *Input) Key(msg tea.KeyMsg) bool {
	action, isQuit := in.keys.MapKey(msg)
	in.pending.Release()
	if action == core.ActionNone {
		return false
	}

	if action == core.ActionAdvance {
		// Auto-repeat of a held Space only extends the hold.
		if in.remaining[action] == 0 {
			in.pending.Press(action)
		}
		in.remaining[action] = in.holdTicks
		return isQuit
	}

	in.pending.Press(action)
	if opp := opposite(action); opp != core.ActionNone {
		in.remaining[action] = in.holdTicks
		delete(in.remaining, opp)
	}
	return isQuit
}

// Frame returns the input for the next tick and ages held keys.
func (in *Input) Frame() core.InputFrame {
	frame := in.pending.Clone()
	for a, n := range in.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(in.remaining, a)
		} else {
			in.remaining[a] = n - 1
		}
	}
	in.pending.Clear()
	return frame
}
