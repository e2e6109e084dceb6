package game

// Phase is the top-level state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEndScreen
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseEndScreen:
		return "end_screen"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ExitReason records how a session reached PhaseTerminated.
type ExitReason int

const (
	ExitNone      ExitReason = iota
	ExitQuit                 // Quit while playing a level
	ExitQuitAtEnd            // Quit while the end screen was shown
	ExitDismissed            // Key released on the end screen
)

func (r ExitReason) String() string {
	switch r {
	case ExitNone:
		return "none"
	case ExitQuit:
		return "quit"
	case ExitQuitAtEnd:
		return "quit_at_end"
	case ExitDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of a session.
type State struct {
	Phase      Phase
	LevelIndex int
	LevelName  string
	LevelCount int
	Completed  int
	Exit       ExitReason
	Ticks      int
}

// StepResult is returned after each tick.
type StepResult struct {
	State    State
	Advanced bool // The current level was completed this tick
}

// RunSummary describes a finished (or abandoned) run.
type RunSummary struct {
	LevelsDone int
	LevelCount int
	LastLevel  string
	Ticks      int
	Finished   bool // The end screen was reached
	Exit       ExitReason
}
