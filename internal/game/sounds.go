package game

// Cue names a sound the game asks for.
type Cue int

const (
	CueMissionComplete Cue = iota
	CueLevelChange
)

func (c Cue) String() string {
	switch c {
	case CueMissionComplete:
		return "mission_complete"
	case CueLevelChange:
		return "level_change"
	default:
		return "unknown"
	}
}

// Sounds plays cues. Playback is best effort and must not block.
type Sounds interface {
	Play(c Cue)
}

// NopSounds discards every cue.
type NopSounds struct{}

func (NopSounds) Play(Cue) {}
