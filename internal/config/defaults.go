package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:  800,
			Height: 600,
			Title:  "I'm Going Mental!",
		},
		TickRate: 60,
		Actor: ActorConfig{
			Width:         40,
			Height:        70,
			Speed:         5,
			AnimationStep: 0.2,
			Frames:        4,
		},
		Obstacles: ObstacleConfig{
			MinCount:   3,
			MaxCount:   7,
			MinSize:    30,
			MaxSize:    80,
			MinChannel: 50,
			MaxChannel: 200,
			EdgeMargin: 100,
		},
		Audio: AudioConfig{
			MissionComplete: "mission_complete.wav",
			LevelChange:     "level_change.wav",
			Volume:          1.0,
			SampleRate:      44100,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		EndScreen: EndScreenConfig{
			GraceTicks: 30,
		},
		Levels: DefaultLevels(),
	}
}

// DefaultLevels returns the eight levels of a standard run, in order.
func DefaultLevels() []LevelDef {
	return []LevelDef{
		{Name: "Theater", Mission: "Run around the stage doing crazy poses!", Background: []int{200, 200, 255}},
		{Name: "Museum", Mission: "Steal a dinosaur bone!", Background: []int{255, 200, 200}},
		{Name: "Political Event", Mission: "Give the politician a wedgie!", Background: []int{200, 255, 200}},
		{Name: "Dance Hall", Mission: "Breakdance on the chandelier!", Background: []int{255, 255, 100}},
		{Name: "Library", Mission: "Build a book fort!", Background: []int{200, 150, 100}},
		{Name: "Japanese Tea Garden", Mission: "Flip all the tea cups!", Background: []int{100, 200, 150}},
		{Name: "College Campus", Mission: "Set off the fire alarm in class!", Background: []int{150, 100, 200}},
		{Name: "Airport", Mission: "Steal a plane and do wheelies!", Background: []int{100, 100, 255}},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
