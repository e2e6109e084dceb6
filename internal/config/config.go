// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/going-mental/internal/core"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all tunables of the game.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	TickRate  int             `yaml:"tick_rate"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Audio     AudioConfig     `yaml:"audio"`
	Input     InputConfig     `yaml:"input"`
	EndScreen EndScreenConfig `yaml:"end_screen"`
	Levels    []LevelDef      `yaml:"levels"`
}

// DisplayConfig defines the logical output surface.
type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ActorConfig defines the player sprite.
type ActorConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Speed         int     `yaml:"speed"`          // Pixels per tick per held key
	AnimationStep float64 `yaml:"animation_step"` // Cursor advance per moving tick
	Frames        int     `yaml:"frames"`
}

// ObstacleConfig defines the random obstacle generator.
type ObstacleConfig struct {
	MinCount   int `yaml:"min_count"`
	MaxCount   int `yaml:"max_count"`
	MinSize    int `yaml:"min_size"`
	MaxSize    int `yaml:"max_size"`
	MinChannel int `yaml:"min_channel"`
	MaxChannel int `yaml:"max_channel"`
	EdgeMargin int `yaml:"edge_margin"` // Top-left stays within [0, display-margin]
}

// AudioConfig locates the two sound cues.
type AudioConfig struct {
	MissionComplete string  `yaml:"mission_complete"`
	LevelChange     string  `yaml:"level_change"`
	Volume          float64 `yaml:"volume"`
	SampleRate      int     `yaml:"sample_rate"`
}

// InputConfig tunes key handling for frontends without key-up events.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key counts as held after its last event
}

// EndScreenConfig tunes the summary screen.
// GraceTicks 0 lets the first key release after the last level dismiss it.
type EndScreenConfig struct {
	GraceTicks int `yaml:"grace_ticks"` // Key releases are ignored for this many ticks
}

// LevelDef is the static data of one level.
type LevelDef struct {
	Name       string `yaml:"name"`
	Mission    string `yaml:"mission"`
	Background []int  `yaml:"background"` // [r, g, b]
}

// Color returns the background as a core.Color.
// Call Validate first; malformed values yield black.
func (d LevelDef) Color() core.Color {
	if len(d.Background) != 3 {
		return core.ColorBlack
	}
	return core.RGB(uint8(d.Background[0]), uint8(d.Background[1]), uint8(d.Background[2]))
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Display.Width > 0 && c.Display.Height > 0,
		"display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	check(c.TickRate > 0, "tick_rate %d must be positive", c.TickRate)

	a := c.Actor
	check(a.Width > 0 && a.Height > 0, "actor size %dx%d must be positive", a.Width, a.Height)
	check(a.Width <= c.Display.Width && a.Height <= c.Display.Height,
		"actor %dx%d does not fit the display", a.Width, a.Height)
	check(a.Speed > 0, "actor speed %d must be positive", a.Speed)
	check(a.AnimationStep > 0, "actor animation_step %v must be positive", a.AnimationStep)
	check(a.Frames > 0, "actor frames %d must be positive", a.Frames)

	o := c.Obstacles
	check(o.MinCount >= 0 && o.MinCount <= o.MaxCount,
		"obstacle count range [%d, %d] is invalid", o.MinCount, o.MaxCount)
	check(o.MinSize > 0 && o.MinSize <= o.MaxSize,
		"obstacle size range [%d, %d] is invalid", o.MinSize, o.MaxSize)
	check(o.MinChannel >= 0 && o.MinChannel <= o.MaxChannel && o.MaxChannel <= 255,
		"obstacle channel range [%d, %d] is invalid", o.MinChannel, o.MaxChannel)
	check(o.EdgeMargin >= 0 && o.EdgeMargin <= c.Display.Width && o.EdgeMargin <= c.Display.Height,
		"obstacle edge_margin %d is invalid", o.EdgeMargin)

	check(c.Input.HoldTicks >= 0, "input hold_ticks %d must not be negative", c.Input.HoldTicks)
	check(c.EndScreen.GraceTicks >= 0, "end_screen grace_ticks %d must not be negative", c.EndScreen.GraceTicks)

	check(len(c.Levels) > 0, "at least one level is required")
	for i, l := range c.Levels {
		check(l.Name != "", "level %d has no name", i)
		check(len(l.Background) == 3, "level %q background needs 3 channels, got %d", l.Name, len(l.Background))
		for _, ch := range l.Background {
			check(ch >= 0 && ch <= 255, "level %q background channel %d out of range", l.Name, ch)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
