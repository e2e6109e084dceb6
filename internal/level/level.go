// Package level implements the themed stages and the ordered catalog of a run.
package level

import (
	"math/rand"

	"github.com/vovakirdan/going-mental/internal/config"
	"github.com/vovakirdan/going-mental/internal/core"
)

// Label positions of the level HUD.
const (
	labelX        = 20
	nameLabelY    = 20
	missionLabelY = 60
)

// Obstacle is a static filled rectangle the actor cannot walk through.
type Obstacle struct {
	Rect  core.Rect
	Color core.Color
}

// Bounds returns the collision rectangle.
func (o Obstacle) Bounds() core.Rect {
	return o.Rect
}

// Draw paints the obstacle.
func (o Obstacle) Draw(dst core.Surface) {
	dst.FillRect(o.Rect, o.Color)
}

// Level is one themed stage: static text, a background and its obstacles.
type Level struct {
	Name       string
	Mission    string
	Background core.Color
	obstacles  []Obstacle
	completed  bool
}

// New creates a level and places its obstacles.
func New(def config.LevelDef, gen *Generator) *Level {
	l := &Level{
		Name:       def.Name,
		Mission:    def.Mission,
		Background: def.Color(),
	}
	l.obstacles = gen.Obstacles()
	return l
}

// NewWithObstacles creates a level with a fixed obstacle set.
func NewWithObstacles(def config.LevelDef, obstacles []Obstacle) *Level {
	return &Level{
		Name:       def.Name,
		Mission:    def.Mission,
		Background: def.Color(),
		obstacles:  obstacles,
	}
}

// Obstacles returns the level's obstacles. The slice must not be modified.
func (l *Level) Obstacles() []Obstacle {
	return l.obstacles
}

// Collides reports whether r overlaps any obstacle.
func (l *Level) Collides(r core.Rect) bool {
	for _, o := range l.obstacles {
		if r.Intersects(o.Rect) {
			return true
		}
	}
	return false
}

// Completed reports whether the mission was marked done.
func (l *Level) Completed() bool {
	return l.completed
}

// Complete marks the mission as done.
// Returns false if the level was already complete.
func (l *Level) Complete() bool {
	if l.completed {
		return false
	}
	l.completed = true
	return true
}

// Draw fills the background, draws obstacles and overlays the name and mission.
func (l *Level) Draw(dst core.Surface) {
	dst.Fill(l.Background)
	for _, o := range l.obstacles {
		o.Draw(dst)
	}
	dst.DrawText(NameLabel(l.Name), labelX, nameLabelY, core.ColorBlack, core.TextBody)
	dst.DrawText(MissionLabel(l.Mission), labelX, missionLabelY, core.ColorBlack, core.TextBody)
}

// NameLabel formats the level name HUD line.
func NameLabel(name string) string {
	return "Level: " + name
}

// MissionLabel formats the mission HUD line.
func MissionLabel(mission string) string {
	return "Mission: " + mission
}

// Generator places random obstacles on a display.
type Generator struct {
	rng     *rand.Rand
	cfg     config.ObstacleConfig
	screenW int
	screenH int
}

// NewGenerator creates an obstacle generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg config.ObstacleConfig, screenW, screenH int) *Generator {
	return &Generator{
		rng:     rng,
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
	}
}

// Obstacles draws a fresh obstacle set.
// The top-left corner stays within [0, display-EdgeMargin] on both axes.
func (g *Generator) Obstacles() []Obstacle {
	count := g.between(g.cfg.MinCount, g.cfg.MaxCount)
	obstacles := make([]Obstacle, 0, count)
	for range count {
		w := g.between(g.cfg.MinSize, g.cfg.MaxSize)
		h := g.between(g.cfg.MinSize, g.cfg.MaxSize)
		c := core.RGB(g.channel(), g.channel(), g.channel())
		x := g.between(0, g.screenW-g.cfg.EdgeMargin)
		y := g.between(0, g.screenH-g.cfg.EdgeMargin)
		obstacles = append(obstacles, Obstacle{Rect: core.NewRect(x, y, w, h), Color: c})
	}
	return obstacles
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) channel() uint8 {
	return uint8(g.between(g.cfg.MinChannel, g.cfg.MaxChannel))
}
