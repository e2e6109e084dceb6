package level

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/going-mental/internal/config"
)

// ErrEmptyCatalog is returned when a catalog would have no levels.
var ErrEmptyCatalog = errors.New("level: catalog needs at least one level")

// Catalog is the fixed, ordered list of levels of a run.
type Catalog struct {
	levels []*Level
}

// NewCatalog builds every level once, in order.
func NewCatalog(defs []config.LevelDef, gen *Generator) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{levels: make([]*Level, len(defs))}
	for i, def := range defs {
		c.levels[i] = New(def, gen)
	}
	return c, nil
}

// NewCatalogOf wraps already built levels.
func NewCatalogOf(levels ...*Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{levels: levels}, nil
}

// FromConfig builds the catalog described by cfg using a generator seeded with seed.
func FromConfig(cfg config.Config, seed int64) (*Catalog, error) {
	rng := rand.New(rand.NewSource(seed))
	gen := NewGenerator(rng, cfg.Obstacles, cfg.Display.Width, cfg.Display.Height)
	return NewCatalog(cfg.Levels, gen)
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// At returns the level at index i (0-based).
// Returns nil if index is out of range.
func (c *Catalog) At(i int) *Level {
	if i < 0 || i >= len(c.levels) {
		return nil
	}
	return c.levels[i]
}

// LastIndex returns the index of the final level.
func (c *Catalog) LastIndex() int {
	return len(c.levels) - 1
}

// CompletedCount returns how many levels are marked complete.
func (c *Catalog) CompletedCount() int {
	n := 0
	for _, l := range c.levels {
		if l.Completed() {
			n++
		}
	}
	return n
}

// Names returns the names of all levels.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.levels))
	for i, l := range c.levels {
		names[i] = l.Name
	}
	return names
}
