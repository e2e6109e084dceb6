package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/going-mental/internal/core"
)

// cellStyle identifies a distinct lipgloss style of one cell.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

// style returns the cached lipgloss style for s.
func (c *Canvas) style(s cellStyle) lipgloss.Style {
	if st, ok := c.styles[s]; ok {
		return st
	}
	st := c.renderer.NewStyle().
		Foreground(lipgloss.Color(s.fg.Hex())).
		Background(lipgloss.Color(s.bg.Hex())).
		Bold(s.bold)
	c.styles[s] = st
	return st
}

// cellAt returns the rune and style of cell (x, y).
func (c *Canvas) cellAt(x, y int) (rune, cellStyle) {
	top := c.pixels[(2*y)*c.cols+x]
	bottom := c.pixels[(2*y+1)*c.cols+x]
	if t := c.text[y*c.cols+x]; t.set {
		return t.r, cellStyle{fg: t.color, bg: top, bold: t.bold}
	}
	return halfBlock, cellStyle{fg: top, bg: bottom}
}

// Render converts the canvas to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (c *Canvas) Render() string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.cols*c.rows*8 + c.rows)

	for y := range c.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.cols {
			_, start := c.cellAt(x, y)

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < c.cols {
				r, st := c.cellAt(x, y)
				if st != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			sb.WriteString(c.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
