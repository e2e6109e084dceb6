package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/going-mental/internal/core"
)

// halfBlock paints the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = '▀'

// textCell is one character of the text overlay.
type textCell struct {
	r     rune
	color core.Color
	bold  bool
	set   bool
}

// Canvas is a core.Surface that maps a logical display onto a terminal grid.
// Each cell holds two vertical pixels; text is placed on whole cells on top.
type Canvas struct {
	logicalW, logicalH int
	cols, rows         int
	pixels             []core.Color // cols * rows*2
	text               []textCell   // cols * rows
	renderer           *lipgloss.Renderer
	styles             map[cellStyle]lipgloss.Style
}

// NewCanvas creates a canvas for a logical display of w×h pixels shown on
// cols×rows terminal cells.
func NewCanvas(w, h, cols, rows int) *Canvas {
	c := &Canvas{
		logicalW: w,
		logicalH: h,
		renderer: lipgloss.DefaultRenderer(),
		styles:   make(map[cellStyle]lipgloss.Style),
	}
	c.Resize(cols, rows)
	return c
}

// SetRenderer switches the lipgloss renderer, e.g. to one bound to an SSH session.
func (c *Canvas) SetRenderer(r *lipgloss.Renderer) {
	c.renderer = r
	clear(c.styles)
}

// Resize changes the terminal grid. Content is discarded.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = core.Max(cols, 1)
	c.rows = core.Max(rows, 1)
	c.pixels = make([]core.Color, c.cols*c.rows*2)
	c.text = make([]textCell, c.cols*c.rows)
}

// Cols returns the grid width in cells.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the grid height in cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Size returns the logical display size.
func (c *Canvas) Size() (int, int) {
	return c.logicalW, c.logicalH
}

// Fill paints every pixel and wipes the text overlay.
func (c *Canvas) Fill(col core.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
	clear(c.text)
}

// FillRect paints the pixels covered by r and wipes text under it.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	x0, y0, x1, y1 := c.pixelSpan(r)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.pixels[py*c.cols+px] = col
		}
	}
	for row := y0 / 2; row < (y1+1)/2; row++ {
		for col := x0; col < x1; col++ {
			c.text[row*c.cols+col] = textCell{}
		}
	}
}

// DrawImage samples img at the center of every covered pixel.
// Pixels with less than half coverage are skipped.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	x0, y0, x1, y1 := c.pixelSpan(core.NewRect(x, y, b.Dx(), b.Dy()))
	ph := c.rows * 2

	for py := y0; py < y1; py++ {
		ly := (py*c.logicalH+c.logicalH/2)/ph - y + b.Min.Y
		for px := x0; px < x1; px++ {
			lx := (px*c.logicalW+c.logicalW/2)/c.cols - x + b.Min.X
			if !(image.Point{X: lx, Y: ly}).In(b) {
				continue
			}
			r, g, bl, a := img.At(lx, ly).RGBA()
			if a < 0x8000 {
				continue
			}
			// Undo premultiplication.
			c.pixels[py*c.cols+px] = core.RGB(
				uint8(r*0xffff/a>>8),
				uint8(g*0xffff/a>>8),
				uint8(bl*0xffff/a>>8),
			)
		}
	}
}

// DrawText writes text on the cell containing (x, y). Title text is bold.
func (c *Canvas) DrawText(text string, x, y int, col core.Color, size core.TextSize) {
	cx := x * c.cols / c.logicalW
	cy := y * c.rows / c.logicalH
	if cy < 0 || cy >= c.rows {
		return
	}
	i := 0
	for _, r := range text {
		if px := cx + i; px >= 0 && px < c.cols {
			c.text[cy*c.cols+px] = textCell{r: r, color: col, bold: size == core.TextTitle, set: true}
		}
		i++
	}
}

// TextWidth returns the logical width of text, one cell per rune.
func (c *Canvas) TextWidth(text string, _ core.TextSize) int {
	return len([]rune(text)) * c.logicalW / c.cols
}

// pixelSpan converts a logical rectangle to a clipped pixel range.
func (c *Canvas) pixelSpan(r core.Rect) (x0, y0, x1, y1 int) {
	ph := c.rows * 2
	x0 = core.Clamp(floorDiv(r.X*c.cols, c.logicalW), 0, c.cols)
	x1 = core.Clamp(ceilDiv(r.Right()*c.cols, c.logicalW), 0, c.cols)
	y0 = core.Clamp(floorDiv(r.Y*ph, c.logicalH), 0, ph)
	y1 = core.Clamp(ceilDiv(r.Bottom()*ph, c.logicalH), 0, ph)
	return x0, y0, x1, y1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Pixel returns the color of pixel (px, py) of the grid.
func (c *Canvas) Pixel(px, py int) core.Color {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return core.Color{}
	}
	return c.pixels[py*c.cols+px]
}

// Row returns the text overlay of a row, spaces where no text was drawn.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.rows {
		return strings.Repeat(" ", c.cols)
	}
	var sb strings.Builder
	for x := range c.cols {
		if t := c.text[y*c.cols+x]; t.set {
			sb.WriteRune(t.r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// String returns the text overlay, one line per row.
func (c *Canvas) String() string {
	rows := make([]string, c.rows)
	for y := range c.rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}
