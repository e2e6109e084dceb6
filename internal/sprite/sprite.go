// Package sprite pre-renders the player's animation frames.
// Frames are plain *image.RGBA values so every frontend can upload them in
// its own way; shapes are rasterized with golang.org/x/image/vector.
package sprite

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/going-mental/internal/core"
)

// Reference size the figure is designed at; other sizes are scaled from it.
const (
	baseW = 40
	baseH = 70
)

const (
	limbWidth     = 3
	circleSegs    = 32
	legSpread     = 2  // Pixels the feet move per frame
	armSwingDeg   = 15 // Degrees the arms rotate per frame
	armLength     = 15
	headRadius    = 10
	shoulderY     = 30
	hipY          = 50
	footY         = 65
	bodyTop       = 25
	bodyHalfWidth = 5
)

// FrameSet holds the walking cycle and its horizontally mirrored copy.
type FrameSet struct {
	frames   []*image.RGBA
	mirrored []*image.RGBA
}

// NewFrameSet wraps pre-rendered frames and builds the mirrored copies.
func NewFrameSet(frames []*image.RGBA) *FrameSet {
	fs := &FrameSet{
		frames:   frames,
		mirrored: make([]*image.RGBA, len(frames)),
	}
	for i, f := range frames {
		fs.mirrored[i] = Mirror(f)
	}
	return fs
}

// NewStickFigure renders n walking frames of the stick figure at w x h.
func NewStickFigure(n, w, h int) *FrameSet {
	frames := make([]*image.RGBA, n)
	for i := range frames {
		frames[i] = drawFigure(i, w, h)
	}
	return NewFrameSet(frames)
}

// Len returns the number of frames in the cycle.
func (fs *FrameSet) Len() int {
	return len(fs.frames)
}

// Frame returns frame i, mirrored when the figure faces left.
func (fs *FrameSet) Frame(i int, facingRight bool) *image.RGBA {
	if facingRight {
		return fs.frames[i]
	}
	return fs.mirrored[i]
}

// Mirror returns a horizontally flipped copy of img.
func Mirror(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetRGBA(b.Max.X-1-(x-b.Min.X), y, img.RGBAAt(x, y))
		}
	}
	return out
}

// pen draws scaled shapes onto one frame.
type pen struct {
	dst    *image.RGBA
	sx, sy float32
}

func drawFigure(i, w, h int) *image.RGBA {
	p := pen{
		dst: image.NewRGBA(image.Rect(0, 0, w, h)),
		sx:  float32(w) / baseW,
		sy:  float32(h) / baseH,
	}

	// Head and body
	p.circle(20, 15, headRadius, core.ColorSkin)
	p.rect(20-bodyHalfWidth, bodyTop, 2*bodyHalfWidth, hipY-bodyTop, core.ColorBlue)

	// Legs spread apart as the cycle advances
	offset := float32(i * legSpread)
	p.line(17, hipY, 10+offset, footY, limbWidth, core.ColorBlack)
	p.line(23, hipY, 30-offset, footY, limbWidth, core.ColorBlack)

	// Arms swing symmetrically around the horizontal
	angle := float64(i*armSwingDeg) * math.Pi / 180
	dx := float32(armLength * math.Cos(angle))
	dy := float32(armLength * math.Sin(angle))
	p.line(20, shoulderY, 20+dx, shoulderY+dy, limbWidth, core.ColorBlack)
	p.line(20, shoulderY, 20+dx, shoulderY-dy, limbWidth, core.ColorBlack)

	return p.dst
}

func (p pen) fill(c core.Color, path func(z *vector.Rasterizer)) {
	b := p.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	path(z)
	src := image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	z.Draw(p.dst, b, src, image.Point{})
}

func (p pen) rect(x, y, w, h float32, c core.Color) {
	draw.Draw(p.dst, image.Rect(
		int(x*p.sx), int(y*p.sy), int((x+w)*p.sx), int((y+h)*p.sy),
	), image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}), image.Point{}, draw.Over)
}

func (p pen) circle(cx, cy, r float32, c core.Color) {
	p.fill(c, func(z *vector.Rasterizer) {
		for k := 0; k <= circleSegs; k++ {
			a := 2 * math.Pi * float64(k) / circleSegs
			x := (cx + r*float32(math.Cos(a))) * p.sx
			y := (cy + r*float32(math.Sin(a))) * p.sy
			if k == 0 {
				z.MoveTo(x, y)
				continue
			}
			z.LineTo(x, y)
		}
		z.ClosePath()
	})
}

// line draws a segment of the given width as a filled quad.
func (p pen) line(x1, y1, x2, y2, width float32, c core.Color) {
	x1, y1, x2, y2 = x1*p.sx, y1*p.sy, x2*p.sx, y2*p.sy
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Perpendicular half-width offset
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	p.fill(c, func(z *vector.Rasterizer) {
		z.MoveTo(x1+nx, y1+ny)
		z.LineTo(x2+nx, y2+ny)
		z.LineTo(x2-nx, y2-ny)
		z.LineTo(x1-nx, y1-ny)
		z.ClosePath()
	})
}
