// Package coretest provides test doubles for the core drawing contract.
package coretest

import (
	"image"

	"github.com/vovakirdan/going-mental/internal/core"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFill OpKind = iota
	OpFillRect
	OpImage
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	Rect  core.Rect
	Color core.Color
	Image image.Image
	Text  string
	Size  core.TextSize
}

// Surface records every drawing call instead of rendering it.
// Text is assumed to be a fixed 10 pixels per rune wide.
type Surface struct {
	W, H int
	Ops  []Op
}

// NewSurface creates a recording surface of the given logical size.
func NewSurface(w, h int) *Surface {
	return &Surface{W: w, H: h}
}

func (s *Surface) Size() (int, int) { return s.W, s.H }

func (s *Surface) Fill(c core.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpFill, Rect: core.NewRect(0, 0, s.W, s.H), Color: c})
}

func (s *Surface) FillRect(r core.Rect, c core.Color) {
	s.Ops = append(s.Ops, Op{Kind: OpFillRect, Rect: r, Color: c})
}

func (s *Surface) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	s.Ops = append(s.Ops, Op{Kind: OpImage, Rect: core.NewRect(x, y, b.Dx(), b.Dy()), Image: img})
}

func (s *Surface) DrawText(text string, x, y int, c core.Color, size core.TextSize) {
	s.Ops = append(s.Ops, Op{
		Kind:  OpText,
		Rect:  core.NewRect(x, y, s.TextWidth(text, size), 0),
		Color: c,
		Text:  text,
		Size:  size,
	})
}

func (s *Surface) TextWidth(text string, _ core.TextSize) int {
	return 10 * len([]rune(text))
}

// Texts returns the recorded text draws in order.
func (s *Surface) Texts() []Op {
	return s.filter(OpText)
}

// Rects returns the recorded rectangle fills in order.
func (s *Surface) Rects() []Op {
	return s.filter(OpFillRect)
}

// HasText reports whether text was drawn.
func (s *Surface) HasText(text string) bool {
	for _, op := range s.Texts() {
		if op.Text == text {
			return true
		}
	}
	return false
}

// Reset forgets all recorded calls.
func (s *Surface) Reset() {
	s.Ops = s.Ops[:0]
}

func (s *Surface) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
