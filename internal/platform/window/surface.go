package window

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/going-mental/internal/core"
)

// Font sizes in logical pixels.
const (
	bodyFontSize  = 36
	titleFontSize = 72
)

// Surface is a core.Surface drawing onto the current Ebiten frame.
type Surface struct {
	dst    *ebiten.Image
	w, h   int
	body   *text.GoTextFace
	title  *text.GoTextFace
	images map[image.Image]*ebiten.Image
}

// NewSurface loads the fonts for a logical display of w×h pixels.
func NewSurface(w, h int) (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &Surface{
		w:      w,
		h:      h,
		body:   &text.GoTextFace{Source: src, Size: bodyFontSize},
		title:  &text.GoTextFace{Source: src, Size: titleFontSize},
		images: make(map[image.Image]*ebiten.Image),
	}, nil
}

// Bind sets the frame the next draws go to.
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

func (s *Surface) Fill(c core.Color) {
	s.dst.Fill(c)
}

func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawImage uploads img once and reuses the GPU copy afterwards.
// Callers must not mutate an image after drawing it.
func (s *Surface) DrawImage(img image.Image, x, y int) {
	eimg, ok := s.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[img] = eimg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(eimg, op)
}

func (s *Surface) DrawText(str string, x, y int, c core.Color, size core.TextSize) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face(size), op)
}

func (s *Surface) TextWidth(str string, size core.TextSize) int {
	return int(text.Advance(str, s.face(size)))
}

func (s *Surface) face(size core.TextSize) *text.GoTextFace {
	if size == core.TextTitle {
		return s.title
	}
	return s.body
}

var _ core.Surface = (*Surface)(nil)
