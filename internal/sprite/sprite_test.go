package sprite

import (
	"image"
	"image/color"
	"testing"
)

func TestStickFigureFrames(t *testing.T) {
	fs := NewStickFigure(4, 40, 70)

	if fs.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", fs.Len())
	}

	for i := 0; i < fs.Len(); i++ {
		for _, right := range []bool{true, false} {
			f := fs.Frame(i, right)
			if f.Bounds().Dx() != 40 || f.Bounds().Dy() != 70 {
				t.Errorf("frame %d bounds = %v, expected 40x70", i, f.Bounds())
			}
		}
	}
}

func TestStickFigureHasHeadAndTransparentCorners(t *testing.T) {
	f := NewStickFigure(4, 40, 70).Frame(0, true)

	// Center of the head is painted
	if f.RGBAAt(20, 15).A == 0 {
		t.Error("head center should be opaque")
	}
	// Top-left corner is outside the figure
	if f.RGBAAt(0, 0).A != 0 {
		t.Error("corner should stay transparent")
	}
}

func TestFramesDiffer(t *testing.T) {
	fs := NewStickFigure(4, 40, 70)
	if equalImages(fs.Frame(0, true), fs.Frame(3, true)) {
		t.Error("first and last frame of the cycle should differ")
	}
}

func TestMirror(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	red := color.RGBA{R: 255, A: 255}
	img.SetRGBA(0, 1, red)

	m := Mirror(img)
	if m.RGBAAt(2, 1) != red {
		t.Errorf("mirrored pixel = %v, expected %v", m.RGBAAt(2, 1), red)
	}
	if m.RGBAAt(0, 1).A != 0 {
		t.Error("source position should be empty after mirroring")
	}
	if !equalImages(Mirror(m), img) {
		t.Error("mirroring twice should restore the image")
	}
}

func TestFrameSetMirroredCopy(t *testing.T) {
	fs := NewStickFigure(2, 40, 70)
	if !equalImages(Mirror(fs.Frame(1, true)), fs.Frame(1, false)) {
		t.Error("left-facing frame should be the mirror of the right-facing one")
	}
}

func equalImages(a, b *image.RGBA) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
