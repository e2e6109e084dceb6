package core

import "image"

// TextSize selects one of the two font sizes the game uses.
type TextSize int

const (
	TextBody  TextSize = iota // Labels and prompts
	TextTitle                 // End screen headline
)

// Surface is the drawing target a frontend hands to the game each frame.
// Coordinates are logical display pixels with the origin at the top-left.
type Surface interface {
	// Size returns the logical display size.
	Size() (w, h int)

	// Fill paints the whole surface.
	Fill(c Color)

	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)

	// DrawImage draws img with its top-left corner at (x, y).
	// Transparent pixels leave the surface untouched.
	DrawImage(img image.Image, x, y int)

	// DrawText draws a single line with its top-left corner at (x, y).
	DrawText(text string, x, y int, c Color, size TextSize)

	// TextWidth returns the width text would occupy when drawn.
	TextWidth(text string, size TextSize) int
}

// Drawable is anything with a collision box that can draw itself.
type Drawable interface {
	Bounds() Rect
	Draw(dst Surface)
}
