package core

import (
	"fmt"
	"image/color"
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color so a Color can be handed to image APIs.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the game screens.
var (
	ColorWhite  = RGB(255, 255, 255)
	ColorBlack  = RGB(0, 0, 0)
	ColorRed    = RGB(255, 0, 0)
	ColorYellow = RGB(255, 255, 0)
	ColorBlue   = RGB(70, 140, 200)
	ColorSkin   = RGB(240, 200, 160)
)
