package colors

import "image/color"

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a colour from its four channels.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// RGB builds an opaque colour.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

var (
	White    = RGB(255, 255, 255)
	Red      = RGB(255, 0, 0)
	Green    = RGB(0, 255, 0)
	Blue     = RGB(0, 0, 255)
	Black    = RGB(0, 0, 0)
	Magenta  = RGB(255, 0, 255)
	Cyan     = RGB(0, 255, 255)
	Yellow   = RGB(255, 255, 0)
	Gray     = RGB(128, 128, 128)
	DarkGray = RGB(20, 26, 31)
)

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Normalized returns the colour as [0..1] floats for shader input.
func (c Color) Normalized() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// RGBA implements image/color.Color. The channels are straight alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}
