package domain

import (
	imgcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSL triple produced by the field colormap. Hue is a fraction
// of a full turn in [0, 1); saturation and lightness are in [0, 1].
type Color struct {
	H float64
	S float64
	L float64
}

// ValueToColor maps a harmonic field value to an HSL color. The value is
// clamped to [-1, 1] and swept from hue 0.8 (violet) at -1 to hue 0.1
// (yellow) at +1, brightening as the value grows. Saturation is fixed.
func ValueToColor(value float64) Color {
	clamped := math.Max(-1, math.Min(1, value))
	normalized := (clamped + 1) / 2

	return Color{
		H: 0.8 - normalized*0.7,
		S: 0.8,
		L: 0.3 + normalized*0.4,
	}
}

// RGB converts the color to sRGB.
func (c Color) RGB() colorful.Color {
	return colorful.Hsl(c.H*360, c.S, c.L).Clamped()
}

// Hex returns the color as a "#rrggbb" string for the web renderer.
func (c Color) Hex() string {
	return c.RGB().Hex()
}

// RGBA returns the color as opaque 8-bit RGBA for image encoding.
func (c Color) RGBA() imgcolor.RGBA {
	r, g, b := c.RGB().RGB255()
	return imgcolor.RGBA{R: r, G: g, B: b, A: 255}
}
