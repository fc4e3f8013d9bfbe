package render

import (
	"image/color"

	hsluv "github.com/hsluv/hsluv-go"
)

// builtinPalette is the classic seven-color screensaver palette. Index 0 is
// black so a blank grid renders as a black frame.
var builtinPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 170, G: 170, B: 170, A: 255},
	{R: 85, G: 85, B: 85, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
}

// Builtin returns a copy of the built-in seven-color palette.
func Builtin() []color.RGBA {
	return append([]color.RGBA(nil), builtinPalette...)
}

// Generate builds an n-color palette with perceptually even hues. Index 0
// stays black for the blank symbol; the remaining colors are evenly spaced
// HSLuv hues at full saturation.
func Generate(n int) []color.RGBA {
	if n < 1 {
		n = 1
	}
	palette := make([]color.RGBA, n)
	palette[0] = color.RGBA{A: 255}
	for i := 1; i < n; i++ {
		h := 360 * float64(i-1) / float64(n-1)
		r, g, b := hsluv.HsluvToRGB(h, 100, 60)
		palette[i] = color.RGBA{
			R: uint8(r * 0xff),
			G: uint8(g * 0xff),
			B: uint8(b * 0xff),
			A: 0xff,
		}
	}
	return palette
}
