// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a diverging three-stop colour ramp: Low at 0, Mid at 0.5, High at 1.
type Palette struct {
	Low  colorful.Color
	Mid  colorful.Color
	High colorful.Color
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}

	// DefaultPalette runs from blue through white to red.
	DefaultPalette = Palette{
		Low:  colorful.Color{R: 0.129, G: 0.400, B: 0.675}, // #2166ac
		Mid:  white,
		High: colorful.Color{R: 0.698, G: 0.094, B: 0.169}, // #b2182b
	}

	// FocusPalette fades everything under the focus threshold to grey, so
	// only values above it stand out in red.
	FocusPalette = Palette{
		Low:  colorful.Color{R: 0.851, G: 0.851, B: 0.851}, // #d9d9d9
		Mid:  white,
		High: colorful.Color{R: 0.698, G: 0.094, B: 0.169},
	}
)

// At returns the colour at position t, clamped to [0, 1].
func (p Palette) At(t float64) color.RGBA {
	t = min(max(t, 0), 1)
	var c colorful.Color
	if t < 0.5 {
		c = p.Low.BlendLab(p.Mid, t*2)
	} else {
		c = p.Mid.BlendLab(p.High, (t-0.5)*2)
	}
	r, g, b := c.Clamped().RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
