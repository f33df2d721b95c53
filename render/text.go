// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// textWidth returns the advance of s in whole pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// lineHeight returns the pixel height of one line of text.
func lineHeight(face font.Face) int {
	m := face.Metrics()

	return (m.Ascent + m.Descent).Ceil()
}

// drawText writes s with its top-left corner at (x, y).
func drawText(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawTextUp writes s rotated 90° counter-clockwise, reading bottom to top.
// (x, y) is the top-left corner of the rotated text box; its width is one
// line height and its height the text width.
func drawTextUp(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	w, h := textWidth(face, s), lineHeight(face)
	if w == 0 {
		return
	}
	tmp := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: tmp, Src: image.Opaque, Face: face, Dot: fixed.P(0, face.Metrics().Ascent.Ceil())}
	d.DrawString(s)

	src := image.NewUniform(c)
	var px, py int
	for py = 0; py < h; py++ {
		for px = 0; px < w; px++ {
			a := tmp.AlphaAt(px, py).A
			if a == 0 {
				continue
			}
			// (px, py) -> (py, w-1-px) rotates counter-clockwise.
			at := image.Pt(x+py, y+w-1-px)
			draw.DrawMask(dst, image.Rectangle{Min: at, Max: at.Add(image.Pt(1, 1))},
				src, image.Point{}, image.NewUniform(color.Alpha{A: a}), image.Point{}, draw.Over)
		}
	}
}

// fillRect paints r with c.
func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
