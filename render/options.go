// SPDX-License-Identifier: MIT

package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Layout defaults, in pixels.
const (
	DefaultCellSize         = 24
	DefaultMargin           = 16
	DefaultLegendWidth      = 18
	DefaultDendrogramHeight = 240
)

// gap separates labels from the grid they annotate.
const gap = 4

// Options configures a PNG renderer.
type Options struct {
	CellSize         int       // side of one heatmap cell; also the leaf spacing of dendrograms
	Margin           int       // blank border around the picture
	LegendWidth      int       // width of the colour bar
	DendrogramHeight int       // height of the dendrogram plot area
	Face             font.Face // label font
	Palette          Palette   // ramp for default and tight bounds
	FocusPalette     Palette   // ramp for bounds with an explicit mid point
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the renderer defaults: 24px cells, a 7x13 bitmap font,
// blue-white-red palette.
func DefaultOptions() Options {
	return Options{
		CellSize:         DefaultCellSize,
		Margin:           DefaultMargin,
		LegendWidth:      DefaultLegendWidth,
		DendrogramHeight: DefaultDendrogramHeight,
		Face:             basicfont.Face7x13,
		Palette:          DefaultPalette,
		FocusPalette:     FocusPalette,
	}
}

// WithCellSize sets the cell side. Values below 1 are ignored.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px > 0 {
			o.CellSize = px
		}
	}
}

// WithMargin sets the outer margin. Negative values are ignored.
func WithMargin(px int) Option {
	return func(o *Options) {
		if px >= 0 {
			o.Margin = px
		}
	}
}

// WithDendrogramHeight sets the height of the dendrogram plot area.
func WithDendrogramHeight(px int) Option {
	return func(o *Options) {
		if px > 0 {
			o.DendrogramHeight = px
		}
	}
}

// WithFace sets the label font. A nil face is ignored.
func WithFace(f font.Face) Option {
	return func(o *Options) {
		if f != nil {
			o.Face = f
		}
	}
}

// WithPalettes sets the ramps used without and with a mid point.
func WithPalettes(normal, focus Palette) Option {
	return func(o *Options) {
		o.Palette, o.FocusPalette = normal, focus
	}
}
