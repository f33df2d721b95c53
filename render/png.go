// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/simmap/cluster"
	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/scale"
)

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ink        = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// lineWidth is the stroke of dendrogram branches and axes.
const lineWidth = 2

// minLeaves is the smallest tree a dendrogram can show.
const minLeaves = 2

// PNG renders heatmaps and dendrograms as PNG images.
// It holds no mutable state and is safe for concurrent use.
type PNG struct {
	opts Options
}

// NewPNG returns a renderer configured by opts on top of DefaultOptions.
func NewPNG(opts ...Option) *PNG {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &PNG{opts: o}
}

// heatGeom holds the pixel layout of one heatmap.
type heatGeom struct {
	rows, cols   int
	cell         int
	gridX, gridY int // top-left corner of cell (0,0)
	legendX      int
	width        int
	height       int
	titleY       int
}

func (p *PNG) heatmapGeometry(rowLabels, colLabels, ticks []string, title string) heatGeom {
	face, m, cell := p.opts.Face, p.opts.Margin, p.opts.CellSize
	var rowW, colW, tickW int
	for _, l := range rowLabels {
		rowW = max(rowW, textWidth(face, l))
	}
	for _, l := range colLabels {
		colW = max(colW, textWidth(face, l))
	}
	for _, s := range ticks {
		tickW = max(tickW, textWidth(face, s))
	}
	titleH := 0
	if title != "" {
		titleH = lineHeight(face) + gap
	}

	g := heatGeom{rows: len(rowLabels), cols: len(colLabels), cell: cell, titleY: m}
	g.gridX = m + rowW + gap
	g.gridY = m + titleH + colW + gap
	g.legendX = g.gridX + g.cols*cell + m
	g.width = g.legendX + p.opts.LegendWidth + gap + tickW + m
	g.height = g.gridY + g.rows*cell + m

	return g
}

// Heatmap draws sq with colours normalised by b and encodes the image to w.
//
// Cell (i, j) is painted with the palette colour at b.Norm(sq[i][j]). The
// focus palette is used when b carries a mid point. The legend shows the
// ramp from b.Low (bottom) to b.High (top) with the mid point in between.
//
// Errors: ErrEmptyMatrix, ErrBadBounds, and encoding errors from w.
func (p *PNG) Heatmap(w io.Writer, sq *matrix.Square, b scale.Bounds, title string) error {
	if sq == nil || sq.Size() == 0 {
		return fmt.Errorf("Heatmap: %w", ErrEmptyMatrix)
	}
	labels := sq.Labels()
	if err := p.grid(w, labels, labels, sq.Values(), b, title); err != nil {
		return fmt.Errorf("Heatmap: %w", err)
	}

	return nil
}

// Values draws the cells of t, samples as rows and features as columns,
// with the same colouring and legend as Heatmap.
//
// Errors: ErrEmptyMatrix, ErrBadBounds, and encoding errors from w.
func (p *PNG) Values(w io.Writer, t *matrix.Table, b scale.Bounds, title string) error {
	if t == nil || t.Rows() == 0 || t.Cols() == 0 {
		return fmt.Errorf("Values: %w", ErrEmptyMatrix)
	}
	if err := p.grid(w, t.RowNames(), t.ColNames(), t.Dense().Values(), b, title); err != nil {
		return fmt.Errorf("Values: %w", err)
	}

	return nil
}

// grid draws a labelled rows×cols block of row-major vals plus the legend.
func (p *PNG) grid(w io.Writer, rowLabels, colLabels []string, vals []float64, b scale.Bounds, title string) error {
	if err := checkBounds(b); err != nil {
		return err
	}
	pal := p.opts.Palette
	if b.HasMid {
		pal = p.opts.FocusPalette
	}

	ticks := []string{formatTick(b.High), formatTick(b.Midpoint()), formatTick(b.Low)}
	g := p.heatmapGeometry(rowLabels, colLabels, ticks, title)
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	fillRect(img, img.Bounds(), background)

	face, lh := p.opts.Face, lineHeight(p.opts.Face)
	gridW, gridH := g.cols*g.cell, g.rows*g.cell
	if title != "" {
		tx := max(p.opts.Margin, g.gridX+(gridW-textWidth(face, title))/2)
		drawText(img, face, ink, tx, g.titleY, title)
	}

	for j, l := range colLabels {
		drawTextUp(img, face, ink, g.gridX+j*g.cell+(g.cell-lh)/2, g.gridY-gap-textWidth(face, l), l)
	}
	var i, j int
	for i = 0; i < g.rows; i++ {
		y := g.gridY + i*g.cell
		drawText(img, face, ink, g.gridX-gap-textWidth(face, rowLabels[i]), y+(g.cell-lh)/2, rowLabels[i])
		for j = 0; j < g.cols; j++ {
			x := g.gridX + j*g.cell
			fillRect(img, image.Rect(x, y, x+g.cell, y+g.cell), pal.At(b.Norm(vals[i*g.cols+j])))
		}
	}

	// Legend: top row is High, bottom row is Low.
	for k := 0; k < gridH; k++ {
		t := 1.0
		if gridH > 1 {
			t = 1 - float64(k)/float64(gridH-1)
		}
		fillRect(img, image.Rect(g.legendX, g.gridY+k, g.legendX+p.opts.LegendWidth, g.gridY+k+1), pal.At(t))
	}
	tx := g.legendX + p.opts.LegendWidth + gap
	drawText(img, face, ink, tx, g.gridY, ticks[0])
	drawText(img, face, ink, tx, g.gridY+(gridH-lh)/2, ticks[1])
	drawText(img, face, ink, tx, g.gridY+gridH-lh, ticks[2])

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// dendroGeom holds the pixel layout of one dendrogram.
type dendroGeom struct {
	cell         int
	plotX, plotY int // top-left corner of the plot area
	plotH        int
	height       float64 // tree height mapped onto plotH
	width        int
	imgH         int
}

func (p *PNG) dendrogramGeometry(dg cluster.Dendrogram, title string) dendroGeom {
	face, m := p.opts.Face, p.opts.Margin
	var labelW int
	for _, l := range dg.Leaves {
		labelW = max(labelW, textWidth(face, l.Label))
	}
	titleH := 0
	if title != "" {
		titleH = lineHeight(face) + gap
	}
	axisW := max(textWidth(face, formatTick(dg.Height)), textWidth(face, "0")) + gap + lineWidth

	g := dendroGeom{cell: p.opts.CellSize, plotH: p.opts.DendrogramHeight, height: dg.Height}
	g.plotX = m + axisW
	g.plotY = m + titleH
	g.width = g.plotX + len(dg.Leaves)*g.cell + m
	g.imgH = g.plotY + g.plotH + gap + labelW + m

	return g
}

// point maps layout coordinates to pixels. Y grows upwards in layout units.
func (g dendroGeom) point(x, y float64) image.Point {
	px := g.plotX + int(math.Round(x*float64(g.cell))) + g.cell/2
	py := g.plotY + g.plotH
	if g.height > 0 {
		py -= int(math.Round(y / g.height * float64(g.plotH)))
	}

	return image.Pt(px, py)
}

// Dendrogram draws the merge tree t and encodes the image to w.
// Leaves are spread along the bottom in cluster order with their labels
// underneath; the left axis shows the merge distance from 0 to the tree height.
//
// Errors: ErrNilTree, ErrEmptyTree, and encoding errors from w.
func (p *PNG) Dendrogram(w io.Writer, t *cluster.Tree, title string) error {
	if t == nil {
		return fmt.Errorf("Dendrogram: %w", ErrNilTree)
	}
	if t.Len() < minLeaves {
		return fmt.Errorf("Dendrogram: %w: %d leaves", ErrEmptyTree, t.Len())
	}
	dg := cluster.Layout(t)
	g := p.dendrogramGeometry(dg, title)
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.imgH))
	fillRect(img, img.Bounds(), background)

	face, lh := p.opts.Face, lineHeight(p.opts.Face)
	if title != "" {
		drawText(img, face, ink, g.plotX, p.opts.Margin, title)
	}

	// Axis with ticks at 0 and at the tree height.
	ax := g.plotX - lineWidth - 1
	fillRect(img, image.Rect(ax, g.plotY, ax+lineWidth, g.plotY+g.plotH+1), ink)
	top, bottom := formatTick(dg.Height), "0"
	drawText(img, face, ink, ax-gap-textWidth(face, top), g.plotY-lh/2, top)
	drawText(img, face, ink, ax-gap-textWidth(face, bottom), g.plotY+g.plotH-lh/2, bottom)

	for _, s := range dg.Segments {
		a, b := g.point(s.X0, s.Y0), g.point(s.X1, s.Y1)
		r := image.Rectangle{Min: image.Pt(min(a.X, b.X), min(a.Y, b.Y)), Max: image.Pt(max(a.X, b.X), max(a.Y, b.Y))}
		fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X+lineWidth, r.Max.Y+lineWidth), ink)
	}

	ly := g.plotY + g.plotH + gap + lineWidth
	for _, l := range dg.Leaves {
		x := g.point(l.X, 0).X - lh/2
		drawTextUp(img, face, ink, x, ly, l.Label)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("Dendrogram: encode: %w", err)
	}

	return nil
}

// checkBounds rejects bounds that cannot drive a colour ramp.
func checkBounds(b scale.Bounds) error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	if !finite(b.Low) || !finite(b.High) || (b.HasMid && !finite(b.Mid)) {
		return fmt.Errorf("%w: %s", ErrBadBounds, b)
	}
	if b.Low > b.High || (b.HasMid && (b.Mid < b.Low || b.Mid > b.High)) {
		return fmt.Errorf("%w: %s is not ordered", ErrBadBounds, b)
	}

	return nil
}

func formatTick(v float64) string { return strconv.FormatFloat(v, 'g', 3, 64) }
