// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/katalvlaran/simmap/cluster"
	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/scale"
)

// CellCenter returns the pixel at the centre of heatmap cell (i, j).
func CellCenter(p *PNG, sq *matrix.Square, b scale.Bounds, title string, i, j int) image.Point {
	ticks := []string{formatTick(b.High), formatTick(b.Midpoint()), formatTick(b.Low)}
	g := p.heatmapGeometry(sq.Labels(), sq.Labels(), ticks, title)

	return image.Pt(g.gridX+j*g.cell+g.cell/2, g.gridY+i*g.cell+g.cell/2)
}

// ValueCenter returns the pixel at the centre of value cell (i, j).
func ValueCenter(p *PNG, t *matrix.Table, b scale.Bounds, title string, i, j int) image.Point {
	ticks := []string{formatTick(b.High), formatTick(b.Midpoint()), formatTick(b.Low)}
	g := p.heatmapGeometry(t.RowNames(), t.ColNames(), ticks, title)

	return image.Pt(g.gridX+j*g.cell+g.cell/2, g.gridY+i*g.cell+g.cell/2)
}

// DendrogramPoint maps layout coordinates of t to pixels.
func DendrogramPoint(p *PNG, t *cluster.Tree, title string, x, y float64) image.Point {
	return p.dendrogramGeometry(cluster.Layout(t), title).point(x, y)
}
