// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/cluster"
	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/render"
	"github.com/katalvlaran/simmap/scale"
)

func corr(t *testing.T) *matrix.Square {
	t.Helper()
	sq, err := matrix.NewSquareFrom([]string{"alpha", "beta", "gamma"}, []float64{
		1, 0.5, -1,
		0.5, 1, 0,
		-1, 0, 1,
	})
	require.NoError(t, err)

	return sq
}

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)

	return img
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestPaletteStops(t *testing.T) {
	t.Parallel()

	p := render.DefaultPalette
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, p.At(0.5))
	assert.Equal(t, p.At(0), p.At(-3), "clamped below")
	assert.Equal(t, p.At(1), p.At(7), "clamped above")

	lo, hi := p.At(0), p.At(1)
	assert.Greater(t, lo.B, lo.R, "low end is blue")
	assert.Greater(t, hi.R, hi.B, "high end is red")
}

func TestHeatmapCells(t *testing.T) {
	t.Parallel()

	sq := corr(t)
	b := scale.Bounds{Low: -1, High: 1}
	r := render.NewPNG()
	var buf bytes.Buffer
	require.NoError(t, r.Heatmap(&buf, sq, b, "pearson"))
	img := decode(t, &buf)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := sq.At(i, j)
			require.NoError(t, err)
			pt := render.CellCenter(r, sq, b, "pearson", i, j)
			require.True(t, pt.In(img.Bounds()))
			assert.Equal(t, render.DefaultPalette.At(b.Norm(v)), rgba(img.At(pt.X, pt.Y)), "cell (%d,%d)", i, j)
		}
	}
}

func TestHeatmapFocusPalette(t *testing.T) {
	t.Parallel()

	sq := corr(t)
	b := scale.Bounds{Low: -1, Mid: 0.4, High: 0.9, HasMid: true}
	r := render.NewPNG(render.WithCellSize(10))
	var buf bytes.Buffer
	require.NoError(t, r.Heatmap(&buf, sq, b, ""))
	img := decode(t, &buf)

	pt := render.CellCenter(r, sq, b, "", 0, 2) // -1 sits at the low end
	assert.Equal(t, render.FocusPalette.At(0), rgba(img.At(pt.X, pt.Y)))
	pt = render.CellCenter(r, sq, b, "", 1, 1) // 1 is clipped to the high end
	assert.Equal(t, render.FocusPalette.At(1), rgba(img.At(pt.X, pt.Y)))
}

func TestHeatmapGrowsWithSize(t *testing.T) {
	t.Parallel()

	r := render.NewPNG(render.WithCellSize(8), render.WithMargin(4))
	b := scale.Bounds{Low: 0, High: 1}
	size := func(n int) image.Rectangle {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		sq, err := matrix.NewSquare(labels)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, r.Heatmap(&buf, sq, b, "t"))

		return decode(t, &buf).Bounds()
	}
	small, large := size(2), size(5)
	assert.Equal(t, 3*8, large.Dx()-small.Dx())
	assert.Equal(t, 3*8, large.Dy()-small.Dy())
}

func TestHeatmapErrors(t *testing.T) {
	t.Parallel()

	r := render.NewPNG()
	var buf bytes.Buffer
	err := r.Heatmap(&buf, nil, scale.Bounds{Low: -1, High: 1}, "")
	require.ErrorIs(t, err, render.ErrEmptyMatrix)
	assert.True(t, matrix.IsValidation(err))

	bad := []scale.Bounds{
		{Low: 1, High: -1},
		{Low: math.NaN(), High: 1},
		{Low: 0, High: math.Inf(1)},
		{Low: 0, Mid: 2, High: 1, HasMid: true},
	}
	for _, b := range bad {
		require.ErrorIs(t, r.Heatmap(&buf, corr(t), b, ""), render.ErrBadBounds, b.String())
	}
	assert.Zero(t, buf.Len(), "nothing is written on error")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestHeatmapWriteError(t *testing.T) {
	t.Parallel()

	err := render.NewPNG().Heatmap(failingWriter{}, corr(t), scale.Bounds{Low: -1, High: 1}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDendrogram(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewSquareFrom([]string{"a", "b", "c", "d"}, []float64{
		0, 1, 5, 6,
		1, 0, 4, 5,
		5, 4, 0, 1,
		6, 5, 1, 0,
	})
	require.NoError(t, err)
	tree, err := cluster.Cluster(d)
	require.NoError(t, err)

	r := render.NewPNG(render.WithDendrogramHeight(100))
	var buf bytes.Buffer
	require.NoError(t, r.Dendrogram(&buf, tree, "euclidean"))
	img := decode(t, &buf)

	// The root bar joins x=0.5 and x=2.5 at the top of the plot.
	a := render.DendrogramPoint(r, tree, "euclidean", 0.5, 5)
	b := render.DendrogramPoint(r, tree, "euclidean", 2.5, 5)
	require.Equal(t, a.Y, b.Y)
	mid := image.Pt((a.X+b.X)/2, a.Y)
	assert.NotEqual(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba(img.At(mid.X, mid.Y)))

	// Leaves sit on the baseline, 100px below the root.
	leaf := render.DendrogramPoint(r, tree, "euclidean", 0, 0)
	assert.Equal(t, 100, leaf.Y-a.Y)

	require.ErrorIs(t, r.Dendrogram(&buf, nil, ""), render.ErrNilTree)
	err = r.Dendrogram(&buf, &cluster.Tree{}, "empty")
	require.ErrorIs(t, err, render.ErrEmptyTree)
	assert.True(t, matrix.IsValidation(err))
}

func TestValues(t *testing.T) {
	t.Parallel()

	tb, err := matrix.NewTable([]string{"s1", "s2"}, []string{"x", "y", "z"}, [][]float64{
		{0, 0.25, 1},
		{0.5, 0.75, 0},
	})
	require.NoError(t, err)
	b := scale.Bounds{Low: 0, High: 1}
	r := render.NewPNG(render.WithCellSize(10))
	var buf bytes.Buffer
	require.NoError(t, r.Values(&buf, tb, b, "abundance"))
	img := decode(t, &buf)

	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			v, err := tb.At(i, j)
			require.NoError(t, err)
			pt := render.ValueCenter(r, tb, b, "abundance", i, j)
			require.True(t, pt.In(img.Bounds()))
			assert.Equal(t, render.DefaultPalette.At(v), rgba(img.At(pt.X, pt.Y)), "cell (%d,%d)", i, j)
		}
	}

	// One more column widens the image by one cell and keeps its height.
	wide, err := matrix.NewTable([]string{"s1", "s2"}, []string{"x", "y", "z", "w"}, [][]float64{
		{0, 0.25, 1, 1},
		{0.5, 0.75, 0, 0},
	})
	require.NoError(t, err)
	var wbuf bytes.Buffer
	require.NoError(t, r.Values(&wbuf, wide, b, "abundance"))
	wimg := decode(t, &wbuf)
	assert.Equal(t, 10, wimg.Bounds().Dx()-img.Bounds().Dx())
	assert.Equal(t, img.Bounds().Dy(), wimg.Bounds().Dy())

	require.ErrorIs(t, r.Values(&buf, nil, b, ""), render.ErrEmptyMatrix)
	require.ErrorIs(t, r.Values(&buf, tb, scale.Bounds{Low: 2, High: 1}, ""), render.ErrBadBounds)
}
