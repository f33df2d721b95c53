// SPDX-License-Identifier: MIT

package similarity_test

import (
	"fmt"

	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
	"github.com/katalvlaran/simmap/similarity"
)

func ExampleCompute() {
	tb, _ := matrix.NewTable(nil, []string{"A", "B", "C"}, [][]float64{
		{1, 2, 3},
		{2, 4, 1},
		{3, 6, 2},
	})
	m, _ := metric.Parse("pearson")
	corr, _ := similarity.Compute(tb, m)
	for i, label := range corr.Labels() {
		row := make([]string, corr.Size())
		for j := range row {
			v, _ := corr.At(i, j)
			row[j] = fmt.Sprintf("%5.2f", v)
		}
		fmt.Println(label, row)
	}
	// Output:
	// A [ 1.00  1.00 -0.50]
	// B [ 1.00  1.00 -0.50]
	// C [-0.50 -0.50  1.00]
}
