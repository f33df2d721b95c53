// SPDX-License-Identifier: MIT

package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/simmap/cluster"
	"github.com/katalvlaran/simmap/matrix"
)

func ExampleCluster() {
	d, _ := matrix.NewSquareFrom([]string{"a", "b", "c", "d"}, []float64{
		0, 1, 5, 6,
		1, 0, 4, 5,
		5, 4, 0, 1,
		6, 5, 1, 0,
	})
	tree, _ := cluster.Cluster(d)
	for _, m := range tree.Merges() {
		fmt.Printf("%d+%d at %g\n", m.A, m.B, m.Distance)
	}
	fmt.Println(tree.OrderedLabels())
	// Output:
	// 0+1 at 1
	// 2+3 at 1
	// 4+5 at 5
	// [a b c d]
}
