// SPDX-License-Identifier: MIT

package cluster_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/cluster"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tree, err := cluster.Cluster(line(t, []string{"a", "b", "c", "d"}, 0, 1, 5, 6))
	require.NoError(t, err)
	dg := cluster.Layout(tree)

	assert.Equal(t, 5.0, dg.Height)
	wantLeaves := []cluster.LeafPos{
		{ID: 0, Label: "a", X: 0},
		{ID: 1, Label: "b", X: 1},
		{ID: 2, Label: "c", X: 2},
		{ID: 3, Label: "d", X: 3},
	}
	if diff := cmp.Diff(wantLeaves, dg.Leaves); diff != "" {
		t.Fatalf("leaves mismatch (-want +got):\n%s", diff)
	}
	wantSegments := []cluster.Segment{
		{X0: 0, Y0: 0, X1: 0, Y1: 1},
		{X0: 1, Y0: 0, X1: 1, Y1: 1},
		{X0: 0, Y0: 1, X1: 1, Y1: 1},
		{X0: 2, Y0: 0, X1: 2, Y1: 1},
		{X0: 3, Y0: 0, X1: 3, Y1: 1},
		{X0: 2, Y0: 1, X1: 3, Y1: 1},
		{X0: 0.5, Y0: 1, X1: 0.5, Y1: 5},
		{X0: 2.5, Y0: 1, X1: 2.5, Y1: 5},
		{X0: 0.5, Y0: 5, X1: 2.5, Y1: 5},
	}
	if diff := cmp.Diff(wantSegments, dg.Segments); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutZeroTree(t *testing.T) {
	t.Parallel()

	var tree cluster.Tree
	assert.Equal(t, cluster.Dendrogram{}, cluster.Layout(&tree))
	assert.Empty(t, tree.Order())
	assert.Empty(t, tree.OrderedLabels())
	assert.Equal(t, 0.0, tree.Height())
}
