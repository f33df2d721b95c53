// SPDX-License-Identifier: MIT

// simmap computes pairwise similarity or distance matrices between the
// columns of a table and draws them as heatmaps and dendrograms. In value
// mode it draws the table itself with clustered columns.
//
// Usage:
//
//	simmap plot -i cells.txt -m pearson,spearman --scale focus --focus-min 0.9 --focus-max 1
//	simmap plot -i cells.txt --mode distance -m euclidean,canberra -d plots
//	simmap plot -i cells.txt --mode value --cluster --rescale
//	simmap plot --config run.yaml
//	simmap methods
//	simmap version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "simmap:", err)
		os.Exit(1)
	}
}
