// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simmap/metric"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the supported methods by family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, fam := range []struct {
				name    string
				methods []metric.Method
			}{
				{metric.Correlation.String(), metric.CorrelationMethods()},
				{metric.Distance.String(), metric.DistanceMethods()},
			} {
				names := make([]string, len(fam.methods))
				for i, m := range fam.methods {
					names[i] = m.String()
				}
				fmt.Fprintf(out, "%-12s %s\n", fam.name+":", strings.Join(names, ", "))
			}

			return nil
		},
	}
}
