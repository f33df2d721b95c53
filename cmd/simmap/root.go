// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simmap/config"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "simmap",
		Short: "Correlation and distance heatmaps with hierarchical clustering",
		Long: "simmap compares the columns of a sample-by-feature table with a correlation\n" +
			"or distance method, draws the pairwise matrix as a heatmap and, on request,\n" +
			"orders it by average-linkage clustering with a matching dendrogram.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	def := config.Default().Log
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML or TOML run configuration; flags override it")
	pf.StringVar(&opts.logLevel, "log-level", def.Level, "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", def.Format, "log format: console or json")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(newPlotCmd(opts), newMethodsCmd(), newVersionCmd())

	return cmd
}

// loadConfig returns the configuration file named by --config, or the
// defaults, with the persistent log flags applied when set.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()
	if o.configPath != "" {
		var err error
		if c, err = config.Load(o.configPath); err != nil {
			return c, err
		}
	}
	f := cmd.Flags()
	if f.Changed("log-level") {
		c.Log.Level = o.logLevel
	}
	if f.Changed("log-format") {
		c.Log.Format = o.logFormat
	}
	if f.Changed("log-file") {
		c.Log.Filename = o.logFile
	}

	return c, nil
}
