// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/simmap/config"
	"github.com/katalvlaran/simmap/internal/logging"
	"github.com/katalvlaran/simmap/metric"
	"github.com/katalvlaran/simmap/pipeline"
	"github.com/katalvlaran/simmap/render"
	"github.com/katalvlaran/simmap/table"
)

type plotFlags struct {
	input        string
	methods      []string
	mode         string
	scale        string
	focusMin     float64
	focusMax     float64
	dir          string
	output       string
	title        string
	cluster      bool
	linkage      string
	minkowskiP   float64
	parallel     int
	export       bool
	minAbundance float64
	minFraction  float64
	dropZero     bool
	rescale      bool
}

func newPlotCmd(root *rootOptions) *cobra.Command {
	pf := &plotFlags{}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Compute pairwise matrices and draw heatmaps",
		Long: "plot reads a whitespace-separated table, compares its columns with every\n" +
			"requested method and writes <output>_<method>.png into --dir. In distance\n" +
			"mode each heatmap is ordered by clustering and gets a dendrogram,\n" +
			"<output>_<method>_dendogram.png. In value mode the table itself is drawn,\n" +
			"its columns clustered with the method (euclidean unless set) and its rows\n" +
			"too with --cluster. Supported methods: " + metric.SupportedString() + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd, root, pf)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.StringVarP(&pf.input, "input", "i", "", "input table (whitespace separated, header row first)")
	f.StringSliceVarP(&pf.methods, "method", "m", nil, "methods to run, repeatable or comma separated (default pearson, euclidean in value mode)")
	f.StringVar(&pf.mode, "mode", def.Mode, "correlation, distance or value")
	f.StringVar(&pf.scale, "scale", def.Scale, "colour scale: default, tight or focus")
	f.Float64Var(&pf.focusMin, "focus-min", 0, "focus scale: lower threshold, drawn as the white mid point")
	f.Float64Var(&pf.focusMax, "focus-max", 0, "focus scale: upper threshold")
	f.StringVarP(&pf.dir, "dir", "d", def.Dir, "output directory, created when missing")
	f.StringVarP(&pf.output, "output", "o", def.Output, "output file base name")
	f.StringVarP(&pf.title, "title", "t", "", "plot title; the method name is appended")
	f.BoolVar(&pf.cluster, "cluster", false, "correlation mode: reorder the heatmap by clustering; value mode: also cluster the rows")
	f.StringVar(&pf.linkage, "linkage", def.Linkage, "clustering linkage: average, single or complete")
	f.Float64Var(&pf.minkowskiP, "minkowski-p", def.MinkowskiP, "order p of the minkowski distance")
	f.IntVar(&pf.parallel, "parallel", def.Parallel, "methods computed at once")
	f.BoolVar(&pf.export, "export", false, "also write each drawn matrix or table as <output>_<method>.tsv")
	f.Float64Var(&pf.minAbundance, "min-abundance", 0, "keep columns reaching this value in enough rows, in [0, 1]")
	f.Float64Var(&pf.minFraction, "min-sample-fraction", 0, "share of rows that must reach --min-abundance, in [0, 1]")
	f.BoolVar(&pf.dropZero, "drop-zero", false, "drop all-zero columns")
	f.BoolVar(&pf.rescale, "rescale", false, "rescale each column to [0, 1]")

	return cmd
}

// apply copies every flag set on the command line over c.
func (pf *plotFlags) apply(cmd *cobra.Command, c *config.Config) {
	f := cmd.Flags()
	set := func(name string, fn func()) {
		if f.Changed(name) {
			fn()
		}
	}
	set("input", func() { c.Input = pf.input })
	set("method", func() { c.Methods = pf.methods })
	set("mode", func() { c.Mode = pf.mode })
	set("scale", func() { c.Scale = pf.scale })
	set("focus-min", func() { c.FocusMin = &pf.focusMin })
	set("focus-max", func() { c.FocusMax = &pf.focusMax })
	set("dir", func() { c.Dir = pf.dir })
	set("output", func() { c.Output = pf.output })
	set("title", func() { c.Title = pf.title })
	set("cluster", func() { c.Cluster = pf.cluster })
	set("linkage", func() { c.Linkage = pf.linkage })
	set("minkowski-p", func() { c.MinkowskiP = pf.minkowskiP })
	set("parallel", func() { c.Parallel = pf.parallel })
	set("export", func() { c.Export = pf.export })
	set("min-abundance", func() { c.Filters.MinAbundance = pf.minAbundance })
	set("min-sample-fraction", func() { c.Filters.MinSampleFraction = pf.minFraction })
	set("drop-zero", func() { c.Filters.DropZero = pf.dropZero })
	set("rescale", func() { c.Filters.Rescale = pf.rescale })
}

func runPlot(cmd *cobra.Command, root *rootOptions, pf *plotFlags) error {
	c, err := root.loadConfig(cmd)
	if err != nil {
		return err
	}
	pf.apply(cmd, &c)
	r, err := c.Validate()
	if err != nil {
		return err
	}

	logger, err := logging.Init(r.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logging.New("cli")

	tb, err := table.ReadFile(r.Input)
	if err != nil {
		return err
	}
	tb, dropped, err := table.Prepare(tb, r.Filters)
	if err != nil {
		return err
	}
	if len(dropped.Abundance) > 0 || len(dropped.Zero) > 0 {
		log.Info("columns filtered",
			zap.Strings("below_abundance", dropped.Abundance),
			zap.Strings("all_zero", dropped.Zero),
			zap.Int("kept", tb.Cols()),
		)
	}

	sum, runErr := pipeline.Run(cmd.Context(), r, tb, render.NewPNG(), pipeline.WithLogger(logging.New("pipeline")))
	if sum == nil {
		return runErr
	}
	out := cmd.OutOrStdout()
	for _, res := range sum.Results {
		if res.Err != nil {
			fmt.Fprintf(out, "FAIL  %-10s %v\n", res.Method, res.Err)

			continue
		}
		names := make([]string, len(res.Files))
		for i, p := range res.Files {
			names[i] = filepath.Base(p)
		}
		fmt.Fprintf(out, "ok    %-10s %v\n", res.Method, names)
	}
	if n := len(sum.Failed()); n > 0 {
		return fmt.Errorf("%d of %d methods failed: %w", n, len(sum.Results), runErr)
	}

	return nil
}
