// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/cluster"
	"github.com/katalvlaran/simmap/config"
	"github.com/katalvlaran/simmap/internal/logging"
	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
	"github.com/katalvlaran/simmap/scale"
	"github.com/katalvlaran/simmap/similarity"
	"github.com/katalvlaran/simmap/table"
)

func ptr(v float64) *float64 { return &v }

func valid() config.Config {
	c := config.Default()
	c.Input = "cells.txt"

	return c
}

func TestDefaultResolves(t *testing.T) {
	t.Parallel()

	r, err := valid().Validate()
	require.NoError(t, err)
	want := config.Resolved{
		Input:      "cells.txt",
		Mode:       config.CorrelationMode,
		Methods:    []metric.Method{metric.Pearson},
		Scale:      scale.Config{Policy: scale.Default},
		Dir:        ".",
		Output:     "simmap",
		Linkage:    cluster.Average,
		MinkowskiP: similarity.DefaultMinkowskiP,
		Parallel:   runtime.NumCPU(),
		Log:        logging.DefaultConfig(),
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("resolved mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateDefaultMethodPerMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode string
		want config.Mode
		m    metric.Method
	}{
		{"correlation", config.CorrelationMode, metric.Pearson},
		{"distance", config.DistanceMode, metric.Pearson},
		{"value", config.ValueMode, metric.Euclidean},
	}
	for _, tc := range cases {
		c := valid()
		c.Mode = tc.mode
		r, err := c.Validate()
		require.NoError(t, err, tc.mode)
		assert.Equal(t, tc.want, r.Mode)
		assert.Equal(t, []metric.Method{tc.m}, r.Methods, tc.mode)
	}

	c := valid()
	c.Mode = "value"
	c.Methods = []string{"canberra", "spearman"}
	r, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, []metric.Method{metric.Canberra, metric.Spearman}, r.Methods, "explicit methods win")
	assert.Equal(t, "value", r.Mode.String())
}

func TestValidateFocus(t *testing.T) {
	t.Parallel()

	c := valid()
	c.Scale = "focus"
	c.FocusMin, c.FocusMax = ptr(0.9), ptr(1)
	r, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, scale.Config{Policy: scale.Focus, FocusMin: 0.9, FocusMax: 1}, r.Scale)
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"no input", func(c *config.Config) { c.Input = "" }, config.ErrMissingInput},
		{"bad mode", func(c *config.Config) { c.Mode = "similarity" }, config.ErrUnknownMode},
		{"bad method", func(c *config.Config) { c.Methods = []string{"pearson", "cosine"} }, metric.ErrUnsupportedMethod},
		{"duplicate method", func(c *config.Config) { c.Methods = []string{"kendall", "kendall"} }, metric.ErrDuplicateMethod},
		{"bad scale", func(c *config.Config) { c.Scale = "log" }, scale.ErrUnknownPolicy},
		{"focus without bounds", func(c *config.Config) { c.Scale = "focus"; c.FocusMin = ptr(0.5) }, config.ErrFocusBounds},
		{"focus inverted", func(c *config.Config) {
			c.Scale = "focus"
			c.FocusMin, c.FocusMax = ptr(1), ptr(0.9)
		}, scale.ErrFocusBounds},
		{"bounds without focus", func(c *config.Config) { c.FocusMax = ptr(1) }, config.ErrFocusBounds},
		{"bad linkage", func(c *config.Config) { c.Linkage = "ward" }, cluster.ErrUnknownLinkage},
		{"bad minkowski", func(c *config.Config) { c.MinkowskiP = 0.5 }, similarity.ErrBadOption},
		{"bad parallel", func(c *config.Config) { c.Parallel = 0 }, config.ErrBadValue},
		{"output with dir", func(c *config.Config) { c.Output = "out/plot" }, config.ErrBadValue},
		{"bad filter", func(c *config.Config) { c.Filters.MinAbundance = 3 }, table.ErrBadFilter},
		{"bad log format", func(c *config.Config) { c.Log.Format = "xml" }, logging.ErrUnknownFormat},
	}
	for _, tc := range cases {
		c := valid()
		tc.mutate(&c)
		_, err := c.Validate()
		require.ErrorIs(t, err, tc.want, tc.name)
		assert.True(t, matrix.IsValidation(err), tc.name)
	}
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := write(t, "run.yaml", `
input: cells.txt
mode: distance
methods: [euclidean, canberra]
dir: plots
cluster: true
filters:
  min_abundance: 0.01
  drop_zero: true
log:
  level: debug
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "distance", c.Mode)
	assert.Equal(t, []string{"euclidean", "canberra"}, c.Methods)
	assert.Equal(t, "plots", c.Dir)
	assert.Equal(t, "simmap", c.Output, "defaults survive")
	assert.Equal(t, table.Filters{MinAbundance: 0.01, DropZero: true}, c.Filters)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, logging.FormatConsole, c.Log.Format)

	r, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, []metric.Method{metric.Euclidean, metric.Canberra}, r.Methods)
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := write(t, "run.toml", `
input = "cells.txt"
methods = ["spearman"]
scale = "focus"
focus_min = 0.9
focus_max = 1.0

[filters]
rescale = true
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	r, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, []metric.Method{metric.Spearman}, r.Methods)
	assert.Equal(t, scale.Config{Policy: scale.Focus, FocusMin: 0.9, FocusMax: 1}, r.Scale)
	assert.True(t, r.Filters.Rescale)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown yaml key": write(t, "a.yaml", "input: x\ncolour: red\n"),
		"unknown toml key": write(t, "b.toml", "input = \"x\"\ncolour = \"red\"\n"),
		"bad yaml":         write(t, "c.yml", "methods: [pearson\n"),
		"bad extension":    write(t, "d.json", "{}"),
	}
	for name, path := range cases {
		_, err := config.Load(path)
		require.ErrorIs(t, err, config.ErrFormat, name)
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEmptyYAML(t *testing.T) {
	t.Parallel()

	c, err := config.Load(write(t, "empty.yaml", ""))
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), c); diff != "" {
		t.Fatalf("empty file must yield defaults (-want +got):\n%s", diff)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range []config.Mode{config.CorrelationMode, config.DistanceMode, config.ValueMode} {
		got, err := config.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "Mode(7)", config.Mode(7).String())
}
