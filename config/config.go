// SPDX-License-Identifier: MIT

// Package config holds the run configuration of simmap: which methods to
// compute, how to scale and cluster them, where to write the plots.
//
// A Config is plain data as it comes from a file or flags. Validate resolves
// it into a Resolved value with typed enums; the pipeline only ever sees the
// Resolved form, one value per run and never shared mutable state.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simmap/cluster"
	"github.com/katalvlaran/simmap/internal/logging"
	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
	"github.com/katalvlaran/simmap/scale"
	"github.com/katalvlaran/simmap/similarity"
	"github.com/katalvlaran/simmap/table"
)

// Mode selects what the pipeline computes for each method.
type Mode int

const (
	// CorrelationMode draws the pairwise matrix, optionally reordered by clustering.
	CorrelationMode Mode = iota
	// DistanceMode clusters the distance matrix and also draws its dendrogram.
	DistanceMode
	// ValueMode draws the table itself with its columns clustered, and its
	// rows too when clustering is enabled. The method is the clustering metric.
	ValueMode
)

var modeNames = [...]string{CorrelationMode: "correlation", DistanceMode: "distance", ValueMode: "value"}

// DefaultMethod returns the method run when none is configured: euclidean in
// value mode, pearson otherwise.
func (m Mode) DefaultMethod() metric.Method {
	if m == ValueMode {
		return metric.Euclidean
	}

	return metric.Pearson
}

// String returns the mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode resolves a mode name.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%w %q (supported: correlation, distance, value)", ErrUnknownMode, name)
}

var (
	// ErrUnknownMode is returned for a mode other than correlation, distance or value.
	ErrUnknownMode = matrix.NewValidation("config: unknown mode")

	// ErrMissingInput is returned when no input table is named.
	ErrMissingInput = matrix.NewValidation("config: input is required")

	// ErrFocusBounds is returned when focus thresholds and the scale policy disagree.
	ErrFocusBounds = matrix.NewValidation("config: focus thresholds")

	// ErrBadValue is returned for a numeric or path setting outside its domain.
	ErrBadValue = matrix.NewValidation("config: invalid value")

	// ErrFormat is returned for a config file that cannot be decoded.
	ErrFormat = matrix.NewValidation("config: cannot decode file")
)

// Config is the user-facing configuration, as decoded from YAML, TOML or flags.
type Config struct {
	Input      string         `yaml:"input" toml:"input"`
	Mode       string         `yaml:"mode" toml:"mode"`
	Methods    []string       `yaml:"methods" toml:"methods"`
	Scale      string         `yaml:"scale" toml:"scale"`
	FocusMin   *float64       `yaml:"focus_min" toml:"focus_min"`
	FocusMax   *float64       `yaml:"focus_max" toml:"focus_max"`
	Dir        string         `yaml:"dir" toml:"dir"`
	Output     string         `yaml:"output" toml:"output"`
	Title      string         `yaml:"title" toml:"title"`
	Cluster    bool           `yaml:"cluster" toml:"cluster"`
	Linkage    string         `yaml:"linkage" toml:"linkage"`
	MinkowskiP float64        `yaml:"minkowski_p" toml:"minkowski_p"`
	Parallel   int            `yaml:"parallel" toml:"parallel"`
	Export     bool           `yaml:"export" toml:"export"`
	Filters    table.Filters  `yaml:"filters" toml:"filters"`
	Log        logging.Config `yaml:"log" toml:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Mode:       CorrelationMode.String(),
		Scale:      scale.Default.String(),
		Dir:        ".",
		Output:     "simmap",
		Linkage:    cluster.Average.String(),
		MinkowskiP: similarity.DefaultMinkowskiP,
		Parallel:   runtime.NumCPU(),
		Log:        logging.DefaultConfig(),
	}
}

// Load decodes the file at path on top of Default. The format follows the
// extension: .yaml or .yml, or .toml. Unknown keys are an error in both.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config.Load: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return c, fmt.Errorf("config.Load(%s): %w: %v", path, ErrFormat, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return c, fmt.Errorf("config.Load(%s): %w: %v", path, ErrFormat, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return c, fmt.Errorf("config.Load(%s): %w: unknown key %q", path, ErrFormat, undecoded[0].String())
		}
	default:
		return c, fmt.Errorf("config.Load(%s): %w: extension %q (want .yaml, .yml or .toml)", path, ErrFormat, ext)
	}

	return c, nil
}

// Resolved is a validated Config with every name resolved to its type.
// It is passed by value; Methods must be treated as read-only.
type Resolved struct {
	Input      string
	Mode       Mode
	Methods    []metric.Method
	Scale      scale.Config
	Dir        string
	Output     string
	Title      string
	Cluster    bool
	Linkage    cluster.Linkage
	MinkowskiP float64
	Parallel   int
	Export     bool
	Filters    table.Filters
	Log        logging.Config
}

// Validate resolves c. Every failure is of class matrix.ErrValidation and
// the first one found is returned.
//
// Rules:
//   - Input is required.
//   - Mode, Methods, Scale and Linkage must name supported values; Methods
//     must be free of duplicates. No methods means Mode.DefaultMethod.
//   - Under the focus policy both thresholds are required and FocusMin ≤
//     FocusMax. Under any other policy they must be unset.
//   - MinkowskiP must be finite and ≥ 1, Parallel ≥ 1, Output a plain file
//     name, filters in [0, 1], log level and format known.
func (c Config) Validate() (Resolved, error) {
	var r Resolved
	if c.Input == "" {
		return r, ErrMissingInput
	}
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return r, err
	}
	names := c.Methods
	if len(names) == 0 {
		names = []string{mode.DefaultMethod().String()}
	}
	methods, err := metric.ParseAll(names)
	if err != nil {
		return r, err
	}
	sc, err := c.scaleConfig()
	if err != nil {
		return r, err
	}
	link, err := cluster.ParseLinkage(c.Linkage)
	if err != nil {
		return r, err
	}
	if err = (similarity.Options{MinkowskiP: c.MinkowskiP}).Validate(); err != nil {
		return r, err
	}
	if c.Parallel < 1 {
		return r, fmt.Errorf("%w: parallel = %d, want >= 1", ErrBadValue, c.Parallel)
	}
	if c.Output == "" || c.Output != filepath.Base(c.Output) {
		return r, fmt.Errorf("%w: output %q must be a plain file name; use dir for the location", ErrBadValue, c.Output)
	}
	if err = c.Filters.Validate(); err != nil {
		return r, err
	}
	if err = c.Log.Validate(); err != nil {
		return r, err
	}
	dir := c.Dir
	if dir == "" {
		dir = "."
	}

	return Resolved{
		Input:      c.Input,
		Mode:       mode,
		Methods:    methods,
		Scale:      sc,
		Dir:        dir,
		Output:     c.Output,
		Title:      c.Title,
		Cluster:    c.Cluster,
		Linkage:    link,
		MinkowskiP: c.MinkowskiP,
		Parallel:   c.Parallel,
		Export:     c.Export,
		Filters:    c.Filters,
		Log:        c.Log,
	}, nil
}

func (c Config) scaleConfig() (scale.Config, error) {
	p, err := scale.ParsePolicy(c.Scale)
	if err != nil {
		return scale.Config{}, err
	}
	sc := scale.Config{Policy: p}
	if p != scale.Focus {
		if c.FocusMin != nil || c.FocusMax != nil {
			return sc, fmt.Errorf("%w: focus_min/focus_max need scale %q, got %q", ErrFocusBounds, scale.Focus, p)
		}

		return sc, nil
	}
	if c.FocusMin == nil || c.FocusMax == nil {
		return sc, fmt.Errorf("%w: scale %q needs both focus_min and focus_max", ErrFocusBounds, scale.Focus)
	}
	sc.FocusMin, sc.FocusMax = *c.FocusMin, *c.FocusMax

	return sc, sc.Validate()
}
