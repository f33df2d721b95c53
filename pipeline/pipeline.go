// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simmap/cluster"
	"github.com/katalvlaran/simmap/config"
	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
	"github.com/katalvlaran/simmap/scale"
	"github.com/katalvlaran/simmap/similarity"
	"github.com/katalvlaran/simmap/table"
)

// dirPerm is the mode of a created output directory.
const dirPerm = 0o755

// Renderer draws the plots of one method. Implementations must be safe for
// concurrent use; render.PNG is.
type Renderer interface {
	Heatmap(w io.Writer, sq *matrix.Square, b scale.Bounds, title string) error
	Values(w io.Writer, t *matrix.Table, b scale.Bounds, title string) error
	Dendrogram(w io.Writer, t *cluster.Tree, title string) error
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger for progress and failures. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// runner carries the immutable inputs shared by all method tasks.
type runner struct {
	cfg  config.Resolved
	tb   *matrix.Table
	rend Renderer
	log  *zap.Logger
}

// Run executes every method of cfg over tb and renders the plots into cfg.Dir,
// creating the directory when missing.
//
// Methods run concurrently, at most cfg.Parallel at a time. A method that
// fails is recorded in its Result and the others carry on. Cancelling ctx
// stops methods that have not started yet; they fail with the context error.
//
// The returned Summary always holds one Result per method when the run
// started. The error is Summary.Err(), or the reason the run could not start.
func Run(ctx context.Context, cfg config.Resolved, tb *matrix.Table, rend Renderer, opts ...Option) (*Summary, error) {
	if tb == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilTable)
	}
	if rend == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilRenderer)
	}
	r := &runner{cfg: cfg, tb: tb, rend: rend, log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if err := os.MkdirAll(cfg.Dir, dirPerm); err != nil {
		return nil, fmt.Errorf("Run: output dir: %w", err)
	}

	r.log.Info("run started",
		zap.String("mode", cfg.Mode.String()),
		zap.Int("methods", len(cfg.Methods)),
		zap.Int("rows", tb.Rows()),
		zap.Int("cols", tb.Cols()),
		zap.Int("parallel", cfg.Parallel),
	)

	sum := &Summary{Results: make([]Result, len(cfg.Methods))}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallel, 1))
	for i, m := range cfg.Methods {
		i, m := i, m
		g.Go(func() error {
			sum.Results[i] = r.method(gctx, m)

			return nil
		})
	}
	_ = g.Wait() // tasks never return an error

	err := sum.Err()
	r.log.Info("run finished", zap.Int("succeeded", len(sum.Succeeded())), zap.Int("failed", len(sum.Failed())))

	return sum, err
}

// method runs one method end to end and never panics on bad input.
func (r *runner) method(ctx context.Context, m metric.Method) Result {
	start := time.Now()
	res := Result{Method: m}
	log := r.log.With(zap.String("method", m.String()))

	var err error
	if err = ctx.Err(); err == nil {
		switch r.cfg.Mode {
		case config.DistanceMode:
			err = r.distance(m, &res)
		case config.ValueMode:
			err = r.values(m, &res)
		default:
			err = r.correlation(m, &res)
		}
	}
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", m, err)
		log.Error("method failed", zap.Error(err), zap.Duration("took", res.Duration))

		return res
	}
	log.Info("method done",
		zap.Strings("files", res.Files),
		zap.Stringer("bounds", res.Bounds),
		zap.Duration("took", res.Duration),
	)

	return res
}

// correlation draws the pairwise matrix of m, reordered by clustering when
// enabled. Distance methods reached here are scaled tight.
func (r *runner) correlation(m metric.Method, res *Result) error {
	sq, err := similarity.Compute(r.tb, m, r.similarityOptions()...)
	if err != nil {
		return err
	}
	sc := r.cfg.Scale
	if !m.IsCorrelation() {
		sc = scale.Config{Policy: scale.Tight}
	}
	if res.Bounds, err = scale.Compute(sq, sc); err != nil {
		return err
	}

	if r.cfg.Cluster {
		d := sq
		if m.IsCorrelation() {
			if d, err = similarity.OneMinus(sq); err != nil {
				return err
			}
		}
		tree, err := cluster.Cluster(d, cluster.WithLinkage(r.cfg.Linkage))
		if err != nil {
			return err
		}
		if sq, err = sq.Reorder(tree.Order()); err != nil {
			return err
		}
	}
	res.Order = sq.Labels()

	return r.emit(m, sq, nil, res)
}

// distance clusters the distance matrix of m and draws both the reordered
// heatmap, scaled tight, and the dendrogram.
func (r *runner) distance(m metric.Method, res *Result) error {
	d, err := similarity.Distance(r.tb, m, r.similarityOptions()...)
	if err != nil {
		return err
	}
	tree, err := cluster.Cluster(d, cluster.WithLinkage(r.cfg.Linkage))
	if err != nil {
		return err
	}
	if d, err = d.Reorder(tree.Order()); err != nil {
		return err
	}
	if res.Bounds, err = scale.Compute(d, scale.Config{Policy: scale.Tight}); err != nil {
		return err
	}
	res.Order = d.Labels()

	return r.emit(m, d, tree, res)
}

// values clusters the columns of the table under m, and its rows when
// clustering is enabled, then draws the reordered table scaled tight with the
// column dendrogram and, for clustered rows, the row dendrogram.
func (r *runner) values(m metric.Method, res *Result) error {
	cols, err := r.tree(r.tb, m)
	if err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	var rows *cluster.Tree
	var rowOrder []int
	if r.cfg.Cluster {
		tr, err := r.tb.Transpose()
		if err != nil {
			return fmt.Errorf("rows: %w", err)
		}
		if rows, err = r.tree(tr, m); err != nil {
			return fmt.Errorf("rows: %w", err)
		}
		rowOrder = rows.Order()
	}
	tb, err := r.tb.Reorder(rowOrder, cols.Order())
	if err != nil {
		return err
	}
	if res.Bounds, err = scale.ComputeTable(tb, scale.Config{Policy: scale.Tight}); err != nil {
		return err
	}
	res.Order = tb.ColNames()
	if rows != nil {
		res.RowOrder = tb.RowNames()
	}

	title := r.title(m)
	if err = r.save(res, HeatmapName(r.cfg.Output, m), func(w io.Writer) error {
		return r.rend.Values(w, tb, res.Bounds, title)
	}); err != nil {
		return err
	}
	if err = r.save(res, DendrogramName(r.cfg.Output, m), func(w io.Writer) error {
		return r.rend.Dendrogram(w, cols, title)
	}); err != nil {
		return err
	}
	if rows != nil {
		if err = r.save(res, RowDendrogramName(r.cfg.Output, m), func(w io.Writer) error {
			return r.rend.Dendrogram(w, rows, title)
		}); err != nil {
			return err
		}
	}
	if r.cfg.Export {
		return r.save(res, ExportName(r.cfg.Output, m), func(w io.Writer) error {
			return table.WriteTable(w, tb)
		})
	}

	return nil
}

// tree clusters the columns of tb on the distance of m.
func (r *runner) tree(tb *matrix.Table, m metric.Method) (*cluster.Tree, error) {
	d, err := similarity.Distance(tb, m, r.similarityOptions()...)
	if err != nil {
		return nil, err
	}

	return cluster.Cluster(d, cluster.WithLinkage(r.cfg.Linkage))
}

// emit writes the heatmap, the dendrogram when tree is set, and the export
// when enabled, appending each path to res.Files.
func (r *runner) emit(m metric.Method, sq *matrix.Square, tree *cluster.Tree, res *Result) error {
	title := r.title(m)
	if err := r.save(res, HeatmapName(r.cfg.Output, m), func(w io.Writer) error {
		return r.rend.Heatmap(w, sq, res.Bounds, title)
	}); err != nil {
		return err
	}
	if tree != nil {
		if err := r.save(res, DendrogramName(r.cfg.Output, m), func(w io.Writer) error {
			return r.rend.Dendrogram(w, tree, title)
		}); err != nil {
			return err
		}
	}
	if r.cfg.Export {
		return r.save(res, ExportName(r.cfg.Output, m), func(w io.Writer) error {
			return table.Write(w, sq)
		})
	}

	return nil
}

// save writes one output file and records its path in res.Files.
func (r *runner) save(res *Result, name string, fill func(w io.Writer) error) error {
	path, err := writeFile(r.cfg.Dir, name, fill)
	if err != nil {
		return err
	}
	res.Files = append(res.Files, path)

	return nil
}

func (r *runner) similarityOptions() []similarity.Option {
	if r.cfg.MinkowskiP == 0 {
		return nil
	}

	return []similarity.Option{similarity.WithMinkowskiP(r.cfg.MinkowskiP)}
}

// title is the configured title followed by the method, or the method alone.
func (r *runner) title(m metric.Method) string {
	if r.cfg.Title == "" {
		return m.String()
	}

	return r.cfg.Title + " (" + m.String() + ")"
}
