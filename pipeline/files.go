// SPDX-License-Identifier: MIT

package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/simmap/metric"
)

// File name suffixes.
const (
	heatmapSuffix    = ".png"
	dendrogramSuffix = "_dendogram.png"
	rowTreeSuffix    = "_rows_dendogram.png"
	exportSuffix     = ".tsv"
)

// filePerm is the mode of every written file; temporary files start at 0600.
const filePerm = 0o644

// HeatmapName returns the heatmap file name of method m.
func HeatmapName(output string, m metric.Method) string {
	return output + "_" + m.String() + heatmapSuffix
}

// DendrogramName returns the dendrogram file name of method m.
func DendrogramName(output string, m metric.Method) string {
	return output + "_" + m.String() + dendrogramSuffix
}

// RowDendrogramName returns the row dendrogram file name of method m in
// value mode.
func RowDendrogramName(output string, m metric.Method) string {
	return output + "_" + m.String() + rowTreeSuffix
}

// ExportName returns the matrix export file name of method m.
func ExportName(output string, m metric.Method) string {
	return output + "_" + m.String() + exportSuffix
}

// writeFile streams fill into dir/name through a temporary file in dir that
// is renamed into place only after fill and the close succeed.
func writeFile(dir, name string, fill func(w io.Writer) error) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	fail := func(err error) (string, error) {
		f.Close()
		os.Remove(tmp)

		return "", fmt.Errorf("write %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err = fill(bw); err != nil {
		return fail(err)
	}
	if err = bw.Flush(); err != nil {
		return fail(err)
	}
	if err = f.Chmod(filePerm); err != nil {
		return fail(err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)

		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)

		return "", fmt.Errorf("rename %s: %w", path, err)
	}

	return path, nil
}
