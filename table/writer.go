// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/simmap/matrix"
)

// Write emits sq as a tab-separated table: a header of labels preceded by an
// empty corner cell, then one labelled line per row. Values use the shortest
// representation that parses back to the same float64.
func Write(w io.Writer, sq *matrix.Square) error {
	if sq == nil {
		return fmt.Errorf("Write: %w", matrix.ErrNilMatrix)
	}
	labels := sq.Labels()
	n := len(labels)
	vals := sq.Values()
	if err := writeGrid(w, labels, labels, func(i int) ([]float64, error) {
		return vals[i*n : (i+1)*n], nil
	}); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteTable emits t in the layout of Write, with the row names as line
// labels. The output reads back with Read.
func WriteTable(w io.Writer, t *matrix.Table) error {
	if t == nil {
		return fmt.Errorf("WriteTable: %w", matrix.ErrNilMatrix)
	}
	if err := writeGrid(w, t.RowNames(), t.ColNames(), t.Row); err != nil {
		return fmt.Errorf("WriteTable: %w", err)
	}

	return nil
}

// writeGrid writes the header, then one line per row label with the values
// returned by row.
func writeGrid(w io.Writer, rowLabels, colLabels []string, row func(i int) ([]float64, error)) error {
	bw := bufio.NewWriter(w)
	for _, l := range colLabels {
		bw.WriteByte('\t')
		bw.WriteString(l)
	}
	bw.WriteByte('\n')

	buf := make([]byte, 0, 32)
	for i, l := range rowLabels {
		vals, err := row(i)
		if err != nil {
			return err
		}
		bw.WriteString(l)
		for _, v := range vals {
			bw.WriteByte('\t')
			buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
