// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/simmap/matrix"
)

// maxLineBytes bounds one input line; wide tables easily exceed bufio's 64 KiB default.
const maxLineBytes = 16 << 20

// commentPrefix marks a line that is skipped entirely.
const commentPrefix = "#"

// Read parses a whitespace-separated table from r.
//
// Errors: ErrNoHeader, ErrNoRows, ErrRagged, *ParseError (unwraps to ErrParse),
// the label errors of matrix.NewTable, and read errors from r.
func Read(r io.Reader) (*matrix.Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	var (
		header   []string
		rowNames []string
		rows     [][]float64
		labelled bool
		line     int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		fields := strings.Fields(text)
		if header == nil {
			header = fields

			continue
		}

		c := len(header)
		switch {
		case len(rows) == 0 && len(fields) == c+1:
			labelled = true
		case len(rows) == 0 && len(fields) == c:
		case labelled && len(fields) == c+1, !labelled && len(fields) == c:
		default:
			want := c
			if labelled {
				want = c + 1
			}

			return nil, fmt.Errorf("Read: line %d has %d fields, want %d: %w", line, len(fields), want, ErrRagged)
		}
		if labelled {
			rowNames = append(rowNames, fields[0])
			fields = fields[1:]
		}

		row := make([]float64, c)
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("Read: %w", &ParseError{Line: line, Column: header[j], Text: f})
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: line %d: %w", line+1, err)
	}
	if header == nil {
		return nil, fmt.Errorf("Read: %w", ErrNoHeader)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Read: %d columns: %w", len(header), ErrNoRows)
	}

	t, err := matrix.NewTable(rowNames, header, rows)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return t, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*matrix.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
