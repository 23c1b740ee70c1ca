// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/diffmaps/matrix"
)

// readPoints parses one point per CSV record (no header). Blank lines are
// skipped by encoding/csv; lines starting with '#' are comments.
func readPoints(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, _ := cr.FieldPos(j)
				return nil, fmt.Errorf("csv line %d field %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return matrix.NewDenseFromRows(rows)
}

// writePoints writes m as CSV with full float64 precision.
func writePoints(w io.Writer, m *matrix.Dense) error {
	cw := csv.NewWriter(w)
	rec := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.RowView(i) {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
