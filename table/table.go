// Package table parses delimiter-separated tabular bytes into a
// column-addressable, row-ordered table.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedTable = errors.New("malformed tabular data")

type Table struct {
	labels []string
	index  map[string]int
	rows   [][]string
}

// Parse reads a delimited table whose first record carries the column
// labels. Labels are stripped of surrounding whitespace: the source format
// pads them with a space after the delimiter. Rows keep the original file
// order, so the chronologically latest observation is the last row.
func Parse(raw []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	records, err := reader.ReadAll()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no label row", ErrMalformedTable)
	}

	labels := make([]string, len(records[0]))
	index := make(map[string]int, len(records[0]))

	for i, label := range records[0] {
		labels[i] = strings.TrimSpace(label)
		index[labels[i]] = i
	}

	return &Table{
		labels: labels,
		index:  index,
		rows:   records[1:],
	}, nil
}

// Len returns the number of data rows, excluding the label row.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Labels() []string {
	return t.labels
}

func (t *Table) HasColumn(label string) bool {
	_, ok := t.index[label]

	return ok
}

// LastRow returns the final data row.
func (t *Table) LastRow() ([]string, error) {
	if len(t.rows) == 0 {
		return nil, fmt.Errorf("%w: table has no data rows", ErrMalformedTable)
	}

	return t.rows[len(t.rows)-1], nil
}

// Column returns every cell of the labeled column in row order.
func (t *Table) Column(label string) ([]string, bool) {
	i, ok := t.index[label]

	if !ok {
		return nil, false
	}

	column := make([]string, 0, len(t.rows))

	for _, row := range t.rows {
		column = append(column, row[i])
	}

	return column, true
}

// Cell returns the value of the labeled column in the given row.
func (t *Table) Cell(row int, label string) (string, bool) {
	i, ok := t.index[label]

	if !ok || row < 0 || row >= len(t.rows) {
		return "", false
	}

	return t.rows[row][i], true
}
