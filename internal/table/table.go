// Package table loads device exports into an in-memory column table keyed by
// header name. Missing cells are kept as absent values and each column settles
// on one representation after parsing.
package table

import (
	"errors"
	"fmt"
	"strconv"

	"switchports/internal"
)

var ErrNoColumns = errors.New("no columns to parse from file")

type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column '%s'", e.Column)
}

type Column struct {
	Name  string
	Kind  internal.ColumnKind
	Cells []internal.Cell
}

type Table struct {
	Format  internal.InputFormat
	columns []Column
	index   map[string]int
	rows    int
}

func newTable(format internal.InputFormat, columns []Column) *Table {
	t := &Table{Format: format, columns: columns, index: map[string]int{}}
	for i, c := range columns {
		t.index[c.Name] = i
		if len(c.Cells) > t.rows {
			t.rows = len(c.Cells)
		}
	}
	return t
}

func (t *Table) Len() int { return t.rows }

func (t *Table) Columns() []string {
	out := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		out = append(out, c.Name)
	}
	return out
}

func (t *Table) Column(name string) (*Column, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.columns[idx], true
}

// Require reports the first of names that is not a column header.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return &MissingColumnError{Column: name}
		}
	}
	return nil
}

// Row returns row i keyed by header name.
func (t *Table) Row(i int) map[string]internal.Cell {
	out := make(map[string]internal.Cell, len(t.columns))
	for _, c := range t.columns {
		out[c.Name] = c.Cell(i)
	}
	return out
}

func (c *Column) Cell(i int) internal.Cell {
	if i < 0 || i >= len(c.Cells) {
		return internal.Absent()
	}
	return c.Cells[i]
}

// normalizeHeaders names blank headers by position and suffixes repeated ones
// with ".1", ".2" and so on.
func normalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	seen := map[string]int{}
	for i, h := range raw {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for {
			if _, dup := seen[name]; !dup {
				break
			}
			seen[h]++
			name = h + "." + strconv.Itoa(seen[h])
		}
		seen[name] = 0
		out[i] = name
	}
	return out
}
