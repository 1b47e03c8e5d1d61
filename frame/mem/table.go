// Package mem provides the in-memory eager backend: a Table of rows
// held in process, plus a deferred query form whose filter and head
// steps stack without executing.
package mem

import (
	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/view/ansitab"
)

func init() {
	frame.RegisterRenderer(frame.OriginMem, ansitab.Render)
}

type Table struct {
	schema *dfgrep.Schema
	rows   []dfgrep.Row
}

var _ frame.Table = (*Table)(nil)

func NewTable(schema *dfgrep.Schema, rows []dfgrep.Row) *Table {
	return &Table{schema: schema, rows: rows}
}

func (t *Table) Schema() *dfgrep.Schema { return t.schema }

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Row(i int) dfgrep.Row { return t.rows[i] }

func (t *Table) Head(n int) frame.Table {
	if n < 0 || n > len(t.rows) {
		n = len(t.rows)
	}
	return &Table{schema: t.schema, rows: t.rows[:n]}
}

func (t *Table) Lazy() frame.Query { return &query{table: t} }

func (t *Table) NewReader() tabio.Reader { return &reader{table: t} }

func (t *Table) Origin() frame.Origin { return frame.OriginMem }

type reader struct {
	table *Table
	i     int
}

func (r *reader) Schema() *dfgrep.Schema { return r.table.schema }

func (r *reader) Read() (dfgrep.Row, error) {
	if r.i >= len(r.table.rows) {
		return nil, nil
	}
	row := r.table.rows[r.i]
	r.i++
	return row, nil
}

// Builder accumulates rows into a Table.  It implements tabio.Writer
// so a deferred query can collect into it.
type Builder struct {
	schema *dfgrep.Schema
	rows   []dfgrep.Row
}

func NewBuilder(schema *dfgrep.Schema) *Builder {
	return &Builder{schema: schema}
}

func (b *Builder) Write(row dfgrep.Row) error {
	b.rows = append(b.rows, row)
	return nil
}

func (b *Builder) Table() *Table {
	return NewTable(b.schema, b.rows)
}

// StringTable builds a table of string columns from parallel value
// slices, a convenience for callers and tests.  Every cell is a
// non-null string; build with NewTable directly when nulls are needed.
func StringTable(names []string, columns ...[]string) *Table {
	cols := make([]dfgrep.Column, len(names))
	for i, name := range names {
		cols[i] = dfgrep.Column{Name: name, Type: dfgrep.TypeString}
	}
	schema := dfgrep.NewSchema(cols)
	var n int
	if len(columns) > 0 {
		n = len(columns[0])
	}
	rows := make([]dfgrep.Row, n)
	for i := range rows {
		row := make(dfgrep.Row, len(columns))
		for j, col := range columns {
			row[j] = dfgrep.NewString(col[i])
		}
		rows[i] = row
	}
	return NewTable(schema, rows)
}
