// Package tableio writes rows as an aligned text table with an
// uppercased header, suitable for terminals.
package tableio

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dfgrep/dfgrep"
)

type Writer struct {
	writer io.WriteCloser
	table  *tabwriter.Writer
	schema *dfgrep.Schema
	header bool
}

func NewWriter(w io.WriteCloser, schema *dfgrep.Schema) *Writer {
	return &Writer{
		writer: w,
		table:  tabwriter.NewWriter(w, 0, 8, 1, ' ', 0),
		schema: schema,
	}
}

func (w *Writer) writeHeader() error {
	names := make([]string, 0, w.schema.NumColumns())
	for _, col := range w.schema.Columns() {
		names = append(names, strings.ToUpper(col.Name))
	}
	_, err := fmt.Fprintln(w.table, strings.Join(names, "\t"))
	return err
}

func (w *Writer) Write(row dfgrep.Row) error {
	if !w.header {
		if err := w.writeHeader(); err != nil {
			return err
		}
		w.header = true
	}
	ss := make([]string, 0, len(row))
	for _, v := range row {
		ss = append(ss, v.Text())
	}
	_, err := fmt.Fprintf(w.table, "%s\n", strings.Join(ss, "\t"))
	return err
}

func (w *Writer) Flush() error {
	return w.table.Flush()
}

func (w *Writer) Close() error {
	err := w.table.Flush()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}
