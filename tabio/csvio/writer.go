// Package csvio writes rows as delimited text with a header line.
// The delimiter is configurable so the same writer serves CSV and TSV.
package csvio

import (
	"encoding/csv"
	"io"

	"github.com/dfgrep/dfgrep"
)

type WriterOpts struct {
	Delim rune
}

type Writer struct {
	writer  io.WriteCloser
	encoder *csv.Writer
	schema  *dfgrep.Schema
	header  bool
	strings []string
}

func NewWriter(w io.WriteCloser, schema *dfgrep.Schema, opts WriterOpts) *Writer {
	encoder := csv.NewWriter(w)
	if opts.Delim != 0 {
		encoder.Comma = opts.Delim
	}
	return &Writer{
		writer:  w,
		encoder: encoder,
		schema:  schema,
	}
}

func (w *Writer) Write(row dfgrep.Row) error {
	if !w.header {
		var hdr []string
		for _, col := range w.schema.Columns() {
			hdr = append(hdr, col.Name)
		}
		if err := w.encoder.Write(hdr); err != nil {
			return err
		}
		w.header = true
	}
	w.strings = w.strings[:0]
	for _, v := range row {
		w.strings = append(w.strings, v.Text())
	}
	return w.encoder.Write(w.strings)
}

func (w *Writer) Flush() error {
	w.encoder.Flush()
	return w.encoder.Error()
}

func (w *Writer) Close() error {
	w.encoder.Flush()
	err := w.encoder.Error()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}
