// Package ndjsonio writes one JSON object per row, one row per line,
// preserving schema column order in each object.
package ndjsonio

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/dfgrep/dfgrep"
)

type Writer struct {
	writer io.WriteCloser
	schema *dfgrep.Schema
	buf    bytes.Buffer
}

func NewWriter(w io.WriteCloser, schema *dfgrep.Schema) *Writer {
	return &Writer{writer: w, schema: schema}
}

func (w *Writer) Write(row dfgrep.Row) error {
	w.buf.Reset()
	w.buf.WriteByte('{')
	for i, col := range w.schema.Columns() {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		name, err := json.Marshal(col.Name)
		if err != nil {
			return err
		}
		w.buf.Write(name)
		w.buf.WriteByte(':')
		if err := w.appendValue(row[i]); err != nil {
			return err
		}
	}
	w.buf.WriteString("}\n")
	_, err := w.writer.Write(w.buf.Bytes())
	return err
}

// appendValue encodes v by hand rather than through a map so that
// column order survives.
func (w *Writer) appendValue(v dfgrep.Value) error {
	if v.IsNull() {
		w.buf.WriteString("null")
		return nil
	}
	switch v.Type() {
	case dfgrep.TypeInt64:
		w.buf.WriteString(strconv.FormatInt(v.Int64(), 10))
	case dfgrep.TypeFloat64:
		b, err := json.Marshal(v.Float64())
		if err != nil {
			return err
		}
		w.buf.Write(b)
	case dfgrep.TypeBool:
		w.buf.WriteString(strconv.FormatBool(v.Bool()))
	default:
		b, err := json.Marshal(v.Text())
		if err != nil {
			return err
		}
		w.buf.Write(b)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
