// Package arrowtab provides the eager backend over native Apache
// Arrow records.  Wrapping a record maps its schema onto the shared
// data model; filtering evaluates expressions column at a time against
// the arrow arrays and rebuilds a native record, so callers that pass
// an arrow.Record get an arrow.Record back.
package arrowtab

import (
	"fmt"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/view/htmltab"
)

func init() {
	frame.RegisterNativeWrapper(func(v any) (*frame.Frame, bool) {
		rec, ok := v.(arrow.Record)
		if !ok {
			return nil, false
		}
		return frame.NewEager(New(rec), true), true
	})
	frame.RegisterRenderer(frame.OriginArrow, htmltab.Render)
}

type Table struct {
	rec    arrow.Record
	schema *dfgrep.Schema
}

var _ frame.Table = (*Table)(nil)
var _ frame.Nativer = (*Table)(nil)

// New wraps a native arrow record.  The record's reference count is
// left to the caller; the table holds the record for its own lifetime.
func New(rec arrow.Record) *Table {
	return &Table{rec: rec, schema: SchemaOf(rec.Schema())}
}

// SchemaOf maps an arrow schema onto the shared data model.
func SchemaOf(s *arrow.Schema) *dfgrep.Schema {
	fields := s.Fields()
	cols := make([]dfgrep.Column, len(fields))
	for i, f := range fields {
		cols[i] = dfgrep.Column{Name: f.Name, Type: columnType(f.Type)}
	}
	return dfgrep.NewSchema(cols)
}

func (t *Table) Native() any { return t.rec }

func (t *Table) Schema() *dfgrep.Schema { return t.schema }

func (t *Table) Len() int { return int(t.rec.NumRows()) }

func (t *Table) Row(i int) dfgrep.Row {
	row := make(dfgrep.Row, t.schema.NumColumns())
	for j := range row {
		row[j] = t.cell(j, i)
	}
	return row
}

func (t *Table) Head(n int) frame.Table {
	if n < 0 || int64(n) > t.rec.NumRows() {
		return t
	}
	return &Table{rec: t.rec.NewSlice(0, int64(n)), schema: t.schema}
}

func (t *Table) Lazy() frame.Query { return &query{table: t} }

func (t *Table) NewReader() tabio.Reader { return &reader{table: t} }

func (t *Table) Origin() frame.Origin { return frame.OriginArrow }

type reader struct {
	table *Table
	i     int
}

func (r *reader) Schema() *dfgrep.Schema { return r.table.schema }

func (r *reader) Read() (dfgrep.Row, error) {
	if r.i >= r.table.Len() {
		return nil, nil
	}
	row := r.table.Row(r.i)
	r.i++
	return row, nil
}

func columnType(dt arrow.DataType) dfgrep.Type {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return dfgrep.TypeString
	case arrow.DICTIONARY:
		switch dt.(*arrow.DictionaryType).ValueType.ID() {
		case arrow.STRING, arrow.LARGE_STRING:
			return dfgrep.TypeCategorical
		}
		return dfgrep.TypeOther
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return dfgrep.TypeInt64
	case arrow.FLOAT32, arrow.FLOAT64:
		return dfgrep.TypeFloat64
	case arrow.BOOL:
		return dfgrep.TypeBool
	case arrow.TIMESTAMP:
		return dfgrep.TypeTime
	}
	return dfgrep.TypeOther
}

func (t *Table) cell(col, i int) dfgrep.Value {
	arr := t.rec.Column(col)
	typ := t.schema.Columns()[col].Type
	if arr.IsNull(i) {
		return dfgrep.Null(typ)
	}
	switch arr := arr.(type) {
	case *array.String:
		return dfgrep.NewString(arr.Value(i))
	case *array.LargeString:
		return dfgrep.NewString(arr.Value(i))
	case *array.Dictionary:
		if s, ok := dictValue(arr, i); ok {
			return dfgrep.NewCategorical(s)
		}
	case *array.Int8:
		return dfgrep.NewInt64(int64(arr.Value(i)))
	case *array.Int16:
		return dfgrep.NewInt64(int64(arr.Value(i)))
	case *array.Int32:
		return dfgrep.NewInt64(int64(arr.Value(i)))
	case *array.Int64:
		return dfgrep.NewInt64(arr.Value(i))
	case *array.Uint8:
		return dfgrep.NewInt64(int64(arr.Value(i)))
	case *array.Uint16:
		return dfgrep.NewInt64(int64(arr.Value(i)))
	case *array.Uint32:
		return dfgrep.NewInt64(int64(arr.Value(i)))
	case *array.Uint64:
		return dfgrep.NewInt64(int64(arr.Value(i)))
	case *array.Float32:
		return dfgrep.NewFloat64(float64(arr.Value(i)))
	case *array.Float64:
		return dfgrep.NewFloat64(arr.Value(i))
	case *array.Boolean:
		return dfgrep.NewBool(arr.Value(i))
	case *array.Timestamp:
		unit := arr.DataType().(*arrow.TimestampType).Unit
		return dfgrep.NewTime(arr.Value(i).ToTime(unit))
	}
	return dfgrep.NewOther(formatOther(arr, i))
}

type oneMarshaler interface {
	GetOneForMarshal(int) interface{}
}

func formatOther(arr arrow.Array, i int) string {
	if m, ok := arr.(oneMarshaler); ok {
		return fmt.Sprintf("%v", m.GetOneForMarshal(i))
	}
	return fmt.Sprintf("<%s>", arr.DataType())
}

func dictValue(arr *array.Dictionary, i int) (string, bool) {
	idx := arr.GetValueIndex(i)
	switch dict := arr.Dictionary().(type) {
	case *array.String:
		return dict.Value(idx), true
	case *array.LargeString:
		return dict.Value(idx), true
	}
	return "", false
}
