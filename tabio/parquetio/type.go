package parquetio

import (
	"fmt"
	"time"

	"github.com/dfgrep/dfgrep"
	"github.com/fraugster/parquet-go/parquet"
	"github.com/fraugster/parquet-go/parquetschema"
)

// column carries what Read needs to turn one raw parquet cell into a
// Value: the declared type plus, for timestamps, the unit recorded in
// the file's logical type.
type column struct {
	name   string
	typ    dfgrep.Type
	tsUnit time.Duration
}

func newColumns(children []*parquetschema.ColumnDefinition) ([]column, error) {
	cols := make([]column, 0, len(children))
	for _, cd := range children {
		c, err := newColumn(cd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cd.SchemaElement.Name, err)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func newColumn(cd *parquetschema.ColumnDefinition) (column, error) {
	se := cd.SchemaElement
	c := column{name: se.Name}
	if se.Type == nil {
		// Nested group: carried as preformatted text.
		c.typ = dfgrep.TypeOther
		return c, nil
	}
	switch *se.Type {
	case parquet.Type_BOOLEAN:
		c.typ = dfgrep.TypeBool
	case parquet.Type_INT32, parquet.Type_INT64:
		c.typ = dfgrep.TypeInt64
		if unit, ok := timestampUnit(se); ok {
			c.typ = dfgrep.TypeTime
			c.tsUnit = unit
		}
	case parquet.Type_FLOAT, parquet.Type_DOUBLE:
		c.typ = dfgrep.TypeFloat64
	case parquet.Type_BYTE_ARRAY, parquet.Type_FIXED_LEN_BYTE_ARRAY:
		c.typ = byteArrayType(se)
	default:
		// INT96 and anything else exotic.
		c.typ = dfgrep.TypeOther
	}
	return c, nil
}

func byteArrayType(se *parquet.SchemaElement) dfgrep.Type {
	if se.IsSetLogicalType() {
		switch l := se.LogicalType; {
		case l.IsSetSTRING(), l.IsSetJSON(), l.IsSetUUID():
			return dfgrep.TypeString
		case l.IsSetENUM():
			return dfgrep.TypeCategorical
		}
	}
	if se.IsSetConvertedType() {
		switch *se.ConvertedType {
		case parquet.ConvertedType_UTF8, parquet.ConvertedType_JSON:
			return dfgrep.TypeString
		case parquet.ConvertedType_ENUM:
			return dfgrep.TypeCategorical
		}
	}
	return dfgrep.TypeOther
}

func timestampUnit(se *parquet.SchemaElement) (time.Duration, bool) {
	if se.IsSetLogicalType() && se.LogicalType.IsSetTIMESTAMP() {
		switch unit := se.LogicalType.TIMESTAMP.Unit; {
		case unit.IsSetMILLIS():
			return time.Millisecond, true
		case unit.IsSetMICROS():
			return time.Microsecond, true
		case unit.IsSetNANOS():
			return time.Nanosecond, true
		}
	}
	if se.IsSetConvertedType() {
		switch *se.ConvertedType {
		case parquet.ConvertedType_TIMESTAMP_MILLIS:
			return time.Millisecond, true
		case parquet.ConvertedType_TIMESTAMP_MICROS:
			return time.Microsecond, true
		}
	}
	return 0, false
}

func (c column) value(raw any) dfgrep.Value {
	if raw == nil {
		return dfgrep.Null(c.typ)
	}
	switch c.typ {
	case dfgrep.TypeBool:
		if b, ok := raw.(bool); ok {
			return dfgrep.NewBool(b)
		}
	case dfgrep.TypeInt64:
		switch n := raw.(type) {
		case int32:
			return dfgrep.NewInt64(int64(n))
		case int64:
			return dfgrep.NewInt64(n)
		}
	case dfgrep.TypeFloat64:
		switch f := raw.(type) {
		case float32:
			return dfgrep.NewFloat64(float64(f))
		case float64:
			return dfgrep.NewFloat64(f)
		}
	case dfgrep.TypeTime:
		switch n := raw.(type) {
		case int32:
			return dfgrep.NewTime(time.Unix(0, int64(n)*int64(c.tsUnit)).UTC())
		case int64:
			return dfgrep.NewTime(time.Unix(0, n*int64(c.tsUnit)).UTC())
		}
	case dfgrep.TypeString, dfgrep.TypeCategorical:
		if b, ok := raw.([]byte); ok {
			if c.typ == dfgrep.TypeCategorical {
				return dfgrep.NewCategorical(string(b))
			}
			return dfgrep.NewString(string(b))
		}
	}
	return dfgrep.NewOther(fmt.Sprintf("%v", raw))
}
