package dfgrep

import (
	"strconv"
	"time"
)

// Value is a single cell: a type tag, a null flag, and a scalar payload.
// Values are immutable.  The zero Value is a null of TypeNull.
type Value struct {
	typ  Type
	null bool
	str  string
	i    int64
	f    float64
	b    bool
	t    time.Time
}

func NewString(s string) Value      { return Value{typ: TypeString, str: s} }
func NewCategorical(s string) Value { return Value{typ: TypeCategorical, str: s} }
func NewInt64(i int64) Value        { return Value{typ: TypeInt64, i: i} }
func NewFloat64(f float64) Value    { return Value{typ: TypeFloat64, f: f} }
func NewBool(b bool) Value          { return Value{typ: TypeBool, b: b} }
func NewTime(t time.Time) Value     { return Value{typ: TypeTime, t: t} }

// NewOther carries a value of a type the data model doesn't represent
// directly as its preformatted text form.
func NewOther(s string) Value { return Value{typ: TypeOther, str: s} }

// Null returns the null value of the given type.
func Null(t Type) Value { return Value{typ: t, null: true} }

func (v Value) Type() Type   { return v.typ }
func (v Value) IsNull() bool { return v.null }

// StringOf returns the string payload for stringy and other-typed values.
func (v Value) StringOf() string { return v.str }

func (v Value) Int64() int64     { return v.i }
func (v Value) Float64() float64 { return v.f }
func (v Value) Bool() bool       { return v.b }
func (v Value) Time() time.Time  { return v.t }

// Text returns the canonical text form of the value: the string payload
// for stringy values and the formatted form otherwise.  Null values
// format as the empty string.
func (v Value) Text() string {
	if v.null {
		return ""
	}
	switch v.typ {
	case TypeString, TypeCategorical, TypeOther:
		return v.str
	case TypeInt64:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeTime:
		return v.t.Format(time.RFC3339Nano)
	}
	return ""
}
