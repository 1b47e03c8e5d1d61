package dfgrep

// Type is the declared semantic type of a column.  The set is closed:
// anything a reader cannot map onto one of the concrete types is carried
// as TypeOther with a preformatted text value.
type Type int

const (
	TypeNull Type = iota
	TypeString
	TypeCategorical
	TypeInt64
	TypeFloat64
	TypeBool
	TypeTime
	TypeOther
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeCategorical:
		return "categorical"
	case TypeInt64:
		return "int64"
	case TypeFloat64:
		return "float64"
	case TypeBool:
		return "bool"
	case TypeTime:
		return "time"
	case TypeOther:
		return "other"
	}
	return "unknown"
}

// IsStringy reports whether values of type t hold searchable text,
// i.e., whether a column of this type is included in an implicit
// all-string-columns search.
func IsStringy(t Type) bool {
	return t == TypeString || t == TypeCategorical
}
