package dfgrep

import "strings"

// Column is one named, typed column of a schema.
type Column struct {
	Name string
	Type Type
}

// Schema is an ordered set of uniquely named columns with O(1) lookup
// by name.  A Schema is read-only once built.
type Schema struct {
	columns []Column
	lut     map[string]int
}

func NewSchema(columns []Column) *Schema {
	lut := make(map[string]int, len(columns))
	for i, c := range columns {
		lut[c.Name] = i
	}
	return &Schema{columns: columns, lut: lut}
}

func (s *Schema) Columns() []Column { return s.columns }

func (s *Schema) NumColumns() int { return len(s.columns) }

// Lookup returns the position of the named column and whether it exists.
func (s *Schema) Lookup(name string) (int, bool) {
	i, ok := s.lut[name]
	return i, ok
}

func (s *Schema) Equal(other *Schema) bool {
	if len(s.columns) != len(other.columns) {
		return false
	}
	for i, c := range s.columns {
		if other.columns[i] != c {
			return false
		}
	}
	return true
}

func (s *Schema) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Name)
		b.WriteByte(':')
		b.WriteString(c.Type.String())
	}
	b.WriteByte('}')
	return b.String()
}
