package grep

import (
	"github.com/agnivade/levenshtein"
	"github.com/dfgrep/dfgrep"
)

// selectColumns resolves the set of columns to search: the explicit
// list when given, else every string-like column in schema order.
// Explicit names fail fast here rather than surfacing later as an
// opaque compile error.
func selectColumns(schema *dfgrep.Schema, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		for _, name := range explicit {
			i, ok := schema.Lookup(name)
			if !ok {
				return nil, &SchemaError{
					Column:     name,
					Reason:     "does not exist",
					Suggestion: closestColumn(schema, name),
				}
			}
			if typ := schema.Columns()[i].Type; !dfgrep.IsStringy(typ) {
				return nil, &SchemaError{
					Column: name,
					Reason: "is not a string column (type " + typ.String() + ")",
				}
			}
		}
		return explicit, nil
	}
	var cols []string
	for _, c := range schema.Columns() {
		if dfgrep.IsStringy(c.Type) {
			cols = append(cols, c.Name)
		}
	}
	return cols, nil
}

// closestColumn suggests the schema column nearest to name, or ""
// when nothing is plausibly close.
func closestColumn(schema *dfgrep.Schema, name string) string {
	best, bestDist := "", len(name)/2+1
	for _, c := range schema.Columns() {
		if d := levenshtein.ComputeDistance(name, c.Name); d < bestDist {
			best, bestDist = c.Name, d
		}
	}
	return best
}
