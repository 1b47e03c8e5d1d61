package grep

import (
	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/frame"
)

// matchMasks recomputes, per searched column, which individual cells
// of the already filtered, already materialized table match any
// pattern.  A row can be present (some column matched) while a given
// cell shows unmatched.  Row membership is never altered here.
func matchMasks(table frame.Table, columns, patterns []string, o Options) ([]frame.Mask, error) {
	schema := table.Schema()
	masks := make([]frame.Mask, 0, len(columns))
	for _, col := range columns {
		perPattern := make([]expr.Expr, 0, len(patterns))
		for _, pattern := range patterns {
			atom, err := compileMatch(col, pattern, o)
			if err != nil {
				return nil, err
			}
			perPattern = append(perPattern, atom)
		}
		filter, err := expr.CompileFilter(schema, anyOf(perPattern))
		if err != nil {
			return nil, err
		}
		cells := make([]bool, table.Len())
		for i := range cells {
			cells[i] = filter(table.Row(i))
		}
		masks = append(masks, frame.Mask{Column: col, Cells: cells})
	}
	return masks, nil
}

// MatchMasks exposes the per-cell mask computation for callers that
// drive a renderer directly (e.g. HTML output of an already filtered
// table).  Columns are resolved the same way Run resolves them, and
// whole-word preprocessing is applied identically.
func MatchMasks(table frame.Table, patterns []string, o Options) ([]frame.Mask, error) {
	columns, err := selectColumns(table.Schema(), o.Columns)
	if err != nil {
		return nil, err
	}
	if o.WholeWord {
		patterns = wholeWordPatterns(patterns)
		o.Regex = true
	}
	return matchMasks(table, columns, patterns, o)
}
