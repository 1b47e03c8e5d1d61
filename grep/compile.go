package grep

import (
	"regexp"

	"github.com/dfgrep/dfgrep/expr"
)

// compileMatch builds the atomic predicate for one (pattern, column)
// pair.  Every atomic predicate is conjoined with a not-null check so
// null cells never match regardless of mode.
func compileMatch(col, pattern string, o Options) (expr.Expr, error) {
	var match expr.Expr
	switch {
	case o.Exact && o.Regex:
		// Anchor at both ends; the pattern itself is not escaped.
		anchored := "^(?:" + pattern + ")$"
		if err := checkPattern(anchored, pattern); err != nil {
			return nil, err
		}
		match = expr.Contains{Col: col, Pattern: anchored, CaseFold: o.IgnoreCase}
	case o.Exact:
		match = expr.Equals{Col: col, Pattern: pattern, CaseFold: o.IgnoreCase}
	case o.Regex:
		if err := checkPattern(pattern, pattern); err != nil {
			return nil, err
		}
		match = expr.Contains{Col: col, Pattern: pattern, CaseFold: o.IgnoreCase}
	default:
		match = expr.Contains{Col: col, Pattern: pattern, Literal: true, CaseFold: o.IgnoreCase}
	}
	return expr.And{X: match, Y: expr.Not{X: expr.IsNull{Col: col}}}, nil
}

// checkPattern validates a regexp eagerly so a bad pattern surfaces as
// a PatternError naming the original pattern, before any data access.
func checkPattern(compiled, original string) error {
	if _, err := regexp.Compile(compiled); err != nil {
		return &PatternError{Pattern: original, Err: err}
	}
	return nil
}

// assemble combines the atomic predicates for every pattern x column
// pair: OR across columns ("this pattern appears somewhere in this
// row"), then OR across patterns, then one trailing NOT when
// inverting.  The empty disjunction is false, so with nothing to match
// the net behavior after invert is "no rows" or "all rows".
func assemble(columns, patterns []string, o Options) (expr.Expr, error) {
	perPattern := make([]expr.Expr, 0, len(patterns))
	for _, pattern := range patterns {
		perColumn := make([]expr.Expr, 0, len(columns))
		for _, col := range columns {
			atom, err := compileMatch(col, pattern, o)
			if err != nil {
				return nil, err
			}
			perColumn = append(perColumn, atom)
		}
		perPattern = append(perPattern, anyOf(perColumn))
	}
	combined := anyOf(perPattern)
	if o.Invert {
		combined = expr.Not{X: combined}
	}
	return combined, nil
}

func anyOf(exprs []expr.Expr) expr.Expr {
	switch len(exprs) {
	case 0:
		return expr.Literal{B: false}
	case 1:
		return exprs[0]
	}
	return expr.AnyOf{Exprs: exprs}
}
