package expr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dfgrep/dfgrep"
)

// Filter is a compiled row predicate.
type Filter func(dfgrep.Row) bool

func LogicalAnd(left, right Filter) Filter {
	return func(r dfgrep.Row) bool { return left(r) && right(r) }
}

func LogicalOr(left, right Filter) Filter {
	return func(r dfgrep.Row) bool { return left(r) || right(r) }
}

func LogicalNot(f Filter) Filter {
	return func(r dfgrep.Row) bool { return !f(r) }
}

// CompileFilter resolves column references in e against schema and
// returns a predicate over rows of that schema.  Compilation is the
// only point where regexps are built and column positions looked up;
// evaluating the returned Filter does no further allocation.
func CompileFilter(schema *dfgrep.Schema, e Expr) (Filter, error) {
	switch e := e.(type) {
	case Literal:
		b := e.B
		return func(dfgrep.Row) bool { return b }, nil
	case Not:
		f, err := CompileFilter(schema, e.X)
		if err != nil {
			return nil, err
		}
		return LogicalNot(f), nil
	case And:
		left, err := CompileFilter(schema, e.X)
		if err != nil {
			return nil, err
		}
		right, err := CompileFilter(schema, e.Y)
		if err != nil {
			return nil, err
		}
		return LogicalAnd(left, right), nil
	case Or:
		left, err := CompileFilter(schema, e.X)
		if err != nil {
			return nil, err
		}
		right, err := CompileFilter(schema, e.Y)
		if err != nil {
			return nil, err
		}
		return LogicalOr(left, right), nil
	case AnyOf:
		filters := make([]Filter, 0, len(e.Exprs))
		for _, sub := range e.Exprs {
			f, err := CompileFilter(schema, sub)
			if err != nil {
				return nil, err
			}
			filters = append(filters, f)
		}
		return func(r dfgrep.Row) bool {
			for _, f := range filters {
				if f(r) {
					return true
				}
			}
			return false
		}, nil
	case IsNull:
		slot, err := lookup(schema, e.Col)
		if err != nil {
			return nil, err
		}
		return func(r dfgrep.Row) bool { return r[slot].IsNull() }, nil
	case Equals:
		slot, err := lookup(schema, e.Col)
		if err != nil {
			return nil, err
		}
		pattern := e.Pattern
		if e.CaseFold {
			return func(r dfgrep.Row) bool {
				v := r[slot]
				return !v.IsNull() && strings.EqualFold(v.Text(), pattern)
			}, nil
		}
		return func(r dfgrep.Row) bool {
			v := r[slot]
			return !v.IsNull() && v.Text() == pattern
		}, nil
	case Contains:
		return compileContains(schema, e)
	}
	return nil, fmt.Errorf("unknown expression type %T", e)
}

func compileContains(schema *dfgrep.Schema, e Contains) (Filter, error) {
	slot, err := lookup(schema, e.Col)
	if err != nil {
		return nil, err
	}
	if e.Literal {
		pattern := e.Pattern
		if e.CaseFold {
			return func(r dfgrep.Row) bool {
				v := r[slot]
				return !v.IsNull() && containsFold(v.Text(), pattern)
			}, nil
		}
		return func(r dfgrep.Row) bool {
			v := r[slot]
			return !v.IsNull() && strings.Contains(v.Text(), pattern)
		}, nil
	}
	pattern := e.Pattern
	if e.CaseFold {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", e.Pattern, err)
	}
	return func(r dfgrep.Row) bool {
		v := r[slot]
		return !v.IsNull() && re.MatchString(v.Text())
	}, nil
}

func lookup(schema *dfgrep.Schema, col string) (int, error) {
	slot, ok := schema.Lookup(col)
	if !ok {
		return 0, fmt.Errorf("column %q: not present in schema %s", col, schema)
	}
	return slot, nil
}

// containsFold is like strings.Contains but with case-insensitive
// comparison, scanning a fold window rather than lowercasing either
// side.
func containsFold(a, b string) bool {
	alen := len(a)
	blen := len(b)
	if blen > alen {
		return false
	}
	end := alen - blen + 1
	for i := 0; i < end; i++ {
		if strings.EqualFold(a[i:i+blen], b) {
			return true
		}
	}
	return false
}
