// Package grep is the core of the repository: it compiles a search
// configuration into one boolean row predicate over the backend-
// agnostic expression algebra and executes it against an eager table
// or a deferred query, returning the result in the same representation
// class as the input.
package grep

import (
	"context"
	"regexp"

	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/view"
	"golang.org/x/exp/slices"
)

// Options configures one search.  The zero value means: search all
// string-like columns, case-sensitively, for a literal substring, and
// return the matching rows.
type Options struct {
	// Columns restricts the search to the named columns.  Empty means
	// all string-like columns.
	Columns []string
	// IgnoreCase selects case-insensitive matching.
	IgnoreCase bool
	// Regex treats patterns as regular expressions rather than literal
	// substrings.
	Regex bool
	// WholeWord constrains matches to whole words.  Each pattern is
	// regexp-escaped, wrapped in word-boundary anchors, and regexp mode
	// is forced on.
	WholeWord bool
	// Exact requires the whole cell to match: equality in literal
	// mode, both-ends anchoring in regexp mode.
	Exact bool
	// Invert returns the rows that do NOT match.
	Invert bool
	// Count returns the number of matching rows instead of the rows.
	Count bool
	// Highlight materializes the matching rows and returns a rendered
	// view with matching cells decorated.  Incompatible with Count.
	Highlight bool
}

// Result is the sum-typed outcome of Run: matching rows, a row count,
// or a rendered view.  Callers switch on the concrete type.
type Result interface {
	isResult()
}

// Rows holds the filtered frame in the input's representation class:
// a backend-native object when the input was native, a *frame.Frame
// otherwise; deferred when the input was deferred.
type Rows struct {
	Frame any
}

// Count is the number of matching rows.
type Count int64

// Rendered holds the decorated view produced by highlighting.
type Rendered struct {
	View view.View
}

func (Rows) isResult()     {}
func (Count) isResult()    {}
func (Rendered) isResult() {}

// Run searches df for the given patterns.  df may be a *frame.Frame, a
// frame.Table, a frame.Query, or any registered backend-native object
// (e.g. an arrow.Record).  The search matches a row when any pattern
// matches any selected column; null cells never match.  No input is
// ever mutated, and for a deferred input no data is read unless Count
// or Highlight forces execution.
func Run(ctx context.Context, df any, patterns []string, o Options) (Result, error) {
	if o.Count && o.Highlight {
		return nil, ConfigError("count and highlight are mutually exclusive")
	}
	if len(patterns) == 0 {
		return nil, ConfigError("no search pattern given")
	}
	patterns = slices.Clone(patterns)

	f, err := frame.Wrap(df)
	if err != nil {
		return nil, err
	}
	schema, err := f.Schema(ctx)
	if err != nil {
		return nil, err
	}
	columns, err := selectColumns(schema, o.Columns)
	if err != nil {
		return nil, err
	}
	if o.WholeWord {
		patterns = wholeWordPatterns(patterns)
		o.Regex = true
	}

	var predicate expr.Expr
	if len(columns) == 0 {
		// Nothing searchable: match nothing, flipped by invert.
		predicate = expr.Literal{B: o.Invert}
	} else {
		predicate, err = assemble(columns, patterns, o)
		if err != nil {
			return nil, err
		}
	}
	filtered := f.Filter(predicate)

	switch {
	case o.Count:
		n, err := filtered.Count(ctx)
		if err != nil {
			return nil, err
		}
		return Count(n), nil
	case o.Highlight:
		table, err := filtered.Collect(ctx)
		if err != nil {
			return nil, err
		}
		// Reuse the columns and flags resolved for filtering; the mask
		// is per cell and independent of the row-level OR.
		masks, err := matchMasks(table, columns, patterns, o)
		if err != nil {
			return nil, err
		}
		render, err := frame.LookupRenderer(table.Origin())
		if err != nil {
			return nil, err
		}
		v, err := render(table, masks)
		if err != nil {
			return nil, err
		}
		return Rendered{View: v}, nil
	}
	if f.IsDeferred() {
		return Rows{Frame: filtered.Unwrap()}, nil
	}
	table, err := filtered.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return Rows{Frame: f.UnwrapTable(table)}, nil
}

// wholeWordPatterns escapes each pattern and wraps it in word-boundary
// anchors, turning it into a regexp that matches the original text
// only as a whole word.
func wholeWordPatterns(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = `\b` + regexp.QuoteMeta(p) + `\b`
	}
	return out
}
