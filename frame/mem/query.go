package mem

import (
	"context"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/tabio"
)

// query is the deferred form of a Table.  Steps stack without
// executing; each Open compiles the filter chain afresh so repeated
// execution is independent and consistent.
type query struct {
	table *Table
	steps []step
}

type step struct {
	filter expr.Expr // nil for a head step
	head   int
}

var _ frame.Query = (*query)(nil)

func (q *query) Schema(context.Context) (*dfgrep.Schema, error) {
	return q.table.schema, nil
}

func (q *query) Filter(e expr.Expr) frame.Query {
	return &query{table: q.table, steps: appendStep(q.steps, step{filter: e})}
}

func (q *query) Head(n int) frame.Query {
	return &query{table: q.table, steps: appendStep(q.steps, step{head: n})}
}

// appendStep copies the chain so sibling queries built from the same
// parent never share step storage.
func appendStep(steps []step, s step) []step {
	out := make([]step, len(steps), len(steps)+1)
	copy(out, steps)
	return append(out, s)
}

func (q *query) Origin() frame.Origin { return frame.OriginMem }

func (q *query) Open(context.Context) (tabio.ReadCloser, error) {
	filters := make([]stepFilter, 0, len(q.steps))
	for _, s := range q.steps {
		if s.filter == nil {
			filters = append(filters, stepFilter{head: s.head})
			continue
		}
		f, err := expr.CompileFilter(q.table.schema, s.filter)
		if err != nil {
			return nil, err
		}
		filters = append(filters, stepFilter{filter: f})
	}
	return tabio.NopReadCloser(&queryReader{
		inner: &reader{table: q.table},
		steps: filters,
	}), nil
}

func (q *query) Collect(ctx context.Context) (frame.Table, error) {
	r, err := q.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	b := NewBuilder(q.table.schema)
	if err := tabio.CopyWithContext(ctx, b, r); err != nil {
		return nil, err
	}
	return b.Table(), nil
}

func (q *query) Count(ctx context.Context) (int64, error) {
	r, err := q.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	var n int64
	for {
		row, err := r.Read()
		if err != nil {
			return 0, err
		}
		if row == nil {
			return n, nil
		}
		n++
	}
}

type stepFilter struct {
	filter expr.Filter // nil for a head step
	head   int
	nseen  int
}

type queryReader struct {
	inner tabio.Reader
	steps []stepFilter
}

func (r *queryReader) Schema() *dfgrep.Schema { return r.inner.Schema() }

func (r *queryReader) Read() (dfgrep.Row, error) {
outer:
	for {
		row, err := r.inner.Read()
		if row == nil || err != nil {
			return nil, err
		}
		for i := range r.steps {
			s := &r.steps[i]
			if s.filter != nil {
				if !s.filter(row) {
					continue outer
				}
				continue
			}
			if s.nseen >= s.head {
				return nil, nil
			}
			s.nseen++
		}
		return row, nil
	}
}
