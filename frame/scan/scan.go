// Package scan provides the deferred backend over files: a query is a
// storage URI plus a chain of filter and head steps, and nothing is
// read until the query is opened, collected, or counted.  Filters are
// pushed into the scan so unmatched rows are dropped as they stream.
package scan

import (
	"context"
	"io"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/frame/mem"
	"github.com/dfgrep/dfgrep/pkg/storage"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/tabio/anyio"
	"github.com/dfgrep/dfgrep/view/ansitab"
	"go.uber.org/multierr"
)

func init() {
	frame.RegisterRenderer(frame.OriginScan, ansitab.Render)
}

type query struct {
	engine storage.Engine
	uri    *storage.URI
	format string
	steps  []step
}

type step struct {
	filter expr.Expr // nil for a head step
	head   int
}

var _ frame.Query = (*query)(nil)

// New returns a deferred query over the file at path, with the format
// resolved from the path's extension.  The file is not opened here.
func New(engine storage.Engine, path string) (frame.Query, error) {
	uri, err := storage.ParseURI(path)
	if err != nil {
		return nil, err
	}
	format, err := anyio.FormatOf(path)
	if err != nil {
		return nil, err
	}
	return &query{engine: engine, uri: uri, format: format}, nil
}

func (q *query) Filter(e expr.Expr) frame.Query {
	return &query{engine: q.engine, uri: q.uri, format: q.format,
		steps: appendStep(q.steps, step{filter: e})}
}

func (q *query) Head(n int) frame.Query {
	return &query{engine: q.engine, uri: q.uri, format: q.format,
		steps: appendStep(q.steps, step{head: n})}
}

func appendStep(steps []step, s step) []step {
	out := make([]step, len(steps), len(steps)+1)
	copy(out, steps)
	return append(out, s)
}

func (q *query) Origin() frame.Origin { return frame.OriginScan }

// open opens the underlying file and instantiates the format reader.
func (q *query) open(ctx context.Context) (tabio.ReadCloser, error) {
	sr, err := q.engine.Get(ctx, q.uri)
	if err != nil {
		return nil, err
	}
	var src io.Reader = sr
	if _, ok := src.(io.ReadSeeker); !ok {
		seeker, err := storage.NewSeeker(sr)
		if err != nil {
			sr.Close()
			return nil, err
		}
		src = seeker
	}
	fr, err := anyio.NewReader(q.format, src)
	if err != nil {
		sr.Close()
		return nil, err
	}
	return tabio.NewReadCloser(fr, closer(func() error {
		return multierr.Append(fr.Close(), sr.Close())
	})), nil
}

type closer func() error

func (c closer) Close() error { return c() }

// Schema opens the file just far enough to read its schema.
func (q *query) Schema(ctx context.Context) (*dfgrep.Schema, error) {
	r, err := q.open(ctx)
	if err != nil {
		return nil, err
	}
	schema := r.Schema()
	return schema, r.Close()
}

func (q *query) Open(ctx context.Context) (tabio.ReadCloser, error) {
	r, err := q.open(ctx)
	if err != nil {
		return nil, err
	}
	filters := make([]stepFilter, 0, len(q.steps))
	for _, s := range q.steps {
		if s.filter == nil {
			filters = append(filters, stepFilter{head: s.head})
			continue
		}
		f, err := expr.CompileFilter(r.Schema(), s.filter)
		if err != nil {
			r.Close()
			return nil, err
		}
		filters = append(filters, stepFilter{filter: f})
	}
	return tabio.NewReadCloser(&stepReader{inner: r, steps: filters}, r), nil
}

func (q *query) Collect(ctx context.Context) (frame.Table, error) {
	r, err := q.Open(ctx)
	if err != nil {
		return nil, err
	}
	b := mem.NewBuilder(r.Schema())
	err = tabio.CopyWithContext(ctx, b, r)
	if closeErr := r.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}
	return b.Table(), nil
}

// Count drains the filtered stream without retaining rows.
func (q *query) Count(ctx context.Context) (int64, error) {
	r, err := q.Open(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	for {
		row, err := r.Read()
		if err != nil {
			r.Close()
			return 0, err
		}
		if row == nil {
			return n, r.Close()
		}
		n++
	}
}

type stepFilter struct {
	filter expr.Filter // nil for a head step
	head   int
	nseen  int
}

type stepReader struct {
	inner tabio.Reader
	steps []stepFilter
}

func (r *stepReader) Schema() *dfgrep.Schema { return r.inner.Schema() }

func (r *stepReader) Read() (dfgrep.Row, error) {
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
