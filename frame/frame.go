// Package frame is the capability layer between the grep core and
// concrete dataframe backends.  A backend supplies an eager Table or a
// deferred Query; Wrap tags whatever the caller hands in so downstream
// code switches on the tag rather than on runtime type inspection, and
// so results come back in the same representation class as the input
// (eager vs. deferred, wrapped vs. native).
package frame

import (
	"context"
	"fmt"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/tabio"
)

// Origin tags which backend produced a Table or Query.
type Origin string

const (
	OriginMem   Origin = "mem"
	OriginArrow Origin = "arrow"
	OriginScan  Origin = "scan"
)

// Table is the eager capability: a fully materialized, ordered table.
type Table interface {
	Schema() *dfgrep.Schema
	Len() int
	Row(int) dfgrep.Row
	Head(int) Table
	Lazy() Query
	NewReader() tabio.Reader
	Origin() Origin
}

// Query is the deferred capability: a source plus a chain of
// transformations not yet executed.  Building does no work; Open,
// Collect, and Count are the only execution points.  A Query may be
// executed any number of times and must see identical results each
// time.
type Query interface {
	Schema(context.Context) (*dfgrep.Schema, error)
	Filter(expr.Expr) Query
	Head(int) Query
	Open(context.Context) (tabio.ReadCloser, error)
	Collect(context.Context) (Table, error)
	Count(context.Context) (int64, error)
	Origin() Origin
}

// Nativer is implemented by tables and queries that wrap a
// backend-native object and can hand it back.
type Nativer interface {
	Native() any
}

// Frame is the tagged wrapper around an eager Table or deferred Query.
// It remembers whether the caller passed a backend-native object so
// results can be unwrapped symmetrically.
type Frame struct {
	table  Table // non-nil iff the frame is eager and unfiltered
	query  Query
	eager  bool
	native bool
}

func NewEager(t Table, native bool) *Frame {
	return &Frame{table: t, eager: true, native: native}
}

func NewDeferred(q Query, native bool) *Frame {
	return &Frame{query: q, native: native}
}

// NativeWrapper adapts one backend's native object into a Frame.
// Wrappers are consulted in registration order by Wrap.
type NativeWrapper func(any) (*Frame, bool)

var nativeWrappers []NativeWrapper

func RegisterNativeWrapper(w NativeWrapper) {
	nativeWrappers = append(nativeWrappers, w)
}

// Wrap normalizes v into a Frame.  An existing Frame passes through
// unchanged; a Table or Query is wrapped directly; anything else is
// offered to the registered native wrappers.
func Wrap(v any) (*Frame, error) {
	switch v := v.(type) {
	case *Frame:
		return v, nil
	case Table:
		return NewEager(v, false), nil
	case Query:
		return NewDeferred(v, false), nil
	}
	for _, w := range nativeWrappers {
		if f, ok := w(v); ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("cannot wrap value of type %T as a frame", v)
}

// IsDeferred reports whether the original input was a deferred query.
func (f *Frame) IsDeferred() bool { return !f.eager }

// IsNative reports whether the original input was a backend-native
// object rather than an already-wrapped representation.
func (f *Frame) IsNative() bool { return f.native }

func (f *Frame) Origin() Origin {
	if f.table != nil {
		return f.table.Origin()
	}
	return f.query.Origin()
}

// Lazy returns the deferred form of the frame's contents.
func (f *Frame) Lazy() Query {
	if f.query != nil {
		return f.query
	}
	return f.table.Lazy()
}

func (f *Frame) Schema(ctx context.Context) (*dfgrep.Schema, error) {
	if f.table != nil {
		return f.table.Schema(), nil
	}
	return f.query.Schema(ctx)
}

// Filter returns a new frame with e attached as a deferred row filter.
// The input frame is not mutated; laziness and nativeness carry over.
func (f *Frame) Filter(e expr.Expr) *Frame {
	return &Frame{query: f.Lazy().Filter(e), eager: f.eager, native: f.native}
}

// Head returns a new frame limited to the first n rows.
func (f *Frame) Head(n int) *Frame {
	if f.table != nil {
		return &Frame{table: f.table.Head(n), eager: true, native: f.native}
	}
	return &Frame{query: f.query.Head(n), eager: f.eager, native: f.native}
}

// Collect executes the frame and returns the eager result.
func (f *Frame) Collect(ctx context.Context) (Table, error) {
	if f.table != nil {
		return f.table, nil
	}
	return f.query.Collect(ctx)
}

// Count executes the frame and returns its row count without
// materializing rows.
func (f *Frame) Count(ctx context.Context) (int64, error) {
	if f.table != nil {
		return int64(f.table.Len()), nil
	}
	return f.query.Count(ctx)
}

// Unwrap returns the frame in the caller's original representation:
// the backend-native object when the input was native, or the frame's
// current wrapped form otherwise.
func (f *Frame) Unwrap() any {
	if !f.native {
		return f
	}
	if f.table != nil {
		if n, ok := f.table.(Nativer); ok {
			return n.Native()
		}
		return f.table
	}
	if n, ok := f.query.(Nativer); ok {
		return n.Native()
	}
	return f.query
}

// UnwrapTable returns t in the original representation class recorded
// by f: native when the input was native, wrapped otherwise.
func (f *Frame) UnwrapTable(t Table) any {
	if f.native {
		if n, ok := t.(Nativer); ok {
			return n.Native()
		}
	}
	return NewEager(t, f.native)
}
