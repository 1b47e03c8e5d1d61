package arrowtab

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/tabio"
)

// query is the deferred form of an arrow table.  Filter steps are
// evaluated column at a time as boolean masks; only Collect, Count,
// and Open do any work.
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

func appendStep(steps []step, s step) []step {
	out := make([]step, len(steps), len(steps)+1)
	copy(out, steps)
	return append(out, s)
}

func (q *query) Origin() frame.Origin { return frame.OriginArrow }

// selectRows runs the step chain and returns the surviving row
// indices in original order.
func (q *query) selectRows() ([]int, error) {
	n := q.table.Len()
	selected := make([]int, n)
	for i := range selected {
		selected[i] = i
	}
	for _, s := range q.steps {
		if s.filter == nil {
			if s.head < len(selected) {
				selected = selected[:s.head]
			}
			continue
		}
		mask, err := q.evalMask(s.filter)
		if err != nil {
			return nil, err
		}
		kept := selected[:0]
		for _, i := range selected {
			if mask[i] {
				kept = append(kept, i)
			}
		}
		selected = kept
	}
	return selected, nil
}

func (q *query) Collect(context.Context) (frame.Table, error) {
	selected, err := q.selectRows()
	if err != nil {
		return nil, err
	}
	rec, err := buildRecord(q.table.rec, selected)
	if err != nil {
		return nil, err
	}
	return New(rec), nil
}

func (q *query) Count(context.Context) (int64, error) {
	selected, err := q.selectRows()
	if err != nil {
		return 0, err
	}
	return int64(len(selected)), nil
}

func (q *query) Open(ctx context.Context) (tabio.ReadCloser, error) {
	t, err := q.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return tabio.NopReadCloser(t.NewReader()), nil
}

// evalMask evaluates e against every row of the table, one column at a
// time.
func (q *query) evalMask(e expr.Expr) ([]bool, error) {
	n := q.table.Len()
	switch e := e.(type) {
	case expr.Literal:
		mask := make([]bool, n)
		for i := range mask {
			mask[i] = e.B
		}
		return mask, nil
	case expr.Not:
		mask, err := q.evalMask(e.X)
		if err != nil {
			return nil, err
		}
		for i := range mask {
			mask[i] = !mask[i]
		}
		return mask, nil
	case expr.And:
		left, err := q.evalMask(e.X)
		if err != nil {
			return nil, err
		}
		right, err := q.evalMask(e.Y)
		if err != nil {
			return nil, err
		}
		for i := range left {
			left[i] = left[i] && right[i]
		}
		return left, nil
	case expr.Or:
		left, err := q.evalMask(e.X)
		if err != nil {
			return nil, err
		}
		right, err := q.evalMask(e.Y)
		if err != nil {
			return nil, err
		}
		for i := range left {
			left[i] = left[i] || right[i]
		}
		return left, nil
	case expr.AnyOf:
		mask := make([]bool, n)
		for _, sub := range e.Exprs {
			m, err := q.evalMask(sub)
			if err != nil {
				return nil, err
			}
			for i := range mask {
				mask[i] = mask[i] || m[i]
			}
		}
		return mask, nil
	case expr.IsNull:
		slot, err := q.lookup(e.Col)
		if err != nil {
			return nil, err
		}
		arr := q.table.rec.Column(slot)
		mask := make([]bool, n)
		for i := range mask {
			mask[i] = arr.IsNull(i)
		}
		return mask, nil
	case expr.Equals:
		return q.textMask(e.Col, func(s string) bool {
			if e.CaseFold {
				return strings.EqualFold(s, e.Pattern)
			}
			return s == e.Pattern
		})
	case expr.Contains:
		return q.containsMask(e)
	}
	return nil, fmt.Errorf("unknown expression type %T", e)
}

func (q *query) containsMask(e expr.Contains) ([]bool, error) {
	if e.Literal {
		pattern := e.Pattern
		if e.CaseFold {
			folded := strings.ToLower(pattern)
			return q.textMask(e.Col, func(s string) bool {
				return strings.Contains(strings.ToLower(s), folded)
			})
		}
		return q.textMask(e.Col, func(s string) bool {
			return strings.Contains(s, pattern)
		})
	}
	pattern := e.Pattern
	if e.CaseFold {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", e.Pattern, err)
	}
	return q.textMask(e.Col, re.MatchString)
}

// textMask applies match to the text form of every non-null cell of
// the named column.  Null cells never match.
func (q *query) textMask(col string, match func(string) bool) ([]bool, error) {
	slot, err := q.lookup(col)
	if err != nil {
		return nil, err
	}
	n := q.table.Len()
	mask := make([]bool, n)
	for i := 0; i < n; i++ {
		v := q.table.cell(slot, i)
		if v.IsNull() {
			continue
		}
		mask[i] = match(v.Text())
	}
	return mask, nil
}

func (q *query) lookup(col string) (int, error) {
	slot, ok := q.table.schema.Lookup(col)
	if !ok {
		return 0, fmt.Errorf("column %q: not present in schema %s", col, q.table.schema)
	}
	return slot, nil
}

// buildRecord assembles a new native record holding the selected rows
// of rec, preserving the original arrow schema.
func buildRecord(rec arrow.Record, selected []int) (arrow.Record, error) {
	builder := array.NewRecordBuilder(memory.NewGoAllocator(), rec.Schema())
	defer builder.Release()
	for j := 0; j < int(rec.NumCols()); j++ {
		arr := rec.Column(j)
		fb := builder.Field(j)
		for _, i := range selected {
			if arr.IsNull(i) {
				fb.AppendNull()
				continue
			}
			if err := appendCell(fb, arr, i); err != nil {
				return nil, fmt.Errorf("column %q: %w", rec.Schema().Field(j).Name, err)
			}
		}
	}
	return builder.NewRecord(), nil
}

func appendCell(b array.Builder, arr arrow.Array, i int) error {
	switch arr := arr.(type) {
	case *array.String:
		b.(*array.StringBuilder).Append(arr.Value(i))
	case *array.LargeString:
		b.(*array.LargeStringBuilder).Append(arr.Value(i))
	case *array.Dictionary:
		s, ok := dictValue(arr, i)
		if !ok {
			return fmt.Errorf("unsupported dictionary value type %s", arr.Dictionary().DataType())
		}
		return b.(*array.BinaryDictionaryBuilder).AppendString(s)
	case *array.Int8:
		b.(*array.Int8Builder).Append(arr.Value(i))
	case *array.Int16:
		b.(*array.Int16Builder).Append(arr.Value(i))
	case *array.Int32:
		b.(*array.Int32Builder).Append(arr.Value(i))
	case *array.Int64:
		b.(*array.Int64Builder).Append(arr.Value(i))
	case *array.Uint8:
		b.(*array.Uint8Builder).Append(arr.Value(i))
	case *array.Uint16:
		b.(*array.Uint16Builder).Append(arr.Value(i))
	case *array.Uint32:
		b.(*array.Uint32Builder).Append(arr.Value(i))
	case *array.Uint64:
		b.(*array.Uint64Builder).Append(arr.Value(i))
	case *array.Float32:
		b.(*array.Float32Builder).Append(arr.Value(i))
	case *array.Float64:
		b.(*array.Float64Builder).Append(arr.Value(i))
	case *array.Boolean:
		b.(*array.BooleanBuilder).Append(arr.Value(i))
	case *array.Timestamp:
		b.(*array.TimestampBuilder).Append(arr.Value(i))
	case *array.Date32:
		b.(*array.Date32Builder).Append(arr.Value(i))
	case *array.Date64:
		b.(*array.Date64Builder).Append(arr.Value(i))
	default:
		return fmt.Errorf("unsupported arrow type %s for filtered output", arr.DataType())
	}
	return nil
}
