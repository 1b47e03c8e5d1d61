package arrowtab_test

import (
	"context"
	"testing"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/frame/arrowtab"
	"github.com/dfgrep/dfgrep/grep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleRecord(t *testing.T) arrow.Record {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "city", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "age", Type: arrow.PrimitiveTypes.Int64},
	}, nil)
	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()
	b.Field(0).(*array.StringBuilder).AppendValues(
		[]string{"Alice", "Bob", "Eve"}, nil)
	b.Field(1).(*array.StringBuilder).AppendValues(
		[]string{"Berlin", "Boston", ""}, []bool{true, true, false})
	b.Field(2).(*array.Int64Builder).AppendValues([]int64{30, 25, 41}, nil)
	return b.NewRecord()
}

func TestSchemaOf(t *testing.T) {
	table := arrowtab.New(peopleRecord(t))
	assert.Equal(t, "{name:string,city:string,age:int64}", table.Schema().String())
}

func TestCells(t *testing.T) {
	table := arrowtab.New(peopleRecord(t))
	require.Equal(t, 3, table.Len())
	row := table.Row(1)
	assert.Equal(t, "Bob", row[0].Text())
	assert.Equal(t, "Boston", row[1].Text())
	assert.Equal(t, int64(25), row[2].Int64())
	assert.True(t, table.Row(2)[1].IsNull())
}

func TestHead(t *testing.T) {
	table := arrowtab.New(peopleRecord(t))
	head := table.Head(2)
	assert.Equal(t, 2, head.Len())
	assert.Equal(t, 3, table.Len())
}

func TestQueryFilter(t *testing.T) {
	q := arrowtab.New(peopleRecord(t)).Lazy().
		Filter(expr.Contains{Col: "city", Pattern: "B", Literal: true})
	n, err := q.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	table, err := q.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", table.Row(0)[0].Text())
	assert.Equal(t, "Bob", table.Row(1)[0].Text())
}

// A native record in yields a native record out, and the filtered
// record keeps the original arrow schema including the null.
func TestNativeRoundTrip(t *testing.T) {
	rec := peopleRecord(t)
	res, err := grep.Run(context.Background(), rec, []string{"Eve"}, grep.Options{})
	require.NoError(t, err)
	out, ok := res.(grep.Rows).Frame.(arrow.Record)
	require.True(t, ok)
	assert.True(t, rec.Schema().Equal(out.Schema()))
	require.Equal(t, int64(1), out.NumRows())
	assert.Equal(t, "Eve", out.Column(0).(*array.String).Value(0))
	assert.True(t, out.Column(1).IsNull(0))
	assert.Equal(t, int64(41), out.Column(2).(*array.Int64).Value(0))
}

func TestNativeCount(t *testing.T) {
	res, err := grep.Run(context.Background(), peopleRecord(t), []string{"b"},
		grep.Options{IgnoreCase: true, Count: true})
	require.NoError(t, err)
	assert.Equal(t, grep.Count(2), res)
}

func TestNullCityNeverMatches(t *testing.T) {
	res, err := grep.Run(context.Background(), peopleRecord(t), []string{".*"},
		grep.Options{Regex: true, Columns: []string{"city"}})
	require.NoError(t, err)
	out := res.(grep.Rows).Frame.(arrow.Record)
	assert.Equal(t, int64(2), out.NumRows())
}

func TestDictionaryColumn(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "kind", Type: &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Int32,
			ValueType: arrow.BinaryTypes.String,
		}},
	}, nil)
	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()
	db := b.Field(0).(*array.BinaryDictionaryBuilder)
	for _, s := range []string{"fruit", "veg", "fruit"} {
		require.NoError(t, db.AppendString(s))
	}
	rec := b.NewRecord()

	table := arrowtab.New(rec)
	assert.Equal(t, dfgrep.TypeCategorical, table.Schema().Columns()[0].Type)
	assert.Equal(t, "veg", table.Row(1)[0].Text())

	res, err := grep.Run(context.Background(), rec, []string{"fruit"}, grep.Options{Exact: true})
	require.NoError(t, err)
	out := res.(grep.Rows).Frame.(arrow.Record)
	assert.Equal(t, int64(2), out.NumRows())
}
