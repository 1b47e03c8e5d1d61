package frame_test

import (
	"context"
	"testing"

	"github.com/dfgrep/dfgrep/expr"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/frame/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters() *mem.Table {
	return mem.StringTable([]string{"s"}, []string{"a", "b", "c"})
}

func TestWrapTable(t *testing.T) {
	f, err := frame.Wrap(letters())
	require.NoError(t, err)
	assert.False(t, f.IsDeferred())
	assert.False(t, f.IsNative())
	assert.Equal(t, frame.OriginMem, f.Origin())
}

func TestWrapQuery(t *testing.T) {
	f, err := frame.Wrap(letters().Lazy())
	require.NoError(t, err)
	assert.True(t, f.IsDeferred())
}

func TestWrapFramePassesThrough(t *testing.T) {
	f, err := frame.Wrap(letters())
	require.NoError(t, err)
	g, err := frame.Wrap(f)
	require.NoError(t, err)
	assert.Same(t, f, g)
}

func TestWrapUnknown(t *testing.T) {
	_, err := frame.Wrap(42)
	assert.Error(t, err)
}

func TestFilterPreservesTags(t *testing.T) {
	f, err := frame.Wrap(letters())
	require.NoError(t, err)
	filtered := f.Filter(expr.Equals{Col: "s", Pattern: "b"})
	assert.False(t, filtered.IsDeferred())
	table, err := filtered.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "b", table.Row(0)[0].Text())
}

func TestCountWithoutCollect(t *testing.T) {
	f, err := frame.Wrap(letters().Lazy())
	require.NoError(t, err)
	n, err := f.Filter(expr.Not{X: expr.Equals{Col: "s", Pattern: "a"}}).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUnwrapNonNative(t *testing.T) {
	f, err := frame.Wrap(letters())
	require.NoError(t, err)
	assert.Same(t, f, f.Unwrap())
}

func TestHeadEager(t *testing.T) {
	f, err := frame.Wrap(letters())
	require.NoError(t, err)
	table, err := f.Head(2).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}
