package tableio_test

import (
	"bytes"
	"testing"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/tabio/tableio"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	schema := dfgrep.NewSchema([]dfgrep.Column{
		{Name: "name", Type: dfgrep.TypeString},
		{Name: "age", Type: dfgrep.TypeInt64},
	})
	var buf bytes.Buffer
	w := tableio.NewWriter(tabio.NopCloser(&buf), schema)
	require.NoError(t, w.Write(dfgrep.Row{dfgrep.NewString("Alice"), dfgrep.NewInt64(30)}))
	require.NoError(t, w.Write(dfgrep.Row{dfgrep.NewString("Bob"), dfgrep.NewInt64(5)}))
	require.NoError(t, w.Close())
	g := goldie.New(t)
	g.Assert(t, "table", buf.Bytes())
}

func TestWriterNulls(t *testing.T) {
	schema := dfgrep.NewSchema([]dfgrep.Column{
		{Name: "name", Type: dfgrep.TypeString},
		{Name: "city", Type: dfgrep.TypeString},
	})
	var buf bytes.Buffer
	w := tableio.NewWriter(tabio.NopCloser(&buf), schema)
	require.NoError(t, w.Write(dfgrep.Row{dfgrep.NewString("Eve"), dfgrep.Null(dfgrep.TypeString)}))
	require.NoError(t, w.Close())
	g := goldie.New(t)
	g.Assert(t, "table-nulls", buf.Bytes())
}
