package csvio_test

import (
	"bytes"
	"testing"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/tabio/csvio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csvSchema = dfgrep.NewSchema([]dfgrep.Column{
	{Name: "name", Type: dfgrep.TypeString},
	{Name: "note", Type: dfgrep.TypeString},
	{Name: "ok", Type: dfgrep.TypeBool},
})

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	w := csvio.NewWriter(tabio.NopCloser(&buf), csvSchema, csvio.WriterOpts{})
	require.NoError(t, w.Write(dfgrep.Row{
		dfgrep.NewString("Alice"),
		dfgrep.NewString(`says "hi", loudly`),
		dfgrep.NewBool(true),
	}))
	require.NoError(t, w.Close())
	assert.Equal(t, "name,note,ok\nAlice,\"says \"\"hi\"\", loudly\",true\n", buf.String())
}

func TestTSV(t *testing.T) {
	var buf bytes.Buffer
	w := csvio.NewWriter(tabio.NopCloser(&buf), csvSchema, csvio.WriterOpts{Delim: '\t'})
	require.NoError(t, w.Write(dfgrep.Row{
		dfgrep.NewString("Bob"),
		dfgrep.Null(dfgrep.TypeString),
		dfgrep.NewBool(false),
	}))
	require.NoError(t, w.Close())
	assert.Equal(t, "name\tnote\tok\nBob\t\tfalse\n", buf.String())
}
