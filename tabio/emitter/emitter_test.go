package emitter_test

import (
	"bytes"
	"testing"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/tabio/emitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupWriter(t *testing.T) {
	schema := dfgrep.NewSchema([]dfgrep.Column{{Name: "s", Type: dfgrep.TypeString}})
	row := dfgrep.Row{dfgrep.NewString("hi")}
	cases := []struct {
		format string
		want   string
	}{
		{"csv", "s\nhi\n"},
		{"tsv", "s\nhi\n"},
		{"ndjson", "{\"s\":\"hi\"}\n"},
		{"table", "S\nhi\n"},
		{"", "S\nhi\n"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		w, err := emitter.LookupWriter(tabio.NopCloser(&buf), c.format, schema)
		require.NoError(t, err, c.format)
		require.NoError(t, w.Write(row))
		require.NoError(t, w.Close())
		assert.Equal(t, c.want, buf.String(), c.format)
	}
}

func TestLookupWriterUnknown(t *testing.T) {
	schema := dfgrep.NewSchema(nil)
	var buf bytes.Buffer
	_, err := emitter.LookupWriter(tabio.NopCloser(&buf), "xml", schema)
	assert.Error(t, err)
}
