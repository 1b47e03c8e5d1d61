package htmltab_test

import (
	"strings"
	"testing"

	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/frame/mem"
	"github.com/dfgrep/dfgrep/view"
	"github.com/dfgrep/dfgrep/view/htmltab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	table := mem.StringTable(
		[]string{"name", "city"},
		[]string{"Alice", "Bob"},
		[]string{"Berlin", "Boston"},
	)
	masks := []frame.Mask{{Column: "city", Cells: []bool{false, true}}}
	v, err := htmltab.Render(table, masks)
	require.NoError(t, err)
	html, err := view.Text(v)
	require.NoError(t, err)
	assert.Contains(t, html, "<th>name</th><th>city</th>")
	assert.Contains(t, html, `<td style="background-color:#ffff99">Boston</td>`)
	assert.Contains(t, html, "<td>Berlin</td>")
	assert.Equal(t, 1, strings.Count(html, "background-color"))
}

func TestRenderEscapes(t *testing.T) {
	table := mem.StringTable([]string{"note"}, []string{"<script>alert(1)</script>"})
	v, err := htmltab.Render(table, nil)
	require.NoError(t, err)
	html, err := view.Text(v)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
