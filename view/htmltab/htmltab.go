// Package htmltab renders a materialized table as an HTML table with
// matching cells highlighted, the notebook-oriented counterpart of the
// terminal renderer.
package htmltab

import (
	"html/template"
	"io"

	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/view"
)

const highlightColor = "#ffff99"

var tmpl = template.Must(template.New("htmltab").Parse(`<table class="dfgrep">
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td{{if .Match}} style="background-color:{{$.Color}}"{{end}}>{{.Text}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
`))

// Render builds an HTML view of t with the masked cells highlighted.
// It satisfies frame.Renderer.
func Render(t frame.Table, masks []frame.Mask) (view.View, error) {
	return &View{table: t, masks: masks}, nil
}

type View struct {
	table frame.Table
	masks []frame.Mask
}

type cell struct {
	Text  string
	Match bool
}

func (v *View) Render(w io.Writer) error {
	cols := v.table.Schema().Columns()
	masked := make(map[string][]bool, len(v.masks))
	for _, m := range v.masks {
		masked[m.Column] = m.Cells
	}
	header := make([]string, len(cols))
	for j, col := range cols {
		header[j] = col.Name
	}
	n := v.table.Len()
	rows := make([][]cell, n)
	for i := 0; i < n; i++ {
		row := v.table.Row(i)
		cells := make([]cell, len(cols))
		for j, col := range cols {
			cells[j].Text = row[j].Text()
			if mask, ok := masked[col.Name]; ok && i < len(mask) {
				cells[j].Match = mask[i]
			}
		}
		rows[i] = cells
	}
	return tmpl.Execute(w, struct {
		Header []string
		Rows   [][]cell
		Color  string
	}{header, rows, highlightColor})
}
