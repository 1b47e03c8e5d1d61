// Package ansitab renders a materialized table as aligned text for a
// terminal, painting matching cells with a background style.  Data
// values are never altered; only presentation changes.
package ansitab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dfgrep/dfgrep/frame"
	"github.com/dfgrep/dfgrep/view"
)

// DefaultStyle is the highlight applied to matching cells.
var DefaultStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#ffff99")).
	Foreground(lipgloss.Color("#000000"))

// Render builds a terminal view of t with the masked cells
// highlighted.  It satisfies frame.Renderer.
func Render(t frame.Table, masks []frame.Mask) (view.View, error) {
	masked := make(map[string][]bool, len(masks))
	for _, m := range masks {
		masked[m.Column] = m.Cells
	}
	return &View{table: t, masks: masked, style: DefaultStyle}, nil
}

type View struct {
	table frame.Table
	masks map[string][]bool
	style lipgloss.Style
}

func (v *View) Render(w io.Writer) error {
	cols := v.table.Schema().Columns()
	// Column widths come from the raw cell text so the styling
	// escapes never skew alignment.
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = utf8.RuneCountInString(col.Name)
	}
	n := v.table.Len()
	cells := make([][]string, n)
	for i := 0; i < n; i++ {
		row := v.table.Row(i)
		cells[i] = make([]string, len(cols))
		for j := range cols {
			s := row[j].Text()
			cells[i][j] = s
			if w := utf8.RuneCountInString(s); w > widths[j] {
				widths[j] = w
			}
		}
	}
	var b strings.Builder
	for j, col := range cols {
		if j > 0 {
			b.WriteString("  ")
		}
		pad(&b, strings.ToUpper(col.Name), widths[j], j == len(cols)-1)
	}
	b.WriteByte('\n')
	for i := 0; i < n; i++ {
		for j, col := range cols {
			if j > 0 {
				b.WriteString("  ")
			}
			s := cells[i][j]
			if mask, ok := v.masks[col.Name]; ok && i < len(mask) && mask[i] {
				b.WriteString(v.style.Render(s))
				padOnly(&b, s, widths[j], j == len(cols)-1)
			} else {
				pad(&b, s, widths[j], j == len(cols)-1)
			}
		}
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}

func pad(b *strings.Builder, s string, width int, last bool) {
	b.WriteString(s)
	padOnly(b, s, width, last)
}

func padOnly(b *strings.Builder, s string, width int, last bool) {
	if last {
		return
	}
	for i := utf8.RuneCountInString(s); i < width; i++ {
		b.WriteByte(' ')
	}
}
