// Package view defines the rendered-view boundary: a decorated,
// human-viewable representation of a materialized table produced by
// the highlighting path.
package view

import (
	"bytes"
	"io"
)

// View renders itself to a writer.  Rendering never alters the data it
// was built from.
type View interface {
	Render(io.Writer) error
}

// Text renders v to a string.
func Text(v View) (string, error) {
	var buf bytes.Buffer
	if err := v.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
