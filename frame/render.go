package frame

import (
	"fmt"

	"github.com/dfgrep/dfgrep/view"
)

// Mask flags, for one column, which cells of a materialized table
// matched.  Cells is aligned with the table's row order.
type Mask struct {
	Column string
	Cells  []bool
}

// Renderer decorates a materialized table with per-cell match
// highlights, producing a viewable representation.  Renderers never
// change which rows are present.
type Renderer func(Table, []Mask) (view.View, error)

// UnsupportedBackendError indicates highlighting was requested for a
// backend with no registered renderer.
type UnsupportedBackendError struct {
	Origin Origin
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("highlighting not supported for backend: %s", e.Origin)
}

var renderers = map[Origin]Renderer{}

// RegisterRenderer installs the renderer for an origin.  Backends
// register their renderer at init time.
func RegisterRenderer(o Origin, r Renderer) {
	renderers[o] = r
}

func LookupRenderer(o Origin) (Renderer, error) {
	r, ok := renderers[o]
	if !ok {
		return nil, &UnsupportedBackendError{Origin: o}
	}
	return r, nil
}
