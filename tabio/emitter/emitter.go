// Package emitter opens output destinations through the storage layer
// and instantiates the writer for the requested format.
package emitter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/pkg/storage"
	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/tabio/csvio"
	"github.com/dfgrep/dfgrep/tabio/ndjsonio"
	"github.com/dfgrep/dfgrep/tabio/tableio"
)

// NewWriter opens path (standard output when empty or "-") and returns
// a row writer for the named format.
func NewWriter(ctx context.Context, engine storage.Engine, path, format string, schema *dfgrep.Schema) (tabio.WriteCloser, error) {
	var w io.WriteCloser
	if path == "" || path == "-" {
		w = tabio.NopCloser(os.Stdout)
	} else {
		uri, err := storage.ParseURI(path)
		if err != nil {
			return nil, err
		}
		w, err = engine.Put(ctx, uri)
		if err != nil {
			return nil, err
		}
	}
	writer, err := LookupWriter(w, format, schema)
	if err != nil {
		w.Close()
		return nil, err
	}
	return writer, nil
}

func LookupWriter(w io.WriteCloser, format string, schema *dfgrep.Schema) (tabio.WriteCloser, error) {
	switch format {
	case "table", "":
		return tableio.NewWriter(w, schema), nil
	case "csv":
		return csvio.NewWriter(w, schema, csvio.WriterOpts{}), nil
	case "tsv":
		return csvio.NewWriter(w, schema, csvio.WriterOpts{Delim: '\t'}), nil
	case "ndjson":
		return ndjsonio.NewWriter(w, schema), nil
	}
	return nil, fmt.Errorf("no such output format: %q", format)
}
