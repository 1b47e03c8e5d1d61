// Package anyio resolves input formats by file extension and
// instantiates the matching reader.
package anyio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dfgrep/dfgrep/tabio"
	"github.com/dfgrep/dfgrep/tabio/arrowio"
	"github.com/dfgrep/dfgrep/tabio/parquetio"
)

// FormatOf maps a file path to its input format name.  Text formats
// are deliberately not supported: line-oriented tools already do that
// job well.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".parquet":
		return "parquet", nil
	case ".feather", ".arrow", ".ipc":
		return "arrow", nil
	case ".csv", ".tsv", ".txt", ".json", ".ndjson", ".log":
		return "", fmt.Errorf("unsupported non-binary file type %q: for text files, use grep or ripgrep", ext)
	}
	return "", fmt.Errorf("unsupported file type %q (supported: .parquet, .feather, .arrow, .ipc)", ext)
}

// NewReader returns a reader for the named format.  The caller retains
// ownership of r; closing the returned ReadCloser releases only
// resources the format reader itself holds.
func NewReader(format string, r io.Reader) (tabio.ReadCloser, error) {
	switch format {
	case "parquet":
		pr, err := parquetio.NewReader(r)
		if err != nil {
			return nil, err
		}
		return tabio.NopReadCloser(pr), nil
	case "arrow":
		return arrowio.NewReader(r)
	}
	return nil, fmt.Errorf("no such format: %q", format)
}
