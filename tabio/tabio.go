// Package tabio defines the row streaming interfaces shared by the
// format readers and writers and by the deferred-query execution path.
package tabio

import (
	"context"
	"io"

	"github.com/dfgrep/dfgrep"
)

// Reader wraps the Read method.
//
// Read returns the next row and a nil error, a nil row and the next
// error, or a nil row and nil error to indicate that no rows remain.
// Read never returns io.EOF.
type Reader interface {
	Schema() *dfgrep.Schema
	Read() (dfgrep.Row, error)
}

type Writer interface {
	Write(dfgrep.Row) error
}

type ReadCloser interface {
	Reader
	io.Closer
}

type WriteCloser interface {
	Writer
	io.Closer
}

func NewReadCloser(r Reader, c io.Closer) ReadCloser {
	return extReadCloser{r, c}
}

type extReadCloser struct {
	Reader
	io.Closer
}

func NopReadCloser(r Reader) ReadCloser {
	return nopReadCloser{r}
}

type nopReadCloser struct {
	Reader
}

func (nopReadCloser) Close() error { return nil }

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

// Copy copies src to dst a row at a time.
func Copy(dst Writer, src Reader) error {
	return CopyWithContext(context.Background(), dst, src)
}

// CopyWithContext is like Copy but checks for cancellation between
// rows.
func CopyWithContext(ctx context.Context, dst Writer, src Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := src.Read()
		if err != nil {
			return err
		}
		if row == nil {
			return nil
		}
		if err := dst.Write(row); err != nil {
			return err
		}
	}
}
