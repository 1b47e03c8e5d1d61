// Package storage abstracts where input files live: the local file
// system, standard input, HTTP(S) endpoints, or S3 objects, addressed
// uniformly by URI.
package storage

import (
	"context"
	"errors"
	"io"
)

// Reader is what Get returns: sequential reads always work; ReadAt is
// available when the underlying store supports random access (required
// by footer-based formats like Parquet).
type Reader interface {
	io.Reader
	io.ReaderAt
	io.Closer
}

type Sizer interface {
	Size() (int64, error)
}

var ErrNotSupported = errors.New("method call on storage engine not supported")

type Engine interface {
	Get(context.Context, *URI) (Reader, error)
	Put(context.Context, *URI) (io.WriteCloser, error)
	Exists(context.Context, *URI) (bool, error)
	Size(context.Context, *URI) (int64, error)
}

// Size returns the size of r if the engine exposes it.
func Size(r Reader) (int64, error) {
	if sizer, ok := r.(Sizer); ok {
		return sizer.Size()
	}
	return 0, ErrNotSupported
}

// NewSeeker provides an io.ReadSeeker on top of a Reader for libraries
// that require seeking (e.g., Parquet readers).
func NewSeeker(r Reader) (*Seeker, error) {
	size, err := Size(r)
	if err != nil {
		return nil, err
	}
	return &Seeker{
		ReadSeeker: io.NewSectionReader(r, 0, size),
		Reader:     r,
	}, nil
}

type Seeker struct {
	io.ReadSeeker
	Reader
}

// Read resolves the ambiguous selector s.Read to s.ReadSeeker.Read.
func (s *Seeker) Read(b []byte) (int, error) {
	return s.ReadSeeker.Read(b)
}
