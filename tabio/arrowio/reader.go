// Package arrowio reads Arrow IPC data (.feather, .arrow, .ipc) a row
// at a time, accepting both the file and the stream framing.
package arrowio

import (
	"io"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/ipc"
	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/frame/arrowtab"
)

type Reader struct {
	src    recordSource
	schema *dfgrep.Schema

	cur *arrowtab.Table
	i   int
}

// NewReader returns a Reader for the IPC data behind r.  A seekable
// input is first tried as the IPC file format; a stream, or a
// non-seekable input, is read with the stream framing.
func NewReader(r io.Reader) (*Reader, error) {
	src, err := newRecordSource(r)
	if err != nil {
		return nil, err
	}
	return &Reader{
		src:    src,
		schema: arrowtab.SchemaOf(src.schema()),
	}, nil
}

func (r *Reader) Schema() *dfgrep.Schema { return r.schema }

func (r *Reader) Read() (dfgrep.Row, error) {
	for {
		if r.cur != nil && r.i < r.cur.Len() {
			row := r.cur.Row(r.i)
			r.i++
			return row, nil
		}
		rec, err := r.src.next()
		if err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		r.cur = arrowtab.New(rec)
		r.i = 0
	}
}

func (r *Reader) Close() error {
	return r.src.close()
}

type recordSource interface {
	schema() *arrow.Schema
	next() (arrow.Record, error)
	close() error
}

func newRecordSource(r io.Reader) (recordSource, error) {
	if rs, ok := r.(ipc.ReadAtSeeker); ok {
		fr, err := ipc.NewFileReader(rs)
		if err == nil {
			return &fileSource{fr: fr}, nil
		}
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}
	sr, err := ipc.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &streamSource{sr: sr}, nil
}

type fileSource struct {
	fr *ipc.FileReader
	i  int
}

func (s *fileSource) schema() *arrow.Schema { return s.fr.Schema() }

func (s *fileSource) next() (arrow.Record, error) {
	if s.i >= s.fr.NumRecords() {
		return nil, io.EOF
	}
	rec, err := s.fr.Record(s.i)
	if err != nil {
		return nil, err
	}
	s.i++
	return rec, nil
}

func (s *fileSource) close() error { return s.fr.Close() }

type streamSource struct {
	sr *ipc.Reader
}

func (s *streamSource) schema() *arrow.Schema { return s.sr.Schema() }

func (s *streamSource) next() (arrow.Record, error) {
	if !s.sr.Next() {
		if err := s.sr.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	// The stream reader recycles its record on the next call to Next.
	rec := s.sr.Record()
	rec.Retain()
	return rec, nil
}

func (s *streamSource) close() error {
	s.sr.Release()
	return nil
}
