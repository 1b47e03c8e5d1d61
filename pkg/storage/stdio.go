package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

type StdioEngine struct{}

var _ Engine = (*StdioEngine)(nil)

func NewStdioEngine() *StdioEngine {
	return &StdioEngine{}
}

// Get buffers standard input so formats that need random access can
// still read it.
func (*StdioEngine) Get(_ context.Context, u *URI) (Reader, error) {
	if u.Path != "stdin" && u.Path != "" {
		return nil, fmt.Errorf("stdio:%s: cannot read", u.Path)
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return NewBytesReader(b), nil
}

func (*StdioEngine) Put(_ context.Context, u *URI) (io.WriteCloser, error) {
	switch u.Path {
	case "stdout", "":
		return nopWriteCloser{os.Stdout}, nil
	case "stderr":
		return nopWriteCloser{os.Stderr}, nil
	}
	return nil, fmt.Errorf("stdio:%s: cannot write", u.Path)
}

func (*StdioEngine) Exists(context.Context, *URI) (bool, error) {
	return true, nil
}

func (*StdioEngine) Size(context.Context, *URI) (int64, error) {
	return 0, ErrNotSupported
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
