// Package parquetio reads Parquet files a row at a time.
package parquetio

import (
	"errors"
	"io"

	"github.com/dfgrep/dfgrep"
	goparquet "github.com/fraugster/parquet-go"
)

type Reader struct {
	fr     *goparquet.FileReader
	schema *dfgrep.Schema
	cols   []column
}

// NewReader returns a Reader for the Parquet file behind r, which must
// support seeking because the Parquet footer holds the file metadata.
func NewReader(r io.Reader) (*Reader, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, errors.New("parquet requires a seekable input")
	}
	fr, err := goparquet.NewFileReader(rs)
	if err != nil {
		return nil, err
	}
	cols, err := newColumns(fr.GetSchemaDefinition().RootColumn.Children)
	if err != nil {
		return nil, err
	}
	dfcols := make([]dfgrep.Column, 0, len(cols))
	for _, c := range cols {
		dfcols = append(dfcols, dfgrep.Column{Name: c.name, Type: c.typ})
	}
	return &Reader{
		fr:     fr,
		schema: dfgrep.NewSchema(dfcols),
		cols:   cols,
	}, nil
}

func (r *Reader) Schema() *dfgrep.Schema { return r.schema }

func (r *Reader) Read() (dfgrep.Row, error) {
	data, err := r.fr.NextRow()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	row := make(dfgrep.Row, 0, len(r.cols))
	for _, c := range r.cols {
		v, ok := data[c.name]
		if !ok {
			row = append(row, dfgrep.Null(c.typ))
			continue
		}
		row = append(row, c.value(v))
	}
	return row, nil
}
