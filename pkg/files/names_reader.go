package files

import (
	"errors"
	"io"
)

var ErrReaderClosed = errors.New("dir reader is closed")

var _ DirReader = (*NamesReader)(nil)

// NamesReader is a DirReader over a fixed list of names.
type NamesReader struct {
	names  []string
	pos    int
	closed bool
}

func NewNamesReader(names ...string) *NamesReader {
	return &NamesReader{names: names}
}

func (r *NamesReader) Next() (string, error) {
	if r.closed {
		return "", ErrReaderClosed
	}
	if r.pos >= len(r.names) {
		return "", io.EOF
	}
	name := r.names[r.pos]
	r.pos++
	return name, nil
}

func (r *NamesReader) Rewind() error {
	if r.closed {
		return ErrReaderClosed
	}
	r.pos = 0
	return nil
}

func (r *NamesReader) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *NamesReader) Closed() bool {
	return r.closed
}
