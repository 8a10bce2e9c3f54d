package osfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatug/tugbrowse/pkg/files"
)

var osOpen = os.Open
var osStat = os.Stat
var osLstat = os.Lstat

const readBatch = 64

var ErrNotDir = errors.New("not a directory")

var _ files.Store = (*Store)(nil)

// Store reads the local filesystem.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) Stat(path string) (os.FileInfo, error) {
	return osStat(path)
}

func (s Store) Lstat(path string) (os.FileInfo, error) {
	return osLstat(path)
}

func (s Store) OpenDir(ctx context.Context, path string) (files.DirReader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := openDir(path)
	if err != nil {
		return nil, err
	}
	return &dirReader{path: path, f: f}, nil
}

func openDir(path string) (*os.File, error) {
	f, err := osOpen(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, &os.PathError{Op: "opendir", Path: path, Err: ErrNotDir}
	}
	return f, nil
}

var _ files.DirReader = (*dirReader)(nil)

// dirReader reports "." and ".." ahead of the names the OS returns,
// which are read in batches so large directories are not loaded at once.
type dirReader struct {
	path    string
	f       *os.File
	dots    int
	pending []string
	eof     bool
}

func (r *dirReader) Next() (string, error) {
	if r.f == nil {
		return "", files.ErrReaderClosed
	}
	switch r.dots {
	case 0:
		r.dots++
		return ".", nil
	case 1:
		r.dots++
		return "..", nil
	}
	for len(r.pending) == 0 {
		if r.eof {
			return "", io.EOF
		}
		names, err := r.f.Readdirnames(readBatch)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.eof = true
				continue
			}
			return "", fmt.Errorf("failed to read %s: %w", r.path, err)
		}
		r.pending = names
	}
	name := r.pending[0]
	r.pending = r.pending[1:]
	return name, nil
}

// Rewind reopens the directory so the next pass sees its current content.
func (r *dirReader) Rewind() error {
	if r.f == nil {
		return files.ErrReaderClosed
	}
	f, err := openDir(r.path)
	if err != nil {
		return err
	}
	_ = r.f.Close()
	r.f = f
	r.dots = 0
	r.pending = nil
	r.eof = false
	return nil
}

func (r *dirReader) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}
