package files

import (
	"context"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store gives read access to a directory tree.
type Store interface {
	// OpenDir opens a directory for reading its entry names.
	OpenDir(ctx context.Context, path string) (DirReader, error)
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
}

// DirReader streams the names of a directory's entries.
//
// Next returns io.EOF after the last name. The names "." and ".." are
// reported like any other entry.
type DirReader interface {
	Next() (string, error)
	Rewind() error
	Close() error
}
