package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/datatug/tugbrowse/pkg/fsutils"
)

var getwd = os.Getwd

func (b *Browser) isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := b.store.Stat(path)
	return err == nil && info.IsDir()
}

// dirPath makes path absolute with a single trailing slash, collapsing
// "." and ".." and resolving symlinks where the filesystem allows it.
func (b *Browser) dirPath(path string) string {
	if full, err := fsutils.FullPath(path); err == nil {
		return fsutils.WithSlash(full)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return fsutils.WithSlash(abs)
}

// resolve turns a user supplied hint into a directory to browse and opens it.
// A hint naming a file falls back to the file's directory, anything else
// unusable falls back to the working directory, or to the restriction root
// when the working directory is unknown.
func (b *Browser) resolve(ctx context.Context, hint string) (string, files.DirReader, error) {
	path := fsutils.ExpandHome(hint)
	var wdErr error
	if !b.isDir(path) {
		path = fsutils.StripOneDir(path)
		if !b.isDir(path) {
			if path, wdErr = getwd(); wdErr != nil {
				b.o.logger.WithError(wdErr).Warn("cannot determine working directory")
				path = ""
			}
		}
	}
	if allowed, root := b.o.restrictor.Check(path); !allowed || (path == "" && root != "") {
		path = root
	}
	if path == "" {
		if wdErr == nil {
			wdErr = os.ErrNotExist
		}
		return "", nil, fmt.Errorf("%w: %w", ErrNoDirectory, wdErr)
	}
	path = b.dirPath(path)
	dir, err := b.store.OpenDir(ctx, path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrNoDirectory, path, err)
	}
	return path, dir, nil
}
