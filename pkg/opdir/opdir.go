// Package opdir confines file access to a single directory tree.
package opdir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/datatug/tugbrowse/pkg/fsutils"
)

var ErrInvalid = errors.New("invalid operating directory")

// OperatingDir is the root of the tree the user may visit. A nil
// *OperatingDir allows everything.
type OperatingDir struct {
	root string
}

// New resolves dir to a full path. The directory must exist.
func New(dir string) (*OperatingDir, error) {
	if dir == "" {
		return nil, nil
	}
	expanded := fsutils.ExpandHome(dir)
	exists, err := fsutils.DirExists(expanded)
	if err != nil || !exists {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, dir)
	}
	full, err := fsutils.FullPath(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, dir, err)
	}
	return &OperatingDir{root: fsutils.WithSlash(full)}, nil
}

// Root returns the operating directory with a trailing slash.
func (o *OperatingDir) Root() string {
	if o == nil {
		return ""
	}
	return o.root
}

// Check reports whether path lies inside the operating directory. Paths
// whose full form cannot be determined are allowed.
func (o *OperatingDir) Check(path string) (bool, string) {
	if o == nil {
		return true, ""
	}
	full, err := fsutils.FullPath(path)
	if err != nil {
		return true, o.root
	}
	return strings.HasPrefix(fsutils.WithSlash(full), o.root), o.root
}
