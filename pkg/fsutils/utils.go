package fsutils

import (
	"errors"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

var osUserHomeDir = os.UserHomeDir
var userLookup = user.Lookup
var evalSymlinks = filepath.EvalSymlinks

// ReadFile decodes filePath into o using a decoder created by newDecoder.
// A missing file is not an error unless required is set.
func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logrus.WithError(err).WithField("file", filePath).Warn("failed to close file")
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands a leading ~ or ~user to the matching home directory.
// Unknown users leave the path untouched.
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	name, rest := p[1:], ""
	if i := strings.IndexByte(p, '/'); i >= 0 {
		name, rest = p[1:i], p[i:]
	}
	var home string
	if name == "" {
		dir, err := osUserHomeDir()
		if err != nil {
			return p
		}
		home = dir
	} else {
		u, err := userLookup(name)
		if err != nil {
			return p
		}
		home = u.HomeDir
	}
	return home + rest
}

// StripOneDir removes the last path element together with the slash before it.
func StripOneDir(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

// WithSlash makes sure dir ends with exactly one trailing slash.
func WithSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

// FullPath returns the absolute, symlink-resolved form of p.
// Directories come back with a trailing slash. For a path that is not a
// directory the parent directory must exist, otherwise os.ErrNotExist is returned.
func FullPath(p string) (string, error) {
	if p == "" {
		return "", os.ErrNotExist
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if isDir, _ := DirExists(abs); isDir {
		resolved, err := evalSymlinks(abs)
		if err != nil {
			return "", err
		}
		return WithSlash(resolved), nil
	}
	parent, name := filepath.Split(abs)
	if isDir, _ := DirExists(parent); !isDir {
		return "", os.ErrNotExist
	}
	resolved, err := evalSymlinks(parent)
	if err != nil {
		return "", err
	}
	return WithSlash(resolved) + name, nil
}
