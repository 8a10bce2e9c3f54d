package fsutils

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("exists", func(t *testing.T) {
		exists, err := DirExists(tmpDir)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not_exists", func(t *testing.T) {
		exists, err := DirExists(filepath.Join(tmpDir, "non_existent"))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("is_file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "file.txt")
		err := os.WriteFile(filePath, []byte("test"), 0644)
		assert.NoError(t, err)

		exists, err := DirExists(filePath)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestDirExists_Error(t *testing.T) {
	// A null byte makes os.Stat fail with something other than "not exist".
	_, err := DirExists("path\x00with-null")
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	oldHome, oldLookup := osUserHomeDir, userLookup
	defer func() {
		osUserHomeDir, userLookup = oldHome, oldLookup
	}()
	osUserHomeDir = func() (string, error) { return "/home/me", nil }
	userLookup = func(name string) (*user.User, error) {
		if name == "bob" {
			return &user.User{Username: "bob", HomeDir: "/home/bob"}, nil
		}
		return nil, user.UnknownUserError(name)
	}

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		assert.Equal(t, "/home/me", ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		assert.Equal(t, "/home/me/abc", ExpandHome("~/abc"))
	})
	t.Run("other_user", func(t *testing.T) {
		assert.Equal(t, "/home/bob/src", ExpandHome("~bob/src"))
		assert.Equal(t, "/home/bob", ExpandHome("~bob"))
	})
	t.Run("unknown_user", func(t *testing.T) {
		assert.Equal(t, "~nobody-here/x", ExpandHome("~nobody-here/x"))
	})
	t.Run("home_error", func(t *testing.T) {
		osUserHomeDir = func() (string, error) { return "", errors.New("no home") }
		assert.Equal(t, "~/x", ExpandHome("~/x"))
	})
}

func TestStripOneDir(t *testing.T) {
	assert.Equal(t, "/a/b", StripOneDir("/a/b/c"))
	assert.Equal(t, "/a/b", StripOneDir("/a/b/"))
	assert.Equal(t, "", StripOneDir("/a"))
	assert.Equal(t, "plain", StripOneDir("plain"))
}

func TestWithSlash(t *testing.T) {
	assert.Equal(t, "/a/", WithSlash("/a"))
	assert.Equal(t, "/a/", WithSlash("/a/"))
	assert.Equal(t, "/", WithSlash("/"))
}

func TestFullPath(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	assert.NoError(t, err)
	sub := filepath.Join(tmpDir, "sub")
	assert.NoError(t, os.Mkdir(sub, 0o755))

	t.Run("dir_gets_slash", func(t *testing.T) {
		full, err := FullPath(sub)
		assert.NoError(t, err)
		assert.Equal(t, sub+"/", full)
	})
	t.Run("dot_dot_collapses", func(t *testing.T) {
		full, err := FullPath(sub + "/..")
		assert.NoError(t, err)
		assert.Equal(t, tmpDir+"/", full)
	})
	t.Run("missing_file_in_existing_dir", func(t *testing.T) {
		full, err := FullPath(filepath.Join(sub, "new.txt"))
		assert.NoError(t, err)
		assert.Equal(t, sub+"/new.txt", full)
	})
	t.Run("missing_parent", func(t *testing.T) {
		_, err := FullPath(filepath.Join(tmpDir, "nope", "deeper"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
	t.Run("empty", func(t *testing.T) {
		_, err := FullPath("")
		assert.Error(t, err)
	})
	t.Run("symlink_resolved", func(t *testing.T) {
		link := filepath.Join(tmpDir, "link")
		assert.NoError(t, os.Symlink(sub, link))
		full, err := FullPath(link)
		assert.NoError(t, err)
		assert.Equal(t, sub+"/", full)
	})
}

func TestReadFile(t *testing.T) {
	type A struct {
		B string
	}
	newJSONDecoder := func(r io.Reader) Decoder {
		return json.NewDecoder(r)
	}

	t.Run("not_found_not_required", func(t *testing.T) {
		var a A
		err := ReadFile("non_existent.json", false, &a, newJSONDecoder)
		assert.NoError(t, err)
	})

	t.Run("not_found_required", func(t *testing.T) {
		var a A
		err := ReadFile("non_existent.json", true, &a, newJSONDecoder)
		assert.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "a.json")
		assert.NoError(t, os.WriteFile(fileName, []byte(`{"B": "test"}`), 0o644))
		var a A
		err := ReadFile(fileName, true, &a, newJSONDecoder)
		assert.NoError(t, err)
		assert.Equal(t, "test", a.B)
	})

	t.Run("empty_file", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "empty.json")
		assert.NoError(t, os.WriteFile(fileName, nil, 0o644))
		var a A
		err := ReadFile(fileName, true, &a, newJSONDecoder)
		assert.NoError(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "bad.json")
		assert.NoError(t, os.WriteFile(fileName, []byte(`{invalid}`), 0o644))
		var a A
		err := ReadFile(fileName, true, &a, newJSONDecoder)
		assert.Error(t, err)
	})
}
