package prompt

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/datatug/tugbrowse/pkg/fsutils"
)

var readDirNames = func(dir string) ([]string, error) {
	entries, err := osReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if isDir(filepath.Join(dir, e.Name())) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// DirCompleter completes the last element of a directory path typed in the
// prompt. Relative input is looked up under base().
func DirCompleter(base func() string) Completer {
	return func(text string) (string, bool) {
		expanded := fsutils.ExpandHome(text)
		dir, prefix := expanded, ""
		if i := strings.LastIndexByte(expanded, '/'); i >= 0 {
			dir, prefix = expanded[:i+1], expanded[i+1:]
		} else {
			dir, prefix = "", expanded
		}
		lookIn := dir
		if !filepath.IsAbs(lookIn) {
			lookIn = filepath.Join(base(), lookIn)
		}
		names, err := readDirNames(lookIn)
		if err != nil {
			return text, false
		}
		var matches []string
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		if len(matches) == 0 {
			return text, false
		}
		sort.Strings(matches)
		common := commonPrefix(matches)
		if len(matches) == 1 {
			return textBefore(text, expanded, dir) + common + "/", true
		}
		return textBefore(text, expanded, dir) + common, false
	}
}

// textBefore keeps what the user typed, tilde included, up to the last slash.
func textBefore(text, expanded, dir string) string {
	if text == expanded {
		return dir
	}
	if i := strings.LastIndexByte(text, '/'); i >= 0 {
		return text[:i+1]
	}
	return dir
}

func commonPrefix(names []string) string {
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
		}
	}
	return prefix
}
