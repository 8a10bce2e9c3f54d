package browser

import (
	"errors"
	"io"

	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/datatug/tugbrowse/pkg/terminal"
)

const (
	columnPadding = 10
	minLongest    = 7
)

// Matcher selects names to leave out of a listing.
type Matcher interface {
	Match(name string) bool
}

// Listing is the content of one directory as shown by the browser.
type Listing struct {
	// Entries are absolute paths: the directory path followed by the name.
	Entries []string
	// Longest is the display width reserved for each entry.
	Longest int
	// Columns is fixed at the first render and kept until the next scan.
	Columns int
}

// Len returns the number of entries.
func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Entries)
}

func skipName(name string, hide Matcher) bool {
	if name == "." {
		return true
	}
	return hide != nil && name != ".." && hide.Match(name)
}

// Scan reads dir twice: once to count entries and measure the widest name,
// then to collect them. path must end with a slash. Entries added between
// the passes are ignored and entries removed shrink the listing.
// Entries come back in directory order.
func Scan(dir files.DirReader, path string, cols int, hide Matcher) (*Listing, error) {
	count, widest := 0, 0
	for {
		name, err := dir.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			break
		}
		if skipName(name, hide) {
			continue
		}
		if w := terminal.DisplayWidth(name); w > widest {
			widest = min(w, cols-1)
		}
		count++
	}
	if err := dir.Rewind(); err != nil {
		return nil, err
	}

	entries := make([]string, 0, count)
	for len(entries) < count {
		name, err := dir.Next()
		if err != nil {
			break
		}
		if skipName(name, hide) {
			continue
		}
		entries = append(entries, path+name)
	}

	longest := widest + columnPadding
	if longest > cols-1 {
		longest = cols - 1
	}
	if longest < minLongest {
		longest = minLongest
	}
	return &Listing{Entries: entries, Longest: longest}, nil
}
