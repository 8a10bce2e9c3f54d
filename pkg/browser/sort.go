package browser

import (
	"sort"

	"github.com/datatug/tugbrowse/pkg/files"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey is what a Less function knows about an entry.
type SortKey struct {
	Path  string
	IsDir bool
}

// Less orders listing entries.
type Less func(a, b SortKey) bool

// DirsFirstCollated puts directories ahead of everything else and orders
// each group by case-insensitive collation of the full path.
func DirsFirstCollated() Less {
	collator := collate.New(language.Und, collate.IgnoreCase)
	return func(a, b SortKey) bool {
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		if c := collator.CompareString(a.Path, b.Path); c != 0 {
			return c < 0
		}
		return a.Path < b.Path
	}
}

// sortEntries orders entries in place. Entries that cannot be stat-ed
// sort as files.
func sortEntries(entries []string, store files.Store, less Less) {
	sortKeys := make([]SortKey, len(entries))
	for i, entry := range entries {
		sortKeys[i].Path = entry
		if info, err := store.Stat(entry); err == nil {
			sortKeys[i].IsDir = info.IsDir()
		}
	}
	sort.SliceStable(sortKeys, func(i, j int) bool {
		return less(sortKeys[i], sortKeys[j])
	})
	for i, k := range sortKeys {
		entries[i] = k.Path
	}
}
