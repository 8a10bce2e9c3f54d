package browser

import (
	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/datatug/tugbrowse/pkg/prompt"
	"github.com/sahilm/fuzzy"
)

// findEntry returns the index of the best fuzzy match for pattern among the
// names of entries. Among equally good matches the first one after from
// wins, wrapping around.
func findEntry(entries []string, pattern string, from int) (int, bool) {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entryName(entry)
	}
	matches := fuzzy.Find(pattern, names)
	if len(matches) == 0 {
		return 0, false
	}
	best := matches[0].Score
	found, distance := -1, len(entries)+1
	for _, m := range matches {
		if m.Score != best {
			continue
		}
		d := (m.Index - from - 1 + len(entries)) % len(entries)
		if d < distance {
			found, distance = m.Index, d
		}
	}
	return found, true
}

// whereIs asks for a pattern and moves the selection to the matching entry.
func (s *session) whereIs() {
	b := s.b
	table := keys.WhereIsPrompt()
	result := b.o.prompter.Prompt("Search", b.search, table)
	switch result.Status {
	case prompt.Cancelled:
		b.win.StatusBar("Cancelled")
		return
	case prompt.Reinvoke:
		b.search = result.Text
		s.runPromptAction(result.Action, table)
		b.pending = keys.WhereIs
		return
	}
	b.search = result.Text
	i, ok := findEntry(s.listing.Entries, result.Text, s.selected)
	if !ok {
		b.win.StatusBar("\"%s\" not found", result.Text)
		return
	}
	if i == s.selected {
		b.win.StatusBar("This is the only occurrence")
	}
	s.selected = i
}
