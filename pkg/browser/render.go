package browser

import (
	"os"

	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/datatug/tugbrowse/pkg/fsutils"
	"github.com/datatug/tugbrowse/pkg/terminal"
	"github.com/gdamore/tcell/v2"
)

// annotationWidth is the widest annotation: "(dir)", "--" or "%4d KB".
const annotationWidth = 7

// Annotation returns the text shown after an entry's name.
func Annotation(store files.Store, path string) string {
	info, err := store.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink != 0 {
		if target, err := store.Stat(path); err == nil && target.IsDir() {
			return "(dir)"
		}
		return "--"
	}
	if info.IsDir() {
		return "(dir)"
	}
	return fsutils.SizeAnnotation(info.Size())
}

// entryName returns the part of an entry after the directory path.
func entryName(entry string) string {
	for i := len(entry) - 1; i >= 0; i-- {
		if entry[i] == '/' {
			return entry[i+1:]
		}
	}
	return entry
}

// displayName fits name into the space left of the annotation. Names that
// do not fit keep their end and start with "...".
func displayName(name string, longest, cols int) string {
	room := longest - annotationWidth - 1
	if cols >= 15 && room > 3 && terminal.DisplayWidth(name) > room {
		return "..." + terminal.DisplayTail(name, room-3)
	}
	text, _ := terminal.DisplayString(name, longest)
	return text
}

// render draws the page holding the selected entry.
func (s *session) render() {
	win := s.b.win
	screen := win.Screen()
	cols, _ := win.Size()
	if s.listing.Columns == 0 {
		s.listing.Columns = ColumnsFor(cols, s.listing.Longest)
	}
	page := Page(LayoutParams{
		N:         s.listing.Len(),
		Selected:  s.selected,
		Width:     s.listing.Columns,
		Rows:      win.EditRows(),
		TermWidth: cols,
		Longest:   s.listing.Longest,
	})

	win.BlankEdit()
	longest := s.listing.Longest
	for i := page.Start; i < page.End; i++ {
		row, col := Position(i-page.Start, page.Width, longest)
		y := win.EditTop() + row
		style := tcell.StyleDefault
		if i == s.selected {
			style = style.Reverse(true)
		}
		entry := s.listing.Entries[i]
		terminal.Fill(screen, col, y, longest, style)
		terminal.PutString(screen, col, y, displayName(entryName(entry), longest, cols), style, longest)
		annotation := Annotation(s.b.store, entry)
		terminal.PutString(screen, col+longest-len(annotation), y, annotation, style, len(annotation))
	}
	win.Show()
}
