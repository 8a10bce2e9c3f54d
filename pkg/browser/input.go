package browser

import (
	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/gdamore/tcell/v2"
)

// legacyKeys are single letters the browser has always accepted.
var legacyKeys = map[rune]keys.Action{
	' ': keys.PageNext,
	'-': keys.PagePrev,
	'?': keys.Help,
	'e': keys.Exit,
	'E': keys.Exit,
	'g': keys.GoToDir,
	'G': keys.GoToDir,
	's': keys.Select,
	'S': keys.Select,
}

// MapKey translates a key press into a browser action. The shortcut table
// wins; plain letters without a binding fall back to legacyKeys.
func MapKey(ev *tcell.EventKey, table keys.Table) keys.Action {
	if action, ok := table.Lookup(ev); ok {
		return action
	}
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return keys.None
	}
	if action, ok := legacyKeys[ev.Rune()]; ok {
		return action
	}
	return keys.None
}

type clickParams struct {
	// X and Y are relative to the edit window.
	X, Y     int
	Longest  int
	Width    int
	Rows     int
	Selected int
	N        int
}

// clickSelection returns the entry under a click and whether the click
// landed on the entry that was already selected.
func clickSelection(p clickParams) (int, bool) {
	fileline := p.Selected / p.Width
	selected := (fileline/p.Rows)*(p.Rows*p.Width) + p.Y*p.Width + p.X/(p.Longest+2)
	if p.X > p.Width*(p.Longest+2) {
		selected--
	}
	if selected > p.N-1 {
		return p.N - 1, false
	}
	if selected < 0 {
		return 0, false
	}
	return selected, selected == p.Selected
}
