// Package help shows the key bindings of a keys.Table in a scrollable view.
package help

import (
	"fmt"
	"strings"

	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/datatug/tugbrowse/pkg/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const browserIntro = `File Browser Help Text

 The file browser is used to visually browse the directory structure to select a file for reading or writing. You may use the arrow keys or Page Up/Down to browse through the files, and S or Enter to choose the selected file or enter the selected directory. To move up one level, select the directory called ".." at the top of the file list.

 The following function keys are available in the file browser:
`

// Viewer takes over the edit window to show help text until dismissed.
type Viewer struct {
	win   *terminal.Window
	intro string
}

func NewViewer(win *terminal.Window) *Viewer {
	return &Viewer{win: win, intro: browserIntro}
}

// Text renders the help for table.
func Text(intro string, table keys.Table) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n")
	for _, binding := range table {
		if binding.Help == "" {
			continue
		}
		names := make([]string, 0, len(binding.Keys))
		for _, k := range binding.Keys {
			names = append(names, k.String())
		}
		_, _ = fmt.Fprintf(&b, "%-24s %s\n", strings.Join(names, " "), binding.Help)
	}
	return b.String()
}

// Show displays the help text for table and returns once the user exits.
func (v *Viewer) Show(table keys.Table) error {
	view := tview.NewTextView().
		SetScrollable(true).
		SetWrap(true).
		SetWordWrap(true).
		SetTextStyle(tcell.StyleDefault)
	view.SetBackgroundColor(tcell.ColorDefault)
	view.SetText(tview.Escape(Text(v.intro, table)))
	viewKeys := keys.HelpView()

	v.win.TitleBar("Help", "")
	v.win.BlankStatus()
	v.win.BottomBars(viewKeys)
	for {
		cols, _ := v.win.Size()
		v.win.BlankEdit()
		view.SetRect(0, v.win.EditTop(), cols, v.win.EditRows())
		view.Draw(v.win.Screen())
		v.win.Show()

		var action keys.Action
		switch ev := v.win.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.win.TotalRedraw()
			v.win.TitleBar("Help", "")
			v.win.BottomBars(viewKeys)
			continue
		case *tcell.EventMouse:
			x, y := ev.Position()
			switch {
			case ev.Buttons()&tcell.WheelUp != 0:
				action = keys.MoveUp
			case ev.Buttons()&tcell.WheelDown != 0:
				action = keys.MoveDown
			case ev.Buttons()&tcell.Button1 != 0:
				action, _ = v.win.ShortcutAt(x, y)
			}
		case *tcell.EventKey:
			action, _ = viewKeys.Lookup(ev)
		}

		row, _ := view.GetScrollOffset()
		page := v.win.EditRows()
		switch action {
		case keys.Exit:
			return nil
		case keys.MoveUp:
			view.ScrollTo(max(row-1, 0), 0)
		case keys.MoveDown:
			view.ScrollTo(row+1, 0)
		case keys.PagePrev:
			view.ScrollTo(max(row-page, 0), 0)
		case keys.PageNext:
			view.ScrollTo(row+page, 0)
		}
	}
}
