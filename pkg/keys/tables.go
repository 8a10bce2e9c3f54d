package keys

import "github.com/gdamore/tcell/v2"

// Browser returns the bindings active while browsing a listing.
func Browser() Table {
	return Table{
		{Label: "^G", Desc: "Help", Action: Help,
			Help: "Display this help text",
			Keys: []Key{Code(tcell.KeyCtrlG), Code(tcell.KeyF1)}},
		{Label: "^X", Desc: "Exit", Action: Exit,
			Help: "Exit from the file browser",
			Keys: []Key{Code(tcell.KeyCtrlX), Code(tcell.KeyF2)}},
		{Label: "^W", Desc: "Where Is", Action: WhereIs,
			Help: "Search for a string",
			Keys: []Key{Code(tcell.KeyCtrlW), Code(tcell.KeyF6)}},
		{Label: "^Y", Desc: "Prev Page", Action: PagePrev,
			Help: "Go one screenful up",
			Keys: []Key{Code(tcell.KeyCtrlY), Code(tcell.KeyF7), Code(tcell.KeyPgUp)}},
		{Label: "^V", Desc: "Next Page", Action: PageNext,
			Help: "Go one screenful down",
			Keys: []Key{Code(tcell.KeyCtrlV), Code(tcell.KeyF8), Code(tcell.KeyPgDn)}},
		{Label: "^_", Desc: "Go To Dir", Action: GoToDir,
			Help: "Go to directory",
			Keys: []Key{Code(tcell.KeyCtrlUnderscore), Code(tcell.KeyF13), Alt('g'), Alt('G')}},
		{Label: "Home", Desc: "First File", Action: FirstFile,
			Help: "Go to the first file in the list",
			Keys: []Key{Code(tcell.KeyHome)}},
		{Label: "End", Desc: "Last File", Action: LastFile,
			Help: "Go to the last file in the list",
			Keys: []Key{Code(tcell.KeyEnd)}},
		{Label: "^L", Desc: "Refresh", Action: Refresh,
			Help: "Refresh (redraw) the current screen",
			Keys: []Key{Code(tcell.KeyCtrlL)}},
		{Desc: "Up", Action: MoveUp, Help: "Go to previous line",
			Keys: []Key{Code(tcell.KeyUp), Code(tcell.KeyCtrlP)}},
		{Desc: "Down", Action: MoveDown, Help: "Go to next line",
			Keys: []Key{Code(tcell.KeyDown), Code(tcell.KeyCtrlN)}},
		{Desc: "Left", Action: MoveLeft, Help: "Go back one character",
			Keys: []Key{Code(tcell.KeyLeft), Code(tcell.KeyCtrlB)}},
		{Desc: "Right", Action: MoveRight, Help: "Go forward one character",
			Keys: []Key{Code(tcell.KeyRight), Code(tcell.KeyCtrlF)}},
		{Desc: "Enter", Action: Select, Help: "Open the selected file or directory",
			Keys: []Key{Code(tcell.KeyEnter)}},
	}
}

// GoToDirPrompt returns the bindings of the Go To Directory prompt.
func GoToDirPrompt() Table {
	return Table{
		{Label: "^G", Desc: "Help", Action: Help,
			Help: "Display this help text",
			Keys: []Key{Code(tcell.KeyCtrlG), Code(tcell.KeyF1)}},
		{Label: "^C", Desc: "Cancel", Action: Cancel,
			Help: "Cancel the current function",
			Keys: []Key{Code(tcell.KeyCtrlC), Code(tcell.KeyEscape)}},
		{Label: "Tab", Desc: "Complete", Action: Complete,
			Help: "Complete the directory name",
			Keys: []Key{Code(tcell.KeyTab)}},
	}
}

// WhereIsPrompt returns the bindings of the Where Is prompt.
func WhereIsPrompt() Table {
	return Table{
		{Label: "^G", Desc: "Help", Action: Help,
			Help: "Display this help text",
			Keys: []Key{Code(tcell.KeyCtrlG), Code(tcell.KeyF1)}},
		{Label: "^C", Desc: "Cancel", Action: Cancel,
			Help: "Cancel the current function",
			Keys: []Key{Code(tcell.KeyCtrlC), Code(tcell.KeyEscape)}},
	}
}

// HelpView returns the bindings of the help viewer.
func HelpView() Table {
	return Table{
		{Label: "^X", Desc: "Exit", Action: Exit,
			Help: "Close the help text",
			Keys: []Key{Code(tcell.KeyCtrlX), Code(tcell.KeyF2), Code(tcell.KeyEscape), Rune('q'), Rune('Q')}},
		{Label: "^Y", Desc: "Prev Page", Action: PagePrev,
			Keys: []Key{Code(tcell.KeyCtrlY), Code(tcell.KeyPgUp)}},
		{Label: "^V", Desc: "Next Page", Action: PageNext,
			Keys: []Key{Code(tcell.KeyCtrlV), Code(tcell.KeyPgDn), Rune(' ')}},
		{Desc: "Up", Action: MoveUp, Keys: []Key{Code(tcell.KeyUp), Code(tcell.KeyCtrlP)}},
		{Desc: "Down", Action: MoveDown, Keys: []Key{Code(tcell.KeyDown), Code(tcell.KeyCtrlN)}},
	}
}
