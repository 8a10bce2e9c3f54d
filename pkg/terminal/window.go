package terminal

import (
	"fmt"

	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/gdamore/tcell/v2"
)

const (
	statusBlankDelay = 26
	shortcutMinWidth = 14
)

type windowOptions struct {
	noHelp     bool
	quickBlank bool
	events     func() tcell.Event
}

type WindowOption func(*windowOptions)

// WithNoHelp hides the two shortcut lines at the bottom.
func WithNoHelp(v bool) WindowOption {
	return func(o *windowOptions) {
		o.noHelp = v
	}
}

// WithQuickBlank blanks status messages after one keystroke instead of 26.
func WithQuickBlank(v bool) WindowOption {
	return func(o *windowOptions) {
		o.quickBlank = v
	}
}

// WithEventSource replaces screen.PollEvent as the source of input events.
func WithEventSource(f func() tcell.Event) WindowOption {
	return func(o *windowOptions) {
		o.events = f
	}
}

// Window splits a tcell screen into the usual editor regions: a title bar,
// the edit window, a status line and two shortcut lines.
type Window struct {
	screen  tcell.Screen
	options windowOptions

	status      string
	statusBlank int

	shortcuts []keys.Binding
	itemWidth int
}

func New(screen tcell.Screen, o ...WindowOption) *Window {
	w := &Window{screen: screen}
	for _, opt := range o {
		opt(&w.options)
	}
	return w
}

func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// Size returns the screen width and height.
func (w *Window) Size() (cols, rows int) {
	return w.screen.Size()
}

func (w *Window) bottomRows() int {
	if w.options.noHelp {
		return 1
	}
	return 3
}

// EditTop is the first screen row of the edit window.
func (w *Window) EditTop() int {
	return 1
}

// EditRows is the height of the edit window, at least 1.
func (w *Window) EditRows() int {
	_, rows := w.Size()
	n := rows - w.EditTop() - w.bottomRows()
	if n < 1 {
		return 1
	}
	return n
}

// StatusRow is the screen row used for status messages and prompts.
func (w *Window) StatusRow() int {
	return w.EditTop() + w.EditRows()
}

// InEditWindow translates screen coordinates into edit window coordinates.
func (w *Window) InEditWindow(x, y int) (int, int, bool) {
	cols, _ := w.Size()
	if x < 0 || x >= cols || y < w.EditTop() || y >= w.EditTop()+w.EditRows() {
		return 0, 0, false
	}
	return x, y - w.EditTop(), true
}

// BlankEdit clears the edit window.
func (w *Window) BlankEdit() {
	cols, _ := w.Size()
	for y := 0; y < w.EditRows(); y++ {
		Fill(w.screen, 0, w.EditTop()+y, cols, tcell.StyleDefault)
	}
}

// TitleBar shows prefix followed by path on the top row. A path too long
// for the row loses its leading part.
func (w *Window) TitleBar(prefix, path string) {
	cols, _ := w.Size()
	style := tcell.StyleDefault.Reverse(true)
	Fill(w.screen, 0, 0, cols, style)
	title := prefix + path
	if DisplayWidth(title) > cols-2 {
		title = prefix + "..." + DisplayTail(path, cols-2-DisplayWidth(prefix)-3)
	}
	x := (cols - DisplayWidth(title)) / 2
	if x < 1 {
		x = 1
	}
	PutString(w.screen, x, 0, title, style, cols-x)
}

// ClearTitle blanks the top row.
func (w *Window) ClearTitle() {
	cols, _ := w.Size()
	Fill(w.screen, 0, 0, cols, tcell.StyleDefault)
}

// StatusBar shows a message that stays until enough keystrokes have passed.
func (w *Window) StatusBar(format string, args ...any) {
	w.status = fmt.Sprintf(format, args...)
	if w.options.quickBlank {
		w.statusBlank = 1
	} else {
		w.statusBlank = statusBlankDelay
	}
	w.drawStatus()
}

// Status returns the message currently on the status line.
func (w *Window) Status() string {
	return w.status
}

func (w *Window) drawStatus() {
	cols, _ := w.Size()
	row := w.StatusRow()
	Fill(w.screen, 0, row, cols, tcell.StyleDefault)
	if w.status == "" {
		return
	}
	text := "[ " + w.status + " ]"
	width := DisplayWidth(text)
	x := (cols - width) / 2
	if x < 0 {
		x = 0
	}
	PutString(w.screen, x, row, text, tcell.StyleDefault.Reverse(true), cols-x)
}

// BlankStatus removes the status message.
func (w *Window) BlankStatus() {
	w.status = ""
	w.statusBlank = 0
	w.drawStatus()
}

// CheckStatusBlank counts one keystroke against the status message.
func (w *Window) CheckStatusBlank() {
	if w.statusBlank == 0 {
		return
	}
	w.statusBlank--
	if w.statusBlank == 0 {
		w.BlankStatus()
	}
}

// Beep rings the terminal bell.
func (w *Window) Beep() {
	_ = w.screen.Beep()
}

// BottomBars draws the labelled bindings of table on the two shortcut lines.
func (w *Window) BottomBars(table keys.Table) {
	w.shortcuts = nil
	w.itemWidth = 0
	if w.options.noHelp {
		return
	}
	cols, rows := w.Size()
	top := rows - 2
	Fill(w.screen, 0, top, cols, tcell.StyleDefault)
	Fill(w.screen, 0, top+1, cols, tcell.StyleDefault)

	shortcuts := table.Shortcuts()
	slots := cols / shortcutMinWidth
	if slots < 1 {
		slots = 1
	}
	if len(shortcuts) > slots*2 {
		shortcuts = shortcuts[:slots*2]
	}
	if len(shortcuts) == 0 {
		return
	}
	w.shortcuts = shortcuts
	w.itemWidth = cols / ((len(shortcuts) + 1) / 2)
	for i, b := range shortcuts {
		x := (i / 2) * w.itemWidth
		y := top + i%2
		n := PutString(w.screen, x, y, b.Label, tcell.StyleDefault.Reverse(true), w.itemWidth)
		if n+1 < w.itemWidth {
			PutString(w.screen, x+n+1, y, b.Desc, tcell.StyleDefault, w.itemWidth-n-2)
		}
	}
}

// ShortcutAt returns the action of the shortcut drawn at (x, y).
func (w *Window) ShortcutAt(x, y int) (keys.Action, bool) {
	if len(w.shortcuts) == 0 || w.itemWidth == 0 {
		return keys.None, false
	}
	_, rows := w.Size()
	row := y - (rows - 2)
	if row < 0 || row > 1 || x < 0 {
		return keys.None, false
	}
	i := (x/w.itemWidth)*2 + row
	if i >= len(w.shortcuts) {
		return keys.None, false
	}
	return w.shortcuts[i].Action, true
}

// Show flushes pending drawing to the terminal.
func (w *Window) Show() {
	w.screen.Show()
}

// TotalRedraw repaints the whole terminal from the screen buffer.
func (w *Window) TotalRedraw() {
	w.screen.Sync()
}

// PollEvent waits for the next input event. A nil event means the input
// has gone away.
func (w *Window) PollEvent() tcell.Event {
	if w.options.events != nil {
		return w.options.events()
	}
	return w.screen.PollEvent()
}
