// Package prompt reads one line of text on the status row of a terminal.Window.
package prompt

import (
	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/datatug/tugbrowse/pkg/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Status int

const (
	// Cancelled means the user aborted the prompt or confirmed an empty answer.
	Cancelled Status = iota
	// Confirmed means a non-empty answer was entered.
	Confirmed
	// Reinvoke means a shortcut of the prompt's table was pressed. The caller
	// runs Result.Action and may prompt again seeded with Result.Text.
	Reinvoke
)

// Result is the outcome of one prompt.
type Result struct {
	Status Status
	Text   string
	Action keys.Action
}

// Completer extends text for the Tab key. It returns the new text and
// whether the completion was unambiguous.
type Completer func(text string) (string, bool)

type options struct {
	completer Completer
}

type Option func(*options)

func WithCompleter(c Completer) Option {
	return func(o *options) {
		o.completer = c
	}
}

// Prompter asks questions on the status row of a window.
type Prompter struct {
	win     *terminal.Window
	options options
}

func New(win *terminal.Window, o ...Option) *Prompter {
	p := &Prompter{win: win}
	for _, opt := range o {
		opt(&p.options)
	}
	return p
}

func (p *Prompter) newField(title, seed string) *tview.InputField {
	field := tview.NewInputField().
		SetLabel(title + ": ").
		SetText(seed).
		SetLabelStyle(tcell.StyleDefault).
		SetFieldStyle(tcell.StyleDefault)
	field.SetBackgroundColor(tcell.ColorDefault)
	field.Focus(func(tview.Primitive) {})
	return field
}

func (p *Prompter) layout(field *tview.InputField) {
	cols, _ := p.win.Size()
	field.SetRect(0, p.win.StatusRow(), cols, 1)
}

// Prompt shows title with an editable answer seeded by seed and waits
// until the answer is confirmed, cancelled or a shortcut of table is used.
func (p *Prompter) Prompt(title, seed string, table keys.Table) Result {
	field := p.newField(title, seed)
	p.win.BottomBars(table)
	noFocus := func(tview.Primitive) {}
	for {
		p.layout(field)
		field.Draw(p.win.Screen())
		p.win.Show()

		switch ev := p.win.PollEvent().(type) {
		case nil:
			return Result{Status: Cancelled, Text: field.GetText()}
		case *tcell.EventResize:
			p.win.TotalRedraw()
			p.win.BottomBars(table)
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			if action, ok := p.win.ShortcutAt(x, y); ok {
				if result, done := p.onAction(field, action); done {
					return result
				}
			}
		case *tcell.EventKey:
			if action, ok := table.Lookup(ev); ok {
				if result, done := p.onAction(field, action); done {
					return result
				}
				continue
			}
			if ev.Key() == tcell.KeyEnter {
				text := field.GetText()
				if text == "" {
					return Result{Status: Cancelled}
				}
				return Result{Status: Confirmed, Text: text}
			}
			if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyEscape {
				continue
			}
			field.InputHandler()(ev, noFocus)
		}
	}
}

func (p *Prompter) onAction(field *tview.InputField, action keys.Action) (Result, bool) {
	text := field.GetText()
	switch action {
	case keys.Cancel:
		return Result{Status: Cancelled, Text: text}, true
	case keys.Complete:
		if p.options.completer == nil {
			return Result{}, false
		}
		completed, unique := p.options.completer(text)
		if completed != text {
			field.SetText(completed)
		}
		if !unique {
			p.win.Beep()
		}
		return Result{}, false
	default:
		return Result{Status: Reinvoke, Text: text, Action: action}, true
	}
}
