package browser

import (
	"context"
	"path/filepath"

	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/datatug/tugbrowse/pkg/fsutils"
	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/datatug/tugbrowse/pkg/prompt"
	"github.com/gdamore/tcell/v2"
)

const titlePrefix = "DIR: "

// outcome ends a session: either a directory to continue in, or the end
// of browsing with an optional result.
type outcome struct {
	path   string
	dir    files.DirReader
	result string
	err    error
}

// session browses a single directory.
type session struct {
	b        *Browser
	path     string
	listing  *Listing
	selected int
	table    keys.Table
}

func newSession(b *Browser, path string, listing *Listing) *session {
	b.current = path
	return &session{
		b:       b,
		path:    path,
		listing: listing,
		table:   keys.Browser(),
	}
}

func (s *session) drawFrame() {
	s.b.win.TitleBar(titlePrefix, s.path)
	s.b.win.BottomBars(s.table)
}

func (s *session) run(ctx context.Context) outcome {
	s.drawFrame()
	for {
		if err := ctx.Err(); err != nil {
			return outcome{err: err}
		}
		s.render()
		if out, done := s.handle(ctx, s.nextAction()); done {
			return out
		}
	}
}

// nextAction returns the queued action if there is one, otherwise waits
// for input.
func (s *session) nextAction() keys.Action {
	b := s.b
	if b.pending != keys.None {
		action := b.pending
		b.pending = keys.None
		return action
	}
	switch ev := b.win.PollEvent().(type) {
	case nil:
		return keys.Exit
	case *tcell.EventResize:
		b.win.TotalRedraw()
		s.drawFrame()
	case *tcell.EventKey:
		b.win.CheckStatusBlank()
		return MapKey(ev, s.table)
	case *tcell.EventMouse:
		return s.onMouse(ev)
	}
	return keys.None
}

func (s *session) onMouse(ev *tcell.EventMouse) keys.Action {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return keys.MoveUp
	case buttons&tcell.WheelDown != 0:
		return keys.MoveDown
	case buttons&tcell.Button1 == 0:
		return keys.None
	}
	x, y := ev.Position()
	if ex, ey, ok := s.b.win.InEditWindow(x, y); ok {
		if s.listing.Len() == 0 {
			return keys.None
		}
		selected, confirm := clickSelection(clickParams{
			X:        ex,
			Y:        ey,
			Longest:  s.listing.Longest,
			Width:    s.listing.Columns,
			Rows:     s.b.win.EditRows(),
			Selected: s.selected,
			N:        s.listing.Len(),
		})
		s.selected = selected
		if confirm {
			s.b.pending = keys.Select
		}
		return keys.None
	}
	if action, ok := s.b.win.ShortcutAt(x, y); ok {
		return action
	}
	return keys.None
}

// handle applies one action. It reports true when the session is over.
func (s *session) handle(ctx context.Context, action keys.Action) (outcome, bool) {
	switch action {
	case keys.MoveUp, keys.MoveDown, keys.MoveLeft, keys.MoveRight,
		keys.PagePrev, keys.PageNext, keys.FirstFile, keys.LastFile:
		s.selected = move(action, s.selected, s.listing.Len(), s.listing.Columns, s.b.win.EditRows())
	case keys.Refresh:
		s.b.win.TotalRedraw()
	case keys.Help:
		s.b.showHelp(s.table)
		s.drawFrame()
	case keys.WhereIs:
		s.whereIs()
		s.drawFrame()
	case keys.GoToDir:
		return s.goToDir(ctx)
	case keys.Select:
		return s.selectEntry(ctx)
	case keys.Exit:
		return outcome{}, true
	}
	return outcome{}, false
}

// move returns the selection after a movement action over n entries shown
// width per row on pages of rows rows.
func move(action keys.Action, selected, n, width, rows int) int {
	if n == 0 {
		return 0
	}
	if width < 1 {
		width = 1
	}
	if rows < 1 {
		rows = 1
	}
	line := selected / width
	switch action {
	case keys.MoveUp:
		if selected >= width {
			selected -= width
		}
	case keys.MoveDown:
		if selected+width <= n-1 {
			selected += width
		}
	case keys.MoveLeft:
		if selected > 0 {
			selected--
		}
	case keys.MoveRight:
		if selected < n-1 {
			selected++
		}
	case keys.PagePrev:
		if d := (rows + line%rows) * width; selected >= d {
			selected -= d
		} else {
			selected = 0
		}
	case keys.PageNext:
		selected += (rows - line%rows) * width
		if selected >= n {
			selected = n - 1
		}
	case keys.FirstFile:
		selected = 0
	case keys.LastFile:
		selected = n - 1
	}
	return selected
}

// refuse reports a problem on the status bar and beeps.
func (s *session) refuse(format string, args ...any) {
	s.b.win.StatusBar(format, args...)
	s.b.win.Beep()
}

func (s *session) selectEntry(ctx context.Context) (outcome, bool) {
	if s.listing.Len() == 0 {
		return outcome{}, false
	}
	entry := s.listing.Entries[s.selected]
	if entry == "/.." {
		s.refuse("Can't move up a directory")
		return outcome{}, false
	}
	if allowed, root := s.b.o.restrictor.Check(entry); !allowed {
		s.refuse("Can't go outside of %s in restricted mode", root)
		return outcome{}, false
	}
	info, err := s.b.store.Stat(entry)
	if err != nil {
		s.refuse("Error reading %s: %v", entry, err)
		return outcome{}, false
	}
	if !info.IsDir() {
		s.b.o.logger.WithField("file", entry).Info("file selected")
		return outcome{result: entry}, true
	}
	return s.enter(ctx, entry, entry)
}

// enter opens dir and ends the session so browsing continues there.
// shown is the name used in error messages.
func (s *session) enter(ctx context.Context, dir, shown string) (outcome, bool) {
	path := s.b.dirPath(dir)
	reader, err := s.b.store.OpenDir(ctx, path)
	if err != nil {
		s.refuse("Error reading %s: %v", shown, err)
		s.b.o.logger.WithError(err).WithField("dir", path).Warn("failed to open directory")
		return outcome{}, false
	}
	return outcome{path: path, dir: reader}, true
}

func (s *session) goToDir(ctx context.Context) (outcome, bool) {
	b := s.b
	table := keys.GoToDirPrompt()
	result := b.o.prompter.Prompt("Go To Directory", b.answer, table)
	s.drawFrame()
	switch result.Status {
	case prompt.Cancelled:
		b.answer = result.Text
		b.win.StatusBar("Cancelled")
		return outcome{}, false
	case prompt.Reinvoke:
		b.answer = result.Text
		s.runPromptAction(result.Action, table)
		b.pending = keys.GoToDir
		return outcome{}, false
	}
	b.answer = ""
	target := fsutils.ExpandHome(result.Text)
	if !filepath.IsAbs(target) {
		target = s.path + target
	}
	if allowed, root := b.o.restrictor.Check(target); !allowed {
		s.refuse("Can't go outside of %s in restricted mode", root)
		return outcome{}, false
	}
	return s.enter(ctx, target, result.Text)
}

// runPromptAction performs a shortcut pressed while the prompt with
// bindings table was open.
func (s *session) runPromptAction(action keys.Action, table keys.Table) {
	if action == keys.Help {
		s.b.showHelp(table)
		s.drawFrame()
	}
}
