// Package browser lets the user pick a file by walking directories in a
// full-screen, multi-column listing.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/datatug/tugbrowse/pkg/help"
	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/datatug/tugbrowse/pkg/prompt"
	"github.com/datatug/tugbrowse/pkg/terminal"
	"github.com/sirupsen/logrus"
)

// ErrNoDirectory is returned when no directory could be opened to start browsing.
var ErrNoDirectory = errors.New("no directory to browse")

// Restrictor confines browsing to a directory tree.
type Restrictor interface {
	// Check reports whether path may be visited. root is the top of the
	// permitted tree, reported to the user when a path is refused.
	Check(path string) (allowed bool, root string)
}

// Prompter asks the user for a line of text.
type Prompter interface {
	Prompt(title, seed string, table keys.Table) prompt.Result
}

// HelpViewer explains the bindings of a table.
type HelpViewer interface {
	Show(table keys.Table) error
}

type unrestricted struct{}

func (unrestricted) Check(string) (bool, string) {
	return true, ""
}

type browserOptions struct {
	restrictor Restrictor
	less       Less
	prompter   Prompter
	help       HelpViewer
	noHelpSet  bool
	logger     logrus.FieldLogger
	hide       Matcher
}

type Option func(o *browserOptions)

func WithRestrictor(r Restrictor) Option {
	return func(o *browserOptions) {
		o.restrictor = r
	}
}

// WithLess replaces the default DirsFirstCollated ordering.
func WithLess(less Less) Option {
	return func(o *browserOptions) {
		o.less = less
	}
}

func WithPrompter(p Prompter) Option {
	return func(o *browserOptions) {
		o.prompter = p
	}
}

// WithHelp sets the help viewer. A nil viewer disables help.
func WithHelp(h HelpViewer) Option {
	return func(o *browserOptions) {
		o.help = h
		o.noHelpSet = h == nil
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *browserOptions) {
		o.logger = logger
	}
}

// WithHide leaves names matched by m out of listings. ".." is always shown.
func WithHide(m Matcher) Option {
	return func(o *browserOptions) {
		o.hide = m
	}
}

// Browser runs the interactive file picker on a terminal window.
type Browser struct {
	win   *terminal.Window
	store files.Store
	o     browserOptions

	// current is the directory being browsed.
	current string
	// answer is the last text typed at the Go To Directory prompt.
	answer string
	// search is the last Where Is pattern.
	search string
	// pending is an action queued to run before reading the next event.
	pending keys.Action
}

func New(win *terminal.Window, store files.Store, options ...Option) *Browser {
	b := &Browser{
		win:   win,
		store: store,
	}
	for _, option := range options {
		option(&b.o)
	}
	if b.o.restrictor == nil {
		b.o.restrictor = unrestricted{}
	}
	if b.o.less == nil {
		b.o.less = DirsFirstCollated()
	}
	if b.o.prompter == nil {
		b.o.prompter = prompt.New(win, prompt.WithCompleter(prompt.DirCompleter(func() string {
			return b.current
		})))
	}
	if b.o.help == nil && !b.o.noHelpSet {
		b.o.help = help.NewViewer(win)
	}
	if b.o.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		b.o.logger = logger
	}
	return b
}

// BrowseFrom starts browsing at the directory best matching hint and
// returns the path of the chosen file, or "" when the user exits.
func (b *Browser) BrowseFrom(ctx context.Context, hint string) (string, error) {
	path, dir, err := b.resolve(ctx, hint)
	if err != nil {
		b.win.Beep()
		b.o.logger.WithError(err).WithField("hint", hint).Warn("no directory to browse")
		return "", err
	}
	return b.browse(ctx, path, dir)
}

// Browse starts browsing at dir.
func (b *Browser) Browse(ctx context.Context, dir string) (string, error) {
	path := b.dirPath(dir)
	reader, err := b.store.OpenDir(ctx, path)
	if err != nil {
		b.win.Beep()
		return "", fmt.Errorf("%w: %s: %w", ErrNoDirectory, path, err)
	}
	return b.browse(ctx, path, reader)
}

// browse runs one session per directory until a file is chosen or the
// user leaves.
func (b *Browser) browse(ctx context.Context, path string, dir files.DirReader) (string, error) {
	for {
		listing, err := b.scan(dir, path)
		if err != nil {
			b.win.Beep()
			return "", fmt.Errorf("%w: %s: %w", ErrNoDirectory, path, err)
		}
		b.o.logger.WithField("dir", path).Info("browsing")
		out := newSession(b, path, listing).run(ctx)
		if out.dir != nil {
			path, dir = out.path, out.dir
			continue
		}
		b.leave()
		if out.err != nil {
			return "", out.err
		}
		return out.result, nil
	}
}

// scan builds and sorts the listing of dir, then closes it.
func (b *Browser) scan(dir files.DirReader, path string) (*Listing, error) {
	defer func() {
		if err := dir.Close(); err != nil {
			b.o.logger.WithError(err).WithField("dir", path).Warn("failed to close directory")
		}
	}()
	cols, _ := b.win.Size()
	listing, err := Scan(dir, path, cols, b.o.hide)
	if err != nil {
		return nil, err
	}
	sortEntries(listing.Entries, b.store, b.o.less)
	b.o.logger.WithFields(logrus.Fields{
		"dir":     path,
		"entries": listing.Len(),
		"longest": listing.Longest,
	}).Debug("scanned directory")
	return listing, nil
}

func (b *Browser) leave() {
	b.win.BlankEdit()
	b.win.ClearTitle()
	b.win.Show()
}

func (b *Browser) showHelp(table keys.Table) {
	if b.o.help == nil {
		b.win.StatusBar("Help is disabled")
		return
	}
	if err := b.o.help.Show(table); err != nil {
		b.o.logger.WithError(err).Warn("help viewer failed")
	}
}
