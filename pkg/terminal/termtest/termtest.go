// Package termtest holds helpers for testing code that draws on a tcell screen.
package termtest

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ReadLine returns the text drawn on row y.
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// IsReverse reports whether the cell at (x, y) is drawn in reverse video.
func IsReverse(screen tcell.Screen, x, y int) bool {
	_, style, _ := screen.Get(x, y)
	_, _, attrs := style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

// NewSimScreen creates an initialized simulation screen of the given size.
func NewSimScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

// Script returns an event source that replays events in order and then
// reports nil, as a closed screen does.
func Script(events ...tcell.Event) func() tcell.Event {
	return func() tcell.Event {
		if len(events) == 0 {
			return nil
		}
		ev := events[0]
		events = events[1:]
		return ev
	}
}

// Key is a shortcut for a key event without modifiers.
func Key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// Rune is a shortcut for a plain rune key event.
func Rune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// Ctrl is a shortcut for a Ctrl+letter key event.
func Ctrl(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

// Type returns one rune event per character of s.
func Type(s string) []tcell.Event {
	events := make([]tcell.Event, 0, len(s))
	for _, r := range s {
		events = append(events, Rune(r))
	}
	return events
}

// Click is a left button press at (x, y).
func Click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}
