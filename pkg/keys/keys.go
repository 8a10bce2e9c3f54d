package keys

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

const modMask = tcell.ModAlt | tcell.ModCtrl

// Key is one physical key combination a Binding reacts to.
type Key struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Code binds a non-rune key such as tcell.KeyCtrlG or tcell.KeyF1.
func Code(k tcell.Key) Key {
	return Key{Key: k}
}

func Alt(r rune) Key {
	return Key{Key: tcell.KeyRune, Rune: r, Mod: tcell.ModAlt}
}

func Rune(r rune) Key {
	return Key{Key: tcell.KeyRune, Rune: r}
}

// String renders k in shortcut-bar notation: ^G, M-G, F1, Up.
func (k Key) String() string {
	if k.Key == tcell.KeyRune {
		r := string(k.Rune)
		if k.Rune == ' ' {
			r = "Space"
		}
		if k.Mod&tcell.ModAlt != 0 {
			return "M-" + strings.ToUpper(r)
		}
		return r
	}
	name, ok := tcell.KeyNames[k.Key]
	if !ok {
		return "?"
	}
	if ctrl, found := strings.CutPrefix(name, "Ctrl-"); found {
		return "^" + ctrl
	}
	return name
}

// Matches reports whether ev was produced by k.
func (k Key) Matches(ev *tcell.EventKey) bool {
	key, r, mod := Normalize(ev)
	if k.Key != tcell.KeyRune {
		return key == k.Key
	}
	return key == tcell.KeyRune && r == k.Rune && mod&modMask == k.Mod&modMask
}

// Normalize folds a Ctrl+letter reported as a rune into its tcell.KeyCtrl* code.
func Normalize(ev *tcell.EventKey) (tcell.Key, rune, tcell.ModMask) {
	key, r, mod := ev.Key(), ev.Rune(), ev.Modifiers()
	if key == tcell.KeyRune && mod&tcell.ModCtrl != 0 && mod&tcell.ModAlt == 0 {
		switch {
		case r >= 'a' && r <= 'z':
			return tcell.KeyCtrlA + tcell.Key(r-'a'), 0, mod
		case r >= '@' && r <= '_':
			return tcell.KeyCtrlSpace + tcell.Key(r-'@'), 0, mod
		}
	}
	return key, r, mod
}

// Binding ties keys to an action. Bindings with a Label are shown on the
// shortcut bar.
type Binding struct {
	Keys   []Key
	Label  string
	Desc   string
	Help   string
	Action Action
}

// Table is an ordered list of bindings; the first match wins.
type Table []Binding

// Lookup returns the action bound to ev.
func (t Table) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev == nil {
		return None, false
	}
	for _, b := range t {
		for _, k := range b.Keys {
			if k.Matches(ev) {
				return b.Action, true
			}
		}
	}
	return None, false
}

// Find returns the first binding for action.
func (t Table) Find(action Action) (Binding, bool) {
	for _, b := range t {
		if b.Action == action {
			return b, true
		}
	}
	return Binding{}, false
}

// Shortcuts returns the bindings that have a label, in table order.
func (t Table) Shortcuts() []Binding {
	shortcuts := make([]Binding, 0, len(t))
	for _, b := range t {
		if b.Label != "" {
			shortcuts = append(shortcuts, b)
		}
	}
	return shortcuts
}
