package browser

import (
	"testing"

	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestMapKey(t *testing.T) {
	t.Parallel()
	table := keys.Browser()
	tests := []struct {
		name     string
		event    *tcell.EventKey
		expected keys.Action
	}{
		{"table_first", tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), keys.PageNext},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), keys.PageNext},
		{"minus", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), keys.PagePrev},
		{"question", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), keys.Help},
		{"e", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), keys.Exit},
		{"E", tcell.NewEventKey(tcell.KeyRune, 'E', tcell.ModNone), keys.Exit},
		{"g", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), keys.GoToDir},
		{"G", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone), keys.GoToDir},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), keys.Select},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), keys.Select},
		{"alt_s_ignored", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModAlt), keys.None},
		{"unknown_rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), keys.None},
		{"unknown_key", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), keys.None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapKey(tt.event, table))
		})
	}
}

func TestClickSelection(t *testing.T) {
	t.Parallel()
	// 4 columns of 17 cells, 5 rows per page, 30 entries.
	base := clickParams{Longest: 15, Width: 4, Rows: 5, N: 30}

	tests := []struct {
		name     string
		x, y     int
		selected int
		expected int
		confirm  bool
	}{
		{"first_cell", 0, 0, 5, 0, false},
		{"second_column", 17, 0, 0, 1, false},
		{"second_row", 0, 1, 0, 4, false},
		{"same_entry_confirms", 18, 1, 5, 5, true},
		{"second_page", 0, 0, 21, 20, false},
		{"right_of_last_column", 4*17 + 1, 0, 0, 3, false},
		{"edge_of_last_column", 4 * 17, 0, 0, 4, false},
		{"past_end_clamps", 0, 4, 21, 29, false},
		{"clamp_before_compare", 17 * 3, 4, 29, 29, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.X, p.Y, p.Selected = tt.x, tt.y, tt.selected
			selected, confirm := clickSelection(p)
			assert.Equal(t, tt.expected, selected)
			assert.Equal(t, tt.confirm, confirm)
		})
	}
}
