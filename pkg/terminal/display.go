package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DisplayString converts s to what is shown on screen: control characters
// in caret notation, clipped so it takes at most width columns.
// It returns the text and the number of columns it occupies.
func DisplayString(s string, width int) (string, int) {
	var b strings.Builder
	used := 0
	for _, r := range s {
		text, w := displayRune(r)
		if used+w > width {
			break
		}
		b.WriteString(text)
		used += w
	}
	return b.String(), used
}

// DisplayWidth returns the number of columns DisplayString needs for s.
func DisplayWidth(s string) int {
	width := 0
	for _, r := range s {
		_, w := displayRune(r)
		width += w
	}
	return width
}

func displayRune(r rune) (string, int) {
	switch {
	case r < 0x20:
		return "^" + string(r+'@'), 2
	case r == 0x7f:
		return "^?", 2
	case r >= 0x80 && r < 0xa0:
		return "^" + string(r-0x40), 2
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return " ", 1
	}
	return string(r), w
}

// PutString draws s at (x, y) using at most width columns and returns the
// number of columns written.
func PutString(screen tcell.Screen, x, y int, s string, style tcell.Style, width int) int {
	text, used := DisplayString(s, width)
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return used
}

// Fill paints width cells starting at (x, y) with spaces.
func Fill(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// DisplayTail returns the longest suffix of s that fits into width columns.
func DisplayTail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	used := 0
	i := len(runes)
	for i > 0 {
		_, w := displayRune(runes[i-1])
		if used+w > width {
			break
		}
		used += w
		i--
	}
	return string(runes[i:])
}
