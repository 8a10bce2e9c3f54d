package browser

// LayoutParams describes a listing and the space available for it.
type LayoutParams struct {
	// N is the number of entries in the listing.
	N        int
	Selected int
	// Width is the number of columns fixed for the listing, 0 if not yet fixed.
	Width     int
	Rows      int
	TermWidth int
	Longest   int
}

// PageRange is the slice [Start, End) of entries shown on the current page.
type PageRange struct {
	Width int
	Start int
	End   int
}

// ColumnsFor returns how many entries of longest display width fit side by
// side, with two blank cells after each. It is never less than 1.
func ColumnsFor(termWidth, longest int) int {
	width := termWidth / (longest + 2)
	if width < 1 {
		return 1
	}
	return width
}

// PageStart returns the index of the first entry on the page holding selected.
func PageStart(selected, width, rows int) int {
	if width < 1 {
		width = 1
	}
	if rows < 1 {
		rows = 1
	}
	return width * rows * ((selected / width) / rows)
}

// Page computes which entries are visible.
func Page(p LayoutParams) PageRange {
	width := p.Width
	if width == 0 {
		width = ColumnsFor(p.TermWidth, p.Longest)
	}
	rows := p.Rows
	if rows < 1 {
		rows = 1
	}
	start := PageStart(p.Selected, width, rows)
	end := start + width*rows
	if end > p.N {
		end = p.N
	}
	return PageRange{Width: width, Start: start, End: end}
}

// Position returns the edit window row and screen column of the k-th entry
// on a page.
func Position(k, width, longest int) (row, col int) {
	return k / width, (k % width) * (longest + 2)
}
