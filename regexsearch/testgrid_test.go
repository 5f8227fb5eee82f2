package regexsearch

import (
	"testing"

	"github.com/phroun/termsearch/grid"
)

// wideRunes lists the double-column characters these fixtures use. A real
// grid would consult an East-Asian-width table; test fixtures only need
// the handful of characters the scenarios below actually use.
var wideRunes = map[rune]bool{
	'🦇': true,
}

// buildGrid turns a literal layout into a grid.Grid. "\r\n" marks a hard
// line break; "\n" marks a soft wrap (the previous physical row's
// last-column cell gets WrapLine set). Wide runes occupy two columns: the
// first gets WideChar, the second WideCharSpacer, both carrying the same
// rune. If a wide rune would land on the final column, a
// LeadingWideCharSpacer is written there instead and the wide rune starts
// at column 0 of the next row.
func buildGrid(t *testing.T, layout string, cols, screenLines int) *grid.Grid {
	t.Helper()

	type row struct {
		cells []grid.Cell
	}
	var rows []row
	cur := row{cells: make([]grid.Cell, 0, cols)}

	finish := func(wrap bool) {
		for len(cur.cells) < cols {
			cur.cells = append(cur.cells, grid.EmptyCell())
		}
		if wrap && len(cur.cells) > 0 {
			cur.cells[cols-1].Flags |= grid.WrapLine
		}
		rows = append(rows, cur)
		cur = row{cells: make([]grid.Cell, 0, cols)}
	}

	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\r' && i+1 < len(runes) && runes[i+1] == '\n':
			finish(false)
			i++
		case r == '\n':
			finish(true)
		case wideRunes[r]:
			if len(cur.cells) == cols-1 {
				cur.cells = append(cur.cells, grid.Cell{Char: r, Flags: grid.LeadingWideCharSpacer | grid.WideCharSpacer})
				finish(false)
				cur.cells = append(cur.cells, grid.Cell{Char: r, Flags: grid.WideChar})
				cur.cells = append(cur.cells, grid.Cell{Char: r, Flags: grid.WideCharSpacer})
			} else {
				cur.cells = append(cur.cells, grid.Cell{Char: r, Flags: grid.WideChar})
				cur.cells = append(cur.cells, grid.Cell{Char: r, Flags: grid.WideCharSpacer})
			}
		default:
			cur.cells = append(cur.cells, grid.Cell{Char: r})
		}
	}
	if len(cur.cells) > 0 {
		finish(false)
	}

	if screenLines > len(rows) {
		screenLines = len(rows)
	}
	g := grid.NewGrid(screenLines, cols)
	topmost := screenLines - len(rows)
	for i, rw := range rows {
		line := topmost + i
		for col, c := range rw.cells {
			g.SetCell(grid.Point{Line: line, Column: col}, c)
		}
	}
	return g
}

func mustBuild(t *testing.T, pattern string) *RegexSearch {
	t.Helper()
	rs, err := Build(pattern)
	if err != nil {
		t.Fatalf("Build(%q) error: %v", pattern, err)
	}
	return rs
}
