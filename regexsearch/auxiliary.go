package regexsearch

import "github.com/phroun/termsearch/grid"

// These helpers are not used by the regex search core (SearchFacade,
// MatchIterator, RegexSearch) — they share its Point/Grid machinery but
// serve other consumers: selection double-click (bracket and semantic
// search) and line-edge navigation. LineSearchLeft/LineSearchRight are
// the exception: SearchFacade's scan-window computation (facade.go) also
// calls them, since the window itself must start at a logical line edge.

var bracketPairs = [4][2]rune{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
}

// BracketSearch finds the bracket matching the one at point, scanning
// forward for an opening bracket and backward for a closing one, tracking
// nesting depth of the same pair.
func BracketSearch(g *grid.Grid, point grid.Point) (grid.Point, bool) {
	cell := g.Cell(point)

	for _, pair := range bracketPairs {
		open, close := pair[0], pair[1]
		switch cell.Char {
		case open:
			return scanBracket(g, point, open, close, grid.Right)
		case close:
			return scanBracket(g, point, close, open, grid.Left)
		}
	}
	return grid.Point{}, false
}

func scanBracket(g *grid.Grid, start grid.Point, self, other rune, dir grid.Direction) (grid.Point, bool) {
	cur := g.IterFrom(start)
	depth := 0
	for {
		var p grid.Point
		var c grid.Cell
		var ok bool
		if dir == grid.Right {
			p, c, ok = cur.Next()
		} else {
			p, c, ok = cur.Prev()
		}
		if !ok {
			return grid.Point{}, false
		}
		switch c.Char {
		case self:
			depth++
		case other:
			if depth == 0 {
				return p, true
			}
			depth--
		}
	}
}

// LineSearchLeft walks backward from point across WRAPLINE-joined physical
// lines to find the start (column 0) of point's logical line.
func LineSearchLeft(g *grid.Grid, point grid.Point) grid.Point {
	line := point.Line
	for {
		prevLine := line - 1
		if prevLine < g.TopmostLine() {
			break
		}
		prevLast := g.Cell(grid.Point{Line: prevLine, Column: g.LastColumn()})
		if !prevLast.Flags.Has(grid.WrapLine) {
			break
		}
		line = prevLine
	}
	return grid.Point{Line: line, Column: 0}
}

// LineSearchRight walks forward from point across WRAPLINE-joined physical
// lines to find the end (last column) of point's logical line.
func LineSearchRight(g *grid.Grid, point grid.Point) grid.Point {
	line := point.Line
	bottom := g.ScreenLines() - 1
	for {
		last := g.Cell(grid.Point{Line: line, Column: g.LastColumn()})
		if !last.Flags.Has(grid.WrapLine) || line >= bottom {
			break
		}
		line++
	}
	return grid.Point{Line: line, Column: g.LastColumn()}
}

// SemanticSearchLeft walks left from point while cells are neither spaces
// nor one of escapeChars, returning the leftmost cell of the word. The
// starting line is clamped to topmost_line with max — correct precisely
// because this grid's line numbers increase downward, so topmost_line is
// the smallest line present; see DESIGN.md for why this resolves the
// line-ordering assumption the walk depends on.
func SemanticSearchLeft(g *grid.Grid, point grid.Point, escapeChars string) grid.Point {
	if point.Line < g.TopmostLine() {
		point.Line = g.TopmostLine()
	}
	cur := g.IterFrom(point)
	last := g.LastColumn()
	if isSemanticBreak(cur.Cell(), escapeChars) {
		return point
	}
	for {
		before := cur.Point()
		p, c, ok := cur.Prev()
		if !ok {
			return cur.Point()
		}
		if isSemanticBreak(c, escapeChars) {
			return before
		}
		// Cut off at a hard line break: a last-column cell without
		// WrapLine ends a different logical line, so it is not part of
		// this word.
		if p.Column == last && !c.Flags.Has(grid.WrapLine) {
			return before
		}
	}
}

// SemanticSearchRight is the mirror of SemanticSearchLeft.
func SemanticSearchRight(g *grid.Grid, point grid.Point, escapeChars string) grid.Point {
	if point.Line < g.TopmostLine() {
		point.Line = g.TopmostLine()
	}
	cur := g.IterFrom(point)
	last := g.LastColumn()
	if isSemanticBreak(cur.Cell(), escapeChars) {
		return point
	}
	for {
		before := cur.Point()
		p, c, ok := cur.Next()
		if !ok {
			return cur.Point()
		}
		if isSemanticBreak(c, escapeChars) {
			return before
		}
		// The last-column cell of a hard-broken line still belongs to
		// this word; the cutoff lands after it.
		if p.Column == last && !c.Flags.Has(grid.WrapLine) {
			return p
		}
	}
}

func isSemanticBreak(c grid.Cell, escapeChars string) bool {
	if c.Char == ' ' {
		return true
	}
	for _, r := range escapeChars {
		if c.Char == r {
			return true
		}
	}
	return false
}
