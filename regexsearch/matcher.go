package regexsearch

import (
	"unicode/utf8"

	"github.com/phroun/termsearch/grid"
	"github.com/phroun/termsearch/regexsearch/automaton"
)

// directionalMatch drives a compiled automaton byte-by-byte across the
// grid from start toward end, returning the farthest point at which the
// automaton reached a match state, or ok=false if no match occurred
// before a dead state or end was reached.
//
// Match detection differs from the lookahead-based DFA this contract was
// modeled on: that automaton only exposes "did the previous byte complete
// a match" on the following transition, so a match is recorded one byte
// late, against the previous character's point. This package's automaton
// (github.com/phroun/termsearch/regexsearch/automaton) marks IsMatchState
// as soon as a match NFA state enters the subset's epsilon closure, with
// no such lag — so the match check here runs immediately after the last
// byte of the *current* character, against the current character's
// point, and NextEOI is a no-op. See DESIGN.md.
func directionalMatch(g *grid.Grid, a *automaton.Automaton, start, end grid.Point, dir grid.Direction, anchored bool) (grid.Point, bool) {
	state := a.Start(anchored)

	cur := g.IterFrom(start)
	cell, point := skipFullwidth(g, cur, cur.Cell(), dir)

	var best grid.Point
	haveBest := false
	done := false

	for {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], cell.Char)
		for i := 0; i < n; i++ {
			b := buf[i]
			if dir == grid.Left {
				b = buf[n-i-1]
			}
			state = a.Next(state, b)
			if a.IsDeadState(state) {
				return best, haveBest
			}
		}
		if a.IsMatchState(state) {
			best, haveBest = point, true
		}

		if point == end || done {
			state = a.NextEOI(state)
			if a.IsMatchState(state) {
				best, haveBest = point, true
			}
			return best, haveBest
		}

		lastPoint := point
		var nextPoint grid.Point
		var nextCell grid.Cell
		var ok bool
		if dir == grid.Right {
			nextPoint, nextCell, ok = cur.Next()
		} else {
			nextPoint, nextCell, ok = cur.Prev()
		}

		if !ok {
			landing := mirrorPoint(g, lastPoint)
			cur = g.IterFrom(landing)
			done = landing == end
			cell, point = skipFullwidth(g, cur, cur.Cell(), dir)
			continue
		}

		done = nextPoint == end
		cell, point = skipFullwidth(g, cur, nextCell, dir)

		if isLogicalLinebreak(g, lastPoint, point, dir) {
			if haveBest {
				return best, haveBest
			}
			state = a.NextEOI(state)
			if a.IsMatchState(state) {
				best, haveBest = lastPoint, true
			}
			state = a.Start(anchored)
		}
	}
}

// mirrorPoint maps p to the opposite corner of the grid, so that a search
// advancing past the bottom-right continues at the top-left (and vice
// versa), enabling a full-history sweep from any origin.
func mirrorPoint(g *grid.Grid, p grid.Point) grid.Point {
	line := g.TopmostLine() - p.Line + g.ScreenLines() - 1
	column := g.LastColumn() - p.Column
	return grid.Point{Line: line, Column: column}
}

// isLogicalLinebreak reports whether moving from lastPoint to point
// crossed a hard line boundary rather than a soft (WRAPLINE) wrap. Ring-
// buffer wraparound is excluded by construction: the caller never invokes
// this check across a mirrorPoint jump.
func isLogicalLinebreak(g *grid.Grid, lastPoint, point grid.Point, dir grid.Direction) bool {
	last := g.LastColumn()
	switch dir {
	case grid.Right:
		if lastPoint.Column == last && point.Column == 0 {
			return !g.Cell(lastPoint).Flags.Has(grid.WrapLine)
		}
	case grid.Left:
		if lastPoint.Column == 0 && point.Column == last {
			return !g.Cell(point).Flags.Has(grid.WrapLine)
		}
	}
	return false
}
