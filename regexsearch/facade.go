package regexsearch

import "github.com/phroun/termsearch/grid"

// SearchNext is the top-level search entry point: expand the origin over
// any wide character it sits on, compute a bounded scan window, and
// return the first match in that window whose relevant endpoint has
// reached or passed the origin — falling back to the window's very first
// match if none qualifies, so the function always returns a match when
// one exists in the window (the behavior a wrap-around "find next" UI
// needs). maxLines of nil means unbounded.
func SearchNext(g *grid.Grid, rs *RegexSearch, origin grid.Point, dir grid.Direction, side Side, maxLines *int) (Match, bool) {
	origin = g.ExpandWide(origin, dir)

	windowStart, windowEnd := scanWindow(g, origin, dir, maxLines)

	it := NewMatchIterator(g, rs, windowStart, windowEnd, dir)

	var fallback Match
	haveFallback := false

	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		if !haveFallback {
			fallback = m
			haveFallback = true
		}
		if pastOrigin(m.Point(side), origin, dir, side) {
			return m, true
		}
	}

	return fallback, haveFallback
}

// pastOrigin reports whether p has reached or passed origin in the
// direction of travel; p is the match endpoint the caller picked by side.
func pastOrigin(p, origin grid.Point, dir grid.Direction, side Side) bool {
	switch dir {
	case grid.Right:
		return origin.LessEq(p)
	default: // grid.Left
		return p.LessEq(origin)
	}
}

// scanWindow computes [windowStart, windowEnd]: windowStart is the
// opposite-direction line edge of origin's logical line (so the window
// always covers the whole line origin sits on, letting SearchNext see
// matches that started before origin), and windowEnd is up to maxLines
// lines beyond origin in the direction of travel.
//
// When maxLines is nil or the cap would cover (almost) the whole grid,
// windowEnd instead becomes the single cell just before windowStart,
// computed with unclamped (BoundaryNone) arithmetic so it can fall
// outside the currently materialized line range. That forces
// directionalMatch's mirror-corner wraparound to sweep the entire ring
// buffer back around to just short of where it began, enabling a full-
// history search from any origin rather than stopping at the nearer
// edge of the grid.
func scanWindow(g *grid.Grid, origin grid.Point, dir grid.Direction, maxLines *int) (start, end grid.Point) {
	var bounded *int
	if maxLines != nil && *maxLines+1 < g.TotalLines() {
		bounded = maxLines
	}

	switch dir {
	case grid.Right:
		start = LineSearchLeft(g, origin)
		if bounded != nil {
			line := g.ClampLine(origin.Line + *bounded)
			end = grid.Point{Line: line, Column: g.LastColumn()}
		} else {
			end = g.Sub(start, grid.BoundaryNone, 1)
			if end.Line < g.TopmostLine() {
				// start sat at the grid's absolute top-left, so "one cell
				// before it" wraps past the other edge of the ring to the
				// absolute bottom-right, the same corner mirrorPoint would
				// land on — not an address below topmost, which no cursor
				// step ever produces and would leave directionalMatch
				// mirror-wrapping forever in search of an end it can never
				// reach.
				end = grid.Point{Line: g.ScreenLines() - 1, Column: g.LastColumn()}
			}
		}
	default: // grid.Left
		start = LineSearchRight(g, origin)
		if bounded != nil {
			line := g.ClampLine(origin.Line - *bounded)
			end = grid.Point{Line: line, Column: 0}
		} else {
			end = g.Add(start, grid.BoundaryNone, 1)
			if end.Line > g.ScreenLines()-1 {
				end = grid.Point{Line: g.TopmostLine(), Column: 0}
			}
		}
	}
	return start, end
}
