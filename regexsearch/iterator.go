package regexsearch

import "github.com/phroun/termsearch/grid"

// MatchIterator yields successive non-overlapping matches within
// [start, end] in a given direction. It is a restartable, finite, lazy
// sequence: each call to Next runs one TwoPassSearch from the current
// position.
type MatchIterator struct {
	g     *grid.Grid
	rs    *RegexSearch
	end   grid.Point
	dir   grid.Direction
	point grid.Point
	done  bool
}

// NewMatchIterator builds an iterator scanning [start, end] in direction
// dir using rs over g.
func NewMatchIterator(g *grid.Grid, rs *RegexSearch, start, end grid.Point, dir grid.Direction) *MatchIterator {
	return &MatchIterator{g: g, rs: rs, end: end, dir: dir, point: start}
}

// RegexIter is MatchIterator under the name callers outside this package
// tend to reach for first; the two are the same type.
type RegexIter = MatchIterator

// NewRegexIter mirrors NewMatchIterator's behavior with the constructor
// argument order callers porting from another search implementation will
// expect.
func NewRegexIter(start, end grid.Point, dir grid.Direction, g *grid.Grid, rs *RegexSearch) *RegexIter {
	return NewMatchIterator(g, rs, start, end, dir)
}

// Next returns the next match, or ok=false once the iterator is
// exhausted. Once the scan position reaches end, at most one further
// match is returned (the end cell may itself be a one-cell match) before
// the iterator stops for good.
func (it *MatchIterator) Next() (Match, bool) {
	if it.done {
		return Match{}, false
	}

	var m Match
	var ok bool
	if it.dir == grid.Right {
		m, ok = it.rs.SearchRight(it.g, it.point, it.end)
	} else {
		m, ok = it.rs.SearchLeft(it.g, it.point, it.end)
	}
	if !ok {
		it.done = true
		return Match{}, false
	}

	if it.dir == grid.Right {
		it.point = m.End
	} else {
		it.point = m.Start
	}

	if it.point == it.end {
		it.done = true
	} else {
		it.point = it.skipPastMatch(it.point)
	}
	return m, true
}

// skipPastMatch advances one cell past p in the iteration direction,
// honoring wide-character spacer rules so the next search never starts
// on a spacer cell.
func (it *MatchIterator) skipPastMatch(p grid.Point) grid.Point {
	cur := it.g.IterFrom(p)
	if it.dir == grid.Right {
		// Moving right, the cell after a match is never a plain spacer: a
		// wide char or leading spacer there is already its own visible
		// address, and skipFullwidth would move past it onto the spacer.
		next, _, ok := cur.Next()
		if !ok {
			return p
		}
		return next
	}
	_, cell, ok := cur.Prev()
	if !ok {
		return p
	}
	_, point := skipFullwidth(it.g, cur, cell, it.dir)
	return point
}
