package regexsearch

import "github.com/phroun/termsearch/grid"

// SearchRight finds a match starting no earlier than start and ending no
// later than end, searching forward. It runs the forward automaton
// unanchored from start to end to find the match's end point, then the
// anchored reverse automaton, moving left from that end point back
// toward start, to recover the match's start point.
//
// A DFA only reports where a match ends; anchoring at a known endpoint
// and running the oppositely-oriented automaton until it accepts
// recovers the other boundary, because by construction its farthest
// accepted position is the opposite edge of the original match. The
// anchored reverse pass uses a distinct automaton (rs.reverseAnchored,
// not rs.reverse) precisely so it stays pinned to matchEnd rather than
// resolving to a nearer repeated occurrence of the pattern's suffix; see
// RegexSearch's doc comment.
func (rs *RegexSearch) SearchRight(g *grid.Grid, start, end grid.Point) (Match, bool) {
	matchEnd, ok := directionalMatch(g, rs.forward, start, end, grid.Right, false)
	if !ok {
		return Match{}, false
	}
	matchStart, ok := directionalMatch(g, rs.reverseAnchored, matchEnd, start, grid.Left, true)
	if !ok {
		return Match{}, false
	}
	return Match{Start: matchStart, End: matchEnd}, true
}

// SearchLeft is the mirror of SearchRight: it runs the reverse automaton
// unanchored, moving left from start to end, to find the match's start
// point, then the forward automaton anchored, moving right from that
// start point back toward start, to recover the match's end point.
func (rs *RegexSearch) SearchLeft(g *grid.Grid, start, end grid.Point) (Match, bool) {
	matchStart, ok := directionalMatch(g, rs.reverse, start, end, grid.Left, false)
	if !ok {
		return Match{}, false
	}
	matchEnd, ok := directionalMatch(g, rs.forward, matchStart, start, grid.Right, true)
	if !ok {
		return Match{}, false
	}
	return Match{Start: matchStart, End: matchEnd}, true
}
