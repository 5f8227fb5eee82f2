package regexsearch

import (
	"testing"

	"github.com/phroun/termsearch/grid"
)

// Property-style checks for the invariants a search core must uphold:
// right/left symmetry, idempotence on a match's own exact range, and
// MatchIterator's non-overlapping ordering guarantee.

func TestSearchRightLeftSymmetry(t *testing.T) {
	g := buildGrid(t, "testing66\r\nAlacritty\n123\r\nAlacritty\r\n123", 9, 5)
	rs := mustBuild(t, "Ala.*123")

	right, ok := rs.SearchRight(g, grid.Point{Line: 1, Column: 0}, grid.Point{Line: 4, Column: 2})
	if !ok {
		t.Fatalf("SearchRight: no match")
	}
	left, ok := rs.SearchLeft(g, grid.Point{Line: 4, Column: 2}, grid.Point{Line: 1, Column: 0})
	if !ok {
		t.Fatalf("SearchLeft: no match")
	}
	if right != left {
		t.Fatalf("symmetry violated: right=%+v left=%+v", right, left)
	}
}

func TestSearchRightIdempotentOnExactRange(t *testing.T) {
	g := buildGrid(t, "testing66\r\nAlacritty\n123\r\nAlacritty\r\n123", 9, 5)
	rs := mustBuild(t, "Ala.*123")

	m, ok := rs.SearchRight(g, grid.Point{Line: 1, Column: 0}, grid.Point{Line: 4, Column: 2})
	if !ok {
		t.Fatalf("SearchRight: no match")
	}

	again, ok := rs.SearchRight(g, m.Start, m.End)
	if !ok {
		t.Fatalf("SearchRight on exact range: no match")
	}
	if again != m {
		t.Fatalf("SearchRight not idempotent: first=%+v, rerun=%+v", m, again)
	}
}

func TestMatchStartLessEqEnd(t *testing.T) {
	g := buildGrid(t, "a🦇x🦇", 6, 1)
	rs := mustBuild(t, "[^ ]*")

	m, ok := rs.SearchRight(g, grid.Point{Line: 0, Column: 0}, grid.Point{Line: 0, Column: 5})
	if !ok {
		t.Fatalf("SearchRight: no match")
	}
	if !m.Start.LessEq(m.End) {
		t.Fatalf("match.Start %v is not <= match.End %v", m.Start, m.End)
	}

	startCell := g.Cell(m.Start)
	if startCell.Flags.Has(grid.WideCharSpacer) && !startCell.Flags.Has(grid.LeadingWideCharSpacer) {
		t.Fatalf("match started on a plain WideCharSpacer cell: %v", m.Start)
	}
}

func TestMatchIteratorNonOverlappingOrder(t *testing.T) {
	g := buildGrid(t, "xxx.xxx.xxx", 11, 1)
	rs := mustBuild(t, "xxx")

	it := NewMatchIterator(g, rs, grid.Point{Line: 0, Column: 0}, grid.Point{Line: 0, Column: 10}, grid.Right)

	var matches []Match
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		matches = append(matches, m)
		if len(matches) > 10 {
			t.Fatalf("iterator did not terminate")
		}
	}

	want := []Match{
		{Start: grid.Point{Line: 0, Column: 0}, End: grid.Point{Line: 0, Column: 2}},
		{Start: grid.Point{Line: 0, Column: 4}, End: grid.Point{Line: 0, Column: 6}},
		{Start: grid.Point{Line: 0, Column: 8}, End: grid.Point{Line: 0, Column: 10}},
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for i, m := range matches {
		if m != want[i] {
			t.Fatalf("match %d = %+v, want %+v", i, m, want[i])
		}
		if i > 0 && !(want[i-1].End.Less(m.Start)) {
			t.Fatalf("matches %d and %d overlap or touch: %+v, %+v", i-1, i, want[i-1], m)
		}
	}
}

func TestMatchIteratorAllowsOneMoreAtEnd(t *testing.T) {
	g := buildGrid(t, "xxx", 3, 1)
	rs := mustBuild(t, "xxx")

	it := NewMatchIterator(g, rs, grid.Point{Line: 0, Column: 0}, grid.Point{Line: 0, Column: 2}, grid.Right)
	m, ok := it.Next()
	if !ok {
		t.Fatalf("Next: no match")
	}
	want := Match{Start: grid.Point{Line: 0, Column: 0}, End: grid.Point{Line: 0, Column: 2}}
	if m != want {
		t.Fatalf("Next = %+v, want %+v", m, want)
	}

	if _, ok := it.Next(); ok {
		t.Fatalf("iterator should be exhausted after the end-cell match")
	}
}

// TestSearchRightPinsNestedOccurrence guards against the anchored reverse
// pass resolving to a nearer, nested occurrence of the pattern's suffix
// instead of the one actually bounded by the known match end. Grounded on
// search.rs's own nested_regex test: "Ala -> Alacritty -> critty" against
// Ala[^y]*critty must match the span "Ala -> Alacritty" (columns 0-15),
// not the nested "Alacritty" occurrence starting at column 7 alone.
func TestSearchRightPinsNestedOccurrence(t *testing.T) {
	g := buildGrid(t, "Ala -> Alacritty -> critty", 26, 1)
	rs := mustBuild(t, "Ala[^y]*critty")

	m, ok := rs.SearchRight(g, grid.Point{Line: 0, Column: 0}, grid.Point{Line: 0, Column: 25})
	if !ok {
		t.Fatalf("SearchRight: no match")
	}
	want := Match{
		Start: grid.Point{Line: 0, Column: 0},
		End:   grid.Point{Line: 0, Column: 15},
	}
	if m != want {
		t.Fatalf("SearchRight = %+v, want %+v (anchored reverse pass resolved to the wrong occurrence)", m, want)
	}
}

func TestSearchNextNoneIffIteratorEmpty(t *testing.T) {
	g := buildGrid(t, "aaa\r\nbbb", 3, 2)
	rs := mustBuild(t, "xxx")
	origin := grid.Point{Line: 0, Column: 0}

	_, foundViaFacade := SearchNext(g, rs, origin, grid.Right, SideRight, nil)

	windowStart, windowEnd := scanWindow(g, origin, grid.Right, nil)
	it := NewMatchIterator(g, rs, windowStart, windowEnd, grid.Right)
	_, foundViaIterator := it.Next()

	if foundViaFacade != foundViaIterator {
		t.Fatalf("SearchNext found=%v but window iterator found=%v", foundViaFacade, foundViaIterator)
	}
	if foundViaFacade {
		t.Fatalf("expected no match: pattern is absent from the grid")
	}
}
