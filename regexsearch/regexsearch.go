// Package regexsearch locates regular-expression matches inside a
// terminal's scrollback grid, forward and backward, honoring line-wrap
// continuation and fullwidth characters.
//
// The package drives a compiled pair of automata (one forward, one
// reverse) byte-by-byte across a grid.Grid, recovering both endpoints of
// a match with two passes: an unanchored pass that finds one endpoint,
// and an anchored pass from that endpoint that recovers the other.
package regexsearch

import (
	"fmt"
	"regexp/syntax"
	"strings"
	"unicode"

	"github.com/coregx/coregex/nfa"

	"github.com/phroun/termsearch/grid"
	"github.com/phroun/termsearch/regexsearch/automaton"
)

// Direction and its values are re-exported from grid so callers can name
// them from this package alongside Side, which is defined here.
type Direction = grid.Direction

const (
	Right = grid.Right
	Left  = grid.Left
)

// Side picks which endpoint of a Match a caller is interested in.
type Side int

const (
	// SideLeft selects a match's start point.
	SideLeft Side = iota
	// SideRight selects a match's end point.
	SideRight
)

// Match is an inclusive [Start, End] range in grid order.
type Match struct {
	Start grid.Point
	End   grid.Point
}

// Point returns the Start or End point depending on side.
func (m Match) Point(side Side) grid.Point {
	if side == SideLeft {
		return m.Start
	}
	return m.End
}

// BuildError reports a pattern that failed to compile into a RegexSearch.
// The regex compiler is the only fallible component in this package.
type BuildError struct {
	Pattern string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("regexsearch: build %q: %v", e.Pattern, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// RegexSearch is a compiled-once, query-many set of automata: a forward
// one matching left to right, a reverse one for an unanchored backward
// scan, and a second, separately-built reverse one for an anchored
// backward scan pinned to a known endpoint. The automata determinize
// their states lazily as searches run, so every search mutates them and a
// RegexSearch is not safe for concurrent use from multiple goroutines.
//
// The two reverse automata are not interchangeable with a single
// anchored/unanchored start selection on one NFA: nfa.Reverse's reverse
// start-state construction always produces the same anchored and
// unanchored entry point (it exists to serve an unanchored suffix scan),
// so an anchored walk driven off it can run past the true boundary and
// resolve to the wrong occurrence when the pattern's suffix repeats
// within the scan range. nfa.ReverseAnchored builds a distinct NFA with
// the unanchored `.*?` prefix states excluded, which is what actually
// pins the walk to the known endpoint.
type RegexSearch struct {
	forward         *automaton.Automaton
	reverse         *automaton.Automaton
	reverseAnchored *automaton.Automaton
}

// Build compiles pattern into a RegexSearch. Case sensitivity follows
// "smart case": case-insensitive unless pattern contains an uppercase
// character.
func Build(pattern string) (*RegexSearch, error) {
	hasUpper := strings.IndexFunc(pattern, unicode.IsUpper) >= 0

	re, err := syntax.Parse(pattern, syntaxFlags(hasUpper))
	if err != nil {
		return nil, &BuildError{Pattern: pattern, Err: err}
	}

	compiler := nfa.NewDefaultCompiler()
	forwardNFA, err := compiler.CompileRegexp(re)
	if err != nil {
		return nil, &BuildError{Pattern: pattern, Err: err}
	}

	reverseNFA := nfa.Reverse(forwardNFA)
	reverseAnchoredNFA := nfa.ReverseAnchored(forwardNFA)

	return &RegexSearch{
		forward:         automaton.New(forwardNFA),
		reverse:         automaton.New(reverseNFA),
		reverseAnchored: automaton.New(reverseAnchoredNFA),
	}, nil
}

func syntaxFlags(hasUpper bool) syntax.Flags {
	flags := syntax.Perl
	if !hasUpper {
		flags |= syntax.FoldCase
	}
	return flags
}
