// Package automaton turns a Thompson NFA (as produced by
// github.com/coregx/coregex/nfa) into a byte-at-a-time stepping automaton
// via on-demand subset construction — the same determinize-as-you-go
// shape as github.com/coregx/coregex/dfa/lazy, but exposing exactly the
// start/next/next-EOI/is-match/is-dead contract the search core drives,
// rather than a haystack-oriented Find/Search API.
package automaton

import (
	"sort"

	"github.com/coregx/coregex/nfa"
)

// StateID identifies a subset-construction state.
type StateID uint32

const (
	// Dead is the sentinel state from which no further match is possible.
	Dead StateID = 0xFFFFFFFE
	// Invalid marks the absence of a state.
	Invalid StateID = 0xFFFFFFFF
)

// MaxStates bounds how many subset states a single Automaton will build
// before refusing to grow further (mirroring the automaton a search core
// depends on honoring a maximum compiled size; see DESIGN.md for why this
// module enforces the bound lazily rather than at compile time).
const MaxStates = 1 << 20

type dstate struct {
	nfaSet  []nfa.StateID
	isMatch bool
	trans   map[byte]StateID
}

// Automaton is a lazily-determinized DFA over an NFA's byte alphabet.
type Automaton struct {
	nfa             *nfa.NFA
	states          []*dstate
	cache           map[string]StateID
	startAnchored   StateID
	startUnanchored StateID
	overflowed      bool
}

// New builds an Automaton wrapping n. The anchored and unanchored start
// states are determinized eagerly; all other states are built on first
// use from Next.
func New(n *nfa.NFA) *Automaton {
	a := &Automaton{nfa: n, cache: make(map[string]StateID)}
	a.startAnchored = a.intern(a.closure([]nfa.StateID{n.StartAnchored()}))
	a.startUnanchored = a.intern(a.closure([]nfa.StateID{n.StartUnanchored()}))
	return a
}

// Start returns the start state for an anchored or unanchored search.
func (a *Automaton) Start(anchored bool) StateID {
	if anchored {
		return a.startAnchored
	}
	return a.startUnanchored
}

// Next returns the state reached from state by consuming byte b, or Dead
// if no such transition exists (or the automaton has exceeded MaxStates).
func (a *Automaton) Next(state StateID, b byte) StateID {
	if state == Dead || state == Invalid {
		return Dead
	}
	ds := a.states[state]
	if next, ok := ds.trans[b]; ok {
		return next
	}
	if a.overflowed {
		ds.trans[b] = Dead
		return Dead
	}

	var frontier []nfa.StateID
	for _, id := range ds.nfaSet {
		st := a.nfa.State(id)
		if st == nil {
			continue
		}
		switch st.Kind() {
		case nfaByteRange:
			lo, hi, next := st.ByteRange()
			if b >= lo && b <= hi {
				frontier = append(frontier, next)
			}
		case nfaSparse:
			for _, tr := range st.Transitions() {
				if b >= tr.Lo && b <= tr.Hi {
					frontier = append(frontier, tr.Next)
					break
				}
			}
		}
	}

	next := a.intern(a.closure(frontier))
	ds.trans[b] = next
	return next
}

// NextEOI pushes state into its end-of-input transition. Because this
// automaton's subset construction marks IsMatchState as soon as a match
// NFA state enters the epsilon closure — with no one-byte lookahead delay
// — there is no pending signal left to flush at end-of-input; NextEOI is
// therefore the identity function. See DESIGN.md for why this differs
// from the lookahead-based DFA this module's contract was modeled on.
func (a *Automaton) NextEOI(state StateID) StateID {
	return state
}

// IsMatchState reports whether state is an accepting state.
func (a *Automaton) IsMatchState(state StateID) bool {
	if state == Dead || state == Invalid {
		return false
	}
	return a.states[state].isMatch
}

// IsDeadState reports whether state can never lead to a match.
func (a *Automaton) IsDeadState(state StateID) bool {
	return state == Dead || state == Invalid
}

// closure computes the epsilon closure of a set of NFA states, following
// Epsilon, Split, and Capture transitions and collecting the ByteRange,
// Sparse, and Match states that form the frontier of the subset.
func (a *Automaton) closure(starts []nfa.StateID) []nfa.StateID {
	if len(starts) == 0 {
		return nil
	}
	seen := make(map[nfa.StateID]bool, len(starts)*2)
	stack := append([]nfa.StateID(nil), starts...)
	var out []nfa.StateID

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true

		st := a.nfa.State(id)
		if st == nil {
			continue
		}
		switch st.Kind() {
		case nfaEpsilon:
			stack = append(stack, st.Epsilon())
		case nfaSplit:
			left, right := st.Split()
			stack = append(stack, left, right)
		case nfaCapture:
			_, _, next := st.Capture()
			stack = append(stack, next)
		case nfaFail:
			// dead end; contributes nothing to the closure
		default:
			out = append(out, id)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// intern returns the StateID for a (sorted, deduplicated) NFA state set,
// creating a new subset state on first sight.
func (a *Automaton) intern(nfaSet []nfa.StateID) StateID {
	if len(nfaSet) == 0 {
		return Dead
	}
	key := stateKey(nfaSet)
	if id, ok := a.cache[key]; ok {
		return id
	}
	if len(a.states) >= MaxStates {
		a.overflowed = true
		return Dead
	}

	isMatch := false
	for _, id := range nfaSet {
		if a.nfa.IsMatch(id) {
			isMatch = true
			break
		}
	}

	id := StateID(len(a.states))
	a.states = append(a.states, &dstate{
		nfaSet:  nfaSet,
		isMatch: isMatch,
		trans:   make(map[byte]StateID, 8),
	})
	a.cache[key] = id
	return id
}

func stateKey(ids []nfa.StateID) string {
	buf := make([]byte, 0, len(ids)*4)
	for _, id := range ids {
		buf = append(buf, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}
	return string(buf)
}

// Local aliases for the nfa.StateKind constants, so the switch above reads
// without the nfa. prefix on every case.
const (
	nfaEpsilon   = nfa.StateEpsilon
	nfaSplit     = nfa.StateSplit
	nfaCapture   = nfa.StateCapture
	nfaFail      = nfa.StateFail
	nfaByteRange = nfa.StateByteRange
	nfaSparse    = nfa.StateSparse
)
