package tokex

import (
	"fmt"

	"tokex/errkind"
)

// Compile parses pattern as a sequence of tokens over the alphabet a
// and returns the finished, ε-free Machine that matches it.
//
// The grammar, left to right over pattern, with the whole pattern
// treated as an implicit top-level group body:
//
//	escape:      '\' consumes exactly the next token as a literal
//	group:       an IsSubexprOpen token opens a nested range, closed by
//	             its matching IsSubexprClose
//	disjunction: an IsDisjunction token splits its enclosing group body
//	             (or the whole pattern, at the top level) into
//	             alternatives, unioned together
//	wildcard:    a single any-token edge
//	optional:    the previous fragment gains a dangling epsilon exit
//	star:        the previous fragment loops onto itself and gains a
//	             dangling epsilon exit
//	plus:        a deep copy of the previous fragment loops onto itself
//	             and is appended after it
//	literal:     a single fixed-token edge
//
// Fragments are concatenated left to right by Knit, then the whole
// pattern is knitted onto a fresh TagEnd accept node before its
// epsilons are removed.
func Compile[T comparable](a Alphabet[T], pattern []T) (*Machine[T], error) {
	arena, frag, err := buildNFA(a, pattern)
	if err != nil {
		return nil, err
	}

	RemoveEpsilons(frag.Entry, a.Epsilon())

	m := NewMachine(frag.Entry, arena)
	Purge(m)
	return m, nil
}

// CompileNFA compiles pattern like Compile but returns the raw Thompson
// construction, epsilon edges and all, before the ε-closure rewrite.
// It exists for diagram export of the unclosed graph; Compile is what
// every other caller wants.
func CompileNFA[T comparable](a Alphabet[T], pattern []T) (*Machine[T], error) {
	arena, frag, err := buildNFA(a, pattern)
	if err != nil {
		return nil, err
	}
	return NewMachine(frag.Entry, arena), nil
}

func buildNFA[T comparable](a Alphabet[T], pattern []T) (*Arena[T], *Fragment[T], error) {
	arena := NewArena[T]()
	frag, err := compileGroupBody(arena, a, pattern, 0, len(pattern))
	if err != nil {
		return nil, nil, err
	}

	accept := arena.New()
	accept.SetTag(TagEnd)
	Knit(frag, &Fragment[T]{Entry: accept})

	return arena, frag, nil
}

// compileGroupBody compiles the alternatives of pattern[bodyBegin:bodyEnd]
// (a subexpression's body, or the whole pattern at the top level),
// splitting on every disjunction at that body's own nesting level and
// unioning the resulting pieces together.
func compileGroupBody[T comparable](arena *Arena[T], a Alphabet[T], pattern []T, bodyBegin, bodyEnd int) (*Fragment[T], error) {
	disjunctions := splitTopLevelDisjunctions(a, pattern, bodyBegin, bodyEnd)

	bounds := make([]int, 0, len(disjunctions)+2)
	bounds = append(bounds, bodyBegin)
	bounds = append(bounds, disjunctions...)
	bounds = append(bounds, bodyEnd)

	var result *Fragment[T]
	for k := 0; k+1 < len(bounds); k++ {
		segStart := bounds[k]
		if k > 0 {
			segStart++ // skip the disjunction token itself
		}
		segEnd := bounds[k+1]

		piece, err := compileRange(arena, a, pattern, segStart, segEnd)
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = piece
			continue
		}
		Union(result, piece, a.Epsilon())
	}
	return result, nil
}

// compileRange compiles pattern[begin:end] into one fragment, the
// concatenation of everything it contains. It never sees a disjunction
// at its own nesting level: compileGroupBody splits those out before
// calling here.
func compileRange[T comparable](arena *Arena[T], a Alphabet[T], pattern []T, begin, end int) (*Fragment[T], error) {
	var pieces []*Fragment[T]

	for i := begin; i < end; i++ {
		tok := pattern[i]

		switch {
		case a.IsEscape(tok):
			if i+1 >= end {
				return nil, fmt.Errorf("compile pattern: %w", errkind.MalformedPattern{Index: i, Reason: "escape at end of input"})
			}
			i++
			pieces = append(pieces, newLiteralFragment(arena, pattern[i]))

		case a.IsSubexprOpen(tok):
			closeAt, err := scanGroup(a, pattern, i, end)
			if err != nil {
				return nil, err
			}
			frag, err := compileGroupBody(arena, a, pattern, i+1, closeAt)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, frag)
			i = closeAt

		case a.IsSubexprClose(tok):
			return nil, fmt.Errorf("compile pattern: %w", errkind.MalformedPattern{Index: i, Reason: "unmatched subexpression close"})

		case a.IsDisjunction(tok):
			// compileGroupBody pre-splits every disjunction at this
			// range's own nesting level; reaching one here means the
			// caller handed compileRange a range it should not have.
			return nil, fmt.Errorf("compile pattern: %w", errkind.MalformedPattern{Index: i, Reason: "unexpected disjunction"})

		case a.IsWildcard(tok):
			pieces = append(pieces, newLiteralFragment(arena, a.Wildcard()))

		case a.IsOptional(tok):
			last, err := lastPiece(pieces, i, "'?'")
			if err != nil {
				return nil, err
			}
			last.Entry.SetEdge(a.Epsilon(), nil)

		case a.IsStar(tok):
			last, err := lastPiece(pieces, i, "'*'")
			if err != nil {
				return nil, err
			}
			Knit(last, last)
			last.Entry.SetEdge(a.Epsilon(), nil)

		case a.IsPlus(tok):
			last, err := lastPiece(pieces, i, "'+'")
			if err != nil {
				return nil, err
			}
			loop := deepCopy(arena, last)
			Knit(loop, loop)
			loop.Entry.SetEdge(a.Epsilon(), nil)
			Knit(last, loop)

		default:
			pieces = append(pieces, newLiteralFragment(arena, tok))
		}
	}

	return concatFragments(arena, a, pieces), nil
}

func lastPiece[T comparable](pieces []*Fragment[T], at int, quantifier string) (*Fragment[T], error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("compile pattern: %w", errkind.MalformedPattern{Index: at, Reason: quantifier + " with no preceding element"})
	}
	return pieces[len(pieces)-1], nil
}

// concatFragments knits pieces together left to right. An empty pattern
// (or an empty group body, or an empty alternative) compiles to a
// fragment whose entry is itself a dangling epsilon exit, matching the
// empty string.
func concatFragments[T comparable](arena *Arena[T], a Alphabet[T], pieces []*Fragment[T]) *Fragment[T] {
	if len(pieces) == 0 {
		n := arena.New()
		n.SetEdge(a.Epsilon(), nil)
		return &Fragment[T]{Entry: n}
	}
	frag := pieces[0]
	for _, next := range pieces[1:] {
		Knit(frag, next)
	}
	return frag
}

// scanGroup finds the subexpression close matching the open at
// pattern[open], skipping over escaped tokens and nested groups.
func scanGroup[T comparable](a Alphabet[T], pattern []T, open, end int) (closeAt int, err error) {
	depth := 0
	for i := open; i < end; i++ {
		tok := pattern[i]
		if a.IsEscape(tok) {
			i++
			continue
		}
		switch {
		case a.IsSubexprOpen(tok):
			depth++
		case a.IsSubexprClose(tok):
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("compile pattern: %w", errkind.MalformedPattern{Index: open, Reason: "unmatched subexpression open"})
}

// splitTopLevelDisjunctions returns the positions of every disjunction
// token within pattern[begin:end] that sits at that range's own nesting
// level - inside no further subexpression than the caller already
// stripped off - skipping escaped tokens.
func splitTopLevelDisjunctions[T comparable](a Alphabet[T], pattern []T, begin, end int) []int {
	depth := 0
	var out []int
	for i := begin; i < end; i++ {
		tok := pattern[i]
		if a.IsEscape(tok) {
			i++
			continue
		}
		switch {
		case a.IsSubexprOpen(tok):
			depth++
		case a.IsSubexprClose(tok):
			depth--
		case a.IsDisjunction(tok) && depth == 0:
			out = append(out, i)
		}
	}
	return out
}
