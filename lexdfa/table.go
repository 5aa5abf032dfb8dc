// Package lexdfa builds a dense state x symbol transition table from a
// compiled tokex.Machine and drives it over a stream, yielding maximal
// munch tokens. State 0 is reserved as the delimiter/restart state: a
// real, independently built row rather than an index that happens to
// collide with a real node (see DESIGN.md).
package lexdfa

import (
	"fmt"

	"tokex"
	"tokex/errkind"
)

// Unsigned bounds the table's state-index type. The caller picks the
// smallest type that fits its machine's reachable state count.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Enumerable extends tokex.Alphabet with the ability to list every
// symbol the alphabet contains, which the dense table needs to build
// one column per symbol. tokex's core engine never requires this - only
// a finite, enumerable alphabet like bytes can back a lexer table.
type Enumerable[T comparable] interface {
	tokex.Alphabet[T]
	Symbols() []T
}

// Token is one maximally-munched slice of the input.
type Token[Ix Unsigned, T any] struct {
	Symbols []T
	States  []Ix
	Start   int
}

// Table is a dense state x symbol transition table plus the streaming
// driver's in-progress token. It is single-writer: build one Table per
// input stream.
type Table[Ix Unsigned, T comparable] struct {
	rows      [][]Ix
	symbolIdx map[T]int

	state Ix
	index int
	cur   Token[Ix, T]
}

// Build compiles m's reachable states into a dense table over every
// symbol a enumerates. a must be the same alphabet m was compiled
// against.
func Build[Ix Unsigned, T comparable](m *tokex.Machine[T], a Enumerable[T]) (*Table[Ix, T], error) {
	nodes := m.Nodes()
	symbols := a.Symbols()

	var maxIx Ix
	maxIx-- // wrap to the type's maximum representable value
	if uint64(len(nodes)) >= uint64(maxIx) {
		return nil, fmt.Errorf("build lexer table: %w", errkind.AlphabetOverflow{States: len(nodes), Max: uint64(maxIx)})
	}

	index := make(map[*tokex.Node[T]]Ix, len(nodes))
	for i, n := range nodes {
		index[n] = Ix(i + 1) // real states occupy [1, len(nodes)], 0 is the delimiter
	}

	symbolIdx := make(map[T]int, len(symbols))
	for i, s := range symbols {
		symbolIdx[s] = i
	}

	rows := make([][]Ix, len(nodes)+1)
	for i := range rows {
		rows[i] = make([]Ix, len(symbols))
	}

	entry := m.Entry()
	for _, n := range nodes {
		cur := index[n]
		for sym, target := range n.Transitions() {
			col, ok := symbolIdx[sym]
			if !ok || target == nil {
				continue
			}
			if target == entry && n.Tag() == tokex.TagEnd {
				rows[cur][col] = 0 // commit and restart at the boundary
				continue
			}
			rows[cur][col] = index[target]
		}
	}
	copy(rows[0], rows[index[entry]])

	return &Table[Ix, T]{rows: rows, symbolIdx: symbolIdx}, nil
}

// Reset returns the table to its just-built state, discarding any
// in-progress token.
func (t *Table[Ix, T]) Reset() {
	t.state = 0
	t.index = 0
	t.cur = Token[Ix, T]{Start: 0}
}

// Next feeds one symbol to the driver. When a character would leave the
// current token's language, emit fires with the completed token and the
// driver restarts as if that character were the first of a new token;
// if it fails even at the restart, Next returns a LexFailure.
func (t *Table[Ix, T]) Next(sym T, emit func(Token[Ix, T])) error {
	col, ok := t.symbolIdx[sym]
	if !ok {
		return fmt.Errorf("lex: %w", errkind.LexFailure{Index: t.index})
	}

	next := t.rows[t.state][col]
	if next == 0 && t.state != 0 {
		emit(t.cur)
		t.cur = Token[Ix, T]{Start: t.index}
		next = t.rows[0][col]
		if next == 0 {
			return fmt.Errorf("lex: %w", errkind.LexFailure{Index: t.index})
		}
	} else if next == 0 {
		return fmt.Errorf("lex: %w", errkind.LexFailure{Index: t.index})
	}

	t.state = next
	t.cur.Symbols = append(t.cur.Symbols, sym)
	t.cur.States = append(t.cur.States, next)
	t.index++
	return nil
}

// End signals the end of input, committing whatever token is currently
// in progress. The caller must invoke it exactly once, after the last
// call to Next.
func (t *Table[Ix, T]) End(emit func(Token[Ix, T])) {
	emit(t.cur)
	t.cur = Token[Ix, T]{Start: t.index}
}
