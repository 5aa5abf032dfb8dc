// Package charregex is the byte-alphabet façade over the core tokex
// engine: traditional metacharacters ( ) | . ? * + \ compiled straight
// into tokex.Compile. It has no character classes, no anchors, and no
// {m,n} quantifiers - alternatives are always spelled out explicitly -
// and it extracts no captured groups.
package charregex

import "tokex"

// byteAlphabet classifies bytes for the core compiler. It is stateless;
// Bytes is the only value callers need.
type byteAlphabet struct{}

// Bytes is the alphabet used by every Regex in this package. Its
// concrete type also satisfies lexdfa.Enumerable[byte], so it can seed
// a lexdfa.Table directly.
var Bytes = byteAlphabet{}

const (
	subexprOpen  byte = '('
	subexprClose byte = ')'
	disjunction  byte = '|'
	wildcard     byte = '.'
	optional     byte = '?'
	star         byte = '*'
	plus         byte = '+'
	escape       byte = '\\'
	epsilon      byte = 0x00
)

// Less gives byte order. No code in this module calls it; edge lookup
// goes through Go's built-in map equality, so it can
// never be confused with this ordering relation.
func (byteAlphabet) Less(a, b byte) bool { return a < b }

func (byteAlphabet) IsSubexprOpen(b byte) bool  { return b == subexprOpen }
func (byteAlphabet) IsSubexprClose(b byte) bool { return b == subexprClose }
func (byteAlphabet) IsDisjunction(b byte) bool  { return b == disjunction }
func (byteAlphabet) IsWildcard(b byte) bool     { return b == wildcard }
func (byteAlphabet) IsOptional(b byte) bool     { return b == optional }
func (byteAlphabet) IsStar(b byte) bool         { return b == star }
func (byteAlphabet) IsPlus(b byte) bool         { return b == plus }
func (byteAlphabet) IsEscape(b byte) bool       { return b == escape }
func (byteAlphabet) IsMemClear(byte) bool       { return false }
func (byteAlphabet) IsMemPipe(byte) bool        { return false }
func (byteAlphabet) Wildcard() byte             { return wildcard }
func (byteAlphabet) Epsilon() byte              { return epsilon }
func (byteAlphabet) IsEpsilon(b byte) bool      { return b == epsilon }

// Symbols enumerates every byte value, satisfying lexdfa.Enumerable so
// a Regex's Machine can back a lexdfa.Table.
func (byteAlphabet) Symbols() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// Regex is a compiled character pattern.
type Regex struct {
	pattern string
	machine *tokex.Machine[byte]
}

// Compile parses pattern using the traditional metacharacters and
// builds its Machine.
func Compile(pattern string) (*Regex, error) {
	m, err := tokex.Compile[byte](Bytes, []byte(pattern))
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, machine: m}, nil
}

// MustCompile is like Compile but panics on error, for tests and
// package-level regex literals.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Match reports whether input, matched in full, is accepted by re.
func (re *Regex) Match(input []byte) bool {
	return tokex.Match(re.machine, Bytes, input)
}

// MatchString is Match over a string.
func (re *Regex) MatchString(input string) bool {
	return re.Match([]byte(input))
}

// Machine exposes the underlying compiled graph, for the lexdfa and
// diagram packages.
func (re *Regex) Machine() *tokex.Machine[byte] {
	return re.machine
}

// String returns the pattern text re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}
