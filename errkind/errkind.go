// Package errkind defines the small closed set of error kinds this
// engine raises: MalformedPattern, AlphabetOverflow, and LexFailure.
// Each is a plain struct with a fixed Error() string, in the spirit of
// ronGeva-go_apps/go_db's error.go, rather than an errors.New sentinel;
// callers that need to recognize a kind use errors.As, and call sites
// wrap these with fmt.Errorf("...: %w", ...) to add position context.
package errkind

import "fmt"

// MalformedPattern is raised by the compiler when a pattern's token
// vector cannot be parsed: unmatched groups, a quantifier with nothing
// to quantify, or an escape with nothing following it.
type MalformedPattern struct {
	Index  int
	Reason string
}

func (e MalformedPattern) Error() string {
	return fmt.Sprintf("malformed pattern at index %d: %s", e.Index, e.Reason)
}

// AlphabetOverflow is raised when a compiled machine has more reachable
// states than the chosen dense-table index type can represent.
type AlphabetOverflow struct {
	States int
	Max    uint64
}

func (e AlphabetOverflow) Error() string {
	return fmt.Sprintf("alphabet overflow: %d states exceed index capacity %d", e.States, e.Max)
}

// LexFailure is raised by the dense-table lexer driver when a character
// cannot start any token, even after restarting from the delimiter
// state.
type LexFailure struct {
	Index int
}

func (e LexFailure) Error() string {
	return fmt.Sprintf("lex failure at index %d: no token can start here", e.Index)
}
