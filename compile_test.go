package tokex

import "testing"

// ------------------------------------------------------------------- helpers

func acc(t *testing.T, m *Machine[byte], in string, want bool) {
	t.Helper()
	if got := matchStr(m, in); got != want {
		t.Fatalf("%q: want %v got %v", in, want, got)
	}
}

func newM(t *testing.T, pattern string) *Machine[byte] {
	t.Helper()
	m, err := compileStr(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	return m
}

// ------------------------------------------------------------------- literals & concatenation

func TestLiteralConcatenation(t *testing.T) {
	m := newM(t, "abc")
	acc(t, m, "abc", true)
	acc(t, m, "ab", false)
	acc(t, m, "abcd", false)
}

// ------------------------------------------------------------------- disjunction

func TestDisjunction(t *testing.T) {
	m := newM(t, "a|bc")
	acc(t, m, "a", true)
	acc(t, m, "bc", true)
	acc(t, m, "b", false)
	acc(t, m, "abc", false)
}

// ------------------------------------------------------------------- quantifiers

func TestOptional(t *testing.T) {
	m := newM(t, "ab?c")
	acc(t, m, "ac", true)
	acc(t, m, "abc", true)
	acc(t, m, "abbc", false)
}

func TestStar(t *testing.T) {
	m := newM(t, "ab*c")
	acc(t, m, "ac", true)
	acc(t, m, "abc", true)
	acc(t, m, "abbbbc", true)
	acc(t, m, "adc", false)
}

func TestPlus(t *testing.T) {
	m := newM(t, "ab+c")
	acc(t, m, "ac", false)
	acc(t, m, "abc", true)
	acc(t, m, "abbbc", true)
}

func TestWildcard(t *testing.T) {
	m := newM(t, "a.c")
	acc(t, m, "abc", true)
	acc(t, m, "azc", true)
	acc(t, m, "ac", false)
}

// ------------------------------------------------------------------- groups

func TestGroupedDisjunction(t *testing.T) {
	m := newM(t, "a(b|c)d")
	acc(t, m, "abd", true)
	acc(t, m, "acd", true)
	acc(t, m, "aed", false)
}

func TestNestedGroups(t *testing.T) {
	m := newM(t, "(a(b|c)*d)+")
	acc(t, m, "ad", true)
	acc(t, m, "abcbcd", true)
	acc(t, m, "adad", true)
	acc(t, m, "", false)
}

func TestEmptyGroupMatchesEmptyString(t *testing.T) {
	m := newM(t, "a()b")
	acc(t, m, "ab", true)
}

// ------------------------------------------------------------------- escape

func TestEscapeTreatsMetacharAsLiteral(t *testing.T) {
	m := newM(t, `a\*b`)
	acc(t, m, "a*b", true)
	acc(t, m, "aab", false)
}

// ------------------------------------------------------------------- malformed patterns

func TestMalformedPatternUnmatchedOpen(t *testing.T) {
	if _, err := compileStr("(ab"); err == nil {
		t.Fatalf("expected an error for an unmatched '('")
	}
}

func TestMalformedPatternUnmatchedClose(t *testing.T) {
	if _, err := compileStr("ab)"); err == nil {
		t.Fatalf("expected an error for an unmatched ')'")
	}
}

func TestMalformedPatternDanglingQuantifier(t *testing.T) {
	if _, err := compileStr("*ab"); err == nil {
		t.Fatalf("expected an error for a leading '*'")
	}
}

func TestMalformedPatternTrailingEscape(t *testing.T) {
	if _, err := compileStr(`ab\`); err == nil {
		t.Fatalf("expected an error for a trailing escape")
	}
}

// ------------------------------------------------------------------- algebraic laws

func TestCompileIsEpsilonFree(t *testing.T) {
	m := newM(t, "a(b|c)*d?")
	if HasEpsilons(m.Entry(), ta.Epsilon()) {
		t.Fatalf("a compiled machine must have no epsilon edges")
	}
}

func TestStarIsOptionalPlus(t *testing.T) {
	star := newM(t, "ab*c")
	optPlus := newM(t, "a(b+)?c")

	for _, s := range []string{"ac", "abc", "abbc", "abbbbc", "adc"} {
		if matchStr(star, s) != matchStr(optPlus, s) {
			t.Fatalf("b* and (b+)? diverge on %q", s)
		}
	}
}

func TestEmptyPatternMatchesOnlyEmptyString(t *testing.T) {
	m := newM(t, "")
	acc(t, m, "", true)
	acc(t, m, "a", false)
}
