package lexdfa

import (
	"testing"

	"tokex/charregex"
	"tokex/internal/lexlab"
)

func buildTable(t *testing.T, pattern string) *Table[uint16, byte] {
	t.Helper()
	re, err := charregex.Compile(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	tbl, err := Build[uint16, byte](re.Machine(), charregex.Bytes)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func lex(t *testing.T, tbl *Table[uint16, byte], input string) []string {
	t.Helper()
	tbl.Reset()
	var toks []string
	emit := func(tok Token[uint16, byte]) {
		if len(tok.Symbols) > 0 {
			toks = append(toks, string(tok.Symbols))
		}
	}
	for i := 0; i < len(input); i++ {
		if err := tbl.Next(input[i], emit); err != nil {
			t.Fatalf("lex %q at %d: %v", input, i, err)
		}
	}
	tbl.End(emit)
	return toks
}

// Maximal munch with restart-on-reject over a small word|number|space
// grammar.
func TestMaximalMunchAndRestart(t *testing.T) {
	tbl := buildTable(t, `(a|b|c)+|(0|1|2)+| `)

	got := lex(t, tbl, "ab 12 c0")
	want := []string{"ab", " ", "12", " ", "c", "0"}
	if len(got) != len(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: want %q got %q", i, want[i], got[i])
		}
	}
}

func TestLexFailureOnUnknownCharacter(t *testing.T) {
	tbl := buildTable(t, `a+`)
	tbl.Reset()
	if err := tbl.Next('z', func(Token[uint16, byte]) {}); err == nil {
		t.Fatalf("expected a lex failure on a character outside the grammar")
	}
}

// TestAgreesWithLexmachine cross-checks the dense-table lexer's token
// boundaries against github.com/timtadh/lexmachine's DFA-backed scanner
// over the subset of the word/number/space grammar both understand.
func TestAgreesWithLexmachine(t *testing.T) {
	tbl := buildTable(t, `(a|b|c)+|(0|1|2)+| `)

	input := "ab12 c0 aac"
	ours := lex(t, tbl, input)

	oracle, err := lexlab.Tokenize([]byte(input))
	if err != nil {
		t.Fatalf("lexlab: %v", err)
	}
	var oracleToks []string
	for _, tok := range oracle {
		oracleToks = append(oracleToks, tok.Text)
	}

	if len(ours) != len(oracleToks) {
		t.Fatalf("boundary count differs: ours=%v oracle=%v", ours, oracleToks)
	}
	for i := range ours {
		if ours[i] != oracleToks[i] {
			t.Fatalf("token %d differs: ours=%q oracle=%q", i, ours[i], oracleToks[i])
		}
	}
}
