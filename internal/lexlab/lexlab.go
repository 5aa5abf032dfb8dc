// Package lexlab builds an independent tokenizer over the word/number/
// space grammar used by the lexdfa test scenarios, using
// github.com/timtadh/lexmachine, a real, established DFA-backed lexer
// generator.
//
// It exists only so lexdfa's tests have a second, differently-built
// implementation of "maximal munch over this grammar" to check
// against, rather than the dense-table lexer checking itself.
package lexlab

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token is one token lexlab produced.
type Token struct {
	Kind string
	Text string
}

// Tokenize runs input through a lexmachine scanner built for the
// word/number/space grammar and returns every token it finds, in
// order. It reports an error the same way lexmachine's Scanner does:
// on the first byte no rule can start on.
func Tokenize(input []byte) ([]Token, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`[a-zA-Z]+`), keep("word"))
	lx.Add([]byte(`[0-9]+`), keep("number"))
	lx.Add([]byte(` `), keep("space"))

	if err := lx.Compile(); err != nil {
		return nil, err
	}

	scanner, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}

	var out []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok.(Token))
	}
	return out, nil
}

func keep(kind string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Kind: kind, Text: string(m.Bytes)}, nil
	}
}
