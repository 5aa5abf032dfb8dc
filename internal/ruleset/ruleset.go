// Package ruleset parses a tiny config format naming lexer alternatives:
//
//	rule word   = "\w+"
//	rule number = "\d+"
//	rule space  = " "
//
// into an ordered list of (name, pattern) pairs, using
// github.com/alecthomas/participle/v2. It performs no rewriting of the
// pattern text it collects, just structural parsing of the config file;
// each rule's pattern is handed to charregex verbatim.
package ruleset

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Rule is one named lexer alternative.
type Rule struct {
	Name    string `parser:"'rule' @Ident '='"`
	Pattern string `parser:"@String"`
}

// File is an ordered list of rules.
type File struct {
	Rules []*Rule `parser:"@@*"`
}

var parser = participle.MustBuild[File](participle.Unquote("String"))

// Parse reads a rule-set config file's contents.
func Parse(data string) (*File, error) {
	return parser.ParseString("ruleset", data)
}

// Alternation joins every rule's pattern into a single top-level
// disjunction, e.g. "(\w+|\d+| )", in declaration order.
func (f *File) Alternation() string {
	if len(f.Rules) == 0 {
		return ""
	}
	parts := make([]string, len(f.Rules))
	for i, r := range f.Rules {
		parts[i] = r.Pattern
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// Names returns the rules' names in declaration order.
func (f *File) Names() []string {
	out := make([]string, len(f.Rules))
	for i, r := range f.Rules {
		out[i] = r.Name
	}
	return out
}
