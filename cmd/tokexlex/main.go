// Command tokexlex loads an internal/ruleset config file and tokenizes
// stdin through lexdfa, printing one token per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tokex/charregex"
	"tokex/internal/ruleset"
	"tokex/lexdfa"
)

func main() {
	rulesFile := flag.String("rules", "", "ruleset config file (required)")
	flag.Parse()

	if *rulesFile == "" {
		fmt.Fprintln(os.Stderr, "usage: tokexlex -rules <file> < input")
		flag.PrintDefaults()
		os.Exit(2)
	}

	data, err := os.ReadFile(*rulesFile)
	if err != nil {
		log.Fatalf("read %s: %v", *rulesFile, err)
	}

	set, err := ruleset.Parse(string(data))
	if err != nil {
		log.Fatalf("parse ruleset: %v", err)
	}

	re, err := charregex.Compile(set.Alternation())
	if err != nil {
		log.Fatalf("compile ruleset alternation: %v", err)
	}

	tbl, err := lexdfa.Build[uint16, byte](re.Machine(), charregex.Bytes)
	if err != nil {
		log.Fatalf("build lexer table: %v", err)
	}

	input, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	emit := func(tok lexdfa.Token[uint16, byte]) {
		if len(tok.Symbols) == 0 {
			return
		}
		fmt.Fprintln(out, string(tok.Symbols))
	}

	for i, b := range input {
		if err := tbl.Next(b, emit); err != nil {
			log.Fatalf("lex byte %d: %v", i, err)
		}
	}
	tbl.End(emit)
}
