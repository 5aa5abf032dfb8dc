// Command tokexviz compiles a pattern and writes its compiled graph as
// Graphviz DOT.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"tokex"
	"tokex/charregex"
	"tokex/diagram"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	nfaFlag := flag.Bool("nfa", false, "export the raw Thompson NFA, epsilons included")
	outFile := flag.String("o", "graph.dot", "output file, or - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng instead of writing DOT")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: tokexviz -re <pattern> [-nfa] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var m *tokex.Machine[byte]
	var err error
	if *nfaFlag {
		m, err = tokex.CompileNFA[byte](charregex.Bytes, []byte(*pattern))
	} else {
		m, err = tokex.Compile[byte](charregex.Bytes, []byte(*pattern))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile %q: %v\n", *pattern, err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	diagram.WriteDOT(&buf, m, func(b byte) string {
		if b == charregex.Bytes.Epsilon() {
			return "ε"
		}
		return string(b)
	})

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
