// Command tokexdemo is a small interactive REPL over charregex: compile
// a pattern, then feed it lines to match.
package main

import (
	"bufio"
	"fmt"
	"os"

	"tokex/charregex"
)

func main() {
	re := charregex.MustCompile("a(b|c)*d")
	fmt.Printf("demo pattern %q\n", re.String())
	for _, s := range []string{"ad", "abcbcd", "abbcd", "aXd"} {
		fmt.Printf("  %-10q -> %v\n", s, re.MatchString(s))
	}

	rdr := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("pattern> ")
		pat, err := rdr.ReadString('\n')
		if len(pat) > 0 {
			pat = pat[:len(pat)-1]
		}
		if err != nil || pat == "" {
			return
		}
		r, err := charregex.Compile(pat)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		fmt.Print("text> ")
		text, err := rdr.ReadString('\n')
		if len(text) > 0 {
			text = text[:len(text)-1]
		}
		if err != nil {
			return
		}
		fmt.Println(r.MatchString(text))
	}
}
