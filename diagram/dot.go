// Package diagram renders a tokex.Machine as Graphviz DOT, for visual
// inspection of a compiled pattern's graph.
package diagram

import (
	"fmt"
	"io"

	"tokex"
)

// WriteDOT writes m as a DOT digraph to w. label renders every edge
// symbol for display, epsilon included; a Machine from tokex.Compile has
// no epsilon edges, one from tokex.CompileNFA still does.
func WriteDOT[T comparable](w io.Writer, m *tokex.Machine[T], label func(T) string) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	ids := map[*tokex.Node[T]]int{}
	nodes := m.Nodes()
	for i, n := range nodes {
		ids[n] = i
	}

	for _, n := range nodes {
		shape := "circle"
		if n.Tag() == tokex.TagEnd {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", ids[n], shape)
		for sym, target := range n.Transitions() {
			if target == nil {
				continue
			}
			fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", ids[n], ids[target], label(sym))
		}
	}

	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", ids[m.Entry()])
	fmt.Fprintln(w, "}")
}
