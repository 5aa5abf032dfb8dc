package tokex

// Node is a single state in a pattern graph. next maps a symbol to the
// state reached by consuming it; a present key whose value is nil is a
// dangling exit (the fragment sentinel) rather than a missing edge, so
// callers must use the two-value map form to tell the two apart.
type Node[T comparable] struct {
	next map[T]*Node[T]
	tag  Tag
}

// Tag reports the terminal classification of n. A nil node is treated
// as TagError so a broken traversal fails closed.
func (n *Node[T]) Tag() Tag {
	if n == nil {
		return TagError
	}
	return n.tag
}

// SetTag overwrites n's terminal classification.
func (n *Node[T]) SetTag(t Tag) {
	n.tag = t
}

// Successor returns the node reached from n by sym, and whether an edge
// for sym exists at all (the target itself may legitimately be nil).
func (n *Node[T]) Successor(sym T) (*Node[T], bool) {
	t, ok := n.next[sym]
	return t, ok
}

// SetEdge installs or overwrites the edge for sym, target may be nil to
// mark a dangling exit.
func (n *Node[T]) SetEdge(sym T, target *Node[T]) {
	n.next[sym] = target
}

// DeleteEdge removes any edge for sym.
func (n *Node[T]) DeleteEdge(sym T) {
	delete(n.next, sym)
}

// Transitions returns a copy of n's outgoing edges. Callers outside
// this package get a snapshot rather than the live map.
func (n *Node[T]) Transitions() map[T]*Node[T] {
	out := make(map[T]*Node[T], len(n.next))
	for sym, target := range n.next {
		out[sym] = target
	}
	return out
}

// transition applies the match driver's precedence rule: an exact
// literal edge beats a wildcard edge beats an epsilon edge. allowEpsilon
// should be false against a machine that has already had its epsilons
// removed; it exists so tests can drive a raw, unclosed fragment.
func (n *Node[T]) transition(a Alphabet[T], sym T, allowEpsilon bool) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	if t, ok := n.next[sym]; ok {
		return t, true
	}
	if wc := a.Wildcard(); wc != sym {
		if t, ok := n.next[wc]; ok {
			return t, true
		}
	}
	if allowEpsilon {
		if t, ok := n.next[a.Epsilon()]; ok {
			return t, true
		}
	}
	return nil, false
}

func newNode[T comparable]() *Node[T] {
	return &Node[T]{next: make(map[T]*Node[T])}
}

// Arena owns every node allocated during one compile. It is the sole
// allocator: nodes are created only through Arena.New, and Purge (see
// reachability.go) is the sole way nodes stop being tracked.
type Arena[T comparable] struct {
	nodes map[*Node[T]]struct{}
}

// NewArena returns an empty, ready-to-use arena.
func NewArena[T comparable]() *Arena[T] {
	return &Arena[T]{nodes: make(map[*Node[T]]struct{})}
}

// New allocates a fresh node tracked by a.
func (a *Arena[T]) New() *Node[T] {
	n := newNode[T]()
	a.nodes[n] = struct{}{}
	return n
}

// Len reports how many nodes a currently tracks.
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// forget drops every tracked node not present in keep. It never
// physically frees anything; a dropped node simply stops counting
// toward Len (and Machine.NodeCount) and is reclaimed by the garbage
// collector once nothing else references it. Nodes() and diagram
// output walk reachability, not the arena, so they never list it.
func (a *Arena[T]) forget(keep map[*Node[T]]struct{}) {
	for n := range a.nodes {
		if _, ok := keep[n]; !ok {
			delete(a.nodes, n)
		}
	}
}
