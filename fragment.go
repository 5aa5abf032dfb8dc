package tokex

// Fragment is a partially built piece of pattern graph. Entry is its
// only reachable-from-outside node; any dangling exit inside it (an
// edge whose target is nil) is a promise to be resolved by Knit.
//
// Fragment does not own its nodes; the Arena that allocated them does.
type Fragment[T comparable] struct {
	Entry *Node[T]
}

// newLiteralFragment builds the one-edge fragment for a single literal
// or wildcard symbol: an entry node with one dangling exit labeled sym.
func newLiteralFragment[T comparable](arena *Arena[T], sym T) *Fragment[T] {
	n := arena.New()
	n.SetEdge(sym, nil)
	return &Fragment[T]{Entry: n}
}

// Knit replaces every dangling exit reachable from a's entry with a
// direct edge to b's entry, splicing b onto the end of a. b's own
// interior is left untouched (the DFS visited set is seeded with b's
// entry precisely so knitting never wanders into what it's attaching).
func Knit[T comparable](a, b *Fragment[T]) {
	visited := map[*Node[T]]struct{}{b.Entry: {}}
	knitRecursive(a.Entry, b.Entry, visited)
}

func knitRecursive[T comparable](cur, target *Node[T], visited map[*Node[T]]struct{}) {
	for sym, link := range cur.next {
		if link == nil {
			cur.next[sym] = target
			continue
		}
		if _, ok := visited[link]; ok {
			continue
		}
		visited[link] = struct{}{}
		knitRecursive(link, target, visited)
	}
}

// Union merges b's language into a in place: after Union, a accepts
// anything a or b accepted before.
//
// It walks every symbol on b's entry, not just the first. An
// alternative built by the compiler can carry several edges on its
// entry (a leading optional or starred element, or a leading group such
// as "(x|y)z"), and stopping early would drop all but one of them.
func Union[T comparable](a, b *Fragment[T], eps T) {
	unionRecursive(a.Entry, b.Entry, eps)
}

func unionRecursive[T comparable](mine, theirs *Node[T], eps T) {
	for sym, o := range theirs.next {
		m, ok := mine.next[sym]
		if !ok {
			mine.next[sym] = o
			continue
		}
		if m == nil && o == nil {
			continue
		}
		if m == nil || o == nil {
			chaseEpsilonEnd(mine, eps).next[eps] = o
			continue
		}
		unionRecursive(m, o, eps)
	}
}

// chaseEpsilonEnd walks start's chain of epsilon edges to the last node
// that still has a real (non-nil) epsilon successor, stopping instead
// of following a still-dangling epsilon edge into nil.
func chaseEpsilonEnd[T comparable](start *Node[T], eps T) *Node[T] {
	cur := start
	for {
		t, ok := cur.next[eps]
		if !ok || t == nil {
			return cur
		}
		cur = t
	}
}

// deepCopy duplicates the reachable subgraph rooted at f.Entry into
// freshly allocated nodes, preserving dangling (nil) exits as dangling.
// Used to implement '+' without aliasing the original fragment into its
// own loop.
func deepCopy[T comparable](arena *Arena[T], f *Fragment[T]) *Fragment[T] {
	oldToNew := map[*Node[T]]*Node[T]{}
	clone := func(n *Node[T]) *Node[T] {
		if nn, ok := oldToNew[n]; ok {
			return nn
		}
		nn := arena.New()
		nn.SetTag(n.Tag())
		oldToNew[n] = nn
		return nn
	}

	entry := clone(f.Entry)
	queue := []*Node[T]{f.Entry}
	visited := map[*Node[T]]struct{}{f.Entry: {}}
	for len(queue) > 0 {
		old := queue[0]
		queue = queue[1:]
		newCur := oldToNew[old]
		for sym, target := range old.next {
			if target == nil {
				newCur.SetEdge(sym, nil)
				continue
			}
			newCur.SetEdge(sym, clone(target))
			if _, ok := visited[target]; !ok {
				visited[target] = struct{}{}
				queue = append(queue, target)
			}
		}
	}
	return &Fragment[T]{Entry: entry}
}
