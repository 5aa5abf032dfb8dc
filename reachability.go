package tokex

// Machine is a compiled pattern graph. One built by Compile is ε-free;
// one built by CompileNFA keeps its epsilon edges. It is immutable once
// compilation returns: readers may share one Machine across goroutines,
// each driving its own Cursor (see match.go).
type Machine[T comparable] struct {
	entry *Node[T]
	arena *Arena[T]
}

// NewMachine wraps an already-built graph. Used by Compile and by
// tests that want to hand-assemble a small machine.
func NewMachine[T comparable](entry *Node[T], arena *Arena[T]) *Machine[T] {
	return &Machine[T]{entry: entry, arena: arena}
}

// Entry returns the machine's start state.
func (m *Machine[T]) Entry() *Node[T] {
	return m.entry
}

// Nodes returns every node reachable from Entry, in no particular
// order.
func (m *Machine[T]) Nodes() []*Node[T] {
	return ReachableNodes(m.entry)
}

// NodeCount reports how many nodes the arena still tracks. After Purge
// this equals len(m.Nodes()).
func (m *Machine[T]) NodeCount() int {
	return m.arena.Len()
}

// ReachableNodes performs a breadth-first walk from entry over every
// outgoing edge (including dangling ones, which are simply skipped
// since their target is nil) and returns every node it finds, entry
// included.
func ReachableNodes[T comparable](entry *Node[T]) []*Node[T] {
	if entry == nil {
		return nil
	}
	seen := map[*Node[T]]struct{}{entry: {}}
	order := []*Node[T]{entry}
	queue := []*Node[T]{entry}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, target := range cur.next {
			if target == nil {
				continue
			}
			if _, ok := seen[target]; ok {
				continue
			}
			seen[target] = struct{}{}
			order = append(order, target)
			queue = append(queue, target)
		}
	}
	return order
}

// HasEpsilons reports whether any node reachable from entry still has
// an outgoing epsilon edge. True on an unclosed graph such as one from
// CompileNFA, false on anything RemoveEpsilons has processed.
func HasEpsilons[T comparable](entry *Node[T], eps T) bool {
	for _, n := range ReachableNodes(entry) {
		if _, ok := n.next[eps]; ok {
			return true
		}
	}
	return false
}

// Purge intersects m's arena with the nodes currently reachable from
// its entry, forgetting the rest. It is a logical forget, not a
// deallocation: the garbage collector reclaims a forgotten node once
// nothing else references it.
func Purge[T comparable](m *Machine[T]) {
	keep := map[*Node[T]]struct{}{}
	for _, n := range ReachableNodes(m.entry) {
		keep[n] = struct{}{}
	}
	m.arena.forget(keep)
}
