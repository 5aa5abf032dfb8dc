package tokex

import "testing"

func TestKnitResolvesDanglingExits(t *testing.T) {
	a := NewArena[byte]()
	lit := newLiteralFragment(a, 'a')
	accept := a.New()
	accept.SetTag(TagEnd)

	Knit(lit, &Fragment[byte]{Entry: accept})

	target, ok := lit.Entry.Successor('a')
	if !ok || target != accept {
		t.Fatalf("expected 'a' edge to point at accept node")
	}
}

func TestUnionAcceptsEitherBranch(t *testing.T) {
	a := NewArena[byte]()
	left := newLiteralFragment(a, 'a')
	right := newLiteralFragment(a, 'b')
	Union(left, right, tEps)

	accept := a.New()
	accept.SetTag(TagEnd)
	Knit(left, &Fragment[byte]{Entry: accept})
	RemoveEpsilons(left.Entry, tEps)

	m := NewMachine(left.Entry, a)
	if !matchStr(m, "a") {
		t.Fatalf("expected union to accept left branch")
	}
	if !matchStr(m, "b") {
		t.Fatalf("expected union to accept right branch")
	}
	if matchStr(m, "c") {
		t.Fatalf("expected union to reject unrelated input")
	}
}

func TestDeepCopyPreservesDanglingExits(t *testing.T) {
	a := NewArena[byte]()
	orig := newLiteralFragment(a, 'x')
	dup := deepCopy(a, orig)

	if dup.Entry == orig.Entry {
		t.Fatalf("expected a distinct node")
	}
	target, ok := dup.Entry.Successor('x')
	if !ok || target != nil {
		t.Fatalf("expected copy to keep a dangling exit on 'x'")
	}
}
