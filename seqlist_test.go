package glint

import "testing"

func vals(syms ...string) []Value {
	out := make([]Value, len(syms))
	for i, s := range syms {
		out[i] = NewBits(Sym(s))
	}
	return out
}

func TestListJoinSplitRoundTrip(t *testing.T) {
	l := FromValues(vals("a", "b", "c", "d")...)
	for n := 0; n <= l.Len(); n++ {
		left, right, ok := Split(l, n)
		if !ok {
			t.Fatalf("split at %d failed", n)
		}
		joined := Join(left, right)
		if !listsEqual(joined, l) {
			t.Fatalf("join(split(%d, L)) != L", n)
		}
	}
	if _, _, ok := Split(l, l.Len()+1); ok {
		t.Fatal("split past the end should fail")
	}
}

func TestListPushPopLaws(t *testing.T) {
	l := FromValues(vals("x", "y")...)
	x := NewBits(Sym("w"))

	pushed := PushL(l, x)
	if pushed.Len() != l.Len()+1 {
		t.Fatalf("len(pushl(x,L)) != len(L)+1")
	}
	gotX, rest, ok := PopL(pushed)
	if !ok || !Equal(gotX, x) || !listsEqual(rest, l) {
		t.Fatal("popl(pushl(x,L)) != (x, L)")
	}

	pushedR := PushR(l, x)
	gotX2, restR, ok := PopR(pushedR)
	if !ok || !Equal(gotX2, x) || !listsEqual(restR, l) {
		t.Fatal("popr(pushr(x,L)) != (x, L)")
	}
}

func TestListIndexOrder(t *testing.T) {
	l := FromValues(vals("a", "b", "c")...)
	for i, want := range []string{"a", "b", "c"} {
		v, ok := l.Index(i)
		if !ok {
			t.Fatalf("index %d missing", i)
		}
		if s, _ := v.SymString(); s != want {
			t.Errorf("index %d: got %q want %q", i, s, want)
		}
	}
}

func TestEmptyListOps(t *testing.T) {
	if _, _, ok := PopL(emptyList); ok {
		t.Fatal("popl on empty list should fail")
	}
	if _, _, ok := PopR(emptyList); ok {
		t.Fatal("popr on empty list should fail")
	}
}
