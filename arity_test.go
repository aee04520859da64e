package glint

import "testing"

func mustArity(t *testing.T, p Program) Arity {
	t.Helper()
	a, err := StaticArity(p)
	if err != nil {
		t.Fatalf("StaticArity: %v", err)
	}
	return a
}

func TestArityOfPrimitives(t *testing.T) {
	cases := []struct {
		op   Op
		want Arity
	}{
		{OpCopy, Arity{1, 2}},
		{OpDrop, Arity{1, 0}},
		{OpSwap, Arity{2, 2}},
		{OpPut, Arity{3, 1}},
		{OpDiv, Arity{2, 2}},
	}
	for _, c := range cases {
		got := mustArity(t, OpProg(c.op))
		if got != c.want {
			t.Errorf("%s: got %+v want %+v", c.op, got, c.want)
		}
	}
}

func TestArityOfSeq(t *testing.T) {
	p := SeqProg(OpProg(OpCopy), OpProg(OpAdd)) // (1,2) then (2,1) = (1,1)
	if got := mustArity(t, p); got != (Arity{1, 1}) {
		t.Errorf("got %+v", got)
	}
}

func TestArityOfSeqThreadsExtraInputs(t *testing.T) {
	// drop (1,0) then add (2,1): add needs 2 inputs but drop only left 0,
	// so the composed program must pull 2 more from below.
	p := SeqProg(OpProg(OpDrop), OpProg(OpAdd))
	want := Arity{1 + 2, 1}
	if got := mustArity(t, p); got != want {
		t.Errorf("got %+v want %+v", got, want)
	}
}

func TestArityOfDip(t *testing.T) {
	p := DipProg(OpProg(OpAdd)) // inner (2,1) -> dip (3,2)
	if got := mustArity(t, p); got != (Arity{3, 2}) {
		t.Errorf("got %+v", got)
	}
}

func TestArityOfCondRequiresMatchingBranches(t *testing.T) {
	absDiff := CondProg(OpProg(OpSub), Nop, SeqProg(OpProg(OpSwap), OpProg(OpSub)))
	if got := mustArity(t, absDiff); got != (Arity{2, 1}) {
		t.Errorf("got %+v", got)
	}

	bad := CondProg(OpProg(OpSub), Nop, OpProg(OpCopy))
	if _, err := StaticArity(bad); err == nil {
		t.Fatal("mismatched cond branches should fail to produce an arity")
	}
}

func TestArityOfLoopRequiresBalance(t *testing.T) {
	balanced := LoopProg(OpProg(OpCopy), OpProg(OpDrop)) // copy(1,2) then drop(1,0) net (1,1)
	if got := mustArity(t, balanced); got != (Arity{1, 1}) {
		t.Errorf("got %+v", got)
	}

	unbalanced := LoopProg(OpProg(OpCopy), Nop)
	if _, err := StaticArity(unbalanced); err == nil {
		t.Fatal("an unbalanced loop body should fail to produce an arity")
	}
}

func TestIsCompilerArity(t *testing.T) {
	if !IsCompilerArity(Arity{1, 1}) {
		t.Error("(1,1) should be a valid compiler arity")
	}
	if IsCompilerArity(Arity{2, 1}) {
		t.Error("(2,1) should not be a valid compiler arity")
	}
}
