package glint

import "testing"

// tryEffProg builds "tryEff <label>" (§8.2 scenarios 3-4): wrap the top of
// stack as Variant(label, top), issue it as an effect, and replace top with
// the result. Wrapped in Cond(_, Nop, Nop) so a refused effect leaves the
// stack untouched instead of failing the surrounding sequence, matching the
// transactional-idempotence invariant in §8.1.
func tryEffProg(id int, label string) Program {
	wrap := NativeProg(id, func(v Value) (Value, bool) {
		return Variant(label, v), true
	})
	attempt := SeqProg(wrap, OpProg(OpEff))
	return CondProg(attempt, Nop, Nop)
}

// fibLoop drives a 3-cell window [n, a, b]: each iteration decrements n and
// advances (a, b) -> (a+b, a), which is the Fibonacci recurrence running in
// the "b" slot. Seeding (a, b) = (1, 1) and running 16 iterations lands
// 1597 in b: F(17) under the convention F(0)=0, F(1)=1, which is fib(16)
// under the convention fib(0)=fib(1)=1 used by the test below.
func fibLoop() Program {
	// while: fails once n reaches 0, decrementing n on success. Dip hides n
	// just long enough to push the literal 1 beneath it so sub sees n on
	// top and 1 underneath (sub's first argument is the top of stack).
	while := SeqProg(DipProg(DataProg(NewBits(natFromInt(1)))), OpProg(OpSub))

	// do, traced against [n, a, b]:
	//   dip(copy):        [n,a,b]   -> hide n, copy a -> [n,a,a,b]
	//   dip(dip(add)):    [n,a,a,b] -> hide n and a, add the rest -> [n,a,a+b]
	//   dip(swap):        [n,a,a+b] -> hide n, swap -> [n,a+b,a]
	do := SeqProg(
		DipProg(OpProg(OpCopy)),
		DipProg(DipProg(OpProg(OpAdd))),
		DipProg(OpProg(OpSwap)),
	)

	return LoopProg(while, do)
}

func TestFibonacciViaLoop(t *testing.T) {
	stack := []Value{NewBits(natFromInt(16)), NewBits(natFromInt(1)), NewBits(natFromInt(1))}
	got, ok := Eval(fibLoop(), NopHandler{}, stack)
	if !ok {
		t.Fatal("fib loop failed")
	}
	if len(got) != 3 {
		t.Fatalf("unexpected stack shape: %v", got)
	}
	b, ok := got[2].AsBits()
	if !ok {
		t.Fatal("b is not bits")
	}
	gotFib, ok := intFromNat(b)
	if !ok {
		t.Fatal("b is not a valid nat")
	}
	if gotFib != 1597 {
		t.Fatalf("fib(16): got %d, want 1597 (full stack %v)", gotFib, got)
	}
}

func TestAbsoluteDifferenceViaCond(t *testing.T) {
	absDiff := CondProg(OpProg(OpSub), Nop, SeqProg(OpProg(OpSwap), OpProg(OpSub)))

	seven := NewBits(natFromInt(7))

	got, ok := Eval(absDiff, NopHandler{}, []Value{NewBits(natFromInt(3)), NewBits(natFromInt(10))})
	if !ok || len(got) != 1 || !Equal(got[0], seven) {
		t.Fatalf("[3,10]: got %v ok=%v", got, ok)
	}

	got, ok = Eval(absDiff, NopHandler{}, []Value{NewBits(natFromInt(10)), NewBits(natFromInt(3))})
	if !ok || len(got) != 1 || !Equal(got[0], seven) {
		t.Fatalf("[10,3]: got %v ok=%v", got, ok)
	}
}

func TestTransactionalLog(t *testing.T) {
	a := NewBits(Sym("a"))
	b := NewBits(Sym("b"))
	c := NewBits(Sym("c"))

	prog := SeqProg(
		tryEffProg(1, "log"),
		DipProg(tryEffProg(2, "oops")),
		DipProg(DipProg(tryEffProg(3, "log"))),
	)

	h := NewLogHandler()
	got, ok := Eval(prog, h, []Value{a, b, c})
	if !ok {
		t.Fatal("program failed")
	}
	want := []Value{Unit, b, Unit}
	if !equalValueSlices(got, want) {
		t.Fatalf("stack: got %v want %v", got, want)
	}
	log := h.Log()
	wantLog := []Value{a, c}
	if !equalValueSlices(log, wantLog) {
		t.Fatalf("log: got %v want %v", log, wantLog)
	}
}

// TestEnvRenamesAndCountsEffects exercises Env (§4.3/§4.5 scenario 4): the
// installed handler program renames the effect's label on every other call
// (a stand-in "rename log<->oops with a counter") before forwarding to the
// outer log handler, so only the calls that land on "log" after renaming
// are observed.
func TestEnvRenamesAndCountsEffects(t *testing.T) {
	a := NewBits(Sym("a"))
	b := NewBits(Sym("b"))
	c := NewBits(Sym("c"))

	counter := 0
	rename := NativeProg(10, func(v Value) (Value, bool) {
		counter++
		label, payload, ok := AsVariant(v)
		if !ok {
			return Value{}, false
		}
		if counter%2 == 1 {
			if label == "log" {
				label = "oops"
			} else {
				label = "log"
			}
		}
		return Variant(label, payload), true
	})
	h := SeqProg(rename, OpProg(OpEff))

	tryEff3 := SeqProg(
		tryEffProg(11, "log"),
		DipProg(tryEffProg(12, "log")),
		DipProg(DipProg(tryEffProg(13, "log"))),
	)

	outer := NewLogHandler()
	got, ok := Eval(EnvProg(h, tryEff3), outer, []Value{a, b, c})
	if !ok {
		t.Fatal("env program failed")
	}
	want := []Value{a, Unit, c}
	if !equalValueSlices(got, want) {
		t.Fatalf("stack: got %v want %v", got, want)
	}
	wantLog := []Value{b}
	if !equalValueSlices(outer.Log(), wantLog) {
		t.Fatalf("log: got %v want %v", outer.Log(), wantLog)
	}
	if counter != 3 {
		t.Fatalf("counter: got %d want 3", counter)
	}
}

func equalValueSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
