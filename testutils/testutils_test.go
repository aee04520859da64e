package testutils

import (
	"testing"

	"github.com/glintlang/glint"
)

func sym(s string) glint.Value { return glint.NewBits(glint.Sym(s)) }

func TestEvalTestCaseTable(t *testing.T) {
	cases := map[string]EvalTestCase{
		"copy duplicates the top": {
			Program: glint.OpProg(glint.OpCopy),
			Stack:   []glint.Value{sym("x")},
			Pass:    PassStack([]glint.Value{sym("x"), sym("x")}),
		},
		"drop on an empty stack fails and leaves it untouched": {
			Program: glint.OpProg(glint.OpDrop),
			Stack:   nil,
			Pass:    PassFailureUnchanged(nil),
		},
		"swap exchanges the top two": {
			Program: glint.OpProg(glint.OpSwap),
			Stack:   []glint.Value{sym("a"), sym("b")},
			Pass:    PassStack([]glint.Value{sym("b"), sym("a")}),
		},
		"eq on equal values drops both": {
			Program: glint.OpProg(glint.OpEq),
			Stack:   []glint.Value{sym("a"), sym("a")},
			Pass:    PassStack(nil),
		},
		"eq on unequal values fails": {
			Program: glint.OpProg(glint.OpEq),
			Stack:   []glint.Value{sym("a"), sym("b")},
			Pass:    PassFailureUnchanged([]glint.Value{sym("a"), sym("b")}),
		},
		"eff with no handler support fails": {
			Program: glint.OpProg(glint.OpEff),
			Stack:   []glint.Value{sym("x")},
			Handler: glint.NopHandler{},
			Pass:    PassFailureUnchanged([]glint.Value{sym("x")}),
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}

func TestStackEqual(t *testing.T) {
	a := []glint.Value{sym("a"), sym("b")}
	b := []glint.Value{sym("a"), sym("b")}
	if !StackEqual(a, b) {
		t.Fatal("identical stacks should be equal")
	}
	if StackEqual(a, []glint.Value{sym("a")}) {
		t.Fatal("stacks of different length should not be equal")
	}
}
