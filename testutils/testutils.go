// Package testutils provides utilities for testing programs in Go,
// mirroring the teacher's testutils package: a shared test case shape and
// a family of Pass predicate constructors, rather than one assertion
// style repeated by hand in every test file.
package testutils

import (
	"testing"

	"github.com/glintlang/glint"
)

// An EvalTestCase is a test case that evaluates a Program against a stack
// and a handler, then checks the result with Pass.
type EvalTestCase struct {
	Program glint.Program
	Stack   []glint.Value
	Handler glint.Handler
	Pass    func(stack []glint.Value, ok bool) bool
}

// TestFunc returns a test function for the test case.
func (c EvalTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		h := c.Handler
		if h == nil {
			h = glint.NopHandler{}
		}
		stack, ok := glint.Eval(c.Program, h, c.Stack)
		if !c.Pass(stack, ok) {
			t.Errorf("%s: got stack %v, ok=%v", name, debugStack(stack), ok)
		}
	}
}

func debugStack(stack []glint.Value) []string {
	out := make([]string, len(stack))
	for i, v := range stack {
		out[i] = v.DebugString()
	}
	return out
}

// StackEqual reports whether a and b have the same length and
// elementwise-equal values.
func StackEqual(a, b []glint.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !glint.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// PassStack returns a Pass function that requires success and a stack
// equal to want.
func PassStack(want []glint.Value) func([]glint.Value, bool) bool {
	return func(stack []glint.Value, ok bool) bool {
		return ok && StackEqual(stack, want)
	}
}

// PassFailureUnchanged returns a Pass function that requires evaluation
// to fail, leaving the stack exactly as given (the stack-purity
// invariant, §8.1).
func PassFailureUnchanged(original []glint.Value) func([]glint.Value, bool) bool {
	return func(stack []glint.Value, ok bool) bool {
		return !ok && StackEqual(stack, original)
	}
}

// PassSuccess returns a Pass function that only requires success,
// ignoring the resulting stack.
func PassSuccess() func([]glint.Value, bool) bool {
	return func(_ []glint.Value, ok bool) bool { return ok }
}
