package glint

import "fmt"

// Arity is a program's net stack effect: every successful evaluation of a
// program with Arity{In, Out} consumes exactly In stack cells and leaves
// Out.
type Arity struct {
	In, Out int
}

// ComposeArity returns the arity of running a program with arity a followed
// by a program with arity b. If b needs more inputs than a leaves behind,
// the extra inputs are threaded through from below a's frame (exactly as
// two Forth-style stack effects compose).
func ComposeArity(a, b Arity) Arity {
	extra := 0
	if b.In > a.Out {
		extra = b.In - a.Out
	}
	out := b.Out
	if a.Out > b.In {
		out += a.Out - b.In
	}
	return Arity{In: a.In + extra, Out: out}
}

var opArity = map[Op]Arity{
	OpCopy:   {1, 2},
	OpDrop:   {1, 0},
	OpSwap:   {2, 2},
	OpEq:     {2, 0},
	OpGet:    {2, 1},
	OpPut:    {3, 1},
	OpDel:    {2, 1},
	OpPushl:  {2, 1},
	OpPushr:  {2, 1},
	OpPopl:   {1, 2},
	OpPopr:   {1, 2},
	OpLen:    {1, 1},
	OpSplit:  {2, 2},
	OpJoin:   {2, 1},
	OpAdd:    {2, 1},
	OpSub:    {2, 1},
	OpMul:    {2, 1},
	OpDiv:    {2, 2},
	OpBjoin:  {2, 1},
	OpBsplit: {1, 2},
	OpBlen:   {1, 1},
	OpEff:    {1, 1},
}

// StaticArity computes p's arity, or an error if p's shape makes a
// consistent arity impossible to determine (an unknown Op, or a combinator
// whose branches disagree per §4.2).
func StaticArity(p Program) (Arity, error) {
	switch p.kind {
	case PKOp:
		a, ok := opArity[p.op]
		if !ok {
			return Arity{}, fmt.Errorf("glint: unknown op %q", p.op)
		}
		return a, nil

	case PKData:
		return Arity{0, 1}, nil

	case PKSeq:
		total := Arity{0, 0}
		for _, sub := range p.seq {
			a, err := StaticArity(sub)
			if err != nil {
				return Arity{}, err
			}
			total = ComposeArity(total, a)
		}
		return total, nil

	case PKDip:
		inner, err := StaticArity(*p.dip)
		if err != nil {
			return Arity{}, err
		}
		return Arity{inner.In + 1, inner.Out + 1}, nil

	case PKCond:
		t, err := StaticArity(*p.try)
		if err != nil {
			return Arity{}, err
		}
		y, err := StaticArity(*p.then)
		if err != nil {
			return Arity{}, err
		}
		n, err := StaticArity(*p.els)
		if err != nil {
			return Arity{}, err
		}
		success := ComposeArity(t, y)
		if success != n {
			return Arity{}, fmt.Errorf("glint: cond branches disagree: try;then=%+v else=%+v", success, n)
		}
		return success, nil

	case PKLoop:
		w, err := StaticArity(*p.while)
		if err != nil {
			return Arity{}, err
		}
		d, err := StaticArity(*p.do)
		if err != nil {
			return Arity{}, err
		}
		body := ComposeArity(w, d)
		if body.In != body.Out {
			return Arity{}, fmt.Errorf("glint: loop body not balanced: %+v", body)
		}
		return Arity{body.In, body.In}, nil

	case PKEnv:
		return StaticArity(*p.body)

	case PKProg:
		return StaticArity(*p.body)

	case PKNative:
		return Arity{1, 1}, nil

	default:
		return Arity{}, fmt.Errorf("glint: unrecognized program kind %v", p.kind)
	}
}

// IsCompilerArity reports whether a is the contract every language-<ext>
// compiler must satisfy: exactly one input, exactly one output (§4.2, §6.3).
func IsCompilerArity(a Arity) bool {
	return a.In == 1 && a.Out == 1
}
