package glint

import "math/big"

// Eval interprets program p against effect handler h and an initial stack
// (top-first, stack[0] is the top), returning the resulting stack and
// whether evaluation succeeded. A failed Eval call always returns exactly
// the stack it was given: every rule below is written so failure takes the
// "return stack, false" exit before any partial result escapes, which is
// what gives the whole evaluator the stack-purity property (§8.1) for free
// rather than as a bolted-on check.
func Eval(p Program, h Handler, stack []Value) ([]Value, bool) {
	switch p.kind {
	case PKOp:
		return evalOp(p.op, h, stack)

	case PKData:
		return push(p.data, stack), true

	case PKSeq:
		cur := stack
		for _, sub := range p.seq {
			next, ok := Eval(sub, h, cur)
			if !ok {
				return stack, false
			}
			cur = next
		}
		return cur, true

	case PKDip:
		top, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		res, ok := Eval(*p.dip, h, rest)
		if !ok {
			return stack, false
		}
		return push(top, res), true

	case PKCond:
		h.Try()
		tried, ok := Eval(*p.try, h, stack)
		if ok {
			h.Commit()
			res, ok := Eval(*p.then, h, tried)
			if !ok {
				return stack, false
			}
			return res, true
		}
		h.Abort()
		return Eval(*p.els, h, stack)

	case PKLoop:
		cur := stack
		for {
			h.Try()
			next, ok := Eval(*p.while, h, cur)
			if !ok {
				h.Abort()
				return cur, true
			}
			h.Commit()
			next, ok = Eval(*p.do, h, next)
			if !ok {
				return stack, false
			}
			cur = next
		}

	case PKEnv:
		inner := &envHandler{Delegating: Delegating{Inner: h}, prog: *p.handler}
		return Eval(*p.body, inner, stack)

	case PKProg:
		return Eval(*p.body, h, stack)

	case PKNative:
		top, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		result, ok := p.native(top)
		if !ok {
			return stack, false
		}
		return push(result, rest), true

	default:
		return stack, false
	}
}

// envHandler is the handler an Env combinator installs around its body: Eff
// dispatches to the handler program, evaluated against the outer handler
// (never against itself — h does not see its own interception), exactly as
// §4.3/§4.5 describe "running h with the outer effect handler active".
// Try/Commit/Abort are pure delegation, per the design-notes rule that
// composition here is delegation, not nested handler instances.
type envHandler struct {
	Delegating
	prog Program
}

func (e *envHandler) Eff(v Value) (Value, bool) {
	result, ok := Eval(e.prog, e.Inner, []Value{v})
	if !ok || len(result) != 1 {
		return Value{}, false
	}
	return result[0], true
}

func evalOp(op Op, h Handler, stack []Value) ([]Value, bool) {
	switch op {
	case OpCopy:
		top, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		return push2(top, top, rest), true

	case OpDrop:
		_, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		return rest, true

	case OpSwap:
		a, b, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		return push2(b, a, rest), true

	case OpEq:
		a, b, rest, ok := pop2(stack)
		if !ok || !Equal(a, b) {
			return stack, false
		}
		return rest, true

	case OpGet:
		k, r, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		key, isBits := k.AsBits()
		rec, isRec := r.AsRecord()
		if !isBits || !isRec {
			return stack, false
		}
		v, found := rec.Get(key)
		if !found {
			return stack, false
		}
		return push(v, rest), true

	case OpPut:
		k, v, r, rest, ok := pop3(stack)
		if !ok {
			return stack, false
		}
		key, isBits := k.AsBits()
		rec, isRec := r.AsRecord()
		if !isBits || !isRec {
			return stack, false
		}
		return push(NewRecord(rec.Put(key, v)), rest), true

	case OpDel:
		k, r, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		key, isBits := k.AsBits()
		rec, isRec := r.AsRecord()
		if !isBits || !isRec {
			return stack, false
		}
		return push(NewRecord(rec.Del(key)), rest), true

	case OpPushl:
		x, lv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		l, isList := lv.AsList()
		if !isList {
			return stack, false
		}
		return push(NewList(PushL(l, x)), rest), true

	case OpPushr:
		x, lv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		l, isList := lv.AsList()
		if !isList {
			return stack, false
		}
		return push(NewList(PushR(l, x)), rest), true

	case OpPopl:
		lv, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		l, isList := lv.AsList()
		if !isList {
			return stack, false
		}
		x, tail, popped := PopL(l)
		if !popped {
			return stack, false
		}
		return push2(x, NewList(tail), rest), true

	case OpPopr:
		lv, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		l, isList := lv.AsList()
		if !isList {
			return stack, false
		}
		x, init, popped := PopR(l)
		if !popped {
			return stack, false
		}
		return push2(x, NewList(init), rest), true

	case OpLen:
		lv, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		l, isList := lv.AsList()
		if !isList {
			return stack, false
		}
		return push(NewBits(natFromInt(l.Len())), rest), true

	case OpSplit:
		nv, lv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		nb, isBits := nv.AsBits()
		l, isList := lv.AsList()
		if !isBits || !isList {
			return stack, false
		}
		n, ok := intFromNat(nb)
		if !ok {
			return stack, false
		}
		left, right, split := Split(l, n)
		if !split {
			return stack, false
		}
		return push2(NewList(left), NewList(right), rest), true

	case OpJoin:
		av, bv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsList()
		b, isB := bv.AsList()
		if !isA || !isB {
			return stack, false
		}
		return push(NewList(Join(a, b)), rest), true

	case OpAdd:
		av, bv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsBits()
		b, isB := bv.AsBits()
		if !isA || !isB {
			return stack, false
		}
		return push(NewBits(NatAdd(a, b)), rest), true

	case OpSub:
		av, bv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsBits()
		b, isB := bv.AsBits()
		if !isA || !isB {
			return stack, false
		}
		diff, subOk := NatSub(a, b)
		if !subOk {
			return stack, false
		}
		return push(NewBits(diff), rest), true

	case OpMul:
		av, bv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsBits()
		b, isB := bv.AsBits()
		if !isA || !isB {
			return stack, false
		}
		return push(NewBits(NatMul(a, b)), rest), true

	case OpDiv:
		av, bv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsBits()
		b, isB := bv.AsBits()
		if !isA || !isB {
			return stack, false
		}
		q, r, divOk := NatDiv(a, b)
		if !divOk {
			return stack, false
		}
		return push2(NewBits(r), NewBits(q), rest), true

	case OpBjoin:
		av, bv, rest, ok := pop2(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsBits()
		b, isB := bv.AsBits()
		if !isA || !isB {
			return stack, false
		}
		return push(NewBits(bitsConcat(a, b)), rest), true

	case OpBsplit:
		av, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsBits()
		if !isA || a.Len == 0 {
			return stack, false
		}
		head := BitsFromBools([]bool{a.Bit(0)})
		tail := BitsFromBools(a.Bools()[1:])
		return push2(NewBits(head), NewBits(tail), rest), true

	case OpBlen:
		av, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		a, isA := av.AsBits()
		if !isA {
			return stack, false
		}
		return push(NewBits(natFromInt(a.Len)), rest), true

	case OpEff:
		req, rest, ok := pop1(stack)
		if !ok {
			return stack, false
		}
		result, effOk := h.Eff(req)
		if !effOk {
			return stack, false
		}
		return push(result, rest), true

	default:
		return stack, false
	}
}

func pop1(stack []Value) (Value, []Value, bool) {
	if len(stack) < 1 {
		return Value{}, stack, false
	}
	return stack[0], stack[1:], true
}

func pop2(stack []Value) (a, b Value, rest []Value, ok bool) {
	if len(stack) < 2 {
		return Value{}, Value{}, stack, false
	}
	return stack[0], stack[1], stack[2:], true
}

func pop3(stack []Value) (a, b, c Value, rest []Value, ok bool) {
	if len(stack) < 3 {
		return Value{}, Value{}, Value{}, stack, false
	}
	return stack[0], stack[1], stack[2], stack[3:], true
}

func push(v Value, stack []Value) []Value {
	return append([]Value{v}, stack...)
}

func push2(a, b Value, stack []Value) []Value {
	return append([]Value{a, b}, stack...)
}

func natFromInt(n int) Bits {
	return bitsFromBig(big.NewInt(int64(n)))
}

func intFromNat(b Bits) (int, bool) {
	n := bigFromBits(b)
	if !n.IsInt64() {
		return 0, false
	}
	v := n.Int64()
	if v < 0 || v > int64(^uint(0)>>1) {
		return 0, false
	}
	return int(v), true
}

func bitsConcat(a, b Bits) Bits {
	return BitsFromBools(append(a.Bools(), b.Bools()...))
}
