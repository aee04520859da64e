package glint

// This file encodes/decodes Program as Value, matching §3.2's claim that
// "compilers are themselves Values (programs) that the evaluator runs":
// a module's "compile" field must be an ordinary Value, not a Go struct,
// so the loader can carry it through caches and across module boundaries
// without depending on the evaluator's internal Program type.
//
// The encoding is a tagged record: {tag: <kind name>, ...kind fields}.

var nativeRegistry = map[int]Program{}

func registerNative(id int, fn func(Value) (Value, bool)) Program {
	p := NativeProg(id, fn)
	nativeRegistry[id] = p
	return p
}

// ProgramToValue encodes p as a Value.
func ProgramToValue(p Program) Value {
	rec := emptyRecord
	put := func(k string, v Value) { rec = rec.Put(Sym(k), v) }
	switch p.kind {
	case PKOp:
		put("tag", NewBits(Sym("op")))
		put("op", NewBits(Sym(string(p.op))))
	case PKData:
		put("tag", NewBits(Sym("data")))
		put("v", p.data)
	case PKSeq:
		put("tag", NewBits(Sym("seq")))
		vs := make([]Value, len(p.seq))
		for i, sub := range p.seq {
			vs[i] = ProgramToValue(sub)
		}
		put("seq", NewList(FromValues(vs...)))
	case PKDip:
		put("tag", NewBits(Sym("dip")))
		put("p", ProgramToValue(*p.dip))
	case PKCond:
		put("tag", NewBits(Sym("cond")))
		put("try", ProgramToValue(*p.try))
		put("then", ProgramToValue(*p.then))
		put("else", ProgramToValue(*p.els))
	case PKLoop:
		put("tag", NewBits(Sym("loop")))
		put("while", ProgramToValue(*p.while))
		put("do", ProgramToValue(*p.do))
	case PKEnv:
		put("tag", NewBits(Sym("env")))
		put("h", ProgramToValue(*p.handler))
		put("p", ProgramToValue(*p.body))
	case PKProg:
		put("tag", NewBits(Sym("prog")))
		put("meta", ProgramToValue(*p.meta))
		put("body", ProgramToValue(*p.body))
	case PKNative:
		put("tag", NewBits(Sym("native")))
		put("id", NewBits(natFromInt(p.nativeID)))
	}
	return NewRecord(rec)
}

// ValueToProgram decodes v, which must have been produced by
// ProgramToValue (or structurally match it).
func ValueToProgram(v Value) (Program, bool) {
	rec, isRec := v.AsRecord()
	if !isRec {
		return Program{}, false
	}
	get := func(k string) (Value, bool) { return rec.Get(Sym(k)) }
	tagV, ok := get("tag")
	if !ok {
		return Program{}, false
	}
	tag, ok := tagV.SymString()
	if !ok {
		return Program{}, false
	}
	switch tag {
	case "op":
		opV, ok := get("op")
		if !ok {
			return Program{}, false
		}
		name, ok := opV.SymString()
		if !ok || !IsOp(Op(name)) {
			return Program{}, false
		}
		return OpProg(Op(name)), true
	case "data":
		data, ok := get("v")
		if !ok {
			return Program{}, false
		}
		return DataProg(data), true
	case "seq":
		seqV, ok := get("seq")
		if !ok {
			return Program{}, false
		}
		l, isList := seqV.AsList()
		if !isList {
			return Program{}, false
		}
		subs := make([]Program, l.Len())
		for i := 0; i < l.Len(); i++ {
			elem, _ := l.Index(i)
			p, ok := ValueToProgram(elem)
			if !ok {
				return Program{}, false
			}
			subs[i] = p
		}
		return SeqProg(subs...), true
	case "dip":
		pv, ok := get("p")
		if !ok {
			return Program{}, false
		}
		p, ok := ValueToProgram(pv)
		if !ok {
			return Program{}, false
		}
		return DipProg(p), true
	case "cond":
		tv, ok1 := get("try")
		yv, ok2 := get("then")
		nv, ok3 := get("else")
		if !ok1 || !ok2 || !ok3 {
			return Program{}, false
		}
		t, ok1 := ValueToProgram(tv)
		y, ok2 := ValueToProgram(yv)
		n, ok3 := ValueToProgram(nv)
		if !ok1 || !ok2 || !ok3 {
			return Program{}, false
		}
		return CondProg(t, y, n), true
	case "loop":
		wv, ok1 := get("while")
		dv, ok2 := get("do")
		if !ok1 || !ok2 {
			return Program{}, false
		}
		w, ok1 := ValueToProgram(wv)
		d, ok2 := ValueToProgram(dv)
		if !ok1 || !ok2 {
			return Program{}, false
		}
		return LoopProg(w, d), true
	case "env":
		hv, ok1 := get("h")
		pv, ok2 := get("p")
		if !ok1 || !ok2 {
			return Program{}, false
		}
		h, ok1 := ValueToProgram(hv)
		p, ok2 := ValueToProgram(pv)
		if !ok1 || !ok2 {
			return Program{}, false
		}
		return EnvProg(h, p), true
	case "prog":
		mv, ok1 := get("meta")
		bv, ok2 := get("body")
		if !ok1 || !ok2 {
			return Program{}, false
		}
		m, ok1 := ValueToProgram(mv)
		b, ok2 := ValueToProgram(bv)
		if !ok1 || !ok2 {
			return Program{}, false
		}
		return ProgProg(m, b), true
	case "native":
		idV, ok := get("id")
		if !ok {
			return Program{}, false
		}
		idBits, ok := idV.AsBits()
		if !ok {
			return Program{}, false
		}
		id, ok := intFromNat(idBits)
		if !ok {
			return Program{}, false
		}
		p, ok := nativeRegistry[id]
		return p, ok
	default:
		return Program{}, false
	}
}

// ProgramsEqual reports whether a and b are the same program, by
// structural Value equality of their encodings (§8.1's bootstrap
// fixed-point property: "p1 == p2").
func ProgramsEqual(a, b Program) bool {
	return Equal(ProgramToValue(a), ProgramToValue(b))
}
