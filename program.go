package glint

// ProgKind discriminates the tagged forms a Program may take.
type ProgKind int

// The forms a Program may take; see the package doc and §3.2 of the
// specification this runtime implements.
const (
	PKOp ProgKind = iota
	PKData
	PKSeq
	PKDip
	PKCond
	PKLoop
	PKEnv
	PKProg
	// PKNative is not part of the algebra §3.2 describes; it is the escape
	// hatch the bootstrap driver uses for the one compiler that cannot be
	// written in the combinator calculus itself: the built-in g0 (see
	// builtin_g0.go). A native program is identified by a small integer id
	// registered in nativeRegistry, so it can still be encoded as a Value
	// and compared structurally like any other program.
	PKNative
)

// Program is a Value in one of the tagged forms the evaluator discriminates
// on. Programs are themselves ordinary, immutable Values in the runtime
// (compilers are Programs); Program is the typed view an embedder builds and
// the evaluator walks.
type Program struct {
	kind ProgKind

	op   Op
	data Value

	seq []Program

	dip *Program

	try, then, els *Program // Cond

	while, do *Program // Loop

	handler, body *Program // Env

	meta *Program // Prog: static annotations, e.g. declared arity

	nativeID int
	native   func(Value) (Value, bool)
}

// OpProg builds a primitive-operator Program.
func OpProg(k Op) Program { return Program{kind: PKOp, op: k} }

// DataProg builds a Program that pushes v and never fails.
func DataProg(v Value) Program { return Program{kind: PKData, data: v} }

// SeqProg builds an in-order composition of ps.
func SeqProg(ps ...Program) Program { return Program{kind: PKSeq, seq: ps} }

// DipProg builds a Program that runs p with the top stack item hidden, then
// restores it.
func DipProg(p Program) Program { return Program{kind: PKDip, dip: &p} }

// CondProg builds a speculative Program: try try transactionally; on
// success run then, on failure run els.
func CondProg(try, then, els Program) Program {
	return Program{kind: PKCond, try: &try, then: &then, els: &els}
}

// LoopProg builds a Program that repeats: try while; on success run do and
// continue, on failure exit the loop successfully.
func LoopProg(while, do Program) Program {
	return Program{kind: PKLoop, while: &while, do: &do}
}

// EnvProg builds a Program that runs p with effects intercepted by handler
// program h.
func EnvProg(h, p Program) Program {
	return Program{kind: PKEnv, handler: &h, body: &p}
}

// ProgProg wraps body with metadata, itself a Program (conventionally a
// record-producing Data/Seq). ProgProg is semantically equivalent to body:
// Eval and StaticArity both use body only, and nothing in this package
// reads meta.
func ProgProg(meta Program, body Program) Program {
	return Program{kind: PKProg, meta: &meta, body: &body}
}

// NativeProg builds a program backed directly by a Go closure, registered
// under id. Native programs exist only for the handful of built-in
// compilers that cannot themselves be written in the combinator calculus
// (see builtin_g0.go); ordinary programs never need one.
func NativeProg(id int, fn func(Value) (Value, bool)) Program {
	return Program{kind: PKNative, nativeID: id, native: fn}
}

// Kind reports p's tagged form.
func (p Program) Kind() ProgKind { return p.kind }

// Nop is the empty sequence: it always succeeds and never changes the
// stack.
var Nop = SeqProg()
