package loader

import "github.com/glintlang/glint"

// GetCompiler implements §4.4's GetCompiler(suffix): the empty suffix has
// no compiler; "g0" is whatever CompileG0 currently is; any other suffix
// loads module "language-<suffix>", expects a record with a "compile"
// field holding a Program of static arity (1,1) (§6.3), and wraps it as a
// CompileFunc that runs that program against a fresh single-element
// stack through the loader's own handler (so the compiler's own effects,
// including further load effects, recurse through this Loader).
func (l *Loader) GetCompiler(suffix string) (CompileFunc, bool) {
	if suffix == "" {
		return nil, false
	}
	if suffix == "g0" {
		return l.CompileG0, l.CompileG0 != nil
	}
	if entry, ok := l.CompilerCache[suffix]; ok {
		return entry.fn, entry.ok
	}

	modName := "language-" + suffix
	fp, found := l.search(modName)
	if !found {
		l.CompilerCache[suffix] = compilerEntry{}
		return nil, false
	}

	val, ok := l.LoadFile(fp)
	if !ok {
		l.CompilerCache[suffix] = compilerEntry{}
		return nil, false
	}

	fn, ok := l.compileFuncFromArtifact(fp, val)
	l.CompilerCache[suffix] = compilerEntry{fn: fn, ok: ok}
	return fn, ok
}

func (l *Loader) compileFuncFromArtifact(fp string, val glint.Value) (CompileFunc, bool) {
	rec, isRec := val.AsRecord()
	if !isRec {
		l.Log.Error(fp, "malformed compiler module: not a record")
		return nil, false
	}
	compileV, found := rec.Get(glint.Sym("compile"))
	if !found {
		l.Log.Error(fp, "malformed compiler module: no compile field")
		return nil, false
	}
	prog, ok := glint.ValueToProgram(compileV)
	if !ok {
		l.Log.Error(fp, "malformed compiler module: compile field is not a program")
		return nil, false
	}
	arity, err := glint.StaticArity(prog)
	if err != nil || !glint.IsCompilerArity(arity) {
		l.Log.Error(fp, "compiler module has wrong arity: %v", arity)
		return nil, false
	}
	h := l.Handler()
	return func(v glint.Value) (glint.Value, bool) {
		result, ok := glint.Eval(prog, h, []glint.Value{v})
		if !ok || len(result) != 1 {
			return glint.Value{}, false
		}
		return result[0], true
	}, true
}
