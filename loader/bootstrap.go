package loader

import (
	"errors"
	"time"

	"github.com/darkerbit/datesaurus"
	"github.com/glintlang/glint"
)

var (
	errNoG0Module        = errors.New("no unique language-g0 module on GLAS_PATH")
	errNoFixedPoint      = errors.New("self-compilation did not reach a fixed point")
	errCompileFailed     = errors.New("failed to compile language-g0")
	errMalformedArtifact = errors.New("language-g0 artifact is not a well-formed compiler module")
	errBadArity          = errors.New("language-g0 compiler does not have arity (1,1)")
)

// Bootstrap performs the self-hosting bootstrap of §4.6: it searches
// GLAS_PATH (only, not the working directory) for exactly one
// "language-g0" module, compiles it through the built-in g0, then
// recompiles it twice more through its own freshly-produced compiler,
// and requires the last two results to be a byte-exact (structural)
// fixed point. On success the returned Loader is fully self-hosted: every
// further module compiles through the self-produced g0.
func Bootstrap(downstream glint.Handler, log *glint.Logger, extraSearch []string) (*Loader, error) {
	start := time.Now()
	if log == nil {
		log = glint.StderrLogger()
	}

	l0 := New(glint.BuiltinG0, downstream, log, nil)
	l0.GlasPathOnly = true
	fp, found := l0.search("language-g0")
	if !found {
		return nil, glint.NewHostError("bootstrap", "", errNoG0Module)
	}

	p0, err := compileG0Module(l0, fp)
	if err != nil {
		return nil, err
	}

	l1 := New(nil, downstream, log, extraSearch)
	l1.CompileG0 = wrapProgram(p0, l1.Handler())
	p1, err := compileG0Module(l1, fp)
	if err != nil {
		return nil, err
	}

	l2 := New(nil, downstream, log, extraSearch)
	l2.CompileG0 = wrapProgram(p1, l2.Handler())
	p2, err := compileG0Module(l2, fp)
	if err != nil {
		return nil, err
	}

	if !glint.ProgramsEqual(p1, p2) {
		return nil, glint.NewHostError("bootstrap", fp, errNoFixedPoint)
	}

	l2.CompileG0 = wrapProgram(p2, l2.Handler())
	log.Info("bootstrap", "reached fixed point in %s", datesaurus.Humanize(time.Since(start)))
	return l2, nil
}

func wrapProgram(p glint.Program, h glint.Handler) CompileFunc {
	return func(v glint.Value) (glint.Value, bool) {
		result, ok := glint.Eval(p, h, []glint.Value{v})
		if !ok || len(result) != 1 {
			return glint.Value{}, false
		}
		return result[0], true
	}
}

// compileG0Module loads fp (the language-g0 module) through l and decodes
// its "compile" field as a Program, per the compiler contract (§6.3).
func compileG0Module(l *Loader, fp string) (glint.Program, error) {
	val, ok := l.LoadFile(fp)
	if !ok {
		return glint.Program{}, glint.NewHostError("bootstrap compile", fp, errCompileFailed)
	}
	rec, isRec := val.AsRecord()
	if !isRec {
		return glint.Program{}, glint.NewHostError("bootstrap compile", fp, errMalformedArtifact)
	}
	compileV, found := rec.Get(glint.Sym("compile"))
	if !found {
		return glint.Program{}, glint.NewHostError("bootstrap compile", fp, errMalformedArtifact)
	}
	p, ok := glint.ValueToProgram(compileV)
	if !ok {
		return glint.Program{}, glint.NewHostError("bootstrap compile", fp, errMalformedArtifact)
	}
	arity, err := glint.StaticArity(p)
	if err != nil || !glint.IsCompilerArity(arity) {
		return glint.Program{}, glint.NewHostError("bootstrap compile", fp, errBadArity)
	}
	return p, nil
}
