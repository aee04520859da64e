// Package loader implements the module loader described in §3.4 and §4.4
// of the runtime this module builds: a filesystem-driven resolver that
// finds files on a search path, folds them through per-extension compiler
// pipelines, caches the results, and detects dependency cycles.
package loader

import (
	"io/ioutil"
	"strings"

	"github.com/glintlang/glint"
	"github.com/zephyrtronium/contains"
)

// CompileFunc is a compiler reduced to its essential shape: a total
// function from one Value to an optional Value, exactly the contract
// §6.3 asks every language-<ext> module's "compile" field to satisfy.
type CompileFunc func(glint.Value) (glint.Value, bool)

type cacheEntry struct {
	value glint.Value
	ok    bool
}

type compilerEntry struct {
	fn CompileFunc
	ok bool
}

// Loader holds the per-instance state §3.4 names: Loading, Cache,
// CompilerCache, and CompileG0. It is not safe for concurrent use — per
// §5, the loader is driven by a single cooperative evaluation thread.
type Loader struct {
	Loading []string
	Cache   map[string]cacheEntry

	CompilerCache map[string]compilerEntry
	CompileG0     CompileFunc

	// ExtraSearch supplements GLAS_PATH, tried after it, sourced from an
	// optional glint.yaml (glint.Config.SearchPath).
	ExtraSearch []string

	// GlasPathOnly restricts search to GLAS_PATH (and ExtraSearch),
	// skipping the local directory. Bootstrap sets this on its first
	// Loader per §4.6 step 1 ("search only GLAS_PATH").
	GlasPathOnly bool

	Log *glint.Logger

	handler *loaderHandler

	seen    contains.Set
	ids     map[string]uintptr
	nextID  uintptr
}

// New builds a Loader with compileG0 as its initial g0 compiler and
// downstream as the effect handler to forward non-loader effects to.
func New(compileG0 CompileFunc, downstream glint.Handler, log *glint.Logger, extraSearch []string) *Loader {
	if log == nil {
		log = glint.StderrLogger()
	}
	l := &Loader{
		Cache:         map[string]cacheEntry{},
		CompilerCache: map[string]compilerEntry{},
		CompileG0:     compileG0,
		ExtraSearch:   extraSearch,
		Log:           log,
		ids:           map[string]uintptr{},
	}
	l.handler = &loaderHandler{
		Delegating: glint.Delegating{Inner: downstream},
		l:          l,
	}
	return l
}

// Handler returns the loader's own effect handler, which intercepts
// load:<name> and log:<record> and forwards everything else to the
// handler New was given (§4.5).
func (l *Loader) Handler() glint.Handler { return l.handler }

func (l *Loader) internID(fp string) uintptr {
	if id, ok := l.ids[fp]; ok {
		return id
	}
	l.nextID++
	l.ids[fp] = l.nextID
	return l.nextID
}

func (l *Loader) currentFile() string {
	if len(l.Loading) == 0 {
		return ""
	}
	return l.Loading[len(l.Loading)-1]
}

// Load resolves module name via the search algorithm (§4.4) and loads the
// file it finds. This is the entry point an embedder uses for a top-level
// module name; LoadFile is for loader-internal recursion once a path is
// already known (e.g. from a load:<name> effect, which resolves the name
// itself before recursing).
func (l *Loader) Load(name string) (glint.Value, bool) {
	fp, found := l.search(name)
	if !found {
		return glint.Value{}, false
	}
	return l.LoadFile(fp)
}

// LoadFile loads the module at fp, following §4.4's "Loading a file"
// procedure: a cache hit returns verbatim; a file already on the Loading
// stack is a cycle, logged and cached as a failure; otherwise fp is
// pushed, read, folded through its extension chain's compilers, and the
// result (success or failure) is cached before fp is popped.
func (l *Loader) LoadFile(fp string) (glint.Value, bool) {
	if entry, ok := l.Cache[fp]; ok {
		l.Log.Info(fp, "cache hit")
		return entry.value, entry.ok
	}

	id := l.internID(fp)
	if !l.seen.Add(id) {
		msg := cycleMessage(l.Loading, fp)
		l.Log.Error(fp, "cycle detected: %s", msg)
		l.Cache[fp] = cacheEntry{ok: false}
		return glint.Value{}, false
	}

	l.Loading = append(l.Loading, fp)
	v, ok := l.loadFileInner(fp)

	l.Cache[fp] = cacheEntry{value: v, ok: ok}
	l.Loading = l.Loading[:len(l.Loading)-1]
	return v, ok
}

func (l *Loader) loadFileInner(fp string) (glint.Value, bool) {
	data, err := ioutil.ReadFile(fp)
	if err != nil {
		l.Log.Error(fp, "read failed: %v", glint.NewHostError("read module", fp, err))
		return glint.Value{}, false
	}
	v := glint.NewBits(glint.Bits{Len: len(data) * 8, Data: data})

	chain := extensionChain(fp)
	for i := len(chain) - 1; i >= 0; i-- {
		ext := chain[i]
		comp, ok := l.GetCompiler(ext)
		if !ok {
			l.Log.Error(fp, "no compiler for extension %q", ext)
			return glint.Value{}, false
		}
		v, ok = comp(v)
		if !ok {
			l.Log.Error(fp, "compile failed at extension %q", ext)
			return glint.Value{}, false
		}
	}
	return v, true
}

// extensionChain splits fp's filename by "." after the first segment, so
// "foo.x.g0" yields ["x", "g0"].
func extensionChain(fp string) []string {
	base := baseName(fp)
	idx := strings.IndexByte(base, '.')
	if idx < 0 {
		return nil
	}
	return strings.Split(base[idx+1:], ".")
}

func baseName(fp string) string {
	idx := strings.LastIndexAny(fp, `/\`)
	if idx < 0 {
		return fp
	}
	return fp[idx+1:]
}

// cycleMessage renders loading (most recent last) rotated to start at fp,
// e.g. Loading=[A,B] and fp=A yields "A -> B -> A".
func cycleMessage(loading []string, fp string) string {
	start := -1
	for i, p := range loading {
		if p == fp {
			start = i
			break
		}
	}
	if start < 0 {
		return fp
	}
	rotated := append(append([]string{}, loading[start:]...), loading[:start]...)
	rotated = append(rotated, fp)
	return strings.Join(rotated, " -> ")
}
