// Command glintcheck is a development tool, not part of the runtime: it
// loads every Go package under a given pattern with go/packages, looks
// for package-level functions literally named Compile, and reports any
// whose Go signature is not (glint.Value) (glint.Value, bool). It does not
// decode or run a program, so it does not check static arity (1,1); the
// loader does that at load time. It is grounded on cmd/iofn's use of
// go/packages to inspect Go source for binding generation, repurposed
// here for a static check instead of code generation.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"os"

	"golang.org/x/tools/go/packages"
)

func main() {
	flag.Parse()
	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "glintcheck:", err)
		os.Exit(1)
	}

	failed := false
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				fn, ok := n.(*ast.FuncDecl)
				if !ok || fn.Name.Name != "Compile" || fn.Recv != nil {
					return true
				}
				if !hasCompilerSignature(pkg, fn) {
					fmt.Fprintf(os.Stderr, "%s: Compile does not have the (glint.Value) (glint.Value, bool) compiler signature\n", pkg.Fset.Position(fn.Pos()))
					failed = true
				}
				return true
			})
		}
	}
	if failed {
		os.Exit(1)
	}
}

// hasCompilerSignature checks fn's Go type against the shape every
// language-<ext> compiler's exported entry point must have: one
// glint.Value parameter, returning (glint.Value, bool). It does not (and
// cannot, statically) verify runtime arity (1,1) of a Program value;
// that check happens in the loader when the module is actually loaded.
// This tool catches the cheaper, earlier mistake of a Go-level signature
// that could never satisfy the contract.
func hasCompilerSignature(pkg *packages.Package, fn *ast.FuncDecl) bool {
	obj := pkg.TypesInfo.Defs[fn.Name]
	if obj == nil {
		return false
	}
	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return false
	}
	isValue := func(t types.Type) bool {
		named, ok := t.(*types.Named)
		if !ok || named.Obj().Pkg() == nil {
			return false
		}
		return named.Obj().Name() == "Value" && named.Obj().Pkg().Path() == "github.com/glintlang/glint"
	}
	return sig.Params().Len() == 1 && sig.Results().Len() == 2 &&
		isValue(sig.Params().At(0).Type()) &&
		isValue(sig.Results().At(0).Type()) &&
		types.Identical(sig.Results().At(1).Type(), types.Typ[types.Bool])
}
