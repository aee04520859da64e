package loader

import (
	"os"
	"testing"

	"github.com/glintlang/glint"
)

func withGlasPath(t *testing.T, dir string) {
	t.Helper()
	prev, had := os.LookupEnv("GLAS_PATH")
	os.Setenv("GLAS_PATH", dir)
	t.Cleanup(func() {
		if had {
			os.Setenv("GLAS_PATH", prev)
		} else {
			os.Unsetenv("GLAS_PATH")
		}
	})
}

func TestBootstrapReachesFixedPoint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "language-g0.g0", "anything, the built-in g0 ignores its input")
	withGlasPath(t, dir)

	l, err := Bootstrap(glint.NopHandler{}, nil, nil)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if l == nil {
		t.Fatal("Bootstrap returned a nil Loader on success")
	}
	if l.CompileG0 == nil {
		t.Fatal("bootstrap must install the self-hosted g0 compiler")
	}

	// The installed compiler is whatever the fixed-point program (the
	// built-in's own quine artifact) evaluates to; exercising it here
	// demonstrates it survived two rounds of self-compilation intact.
	out, ok := l.CompileG0(glint.NewBits(glint.Sym("ignored")))
	if !ok {
		t.Fatal("self-hosted g0 compiler should still run")
	}
	rec, isRec := out.AsRecord()
	if !isRec {
		t.Fatal("self-hosted g0's own artifact should still be a compiler-module record")
	}
	if _, found := rec.Get(glint.Sym("compile")); !found {
		t.Fatal("self-hosted g0's own artifact is missing its compile field")
	}
}

func TestBootstrapFailsWithoutG0OnPath(t *testing.T) {
	withGlasPath(t, t.TempDir())

	if _, err := Bootstrap(glint.NopHandler{}, nil, nil); err == nil {
		t.Fatal("bootstrap without a language-g0 module on GLAS_PATH should fail")
	}
}

func TestBootstrapIgnoresLocalDirectory(t *testing.T) {
	local := t.TempDir()
	writeFile(t, local, "language-g0.g0", "should never be found")
	withGlasPath(t, t.TempDir()) // empty: no language-g0 here either

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(local); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if _, err := Bootstrap(glint.NopHandler{}, nil, nil); err == nil {
		t.Fatal("bootstrap step 1 searches GLAS_PATH only, never the working directory")
	}
}
