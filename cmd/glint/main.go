// Command glint is a minimal driver for the runtime: it bootstraps a
// Loader and loads one named module, printing its result. It exists so
// the evaluator and loader have some external collaborator exercising
// them end to end, the way io/main.go exercises the teacher's VM; it is
// not itself part of the runtime's contract.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/glintlang/glint"
	"github.com/glintlang/glint/loader"
)

func main() {
	configPath := flag.String("config", "glint.yaml", "path to an optional config file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: glint [-config path] <module-name>")
		os.Exit(2)
	}
	name := flag.Arg(0)

	cfg, err := glint.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := glint.NewLogger(os.Stderr, cfg.TimeFormat)
	log.SetLevel(cfg.LogLevel)

	h := glint.NewLogHandler()
	l, err := loader.Bootstrap(h, log, cfg.SearchPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bootstrap failed:", err)
		os.Exit(1)
	}

	result, ok := l.Load(name)
	if !ok {
		fmt.Fprintln(os.Stderr, "failed to load", name)
		os.Exit(1)
	}
	fmt.Println(glint.Dump(result))
}
