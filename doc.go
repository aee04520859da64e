/*
Package glint implements the core runtime of a minimalist, stack-based
combinator language.

The runtime has two parts. The first is a deterministic evaluator for a small
combinator calculus: a value stack, the structured combinators Seq, Dip,
Cond, Loop, Env, and Prog, a fixed set of primitive operators, and a
transactional effects bridge so that speculative combinators (Cond, Loop) can
try a sub-program and cleanly back out of its side effects on failure. The
second, in package loader, is a module resolver: it finds source files on a
search path, compiles them through a chain of compiler programs selected by
filename extension, caches the results, detects dependency cycles, and
bootstraps the base-language compiler by having it compile itself to a fixed
point.

Both parts share one substrate, Value: an immutable tree of bitstrings,
pairs, labeled records, and indexed lists. Compilers are themselves Values
(programs) that the evaluator runs, so loading a module and running a
program are the same operation viewed from two callers.

Evaluation is single-threaded and cooperative. There is no implicit
parallelism in eval; the only suspension points are inside an effect
handler's eff call, where a host-provided handler may choose to block. A
failed evaluation is a first-class, expected outcome (an absent result, not
a panic or an error value) and is consumed by Cond and Loop to implement
backtracking.

To embed the evaluator, build a Program (see program.go), an effect Handler
(see effect.go), and an initial Stack, then call Eval. To load a tree of
files, use loader.Bootstrap to obtain a self-hosted Loader, then
(*Loader).Load with a module name.
*/
package glint
