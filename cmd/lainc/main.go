// Command lainc is the CLI boundary of spec.md §6.4: `compile <path>
// [--dump-ast]`. Everything upstream of the semantic core — lexing,
// parsing, AST construction — is out of scope per spec.md §1 ("treated as
// collaborators whose interfaces are defined in §6"); this binary wires the
// pieces that ARE in scope (config, module loading, the Module Driver,
// diagnostics reporting) around the frontend.Parse seam that a real
// lexer/parser would plug into.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"github.com/lain-lang/lainc/internal/config"
	"github.com/lain-lang/lainc/internal/frontend"
	"github.com/lain-lang/lainc/internal/module"
	"github.com/lain-lang/lainc/internal/sema"
)

func main() {
	os.Exit(main1())
}

// main1 is the entry point wrapped by both main() and the testscript
// harness (script_test.go), which re-execs this test binary as a "lainc"
// subprocess via testscript.RunMain.
func main1() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run implements the boundary in a form tests can drive without os.Exit,
// mirroring the teacher's pattern of keeping main() a thin os.Exit wrapper
// around a testable body.
func run(args []string, stdout, stderr *os.File) int {
	if len(args) < 2 || args[0] != "compile" {
		fmt.Fprintln(stderr, "usage: lainc compile <path> [--dump-ast]")
		return 2
	}

	path := args[1]
	dumpAST := false
	for _, a := range args[2:] {
		if a == "--dump-ast" {
			dumpAST = true
		}
	}

	start := time.Now()
	color := isatty.IsTerminal(stderr.Fd())

	src, err := os.ReadFile(path)
	if err != nil {
		reportInternal(stderr, color, err)
		return 1
	}

	mod, err := frontend.Parse(path, src)
	if err != nil {
		reportInternal(stderr, color, err)
		return 1
	}

	if dumpAST {
		fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(mod))
	}

	opts, err := config.LoadOptions(path)
	if err != nil {
		reportInternal(stderr, color, err)
		return 1
	}

	loader := module.NewLoader(unavailableResolver, nil)
	ctx := sema.NewContext(mod.Path, loader, opts)
	sema.AnalyzeModule(ctx, mod)

	if ctx.Sink.Fatal() {
		for _, e := range ctx.Sink.Errors() {
			reportDiagnostic(stderr, color, e)
		}
		return 1
	}

	elapsed := time.Since(start)
	fmt.Fprintf(stdout, "compiled %s: %s arena bytes in %s\n",
		path, humanize.Bytes(uint64(ctx.Arena.BytesUsed())), elapsed.Round(time.Microsecond))
	return 0
}

// unavailableResolver backs the Loader this CLI constructs: resolving a
// `use` target means loading and analysing another file from disk, which
// needs the same out-of-scope frontend as the entry file. Until a real
// frontend is linked in, any cross-module `use` fails with a clear reason
// instead of silently producing an empty module.
func unavailableResolver(path string) (*module.Module, error) {
	return nil, fmt.Errorf("module loading unavailable: no frontend linked in for %s", path)
}

func reportDiagnostic(stderr *os.File, color bool, e error) {
	if color {
		fmt.Fprintf(stderr, "\x1b[31m%s\x1b[0m\n", e.Error())
		return
	}
	fmt.Fprintln(stderr, e.Error())
}

func reportInternal(stderr *os.File, color bool, err error) {
	msg := fmt.Sprintf("Error: %s", err)
	if color {
		fmt.Fprintf(stderr, "\x1b[31m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(stderr, msg)
}
