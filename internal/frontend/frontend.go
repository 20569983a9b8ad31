// Package frontend is the seam between the CLI (cmd/lainc) and the parts of
// a compiler spec.md §1 puts out of scope: "lexing, parsing, AST
// construction ... treated as collaborators whose interfaces are defined in
// §6. The AST shape the semantic core consumes is specified in §6 as a data
// contract; its construction is not." Parse is that contract's
// producer side: something outside this module's scope is expected to
// supply a real implementation; the one here only reports why none is
// wired, so the CLI boundary (§6.4) still has a concrete function to call.
package frontend

import (
	"fmt"

	"github.com/lain-lang/lainc/internal/ast"
)

// ParseFunc turns source text at path into the ast.Module the semantic core
// consumes (spec.md §6.1). cmd/lainc calls through a package-level variable
// of this type rather than a hardcoded function so a real front end can be
// linked in without touching the CLI.
type ParseFunc func(path string, src []byte) (*ast.Module, error)

// Parse is the hook cmd/lainc calls to get from source text to an
// ast.Module. It defaults to ErrNoFrontend; a build that links in a real
// lexer/parser replaces it at init time.
var Parse ParseFunc = notImplemented

// ErrNoFrontend is returned by the default Parse implementation. It is a
// sentinel, not a bug report: this module's scope is semantic analysis
// only, so no lexer or parser ships here.
var ErrNoFrontend = fmt.Errorf("frontend: no lexer/parser linked into this build (out of scope per spec.md §1)")

func notImplemented(path string, src []byte) (*ast.Module, error) {
	return nil, ErrNoFrontend
}
