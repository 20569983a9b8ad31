package sema

import (
	"testing"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/config"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/token"
)

// analyze runs the full Module Driver (spec.md §4.8) over decls, the same
// entry point cmd/lainc calls once a real frontend hands it a Module. No
// parser exists in this repo, so every test builds its ast.Module by hand.
func analyze(t *testing.T, decls ...ast.Declaration) *diagnostics.Sink {
	t.Helper()
	ctx := NewContext("test", nil, config.DefaultOptions())
	mod := &ast.Module{Path: "test", Decls: decls}
	AnalyzeModule(ctx, mod)
	return ctx.Sink
}

// expectSemaError asserts that analyzing decls records a diagnostic with
// the given code somewhere in the Sink.
func expectSemaError(t *testing.T, code diagnostics.Code, decls ...ast.Declaration) {
	t.Helper()
	sink := analyze(t, decls...)
	for _, e := range sink.Errors() {
		if e.Code == code {
			return
		}
	}
	t.Fatalf("expected diagnostic %s, got %v", code, sink.Errors())
}

// expectNoError asserts that analyzing decls records nothing at all.
func expectNoError(t *testing.T, decls ...ast.Declaration) {
	t.Helper()
	sink := analyze(t, decls...)
	if sink.Fatal() {
		t.Fatalf("expected no diagnostics, got %v", sink.Errors())
	}
}

// tok builds a valid synthetic token, since token.IsValid requires Line > 0.
func tok(line int) token.Token {
	return token.Token{Line: line, Column: 1}
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Token: tok(1), Name: name}
}

func intLit(v int64) *ast.IntLiteral {
	return &ast.IntLiteral{Tok: tok(1), Value: v}
}
