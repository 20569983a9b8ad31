package sema

import (
	"testing"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/types"
)

// These seven tests cover spec.md §8's six scenarios: unconsumed linear,
// aliasing violation, enum exhaustiveness (plus a fully covered enum that
// must pass), static bounds success/failure, contract violation. Each
// hand-builds an ast.Module since
// no frontend is wired into this repo (cmd/lainc's frontend.Parse always
// returns ErrNoFrontend), so this is the only place any of these rules
// actually gets exercised end to end.

func TestAcceptanceUnconsumedLinearOnFallOff(t *testing.T) {
	fn := &ast.FuncDecl{
		Tok:  tok(1),
		Name: "f",
		Kind: ast.Pure,
		Params: []*ast.Param{
			{Name: "x", Type: types.NewMove(types.NewSimple("Foo"))},
		},
		Body: nil, // falls off the end without ever consuming x
	}
	expectSemaError(t, diagnostics.ErrUnconsumedOnReturn, fn)
}

func TestAcceptanceAliasingViolationOnDoubleMutableBorrow(t *testing.T) {
	g := &ast.FuncDecl{
		Tok:  tok(1),
		Name: "g",
		Kind: ast.Procedure,
		Params: []*ast.Param{
			{Name: "a", Type: types.NewMut(types.Int)},
			{Name: "b", Type: types.NewMut(types.Int)},
		},
	}
	f := &ast.FuncDecl{
		Tok:  tok(2),
		Name: "f",
		Kind: ast.Procedure,
		Params: []*ast.Param{
			{Name: "y", Type: types.Int},
		},
		Body: []ast.Statement{
			&ast.ExprStmt{Tok: tok(2), X: &ast.CallExpr{
				Tok:    tok(2),
				Callee: ident("g"),
				Args:   []ast.Expression{ident("y"), ident("y")},
			}},
		},
	}
	expectSemaError(t, diagnostics.ErrAliasViolation, g, f)
}

func TestAcceptanceEnumExhaustiveness(t *testing.T) {
	enum := &ast.EnumDecl{
		Tok:  tok(1),
		Name: "Color",
		Variants: []*ast.EnumVariant{
			{Tok: tok(1), Name: "Red"},
			{Tok: tok(1), Name: "Blue"},
		},
	}
	fn := &ast.FuncDecl{
		Tok:  tok(2),
		Name: "f",
		Kind: ast.Pure,
		Params: []*ast.Param{
			{Name: "c", Type: types.NewSimple("Color")},
		},
		Body: []ast.Statement{
			&ast.MatchStmt{
				Tok:       tok(2),
				Scrutinee: ident("c"),
				Arms: []*ast.MatchArm{
					{Tok: tok(2), Pattern: ident("Red"), Body: nil},
				},
			},
		},
	}
	expectSemaError(t, diagnostics.ErrNonExhaustiveMatch, enum, fn)
}

func TestAcceptanceEnumExhaustivenessCoveredIsClean(t *testing.T) {
	enum := &ast.EnumDecl{
		Tok:  tok(1),
		Name: "Color",
		Variants: []*ast.EnumVariant{
			{Tok: tok(1), Name: "Red"},
			{Tok: tok(1), Name: "Blue"},
		},
	}
	fn := &ast.FuncDecl{
		Tok:  tok(2),
		Name: "f",
		Kind: ast.Pure,
		Params: []*ast.Param{
			{Name: "c", Type: types.NewSimple("Color")},
		},
		Body: []ast.Statement{
			&ast.MatchStmt{
				Tok:       tok(2),
				Scrutinee: ident("c"),
				Arms: []*ast.MatchArm{
					{Tok: tok(2), Pattern: ident("Red"), Body: nil},
					{Tok: tok(2), Pattern: ident("Blue"), Body: nil},
				},
			},
		},
	}
	expectNoError(t, enum, fn)
}

func TestAcceptanceStaticBoundsFailure(t *testing.T) {
	fn := &ast.FuncDecl{
		Tok:  tok(1),
		Name: "f",
		Kind: ast.Pure,
		Params: []*ast.Param{
			{Name: "buf", Type: types.NewArray(types.U8, 4)},
		},
		Body: []ast.Statement{
			&ast.ExprStmt{Tok: tok(1), X: &ast.IndexExpr{
				Tok: tok(1), Target: ident("buf"), Index: intLit(10),
			}},
		},
	}
	expectSemaError(t, diagnostics.ErrIndexOOB, fn)
}

func TestAcceptanceStaticBoundsSuccess(t *testing.T) {
	fn := &ast.FuncDecl{
		Tok:  tok(1),
		Name: "f",
		Kind: ast.Pure,
		Params: []*ast.Param{
			{Name: "buf", Type: types.NewArray(types.U8, 4)},
		},
		Body: []ast.Statement{
			&ast.ExprStmt{Tok: tok(1), X: &ast.IndexExpr{
				Tok: tok(1), Target: ident("buf"), Index: intLit(2),
			}},
		},
	}
	expectNoError(t, fn)
}

func TestAcceptanceContractViolation(t *testing.T) {
	fn := &ast.FuncDecl{
		Tok:  tok(1),
		Name: "f",
		Kind: ast.Pure,
		ReturnConstraints: []ast.Expression{
			&ast.BinaryExpr{Tok: tok(1), Op: ">=", Left: ident("result"), Right: intLit(0)},
		},
		Body: []ast.Statement{
			&ast.ReturnStmt{Tok: tok(1), Value: intLit(-5)},
		},
	}
	expectSemaError(t, diagnostics.ErrContractViolation, fn)
}
