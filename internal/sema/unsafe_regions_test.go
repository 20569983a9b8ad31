package sema

import (
	"testing"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/types"
)

// unsafe is supposed to suppress categories 5 (aliasing/borrow) and 6
// (bounds), never category 4 (linearity) or 7 (contracts) — spec.md §7.
// Both suppressions depend on ctx.InUnsafe being tracked independently by
// every pass that consults it, since the Module Driver (spec.md §4.8) runs
// resolution, range propagation, and linearity/borrow checking as three
// separate full traversals of the same body (driver.go's AnalyzeFunction):
// a pass can't see InUnsafe state left over from an earlier pass.

func TestUnsafeSuppressesBoundsInRangePropagation(t *testing.T) {
	fn := &ast.FuncDecl{
		Tok:  tok(1),
		Name: "f",
		Kind: ast.Pure,
		Params: []*ast.Param{
			{Name: "buf", Type: types.NewArray(types.U8, 4)},
		},
		Body: []ast.Statement{
			&ast.UnsafeStmt{Tok: tok(1), Body: []ast.Statement{
				&ast.ExprStmt{Tok: tok(1), X: &ast.IndexExpr{
					Tok: tok(1), Target: ident("buf"), Index: intLit(100),
				}},
			}},
		},
	}
	expectNoError(t, fn)
}

func TestUnsafeSuppressesAliasingInLinearityPass(t *testing.T) {
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
			&ast.UnsafeStmt{Tok: tok(2), Body: []ast.Statement{
				&ast.ExprStmt{Tok: tok(2), X: &ast.CallExpr{
					Tok:    tok(2),
					Callee: ident("g"),
					Args:   []ast.Expression{ident("y"), ident("y")},
				}},
			}},
		},
	}
	expectNoError(t, g, f)
}

// TestReferenceOutlivesOwnerRegion exercises the Region Tree (§3.5, §3.7)
// directly: a linear local declared inside an `if` arm keeps the region it
// was declared in (internal/regions.Tree.Enter'd for that arm), so a
// mutable borrow of it taken after the `if` has exited back to the
// function's root region sees an owner region that is no longer an
// ancestor of the borrow region, and must be rejected.
func TestReferenceOutlivesOwnerRegion(t *testing.T) {
	fn := &ast.FuncDecl{
		Tok:  tok(1),
		Name: "f",
		Kind: ast.Procedure,
		Body: []ast.Statement{
			&ast.IfStmt{
				Tok:  tok(1),
				Cond: intLit(1),
				Then: []ast.Statement{
					&ast.VarDeclStmt{
						Tok:   tok(1),
						Name:  "y",
						Type:  types.NewMove(types.NewSimple("Foo")),
						Value: intLit(0),
					},
				},
			},
			&ast.ExprStmt{Tok: tok(2), X: &ast.MutExpr{Tok: tok(2), X: ident("y")}},
		},
	}
	expectSemaError(t, diagnostics.ErrReferenceOutlives, fn)
}
