// Package sema implements spec.md §4.8's Module Driver in this file: the
// fixed per-function pass order every other file in this package
// implements one step of.
package sema

import (
	"fmt"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/symbols"
	"github.com/lain-lang/lainc/internal/types"
)

// AnalyzeModule implements spec.md §4.8's top level: register every
// declaration in module order, then run the full per-function pipeline on
// every Function/Procedure.
func AnalyzeModule(ctx *SemaContext, mod *ast.Module) {
	var funcs []*ast.FuncDecl
	for _, decl := range mod.Decls {
		switch d := decl.(type) {
		case *ast.ImportDecl:
			// already handled by the module loader; no-op here

		case *ast.FuncDecl:
			registerFunc(ctx, d)
			funcs = append(funcs, d)

		case *ast.StructDecl:
			registerStruct(ctx, d)

		case *ast.EnumDecl:
			registerEnum(ctx, d)

		case *ast.VariableDecl:
			registerVariable(ctx, d)

		case *ast.DestructureDecl:
			registerDestructure(ctx, d)
		}
	}

	for _, fn := range funcs {
		AnalyzeFunction(ctx, fn)
	}
}

func registerFunc(ctx *SemaContext, fn *ast.FuncDecl) {
	mangled := symbols.MangleGlobal(ctx.ModulePath, fn.Name)
	if err := ctx.Symbols.InsertGlobal(fn.Name, mangled, fn.ReturnType, fn, false); err != nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrRedeclarationConflict, fn.GetToken(), "%s", err))
	}
}

func registerStruct(ctx *SemaContext, s *ast.StructDecl) {
	ctx.Structs[s.Name] = s
	mangled := symbols.MangleGlobal(ctx.ModulePath, s.Name)
	if err := ctx.Symbols.InsertGlobal(s.Name, mangled, types.NewSimple(s.Name), s, false); err != nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrRedeclarationConflict, s.GetToken(), "%s", err))
	}
}

func registerEnum(ctx *SemaContext, e *ast.EnumDecl) {
	ctx.Enums[e.Name] = e
	mangled := symbols.MangleGlobal(ctx.ModulePath, e.Name)
	if err := ctx.Symbols.InsertGlobal(e.Name, mangled, types.NewSimple(e.Name), e, false); err != nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrRedeclarationConflict, e.GetToken(), "%s", err))
	}
}

func registerVariable(ctx *SemaContext, v *ast.VariableDecl) {
	typ := v.Type
	if typ == nil {
		resolveExpr(ctx, v.Value)
		typ = inferExpr(ctx, v.Value)
	}
	mangled := symbols.MangleGlobal(ctx.ModulePath, v.Name)
	if err := ctx.Symbols.InsertGlobal(v.Name, mangled, typ, v, v.IsMutable); err != nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrRedeclarationConflict, v.GetToken(), "%s", err))
	}
}

func registerDestructure(ctx *SemaContext, d *ast.DestructureDecl) {
	resolveExpr(ctx, d.Value)
	valType := inferExpr(ctx, d.Value)
	unwrapped := types.Unwrap(valType)
	var decl *ast.StructDecl
	if unwrapped != nil && unwrapped.Tag == types.Simple {
		decl = ctx.Structs[unwrapped.Name]
	}
	for _, name := range d.Names {
		var fieldType *types.Type
		if decl != nil {
			for _, f := range decl.Fields {
				if f.Name == name {
					fieldType = f.Type
				}
			}
		}
		mangled := symbols.MangleGlobal(ctx.ModulePath, name)
		if err := ctx.Symbols.InsertGlobal(name, mangled, fieldType, d, false); err != nil {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrRedeclarationConflict, d.GetToken(), "%s", err))
		}
	}
}

// AnalyzeFunction implements spec.md §4.8's numbered per-function steps.
func AnalyzeFunction(ctx *SemaContext, fn *ast.FuncDecl) {
	ctx.EnterFunction(fn) // step 1: clear locals (plus fresh range/borrow/linear/region state)
	insertParams(ctx, fn) // step 2

	resolveBlock(ctx, fn.Body) // step 5 (resolve)
	inferBlock(ctx, fn.Body)   // step 5 (infer)

	PropagateFunction(ctx, fn) // steps 3, 4, 6: in-annotations, constraints, pre-conditions, then range propagation

	CheckLinearity(ctx, fn) // step 7

	ctx.ExitFunction() // step 8
}

// insertParams implements spec.md §4.8 step 2: plain parameters bind by
// name; destructuring patterns insert a hidden `_param_N` symbol plus one
// symbol per extracted field, typed by looking up the field on the
// pattern's declared struct type when known.
func insertParams(ctx *SemaContext, fn *ast.FuncDecl) {
	for i, p := range fn.Params {
		if p.Pattern == nil {
			ctx.Symbols.InsertLocal(p.Name, p.Name, p.Type, p, false)
			continue
		}

		hidden := fmt.Sprintf("_param_%d", i)
		ctx.Symbols.InsertLocal(hidden, hidden, p.Type, p, false)

		var decl *ast.StructDecl
		if unwrapped := types.Unwrap(p.Type); unwrapped != nil && unwrapped.Tag == types.Simple {
			decl = ctx.Structs[unwrapped.Name]
		}
		for _, field := range p.Pattern.Fields {
			var fieldType *types.Type
			if decl != nil {
				for _, f := range decl.Fields {
					if f.Name == field {
						fieldType = f.Type
					}
				}
			}
			ctx.Symbols.InsertLocal(field, field, fieldType, p.Pattern, false)
		}
	}
}

// inferBlock runs the Type Inferencer (§4.3) over every expression in
// stmts that resolveBlock's inline inference doesn't already cover, so the
// linearity checker and bounds checker always find a recorded type via
// ctx.TypeOf. inferExpr is memoized, so re-visiting an already-typed node
// is a no-op.
func inferBlock(ctx *SemaContext, stmts []ast.Statement) {
	for _, s := range stmts {
		inferStmtTypes(ctx, s)
	}
}

func inferStmtTypes(ctx *SemaContext, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		inferExpr(ctx, s.Value)

	case *ast.AssignStmt:
		inferExpr(ctx, s.Value)
		inferExpr(ctx, s.Target)

	case *ast.ExprStmt:
		inferExpr(ctx, s.X)

	case *ast.IfStmt:
		inferExpr(ctx, s.Cond)
		inferBlock(ctx, s.Then)
		inferBlock(ctx, s.Else)

	case *ast.ForStmt:
		inferExpr(ctx, s.Start)
		inferExpr(ctx, s.End)
		inferBlock(ctx, s.Body)

	case *ast.WhileStmt:
		inferExpr(ctx, s.Cond)
		inferBlock(ctx, s.Body)

	case *ast.ReturnStmt:
		if s.Value != nil {
			inferExpr(ctx, s.Value)
		}

	case *ast.MatchStmt:
		inferExpr(ctx, s.Scrutinee)
		for _, arm := range s.Arms {
			inferBlock(ctx, arm.Body)
		}

	case *ast.UnsafeStmt:
		inferBlock(ctx, s.Body)

	case *ast.ComptimeDeclStmt:
		inferExpr(ctx, s.Value)
	}
}
