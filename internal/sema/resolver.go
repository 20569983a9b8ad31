package sema

import (
	"strings"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/symbols"
	"github.com/lain-lang/lainc/internal/types"
)

// resolveStmt implements spec.md §4.2's statement rules, recursing into
// every sub-statement and sub-expression.
func resolveStmt(ctx *SemaContext, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		resolveExpr(ctx, s.Value)
		typ := s.Type
		if typ == nil {
			typ = inferExpr(ctx, s.Value)
		}
		ctx.Symbols.InsertLocal(s.Name, s.Name, typ, s, true)

	case *ast.AssignStmt:
		resolveAssign(ctx, s)

	case *ast.ExprStmt:
		resolveExpr(ctx, s.X)

	case *ast.IfStmt:
		resolveExpr(ctx, s.Cond)
		snap := ctx.Symbols.SnapshotLocals()
		resolveBlock(ctx, s.Then)
		ctx.Symbols.RestoreLocals(snap)
		snap = ctx.Symbols.SnapshotLocals()
		resolveBlock(ctx, s.Else)
		ctx.Symbols.RestoreLocals(snap)

	case *ast.ForStmt:
		resolveExpr(ctx, s.Start)
		resolveExpr(ctx, s.End)
		snap := ctx.Symbols.SnapshotLocals()
		ctx.Symbols.InsertLocal(s.Index, s.Index, types.Int, s, false)
		ctx.LoopDepth++
		resolveBlock(ctx, s.Body)
		ctx.LoopDepth--
		ctx.Symbols.RestoreLocals(snap)

	case *ast.WhileStmt:
		resolveExpr(ctx, s.Cond)
		snap := ctx.Symbols.SnapshotLocals()
		ctx.LoopDepth++
		resolveBlock(ctx, s.Body)
		ctx.LoopDepth--
		ctx.Symbols.RestoreLocals(snap)

	case *ast.ContinueStmt, *ast.BreakStmt:
		// no bindings, nothing to resolve

	case *ast.ReturnStmt:
		if s.Value != nil {
			resolveExpr(ctx, s.Value)
		}

	case *ast.MatchStmt:
		resolveMatch(ctx, s)

	case *ast.UseStmt:
		resolveUse(ctx, s)

	case *ast.UnsafeStmt:
		ctx.InUnsafe++
		snap := ctx.Symbols.SnapshotLocals()
		resolveBlock(ctx, s.Body)
		ctx.Symbols.RestoreLocals(snap)
		ctx.InUnsafe--

	case *ast.ComptimeDeclStmt:
		resolveExpr(ctx, s.Value)
		typ := s.Type
		if typ == nil {
			typ = types.NewComptime(inferExpr(ctx, s.Value))
		}
		ctx.Symbols.InsertLocal(s.Name, s.Name, typ, s, false)
	}
}

func resolveBlock(ctx *SemaContext, stmts []ast.Statement) {
	for _, s := range stmts {
		resolveStmt(ctx, s)
	}
}

// resolveAssign implements spec.md §4.2: "bare assignment to a never-seen
// identifier is an implicit immutable declaration ... assignment to an
// existing immutable symbol is a fatal error. If the enclosing function is
// pure and the assignment target is a global variable, emit purity
// violation."
func resolveAssign(ctx *SemaContext, s *ast.AssignStmt) {
	resolveExpr(ctx, s.Value)

	id, ok := s.Target.(*ast.Identifier)
	if !ok {
		resolveExpr(ctx, s.Target)
		return
	}

	if sym, found := ctx.Symbols.Lookup(id.Name); found {
		if !sym.IsMutable {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrAssignToImmutable, id.GetToken(),
				"cannot assign to immutable %q", id.Name))
		}
		if sym.IsGlobal && ctx.InUnsafe == 0 && ctx.CurrentFunc != nil && ctx.CurrentFunc.Kind == ast.Pure {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrPurityViolation, id.GetToken(),
				"pure function %q may not assign global %q", ctx.CurrentFunc.Name, id.Name))
		}
		ctx.Resolve(id, Resolution{Mangled: sym.Mangled, Type: sym.Type, Decl: sym.Decl, IsGlobal: sym.IsGlobal})
		return
	}

	s.IsConstDecl = true
	valType := inferExpr(ctx, s.Value)
	ctx.Symbols.InsertLocal(id.Name, id.Name, valType, s, false)
	ctx.Resolve(id, Resolution{Mangled: id.Name, Type: valType, Decl: s, IsGlobal: false})
}

// resolveMatch implements the statement-level half of spec.md §4.4: resolve
// the scrutinee, infer its type inline, then run the exhaustiveness check
// (spec.md §5: "exhaustiveness is performed inline during resolve").
func resolveMatch(ctx *SemaContext, m *ast.MatchStmt) {
	resolveExpr(ctx, m.Scrutinee)
	scrutineeType := inferExpr(ctx, m.Scrutinee)

	for _, arm := range m.Arms {
		snap := ctx.Symbols.SnapshotLocals()
		if !arm.IsElse {
			bindPatternNames(ctx, arm.Pattern, scrutineeType)
		}
		resolveBlock(ctx, arm.Body)
		ctx.Symbols.RestoreLocals(snap)
	}

	checkExhaustiveness(ctx, m, scrutineeType)
}

// bindPatternNames binds a constructor pattern's argument identifiers to
// the matched enum variant's field types, best-effort — spec.md §4.2's
// general statement rule that match "insert[s] any bound names ...
// destructured fields" without detailing constructor-pattern binding
// further.
func bindPatternNames(ctx *SemaContext, pattern ast.Expression, scrutineeType *types.Type) {
	call, ok := pattern.(*ast.CallExpr)
	if !ok {
		return
	}
	calleeID, ok := call.Callee.(*ast.Identifier)
	if !ok {
		return
	}

	unwrapped := types.Unwrap(scrutineeType)
	var variant *ast.EnumVariant
	if unwrapped != nil && unwrapped.Tag == types.Simple {
		if enum, ok := ctx.Enums[unwrapped.Name]; ok {
			for _, v := range enum.Variants {
				if variantMatches(calleeID.Name, v.Name) {
					variant = v
					break
				}
			}
		}
	}

	for i, arg := range call.Args {
		argID, ok := arg.(*ast.Identifier)
		if !ok {
			continue
		}
		var fieldType *types.Type
		if variant != nil && i < len(variant.Fields) {
			fieldType = variant.Fields[i].Type
		}
		ctx.Symbols.InsertLocal(argID.Name, argID.Name, fieldType, call, false)
	}
}

// resolveUse implements spec.md §4.2: "`use path as alias` resolves the
// path, then inserts the alias as a local pointing at the same type."
func resolveUse(ctx *SemaContext, s *ast.UseStmt) {
	if ctx.Loader == nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrUndefinedIdentifier, s.GetToken(),
			"cannot resolve use path %q: no module loader configured", s.Path))
		return
	}

	modPath, symbolName := splitUsePath(s.Path)
	mod, err := ctx.Loader.Load(modPath)
	if err != nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrUndefinedIdentifier, s.GetToken(),
			"cannot resolve use path %q: %s", s.Path, err))
		return
	}

	sig, ok := mod.Lookup(symbolName)
	if !ok {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrUndefinedIdentifier, s.GetToken(),
			"module %q has no exported symbol %q", modPath, symbolName))
		return
	}

	ctx.Symbols.InsertLocal(s.Alias, s.Alias, sig.ReturnType, nil, false)
	ctx.UseAliasProcedures[s.Alias] = sig.IsProcedure
}

// splitUsePath splits a dotted `use` path into its module path (everything
// but the last segment) and the trailing exported symbol name.
func splitUsePath(path string) (modPath, symbolName string) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "", path
	}
	return path[:idx], path[idx+1:]
}

// resolveExpr implements spec.md §4.2's expression rules.
func resolveExpr(ctx *SemaContext, e ast.Expression) {
	if e == nil {
		return
	}
	switch x := e.(type) {
	case *ast.Identifier:
		resolveIdentifier(ctx, x)

	case *ast.MemberExpr:
		resolveExpr(ctx, x.Target)

	case *ast.CallExpr:
		resolveExpr(ctx, x.Callee)
		for _, arg := range x.Args {
			resolveExpr(ctx, arg)
		}
		checkCallPurity(ctx, x)

	case *ast.IndexExpr:
		resolveExpr(ctx, x.Target)
		resolveExpr(ctx, x.Index)

	case *ast.RangeExpr:
		resolveExpr(ctx, x.Start)
		resolveExpr(ctx, x.End)

	case *ast.BinaryExpr:
		resolveExpr(ctx, x.Left)
		resolveExpr(ctx, x.Right)

	case *ast.UnaryExpr:
		resolveExpr(ctx, x.X)

	case *ast.MoveExpr:
		resolveExpr(ctx, x.X)

	case *ast.MutExpr:
		resolveExpr(ctx, x.X)

		// IntLiteral, StringLiteral, CharLiteral: leaves, nothing to resolve.
	}
}

// resolveIdentifier implements spec.md §4.2's Identifier rule.
func resolveIdentifier(ctx *SemaContext, id *ast.Identifier) {
	if sym, ok := ctx.Symbols.Lookup(id.Name); ok {
		ctx.Resolve(id, Resolution{Mangled: sym.Mangled, Type: sym.Type, Decl: sym.Decl, IsGlobal: sym.IsGlobal})
		return
	}

	for enumName, enum := range ctx.Enums {
		for _, v := range enum.Variants {
			if v.Name == id.Name {
				mangled := ctx.Arena.AllocString(symbols.MangleGlobal(ctx.ModulePath, sanitizeDots(enumName)+"_"+v.Name))
				ctx.Resolve(id, Resolution{
					Mangled:  mangled,
					Type:     types.NewSimple(enumName),
					Decl:     enum,
					IsGlobal: true,
				})
				return
			}
		}
	}

	// Otherwise leave unresolved; this is the "downstream pass will error"
	// spec.md §4.2 describes — no other pass in this implementation gives
	// a more specific diagnosis of a plain undefined name, so the resolver
	// itself reports it rather than letting a nil type cascade.
	ctx.Sink.Add(diagnostics.New(diagnostics.ErrUndefinedIdentifier, id.GetToken(),
		"undefined identifier %q", id.Name))
}

func sanitizeDots(s string) string {
	return strings.ReplaceAll(s, ".", "_")
}

// checkCallPurity implements spec.md §4.2's Call rule: "If the enclosing
// function is declared pure (Function, not Procedure) and the callee
// resolves to a Procedure or ExternProcedure, emit 'purity violation'."
func checkCallPurity(ctx *SemaContext, call *ast.CallExpr) {
	if ctx.CurrentFunc == nil || ctx.CurrentFunc.Kind != ast.Pure || ctx.InUnsafe > 0 {
		return
	}
	id, ok := call.Callee.(*ast.Identifier)
	if !ok {
		return
	}
	r, ok := ctx.ResolutionOf(id)
	if !ok {
		return
	}
	if fn, ok := r.Decl.(*ast.FuncDecl); ok && fn.Kind.IsProcedure() {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrPurityViolation, call.GetToken(),
			"pure function %q may not call procedure %q", ctx.CurrentFunc.Name, fn.Name))
		return
	}
	if r.Decl == nil && ctx.UseAliasProcedures[id.Name] {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrPurityViolation, call.GetToken(),
			"pure function %q may not call procedure %q", ctx.CurrentFunc.Name, id.Name))
	}
}
