package sema

import (
	"strings"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/borrow"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/linearity"
	"github.com/lain-lang/lainc/internal/regions"
	"github.com/lain-lang/lainc/internal/types"
)

// CheckLinearity implements spec.md §4.7's per-function algorithm: seed
// Move-typed parameters into the Linearity Table at loop-depth 0, walk the
// body, and assert every linear entry is consumed when the function falls
// off its end (step 5; every `return` is checked inline by
// checkLinearityStmt, step 4's return rule).
func CheckLinearity(ctx *SemaContext, fn *ast.FuncDecl) {
	for _, p := range fn.Params {
		if p.Name == "" || !types.IsMove(p.Type) {
			continue
		}
		ctx.Linear.Insert(p.Name, 0, ctx.Regions.Current())
	}

	checkLinearityBlock(ctx, fn.Body)

	if unconsumed := ctx.Linear.Unconsumed(); len(unconsumed) > 0 {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrUnconsumedOnReturn, fn.GetToken(),
			"function %q falls off the end with unconsumed linear variable(s): %s",
			fn.Name, strings.Join(unconsumed, ", ")))
	}
}

// withRegion implements spec.md §3.7: "regions created on entry to a scoped
// construct (if/for/while/match arm/unsafe/block), dropped on exit." Every
// scoped body walked during linearity/borrow checking runs inside its own
// child region so owner and borrow regions can actually diverge, making
// regions.Outlives meaningful instead of trivially true.
func withRegion(ctx *SemaContext, f func()) {
	ctx.Regions.Enter()
	f()
	ctx.Regions.Exit()
}

// checkLinearityBlock walks stmts, clearing borrow entries after each one
// (spec.md §4.7 step 3: "borrows scope to the statement").
func checkLinearityBlock(ctx *SemaContext, stmts []ast.Statement) {
	for _, s := range stmts {
		checkLinearityStmt(ctx, s)
		ctx.Borrows.ClearStatement()
	}
}

func checkLinearityStmt(ctx *SemaContext, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		walkLinearExpr(ctx, s.Value)
		typ := s.Type
		if typ == nil {
			typ = ctx.TypeOf(s.Value)
		}
		if types.IsMove(typ) {
			ctx.Linear.Insert(s.Name, ctx.LoopDepth, ctx.Regions.Current())
		}

	case *ast.AssignStmt:
		walkLinearExpr(ctx, s.Value)
		if s.IsConstDecl {
			if id, ok := s.Target.(*ast.Identifier); ok && types.IsMove(ctx.TypeOf(s.Value)) {
				ctx.Linear.Insert(id.Name, ctx.LoopDepth, ctx.Regions.Current())
			}
		}

	case *ast.ExprStmt:
		walkLinearExpr(ctx, s.X)
		if types.IsMove(ctx.TypeOf(s.X)) {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrDiscardedLinear, s.GetToken(),
				"discarded linear value"))
		}

	case *ast.IfStmt:
		before := ctx.Linear
		thenTable := before.Snapshot()
		elseTable := before.Snapshot()
		ctx.Linear = thenTable
		withRegion(ctx, func() { checkLinearityBlock(ctx, s.Then) })
		ctx.Linear = elseTable
		withRegion(ctx, func() { checkLinearityBlock(ctx, s.Else) })
		if !linearity.Agrees(thenTable, elseTable) {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrBranchInconsistency, s.GetToken(),
				"branches leave a linear variable in different states"))
		}
		before.MergeFrom(thenTable)
		ctx.Linear = before

	case *ast.ForStmt:
		walkLinearExpr(ctx, s.Start)
		walkLinearExpr(ctx, s.End)
		ctx.LoopDepth++
		withRegion(ctx, func() { checkLinearityBlock(ctx, s.Body) })
		ctx.LoopDepth--

	case *ast.WhileStmt:
		walkLinearExpr(ctx, s.Cond)
		ctx.LoopDepth++
		withRegion(ctx, func() { checkLinearityBlock(ctx, s.Body) })
		ctx.LoopDepth--

	case *ast.ContinueStmt, *ast.BreakStmt:
		// nothing tracked

	case *ast.ReturnStmt:
		if s.Value != nil {
			walkLinearExpr(ctx, s.Value)
		}
		if unconsumed := ctx.Linear.Unconsumed(); len(unconsumed) > 0 {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrUnconsumedOnReturn, s.GetToken(),
				"return with unconsumed linear variable(s): %s", strings.Join(unconsumed, ", ")))
		}

	case *ast.MatchStmt:
		walkLinearExpr(ctx, s.Scrutinee)
		before := ctx.Linear
		var clones []*linearity.Table
		for _, arm := range s.Arms {
			clone := before.Snapshot()
			ctx.Linear = clone
			withRegion(ctx, func() { checkLinearityBlock(ctx, arm.Body) })
			clones = append(clones, clone)
		}
		for i := 1; i < len(clones); i++ {
			if !linearity.Agrees(clones[0], clones[i]) {
				ctx.Sink.Add(diagnostics.New(diagnostics.ErrBranchInconsistency, s.GetToken(),
					"match arms leave a linear variable in different states"))
				break
			}
		}
		if len(clones) > 0 {
			before.MergeFrom(clones[0])
		}
		ctx.Linear = before

	case *ast.UseStmt:
		// no linear state introduced

	case *ast.UnsafeStmt:
		ctx.InUnsafe++
		withRegion(ctx, func() { checkLinearityBlock(ctx, s.Body) }) // unsafe does not suppress linearity, spec.md §7
		ctx.InUnsafe--

	case *ast.ComptimeDeclStmt:
		walkLinearExpr(ctx, s.Value)
	}
}

// walkLinearExpr implements spec.md §4.7's expression walk: calls consume
// or borrow according to the callee's declared parameter ownership modes;
// explicit `mov`/`mut` do so unconditionally.
func walkLinearExpr(ctx *SemaContext, e ast.Expression) {
	if e == nil {
		return
	}
	switch x := e.(type) {
	case *ast.MemberExpr:
		walkLinearExpr(ctx, x.Target)

	case *ast.CallExpr:
		walkLinearCall(ctx, x)

	case *ast.IndexExpr:
		walkLinearExpr(ctx, x.Target)
		walkLinearExpr(ctx, x.Index)

	case *ast.RangeExpr:
		walkLinearExpr(ctx, x.Start)
		walkLinearExpr(ctx, x.End)

	case *ast.BinaryExpr:
		walkLinearExpr(ctx, x.Left)
		walkLinearExpr(ctx, x.Right)

	case *ast.UnaryExpr:
		walkLinearExpr(ctx, x.X)

	case *ast.MoveExpr:
		consumeRoot(ctx, x.X)

	case *ast.MutExpr:
		borrowRoot(ctx, x.X, borrow.Mutable)
	}
}

// walkLinearCall implements spec.md §4.7's call-site alignment: "For a
// call whose callee resolves to a known function declaration, align
// positional argument expressions with parameter types." Parameter
// ownership mode is read directly off each declared parameter's type tag:
// Move → consume, Mut → mutable borrow, Pointer → shared borrow; any other
// tag is a plain value parameter with nothing to track.
func walkLinearCall(ctx *SemaContext, call *ast.CallExpr) {
	walkLinearExpr(ctx, call.Callee)

	decl := calleeDecl(ctx, call.Callee)
	for i, arg := range call.Args {
		if decl != nil && i < len(decl.Params) {
			switch paramMode(decl.Params[i].Type) {
			case types.Move:
				consumeRoot(ctx, arg)
				continue
			case types.Mut:
				borrowRoot(ctx, arg, borrow.Mutable)
				continue
			case types.Pointer:
				borrowRoot(ctx, arg, borrow.Shared)
				continue
			}
		}
		walkLinearExpr(ctx, arg)
	}
}

func paramMode(t *types.Type) types.Tag {
	if t == nil {
		return types.Simple
	}
	return t.Tag
}

func calleeDecl(ctx *SemaContext, callee ast.Expression) *ast.FuncDecl {
	id, ok := callee.(*ast.Identifier)
	if !ok {
		return nil
	}
	r, ok := ctx.ResolutionOf(id)
	if !ok {
		return nil
	}
	fn, _ := r.Decl.(*ast.FuncDecl)
	return fn
}

// consumeRoot implements the Move/Owned half of spec.md §4.7's call-site
// rule and the explicit `mov(e)` operator: consume e's root variable,
// invalidating its borrows. Linearity violations (use-after-consume,
// cross-loop consume) are category 4 and are never suppressed by
// `unsafe` (spec.md §7); the move-while-borrowed check is category 5 and
// is suppressed inside `unsafe`.
func consumeRoot(ctx *SemaContext, target ast.Expression) {
	root := ast.RootVariable(target)
	if root == nil {
		walkLinearExpr(ctx, target)
		return
	}

	if entry := ctx.Linear.Get(root.Name); entry != nil {
		if entry.State == linearity.Consumed {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrUseAfterConsume, root.GetToken(),
				"%q already consumed", root.Name))
			return
		}
		if ctx.LoopDepth > entry.LoopDepth {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrConsumeAcrossLoop, root.GetToken(),
				"cannot consume %q, defined outside this loop, from inside it", root.Name))
			return
		}
	}

	if ctx.InUnsafe == 0 && ctx.Borrows.HasAny(root.Name) {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrMoveWhileBorrowed, root.GetToken(),
			"cannot move %q while borrowed", root.Name))
		return
	}

	ctx.Linear.Consume(root.Name)
	ctx.Borrows.Invalidate(root.Name)
}

// borrowRoot implements the Mutable/Shared half of spec.md §4.7's call-site
// rule and the explicit `mut x` operator. All of its checks are category 5
// (aliasing) and so are suppressed inside `unsafe`.
func borrowRoot(ctx *SemaContext, target ast.Expression, mode borrow.Mode) {
	root := ast.RootVariable(target)
	if root == nil {
		walkLinearExpr(ctx, target)
		return
	}

	if ctx.InUnsafe == 0 {
		if entry := ctx.Linear.Get(root.Name); entry != nil && entry.State == linearity.Consumed {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrUseAfterMove, root.GetToken(),
				"use of %q after it was moved", root.Name))
			return
		}
		switch mode {
		case borrow.Mutable:
			if !ctx.Borrows.CanBorrowMutable(root.Name) {
				ctx.Sink.Add(diagnostics.New(diagnostics.ErrAliasViolation, root.GetToken(),
					"cannot mutably borrow %q: already borrowed", root.Name))
				return
			}
		case borrow.Shared:
			if !ctx.Borrows.CanBorrowShared(root.Name) {
				ctx.Sink.Add(diagnostics.New(diagnostics.ErrAliasViolation, root.GetToken(),
					"cannot borrow %q: already mutably borrowed", root.Name))
				return
			}
		}
	}

	borrowRegion := ctx.Regions.Current()
	ownerRegion := borrowRegion
	if entry := ctx.Linear.Get(root.Name); entry != nil && entry.Region != nil {
		ownerRegion = entry.Region
	}

	if mode == borrow.Mutable {
		ctx.Borrows.AddMutable(root.Name, root.Name, borrowRegion, ownerRegion)
	} else {
		ctx.Borrows.AddShared(root.Name, root.Name, borrowRegion, ownerRegion)
	}

	if ctx.InUnsafe == 0 && !regions.Outlives(ownerRegion, borrowRegion) {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrReferenceOutlives, root.GetToken(),
			"borrow of %q may outlive its owner", root.Name))
	}
}
