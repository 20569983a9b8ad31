package sema

import (
	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/ranges"
	"github.com/lain-lang/lainc/internal/types"
)

// PropagateFunction implements spec.md §4.5 end to end for one function:
// seed `in` annotations, apply parameter constraints and pre-conditions,
// then walk the body, checking post-conditions/return-constraints at every
// `return` and invoking the bounds checker (§4.6) at every index
// expression. Call this only after resolveBlock/inferBlock have run,
// since it reads ctx.TypeOf for index targets.
func PropagateFunction(ctx *SemaContext, fn *ast.FuncDecl) {
	rt := ctx.Ranges
	for _, p := range fn.Params {
		if p.Name == "" {
			continue
		}
		if p.InAnnotation != "" {
			rt.Set(p.Name, inAnnotationRange(fn, p.InAnnotation))
		}
		for _, c := range p.Constraints {
			applyConstraintAsAssumption(rt, c, false)
		}
	}
	for _, c := range fn.Pre {
		applyConstraintAsAssumption(rt, c, false)
	}
	propagateBlock(ctx, fn.Body)
}

// inAnnotationRange implements spec.md §4.5's "Parameter with `in <arr>`
// annotation" rule: [0, fixed-length − 1] if the referenced array parameter
// has a known fixed length, else [0, +∞).
func inAnnotationRange(fn *ast.FuncDecl, arrName string) ranges.Range {
	for _, p := range fn.Params {
		if p.Name == arrName {
			unwrapped := types.Unwrap(p.Type)
			if unwrapped != nil && unwrapped.Tag == types.Array && unwrapped.Length != types.DynamicLength {
				return ranges.Interval(0, unwrapped.Length-1)
			}
		}
	}
	return ranges.AtLeast(0)
}

func propagateBlock(ctx *SemaContext, stmts []ast.Statement) {
	for _, s := range stmts {
		propagateStmt(ctx, s)
	}
}

// propagateStmt implements spec.md §4.5's per-statement rules.
func propagateStmt(ctx *SemaContext, stmt ast.Statement) {
	rt := ctx.Ranges
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		propagateExpr(ctx, s.Value)
		rt.Set(s.Name, rangeOfExpr(rt, s.Value))
		addSymmetricIfSimple(rt, s.Name, s.Value)

	case *ast.AssignStmt:
		propagateExpr(ctx, s.Value)
		if id, ok := s.Target.(*ast.Identifier); ok {
			rt.Set(id.Name, rangeOfExpr(rt, s.Value))
			addSymmetricIfSimple(rt, id.Name, s.Value)
		} else {
			propagateExpr(ctx, s.Target)
		}

	case *ast.ExprStmt:
		propagateExpr(ctx, s.X)

	case *ast.IfStmt:
		propagateExpr(ctx, s.Cond)
		snap := rt.Snapshot()
		applyConstraintAsAssumption(rt, s.Cond, false)
		propagateBlock(ctx, s.Then)
		rt.Restore(snap)
		applyConstraintAsAssumption(rt, s.Cond, true)
		propagateBlock(ctx, s.Else)
		rt.Restore(snap) // merge is coarse: state after the if is the pre-state (spec.md §4.5)

	case *ast.ForStmt:
		propagateExpr(ctx, s.Start)
		propagateExpr(ctx, s.End)
		startR, endR := rangeOfExpr(rt, s.Start), rangeOfExpr(rt, s.End)
		if startR.Known && endR.Known {
			rt.Set(s.Index, ranges.Interval(startR.Min, endR.Max-1))
		} else {
			rt.Set(s.Index, ranges.Unknown())
		}
		assigned := collectAssignedNames(s.Body)
		if ctx.Options.DisableWidening {
			assigned = nil
		}
		rt.WidenAssigned(assigned)
		propagateBlock(ctx, s.Body)
		rt.WidenAssigned(assigned)

	case *ast.WhileStmt:
		propagateExpr(ctx, s.Cond)
		assigned := collectAssignedNames(s.Body)
		if ctx.Options.DisableWidening {
			assigned = nil
		}
		rt.WidenAssigned(assigned)
		propagateBlock(ctx, s.Body)
		rt.WidenAssigned(assigned)

	case *ast.ContinueStmt, *ast.BreakStmt:
		// no ranges affected

	case *ast.ReturnStmt:
		if s.Value != nil {
			propagateExpr(ctx, s.Value)
			rt.Set(resultVarName, rangeOfExpr(rt, s.Value))
		}
		checkPostconditions(ctx, s)

	case *ast.MatchStmt:
		propagateExpr(ctx, s.Scrutinee)
		snap := rt.Snapshot()
		for _, arm := range s.Arms {
			propagateBlock(ctx, arm.Body)
			rt.Restore(snap)
		}

	case *ast.UseStmt:
		// no range to propagate for a module alias

	case *ast.UnsafeStmt:
		ctx.InUnsafe++
		propagateBlock(ctx, s.Body)
		ctx.InUnsafe--

	case *ast.ComptimeDeclStmt:
		propagateExpr(ctx, s.Value)
		rt.Set(s.Name, rangeOfExpr(rt, s.Value))
	}
}

// checkPostconditions implements spec.md §4.5's return rule: "for each
// post-condition, attempt to prove it; if it is definitely false, fatal."
func checkPostconditions(ctx *SemaContext, at ast.Statement) {
	if ctx.CurrentFunc == nil {
		return
	}
	for _, c := range ctx.CurrentFunc.Post {
		if evalConstraint(ctx.Ranges, c) == DefinitelyFalse {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrContractViolation, at.GetToken(),
				"post-condition provably violated"))
		}
	}
	for _, c := range ctx.CurrentFunc.ReturnConstraints {
		if evalConstraint(ctx.Ranges, c) == DefinitelyFalse {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrContractViolation, at.GetToken(),
				"return constraint provably violated"))
		}
	}
}

// propagateExpr walks an expression for range purposes, invoking the
// bounds checker (§4.6) at every index expression.
func propagateExpr(ctx *SemaContext, e ast.Expression) {
	if e == nil {
		return
	}
	switch x := e.(type) {
	case *ast.MemberExpr:
		propagateExpr(ctx, x.Target)

	case *ast.CallExpr:
		propagateExpr(ctx, x.Callee)
		for _, a := range x.Args {
			propagateExpr(ctx, a)
		}

	case *ast.IndexExpr:
		propagateExpr(ctx, x.Target)
		propagateExpr(ctx, x.Index)
		checkBounds(ctx, x)

	case *ast.RangeExpr:
		propagateExpr(ctx, x.Start)
		propagateExpr(ctx, x.End)

	case *ast.BinaryExpr:
		propagateExpr(ctx, x.Left)
		propagateExpr(ctx, x.Right)

	case *ast.UnaryExpr:
		propagateExpr(ctx, x.X)

	case *ast.MoveExpr:
		propagateExpr(ctx, x.X)

	case *ast.MutExpr:
		propagateExpr(ctx, x.X)
	}
}

// addSymmetricIfSimple implements spec.md §4.5's "for simple linear forms
// x = y, x = y + c, x = c + y, x = y − c also add the symmetric
// constraints" rule.
func addSymmetricIfSimple(rt *ranges.Table, lhs string, value ast.Expression) {
	switch v := value.(type) {
	case *ast.Identifier:
		rt.AddSymmetricAssignConstraints(lhs, v.Name, 0)

	case *ast.BinaryExpr:
		if id, ok := v.Left.(*ast.Identifier); ok {
			if lit, ok2 := v.Right.(*ast.IntLiteral); ok2 {
				switch v.Op {
				case "+":
					rt.AddSymmetricAssignConstraints(lhs, id.Name, lit.Value)
				case "-":
					rt.AddSymmetricAssignConstraints(lhs, id.Name, -lit.Value)
				}
			}
			return
		}
		if lit, ok := v.Left.(*ast.IntLiteral); ok && v.Op == "+" {
			if id, ok2 := v.Right.(*ast.Identifier); ok2 {
				rt.AddSymmetricAssignConstraints(lhs, id.Name, lit.Value)
			}
		}
	}
}

// collectAssignedNames implements spec.md §4.5's loop-widening target set:
// "widen every variable assigned anywhere inside the body", gathered
// recursively through nested blocks.
func collectAssignedNames(stmts []ast.Statement) map[string]bool {
	names := make(map[string]bool)
	var walk func([]ast.Statement)
	walk = func(stmts []ast.Statement) {
		for _, stmt := range stmts {
			switch s := stmt.(type) {
			case *ast.AssignStmt:
				if id, ok := s.Target.(*ast.Identifier); ok {
					names[id.Name] = true
				}
			case *ast.VarDeclStmt:
				names[s.Name] = true
			case *ast.IfStmt:
				walk(s.Then)
				walk(s.Else)
			case *ast.ForStmt:
				names[s.Index] = true
				walk(s.Body)
			case *ast.WhileStmt:
				walk(s.Body)
			case *ast.MatchStmt:
				for _, arm := range s.Arms {
					walk(arm.Body)
				}
			case *ast.UnsafeStmt:
				walk(s.Body)
			}
		}
	}
	walk(stmts)
	return names
}
