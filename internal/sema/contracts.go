package sema

import (
	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/ranges"
)

// resultVarName is the pseudo-variable bound to a return expression's range
// before post-conditions and return-constraints are checked (spec.md §4.5:
// "post-condition ... result >= 0").
const resultVarName = "result"

// Verdict is the outcome of attempting to prove a boolean constraint
// expression against a RangeTable — spec.md §4.5: "attempt to prove it; if
// it is definitely false, fatal. 'Possibly true' is accepted."
type Verdict int

const (
	Possible Verdict = iota
	DefinitelyTrue
	DefinitelyFalse
)

// rangeOfExpr computes the Range of an expression for constraint-checking
// purposes, per spec.md §4.5's "evaluate the RHS's range" rule reused here
// for constraint LHS/RHS operands: literal → singleton; identifier →
// lookup; add/sub → interval arithmetic; otherwise → unknown.
func rangeOfExpr(rt *ranges.Table, e ast.Expression) ranges.Range {
	switch x := e.(type) {
	case *ast.IntLiteral:
		return ranges.Single(x.Value)
	case *ast.Identifier:
		return rt.Get(x.Name)
	case *ast.BinaryExpr:
		left := rangeOfExpr(rt, x.Left)
		right := rangeOfExpr(rt, x.Right)
		switch x.Op {
		case "+":
			return ranges.Add(left, right)
		case "-":
			return ranges.Sub(left, right)
		}
	}
	return ranges.Unknown()
}

// evalConstraint implements spec.md §4.5's contract-proving rule for a
// boolean expression of the form `lhs OP rhs`, where OP is one of the usual
// comparison operators.
func evalConstraint(rt *ranges.Table, e ast.Expression) Verdict {
	bin, ok := e.(*ast.BinaryExpr)
	if !ok {
		return Possible
	}
	left := rangeOfExpr(rt, bin.Left)
	right := rangeOfExpr(rt, bin.Right)
	if !left.Known || !right.Known {
		return Possible
	}

	switch bin.Op {
	case ">=":
		if left.Min >= right.Max {
			return DefinitelyTrue
		}
		if left.Max < right.Min {
			return DefinitelyFalse
		}
	case ">":
		if left.Min > right.Max {
			return DefinitelyTrue
		}
		if left.Max <= right.Min {
			return DefinitelyFalse
		}
	case "<=":
		if left.Max <= right.Min {
			return DefinitelyTrue
		}
		if left.Min > right.Max {
			return DefinitelyFalse
		}
	case "<":
		if left.Max < right.Min {
			return DefinitelyTrue
		}
		if left.Min >= right.Max {
			return DefinitelyFalse
		}
	case "==":
		if left.Min == left.Max && right.Min == right.Max && left.Min == right.Min {
			return DefinitelyTrue
		}
		if left.Max < right.Min || right.Max < left.Min {
			return DefinitelyFalse
		}
	}
	return Possible
}

// applyConstraintAsAssumption narrows rt to assume e holds, used both for
// parameter constraints/pre-conditions at function entry and for if/else
// branch refinement (spec.md §4.5). Only the simple `var OP literal` and
// `var OP var` forms are narrowed; anything else is a no-op, which is
// always sound (it just loses precision).
func applyConstraintAsAssumption(rt *ranges.Table, e ast.Expression, negate bool) {
	bin, ok := e.(*ast.BinaryExpr)
	if !ok {
		return
	}
	id, ok := bin.Left.(*ast.Identifier)
	if !ok {
		return
	}
	bound := rangeOfExpr(rt, bin.Right)
	if !bound.Known {
		return
	}

	op := bin.Op
	if negate {
		op = negateOp(op)
	}

	cur := rt.Get(id.Name)
	refined := cur
	switch op {
	case ">=":
		refined = intersect(cur, ranges.Interval(bound.Min, maxInt64))
	case ">":
		refined = intersect(cur, ranges.Interval(bound.Min+1, maxInt64))
	case "<=":
		refined = intersect(cur, ranges.Interval(minInt64, bound.Max))
	case "<":
		refined = intersect(cur, ranges.Interval(minInt64, bound.Max-1))
	case "==":
		refined = intersect(cur, bound)
	}
	rt.Set(id.Name, refined)
}

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)

func negateOp(op string) string {
	switch op {
	case ">=":
		return "<"
	case ">":
		return "<="
	case "<=":
		return ">"
	case "<":
		return ">="
	case "==":
		return "!="
	default:
		return op
	}
}

// intersect returns the intersection of two known ranges. If one input is
// unknown it returns the other; if they don't overlap it returns a
// unchanged.
func intersect(a, b ranges.Range) ranges.Range {
	if !a.Known {
		return b
	}
	if !b.Known {
		return a
	}
	min := a.Min
	if b.Min > min {
		min = b.Min
	}
	max := a.Max
	if b.Max < max {
		max = b.Max
	}
	if min > max {
		return a // contradictory refinement: keep a rather than producing an empty range
	}
	return ranges.Interval(min, max)
}
