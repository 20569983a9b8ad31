package sema

import (
	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/types"
)

// inferExpr implements spec.md §4.3, "applied bottom-up": it recurses into
// sub-expressions first, then derives this node's type and records it via
// ctx.SetType. Call this only after the resolver has run over the same
// expression, since Identifier/Call typing reads ctx.Resolved.
func inferExpr(ctx *SemaContext, e ast.Expression) *types.Type {
	if t := ctx.TypeOf(e); t != nil {
		return t
	}

	var t *types.Type
	switch x := e.(type) {
	case *ast.IntLiteral:
		t = types.Int

	case *ast.StringLiteral:
		t = types.StringLiteralType(x.Value)

	case *ast.CharLiteral:
		t = types.CharLiteralType()

	case *ast.Identifier:
		if r, ok := ctx.ResolutionOf(x); ok {
			t = r.Type
		}

	case *ast.MemberExpr:
		t = inferMember(ctx, x)

	case *ast.IndexExpr:
		t = inferIndex(ctx, x)

	case *ast.CallExpr:
		inferExpr(ctx, x.Callee)
		for _, arg := range x.Args {
			inferExpr(ctx, arg)
		}
		t = inferExpr(ctx, x.Callee)

	case *ast.RangeExpr:
		inferExpr(ctx, x.Start)
		inferExpr(ctx, x.End)
		t = types.Int

	case *ast.BinaryExpr:
		inferExpr(ctx, x.Left)
		inferExpr(ctx, x.Right)
		t = types.Int

	case *ast.UnaryExpr:
		inferExpr(ctx, x.X)
		t = types.Int

	case *ast.MoveExpr:
		t = types.NewMove(inferExpr(ctx, x.X))

	case *ast.MutExpr:
		t = types.NewMut(inferExpr(ctx, x.X))
	}

	if t != nil {
		ctx.SetType(e, t)
	}
	return t
}

// inferMember implements spec.md §4.3's Member rule: ".len"/".data" on an
// array/slice target, otherwise a struct field lookup on the unwrapped
// target type.
func inferMember(ctx *SemaContext, m *ast.MemberExpr) *types.Type {
	targetType := inferExpr(ctx, m.Target)
	unwrapped := types.Unwrap(targetType)
	if unwrapped == nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrMemberOnNonStruct, m.GetToken(),
			"member access on unresolved type"))
		return nil
	}

	if unwrapped.Tag == types.Array || unwrapped.Tag == types.Slice {
		switch m.Field {
		case "len":
			return types.Int
		case "data":
			return types.NewPointer(unwrapped.Elem)
		}
	}

	if unwrapped.Tag != types.Simple {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrMemberOnNonStruct, m.GetToken(),
			"member access on non-struct type %q", unwrapped))
		return nil
	}

	decl, ok := ctx.Structs[unwrapped.Name]
	if !ok {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrMemberOnNonStruct, m.GetToken(),
			"%q is not a struct", unwrapped.Name))
		return nil
	}
	for _, f := range decl.Fields {
		if f.Name == m.Field {
			return f.Type
		}
	}
	ctx.Sink.Add(diagnostics.New(diagnostics.ErrUnknownField, m.GetToken(),
		"struct %q has no field %q", unwrapped.Name, m.Field))
	return nil
}

// inferIndex implements spec.md §4.3's Index rule: "Index with a Range
// index → new dynamic-length slice of the element type; plain index →
// element type."
func inferIndex(ctx *SemaContext, ix *ast.IndexExpr) *types.Type {
	targetType := inferExpr(ctx, ix.Target)
	indexType := inferExpr(ctx, ix.Index)
	_ = indexType

	unwrapped := types.Unwrap(targetType)
	if unwrapped == nil || (unwrapped.Tag != types.Array && unwrapped.Tag != types.Slice) {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrNonIndexable, ix.GetToken(),
			"cannot index non-array/slice type %q", unwrapped))
		return nil
	}

	if _, isRange := ix.Index.(*ast.RangeExpr); isRange {
		return types.NewSlice(unwrapped.Elem, nil, types.DynamicLength, false)
	}
	return unwrapped.Elem
}
