package sema

import (
	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/ranges"
	"github.com/lain-lang/lainc/internal/types"
)

// checkBounds implements spec.md §4.6, invoked by the range propagator
// (§4.5) at every indexing expression.
func checkBounds(ctx *SemaContext, ix *ast.IndexExpr) {
	if _, isRange := ix.Index.(*ast.RangeExpr); isRange {
		return // a range index produces a new dynamic-length slice, nothing to bound here
	}

	idxRange := rangeOfExpr(ctx.Ranges, ix.Index)
	length := indexableLength(types.Unwrap(ctx.TypeOf(ix.Target)))

	if ctx.InUnsafe > 0 {
		return // unsafe suppresses category 6 (spec.md §7)
	}

	if idxRange.Known && idxRange.Min < 0 {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrIndexNegative, ix.GetToken(), "index may be negative"))
		return
	}
	if length.Known && idxRange.Known && idxRange.Max >= length.Min {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrIndexOOB, ix.GetToken(), "index out of bounds"))
	}
}

// indexableLength implements spec.md §4.6's length-interval rule:
// "fixed-length array → singleton = array length; fixed-size slice →
// singleton = sentinel length; otherwise unknown."
func indexableLength(t *types.Type) ranges.Range {
	if t == nil {
		return ranges.Unknown()
	}
	switch t.Tag {
	case types.Array:
		if t.Length != types.DynamicLength {
			return ranges.Single(t.Length)
		}
	case types.Slice:
		if t.SliceLength != types.DynamicLength {
			return ranges.Single(t.SliceLength)
		}
	}
	return ranges.Unknown()
}
