package sema

import (
	"strings"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/types"
)

// checkExhaustiveness implements spec.md §4.4. It is called inline from the
// resolver once a MatchStmt's scrutinee has been resolved and typed (spec.md
// §5: "exhaustiveness is performed inline during resolve").
func checkExhaustiveness(ctx *SemaContext, m *ast.MatchStmt, scrutineeType *types.Type) {
	for _, arm := range m.Arms {
		if arm.IsElse {
			return // rule 1: any else arm makes the match exhaustive
		}
	}

	unwrapped := types.Unwrap(scrutineeType)
	if unwrapped != nil && unwrapped.Tag == types.Simple && unwrapped.Name == "bool" {
		checkBoolExhaustive(ctx, m)
		return
	}

	if unwrapped != nil && unwrapped.Tag == types.Simple {
		if enum, ok := ctx.Enums[unwrapped.Name]; ok {
			checkEnumExhaustive(ctx, m, enum)
			return
		}
	}

	ctx.Sink.Add(diagnostics.New(diagnostics.ErrNonExhaustiveMatch, m.GetToken(),
		"non-exhaustive match"))
}

func checkBoolExhaustive(ctx *SemaContext, m *ast.MatchStmt) {
	var sawTrue, sawFalse bool
	for _, arm := range m.Arms {
		if id, ok := arm.Pattern.(*ast.Identifier); ok {
			switch id.Name {
			case "true":
				sawTrue = true
			case "false":
				sawFalse = true
			}
		}
	}
	if !sawTrue || !sawFalse {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrNonExhaustiveMatch, m.GetToken(),
			"non-exhaustive match"))
	}
}

func checkEnumExhaustive(ctx *SemaContext, m *ast.MatchStmt, enum *ast.EnumDecl) {
	covered := make(map[string]bool, len(enum.Variants))
	for _, arm := range m.Arms {
		name := patternVariantName(arm.Pattern)
		if name == "" {
			continue
		}
		for _, v := range enum.Variants {
			if variantMatches(name, v.Name) {
				covered[v.Name] = true
			}
		}
	}
	for _, v := range enum.Variants {
		if !covered[v.Name] {
			ctx.Sink.Add(diagnostics.New(diagnostics.ErrNonExhaustiveMatch, m.GetToken(),
				"non-exhaustive match: variant %q not covered", v.Name))
			return
		}
	}
}

// patternVariantName extracts the identifier naming a variant from an arm's
// pattern expression: either the pattern's identifier, or the callee of a
// constructor pattern (spec.md §4.4: "Pattern matches variant if the
// pattern's identifier (or the callee of a constructor pattern) equals the
// variant's raw name").
func patternVariantName(p ast.Expression) string {
	switch x := p.(type) {
	case *ast.Identifier:
		return x.Name
	case *ast.CallExpr:
		if id, ok := x.Callee.(*ast.Identifier); ok {
			return id.Name
		}
	}
	return ""
}

// variantMatches implements spec.md §4.4's match rule: exact match, or the
// pattern name is a mangled identifier ending in `_Variant`.
func variantMatches(patternName, variantName string) bool {
	if patternName == variantName {
		return true
	}
	return strings.HasSuffix(patternName, "_"+variantName)
}
