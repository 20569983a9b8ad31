package ast

// RootVariable returns the identifier at the head of a chain of field
// accesses, or the operand of an explicit `mov`, per spec.md §4.7: "the
// argument's root variable (the identifier at the head of a chain of field
// accesses, or the operand of an explicit mov)." Returns nil if the
// expression has no single root variable (e.g. a call result or a
// literal) — such expressions can't be moved or borrowed by name, so the
// linearity/borrow checker simply has nothing to track for them.
func RootVariable(e Expression) *Identifier {
	for {
		switch x := e.(type) {
		case *Identifier:
			return x
		case *MemberExpr:
			e = x.Target
		case *MoveExpr:
			e = x.X
		case *MutExpr:
			e = x.X
		default:
			return nil
		}
	}
}
