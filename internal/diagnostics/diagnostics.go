// Package diagnostics implements the error taxonomy of spec.md §7 as a
// result-returning sink rather than a process-exit. This is the redesign
// DESIGN NOTES calls for: fatal `exit(1)` diagnostics become values a driver
// can inspect, and a test can assert on, without killing the test binary.
package diagnostics

import (
	"fmt"

	"github.com/lain-lang/lainc/internal/token"
)

// Category is the category prefix spec.md §6.3 requires on every message.
type Category string

const (
	CategorySema           Category = "sema error"
	CategoryBorrow         Category = "borrow error"
	CategoryBounds         Category = "bounds error"
	CategoryInternal       Category = "Error"
)

// Code identifies the specific rule that fired, grouped by the taxonomy in
// spec.md §7. Codes are stable strings so tests can match on them instead of
// parsing message text.
type Code string

const (
	// 1. Resolution
	ErrUndefinedIdentifier     Code = "R001"
	ErrPurityViolation         Code = "R002"
	ErrAssignToImmutable       Code = "R003"
	ErrRedeclarationConflict   Code = "R004"

	// 2. Type
	ErrMemberOnNonStruct Code = "T001"
	ErrUnknownField      Code = "T002"
	ErrNonIndexable      Code = "T003"

	// 3. Exhaustiveness
	ErrNonExhaustiveMatch Code = "X001"

	// 4. Linearity
	ErrUseAfterConsume     Code = "L001"
	ErrUnconsumedOnReturn  Code = "L002"
	ErrConsumeAcrossLoop   Code = "L003"
	ErrBranchInconsistency Code = "L004"
	ErrDiscardedLinear     Code = "L005"

	// 5. Borrow
	ErrAliasViolation     Code = "B001"
	ErrReferenceOutlives  Code = "B002"
	ErrUseAfterMove       Code = "B003"
	ErrMoveWhileBorrowed  Code = "B004"

	// 6. Bounds
	ErrIndexNegative Code = "N001"
	ErrIndexOOB      Code = "N002"

	// 7. Contract
	ErrContractViolation Code = "C001"
)

// categoryOf maps a code to its wire category prefix.
func categoryOf(c Code) Category {
	switch c {
	case ErrAliasViolation, ErrReferenceOutlives, ErrUseAfterMove, ErrMoveWhileBorrowed:
		return CategoryBorrow
	case ErrIndexNegative, ErrIndexOOB:
		return CategoryBounds
	default:
		return CategorySema
	}
}

// Error is a single fatal diagnostic. It satisfies the standard error
// interface so it can be returned, wrapped, and compared like any other Go
// error, while still carrying the structured fields tests want to assert on.
type Error struct {
	Code    Code
	At      token.Token
	Message string
}

func (e *Error) Error() string {
	prefix := fmt.Sprintf("%s:", categoryOf(e.Code))
	if e.At.IsValid() {
		return fmt.Sprintf("%s %s: %s", prefix, e.At, e.Message)
	}
	return fmt.Sprintf("%s %s", prefix, e.Message)
}

// New builds a diagnostic with a printf-style message.
func New(code Code, at token.Token, format string, args ...interface{}) *Error {
	return &Error{Code: code, At: at, Message: fmt.Sprintf(format, args...)}
}

// Sink accumulates diagnostics for one compilation unit (or, in tests, one
// function body). It replaces the teacher's ad hoc `[]*DiagnosticError`
// return values with a small type that knows how to report "did anything go
// wrong" without the caller re-deriving it from a slice length every time.
type Sink struct {
	errors []*Error
}

// Add records a diagnostic. Per spec.md §5, every category is fatal, but the
// process itself never exits here: the analysis passes keep running after a
// diagnostic is recorded and collect every one they find, and the caller of
// the driver (cmd/lainc) checks Sink.Fatal() afterwards to fail the run.
func (s *Sink) Add(err *Error) {
	s.errors = append(s.errors, err)
}

// Fatal reports whether any diagnostic has been recorded.
func (s *Sink) Fatal() bool {
	return len(s.errors) > 0
}

// Errors returns the recorded diagnostics in emission order.
func (s *Sink) Errors() []*Error {
	return s.errors
}

// First returns the first recorded diagnostic, or nil.
func (s *Sink) First() *Error {
	if len(s.errors) == 0 {
		return nil
	}
	return s.errors[0]
}

// Merge appends another sink's diagnostics onto this one, preserving order.
func (s *Sink) Merge(other *Sink) {
	s.errors = append(s.errors, other.errors...)
}
