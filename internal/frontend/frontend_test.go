package frontend

import (
	"errors"
	"testing"

	"github.com/lain-lang/lainc/internal/ast"
)

func TestDefaultParseReturnsSentinel(t *testing.T) {
	_, err := Parse("whatever.lain", nil)
	if !errors.Is(err, ErrNoFrontend) {
		t.Fatalf("expected ErrNoFrontend, got %v", err)
	}
}

// TestParseIsPluggable confirms the seam a real lexer/parser would replace:
// swapping Parse must be enough to make the CLI succeed, with no other
// change required.
func TestParseIsPluggable(t *testing.T) {
	prev := Parse
	defer func() { Parse = prev }()

	want := &ast.Module{Path: "stub"}
	Parse = func(path string, src []byte) (*ast.Module, error) {
		return want, nil
	}

	got, err := Parse("anything.lain", []byte("source"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected stubbed module back, got %v", got)
	}
}
