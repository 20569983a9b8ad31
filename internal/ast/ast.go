// Package ast defines the AST shape the semantic core consumes, per
// spec.md §6.1. Building this tree (lexing, parsing) is out of scope; this
// package is the data contract a parser would have to satisfy.
//
// Unlike the teacher's internal/ast, nodes here are immutable once built:
// the resolver and inferencer do not write back into node fields. DESIGN
// NOTES flags the teacher's in-place identifier rewriting ("resolver
// overwrites identifier bytes in place") as a pattern needing redesign;
// the replacement is a parallel side table (internal/sema's Resolution
// map) keyed by node identity. Traversal in internal/sema is done with
// plain type switches rather than the teacher's Visitor/Accept
// double-dispatch: the teacher itself falls back to type switches once it
// gets below the top-level walker (e.g. inferRangeExpression), and with
// four independent passes over the same small node set a type switch per
// pass avoids keeping four parallel Visitor implementations exhaustive in
// lockstep.
package ast

import "github.com/lain-lang/lainc/internal/token"

// Node is the base interface for every AST node.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a Node that appears in a statement position (spec.md §6.1).
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in an expression position (spec.md §6.1).
type Expression interface {
	Node
	expressionNode()
}

// Declaration is a top-level declaration (spec.md §3.3).
type Declaration interface {
	Node
	declarationNode()
}

// Identifier is the raw-name leaf referenced throughout spec.md §3.1/§3.2.
// Two Identifiers are equal when their text is byte-wise equal; Go's string
// equality already gives us that without a manual byte-range comparison.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) expressionNode()       {}

// Module is the root node for one compilation unit: a flat list of
// top-level declarations in source order, matching §4.8's "for each
// top-level declaration in module order".
type Module struct {
	Path  string // dotted module path, e.g. "collections.list"
	Decls []Declaration
}

func (m *Module) TokenLiteral() string  { return "module" }
func (m *Module) GetToken() token.Token { return token.Token{} }
