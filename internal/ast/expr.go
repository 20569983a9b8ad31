package ast

import "github.com/lain-lang/lainc/internal/token"

// IntLiteral is an integer literal expression (spec.md §4.3: "Literal
// integer → built-in int").
type IntLiteral struct {
	Tok   token.Token
	Value int64
}

func (e *IntLiteral) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *IntLiteral) GetToken() token.Token { return e.Tok }
func (e *IntLiteral) expressionNode()       {}

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Tok   token.Token
	Value string
}

func (e *StringLiteral) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *StringLiteral) GetToken() token.Token { return e.Tok }
func (e *StringLiteral) expressionNode()       {}

// CharLiteral is a char literal expression.
type CharLiteral struct {
	Tok   token.Token
	Value byte
}

func (e *CharLiteral) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *CharLiteral) GetToken() token.Token { return e.Tok }
func (e *CharLiteral) expressionNode()       {}

// MemberExpr is `target.field` (spec.md §4.3: array/slice `.len`/`.data`,
// or a struct field lookup).
type MemberExpr struct {
	Tok    token.Token
	Target Expression
	Field  string
}

func (e *MemberExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *MemberExpr) GetToken() token.Token { return e.Tok }
func (e *MemberExpr) expressionNode()       {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Tok    token.Token
	Callee Expression
	Args   []Expression
}

func (e *CallExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *CallExpr) GetToken() token.Token { return e.Tok }
func (e *CallExpr) expressionNode()       {}

// IndexExpr is `target[index]`; Index may itself be a RangeExpr, in which
// case the result is a dynamic-length slice (spec.md §4.3).
type IndexExpr struct {
	Tok    token.Token
	Target Expression
	Index  Expression
}

func (e *IndexExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *IndexExpr) GetToken() token.Token { return e.Tok }
func (e *IndexExpr) expressionNode()       {}

// RangeExpr is `start..end` or `start..=end` (Inclusive).
type RangeExpr struct {
	Tok       token.Token
	Start     Expression
	End       Expression
	Inclusive bool
}

func (e *RangeExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *RangeExpr) GetToken() token.Token { return e.Tok }
func (e *RangeExpr) expressionNode()       {}

// BinaryExpr is any two-operand operator expression, arithmetic or
// boolean; spec.md §4.3 treats all of them as conservatively typed `int`.
type BinaryExpr struct {
	Tok   token.Token
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *BinaryExpr) GetToken() token.Token { return e.Tok }
func (e *BinaryExpr) expressionNode()       {}

// UnaryExpr is a single-operand prefix operator expression.
type UnaryExpr struct {
	Tok token.Token
	Op  string
	X   Expression
}

func (e *UnaryExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *UnaryExpr) GetToken() token.Token { return e.Tok }
func (e *UnaryExpr) expressionNode()       {}

// MoveExpr is the explicit `mov(e)` operator: consumes the root variable of
// e regardless of the enclosing call context (spec.md §4.7).
type MoveExpr struct {
	Tok token.Token
	X   Expression
}

func (e *MoveExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *MoveExpr) GetToken() token.Token { return e.Tok }
func (e *MoveExpr) expressionNode()       {}

// MutExpr is the explicit `mut x` operator used at call sites to request a
// mutable borrow of x (spec.md §4.7).
type MutExpr struct {
	Tok token.Token
	X   Expression
}

func (e *MutExpr) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *MutExpr) GetToken() token.Token { return e.Tok }
func (e *MutExpr) expressionNode()       {}
