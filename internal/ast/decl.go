package ast

import (
	"github.com/lain-lang/lainc/internal/token"
	"github.com/lain-lang/lainc/internal/types"
)

// FuncKind distinguishes the four callable declaration kinds of spec.md
// §3.3: Function (pure), Procedure (effectful), ExternFunction,
// ExternProcedure. They share one struct (FuncDecl) because every field
// besides the kind and the (possibly absent) body is identical — the
// original C source does the same with one DeclFunction plus an is_extern
// flag; lain additionally distinguishes purity, so the bool becomes this
// small enum.
type FuncKind int

const (
	Pure FuncKind = iota
	Procedure
	ExternFunction
	ExternProcedure
)

func (k FuncKind) IsExtern() bool {
	return k == ExternFunction || k == ExternProcedure
}

func (k FuncKind) IsProcedure() bool {
	return k == Procedure || k == ExternProcedure
}

// DestructurePattern is a parameter pattern that extracts named fields out
// of a struct argument instead of binding the whole value to one name
// (spec.md §3.3, §4.8 step 2).
type DestructurePattern struct {
	Token  token.Token
	Fields []string
}

// Param is one entry of a function's parameter list. Either Name or
// Pattern is set, never both.
type Param struct {
	Token   token.Token
	Name    string
	Type    *types.Type
	Pattern *DestructurePattern

	// InAnnotation names the array/slice variable this parameter indexes
	// into (spec.md §4.5: "Parameter with `in <arr>` annotation"), e.g.
	// `func f(i int in buf, buf u8[16])`.
	InAnnotation string

	// Constraints are boolean expressions applied to this parameter on
	// function entry (spec.md §4.5: "Parameter constraint expressions").
	Constraints []Expression
}

// FuncDecl is a Function/Procedure/ExternFunction/ExternProcedure
// declaration (spec.md §3.3): "name, parameter list (possibly destructuring
// patterns), return type, body (statements), and optional pre-condition /
// post-condition / return-constraint expression lists."
type FuncDecl struct {
	Tok        token.Token
	Name       string
	Kind       FuncKind
	Params     []*Param
	ReturnType *types.Type
	Body       []Statement

	Pre               []Expression
	Post              []Expression
	ReturnConstraints []Expression
}

func (f *FuncDecl) TokenLiteral() string  { return f.Tok.Lexeme }
func (f *FuncDecl) GetToken() token.Token { return f.Tok }
func (f *FuncDecl) declarationNode()      {}

// StructField is one field of a StructDecl or one associated-data field of
// an EnumVariant.
type StructField struct {
	Tok  token.Token
	Name string
	Type *types.Type

	// InField is the optional "in <identifier>" field annotation (spec.md
	// §4.2's reference to struct fields like `cursor u8 in text`).
	InField string
}

// StructDecl declares a product type.
type StructDecl struct {
	Tok    token.Token
	Name   string
	Fields []*StructField
}

func (s *StructDecl) TokenLiteral() string  { return s.Tok.Lexeme }
func (s *StructDecl) GetToken() token.Token { return s.Tok }
func (s *StructDecl) declarationNode()      {}

// EnumVariant is one constructor of an enum; Fields is non-empty only for
// algebraic-data-type variants that carry data (spec.md §3.3: "Enum
// (possibly with per-variant field lists — algebraic data type)").
type EnumVariant struct {
	Tok    token.Token
	Name   string
	Fields []*StructField
}

// EnumDecl declares a sum type.
type EnumDecl struct {
	Tok      token.Token
	Name     string
	Variants []*EnumVariant
}

func (e *EnumDecl) TokenLiteral() string  { return e.Tok.Lexeme }
func (e *EnumDecl) GetToken() token.Token { return e.Tok }
func (e *EnumDecl) declarationNode()      {}

// ImportDecl is a top-level `import` of a dotted module path. Module
// loading itself is a collaborator (spec.md §6.2); this node only records
// what was asked for.
type ImportDecl struct {
	Tok  token.Token
	Path string
}

func (i *ImportDecl) TokenLiteral() string  { return i.Tok.Lexeme }
func (i *ImportDecl) GetToken() token.Token { return i.Tok }
func (i *ImportDecl) declarationNode()      {}

// VariableDecl is a top-level global variable declaration.
type VariableDecl struct {
	Tok       token.Token
	Name      string
	Type      *types.Type
	Value     Expression
	IsMutable bool
}

func (v *VariableDecl) TokenLiteral() string  { return v.Tok.Lexeme }
func (v *VariableDecl) GetToken() token.Token { return v.Tok }
func (v *VariableDecl) declarationNode()      {}

// DestructureDecl is a top-level binding that extracts several names at
// once from a single struct-typed value (spec.md §3.3's "Destructure" top-
// level declaration kind).
type DestructureDecl struct {
	Tok    token.Token
	Names  []string
	Value  Expression
}

func (d *DestructureDecl) TokenLiteral() string  { return d.Tok.Lexeme }
func (d *DestructureDecl) GetToken() token.Token { return d.Tok }
func (d *DestructureDecl) declarationNode()      {}
