// Package sema is the Module Driver and its per-function passes: the Name
// Resolver (§4.2), Type Inferencer (§4.3), Exhaustiveness Checker (§4.4),
// Range Propagator (§4.5), Static Bounds Checker (§4.6), Linearity + Borrow
// Checker (§4.7), wired together by the Module Driver (§4.8).
package sema

import (
	"github.com/lain-lang/lainc/internal/arena"
	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/borrow"
	"github.com/lain-lang/lainc/internal/config"
	"github.com/lain-lang/lainc/internal/diagnostics"
	"github.com/lain-lang/lainc/internal/linearity"
	"github.com/lain-lang/lainc/internal/module"
	"github.com/lain-lang/lainc/internal/ranges"
	"github.com/lain-lang/lainc/internal/regions"
	"github.com/lain-lang/lainc/internal/symbols"
	"github.com/lain-lang/lainc/internal/types"
)

// Resolution is what the Name Resolver records about an identifier
// occurrence, replacing the teacher's in-place "rewrite the node's
// identifier bytes" pattern (DESIGN NOTES: "Shared-mutable AST nodes")
// with a side table keyed on node identity, per the immutable-AST design
// recorded in internal/ast.
type Resolution struct {
	Mangled  string
	Type     *types.Type
	Decl     ast.Node
	IsGlobal bool

	// IsProcedure mirrors ast.FuncKind.IsProcedure() for callables resolved
	// across a module boundary (via `use`), where Decl is nil because the
	// Module loader hands back signatures, not AST nodes, per spec.md §6.2.
	IsProcedure bool
}

// SemaContext is the explicit, threaded-by-reference replacement DESIGN
// NOTES calls for in place of "cross-component global statics (symbol
// tables, current return type, current module path, arenas)". One
// SemaContext is created per module and reused across every function in
// it; the per-function fields are reset between functions by the driver
// (spec.md §4.8 steps 1 and 8).
type SemaContext struct {
	ModulePath string
	Symbols    *symbols.Table
	Sink       *diagnostics.Sink
	Arena      *arena.Arena
	Loader     *module.Loader // optional: nil when the module has no `use` of another module
	Options    config.CompileOptions

	// Enum declarations in this module, indexed by name, for
	// exhaustiveness checking (§4.4) and enum-variant resolution (§4.2).
	Enums map[string]*ast.EnumDecl

	// Struct declarations in this module, indexed by name, for field
	// lookup (§4.3).
	Structs map[string]*ast.StructDecl

	// Per-function state. Populated fresh by EnterFunction, discarded by
	// ExitFunction (spec.md §3.7, §4.8).
	Ranges      *ranges.Table
	Borrows     *borrow.Table
	Linear      *linearity.Table
	Regions     *regions.Tree
	CurrentFunc *ast.FuncDecl
	LoopDepth   int
	InUnsafe    int // > 0 while walking inside an `unsafe { ... }` block

	// Side tables replacing in-place AST mutation (DESIGN NOTES), keyed on
	// node identity. Resolved covers every Identifier occurrence; Types
	// covers every Expression the inferencer assigns a type to.
	Resolved map[*ast.Identifier]Resolution
	Types    map[ast.Expression]*types.Type

	// UseAliasProcedures records, for every name bound by a `use ... as`
	// statement, whether the aliased symbol is a Procedure/ExternProcedure
	// — the purity checker's only way to see across a module boundary,
	// since cross-module Resolution.Decl is always nil (see Resolution).
	UseAliasProcedures map[string]bool
}

// NewContext returns a SemaContext for one module, ready for the driver to
// call EnterFunction per declared function.
func NewContext(modulePath string, loader *module.Loader, opts config.CompileOptions) *SemaContext {
	return &SemaContext{
		ModulePath: modulePath,
		Symbols:    symbols.New(modulePath),
		Sink:       &diagnostics.Sink{},
		Arena:      arena.New(),
		Loader:     loader,
		Options:    opts,
		Enums:      make(map[string]*ast.EnumDecl),
		Structs:    make(map[string]*ast.StructDecl),
		Resolved:           make(map[*ast.Identifier]Resolution),
		Types:              make(map[ast.Expression]*types.Type),
		UseAliasProcedures: make(map[string]bool),
	}
}

// EnterFunction resets every per-function table (spec.md §4.8 step 1, §3.7)
// and records fn as the function currently being analysed.
func (c *SemaContext) EnterFunction(fn *ast.FuncDecl) {
	c.Symbols.ClearLocals()
	c.Ranges = ranges.New()
	c.Borrows = borrow.New()
	c.Linear = linearity.New()
	c.Regions = regions.NewTree()
	c.CurrentFunc = fn
	c.LoopDepth = 0
	c.InUnsafe = 0
}

// ExitFunction discards per-function state (spec.md §4.8 step 8, §3.7).
func (c *SemaContext) ExitFunction() {
	c.Symbols.ClearLocals()
	c.Ranges = nil
	c.Borrows = nil
	c.Linear = nil
	c.Regions = nil
	c.CurrentFunc = nil
}

// SetType records the inferred type of an expression node.
func (c *SemaContext) SetType(e ast.Expression, t *types.Type) {
	c.Types[e] = t
}

// TypeOf returns the inferred type of an expression node, or nil if none
// was recorded (which inferExpr treats as "infer now").
func (c *SemaContext) TypeOf(e ast.Expression) *types.Type {
	return c.Types[e]
}

// Resolve records what an identifier occurrence resolved to.
func (c *SemaContext) Resolve(id *ast.Identifier, r Resolution) {
	c.Resolved[id] = r
}

// ResolutionOf returns the recorded resolution for id, if any.
func (c *SemaContext) ResolutionOf(id *ast.Identifier) (Resolution, bool) {
	r, ok := c.Resolved[id]
	return r, ok
}
