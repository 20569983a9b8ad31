// Package symbols implements the two-level Symbol Table of spec.md §2
// component 1 and §4.1: a global map shared by the whole module plus a
// per-function local map that shadows it, exactly as the teacher's
// internal/symbols.SymbolTable layers ScopeGlobal under ScopeFunction,
// just without the teacher's trait/instance dispatch machinery lain has no
// equivalent of.
package symbols

import (
	"fmt"
	"strings"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/types"
)

// Symbol is the spec.md §3.2 tuple: "(raw-name, mangled-name, type,
// declaration-ref, is-global, is-mutable)".
type Symbol struct {
	Raw       string
	Mangled   string
	Type      *types.Type
	Decl      ast.Node
	IsGlobal  bool
	IsMutable bool
}

// Table is the two-level symbol table: one map of globals, shared for the
// whole module, and one map of locals, rebuilt per function.
type Table struct {
	module  string
	globals map[string]Symbol
	locals  map[string]Symbol
}

// New returns a Table for the given module path, used to mangle global
// names (spec.md §3.2: "mangled name `<module>_<raw>` (dots replaced with
// underscore)").
func New(module string) *Table {
	return &Table{
		module:  module,
		globals: make(map[string]Symbol),
		locals:  make(map[string]Symbol),
	}
}

// MangleGlobal computes the C-safe mangled name for a module-level symbol.
func MangleGlobal(module, raw string) string {
	sanitized := strings.ReplaceAll(module, ".", "_")
	if sanitized == "" {
		return raw
	}
	return sanitized + "_" + raw
}

// InsertGlobal implements spec.md §4.1: "idempotent on repeat identical
// insertion; duplicate distinct insertion is a fatal error." The caller
// (the module driver) is responsible for turning the returned error into a
// diagnostics.Error — this package has no dependency on diagnostics so it
// stays usable from anything that just wants a symbol table.
func (t *Table) InsertGlobal(raw, mangled string, typ *types.Type, decl ast.Node, isMutable bool) error {
	sym := Symbol{Raw: raw, Mangled: mangled, Type: typ, Decl: decl, IsGlobal: true, IsMutable: isMutable}
	if existing, ok := t.globals[raw]; ok {
		if symbolsEqual(existing, sym) {
			return nil
		}
		return fmt.Errorf("duplicate global declaration of %q", raw)
	}
	t.globals[raw] = sym
	return nil
}

// InsertLocal implements spec.md §4.1: "shadows outer-scope locals." Locals
// are rebuilt fresh per function, and nested-block shadowing is handled by
// the resolver snapshotting/restoring its own scope stack (see
// internal/sema), so this table only needs one flat local map: shadowing
// within a function is a re-insertion of the same raw name, which simply
// overwrites the previous entry.
func (t *Table) InsertLocal(raw, mangled string, typ *types.Type, decl ast.Node, isMutable bool) {
	t.locals[raw] = Symbol{Raw: raw, Mangled: mangled, Type: typ, Decl: decl, IsGlobal: false, IsMutable: isMutable}
}

// Lookup implements spec.md §4.1: "locals first, then globals."
func (t *Table) Lookup(raw string) (Symbol, bool) {
	if sym, ok := t.locals[raw]; ok {
		return sym, true
	}
	sym, ok := t.globals[raw]
	return sym, ok
}

// LookupGlobal looks up a global directly, bypassing locals. The
// exhaustiveness checker and enum-variant resolution do not call it; they
// read the SemaContext's Enums map instead.
func (t *Table) LookupGlobal(raw string) (Symbol, bool) {
	sym, ok := t.globals[raw]
	return sym, ok
}

// ClearLocals implements spec.md §4.1; called by the driver on function
// entry and exit (spec.md §4.8 steps 1 and 8).
func (t *Table) ClearLocals() {
	t.locals = make(map[string]Symbol)
}

// ClearGlobals implements spec.md §4.1.
func (t *Table) ClearGlobals() {
	t.globals = make(map[string]Symbol)
}

// SnapshotLocals returns a copy of the current local scope, so the resolver
// can restore it when a nested block (if/for/while/match arm) exits and its
// block-scoped bindings should no longer be visible — spec.md §3.7:
// "Regions: created on entry to a scoped construct ... dropped on exit."
func (t *Table) SnapshotLocals() map[string]Symbol {
	out := make(map[string]Symbol, len(t.locals))
	for k, v := range t.locals {
		out[k] = v
	}
	return out
}

// RestoreLocals replaces the local scope with a previously taken snapshot.
func (t *Table) RestoreLocals(snapshot map[string]Symbol) {
	t.locals = snapshot
}

// Module returns the module path this table mangles globals against.
func (t *Table) Module() string {
	return t.module
}

// Globals returns a snapshot of every registered global, for callers that
// need to enumerate declarations rather than look one up by name.
func (t *Table) Globals() map[string]Symbol {
	out := make(map[string]Symbol, len(t.globals))
	for k, v := range t.globals {
		out[k] = v
	}
	return out
}

func symbolsEqual(a, b Symbol) bool {
	return a.Raw == b.Raw &&
		a.Mangled == b.Mangled &&
		a.IsMutable == b.IsMutable &&
		types.Equal(a.Type, b.Type)
}
