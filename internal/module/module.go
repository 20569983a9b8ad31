// Package module implements the Module loader collaborator of spec.md
// §6.2: "resolves import paths to already-analysed signatures (may hit a
// cache)". It is grounded on the directory-based package loading in
// funvibe-funxy's internal/modules (path-keyed cache, cycle detection via a
// Processing set, "one package per directory"), simplified to lain's
// narrower needs: lain has no trait/re-export system, so a Module here is
// just a name plus its exported signatures.
package module

import "github.com/lain-lang/lainc/internal/types"

// FuncSignature is everything a caller needs to type-check a call across a
// module boundary, without re-analysing the callee's body.
type FuncSignature struct {
	Name        string
	ParamTypes  []*types.Type
	ReturnType  *types.Type
	IsProcedure bool // mirrors ast.FuncKind.IsProcedure(), for cross-module purity checks
}

// Module is a loaded, already-analysed unit: the Module Loader collaborator
// of spec.md §6.2 hands these back instead of raw ASTs, mirroring
// funvibe-funxy's Module.Exports/SymbolTable split but restricted to the
// function signatures lain's resolver needs.
type Module struct {
	Path      string
	Functions map[string]FuncSignature
}

// NewModule returns an empty Module for path.
func NewModule(path string) *Module {
	return &Module{Path: path, Functions: make(map[string]FuncSignature)}
}

// Lookup returns the signature for a function exported by this module.
func (m *Module) Lookup(name string) (FuncSignature, bool) {
	sig, ok := m.Functions[name]
	return sig, ok
}
