// Package borrow implements the Borrow Table of spec.md §2 component 5 and
// §3.5: active shared/mutable borrows, each pinned to a region and an
// owner variable, plus the aliasing invariants spec.md §3.5 and §4.7
// enforce.
package borrow

import "github.com/lain-lang/lainc/internal/regions"

// Mode is a borrow's exclusivity (spec.md §3.5).
type Mode int

const (
	Shared Mode = iota
	Mutable
)

// Entry is the Borrow Entry of spec.md §3.5: "{ reference-var, owner-var
// (nullable), mode, borrow-region, owner-region }".
type Entry struct {
	ReferenceVar string
	OwnerVar     string // empty means no owner (nullable)
	Mode         Mode
	BorrowRegion *regions.Region
	OwnerRegion  *regions.Region
}

// Table owns the active borrows for one function analysis.
type Table struct {
	entries []Entry
}

// New returns an empty Table.
func New() *Table {
	return &Table{}
}

// Of returns every active borrow of the given owner.
func (t *Table) Of(owner string) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.OwnerVar == owner {
			out = append(out, e)
		}
	}
	return out
}

// HasMutable reports whether owner currently has an active mutable borrow.
func (t *Table) HasMutable(owner string) bool {
	for _, e := range t.entries {
		if e.OwnerVar == owner && e.Mode == Mutable {
			return true
		}
	}
	return false
}

// HasAny reports whether owner currently has any active borrow.
func (t *Table) HasAny(owner string) bool {
	for _, e := range t.entries {
		if e.OwnerVar == owner {
			return true
		}
	}
	return false
}

// CanBorrowShared reports whether a shared borrow of owner would be legal:
// spec.md §3.5, "either zero-or-more Shared borrows, or exactly one
// Mutable borrow, never both" — a shared borrow is legal unless a mutable
// borrow is already active.
func (t *Table) CanBorrowShared(owner string) bool {
	return !t.HasMutable(owner)
}

// CanBorrowMutable reports whether a mutable borrow of owner would be
// legal: no borrow of any kind may already be active.
func (t *Table) CanBorrowMutable(owner string) bool {
	return !t.HasAny(owner)
}

// AddShared registers a shared borrow. Callers must check CanBorrowShared
// first; this type does not re-validate the invariant so it can also be
// used to seed borrow state when merging branches.
func (t *Table) AddShared(reference, owner string, borrowRegion, ownerRegion *regions.Region) {
	t.entries = append(t.entries, Entry{ReferenceVar: reference, OwnerVar: owner, Mode: Shared, BorrowRegion: borrowRegion, OwnerRegion: ownerRegion})
}

// AddMutable registers a mutable borrow. See AddShared's note on
// pre-validation.
func (t *Table) AddMutable(reference, owner string, borrowRegion, ownerRegion *regions.Region) {
	t.entries = append(t.entries, Entry{ReferenceVar: reference, OwnerVar: owner, Mode: Mutable, BorrowRegion: borrowRegion, OwnerRegion: ownerRegion})
}

// ClearStatement drops every borrow entry — spec.md §4.7 step 3: "After
// each statement, clear all borrow entries (non-lexical-lifetimes-style
// 'borrows scope to the statement')."
func (t *Table) ClearStatement() {
	t.entries = nil
}

// Invalidate drops every borrow entry belonging to owner — spec.md §3.5:
// "Moving an owner nullifies every borrow entry of that owner."
func (t *Table) Invalidate(owner string) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.OwnerVar != owner {
			kept = append(kept, e)
		}
	}
	t.entries = kept
}

// IsReference reports whether name is currently the reference-var of any
// active borrow. Once Invalidate has dropped an owner's entries, a
// reference that used to alias it is absent from this table. internal/sema
// does not call it: it records each borrow with the owner as its own
// reference-var, and reports use after move when a consumed variable is
// borrowed again.
func (t *Table) IsReference(name string) bool {
	for _, e := range t.entries {
		if e.ReferenceVar == name {
			return true
		}
	}
	return false
}

// AllOutlive reports whether every active borrow's owner-region outlives
// its borrow-region — spec.md §3.5 invariant, and the quantified property
// in spec.md §8.
func (t *Table) AllOutlive() bool {
	for _, e := range t.entries {
		if e.OwnerRegion == nil || e.BorrowRegion == nil {
			continue
		}
		if !regions.Outlives(e.OwnerRegion, e.BorrowRegion) {
			return false
		}
	}
	return true
}
