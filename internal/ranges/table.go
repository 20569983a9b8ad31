package ranges

// Table is the RangeTable of spec.md §3.4: "owns: a mapping variable →
// Range, a list of relational constraints, and back-pointers to the AST
// arena." (The arena back-pointer is the caller's concern — internal/sema
// threads the arena separately — this table only owns the two maps.)
type Table struct {
	vars        map[string]Range
	constraints []Relation
}

// New returns an empty Table.
func New() *Table {
	return &Table{vars: make(map[string]Range)}
}

// Get returns the range recorded for v, or Unknown if none is recorded.
func (t *Table) Get(v string) Range {
	if r, ok := t.vars[v]; ok {
		return r
	}
	return Unknown()
}

// Set records v's range, overwriting any previous entry.
func (t *Table) Set(v string, r Range) {
	t.vars[v] = r
}

// AddConstraint records a relational constraint x - y <= c (spec.md §4.5:
// "for simple linear forms ... also add the symmetric constraints").
func (t *Table) AddConstraint(rel Relation) {
	t.constraints = append(t.constraints, rel)
}

// Constraints returns every recorded relational constraint.
func (t *Table) Constraints() []Relation {
	return t.constraints
}

// Snapshot returns a deep-enough copy of the table for the branch/loop
// handling of spec.md §4.5: "snapshot the RangeTable ... restore snapshot."
func (t *Table) Snapshot() *Table {
	vars := make(map[string]Range, len(t.vars))
	for k, v := range t.vars {
		vars[k] = v
	}
	constraints := make([]Relation, len(t.constraints))
	copy(constraints, t.constraints)
	return &Table{vars: vars, constraints: constraints}
}

// Restore replaces this table's contents with snap's, in place, so callers
// holding a *Table pointer keep seeing the restored state (spec.md §4.5's
// "restore snapshot" step between branches).
func (t *Table) Restore(snap *Table) {
	t.vars = make(map[string]Range, len(snap.vars))
	for k, v := range snap.vars {
		t.vars[k] = v
	}
	t.constraints = append([]Relation(nil), snap.constraints...)
}

// WidenAssigned widens every variable in names to Unknown — spec.md §4.5's
// loop pre/post-body widening: "widen every variable assigned anywhere
// inside the body to 'unknown'".
func (t *Table) WidenAssigned(names map[string]bool) {
	for name := range names {
		t.vars[name] = Unknown()
	}
}

// AddSymmetricAssignConstraints implements spec.md §4.5: "for simple linear
// forms x = y, x = y + c, x = c + y, x = y − c also add the symmetric
// constraints x − y ≤ c and y − x ≤ −c."
func (t *Table) AddSymmetricAssignConstraints(x, y string, c int64) {
	t.AddConstraint(Relation{X: x, Y: y, C: c})
	t.AddConstraint(Relation{X: y, Y: x, C: -c})
}
