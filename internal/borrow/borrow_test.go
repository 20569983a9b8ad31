package borrow

import "testing"

func TestMutableExcludesShared(t *testing.T) {
	tbl := New()
	if !tbl.CanBorrowMutable("x") {
		t.Fatal("expected a fresh owner to allow a mutable borrow")
	}
	tbl.AddMutable("r", "x", nil, nil)
	if tbl.CanBorrowShared("x") {
		t.Fatal("shared borrow should be rejected while mutably borrowed")
	}
	if tbl.CanBorrowMutable("x") {
		t.Fatal("second mutable borrow should be rejected")
	}
}

func TestMultipleSharedAllowed(t *testing.T) {
	tbl := New()
	tbl.AddShared("r1", "x", nil, nil)
	if !tbl.CanBorrowShared("x") {
		t.Fatal("a second shared borrow should be allowed")
	}
	if tbl.CanBorrowMutable("x") {
		t.Fatal("mutable borrow should be rejected while shared-borrowed")
	}
}

func TestInvalidateDropsOwnersBorrows(t *testing.T) {
	tbl := New()
	tbl.AddShared("r", "x", nil, nil)
	tbl.Invalidate("x")
	if tbl.HasAny("x") {
		t.Fatal("expected Invalidate to drop all of owner's borrows")
	}
}

func TestClearStatementDropsEverything(t *testing.T) {
	tbl := New()
	tbl.AddShared("r", "x", nil, nil)
	tbl.AddMutable("r2", "y", nil, nil)
	tbl.ClearStatement()
	if tbl.HasAny("x") || tbl.HasAny("y") {
		t.Fatal("expected ClearStatement to drop every entry")
	}
}
