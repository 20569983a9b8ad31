package ranges

import "testing"

func TestAddUnknownAbsorbing(t *testing.T) {
	r := Add(Unknown(), Single(5))
	if r.Known {
		t.Fatal("unknown should be absorbing for Add")
	}
}

func TestAddConstantsExact(t *testing.T) {
	r := Add(Interval(1, 3), Single(10))
	if !r.Known || r.Min != 11 || r.Max != 13 {
		t.Fatalf("got %+v", r)
	}
}

func TestSubConstantsExact(t *testing.T) {
	r := Sub(Interval(5, 10), Single(2))
	if !r.Known || r.Min != 3 || r.Max != 8 {
		t.Fatalf("got %+v", r)
	}
}

func TestProvablyNegative(t *testing.T) {
	if !Interval(-5, -1).ProvablyNegative() {
		t.Fatal("expected provably negative")
	}
	if Interval(-5, 1).ProvablyNegative() {
		t.Fatal("did not expect provably negative: range straddles zero")
	}
	if Unknown().ProvablyNegative() {
		t.Fatal("unknown is never provably anything")
	}
}

func TestProvablyAtLeast(t *testing.T) {
	if !Interval(4, 10).ProvablyAtLeast(4) {
		t.Fatal("expected provably at least bound")
	}
	if Interval(0, 3).ProvablyAtLeast(4) {
		t.Fatal("did not expect provably at least bound")
	}
}

func TestTableSnapshotRestore(t *testing.T) {
	tbl := New()
	tbl.Set("x", Single(1))
	snap := tbl.Snapshot()
	tbl.Set("x", Single(2))
	tbl.AddConstraint(Relation{X: "x", Y: "y", C: 0})

	tbl.Restore(snap)
	if got := tbl.Get("x"); got.Min != 1 {
		t.Fatalf("expected restored range to have Min=1, got %+v", got)
	}
	if len(tbl.Constraints()) != 0 {
		t.Fatal("expected restored table to have no constraints")
	}
}

func TestWidenAssigned(t *testing.T) {
	tbl := New()
	tbl.Set("i", Single(0))
	tbl.WidenAssigned(map[string]bool{"i": true})
	if tbl.Get("i").Known {
		t.Fatal("expected widened variable to be unknown")
	}
}
