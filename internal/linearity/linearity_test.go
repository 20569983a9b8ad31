package linearity

import "testing"

func TestConsumeThenAllConsumed(t *testing.T) {
	tbl := New()
	tbl.Insert("x", 0, nil)
	if tbl.AllConsumed() {
		t.Fatal("expected an unconsumed variable to fail AllConsumed")
	}
	if !tbl.Consume("x") {
		t.Fatal("first consume should succeed")
	}
	if !tbl.AllConsumed() {
		t.Fatal("expected AllConsumed once every variable is Consumed")
	}
}

func TestConsumeTwiceFails(t *testing.T) {
	tbl := New()
	tbl.Insert("x", 0, nil)
	tbl.Consume("x")
	if tbl.Consume("x") {
		t.Fatal("second consume of the same variable should fail")
	}
}

func TestUnconsumedLists(t *testing.T) {
	tbl := New()
	tbl.Insert("x", 0, nil)
	tbl.Insert("y", 0, nil)
	tbl.Consume("x")
	got := tbl.Unconsumed()
	if len(got) != 1 || got[0] != "y" {
		t.Fatalf("expected only y unconsumed, got %v", got)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	tbl := New()
	tbl.Insert("x", 0, nil)
	snap := tbl.Snapshot()
	tbl.Consume("x")
	if snap.Get("x").State == Consumed {
		t.Fatal("snapshot should not observe later mutation of the parent")
	}
}

func TestAgreesDetectsMismatch(t *testing.T) {
	tbl := New()
	tbl.Insert("x", 0, nil)
	thenBranch := tbl.Snapshot()
	elseBranch := tbl.Snapshot()
	thenBranch.Consume("x")
	if Agrees(thenBranch, elseBranch) {
		t.Fatal("branches consuming x differently should not agree")
	}
}

func TestAgreesSameState(t *testing.T) {
	tbl := New()
	tbl.Insert("x", 0, nil)
	thenBranch := tbl.Snapshot()
	elseBranch := tbl.Snapshot()
	thenBranch.Consume("x")
	elseBranch.Consume("x")
	if !Agrees(thenBranch, elseBranch) {
		t.Fatal("branches consuming x the same way should agree")
	}
}

func TestJoin(t *testing.T) {
	if Join(Unconsumed, Unconsumed) != Unconsumed {
		t.Fatal("join of two Unconsumed should be Unconsumed")
	}
	if Join(Consumed, Unconsumed) != Consumed {
		t.Fatal("Consumed should be top: join should be Consumed")
	}
}

func TestMergeFrom(t *testing.T) {
	tbl := New()
	tbl.Insert("x", 0, nil)
	branch := tbl.Snapshot()
	branch.Consume("x")
	tbl.MergeFrom(branch)
	if !tbl.AllConsumed() {
		t.Fatal("expected merge to adopt the branch's consumed state")
	}
}
