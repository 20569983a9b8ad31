package symbols

import (
	"testing"

	"github.com/lain-lang/lainc/internal/types"
)

func TestInsertGlobalIdempotent(t *testing.T) {
	tbl := New("collections.list")
	if err := tbl.InsertGlobal("push", "collections_list_push", types.Int, nil, false); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := tbl.InsertGlobal("push", "collections_list_push", types.Int, nil, false); err != nil {
		t.Fatalf("identical re-insert should be idempotent, got: %v", err)
	}
}

func TestInsertGlobalConflict(t *testing.T) {
	tbl := New("m")
	if err := tbl.InsertGlobal("x", "m_x", types.Int, nil, false); err != nil {
		t.Fatal(err)
	}
	if err := tbl.InsertGlobal("x", "m_x", types.Bool, nil, false); err == nil {
		t.Fatal("expected conflict on distinct re-insertion")
	}
}

func TestLookupLocalsBeforeGlobals(t *testing.T) {
	tbl := New("m")
	_ = tbl.InsertGlobal("x", "m_x", types.Int, nil, false)
	tbl.InsertLocal("x", "x", types.Bool, nil, true)

	sym, ok := tbl.Lookup("x")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if sym.IsGlobal {
		t.Fatal("expected local to shadow global")
	}
	if !types.Equal(sym.Type, types.Bool) {
		t.Fatalf("expected local's type, got %v", sym.Type)
	}
}

func TestClearLocalsRestoresGlobalVisibility(t *testing.T) {
	tbl := New("m")
	_ = tbl.InsertGlobal("x", "m_x", types.Int, nil, false)
	tbl.InsertLocal("x", "x", types.Bool, nil, true)
	tbl.ClearLocals()

	sym, ok := tbl.Lookup("x")
	if !ok || !sym.IsGlobal {
		t.Fatal("expected global to be visible again after ClearLocals")
	}
}

func TestMangleGlobal(t *testing.T) {
	if got, want := MangleGlobal("collections.list", "push"), "collections_list_push"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := MangleGlobal("", "push"), "push"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
