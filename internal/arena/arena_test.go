package arena

import "testing"

func TestAllocZeroed(t *testing.T) {
	a := New()
	buf := a.Alloc(8, 1)
	for _, b := range buf {
		if b != 0 {
			t.Fatal("expected freshly allocated bytes to be zeroed")
		}
	}
}

func TestAllocAlignment(t *testing.T) {
	a := New()
	a.Alloc(3, 1) // misalign the cursor
	buf := a.Alloc(8, 8)
	if &buf[0] != &a.cur[8] {
		t.Fatal("expected the 8-aligned allocation to start at offset 8 of the block")
	}
	if a.BytesUsed() < 11 {
		t.Fatalf("expected both requested sizes (3 + 8) to be counted, got %d", a.BytesUsed())
	}
}

func TestAllocStringRoundTrips(t *testing.T) {
	a := New()
	s := a.AllocString("hello")
	if s != "hello" {
		t.Fatalf("got %q", s)
	}
}

func TestResetReclaimsSpace(t *testing.T) {
	a := New()
	a.Alloc(100, 1)
	if a.BytesUsed() != 100 {
		t.Fatalf("got %d", a.BytesUsed())
	}
	a.Reset()
	if a.BytesUsed() != 0 {
		t.Fatal("expected Reset to zero total usage")
	}
	buf := a.Alloc(4, 1)
	for _, b := range buf {
		if b != 0 {
			t.Fatal("expected bytes reused after Reset to be zeroed")
		}
	}
}

func TestAllocGrowsBeyondBlockSize(t *testing.T) {
	a := New()
	big := a.Alloc(defaultBlockSize+10, 1)
	if len(big) != defaultBlockSize+10 {
		t.Fatalf("got length %d", len(big))
	}
}
