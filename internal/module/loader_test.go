package module

import (
	"testing"

	"github.com/lain-lang/lainc/internal/types"
)

func TestLoaderCachesResolvedModule(t *testing.T) {
	calls := 0
	resolve := func(path string) (*Module, error) {
		calls++
		mod := NewModule(path)
		mod.Functions["f"] = FuncSignature{Name: "f", ReturnType: types.Int}
		return mod, nil
	}
	l := NewLoader(resolve, nil)

	if _, err := l.Load("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load("a"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("expected resolve to run once, ran %d times", calls)
	}
}

func TestLoaderDetectsCycle(t *testing.T) {
	var l *Loader
	resolve := func(path string) (*Module, error) {
		return l.Load(path) // re-enters the same path while still processing it
	}
	l = NewLoader(resolve, nil)

	if _, err := l.Load("self"); err == nil {
		t.Fatal("expected a circular dependency error")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCache(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	mod := NewModule("/pkg/math")
	mod.Functions["add"] = FuncSignature{
		Name:       "add",
		ParamTypes: []*types.Type{types.Int, types.Int},
		ReturnType: types.Int,
	}
	if err := cache.Put("/pkg/math", mod); err != nil {
		t.Fatal(err)
	}

	got, ok, err := cache.Get("/pkg/math")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	sig, ok := got.Lookup("add")
	if !ok || sig.ReturnType.String() != "int" {
		t.Fatalf("got %+v", got)
	}
}

func TestLoaderConsultsPersistentCache(t *testing.T) {
	cache, err := OpenCache(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	seeded := NewModule("/pkg/x")
	seeded.Functions["f"] = FuncSignature{Name: "f", ReturnType: types.Bool}
	if err := cache.Put("/pkg/x", seeded); err != nil {
		t.Fatal(err)
	}

	calls := 0
	resolve := func(path string) (*Module, error) {
		calls++
		return NewModule(path), nil
	}
	l := NewLoader(resolve, cache)

	mod, err := l.Load("/pkg/x")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Fatal("expected the persistent cache hit to skip Resolver")
	}
	if _, ok := mod.Lookup("f"); !ok {
		t.Fatal("expected the cached signature to come back")
	}
}
