package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/types"
)

func TestEmitModuleHeaderGuard(t *testing.T) {
	mod := &ast.Module{Path: "geometry.shapes"}
	var source, header bytes.Buffer
	if err := NewCEmitter().EmitModule(mod, nil, &source, &header); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(header.String(), "#ifndef GEOMETRY_SHAPES_H") {
		t.Fatalf("expected an include guard, got:\n%s", header.String())
	}
	if !strings.Contains(source.String(), "#include \"geometry.shapes.h\"") {
		t.Fatalf("expected the source to include its header, got:\n%s", source.String())
	}
}

func TestEmitModuleSliceTypedef(t *testing.T) {
	mod := &ast.Module{Path: "m"}
	sliceType := types.NewSlice(types.U8, []byte{0}, types.DynamicLength, true)
	var source, header bytes.Buffer
	if err := NewCEmitter().EmitModule(mod, []*types.Type{sliceType}, &source, &header); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(header.String(), "slice") {
		t.Fatalf("expected a slice typedef, got:\n%s", header.String())
	}
	if !strings.Contains(header.String(), "_SENTINEL_LEN 1") {
		t.Fatalf("expected a sentinel length macro, got:\n%s", header.String())
	}
}

func TestEmitModuleFuncComment(t *testing.T) {
	mod := &ast.Module{Path: "m", Decls: []ast.Declaration{
		&ast.FuncDecl{Name: "compute"},
	}}
	var source, header bytes.Buffer
	if err := NewCEmitter().EmitModule(mod, nil, &source, &header); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(source.String(), "compute") {
		t.Fatalf("expected the function name to appear in source, got:\n%s", source.String())
	}
}
