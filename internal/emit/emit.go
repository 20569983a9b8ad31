// Package emit implements the Emitter collaborator of spec.md §6.2:
// "consumes the annotated AST and produces C source plus a generated
// companion header that declares slice/array typedefs and sentinel
// macros." Code generation and optimization are explicit non-goals of the
// semantic core (spec.md §1); this package only shapes the boundary the
// core writes through, grounded on funvibe-funxy's internal/backend.Backend
// interface-over-interchangeable-implementations pattern.
package emit

import (
	"fmt"
	"io"
	"sort"

	"github.com/lain-lang/lainc/internal/ast"
	"github.com/lain-lang/lainc/internal/types"
)

// Emitter is the interface the semantic core's driver writes its
// fully-analysed modules through, mirroring how funvibe-funxy's Backend
// interface lets the driver swap implementations without the analyzer
// caring which one is wired in.
type Emitter interface {
	// EmitModule writes C source for module to source, and a companion
	// header (slice/array typedefs, sentinel macros) to header.
	EmitModule(module *ast.Module, types []*types.Type, source, header io.Writer) error
}

// CEmitter is a minimal Emitter producing the shape of output spec.md §6.2
// describes. It does not attempt a complete, runnable C backend — full code
// generation is out of scope (spec.md §1) — but gives the driver a
// concrete collaborator to call. cmd/lainc does not call it; its only
// flag is --dump-ast.
type CEmitter struct{}

// NewCEmitter returns a CEmitter.
func NewCEmitter() *CEmitter {
	return &CEmitter{}
}

func (e *CEmitter) EmitModule(module *ast.Module, typs []*types.Type, source, header io.Writer) error {
	guard := headerGuard(module.Path)
	if _, err := fmt.Fprintf(header, "#ifndef %s\n#define %s\n\n", guard, guard); err != nil {
		return err
	}
	for _, decl := range sortedTypeDecls(typs) {
		if err := emitTypeTypedef(header, decl); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(header, "\n#endif /* %s */\n", guard); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(source, "#include \"%s.h\"\n\n", module.Path); err != nil {
		return err
	}
	for _, decl := range module.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(source, "/* %s */\n", fn.Name); err != nil {
			return err
		}
	}
	return nil
}

// headerGuard derives a C preprocessor include guard from a dotted module
// path.
func headerGuard(modulePath string) string {
	out := make([]rune, 0, len(modulePath)+2)
	for _, r := range modulePath {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r-32)
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	out = append(out, []rune("_H")...)
	return string(out)
}

// sortedTypeDecls returns the Array/Slice types among typs, deduplicated by
// rendering and sorted for deterministic header output — spec.md §6.2's
// "declares slice/array typedefs and sentinel macros".
func sortedTypeDecls(typs []*types.Type) []*types.Type {
	seen := make(map[string]*types.Type)
	for _, t := range typs {
		if t == nil {
			continue
		}
		if t.Tag != types.Array && t.Tag != types.Slice {
			continue
		}
		seen[t.String()] = t
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*types.Type, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}

func emitTypeTypedef(header io.Writer, t *types.Type) error {
	switch t.Tag {
	case types.Array:
		_, err := fmt.Fprintf(header, "typedef %s %s_arr[%d];\n", t.Elem, cIdentifier(t.String()), t.Length)
		return err
	case types.Slice:
		if _, err := fmt.Fprintf(header, "typedef struct { %s *ptr; long len; } %s_slice;\n", t.Elem, cIdentifier(t.String())); err != nil {
			return err
		}
		if len(t.SentinelBytes) > 0 {
			_, err := fmt.Fprintf(header, "#define %s_SENTINEL_LEN %d\n", cIdentifier(t.String()), len(t.SentinelBytes))
			return err
		}
		return nil
	default:
		return nil
	}
}

func cIdentifier(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
