// Package arena implements the Arena allocator collaborator of spec.md
// §6.2: "push-only bump allocator with alignment". The semantic core never
// frees individual nodes (spec.md §5): every allocation lives until the
// arena owning it is reset at the end of a compilation unit.
package arena

import "fmt"

// defaultBlockSize is the size of each underlying byte slab the Arena
// grows into, chosen generously enough that most functions' symbol and
// string allocations fit in one slab.
const defaultBlockSize = 64 * 1024

// Arena is a push-only bump allocator. Implementations choosing "a single
// arena per module" vs. "separate file/ast/sema arenas" (spec.md §6.2) both
// just construct one of these per lifetime they want to manage.
type Arena struct {
	blocks [][]byte
	cur    []byte
	used   int
	total  int64
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Alloc returns size bytes, aligned to align (which must be a power of
// two), zeroed, with a lifetime tied to the Arena.
func (a *Arena) Alloc(size int, align int) []byte {
	if align <= 0 {
		align = 1
	}
	if size < 0 {
		panic(fmt.Sprintf("arena: negative alloc size %d", size))
	}

	padding := (align - a.used%align) % align
	if a.cur == nil || a.used+padding+size > len(a.cur) {
		blockSize := defaultBlockSize
		if size+align > blockSize {
			blockSize = size + align
		}
		a.cur = make([]byte, blockSize)
		a.blocks = append(a.blocks, a.cur)
		a.used = 0
		padding = 0
	}

	a.used += padding
	out := a.cur[a.used : a.used+size : a.used+size]
	a.used += size
	a.total += int64(size)
	return out
}

// AllocString copies s into arena-owned bytes and returns it as a string —
// used by the resolver for mangled identifiers, which spec.md §4.2 requires
// to be "allocated in the module arena for stable lifetime".
func (a *Arena) AllocString(s string) string {
	buf := a.Alloc(len(s), 1)
	copy(buf, s)
	return string(buf)
}

// BytesUsed reports the total bytes handed out so far, across every block —
// surfaced by the CLI summary (spec.md §6.4).
func (a *Arena) BytesUsed() int64 {
	return a.total
}

// Reset discards every allocation, matching spec.md §5's "arena reset at
// process exit or at the end of a compilation unit". Every backing block is
// zeroed and kept; later allocations start again in the first block, and
// once that fills a new block is allocated, so the other kept blocks are not
// handed out again.
func (a *Arena) Reset() {
	for i := range a.blocks {
		b := a.blocks[i][:cap(a.blocks[i])]
		for j := range b {
			b[j] = 0
		}
		a.blocks[i] = b
	}
	if len(a.blocks) > 0 {
		a.cur = a.blocks[0]
	} else {
		a.cur = nil
	}
	a.used = 0
	a.total = 0
}
