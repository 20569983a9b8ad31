package module

import (
	"fmt"
	"path/filepath"
)

// Resolver analyses a module directory from scratch and returns its
// exported signatures. Whoever constructs the Loader supplies this
// (cmd/lainc passes one that reports that no frontend is linked in): the
// loader's own job, per spec.md §6.2, is caching and cycle detection in
// front of that analysis, not the analysis itself.
type Resolver func(path string) (*Module, error)

// Loader is the Module loader collaborator of spec.md §6.2. It mirrors
// funvibe-funxy's internal/modules.Loader shape (a path-keyed cache plus a
// Processing set for cycle detection) but drops everything specific to
// funxy's trait/re-export/package-group model, which lain has no
// equivalent of.
type Loader struct {
	resolve    Resolver
	cache      *Cache // optional persistent signature cache; nil disables it
	loaded     map[string]*Module
	processing map[string]bool
}

// NewLoader returns a Loader that calls resolve on a cache miss. cache may
// be nil to disable persistent caching.
func NewLoader(resolve Resolver, cache *Cache) *Loader {
	return &Loader{
		resolve:    resolve,
		cache:      cache,
		loaded:     make(map[string]*Module),
		processing: make(map[string]bool),
	}
}

// Load resolves path to a Module, consulting the in-memory cache, then the
// persistent cache, and finally the Resolver — spec.md §6.2: "resolves
// import paths to already-analysed signatures (may hit a cache)".
func (l *Loader) Load(path string) (*Module, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if mod, ok := l.loaded[absPath]; ok {
		return mod, nil
	}

	if l.processing[absPath] {
		return nil, fmt.Errorf("circular dependency loading module: %s", absPath)
	}
	l.processing[absPath] = true
	defer delete(l.processing, absPath)

	if l.cache != nil {
		if mod, ok, err := l.cache.Get(absPath); err != nil {
			return nil, err
		} else if ok {
			l.loaded[absPath] = mod
			return mod, nil
		}
	}

	mod, err := l.resolve(absPath)
	if err != nil {
		return nil, err
	}
	l.loaded[absPath] = mod

	if l.cache != nil {
		if err := l.cache.Put(absPath, mod); err != nil {
			return nil, err
		}
	}
	return mod, nil
}
