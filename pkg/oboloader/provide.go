/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboloader

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// New returns a loader which caches up to opts.Size documents
func New(opts Options) (*Loader, error) {
	if opts.Size < 0 || opts.TTL < 0 {
		return nil, fmt.Errorf("%w: size %d, ttl %v", ErrInvalidOptionsError, opts.Size, opts.TTL)
	}
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	l := &Loader{opts: opts}
	if opts.TTL > 0 {
		l.cache = newTTL(opts.Size, opts.TTL)
	} else {
		l.cache = newLRU(opts.Size)
	}
	return l, nil
}

// Load parses the OBO file or returns the cached document
func (l *Loader) Load(path string) (*Loaded, error) {
	return l.load(path)
}

// ImportedDocs returns the documents the loaded document imports
func (l *Loaded) ImportedDocs() []*obodoc.OBODoc {
	return l.Doc.ImportedDocs(l.Imports)
}

// Arena returns a new arena with the loaded document and its imports
func (l *Loaded) Arena() (*obodoc.Arena, obodoc.Handle) {
	a := obodoc.NewArena()
	cache := obodoc.Cache{l.Key: l.Doc}
	for k, d := range l.Imports {
		cache[k] = d
	}
	a.PutCache(cache)
	h, _ := a.Handle(l.Key)
	return a, h
}

// ImportClosure returns the documents the loaded document imports directly or through other imports.
// Import cycles are logged, documents on a cycle are returned once
func (l *Loaded) ImportClosure() []*obodoc.OBODoc {
	a, h := l.Arena()
	if a.HasCycle() {
		logger.Warning(fmt.Sprintf("%s: import cycle", l.Key))
	}
	hh := a.Closure(h)
	res := make([]*obodoc.OBODoc, 0, len(hh))
	for _, c := range hh {
		res = append(res, a.Get(c))
	}
	return res
}
