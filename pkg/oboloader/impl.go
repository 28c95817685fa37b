/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboloader

import (
	"os"
	"path/filepath"
	"time"

	"github.com/erni27/imcache"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboparser"
)

func newLRU(size int) *lruCache {
	c, err := lru.NewWithEvict[string, *entry](size, func(path string, _ *entry) {
		if logger.IsVerbose() {
			logger.Verbose("evicted", path)
		}
	})
	if err != nil {
		// size is validated by New
		panic(err)
	}
	return &lruCache{lru: c}
}

func (c *lruCache) Get(path string) (*entry, bool) { return c.lru.Get(path) }

func (c *lruCache) Put(path string, e *entry) { c.lru.Add(path, e) }

func newTTL(size int, ttl time.Duration) *ttlCache {
	return &ttlCache{
		cache: imcache.New[string, *entry](imcache.WithMaxEntriesOption[string, *entry](size)),
		ttl:   ttl,
	}
}

func (c *ttlCache) Get(path string) (*entry, bool) { return c.cache.Get(path) }

func (c *ttlCache) Put(path string, e *entry) {
	c.cache.Set(path, e, imcache.WithExpiration(c.ttl))
}

func (l *Loader) load(path string) (*Loaded, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if e, ok := l.cache.Get(abs); ok && e.modTime.Equal(fi.ModTime()) {
		if logger.IsVerbose() {
			logger.Verbose("cached", abs)
		}
		return e.loaded, nil
	}

	imports := obodoc.Cache{}
	doc, err := oboparser.ParseFile(abs, oboparser.Options{Cache: imports, FollowImports: l.opts.FollowImports})
	if err != nil {
		return nil, err
	}
	res := &Loaded{Key: abs, Doc: doc, Imports: imports}
	l.cache.Put(abs, &entry{loaded: res, modTime: fi.ModTime()})
	if logger.IsVerbose() {
		logger.Verbose("loaded", abs, "with", len(imports), "imports")
	}
	return res, nil
}
