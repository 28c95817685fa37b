/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboloader

import (
	"time"

	"github.com/erni27/imcache"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/oboformat/pkg/obodoc"
)

type Options struct {
	// Size limits the number of cached documents. DefaultSize is used if zero
	Size int
	// TTL expires cached documents. Zero keeps documents until evicted by size
	TTL time.Duration
	// FollowImports parses local imports of loaded documents
	FollowImports bool
}

// Loaded is a parsed document with documents parsed for its imports
type Loaded struct {
	Key     string
	Doc     *obodoc.OBODoc
	Imports obodoc.Cache
}

// Loader parses OBO files and caches parsed documents.
//
// A cached document is reused while the file modification time is unchanged.
// Loader is safe for concurrent use, returned documents must not be modified
type Loader struct {
	opts  Options
	cache docCache
}

type entry struct {
	loaded  *Loaded
	modTime time.Time
}

type lruCache struct {
	lru *lru.Cache[string, *entry]
}

type ttlCache struct {
	cache *imcache.Cache[string, *entry]
	ttl   time.Duration
}
