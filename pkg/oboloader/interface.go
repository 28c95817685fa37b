/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboloader

// docCache caches loaded documents by file path
type docCache interface {
	// Returns true and the entry if the path is cached
	Get(path string) (*entry, bool)

	Put(path string, e *entry)
}
