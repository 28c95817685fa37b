/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Arena owns a set of documents and the import edges between them.
//
// Documents refer to each other by Handle, so cyclic and diamond imports do not form ownership cycles
type Arena struct {
	docs    map[Handle]*OBODoc
	keys    map[Handle]string
	handles map[string]Handle
	imports map[Handle][]Handle
	g       *simple.DirectedGraph
	next    Handle
}

func NewArena() *Arena {
	return &Arena{
		docs:    map[Handle]*OBODoc{},
		keys:    map[Handle]string{},
		handles: map[string]Handle{},
		imports: map[Handle][]Handle{},
		g:       simple.NewDirectedGraph(),
	}
}

// Put stores the document under the key. The document previously stored under the key is replaced,
// the handle and import edges are kept
func (a *Arena) Put(key string, doc *OBODoc) Handle {
	if h, ok := a.handles[key]; ok {
		a.docs[h] = doc
		return h
	}
	h := a.next
	a.next++
	a.docs[h] = doc
	a.keys[h] = key
	a.handles[key] = h
	a.g.AddNode(simple.Node(h))
	return h
}

// PutCache stores all cached documents and links them by their import keys
func (a *Arena) PutCache(cache Cache) {
	keys := make([]string, 0, len(cache))
	for k := range cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.Put(k, cache[k])
	}
	for _, k := range keys {
		parent := a.handles[k]
		for _, ik := range cache[k].ImportKeys() {
			if child, ok := a.handles[ik]; ok && child != parent {
				_ = a.AddImport(parent, child)
			}
		}
	}
}

// Handle returns the handle of the document stored under the key
func (a *Arena) Handle(key string) (Handle, bool) {
	h, ok := a.handles[key]
	return h, ok
}

// Key returns the key the handle was stored under
func (a *Arena) Key(h Handle) string {
	return a.keys[h]
}

// Get returns the document by handle or nil
func (a *Arena) Get(h Handle) *OBODoc {
	return a.docs[h]
}

// Lookup returns the document stored under the key
func (a *Arena) Lookup(key string) (*OBODoc, bool) {
	h, ok := a.handles[key]
	if !ok {
		return nil, false
	}
	return a.docs[h], true
}

// Len returns the number of documents
func (a *Arena) Len() int {
	return len(a.docs)
}

// AddImport records that parent imports child. The child key is added to the parent import keys
func (a *Arena) AddImport(parent, child Handle) error {
	p, ok := a.docs[parent]
	if !ok {
		return ErrNotFound("document handle %d", parent)
	}
	if _, ok := a.docs[child]; !ok {
		return ErrNotFound("document handle %d", child)
	}
	if parent == child {
		return ErrInvalid("document «%s» can not import itself", a.keys[parent])
	}
	p.AddImportKey(a.keys[child])
	if a.g.HasEdgeFromTo(int64(parent), int64(child)) {
		return nil
	}
	a.g.SetEdge(simple.Edge{F: simple.Node(parent), T: simple.Node(child)})
	a.imports[parent] = append(a.imports[parent], child)
	return nil
}

// Imported returns documents directly imported by the document in import order
func (a *Arena) Imported(h Handle) []*OBODoc {
	res := make([]*OBODoc, 0, len(a.imports[h]))
	for _, c := range a.imports[h] {
		res = append(res, a.docs[c])
	}
	return res
}

// Closure returns handles of all documents reachable through imports, the document itself excluded.
// Handles are ordered by the storing order
func (a *Arena) Closure(h Handle) []Handle {
	if _, ok := a.docs[h]; !ok {
		return nil
	}
	res := []Handle{}
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			if Handle(n.ID()) != h {
				res = append(res, Handle(n.ID()))
			}
		},
	}
	bf.Walk(a.g, simple.Node(h), nil)
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// HasCycle returns true if some document imports itself through other documents
func (a *Arena) HasCycle() bool {
	_, err := topo.Sort(a.g)
	return err != nil
}
