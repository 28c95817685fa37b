/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

import (
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func (t FrameType) String() string {
	switch t {
	case FrameType_Header:
		return "Header"
	case FrameType_Term, FrameType_Typedef, FrameType_Instance:
		return frameTypeStanzas[t]
	}
	return "FrameType_null"
}

// Stanza returns the bracketed stanza name of the frame type
func (t FrameType) Stanza() string {
	return frameTypeStanzas[t]
}

// FrameTypeByStanza returns the frame type for stanza name without brackets
func FrameTypeByStanza(name string) (FrameType, bool) {
	for t, s := range frameTypeStanzas {
		if s == name {
			return t, true
		}
	}
	return FrameType_null, false
}

// New returns an empty document with an empty header frame
func New() *OBODoc {
	d := &OBODoc{header: NewFrame(FrameType_Header, "")}
	for t := FrameType_Term; t < FrameType_Count; t++ {
		d.frames[t] = make(map[string]*Frame)
	}
	return d
}

func (d *OBODoc) Header() *Frame {
	return d.header
}

func (d *OBODoc) SetHeader(h *Frame) {
	h.Type = FrameType_Header
	d.header = h
}

// Frame returns the frame of the type with the id or nil
func (d *OBODoc) Frame(t FrameType, id string) *Frame {
	if t <= FrameType_Header || t >= FrameType_Count {
		return nil
	}
	return d.frames[t][id]
}

func (d *OBODoc) TermFrame(id string) *Frame     { return d.Frame(FrameType_Term, id) }
func (d *OBODoc) TypedefFrame(id string) *Frame  { return d.Frame(FrameType_Typedef, id) }
func (d *OBODoc) InstanceFrame(id string) *Frame { return d.Frame(FrameType_Instance, id) }

// Frames returns frames of the type sorted by id
func (d *OBODoc) Frames(t FrameType) []*Frame {
	if t <= FrameType_Header || t >= FrameType_Count {
		return nil
	}
	ids := maps.Keys(d.frames[t])
	sort.Strings(ids)
	res := make([]*Frame, 0, len(ids))
	for _, id := range ids {
		res = append(res, d.frames[t][id])
	}
	return res
}

func (d *OBODoc) TermFrames() []*Frame     { return d.Frames(FrameType_Term) }
func (d *OBODoc) TypedefFrames() []*Frame  { return d.Frames(FrameType_Typedef) }
func (d *OBODoc) InstanceFrames() []*Frame { return d.Frames(FrameType_Instance) }

// AddFrame adds the frame to the document. A frame with the same type and id is merged
// with the existing one
func (d *OBODoc) AddFrame(f *Frame) error {
	if f.Type == FrameType_Header {
		return d.header.Merge(&Frame{Type: FrameType_Header, clauses: f.clauses})
	}
	if f.Type <= FrameType_Header || f.Type >= FrameType_Count {
		return ErrInvalid("frame type %v", f.Type)
	}
	if f.ID == "" {
		return ErrMissedFrameID(f.Type)
	}
	if exists, ok := d.frames[f.Type][f.ID]; ok {
		return exists.Merge(f)
	}
	d.frames[f.Type][f.ID] = f
	return nil
}

// Clone returns a deep copy of the document. Imported documents are referred to by the same keys
func (d *OBODoc) Clone() *OBODoc {
	n := New()
	n.header = d.header.Clone()
	for t := FrameType_Term; t < FrameType_Count; t++ {
		for id, f := range d.frames[t] {
			n.frames[t][id] = f.Clone()
		}
	}
	n.importKey = slices.Clone(d.importKey)
	return n
}

// RemoveFrame removes the frame by type and id
func (d *OBODoc) RemoveFrame(t FrameType, id string) {
	if t > FrameType_Header && t < FrameType_Count {
		delete(d.frames[t], id)
	}
}

// OntologyID returns the value of the ontology header clause
func (d *OBODoc) OntologyID() string {
	id, _ := d.header.TagValue(Tag_Ontology)
	return id
}

// DefaultNamespace returns the value of the default-namespace header clause
func (d *OBODoc) DefaultNamespace() string {
	ns, _ := d.header.TagValue(Tag_DefaultNamespace)
	return ns
}

// IDSpaces returns idspace prefix to IRI prefix map
func (d *OBODoc) IDSpaces() map[string]string {
	res := map[string]string{}
	for _, c := range d.header.ClausesOf(Tag_Idspace) {
		if v, ok := c.Value.(IDSpace); ok {
			res[v.Prefix] = v.IRI
		}
	}
	return res
}

// Name returns the name of the entity with the id, looking into all frame types
func (d *OBODoc) Name(id string) (string, bool) {
	for t := FrameType_Term; t < FrameType_Count; t++ {
		if f, ok := d.frames[t][id]; ok {
			if n := f.Name(); n != "" {
				return n, true
			}
		}
	}
	return "", false
}

// ImportKeys returns keys of the imported documents in import order
func (d *OBODoc) ImportKeys() []string {
	return d.importKey
}

// AddImportKey appends the key if it is not imported yet
func (d *OBODoc) AddImportKey(key string) {
	if !slices.Contains(d.importKey, key) {
		d.importKey = append(d.importKey, key)
	}
}

// ImportedDocs returns documents from the cache for the import keys, skipping unresolved keys
func (d *OBODoc) ImportedDocs(cache Cache) (res []*OBODoc) {
	for _, k := range d.importKey {
		if doc, ok := cache[k]; ok {
			res = append(res, doc)
		}
	}
	return res
}

// PutIfAbsent stores the document unless the key is cached already.
// Returns true if the document is stored
func (c Cache) PutIfAbsent(key string, doc *OBODoc) bool {
	if _, ok := c[key]; ok {
		return false
	}
	c[key] = doc
	return true
}
