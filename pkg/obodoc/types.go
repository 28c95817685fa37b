/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

// Xref is a cross reference: an identifier with an optional quoted annotation
type Xref struct {
	IDRef      string
	Annotation string
}

// QualifierValue is a key-value pair written in braces after a clause value
type QualifierValue struct {
	Qualifier string
	Value     string
}

// Clause is a single `tag: value` line
type Clause struct {
	Tag Tag
	// RawTag keeps the written tag text of unrecognized clauses
	RawTag     string
	Value      ClauseValue
	Xrefs      []Xref
	Qualifiers []QualifierValue
	// Comment is the trailing `! ...` text, without the bang
	Comment string
}

// Frame is the header or a stanza of the document.
//
// Clause order is the insertion order. The header frame has an empty ID
type Frame struct {
	Type    FrameType
	ID      string
	clauses []*Clause
}

// OBODoc is a parsed OBO document.
//
// Frames of each type are unique by ID. Imported documents are referred to by key,
// see Cache and Arena
type OBODoc struct {
	header    *Frame
	frames    [FrameType_Count]map[string]*Frame
	importKey []string
}

// Cache maps an import key to the document parsed for it
type Cache map[string]*OBODoc

// Handle identifies a document inside an Arena
type Handle int64
