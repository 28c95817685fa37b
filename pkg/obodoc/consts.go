/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

// FrameType is the kind of an OBO stanza
type FrameType uint8

const (
	FrameType_null FrameType = iota
	FrameType_Header
	FrameType_Term
	FrameType_Typedef
	FrameType_Instance
	FrameType_Count
)

var frameTypeStanzas = map[FrameType]string{
	FrameType_Term:     "Term",
	FrameType_Typedef:  "Typedef",
	FrameType_Instance: "Instance",
}

// Synonym scopes
const (
	ScopeExact   = "EXACT"
	ScopeNarrow  = "NARROW"
	ScopeBroad   = "BROAD"
	ScopeRelated = "RELATED"
)

const (
	TrueValue  = "true"
	FalseValue = "false"
)

const (
	QualifierCardinality    = "cardinality"
	QualifierMinCardinality = "minCardinality"
	QualifierMaxCardinality = "maxCardinality"
	QualifierAllOnly        = "all_only"
	QualifierAllSome        = "all_some"
	QualifierGciRelation    = "gci_relation"
	QualifierGciFiller      = "gci_filler"
	QualifierIsInferred     = "is_inferred"
	QualifierSource         = "source"
)

// DefaultFormatVersion is written to headers which do not declare a format version
const DefaultFormatVersion = "1.2"
