/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodiff

import "github.com/voedger/oboformat/pkg/obodoc"

// DiffKind is the kind of a difference between two documents
type DiffKind uint8

const (
	DiffKind_null DiffKind = iota
	// DiffKind_Added is a clause or a frame present in the second document only
	DiffKind_Added
	// DiffKind_Removed is a clause or a frame present in the first document only
	DiffKind_Removed
	// DiffKind_Changed is a single valued clause with different values
	DiffKind_Changed
	DiffKind_Count
)

// Diff is one difference. Old and New are both nil for a frame missing in one of documents
type Diff struct {
	Kind      DiffKind
	FrameType obodoc.FrameType
	FrameID   string
	Old       *obodoc.Clause
	New       *obodoc.Clause
}

type Options struct {
	// IgnoreTags are not compared
	IgnoreTags []obodoc.Tag
}
