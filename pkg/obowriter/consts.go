/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import "github.com/voedger/oboformat/pkg/obodoc"

var headerTagOrder = []obodoc.Tag{
	obodoc.Tag_FormatVersion,
	obodoc.Tag_DataVersion,
	obodoc.Tag_Date,
	obodoc.Tag_SavedBy,
	obodoc.Tag_AutoGeneratedBy,
	obodoc.Tag_Import,
	obodoc.Tag_Subsetdef,
	obodoc.Tag_Synonymtypedef,
	obodoc.Tag_DefaultNamespace,
	obodoc.Tag_NamespaceIDRule,
	obodoc.Tag_Idspace,
	obodoc.Tag_TreatXrefsAsEquivalent,
	obodoc.Tag_TreatXrefsAsGenusDifferentia,
	obodoc.Tag_TreatXrefsAsReverseGenusDifferentia,
	obodoc.Tag_TreatXrefsAsRelationship,
	obodoc.Tag_TreatXrefsAsIsA,
	obodoc.Tag_TreatXrefsAsHasSubclass,
	obodoc.Tag_Remark,
	obodoc.Tag_Ontology,
	obodoc.Tag_PropertyValue,
	obodoc.Tag_OwlAxioms,
}

var termTagOrder = []obodoc.Tag{
	obodoc.Tag_ID,
	obodoc.Tag_IsAnonymous,
	obodoc.Tag_Name,
	obodoc.Tag_Namespace,
	obodoc.Tag_AltID,
	obodoc.Tag_Def,
	obodoc.Tag_Comment,
	obodoc.Tag_Subset,
	obodoc.Tag_Synonym,
	obodoc.Tag_Xref,
	obodoc.Tag_Builtin,
	obodoc.Tag_IsA,
	obodoc.Tag_IntersectionOf,
	obodoc.Tag_UnionOf,
	obodoc.Tag_EquivalentTo,
	obodoc.Tag_DisjointFrom,
	obodoc.Tag_Relationship,
	obodoc.Tag_PropertyValue,
	obodoc.Tag_IsObsolete,
	obodoc.Tag_ReplacedBy,
	obodoc.Tag_Consider,
	obodoc.Tag_CreatedBy,
	obodoc.Tag_CreationDate,
}

var typedefTagOrder = []obodoc.Tag{
	obodoc.Tag_ID,
	obodoc.Tag_IsAnonymous,
	obodoc.Tag_Name,
	obodoc.Tag_Namespace,
	obodoc.Tag_AltID,
	obodoc.Tag_Def,
	obodoc.Tag_Comment,
	obodoc.Tag_Subset,
	obodoc.Tag_Synonym,
	obodoc.Tag_Xref,
	obodoc.Tag_PropertyValue,
	obodoc.Tag_Domain,
	obodoc.Tag_Range,
	obodoc.Tag_Builtin,
	obodoc.Tag_HoldsOverChain,
	obodoc.Tag_IsAntiSymmetric,
	obodoc.Tag_IsCyclic,
	obodoc.Tag_IsReflexive,
	obodoc.Tag_IsSymmetric,
	obodoc.Tag_IsTransitive,
	obodoc.Tag_IsFunctional,
	obodoc.Tag_IsInverseFunctional,
	obodoc.Tag_IsA,
	obodoc.Tag_IntersectionOf,
	obodoc.Tag_UnionOf,
	obodoc.Tag_EquivalentTo,
	obodoc.Tag_DisjointFrom,
	obodoc.Tag_InverseOf,
	obodoc.Tag_TransitiveOver,
	obodoc.Tag_EquivalentToChain,
	obodoc.Tag_DisjointOver,
	obodoc.Tag_Relationship,
	obodoc.Tag_IsObsolete,
	obodoc.Tag_CreatedBy,
	obodoc.Tag_CreationDate,
	obodoc.Tag_ReplacedBy,
	obodoc.Tag_Consider,
	obodoc.Tag_ExpandAssertionTo,
	obodoc.Tag_ExpandExpressionTo,
	obodoc.Tag_IsMetadataTag,
	obodoc.Tag_IsClassLevel,
}

var instanceTagOrder = []obodoc.Tag{
	obodoc.Tag_ID,
	obodoc.Tag_IsAnonymous,
	obodoc.Tag_Name,
	obodoc.Tag_Namespace,
	obodoc.Tag_AltID,
	obodoc.Tag_Def,
	obodoc.Tag_Comment,
	obodoc.Tag_Subset,
	obodoc.Tag_Synonym,
	obodoc.Tag_Xref,
	obodoc.Tag_InstanceOf,
	obodoc.Tag_PropertyValue,
	obodoc.Tag_Relationship,
	obodoc.Tag_IsObsolete,
	obodoc.Tag_ReplacedBy,
	obodoc.Tag_Consider,
	obodoc.Tag_CreatedBy,
	obodoc.Tag_CreationDate,
}

// tags whose values are references followed by a generated name comment
var namedRefTags = map[obodoc.Tag]bool{
	obodoc.Tag_IsA:            true,
	obodoc.Tag_IntersectionOf: true,
	obodoc.Tag_UnionOf:        true,
	obodoc.Tag_EquivalentTo:   true,
	obodoc.Tag_DisjointFrom:   true,
	obodoc.Tag_Relationship:   true,
	obodoc.Tag_InstanceOf:     true,
	obodoc.Tag_InverseOf:      true,
	obodoc.Tag_TransitiveOver: true,
	obodoc.Tag_Domain:         true,
	obodoc.Tag_Range:          true,
	obodoc.Tag_ReplacedBy:     true,
	obodoc.Tag_Consider:       true,
}

const unknownTagPriority = 1 << 16
