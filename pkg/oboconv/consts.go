/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboconv

import (
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/owl"
)

// Frame tags translated into annotation assertions about the frame entity
var tagProperties = map[obodoc.Tag]owl.IRI{
	obodoc.Tag_Name:               owl.RDFSLabel,
	obodoc.Tag_Def:                owl.IAODefinition,
	obodoc.Tag_Comment:            owl.RDFSComment,
	obodoc.Tag_Namespace:          owl.OboInOwlHasOBONamespace,
	obodoc.Tag_Subset:             owl.OboInOwlInSubset,
	obodoc.Tag_Xref:               owl.OboInOwlHasDbXref,
	obodoc.Tag_IsObsolete:         owl.Deprecated,
	obodoc.Tag_ReplacedBy:         owl.IAOReplacedBy,
	obodoc.Tag_Consider:           owl.OboInOwlConsider,
	obodoc.Tag_CreatedBy:          owl.OboInOwlCreatedBy,
	obodoc.Tag_CreationDate:       owl.OboInOwlCreationDate,
	obodoc.Tag_Builtin:            owl.OboInOwlBuiltin,
	obodoc.Tag_IsAnonymous:        owl.OboInOwlIsAnonymous,
	obodoc.Tag_IsCyclic:           owl.OboInOwlIsCyclic,
	obodoc.Tag_IsClassLevel:       owl.OboInOwlIsClassLevel,
	obodoc.Tag_IsMetadataTag:      owl.OboInOwlIsMetadataTag,
	obodoc.Tag_IsAntiSymmetric:    owl.IAOIsAntiSymmetric,
	obodoc.Tag_DisjointOver:       owl.OboInOwlDisjointOver,
	obodoc.Tag_ExpandExpressionTo: owl.IAOExpandExpression,
	obodoc.Tag_ExpandAssertionTo:  owl.IAOExpandAssertion,
}

var propertyTags = func() map[owl.IRI]obodoc.Tag {
	m := make(map[owl.IRI]obodoc.Tag, len(tagProperties))
	for t, p := range tagProperties {
		m[p] = t
	}
	return m
}()

var synonymProperties = map[string]owl.IRI{
	obodoc.ScopeExact:   owl.OboInOwlHasExactSynonym,
	obodoc.ScopeNarrow:  owl.OboInOwlHasNarrowSynonym,
	obodoc.ScopeBroad:   owl.OboInOwlHasBroadSynonym,
	obodoc.ScopeRelated: owl.OboInOwlHasRelatedSynonym,
}

var synonymScopes = func() map[owl.IRI]string {
	m := make(map[owl.IRI]string, len(synonymProperties))
	for s, p := range synonymProperties {
		m[p] = s
	}
	return m
}()

// Characteristic flags of typedefs
var tagCharacteristics = map[obodoc.Tag]owl.Characteristic{
	obodoc.Tag_IsTransitive:        owl.Characteristic_Transitive,
	obodoc.Tag_IsSymmetric:         owl.Characteristic_Symmetric,
	obodoc.Tag_IsReflexive:         owl.Characteristic_Reflexive,
	obodoc.Tag_IsFunctional:        owl.Characteristic_Functional,
	obodoc.Tag_IsInverseFunctional: owl.Characteristic_InverseFunctional,
}

var characteristicTags = func() map[owl.Characteristic]obodoc.Tag {
	m := make(map[owl.Characteristic]obodoc.Tag, len(tagCharacteristics))
	for t, c := range tagCharacteristics {
		m[c] = t
	}
	return m
}()

// EquivalentToChain marks property chain axioms which come from equivalent_to_chain
const EquivalentToChain owl.IRI = owl.NsOboInOwl + "equivalent_to_chain"

// Header tags with their own ontology level annotation properties
const (
	FormatVersionProperty = owl.OboInOwlHasOBOFormatVersion
	RemarkProperty        = owl.RDFSComment
)
